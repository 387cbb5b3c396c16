package cfg

type Cfg struct {
	// Storage configuration
	Storage string
	DBPath  string

	// Blog sync configuration
	FeedURL       string
	SyncInterval  int // minutes
	FetchTimeout  int // seconds
	Environment   string
	ForceRealFeed bool
	MockPostsFile string

	// HTTP server configuration
	Port         string
	APIAccessKey string

	// Email configuration
	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	EmailFrom    string
	NotifyEmail  string

	// Application metadata
	UserAgent string
	Debug     bool
	Version   string
}

// IsDevelopment reports whether the service runs in development mode,
// where the mock blog data path is available.
func (c *Cfg) IsDevelopment() bool {
	return c.Environment == "development"
}

// SyncEnabled reports whether real feed syncing should run. Development
// environments skip the network unless ForceRealFeed is set.
func (c *Cfg) SyncEnabled() bool {
	if c.FeedURL == "" {
		return false
	}
	return !c.IsDevelopment() || c.ForceRealFeed
}
