package cfg

import (
	"cmp"
	"fmt"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Storage configuration
	Storage string `long:"storage" env:"STORAGE" default:"sqlite" choice:"sqlite" choice:"memory" description:"Storage backend"`
	DBPath  string `long:"db-path" env:"DB_PATH" default:"./site.db" description:"SQLite database file path"`

	// Blog sync configuration
	FeedURL       string `long:"feed-url" env:"RSS_FEED_URL" description:"RSS feed URL for blog sync (sync disabled when empty)"`
	SyncInterval  int    `long:"sync-interval" env:"SYNC_INTERVAL" default:"60" description:"Blog sync interval in minutes"`
	FetchTimeout  int    `long:"fetch-timeout" env:"FETCH_TIMEOUT" default:"15" description:"Feed fetch timeout in seconds"`
	Environment   string `long:"environment" env:"ENVIRONMENT" default:"production" description:"Runtime environment (production, development)"`
	ForceRealFeed bool   `long:"force-real-feed" env:"FORCE_REAL_FEED" description:"Fetch the real feed even in development"`
	MockPostsFile string `long:"mock-posts-file" env:"MOCK_POSTS_FILE" description:"Optional YAML file with mock blog posts for development"`

	// HTTP server configuration
	Port         string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`
	APIAccessKey string `long:"api-key" env:"API_ACCESS_KEY" description:"API access key for admin endpoints (optional)"`

	// Email configuration
	SMTPHost     string `long:"smtp-host" env:"SMTP_HOST" description:"SMTP host (email disabled when empty)"`
	SMTPPort     string `long:"smtp-port" env:"SMTP_PORT" default:"587" description:"SMTP port"`
	SMTPUsername string `long:"smtp-username" env:"SMTP_USERNAME" description:"SMTP username"`
	SMTPPassword string `long:"smtp-password" env:"SMTP_PASSWORD" description:"SMTP password"`
	EmailFrom    string `long:"email-from" env:"EMAIL_FROM" default:"no-reply@strategix-ai.com" description:"From address for transactional email"`
	NotifyEmail  string `long:"notify-email" env:"NOTIFY_EMAIL" description:"Recipient for lead notifications"`

	// Application metadata
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"StrategixAI/1.0 RSS-Reader" description:"User agent string for HTTP requests"`
	Debug     bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	globalCfg = fromRaw(&raw)

	return globalCfg, nil
}

// LoadFrom parses configuration from an explicit argument list instead of
// os.Args, primarily for tests.
func LoadFrom(args []string) (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.None)

	if _, err := parser.ParseArgs(args); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	globalCfg = fromRaw(&raw)

	return globalCfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

func fromRaw(raw *rawCfg) *Cfg {
	return &Cfg{
		Storage:       raw.Storage,
		DBPath:        raw.DBPath,
		FeedURL:       raw.FeedURL,
		SyncInterval:  raw.SyncInterval,
		FetchTimeout:  raw.FetchTimeout,
		Environment:   raw.Environment,
		ForceRealFeed: raw.ForceRealFeed,
		MockPostsFile: raw.MockPostsFile,
		Port:          raw.Port,
		APIAccessKey:  raw.APIAccessKey,
		SMTPHost:      raw.SMTPHost,
		SMTPPort:      raw.SMTPPort,
		SMTPUsername:  raw.SMTPUsername,
		SMTPPassword:  raw.SMTPPassword,
		EmailFrom:     raw.EmailFrom,
		NotifyEmail:   raw.NotifyEmail,
		UserAgent:     raw.UserAgent,
		Debug:         raw.Debug,
		Version:       GetVersion(),
	}
}
