package feed

// Entry is one item parsed out of the external RSS/Atom document, before
// normalization into a blog post. It lives for a single sync cycle.
type Entry struct {
	Title        string
	Link         string
	PublishedRaw string // feed-native date string, parsed later
	Content      string // HTML, may be empty
	Snippet      string // plain-text excerpt derived by the parser
	GUID         string
	ImageURL     string
	Creator      string
	Categories   []string
}

// Parser is one parsing strategy over raw feed bytes. Two implementations
// exist: StrictParser (standards-based) and ResilientParser (best-effort
// tag scanning for feeds that violate the spec).
type Parser interface {
	Run(data []byte) ([]Entry, error)
}
