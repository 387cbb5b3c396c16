package feed

import (
	"bytes"
	"cmp"
	"fmt"
	"log/slog"

	"github.com/mmcdole/gofeed"
)

// StrictParser delegates to the standards-based gofeed reader. It fails on
// malformed XML; the caller falls back to the ResilientParser in that case.
type StrictParser struct {
	gofeedParser *gofeed.Parser
}

func NewStrictParser() *StrictParser {
	return &StrictParser{
		gofeedParser: gofeed.NewParser(),
	}
}

func (p *StrictParser) Run(data []byte) ([]Entry, error) {
	parsed, err := p.gofeedParser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	entries := make([]Entry, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if item.Title == "" {
			slog.Warn("Skipping feed item without title", "link", item.Link)
			continue
		}
		entries = append(entries, p.toEntry(item))
	}

	return entries, nil
}

func (p *StrictParser) toEntry(item *gofeed.Item) Entry {
	// content:encoded lands in Content, plain <description> in Description
	content := cmp.Or(item.Content, item.Description)

	entry := Entry{
		Title:        item.Title,
		Link:         item.Link,
		PublishedRaw: item.Published,
		Content:      content,
		Snippet:      Excerpt(content),
		GUID:         item.GUID,
		ImageURL:     extractMediaURL(item),
		Creator:      extractCreator(item),
		Categories:   item.Categories,
	}

	if entry.ImageURL == "" {
		entry.ImageURL = FirstImageSrc(content)
	}

	return entry
}

// extractMediaURL reads the url attribute of a media:content extension
// element, the structured image field this feed dialect uses.
func extractMediaURL(item *gofeed.Item) string {
	if item.Image != nil && item.Image.URL != "" {
		return item.Image.URL
	}

	media, ok := item.Extensions["media"]
	if !ok {
		return ""
	}

	for _, ext := range media["content"] {
		if url := ext.Attrs["url"]; url != "" {
			return url
		}
	}

	return ""
}

func extractCreator(item *gofeed.Item) string {
	if item.DublinCoreExt != nil && len(item.DublinCoreExt.Creator) > 0 {
		return item.DublinCoreExt.Creator[0]
	}

	if item.Author != nil {
		return item.Author.Name
	}

	return ""
}
