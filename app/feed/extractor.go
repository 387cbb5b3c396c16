package feed

import (
	"cmp"
	"fmt"
	"log/slog"
	"regexp"
	"time"
)

var (
	channelPattern = regexp.MustCompile(`(?is)<channel>(.*?)</channel>`)
	itemPattern    = regexp.MustCompile(`(?is)<item>(.*?)</item>`)
)

// ResilientParser is a hand-rolled extractor for the feed dialect the
// upstream blog platform emits, which sporadically violates the RSS spec
// (missing namespace declarations, inconsistent tag sets). It scans
// tag-by-tag instead of building a document tree, so a broken element
// costs one item, never the whole feed.
type ResilientParser struct{}

func NewResilientParser() *ResilientParser {
	return &ResilientParser{}
}

func (p *ResilientParser) Run(data []byte) ([]Entry, error) {
	channelMatch := channelPattern.FindStringSubmatch(string(data))
	if channelMatch == nil {
		return nil, fmt.Errorf("no channel block found in feed")
	}

	channel := channelMatch[1]

	var entries []Entry
	now := time.Now().Unix()

	for ordinal, match := range itemPattern.FindAllStringSubmatch(channel, -1) {
		itemXML := match[1]

		title := ExtractTag(itemXML, "title", false)
		if title == "" {
			slog.Warn("Skipping feed item without title", "ordinal", ordinal+1)
			continue
		}

		link := ExtractTag(itemXML, "link", false)
		content := cmp.Or(
			ExtractTag(itemXML, "content:encoded", false),
			ExtractTag(itemXML, "description", false),
		)

		entry := Entry{
			Title:        title,
			Link:         link,
			PublishedRaw: ExtractTag(itemXML, "pubDate", false),
			Content:      content,
			Snippet:      Excerpt(content),
			GUID:         link,
			ImageURL:     p.extractImageURL(itemXML, content),
			Creator:      ExtractTag(itemXML, "dc:creator", false),
			// This dialect does not reliably supply categories.
			Categories: nil,
		}

		if entry.GUID == "" {
			// Synthesized placeholder, unique within one run even when the
			// feed supplies no identifier at all.
			entry.GUID = fmt.Sprintf("item-%d-%d", now, ordinal+1)
		}

		entries = append(entries, entry)
	}

	slog.Debug("Resilient extraction complete", "entries", len(entries))

	return entries, nil
}

// extractImageURL resolves the item image with a two-step fallback: the
// url attribute of a media:content tag, then the first inline <img> in the
// content HTML.
func (p *ResilientParser) extractImageURL(itemXML, content string) string {
	if tag := ExtractTag(itemXML, "media:content", true); tag != "" {
		if url := mediaContentURL(tag); url != "" {
			return url
		}
	}

	return FirstImageSrc(content)
}
