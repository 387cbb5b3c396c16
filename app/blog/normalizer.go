package blog

import (
	"cmp"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/microcosm-cc/bluemonday"

	"github.com/strategix-ai/site-server/app/database"
	"github.com/strategix-ai/site-server/app/feed"
)

// DefaultAuthor is used when the feed supplies no creator.
const DefaultAuthor = "StrategixAI"

// Normalizer maps a parsed feed entry into the canonical blog post shape.
// Content always passes through the allow-list sanitizer before it can
// reach a store.
type Normalizer struct {
	sanitizer      *bluemonday.Policy
	fallbackAuthor string
	now            func() time.Time
}

func NewNormalizer() *Normalizer {
	return &Normalizer{
		sanitizer:      bluemonday.UGCPolicy(),
		fallbackAuthor: DefaultAuthor,
		now:            time.Now,
	}
}

// Run produces an unsaved BlogPost from a feed entry. Entries without a
// title are rejected; every other defect degrades to a default instead.
func (n *Normalizer) Run(entry feed.Entry) (database.BlogPost, error) {
	if entry.Title == "" {
		return database.BlogPost{}, fmt.Errorf("entry has no title")
	}

	now := n.now().UTC()
	content := n.sanitizer.Sanitize(entry.Content)

	post := database.BlogPost{
		ExternalID:  externalID(entry),
		Title:       entry.Title,
		Slug:        Slugify(entry.Title),
		Content:     content,
		Excerpt:     cmp.Or(entry.Snippet, feed.Excerpt(content)),
		Author:      cmp.Or(entry.Creator, n.fallbackAuthor),
		PublishedAt: n.publishedAt(entry.PublishedRaw, now),
		ImageURL:    cmp.Or(entry.ImageURL, feed.FirstImageSrc(content)),
		Tags:        entry.Categories,
		LastFetched: now,
	}

	return post, nil
}

// publishedAt parses the feed-native date string; a missing or unparsable
// date defaults to now rather than rejecting the entry.
func (n *Normalizer) publishedAt(raw string, now time.Time) time.Time {
	if raw == "" {
		return now
	}

	parsed, err := dateparse.ParseAny(raw)
	if err != nil {
		return now
	}

	return parsed.UTC()
}

// externalID resolves the stable source identifier: the feed guid, else
// the last path segment of the link, else a digest of the title so that
// repeated runs on a guid-less feed still converge.
func externalID(entry feed.Entry) string {
	if entry.GUID != "" {
		return entry.GUID
	}

	if segment := lastPathSegment(entry.Link); segment != "" {
		return segment
	}

	sum := sha256.Sum256([]byte(entry.Title))
	return "post-" + hex.EncodeToString(sum[:8])
}

func lastPathSegment(link string) string {
	if link == "" {
		return ""
	}

	parsed, err := url.Parse(link)
	if err != nil {
		return ""
	}

	segment := path.Base(strings.TrimSuffix(parsed.Path, "/"))
	if segment == "." || segment == "/" {
		return ""
	}

	return segment
}
