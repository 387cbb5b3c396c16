package blog

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	slugStripPattern = regexp.MustCompile(`[^\w\s-]`)
	slugSpacePattern = regexp.MustCompile(`\s+`)
)

// foldDiacritics decomposes accented characters and drops the combining
// marks, so "Stratégie" slugs the same as "Strategie".
var foldDiacritics = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify derives the URL-safe post identifier from a title: diacritics
// folded, lowercased, everything but word characters/whitespace/hyphens
// stripped, whitespace runs collapsed to single hyphens. Deterministic for
// a given title; the slug is the idempotency key for sync.
func Slugify(title string) string {
	folded, _, err := transform.String(foldDiacritics, title)
	if err != nil {
		folded = title
	}

	slug := strings.ToLower(folded)
	slug = slugStripPattern.ReplaceAllString(slug, "")
	slug = strings.TrimSpace(slug)
	slug = slugSpacePattern.ReplaceAllString(slug, "-")

	return slug
}
