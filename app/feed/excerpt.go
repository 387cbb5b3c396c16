package feed

import (
	"regexp"
	"strings"
)

// ExcerptLimit is the maximum excerpt length in runes, before the ellipsis.
const ExcerptLimit = 200

var (
	htmlTagPattern    = regexp.MustCompile(`<[^>]+>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
	imgSrcPattern     = regexp.MustCompile(`(?i)<img[^>]+src=["']([^"']+)["']`)
	mediaURLPattern   = regexp.MustCompile(`(?i)url="([^"]+)"`)
)

// StripTags removes all HTML tags and collapses whitespace runs into
// single spaces.
func StripTags(html string) string {
	text := htmlTagPattern.ReplaceAllString(html, " ")
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// Excerpt derives a plain-text excerpt from HTML content: tags stripped,
// whitespace collapsed, truncated to ExcerptLimit runes. The ellipsis is
// appended only when truncation actually occurred.
func Excerpt(html string) string {
	text := StripTags(html)

	runes := []rune(text)
	if len(runes) <= ExcerptLimit {
		return text
	}

	return string(runes[:ExcerptLimit]) + "..."
}

// FirstImageSrc returns the src of the first <img> tag in the HTML, or an
// empty string when there is none.
func FirstImageSrc(html string) string {
	match := imgSrcPattern.FindStringSubmatch(html)
	if match == nil {
		return ""
	}
	return match[1]
}

// mediaContentURL pulls the url attribute out of a full media:content tag
// as returned by ExtractTag in wrapper mode.
func mediaContentURL(tag string) string {
	match := mediaURLPattern.FindStringSubmatch(tag)
	if match == nil {
		return ""
	}
	return match[1]
}
