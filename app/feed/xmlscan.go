package feed

import (
	"regexp"
	"strings"
	"sync"
)

// tagPatterns caches compiled per-tag regexps; the resilient parser probes
// the same handful of tag names for every item.
var tagPatterns sync.Map

func tagPattern(tagName string) *regexp.Regexp {
	if re, ok := tagPatterns.Load(tagName); ok {
		return re.(*regexp.Regexp)
	}

	// Tag names are matched literally, so namespace prefixes like
	// "content:encoded" or "media:content" work without any namespace
	// handling. Attributes on the opening tag are ignored for matching.
	quoted := regexp.QuoteMeta(tagName)
	re := regexp.MustCompile(`(?is)<` + quoted + `(\s[^>]*)?>(.*?)</` + quoted + `>`)
	tagPatterns.Store(tagName, re)

	return re
}

// ExtractTag pulls the first occurrence of a named tag out of a raw XML
// string. It is a best-effort scanner, not a validating parser: malformed
// XML never causes an error, just an empty result.
//
// With includeWrapper false the trimmed inner text is returned. With
// includeWrapper true the whole matched tag is returned, opening-tag
// attributes included, for tags like media:content whose payload lives in
// an attribute rather than the inner text.
func ExtractTag(xml, tagName string, includeWrapper bool) string {
	if xml == "" || tagName == "" {
		return ""
	}

	match := tagPattern(tagName).FindStringSubmatch(xml)
	if match == nil {
		return ""
	}

	if includeWrapper {
		return match[0]
	}

	return strings.TrimSpace(match[2])
}
