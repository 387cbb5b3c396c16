package feed

import (
	"strings"
	"testing"
)

const wellFormedRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"
  xmlns:content="http://purl.org/rss/1.0/modules/content/"
  xmlns:dc="http://purl.org/dc/elements/1.1/"
  xmlns:media="http://search.yahoo.com/mrss/">
  <channel>
    <title>Company Blog</title>
    <link>https://example.com</link>
    <description>Insights</description>
    <item>
      <title>How AI Helps</title>
      <link>https://example.com/posts/how-ai-helps</link>
      <guid>post-guid-1</guid>
      <pubDate>Mon, 03 Jul 2023 10:00:00 GMT</pubDate>
      <dc:creator>Jane Smith</dc:creator>
      <description>Short description</description>
      <content:encoded><![CDATA[<p>Full article body</p><img src="https://example.com/inline.png">]]></content:encoded>
      <media:content url="https://cdn.example.com/hero.jpg" medium="image"></media:content>
      <category>AI</category>
      <category>Business</category>
    </item>
    <item>
      <title></title>
      <link>https://example.com/posts/untitled</link>
    </item>
    <item>
      <title>Plain Item</title>
      <link>https://example.com/posts/plain</link>
      <description>Only a description</description>
    </item>
  </channel>
</rss>`

func TestStrictParser_Run(t *testing.T) {
	parser := NewStrictParser()

	entries, err := parser.Run([]byte(wellFormedRSS))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	// The title-less item is discarded
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}

	first := entries[0]
	if first.Title != "How AI Helps" {
		t.Errorf("Expected title, got %q", first.Title)
	}
	if first.GUID != "post-guid-1" {
		t.Errorf("Expected guid from feed, got %q", first.GUID)
	}
	if !strings.Contains(first.Content, "Full article body") {
		t.Errorf("Expected content:encoded preferred over description, got %q", first.Content)
	}
	if first.Creator != "Jane Smith" {
		t.Errorf("Expected dc:creator, got %q", first.Creator)
	}
	if first.PublishedRaw != "Mon, 03 Jul 2023 10:00:00 GMT" {
		t.Errorf("Expected raw date string, got %q", first.PublishedRaw)
	}
	if len(first.Categories) != 2 || first.Categories[0] != "AI" || first.Categories[1] != "Business" {
		t.Errorf("Expected ordered categories, got %v", first.Categories)
	}
}

func TestStrictParser_MediaContentPreferredOverInlineImage(t *testing.T) {
	parser := NewStrictParser()

	entries, err := parser.Run([]byte(wellFormedRSS))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if entries[0].ImageURL != "https://cdn.example.com/hero.jpg" {
		t.Errorf("Expected structured media URL preferred, got %q", entries[0].ImageURL)
	}
}

func TestStrictParser_DescriptionFallback(t *testing.T) {
	parser := NewStrictParser()

	entries, err := parser.Run([]byte(wellFormedRSS))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	plain := entries[1]
	if plain.Content != "Only a description" {
		t.Errorf("Expected description as content fallback, got %q", plain.Content)
	}
	if plain.GUID != "" {
		t.Errorf("Expected empty guid when feed has none, got %q", plain.GUID)
	}
}

func TestStrictParser_MalformedXML(t *testing.T) {
	parser := NewStrictParser()

	if _, err := parser.Run([]byte("this is not xml at all")); err == nil {
		t.Fatal("Expected error for malformed input")
	}
}
