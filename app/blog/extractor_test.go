package blog

import (
	"strings"
	"testing"
)

func TestContentExtractor_Run(t *testing.T) {
	html := `<html><head><title>Sample Article</title></head><body>
		<nav>Home | About | Contact</nav>
		<article>
			<h1>Sample Article</h1>
			<p>This is the main content of the article. It contains several paragraphs of meaningful text that should survive extraction.</p>
			<p>This is another paragraph with more content, adding enough substance for the extraction heuristics to pick the article body.</p>
			<p>Here is some more substantial content to ensure the character threshold is met and the body is treated as the main content area.</p>
		</article>
		<footer>Copyright 2025</footer>
	</body></html>`

	extractor := NewContentExtractor()

	content, err := extractor.Run([]byte(html))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if !strings.Contains(content, "main content of the article") {
		t.Errorf("Expected article body extracted, got %q", content)
	}
}

func TestContentExtractor_EmptyInput(t *testing.T) {
	extractor := NewContentExtractor()

	if _, err := extractor.Run(nil); err == nil {
		t.Fatal("Expected error for empty input")
	}
}
