package blog

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/araddon/dateparse"
	"gopkg.in/yaml.v3"

	"github.com/strategix-ai/site-server/app/database"
)

// MockPost is the YAML shape for development seed posts.
type MockPost struct {
	ExternalID  string   `yaml:"external_id"`
	Title       string   `yaml:"title"`
	Slug        string   `yaml:"slug"`
	Content     string   `yaml:"content"`
	Excerpt     string   `yaml:"excerpt"`
	Author      string   `yaml:"author"`
	PublishedAt string   `yaml:"published_at"`
	ImageURL    string   `yaml:"image_url"`
	Tags        []string `yaml:"tags"`
}

// LoadMockPosts reads development seed posts from a YAML file.
func LoadMockPosts(path string) ([]database.BlogPost, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mock posts file: %w", err)
	}

	var mocks []MockPost
	if err := yaml.Unmarshal(data, &mocks); err != nil {
		return nil, fmt.Errorf("failed to parse mock posts file: %w", err)
	}

	posts := make([]database.BlogPost, 0, len(mocks))
	for _, mock := range mocks {
		posts = append(posts, mock.toPost())
	}

	return posts, nil
}

func (m MockPost) toPost() database.BlogPost {
	now := time.Now().UTC()

	publishedAt := now
	if m.PublishedAt != "" {
		if parsed, err := dateparse.ParseAny(m.PublishedAt); err == nil {
			publishedAt = parsed.UTC()
		}
	}

	slug := m.Slug
	if slug == "" {
		slug = Slugify(m.Title)
	}

	externalID := m.ExternalID
	if externalID == "" {
		externalID = "mock-" + slug
	}

	return database.BlogPost{
		ExternalID:  externalID,
		Title:       m.Title,
		Slug:        slug,
		Content:     m.Content,
		Excerpt:     m.Excerpt,
		Author:      m.Author,
		PublishedAt: publishedAt,
		ImageURL:    m.ImageURL,
		Tags:        m.Tags,
		LastFetched: now,
	}
}

// DefaultMockPosts returns the built-in development seed set, used when no
// mock posts file is configured.
func DefaultMockPosts() []database.BlogPost {
	now := time.Now().UTC()

	return []database.BlogPost{
		{
			ExternalID:  "mock-1",
			Title:       "Getting Started with AI in Business",
			Slug:        "getting-started-with-ai-in-business",
			Content:     "<p>Artificial Intelligence is changing how businesses operate, from automating routine tasks to surfacing insights buried in data.</p><p>This article covers the practical first steps for bringing AI into day-to-day operations.</p>",
			Excerpt:     "Artificial Intelligence is changing how businesses operate, from automating routine tasks to surfacing insights buried in data...",
			Author:      "Jane Smith",
			PublishedAt: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			ImageURL:    "https://picsum.photos/seed/ai1/800/600",
			Tags:        []string{"AI", "Business", "Technology"},
			LastFetched: now,
		},
		{
			ExternalID:  "mock-2",
			Title:       "The Future of Strategic Planning with Machine Learning",
			Slug:        "future-of-strategic-planning-with-ml",
			Content:     "<p>Machine learning models can surface patterns in historical data that human planners miss.</p><p>Here is how forward-looking companies fold those signals into their strategic planning.</p>",
			Excerpt:     "Machine learning models can surface patterns in historical data that human planners miss...",
			Author:      "John Doe",
			PublishedAt: time.Date(2025, 2, 22, 0, 0, 0, 0, time.UTC),
			ImageURL:    "https://picsum.photos/seed/ml1/800/600",
			Tags:        []string{"Machine Learning", "Strategy", "Innovation"},
			LastFetched: now,
		},
		{
			ExternalID:  "mock-3",
			Title:       "Implementing Data-Driven Decision Making in Your Organization",
			Slug:        "implementing-data-driven-decision-making",
			Content:     "<p>Basing decisions on objective data rather than intuition alone consistently produces better outcomes.</p><p>A step-by-step guide to rolling out data-driven practices across an organization.</p>",
			Excerpt:     "Basing decisions on objective data rather than intuition alone consistently produces better outcomes...",
			Author:      "Sarah Johnson",
			PublishedAt: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			ImageURL:    "https://picsum.photos/seed/data1/800/600",
			Tags:        []string{"Data", "Decision Making", "Analytics"},
			LastFetched: now,
		},
	}
}

// SeedMockPosts inserts mock posts that are not already present, keyed by
// slug like the real sync path. Returns the number created.
func SeedMockPosts(repo database.BlogRepository, posts []database.BlogPost) int {
	created := 0

	for _, post := range posts {
		existing, err := repo.GetPostBySlug(post.Slug)
		if err != nil {
			slog.Warn("Failed to check mock post", "slug", post.Slug, "error", err)
			continue
		}
		if existing != nil {
			continue
		}

		if _, err := repo.CreatePost(post); err != nil {
			slog.Warn("Failed to create mock post", "slug", post.Slug, "error", err)
			continue
		}

		slog.Info("Created mock blog post", "title", post.Title)
		created++
	}

	return created
}
