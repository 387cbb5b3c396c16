package blog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/strategix-ai/site-server/app/database"
	"github.com/strategix-ai/site-server/app/feed"
)

// SyncResult aggregates one sync run. Per-item detail is a logging
// concern, not part of the contract.
type SyncResult struct {
	Imported int `json:"imported"`
	Updated  int `json:"updated"`
}

// Summary is a cheap listing of the blog store for observability.
type Summary struct {
	Count  int      `json:"count"`
	Titles []string `json:"titles"`
	IDs    []int64  `json:"ids"`
}

// Syncer drives one sync cycle: fetch, parse with fallback, then per entry
// normalize, look up by slug and create or update. One bad entry never
// aborts the batch.
type Syncer struct {
	fetcher    *feed.Fetcher
	parser     feed.Parser
	normalizer *Normalizer
	extractor  *ContentExtractor
	repo       database.BlogRepository
	feedURL    string
}

func NewSyncer(fetcher *feed.Fetcher, parser feed.Parser, normalizer *Normalizer,
	extractor *ContentExtractor, repo database.BlogRepository, feedURL string) *Syncer {
	return &Syncer{
		fetcher:    fetcher,
		parser:     parser,
		normalizer: normalizer,
		extractor:  extractor,
		repo:       repo,
		feedURL:    feedURL,
	}
}

// Run executes one sync cycle. Fetch failures abort the whole run; a feed
// that parses to zero usable entries is a valid state, not an error.
func (s *Syncer) Run(ctx context.Context, forceUpdate bool) (SyncResult, error) {
	if s.feedURL == "" {
		return SyncResult{}, fmt.Errorf("feed URL is not configured")
	}

	data, err := s.fetcher.Run(ctx, s.feedURL)
	if err != nil {
		var statusErr *feed.StatusError
		if errors.As(err, &statusErr) {
			slog.Error("Feed fetch failed",
				"url", s.feedURL,
				"status", statusErr.Status,
				"body", statusErr.Snippet)
		}
		return SyncResult{}, fmt.Errorf("failed to fetch feed: %w", err)
	}

	entries, err := s.parser.Run(data)
	if err != nil {
		slog.Warn("Feed could not be parsed, treating as empty", "error", err)
		return SyncResult{}, nil
	}

	var result SyncResult
	for _, entry := range entries {
		if err := s.processEntry(ctx, entry, forceUpdate, &result); err != nil {
			slog.Error("Failed to process feed entry", "title", entry.Title, "error", err)
		}
	}

	slog.Info("Blog sync complete",
		"total", len(entries),
		"imported", result.Imported,
		"updated", result.Updated,
		"force_update", forceUpdate)

	return result, nil
}

func (s *Syncer) processEntry(ctx context.Context, entry feed.Entry, forceUpdate bool, result *SyncResult) error {
	s.fillMissingContent(ctx, &entry)

	post, err := s.normalizer.Run(entry)
	if err != nil {
		return fmt.Errorf("failed to normalize entry: %w", err)
	}

	existing, err := s.repo.GetPostBySlug(post.Slug)
	if err != nil {
		return fmt.Errorf("failed to look up slug %q: %w", post.Slug, err)
	}

	if existing == nil {
		if _, err := s.repo.CreatePost(post); err != nil {
			return fmt.Errorf("failed to create post: %w", err)
		}
		slog.Info("Imported new blog post", "title", post.Title, "slug", post.Slug)
		result.Imported++
		return nil
	}

	if !forceUpdate {
		slog.Debug("Blog post already exists, skipping", "slug", post.Slug)
		return nil
	}

	// Forced update overwrites mutable fields only; ExternalID and Slug
	// stay as created.
	update := database.PostUpdate{
		Title:       post.Title,
		Content:     post.Content,
		Excerpt:     post.Excerpt,
		Author:      post.Author,
		PublishedAt: post.PublishedAt,
		ImageURL:    post.ImageURL,
		Tags:        post.Tags,
		LastFetched: post.LastFetched,
	}
	if _, err := s.repo.UpdatePost(existing.ID, update); err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	slog.Info("Updated existing blog post", "title", post.Title, "slug", post.Slug)
	result.Updated++
	return nil
}

// fillMissingContent fetches the linked article page and extracts its body
// when the feed item itself carried none. Failures leave the entry as-is.
func (s *Syncer) fillMissingContent(ctx context.Context, entry *feed.Entry) {
	if s.extractor == nil || entry.Content != "" || entry.Link == "" {
		return
	}

	page, err := s.fetcher.Run(ctx, entry.Link)
	if err != nil {
		slog.Warn("Failed to fetch article page for content extraction",
			"link", entry.Link, "error", err)
		return
	}

	content, err := s.extractor.Run(page)
	if err != nil {
		slog.Warn("Failed to extract article content",
			"link", entry.Link, "error", err)
		return
	}

	entry.Content = content
}

// Summary lists post counts, titles and ids for debugging endpoints.
func (s *Syncer) Summary() (Summary, error) {
	posts, err := s.repo.ListPosts()
	if err != nil {
		return Summary{}, fmt.Errorf("failed to list posts: %w", err)
	}

	summary := Summary{
		Count:  len(posts),
		Titles: make([]string, 0, len(posts)),
		IDs:    make([]int64, 0, len(posts)),
	}
	for _, post := range posts {
		summary.Titles = append(summary.Titles, post.Title)
		summary.IDs = append(summary.IDs, post.ID)
	}

	return summary, nil
}

// DeletePost removes a post by id. Idempotent: a missing id returns false,
// and store errors are logged rather than raised.
func (s *Syncer) DeletePost(id int64) bool {
	deleted, err := s.repo.DeletePost(id)
	if err != nil {
		slog.Error("Failed to delete blog post", "id", id, "error", err)
		return false
	}

	return deleted
}
