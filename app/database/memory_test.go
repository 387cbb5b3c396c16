package database

import (
	"testing"
	"time"
)

func TestMemoryBlogRepository_CreateAndLookup(t *testing.T) {
	repo := NewMemoryBlogRepository()

	created, err := repo.CreatePost(BlogPost{
		ExternalID: "ext-1",
		Title:      "First Post",
		Slug:       "first-post",
		Content:    "<p>body</p>",
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if created.ID == 0 {
		t.Error("Expected assigned id")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("Expected timestamps assigned on create")
	}

	bySlug, err := repo.GetPostBySlug("first-post")
	if err != nil || bySlug == nil {
		t.Fatalf("Expected post by slug, got post=%v err=%v", bySlug, err)
	}

	byID, err := repo.GetPostByID(created.ID)
	if err != nil || byID == nil {
		t.Fatalf("Expected post by id, got post=%v err=%v", byID, err)
	}
}

func TestMemoryBlogRepository_MissingLookupsReturnNil(t *testing.T) {
	repo := NewMemoryBlogRepository()

	post, err := repo.GetPostBySlug("nope")
	if err != nil || post != nil {
		t.Errorf("Expected (nil, nil) for unknown slug, got post=%v err=%v", post, err)
	}

	post, err = repo.GetPostByID(42)
	if err != nil || post != nil {
		t.Errorf("Expected (nil, nil) for unknown id, got post=%v err=%v", post, err)
	}
}

func TestMemoryBlogRepository_SlugUniqueness(t *testing.T) {
	repo := NewMemoryBlogRepository()

	if _, err := repo.CreatePost(BlogPost{Title: "A", Slug: "same"}); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if _, err := repo.CreatePost(BlogPost{Title: "B", Slug: "same"}); err == nil {
		t.Fatal("Expected error for duplicate slug")
	}
}

func TestMemoryBlogRepository_UpdatePost(t *testing.T) {
	repo := NewMemoryBlogRepository()
	created, _ := repo.CreatePost(BlogPost{
		ExternalID: "ext-1",
		Title:      "Original",
		Slug:       "original",
	})

	updated, err := repo.UpdatePost(created.ID, PostUpdate{
		Title:   "Revised",
		Content: "<p>new</p>",
		Author:  "Jane",
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if updated.Title != "Revised" || updated.Content != "<p>new</p>" {
		t.Errorf("Expected mutable fields updated, got %+v", updated)
	}
	if updated.ExternalID != "ext-1" || updated.Slug != "original" {
		t.Error("External id and slug must survive updates")
	}

	missing, err := repo.UpdatePost(9999, PostUpdate{})
	if err != nil || missing != nil {
		t.Errorf("Expected (nil, nil) for unknown id, got post=%v err=%v", missing, err)
	}
}

func TestMemoryBlogRepository_DeletePost(t *testing.T) {
	repo := NewMemoryBlogRepository()
	created, _ := repo.CreatePost(BlogPost{Title: "Doomed", Slug: "doomed"})

	deleted, err := repo.DeletePost(created.ID)
	if err != nil || !deleted {
		t.Errorf("Expected delete to succeed, got deleted=%v err=%v", deleted, err)
	}

	deleted, err = repo.DeletePost(created.ID)
	if err != nil || deleted {
		t.Errorf("Expected repeat delete to report false, got deleted=%v err=%v", deleted, err)
	}
}

func TestMemoryBlogRepository_ListPostsOrdering(t *testing.T) {
	repo := NewMemoryBlogRepository()

	older := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	repo.CreatePost(BlogPost{Title: "Old", Slug: "old", PublishedAt: older})
	repo.CreatePost(BlogPost{Title: "New", Slug: "new", PublishedAt: newer})
	repo.CreatePost(BlogPost{Title: "Tie", Slug: "tie", PublishedAt: newer})

	posts, err := repo.ListPosts()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("Expected 3 posts, got %d", len(posts))
	}

	// Newest publish date first, ties broken by newest id
	if posts[0].Slug != "tie" || posts[1].Slug != "new" || posts[2].Slug != "old" {
		t.Errorf("Unexpected ordering: %s, %s, %s", posts[0].Slug, posts[1].Slug, posts[2].Slug)
	}
}

func TestMemoryLeadRepository(t *testing.T) {
	repo := NewMemoryLeadRepository()

	contact, err := repo.CreateContact(Contact{
		Name:    "Jane Smith",
		Email:   "jane@example.com",
		Message: "Hello",
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if contact.ID == 0 || contact.CreatedAt.IsZero() {
		t.Error("Expected id and timestamp assigned")
	}

	booking, err := repo.CreateBooking(Booking{
		ContactID: contact.ID,
		Service:   "consultation",
		Date:      time.Date(2025, 9, 1, 14, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if booking.Status != "pending" {
		t.Errorf("Expected default pending status, got %q", booking.Status)
	}

	contacts, _ := repo.ListContacts()
	bookings, _ := repo.ListBookings()
	if len(contacts) != 1 || len(bookings) != 1 {
		t.Errorf("Expected 1 contact and 1 booking, got %d and %d", len(contacts), len(bookings))
	}
}
