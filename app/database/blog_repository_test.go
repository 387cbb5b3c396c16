package database

import (
	"path/filepath"
	"testing"
	"time"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := NewConnection(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, _, err := RunMigrations(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

func samplePost(slug string) BlogPost {
	return BlogPost{
		ExternalID:  "ext-" + slug,
		Title:       "Title " + slug,
		Slug:        slug,
		Content:     "<p>body</p>",
		Excerpt:     "body",
		Author:      "Jane Smith",
		PublishedAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		ImageURL:    "https://example.com/img.png",
		Tags:        []string{"AI", "Business"},
		LastFetched: time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC),
	}
}

func TestSQLBlogRepository_CreateAndGet(t *testing.T) {
	repo := NewSQLBlogRepository(newTestDB(t))

	created, err := repo.CreatePost(samplePost("first-post"))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if created.ID == 0 {
		t.Error("Expected assigned id")
	}

	fetched, err := repo.GetPostBySlug("first-post")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if fetched == nil {
		t.Fatal("Expected post by slug")
	}
	if fetched.ExternalID != "ext-first-post" || fetched.Author != "Jane Smith" {
		t.Errorf("Unexpected round trip: %+v", fetched)
	}
	if len(fetched.Tags) != 2 || fetched.Tags[0] != "AI" {
		t.Errorf("Expected tags round-tripped, got %v", fetched.Tags)
	}
	if !fetched.PublishedAt.Equal(created.PublishedAt) {
		t.Errorf("Expected publish date preserved, got %v", fetched.PublishedAt)
	}

	byID, err := repo.GetPostByID(created.ID)
	if err != nil || byID == nil {
		t.Fatalf("Expected post by id, got post=%v err=%v", byID, err)
	}
}

func TestSQLBlogRepository_MissingLookupsReturnNil(t *testing.T) {
	repo := NewSQLBlogRepository(newTestDB(t))

	post, err := repo.GetPostBySlug("nope")
	if err != nil || post != nil {
		t.Errorf("Expected (nil, nil) for unknown slug, got post=%v err=%v", post, err)
	}

	post, err = repo.GetPostByID(42)
	if err != nil || post != nil {
		t.Errorf("Expected (nil, nil) for unknown id, got post=%v err=%v", post, err)
	}
}

func TestSQLBlogRepository_UniqueConstraints(t *testing.T) {
	repo := NewSQLBlogRepository(newTestDB(t))

	if _, err := repo.CreatePost(samplePost("same")); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	dup := samplePost("same")
	dup.ExternalID = "different-ext"
	if _, err := repo.CreatePost(dup); err == nil {
		t.Fatal("Expected error for duplicate slug")
	}

	dupExt := samplePost("other-slug")
	dupExt.ExternalID = "ext-same"
	if _, err := repo.CreatePost(dupExt); err == nil {
		t.Fatal("Expected error for duplicate external id")
	}
}

func TestSQLBlogRepository_UpdatePost(t *testing.T) {
	repo := NewSQLBlogRepository(newTestDB(t))
	created, _ := repo.CreatePost(samplePost("original"))

	updated, err := repo.UpdatePost(created.ID, PostUpdate{
		Title:       "Revised",
		Content:     "<p>new</p>",
		Excerpt:     "new",
		Author:      "John Doe",
		PublishedAt: created.PublishedAt,
		ImageURL:    created.ImageURL,
		Tags:        []string{"Updated"},
		LastFetched: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if updated.Title != "Revised" || updated.Author != "John Doe" {
		t.Errorf("Expected fields updated, got %+v", updated)
	}
	if updated.Slug != "original" || updated.ExternalID != "ext-original" {
		t.Error("Slug and external id must survive updates")
	}
	if len(updated.Tags) != 1 || updated.Tags[0] != "Updated" {
		t.Errorf("Expected tags replaced, got %v", updated.Tags)
	}

	missing, err := repo.UpdatePost(9999, PostUpdate{})
	if err != nil || missing != nil {
		t.Errorf("Expected (nil, nil) for unknown id, got post=%v err=%v", missing, err)
	}
}

func TestSQLBlogRepository_DeletePost(t *testing.T) {
	repo := NewSQLBlogRepository(newTestDB(t))
	created, _ := repo.CreatePost(samplePost("doomed"))

	deleted, err := repo.DeletePost(created.ID)
	if err != nil || !deleted {
		t.Errorf("Expected delete to succeed, got deleted=%v err=%v", deleted, err)
	}

	deleted, err = repo.DeletePost(created.ID)
	if err != nil || deleted {
		t.Errorf("Expected repeat delete to report false, got deleted=%v err=%v", deleted, err)
	}
}

func TestSQLBlogRepository_ListPostsOrdering(t *testing.T) {
	repo := NewSQLBlogRepository(newTestDB(t))

	older := samplePost("old")
	older.PublishedAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := samplePost("new")
	newer.PublishedAt = time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	repo.CreatePost(older)
	repo.CreatePost(newer)

	posts, err := repo.ListPosts()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("Expected 2 posts, got %d", len(posts))
	}
	if posts[0].Slug != "new" || posts[1].Slug != "old" {
		t.Errorf("Expected newest first, got %s then %s", posts[0].Slug, posts[1].Slug)
	}
}

func TestSQLLeadRepository(t *testing.T) {
	repo := NewSQLLeadRepository(newTestDB(t))

	contact, err := repo.CreateContact(Contact{
		Name:    "Jane Smith",
		Email:   "jane@example.com",
		Company: "Acme",
		Message: "Hello",
		Source:  "website",
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if contact.ID == 0 {
		t.Error("Expected assigned id")
	}

	booking, err := repo.CreateBooking(Booking{
		ContactID: contact.ID,
		Service:   "consultation",
		Date:      time.Date(2025, 9, 1, 14, 0, 0, 0, time.UTC),
		Notes:     "afternoon preferred",
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if booking.Status != "pending" {
		t.Errorf("Expected default pending status, got %q", booking.Status)
	}

	contacts, err := repo.ListContacts()
	if err != nil || len(contacts) != 1 {
		t.Fatalf("Expected 1 contact, got %d (err=%v)", len(contacts), err)
	}
	if contacts[0].Email != "jane@example.com" {
		t.Errorf("Unexpected contact round trip: %+v", contacts[0])
	}

	bookings, err := repo.ListBookings()
	if err != nil || len(bookings) != 1 {
		t.Fatalf("Expected 1 booking, got %d (err=%v)", len(bookings), err)
	}
	if bookings[0].Service != "consultation" {
		t.Errorf("Unexpected booking round trip: %+v", bookings[0])
	}
}
