package database

import (
	"sort"
	"sync"
	"time"
)

// MemoryBlogRepository is the in-memory BlogRepository backend, used in
// development and tests. It honors the same contract as the SQLite
// implementation, including slug uniqueness.
type MemoryBlogRepository struct {
	mu     sync.RWMutex
	posts  map[int64]BlogPost
	nextID int64
}

var _ BlogRepository = (*MemoryBlogRepository)(nil)

func NewMemoryBlogRepository() *MemoryBlogRepository {
	return &MemoryBlogRepository{
		posts:  make(map[int64]BlogPost),
		nextID: 1,
	}
}

func (r *MemoryBlogRepository) GetPostBySlug(slug string) (*BlogPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, post := range r.posts {
		if post.Slug == slug {
			p := post
			return &p, nil
		}
	}

	return nil, nil
}

func (r *MemoryBlogRepository) GetPostByID(id int64) (*BlogPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	post, ok := r.posts[id]
	if !ok {
		return nil, nil
	}

	p := post
	return &p, nil
}

func (r *MemoryBlogRepository) CreatePost(post BlogPost) (*BlogPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.posts {
		if existing.Slug == post.Slug {
			return nil, errSlugExists(post.Slug)
		}
	}

	now := time.Now().UTC()
	post.ID = r.nextID
	post.CreatedAt = now
	post.UpdatedAt = now
	r.nextID++
	r.posts[post.ID] = post

	p := post
	return &p, nil
}

func (r *MemoryBlogRepository) UpdatePost(id int64, update PostUpdate) (*BlogPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post, ok := r.posts[id]
	if !ok {
		return nil, nil
	}

	post.Title = update.Title
	post.Content = update.Content
	post.Excerpt = update.Excerpt
	post.Author = update.Author
	post.PublishedAt = update.PublishedAt
	post.ImageURL = update.ImageURL
	post.Tags = update.Tags
	post.LastFetched = update.LastFetched
	post.UpdatedAt = time.Now().UTC()
	r.posts[id] = post

	p := post
	return &p, nil
}

func (r *MemoryBlogRepository) DeletePost(id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.posts[id]; !ok {
		return false, nil
	}

	delete(r.posts, id)
	return true, nil
}

func (r *MemoryBlogRepository) ListPosts() ([]BlogPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	posts := make([]BlogPost, 0, len(r.posts))
	for _, post := range r.posts {
		posts = append(posts, post)
	}

	sort.Slice(posts, func(i, j int) bool {
		if !posts[i].PublishedAt.Equal(posts[j].PublishedAt) {
			return posts[i].PublishedAt.After(posts[j].PublishedAt)
		}
		return posts[i].ID > posts[j].ID
	})

	return posts, nil
}

type errSlugExists string

func (e errSlugExists) Error() string {
	return "post with slug already exists: " + string(e)
}

// MemoryLeadRepository is the in-memory LeadRepository backend.
type MemoryLeadRepository struct {
	mu            sync.RWMutex
	contacts      map[int64]Contact
	bookings      map[int64]Booking
	nextContactID int64
	nextBookingID int64
}

var _ LeadRepository = (*MemoryLeadRepository)(nil)

func NewMemoryLeadRepository() *MemoryLeadRepository {
	return &MemoryLeadRepository{
		contacts:      make(map[int64]Contact),
		bookings:      make(map[int64]Booking),
		nextContactID: 1,
		nextBookingID: 1,
	}
}

func (r *MemoryLeadRepository) CreateContact(contact Contact) (*Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	contact.ID = r.nextContactID
	contact.CreatedAt = time.Now().UTC()
	r.nextContactID++
	r.contacts[contact.ID] = contact

	c := contact
	return &c, nil
}

func (r *MemoryLeadRepository) ListContacts() ([]Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	contacts := make([]Contact, 0, len(r.contacts))
	for _, c := range r.contacts {
		contacts = append(contacts, c)
	}

	sort.Slice(contacts, func(i, j int) bool {
		return contacts[i].ID > contacts[j].ID
	})

	return contacts, nil
}

func (r *MemoryLeadRepository) CreateBooking(booking Booking) (*Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if booking.Status == "" {
		booking.Status = "pending"
	}

	booking.ID = r.nextBookingID
	booking.CreatedAt = time.Now().UTC()
	r.nextBookingID++
	r.bookings[booking.ID] = booking

	b := booking
	return &b, nil
}

func (r *MemoryLeadRepository) ListBookings() ([]Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bookings := make([]Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		bookings = append(bookings, b)
	}

	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].ID > bookings[j].ID
	})

	return bookings, nil
}
