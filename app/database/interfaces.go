package database

// BlogRepository is the blog record store consumed by the sync pipeline
// and the API. Lookups return (nil, nil) when no record exists. Two
// interchangeable implementations exist: SQLite and in-memory.
type BlogRepository interface {
	GetPostBySlug(slug string) (*BlogPost, error)
	GetPostByID(id int64) (*BlogPost, error)
	CreatePost(post BlogPost) (*BlogPost, error)
	UpdatePost(id int64, update PostUpdate) (*BlogPost, error)
	DeletePost(id int64) (bool, error)
	ListPosts() ([]BlogPost, error)
}

// LeadRepository stores contact form submissions and bookings.
type LeadRepository interface {
	CreateContact(contact Contact) (*Contact, error)
	ListContacts() ([]Contact, error)
	CreateBooking(booking Booking) (*Booking, error)
	ListBookings() ([]Booking, error)
}
