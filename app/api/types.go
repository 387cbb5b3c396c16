package api

import (
	"context"

	"github.com/strategix-ai/site-server/app/blog"
	"github.com/strategix-ai/site-server/app/database"
	"github.com/strategix-ai/site-server/app/mailer"
)

// SyncService is the sync orchestrator surface the API depends on.
type SyncService interface {
	Run(ctx context.Context, forceUpdate bool) (blog.SyncResult, error)
	Summary() (blog.Summary, error)
	DeletePost(id int64) bool
}

var _ SyncService = (*blog.Syncer)(nil)

type Handler struct {
	blogRepo database.BlogRepository
	leadRepo database.LeadRepository
	syncer   SyncService
	mailer   *mailer.Mailer
	version  string
}

// contactRequest is the contact form submission body.
type contactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Company string `json:"company"`
	Message string `json:"message"`
	Source  string `json:"source"`
}

// bookingRequest is the consultation booking body. Date is RFC 3339.
type bookingRequest struct {
	ContactID int64  `json:"contactId"`
	Service   string `json:"service" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Notes     string `json:"notes"`
}
