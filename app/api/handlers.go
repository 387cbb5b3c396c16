package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/strategix-ai/site-server/app/database"
	"github.com/strategix-ai/site-server/app/mailer"
)

func NewHandler(blogRepo database.BlogRepository, leadRepo database.LeadRepository,
	syncer SyncService, m *mailer.Mailer, version string) *Handler {
	return &Handler{
		blogRepo: blogRepo,
		leadRepo: leadRepo,
		syncer:   syncer,
		mailer:   m,
		version:  version,
	}
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := gin.H{
		"status":    "ok",
		"version":   h.version,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	posts, err := h.blogRepo.ListPosts()
	if err != nil {
		slog.Error("Database error", "operation", "health_check", "error", err)
		health["status"] = "degraded"
		c.JSON(http.StatusServiceUnavailable, health)
		return
	}

	health["posts"] = len(posts)
	c.JSON(http.StatusOK, health)
}

func (h *Handler) GetPosts(c *gin.Context) {
	posts, err := h.blogRepo.ListPosts()
	if err != nil {
		slog.Error("Database error", "operation", "list_posts", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list posts"})
		return
	}

	if posts == nil {
		posts = []database.BlogPost{}
	}

	c.JSON(http.StatusOK, posts)
}

func (h *Handler) GetPostBySlug(c *gin.Context) {
	slug := c.Param("slug")

	post, err := h.blogRepo.GetPostBySlug(slug)
	if err != nil {
		slog.Error("Database error", "operation", "get_post", "slug", slug, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load post"})
		return
	}

	if post == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *Handler) CreateContact(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact, err := h.leadRepo.CreateContact(database.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Company: req.Company,
		Message: req.Message,
		Source:  req.Source,
	})
	if err != nil {
		slog.Error("Database error", "operation", "create_contact", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save contact"})
		return
	}

	// Notification failures are logged, never surfaced to the visitor.
	go h.mailer.NotifyContact(*contact)

	c.JSON(http.StatusCreated, contact)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req bookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be RFC 3339"})
		return
	}

	booking, err := h.leadRepo.CreateBooking(database.Booking{
		ContactID: req.ContactID,
		Service:   req.Service,
		Date:      date,
		Notes:     req.Notes,
	})
	if err != nil {
		slog.Error("Database error", "operation", "create_booking", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save booking"})
		return
	}

	go h.mailer.NotifyBooking(*booking)

	c.JSON(http.StatusCreated, booking)
}

func (h *Handler) TriggerSync(c *gin.Context) {
	forceUpdate := c.Query("force") == "true"

	result, err := h.syncer.Run(c.Request.Context(), forceUpdate)
	if err != nil {
		slog.Error("On-demand blog sync failed", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "blog sync failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) GetSummary(c *gin.Context) {
	summary, err := h.syncer.Summary()
	if err != nil {
		slog.Error("Failed to build blog summary", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *Handler) DeletePost(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	deleted := h.syncer.DeletePost(id)
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"deleted": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) ListContacts(c *gin.Context) {
	contacts, err := h.leadRepo.ListContacts()
	if err != nil {
		slog.Error("Database error", "operation", "list_contacts", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list contacts"})
		return
	}

	if contacts == nil {
		contacts = []database.Contact{}
	}

	c.JSON(http.StatusOK, contacts)
}

func (h *Handler) ListBookings(c *gin.Context) {
	bookings, err := h.leadRepo.ListBookings()
	if err != nil {
		slog.Error("Database error", "operation", "list_bookings", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookings"})
		return
	}

	if bookings == nil {
		bookings = []database.Booking{}
	}

	c.JSON(http.StatusOK, bookings)
}
