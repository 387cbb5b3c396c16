package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/strategix-ai/site-server/app/api"
	"github.com/strategix-ai/site-server/app/blog"
	"github.com/strategix-ai/site-server/app/cfg"
	"github.com/strategix-ai/site-server/app/database"
	"github.com/strategix-ai/site-server/app/feed"
	"github.com/strategix-ai/site-server/app/mailer"
	"github.com/strategix-ai/site-server/app/scheduler"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	setupLogging(appCfg.Debug)
	slog.Info("Starting site server", "version", appCfg.Version, "environment", appCfg.Environment)

	blogRepo, leadRepo, closeStorage, err := setupStorage(appCfg)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer closeStorage()

	// Core sync pipeline
	fetcher := feed.NewFetcher(&http.Client{}, appCfg.UserAgent,
		time.Duration(appCfg.FetchTimeout)*time.Second)
	parser := feed.NewFallbackParser()
	normalizer := blog.NewNormalizer()
	extractor := blog.NewContentExtractor()
	syncer := blog.NewSyncer(fetcher, parser, normalizer, extractor, blogRepo, appCfg.FeedURL)

	if appCfg.FeedURL == "" {
		slog.Warn("RSS_FEED_URL is not set, blog sync is disabled")
	}

	// Development seeds mock posts instead of hitting the network.
	if appCfg.IsDevelopment() && !appCfg.ForceRealFeed {
		seedMockPosts(appCfg, blogRepo)
	}

	var syncScheduler *scheduler.Scheduler
	if appCfg.SyncEnabled() {
		syncScheduler = scheduler.NewScheduler(syncer,
			time.Duration(appCfg.SyncInterval)*time.Minute, false)
		syncScheduler.Start()
		defer syncScheduler.Stop()
	}

	// Lead notification email
	var leadMailer *mailer.Mailer
	if appCfg.SMTPHost != "" {
		sender := mailer.NewSMTPSender(appCfg.SMTPHost, appCfg.SMTPPort,
			appCfg.SMTPUsername, appCfg.SMTPPassword, appCfg.EmailFrom)
		leadMailer = mailer.NewMailer(sender, appCfg.NotifyEmail)
	} else {
		slog.Warn("SMTP_HOST is not set, lead notification email is disabled")
	}

	// HTTP server
	handler := api.NewHandler(blogRepo, leadRepo, syncer, leadMailer, appCfg.Version)
	server := api.NewServer(handler, appCfg.APIAccessKey)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("Starting HTTP server", "port", appCfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped")
	}
}

func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

// setupStorage builds the repository pair for the configured backend.
func setupStorage(appCfg *cfg.Cfg) (database.BlogRepository, database.LeadRepository, func(), error) {
	if appCfg.Storage == "memory" {
		slog.Info("Using in-memory storage")
		return database.NewMemoryBlogRepository(), database.NewMemoryLeadRepository(), func() {}, nil
	}

	slog.Info("Connecting to database", "path", appCfg.DBPath)
	db, err := database.NewConnection(appCfg.DBPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	version, dirty, err := database.RunMigrations(db)
	if err != nil {
		db.Close()
		return nil, nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	slog.Info("Database migrations applied", "version", version, "dirty", dirty)

	return database.NewSQLBlogRepository(db), database.NewSQLLeadRepository(db),
		func() { db.Close() }, nil
}

func seedMockPosts(appCfg *cfg.Cfg, repo database.BlogRepository) {
	posts := blog.DefaultMockPosts()

	if appCfg.MockPostsFile != "" {
		loaded, err := blog.LoadMockPosts(appCfg.MockPostsFile)
		if err != nil {
			slog.Warn("Failed to load mock posts file, using built-in set",
				"file", appCfg.MockPostsFile, "error", err)
		} else {
			posts = loaded
		}
	}

	created := blog.SeedMockPosts(repo, posts)
	slog.Info("Development mode: seeded mock blog posts", "created", created)
}
