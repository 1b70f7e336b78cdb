package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/devfolio/backend/internal/cache"
	"github.com/devfolio/backend/internal/handler"
	"github.com/devfolio/backend/internal/logging"
	"github.com/devfolio/backend/internal/repository"
	"github.com/devfolio/backend/internal/service"
	"github.com/devfolio/backend/pkg/auth"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	logging.Setup()

	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		frontendURL = "http://localhost:3000"
	}

	db, err := repository.Database(context.Background())
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = db.Client().Disconnect(ctx)
	}()

	activityRepo := repository.NewMongoActivityRepository(db)
	contactRepo := repository.NewMongoContactRepository(db)
	pageViewRepo := repository.NewMongoPageViewRepository(db)
	settingsRepo := repository.NewMongoSettingsRepository(db)
	userRepo := repository.NewMongoUserRepository(db)
	sessionRepo := repository.NewMongoSessionRepository(db)

	activityService := service.NewActivityService(activityRepo)
	contactService := service.NewContactService(contactRepo, activityService)
	pageViewService := service.NewPageViewService(pageViewRepo, activityService)
	settingsService := service.NewSettingsService(settingsRepo, activityService)
	profileService := service.NewProfileService(settingsRepo, cache.New(nil), service.DefaultProfileTTL)
	authService := service.NewAuthService(userRepo)
	sessionService := service.NewSessionService(sessionRepo, userRepo)

	// First-run admin account from env; no-op once users exist.
	if err := authService.EnsureAdmin(context.Background(),
		os.Getenv("ADMIN_EMAIL"), os.Getenv("ADMIN_PASSWORD"), os.Getenv("ADMIN_NAME")); err != nil {
		logging.Fatal("failed to seed admin account", "error", err)
	}

	secureCookies := os.Getenv("SECURE_COOKIES") != "false"

	h := handler.New(db, frontendURL)
	authHandler := handler.NewAuthHandler(authService, sessionService, secureCookies)
	activityHandler := handler.NewActivityHandler(activityService)
	contactHandler := handler.NewContactHandler(contactService)
	pageViewHandler := handler.NewPageViewHandler(pageViewService)
	settingsHandler := handler.NewSettingsHandler(settingsService, profileService)
	profileHandler := handler.NewProfileHandler(profileService)

	requireAuth := auth.RequireAuth(sessionService)
	optionalAuth := auth.OptionalAuth(sessionService)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.Health)
	mux.HandleFunc("GET /api/profile", profileHandler.Get)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/auth/logout", authHandler.Logout)
	mux.Handle("GET /api/me", requireAuth(http.HandlerFunc(authHandler.Me)))

	// Public write paths carry optional identity so ledger attribution works
	// for logged-in admins browsing the public site.
	mux.Handle("POST /api/contact", optionalAuth(http.HandlerFunc(contactHandler.Submit)))
	mux.Handle("POST /api/views", optionalAuth(http.HandlerFunc(pageViewHandler.Increment)))
	mux.HandleFunc("GET /api/views", pageViewHandler.Count)
	mux.Handle("POST /api/activity", optionalAuth(http.HandlerFunc(activityHandler.Record)))

	// Admin panel API
	mux.Handle("GET /api/admin/activity", requireAuth(http.HandlerFunc(activityHandler.List)))
	mux.Handle("GET /api/admin/activity/recent", requireAuth(http.HandlerFunc(activityHandler.Recent)))
	mux.Handle("GET /api/admin/messages", requireAuth(http.HandlerFunc(contactHandler.AdminList)))
	mux.Handle("GET /api/admin/messages/counts", requireAuth(http.HandlerFunc(contactHandler.Counts)))
	mux.Handle("GET /api/admin/messages/{id}", requireAuth(http.HandlerFunc(contactHandler.Get)))
	mux.Handle("PATCH /api/admin/messages/{id}/read", requireAuth(http.HandlerFunc(contactHandler.MarkRead)))
	mux.Handle("PATCH /api/admin/messages/{id}/replied", requireAuth(http.HandlerFunc(contactHandler.MarkReplied)))
	mux.Handle("POST /api/admin/messages/{id}/reply", requireAuth(http.HandlerFunc(contactHandler.Reply)))
	mux.Handle("PATCH /api/admin/messages/{id}/archive", requireAuth(http.HandlerFunc(contactHandler.Archive)))
	mux.Handle("DELETE /api/admin/messages/{id}", requireAuth(http.HandlerFunc(contactHandler.Delete)))
	mux.Handle("POST /api/admin/messages/{id}/tags", requireAuth(http.HandlerFunc(contactHandler.AddTag)))
	mux.Handle("PATCH /api/admin/messages/{id}/priority", requireAuth(http.HandlerFunc(contactHandler.SetPriority)))
	mux.Handle("GET /api/admin/settings", requireAuth(http.HandlerFunc(settingsHandler.List)))
	mux.Handle("GET /api/admin/settings/{key}", requireAuth(http.HandlerFunc(settingsHandler.Get)))
	mux.Handle("PUT /api/admin/settings/{key}", requireAuth(http.HandlerFunc(settingsHandler.Update)))
	mux.Handle("DELETE /api/admin/settings/{key}", requireAuth(http.HandlerFunc(settingsHandler.Delete)))

	rateLimit := 120
	if v := os.Getenv("RATE_LIMIT_PER_MINUTE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			rateLimit = n
		}
	}
	limiter := handler.NewRateLimiter(rateLimit)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      h.CORS(handler.SecurityHeaders(limiter.Middleware(handler.RequestLogger(mux)))),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
