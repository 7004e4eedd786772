package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/Aranruth94/book-social-network/config"
	"github.com/Aranruth94/book-social-network/db"
	authhandler "github.com/Aranruth94/book-social-network/internal/auth/handler"
	authrepo "github.com/Aranruth94/book-social-network/internal/auth/repository/postgres"
	authservice "github.com/Aranruth94/book-social-network/internal/auth/service"
	bookhandler "github.com/Aranruth94/book-social-network/internal/book/handler"
	bookrepo "github.com/Aranruth94/book-social-network/internal/book/repository/postgres"
	bookservice "github.com/Aranruth94/book-social-network/internal/book/service"
	feedbackhandler "github.com/Aranruth94/book-social-network/internal/feedback/handler"
	feedbackrepo "github.com/Aranruth94/book-social-network/internal/feedback/repository/postgres"
	feedbackservice "github.com/Aranruth94/book-social-network/internal/feedback/service"
	"github.com/Aranruth94/book-social-network/internal/notification"
	"github.com/Aranruth94/book-social-network/internal/web"
	"github.com/gofiber/fiber/v2"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := setupLogger(cfg.Env)
	slog.SetDefault(logger)

	pool, err := db.NewPostgresPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	userRepo := authrepo.NewPostgresUserRepository(pool)
	tokenRepo := authrepo.NewPostgresTokenRepository(pool)
	bookRepo := bookrepo.NewPostgresBookRepository(pool)
	loanRepo := bookrepo.NewPostgresLoanRepository(pool)
	fbRepo := feedbackrepo.NewPostgresFeedbackRepository(pool)

	mailer := notification.NewMailer(
		cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword,
		cfg.SMTPFrom, cfg.ActivationURL,
	)

	tokenService := authservice.NewTokenService(cfg.JWTSecret, cfg.JWTExpiryMinutes)
	activationService := authservice.NewActivationService(
		userRepo, tokenRepo, mailer,
		cfg.ActivationTTLMinutes, cfg.ActivationCodeLength,
	)
	authService := authservice.NewAuthService(userRepo, activationService, tokenService)
	lendingService := bookservice.NewLendingService(bookRepo, loanRepo)
	bookSvc := bookservice.NewBookService(bookRepo, loanRepo)
	feedbackService := feedbackservice.NewFeedbackService(bookRepo, fbRepo)

	app := fiber.New(fiber.Config{
		ErrorHandler: web.ErrorHandler,
	})

	requireAuth := web.RequireAuth(tokenService)
	authhandler.RegisterRoutes(app, authhandler.NewAuthHandler(authService, activationService))
	bookhandler.RegisterRoutes(app, bookhandler.NewBookHandler(bookSvc, lendingService), requireAuth)
	feedbackhandler.RegisterRoutes(app, feedbackhandler.NewFeedbackHandler(feedbackService), requireAuth)

	logger.Info("starting book network service", "port", cfg.Port, "env", cfg.Env)
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func setupLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	case "staging":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}
