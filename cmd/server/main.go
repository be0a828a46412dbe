package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"

	httpadapter "resume-builder/internal/adapter/http"
	repo "resume-builder/internal/adapter/repository"
	"resume-builder/internal/auth"
	"resume-builder/internal/catalog"
	"resume-builder/internal/config"
	"resume-builder/internal/infrastructure/migration"
	"resume-builder/internal/mail"
	"resume-builder/internal/render"
	"resume-builder/internal/usecase"
	infra "resume-builder/pkg/infrastructure"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	logger := newLogger(cfg, os.Stdout)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := infra.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()
	if err := migration.RunMigrations(ctx, pool); err != nil {
		return err
	}

	mailer, err := newMailer(cfg, logger)
	if err != nil {
		return err
	}
	var google usecase.GoogleProvider
	if cfg.GoogleEnabled() {
		google = auth.NewGoogleOAuth(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleCallbackURL)
	} else {
		logger.Warn("google login disabled, GOOGLE_CLIENT_ID or GOOGLE_CLIENT_SECRET missing")
	}

	tokens := auth.NewTokens(cfg.JWTSecret, cfg.JWTExpiresIn)
	accounts := usecase.NewAuthService(repo.NewUsersRepo(pool), tokens, google, mailer, cfg.FrontendURL)
	templates := catalog.Default()
	resumes := usecase.NewResumeService(repo.NewResumesRepo(pool), newRenderer(cfg, logger), templates)

	opts := httpadapter.Options{
		Development:     cfg.Development(),
		FrontendURL:     cfg.FrontendURL,
		RateLimitMax:    cfg.RateLimitMax,
		RateLimitWindow: cfg.RateLimitWindow,
		AccessLog:       true,
	}
	if cfg.RedisURL != "" {
		storage, err := infra.NewRedisStorage(ctx, cfg.RedisURL, "resume-builder:limiter:")
		if err != nil {
			return err
		}
		defer storage.Close()
		opts.LimiterStorage = storage
	}

	app := httpadapter.NewApp(httpadapter.NewHandler(accounts, resumes, templates), opts)
	return serve(ctx, app, ":"+cfg.Port, logger)
}

// serve listens until ctx is canceled, then drains in-flight requests.
func serve(ctx context.Context, app *fiber.App, addr string, logger *slog.Logger) error {
	errc := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", addr)
		errc <- app.Listen(addr)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func newRenderer(cfg *config.Config, logger *slog.Logger) usecase.Renderer {
	opts := []render.Option{render.WithLogger(logger)}
	if cfg.PDFFontRegular != "" {
		opts = append(opts, render.WithFonts(render.TrueTypeFonts{
			RegularPath: cfg.PDFFontRegular,
			BoldPath:    cfg.PDFFontBold,
		}))
	}
	if cfg.PDFRenderer == "chrome" {
		logger.Info("pdf renderer: headless chrome")
		return render.NewHTMLRenderer(infra.NewChromedpRenderer(cfg.ChromePath), opts...)
	}
	logger.Info("pdf renderer: layout")
	return render.NewGenerator(opts...)
}

func newMailer(cfg *config.Config, logger *slog.Logger) (usecase.Mailer, error) {
	if cfg.SMTPHost == "" {
		logger.Warn("SMTP_HOST not set, reset e-mails are only logged")
		return mail.LogMailer{Logger: logger}, nil
	}
	return mail.NewSMTPMailer(mail.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPassword,
		From:     cfg.EmailFrom,
		Logger:   logger,
	})
}
