package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"git-notebook/app"
	"git-notebook/config"
	"git-notebook/handlers"
	"git-notebook/metrics"
	"git-notebook/middleware"
	"git-notebook/notes"
	"git-notebook/services"
	"git-notebook/validator"
	"git-notebook/vcs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	config.Load()

	logger := setupLogger()
	slog.SetDefault(logger)

	if err := validator.New().Validate(config.AppConfig); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Bootstrap the repository and the note file. Any failure here is fatal:
	// the notebook must not serve without a working commit pipeline.
	versionStore, err := vcs.Open(vcs.Config{
		Dir:         config.AppConfig.RepoDir,
		AuthorName:  config.AppConfig.AuthorName,
		AuthorEmail: config.AppConfig.AuthorEmail,
	})
	if err != nil {
		logger.Error("failed to initialize repository", "error", err)
		os.Exit(1)
	}

	noteStore := notes.NewStore(notes.Config{
		Dir:      config.AppConfig.RepoDir,
		Filename: config.AppConfig.NoteFile,
	})

	if err := services.Bootstrap(noteStore, versionStore); err != nil {
		logger.Error("failed to bootstrap notebook", "error", err)
		os.Exit(1)
	}
	logger.Info("notebook ready", "repo", config.AppConfig.RepoDir, "note", noteStore.Path())

	recorder := metrics.NewRecorder(nil)
	autosave := services.NewAutosaveService(noteStore, versionStore, recorder)
	application := app.New(autosave, config.AppConfig.NoteFile, logger)

	fiberApp := fiber.New(fiber.Config{
		ReadTimeout:           time.Second * 10,
		WriteTimeout:          time.Second * 10,
		IdleTimeout:           time.Second * 30,
		DisableStartupMessage: config.AppConfig.Env == "production",
		ErrorHandler:          customErrorHandler(logger),
	})

	fiberApp.Use(
		recover.New(),
		middleware.StructuredLogger(logger),
		middleware.Security(),
		cors.New(cors.Config{
			AllowOrigins: config.GetEnv("CORS_ORIGINS", "*"),
			AllowMethods: "GET,POST,OPTIONS",
			AllowHeaders: "Origin,Content-Type,Accept",
			MaxAge:       86400,
		}),
		limiter.New(limiter.Config{
			Max:        200,
			Expiration: time.Minute,
			KeyGenerator: func(c *fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c *fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"error": "Rate limit exceeded",
				})
			},
		}),
	)

	fiberApp.Get("/", handlers.HomePage(application))
	fiberApp.Post("/save", handlers.SaveNote(application))
	fiberApp.Get("/preview", handlers.PreviewPage(application))
	fiberApp.Get("/health", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"status": "ok"}) })
	fiberApp.Get("/metrics", adaptor.HTTPHandler(recorder.HTTPHandler()))

	logger.Info("starting server", "port", config.AppConfig.Port, "env", config.AppConfig.Env)

	go func() {
		if err := fiberApp.Listen(":" + config.AppConfig.Port); err != nil {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := fiberApp.ShutdownWithContext(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server stopped")
}

func setupLogger() *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level:     getLogLevel(),
		AddSource: config.AppConfig.Env == "development",
	}

	if config.AppConfig.Env == "production" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

func getLogLevel() slog.Level {
	level := config.GetEnv("LOG_LEVEL", "info")
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func customErrorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal server error"

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			message = e.Message
		}

		requestID := ""
		if id, ok := c.Locals("requestID").(string); ok {
			requestID = id
		}

		logger.Error("request failed",
			"request_id", requestID,
			"method", c.Method(),
			"path", c.Path(),
			"status", code,
			"error", err,
		)

		return c.Status(code).JSON(fiber.Map{
			"error":      message,
			"request_id": requestID,
		})
	}
}
