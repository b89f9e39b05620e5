package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"blob-loader/core/config"
	"blob-loader/core/logger"
	"blob-loader/core/middleware/auth"
	"blob-loader/core/middleware/rayid"
	"blob-loader/core/storage"
	"blob-loader/feature/fetch"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "blob-loader/docs/swagger"
)

// @title blob-loader API
// @version 1.0
// @description Serves objects from cloud storage buckets as UTF-8 text.
// @host localhost:8080
// @BasePath /

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Starts the HTTP server exposing GET /objects/:bucket/*key.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		store, err := storage.NewClient(cmd.Context(), cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}
		defer storage.Close(store)

		app := newApp(cfg, store, logg)

		go func() {
			logg.Info("Starting server",
				zap.String("port", cfg.Server.Port),
				zap.String("provider", cfg.Storage.Provider),
				zap.String("project", cfg.Storage.Project),
			)
			if err := app.Listen(cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}

// newApp builds the Fiber application serving objects from store.
func newApp(cfg *config.Config, store storage.Client, logg *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		UnescapePath:          true,
	})

	// RayID first so every log line can be traced
	app.Use(rayid.New())

	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})

	// Swagger documentation (public)
	app.Get("/swagger/*", swagger.HandlerDefault)

	if cfg.Server.AuthEnabled() {
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))
	} else {
		logg.Warn("API key not configured, serving objects without authentication")
	}

	fetch.NewHandler(fetch.NewService(store, cfg.Storage.Bucket, logg)).RegisterRoutes(app)

	return app
}
