package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"country-db/core/loader"
	"country-db/core/logger"
	"country-db/core/middleware/auth"
	"country-db/core/middleware/rayid"
	"country-db/core/storage"
	"country-db/feature/countries"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the country table HTTP API",
	Long:  `Starts the HTTP server. Builds are cached for build.cache_ttl_seconds and shared by all requests.`,
	RunE:  runServe,
}

func init() {
	RootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, logg, err := bootstrap(false)
	if err != nil {
		return err
	}
	defer logg.Sync()
	zap.ReplaceGlobals(logg)

	var client storage.Client
	if needsStorage(cfg.Sources) {
		if client, err = newStorage(ctx, cfg.Storage); err != nil {
			return err
		}
	}

	builder, err := newBuilder(cfg, client, logg)
	if err != nil {
		return err
	}
	svc := countries.NewService(builder, cfg.Build.CacheTTL(), logg)

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	mgr := loader.NewManager(logg)
	mgr.Register(countries.NewFeature(svc))

	// RayID first so every later log line carries it.
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

	if cfg.Server.AuthEnabled() {
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))
	} else {
		logg.Warn("API key not set, requests are not authenticated")
	}

	if err := mgr.LoadAll(app); err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		logg.Info("Starting server", zap.String("address", cfg.Server.Address()))
		errCh <- app.Listen(cfg.Server.Address())
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case <-sig:
	}

	logg.Info("Shutting down server...")
	return app.Shutdown()
}
