package cmd

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"roster-hub/core/archive"
	"roster-hub/core/config"
	"roster-hub/core/loader"
	"roster-hub/core/logger"
	"roster-hub/core/middleware/rayid"
	"roster-hub/core/reconcile"
	"roster-hub/core/scheduler"
	"roster-hub/feature/mocksource"
	"roster-hub/feature/oneroster"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "roster-hub/docs/swagger"
)

// @title Roster Hub API
// @version 1.0
// @description Read-only OneRoster v1.1 API over reconciled SIS and LMS data.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the roster hub server",
	Long:  `Starts the HTTP server, warms the snapshot cache and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Snapshot cache over the source pipeline
		cache := reconcile.NewCache(newPipeline(cfg, logg), cfg.Cache.Options(), logg)

		// 4. Snapshot archive (Optional)
		arch, err := newArchive(ctx, cfg, logg)
		if err != nil {
			logg.Warn("Optional snapshot archive unavailable", zap.Error(err))
		} else if arch != nil {
			cache.AddObserver(arch)
			if cfg.Cache.WarmStart {
				warmStart(ctx, logg, arch, cache)
			}
		}

		// 5. Refresh journal (Optional)
		var history oneroster.History
		if j, err := newJournal(ctx, cfg, logg); err != nil {
			logg.Warn("Optional refresh journal unavailable", zap.Error(err))
		} else if j != nil {
			cache.AddObserver(j)
			history = j
			logg.Info("Connected to journal database", zap.String("driver", cfg.Database.Driver))
		}

		// 6. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		// 7. Initialize Feature Loader
		mgr := loader.NewManager(logg)
		mgr.Register(oneroster.NewFeature(cache, history, logg))
		mgr.Register(mocksource.NewFeature(cfg.Server.MockSources, logg))

		// Middleware Registration
		// RayID must be first to trace everything
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

		// Swagger Documentation
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 8. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 9. Start Server
		go func() {
			logg.Info("Starting server", zap.String("addr", cfg.Server.Addr()))
			if err := app.Listen(cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// Build the first snapshot in the background. With mock sources the
		// server must be listening before the sources are reachable.
		go func() {
			if _, err := cache.Get(ctx); err != nil {
				logg.Warn("Initial snapshot build failed", zap.Error(err))
			}
		}()

		// 10. Scheduled refreshes (Optional)
		var sched *scheduler.Scheduler
		if spec := cfg.Cache.RefreshSchedule; spec != "" {
			if sched, err = scheduler.New(spec, cache, logg); err != nil {
				logg.Fatal("Failed to create refresh schedule", zap.Error(err))
			}
			sched.Start()
		}

		// 11. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout())
		defer cancel()
		if sched != nil {
			if err := sched.Stop(shutdownCtx); err != nil {
				logg.Warn("Refresh schedule did not stop in time", zap.Error(err))
			}
		}
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			logg.Warn("Server shutdown incomplete", zap.Error(err))
		}
		cache.Wait()
	},
}

// warmStart seeds the cache with the latest archived snapshot.
func warmStart(ctx context.Context, l *zap.Logger, arch *archive.Archive, cache *reconcile.Cache) {
	snap, err := arch.Latest(ctx)
	switch {
	case errors.Is(err, archive.ErrNoSnapshot):
		l.Info("No archived snapshot to warm start from")
	case err != nil:
		l.Warn("Failed to load archived snapshot", zap.Error(err))
	default:
		cache.Seed(snap)
	}
}

func init() {
	RootCmd.AddCommand(startCmd)
}
