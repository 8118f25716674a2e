package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logger"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/gumutoni/tasktidy/internal/config"
	"github.com/gumutoni/tasktidy/internal/db"
	"github.com/gumutoni/tasktidy/internal/handler"
	"github.com/gumutoni/tasktidy/internal/job"
	"github.com/gumutoni/tasktidy/internal/middleware"
	"github.com/gumutoni/tasktidy/internal/repo"
	"github.com/gumutoni/tasktidy/internal/schedule"
	"github.com/gumutoni/tasktidy/internal/service"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "tasktidy",
		Short: "tasktidy backend server",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run tasktidy server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			logger.Init(
				cfg.LogConfig.File,
				cfg.LogConfig.Level,
				int(cfg.LogConfig.FileCount),
				int(cfg.LogConfig.FileSize),
				int(cfg.LogConfig.KeepDays),
				cfg.LogConfig.Console,
			)
			logutil.GetLogger(context.Background()).Info("config loaded",
				zap.String("environment", cfg.Environment),
				zap.Int("port", cfg.Port),
			)

			// A store that is unreachable at startup is fatal.
			conn, err := db.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			if err := db.ApplyMigrations(conn); err != nil {
				return fmt.Errorf("migrations: %w", err)
			}
			return runServer(cfg, conn)
		},
	}

	runCmd.Flags().StringVar(&configPath, "config", "", "path to config.json (optional, env vars override)")
	rootCmd.AddCommand(runCmd)

	if err := rootCmd.Execute(); err != nil {
		logutil.GetLogger(context.Background()).Fatal("startup error", zap.Error(err))
	}
}

func runServer(cfg *config.Config, conn *sql.DB) error {
	userRepo := repo.NewUserRepo(conn)
	taskRepo := repo.NewTaskRepo(conn)

	jwtTTL := time.Hour * time.Duration(cfg.JWTTTLHours)
	authService := service.NewAuthService(userRepo, []byte(cfg.JWTSecret), jwtTTL)
	taskService := service.NewTaskService(taskRepo)
	storeHealth := service.NewStoreHealth()

	scheduler := schedule.NewCronScheduler()
	if err := scheduler.AddJob(job.NewStorePingJob(conn, storeHealth), "* * * * *"); err != nil {
		return fmt.Errorf("schedule store ping: %w", err)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.CORS(cfg.CORSOrigins),
		gzip.Gzip(gzip.DefaultCompression),
	)
	handler.RegisterRoutes(engine, handler.RouterDeps{
		Auth:   handler.NewAuthHandler(authService),
		Tasks:  handler.NewTaskHandler(taskService),
		System: handler.NewSystemHandler(cfg.Environment, storeHealth),
	})

	addr := fmt.Sprintf("0.0.0.0:%d", cfg.Port)
	server := &http.Server{Addr: addr, Handler: engine}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scheduler.Start(ctx)
	defer scheduler.Stop()

	logutil.GetLogger(ctx).Info("http server listening", zap.String("addr", addr))
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logutil.GetLogger(context.Background()).Error("server error", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logutil.GetLogger(context.Background()).Info("server stopping...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
