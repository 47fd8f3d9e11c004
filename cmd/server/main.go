package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"storefront/internal/config"
	apphttp "storefront/internal/http"
	"storefront/internal/repository/sqlite"
	"storefront/internal/service"
	"storefront/internal/session"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "storefront",
	Short:         "Storefront backend: users, products and admin sessions over SQLite",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE:  runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a config file (default ./config.{yaml,json,toml} if present)")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(adminCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("open database: %v", err)
	}
	defer store.Close()

	sessions, closeSessions, err := buildSessionStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("setup sessions: %v", err)
	}
	defer closeSessions()

	userService := service.NewUserService(store.Users)
	productService := service.NewProductService(store.Products)
	adminService := service.NewAdminService(store.Admins, sessions)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	handler := apphttp.NewHandler(userService, productService, adminService, apphttp.Options{
		CookieName:   cfg.Session.CookieName,
		SessionTTL:   cfg.Session.TTL,
		SecureCookie: cfg.Session.Secure,
		CORSOrigins:  cfg.Server.CORSOrigins,
		StaticDir:    cfg.Server.StaticDir,
		Logger:       logger,
	})
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Infof("listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warnf("http shutdown: %v", err)
	}

	logger.Info("bye")
	return nil
}

func bootstrap() (config.Config, *logrus.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("load config: %w", err)
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, logger, nil
}

func newLogger(cfg config.Config) (*logrus.Logger, error) {
	logger := logrus.New()
	if cfg.Log.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	logger.SetLevel(level)
	return logger, nil
}

func openStore(ctx context.Context, cfg config.Config, logger *logrus.Logger) (*sqlite.Store, error) {
	db, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		return nil, err
	}
	store := sqlite.NewStore(db)

	seeded, err := store.Init(ctx, sqlite.DefaultAdmin{
		Username: cfg.Admin.DefaultUsername,
		Password: cfg.Admin.DefaultPassword,
		Email:    cfg.Admin.DefaultEmail,
	})
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	if seeded {
		logger.Warnf("seeded default admin %q; change its password", cfg.Admin.DefaultUsername)
	}
	return store, nil
}

func buildSessionStore(ctx context.Context, cfg config.Config, logger *logrus.Logger) (session.Store, func(), error) {
	if cfg.Session.Backend != "redis" {
		logger.Infof("using in-memory sessions (ttl %s)", cfg.Session.TTL)
		return session.NewMemoryStore(cfg.Session.TTL), func() {}, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, nil, fmt.Errorf("connect to redis at %s: %w", cfg.Redis.Addr, err)
	}
	logger.Infof("using redis sessions at %s (ttl %s)", cfg.Redis.Addr, cfg.Session.TTL)
	return session.NewRedisStore(rdb, cfg.Session.TTL), func() { rdb.Close() }, nil
}
