package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"anatomy-explorer-backend/internal/config"
	"anatomy-explorer-backend/internal/database"
	"anatomy-explorer-backend/internal/lib/slogcustom"
	"anatomy-explorer-backend/internal/password"
	"anatomy-explorer-backend/internal/router"
	"anatomy-explorer-backend/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// @title           Anatomy Explorer API
// @version         1.0
// @description     Backend for the 3D anatomy labelling tool: accounts, label sets, quizzes and model assets
// @host            localhost:8000
// @BasePath        /

func main() {
	envFile := pflag.String("env-file", ".env", "dotenv file loaded before reading the environment")
	addr := pflag.String("addr", "", "listen address, overrides PORT")
	pflag.Parse()

	envErr := godotenv.Load(*envFile)

	cfg := config.Load()
	slog.SetDefault(slog.New(slogcustom.NewCustomHandler(os.Stdout, cfg.SlogLevel())))
	if envErr != nil && !errors.Is(envErr, fs.ErrNotExist) {
		slog.Warn("could not load env file", "path", *envFile, "error", envErr)
	}

	if err := run(cfg, *addr); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, addr string) error {
	if err := cfg.EnsureModelsDir(); err != nil {
		return err
	}

	key, generated, err := cfg.SessionKey()
	if err != nil {
		return err
	}
	if generated {
		slog.Warn("SECRET_KEY not set, using a random session key; sessions end when the process exits")
	}
	sealer, err := session.NewSealer(key)
	if err != nil {
		return err
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(db); err != nil {
		return err
	}
	if cfg.AdminUsername != "" && cfg.AdminPassword != "" {
		if err := database.EnsureAdmin(db, cfg.AdminUsername, cfg.AdminPassword, password.Interactive); err != nil {
			return err
		}
	}

	if cfg.SlogLevel() > slog.LevelDebug {
		gin.SetMode(gin.ReleaseMode)
	}
	r, err := router.New(router.Options{
		Config:         cfg,
		DB:             db,
		Sealer:         sealer,
		PasswordParams: password.Interactive,
	})
	if err != nil {
		return err
	}

	if addr == "" {
		addr = ":" + cfg.Port
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", addr, "models_dir", cfg.ModelsDir)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
