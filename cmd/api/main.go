package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Urvashitiwari2522/CMP-query-portal/internal/config"
	"github.com/Urvashitiwari2522/CMP-query-portal/internal/database"
	"github.com/Urvashitiwari2522/CMP-query-portal/internal/repository/postgres"
	"github.com/Urvashitiwari2522/CMP-query-portal/internal/router"
	"github.com/Urvashitiwari2522/CMP-query-portal/internal/service"
	"github.com/Urvashitiwari2522/CMP-query-portal/pkg/logger"
)

func main() {
	// config + logger
	cfg := config.Load()
	l := logger.New(cfg.Env)

	// db
	pool, err := database.Open(context.Background(), cfg)
	if err != nil {
		l.Fatal().Err(err).Msg("db connect failed")
	}
	defer pool.Close()

	if err := database.Init(context.Background(), pool); err != nil {
		l.Fatal().Err(err).Msg("schema init failed")
	}

	// explicit one-shot bootstrap: seed the default admin if absent
	auth := service.NewAuthService(postgres.NewAdminRepo(pool), cfg.SessionSecret)
	if err := auth.EnsureDefaultAdmin(context.Background(), cfg.AdminUser, cfg.AdminPass); err != nil {
		l.Fatal().Err(err).Msg("admin bootstrap failed")
	}

	// http
	r := router.New(l, pool, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		l.Info().Str("addr", srv.Addr).Msg("api listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			l.Fatal().Err(err).Msg("server error")
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	l.Info().Msg("shutdown complete")
}
