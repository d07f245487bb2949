package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/cors"

	"clinic-booking-api/internal/auth"
	"clinic-booking-api/internal/config"
	"clinic-booking-api/internal/handler"
	"clinic-booking-api/internal/logging"
	"clinic-booking-api/internal/notify"
	"clinic-booking-api/internal/realtime"
	"clinic-booking-api/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(os.Stdout, cfg.LogLevel)
	ctx := context.Background()
	if cfg.InsecureDefaults() {
		logger.Warn(ctx, "running with default JWT_SECRET or ADMIN_PASSWORD, set both outside development")
	}

	catalog, err := store.LoadCatalog(cfg.CatalogFile)
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}

	// admin password is hashed here and never kept in clear
	gate, err := auth.NewGate(cfg.AdminPassword, cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		log.Fatalf("auth: %v", err)
	}

	hub := notify.NewHub(notify.DefaultBuffer, logger.With("component", "notify"))
	st := store.New(hub, logger.With("component", "store"))
	h := handler.New(st, catalog, gate, hub, logger.With("component", "http"))
	bridge := realtime.New(hub, logger.With("component", "ws"), cfg.CORSOrigins)

	var static http.Handler
	if fi, err := os.Stat(cfg.StaticDir); err == nil && fi.IsDir() {
		static = http.FileServer(http.Dir(cfg.StaticDir))
	} else {
		logger.Info(ctx, "static dir not found, not serving files", "dir", cfg.StaticDir)
	}

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: c.Handler(h.Routes(bridge.Handler(), static)),
	}
	go func() {
		logger.Info(ctx, "listening", "addr", cfg.Addr(), "doctors", len(catalog.Doctors()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http: %v", err)
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	logger.Info(ctx, "shutting down")

	sctx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		logger.Error(ctx, "shutdown", "err", err)
	}
}
