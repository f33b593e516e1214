// Package main boots the POS Checkout Service HTTP server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fairyhunter13/pos-checkout-service/internal/audit"
	"github.com/fairyhunter13/pos-checkout-service/internal/catalog"
	"github.com/fairyhunter13/pos-checkout-service/internal/config"
	httpapi "github.com/fairyhunter13/pos-checkout-service/internal/http"
	"github.com/fairyhunter13/pos-checkout-service/internal/obs"
	"github.com/fairyhunter13/pos-checkout-service/internal/pos"
)

func main() {
	cfg := config.Load()
	obs.InitLogger(cfg.LogLevel)
	obs.Logger.Info("service_starting")

	auditLog := audit.New(cfg.AuditLogPath)
	defer func() {
		if err := auditLog.Close(); err != nil {
			obs.Logger.Error("audit_log_close_error", "error", err)
		}
	}()

	cat := catalog.Seed()
	cart := pos.NewCart(cfg.CartCapacity)
	history := pos.NewHistory(cfg.OrderCapacity)
	svc := pos.NewService(cat, cart, history, auditLog, os.Stdout)

	app := httpapi.NewApp(cfg, svc)
	mux := httpapi.NewRouter(app)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		obs.Logger.Info("http_listen", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			obs.Logger.Error("http_server_error", "error", err)
			os.Exit(1)
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	s := <-sigc
	obs.Logger.Info("shutdown_signal", "signal", s.String())

	ctxSrv, cancelSrv := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancelSrv()
	if err := srv.Shutdown(ctxSrv); err != nil {
		obs.Logger.Error("http_shutdown_error", "error", err)
	}
	obs.Logger.Info("service_stopped")
}
