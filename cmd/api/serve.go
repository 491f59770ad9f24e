package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"clinic-backend/internal/config"
	"clinic-backend/internal/handlers"
	"clinic-backend/internal/middleware"
	"clinic-backend/internal/notify"
	"clinic-backend/internal/payment"
	"clinic-backend/internal/repository"
	"clinic-backend/internal/routes"
	"clinic-backend/internal/services"
	"clinic-backend/pkg/logger"
	"clinic-backend/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Jalankan HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := bootstrap()
			if err != nil {
				return err
			}
			defer logger.Sync()
			return serve(cmd.Context(), cfg)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	log := logger.Get()

	db, err := config.ConnectDB(cfg.DB)
	if err != nil {
		return err
	}
	defer func() {
		if err := config.CloseDB(db); err != nil {
			log.Warn("Gagal menutup database", zap.Error(err))
		}
	}()

	var notifier notify.Notifier = notify.Noop{}
	if cfg.FCMCredentials != "" {
		fcm, err := notify.NewFCM(ctx, cfg.FCMCredentials)
		if err != nil {
			log.Warn("FCM tidak aktif", zap.Error(err))
		} else {
			notifier = fcm
		}
	}

	var gateway payment.Gateway
	if cfg.Midtrans.ServerKey != "" {
		gateway = payment.NewMidtrans(cfg.Midtrans.ServerKey, cfg.Midtrans.Production)
	} else {
		log.Warn("MIDTRANS_SERVER_KEY kosong, endpoint pembayaran nonaktif")
	}

	svc := services.New(services.Deps{
		Store:             repository.New(db, cfg.DB.TxIsolation),
		Notifier:          notifier,
		Gateway:           gateway,
		JWTSecret:         cfg.Auth.Secret,
		JWTTTL:            cfg.Auth.TTL,
		DefaultTimezone:   cfg.DefaultTimezone,
		LowStockThreshold: cfg.LowStockThreshold,
	})

	metrics.Register(prometheus.DefaultRegisterer)

	limiter := middleware.NewIPRateLimiter(rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst)
	defer limiter.Stop()

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	routes.SetupRoutes(r, handlers.New(svc), routes.Options{
		AuthEnabled: cfg.Auth.Enabled,
		JWTSecret:   cfg.Auth.Secret,
		RateLimiter: limiter,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Server berjalan", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		return err
	case <-sigCtx.Done():
	}

	log.Info("Mematikan server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info("Server berhenti")
	return nil
}
