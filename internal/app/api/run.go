package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	ordersobs "github.com/fonoma/order-totals-api/internal/domains/orders/adapters/observability"
	ordersapp "github.com/fonoma/order-totals-api/internal/domains/orders/application"
	platformobservability "github.com/fonoma/order-totals-api/internal/platform/observability"
	apiserver "github.com/fonoma/order-totals-api/server"
)

// Run boots the order totals HTTP API with observability wired.
func Run(ctx context.Context) error {
	const serviceName = "order-totals-api"

	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	instruments, shutdown, err := platformobservability.Init(ctx, serviceName, cfg.Environment, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	ordersService := ordersobs.New(
		ordersapp.NewService(),
		ordersobs.WithLogger(logger),
		ordersobs.WithTracer(instruments.Tracer("internal.domains.orders.application")),
		ordersobs.WithMeter(instruments.Meter("internal.domains.orders.application")),
	)

	handlers := apiserver.ApiHandleFunctions{
		OrdersAPI: apiserver.NewOrdersAPI(ordersService),
	}
	router := apiserver.NewRouter(handlers, otelgin.Middleware(serviceName))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	notifyCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("order totals API listening", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("order totals API server exited", slog.String("error", err.Error()))
			return err
		}
	case <-notifyCtx.Done():
		logger.Info("shutting down order totals API")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("http server shutdown failed", slog.String("error", err.Error()))
			return err
		}
	}

	logger.Info("order totals API stopped")
	return nil
}
