// Command notifier receives item change events from the document store and
// pushes assignment notifications to the assignee's devices.
//
// The profile is chosen with APP_PROFILE (local, prod) and selects
// configs/{profile}.yaml; see internal/platform/config for the layering.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"

	"github.com/kimneyapti/notifier/internal/adapters/clients/fcm"
	adapthttp "github.com/kimneyapti/notifier/internal/adapters/http"
	"github.com/kimneyapti/notifier/internal/adapters/http/handlers"
	"github.com/kimneyapti/notifier/internal/adapters/http/middleware"
	"github.com/kimneyapti/notifier/internal/adapters/store"
	"github.com/kimneyapti/notifier/internal/app"
	"github.com/kimneyapti/notifier/internal/domain/notice"
	"github.com/kimneyapti/notifier/internal/platform/config"
	"github.com/kimneyapti/notifier/internal/platform/health"
	"github.com/kimneyapti/notifier/internal/platform/httpclient"
	"github.com/kimneyapti/notifier/internal/platform/logging"
	"github.com/kimneyapti/notifier/internal/platform/telemetry"
	"github.com/kimneyapti/notifier/internal/ports"
)

const telemetryFlushTimeout = 5 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "notifier: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE is required (local, prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return err
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	slog.SetDefault(logger)

	otel, err := telemetry.Setup(ctx, cfg.Telemetry, semconv.CloudRegion(cfg.Region))
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), telemetryFlushTimeout)
		defer cancel()
		if err := otel.Shutdown(flushCtx); err != nil {
			logger.Error("flushing telemetry", slog.Any("error", err))
		}
	}()

	injector := newContainer(ctx, cfg, logger, otel.Metrics)

	// Resolving the server builds the whole graph, opening the store.
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("wiring: %w", err)
	}
	backend := do.MustInvoke[store.Backend](injector)
	defer func() {
		if err := backend.Close(); err != nil {
			logger.Error("closing store", slog.Any("error", err))
		}
	}()

	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(backend, true)
	registry.Register(do.MustInvoke[*fcm.Client](injector), false)

	if err := server.Listen(); err != nil {
		return err
	}
	logger.Info("notifier ready",
		slog.String("profile", profile),
		slog.String("region", cfg.Region),
		slog.String("store", cfg.Store.Driver),
		slog.String("locale", cfg.Notification.Locale),
		slog.Int("max_concurrency", cfg.Events.MaxConcurrency),
		slog.String("addr", server.Addr()),
	)

	served := make(chan error, 1)
	go func() { served <- server.Start() }()

	select {
	case err := <-served:
		return err
	case <-ctx.Done():
		logger.Info("termination requested, draining")
	}

	if err := server.Shutdown(context.WithoutCancel(ctx)); err != nil {
		logger.Error("draining events", slog.Any("error", err))
	}
	if err := <-served; err != nil {
		return err
	}
	logger.Info("notifier stopped")
	return nil
}

// newContainer registers every component lazily; nothing connects until the
// server is resolved.
func newContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger, metrics *telemetry.Metrics) *do.RootScope {
	i := do.New()
	locale, _ := notice.ParseLocale(cfg.Notification.Locale)

	do.Provide(i, func(do.Injector) (store.Backend, error) {
		return store.Open(ctx, cfg.Store)
	})
	do.Provide(i, func(do.Injector) (*fcm.Client, error) {
		transport, err := fcm.NewTransport(ctx, cfg.Push.Auth)
		if err != nil {
			return nil, fmt.Errorf("push credentials: %w", err)
		}
		hc := httpclient.New(&cfg.Push.Client, fcm.ServiceName, metrics, logger, httpclient.WithTransport(transport))
		return fcm.NewClient(hc, cfg.Push.ProjectID, cfg.Push.MaxConcurrency, logger), nil
	})

	do.Provide(i, func(i do.Injector) (ports.NameResolver, error) {
		backend, err := do.Invoke[store.Backend](i)
		if err != nil {
			return nil, err
		}
		return app.NewDirectory(backend, locale, logger), nil
	})
	do.Provide(i, func(i do.Injector) (ports.Notifier, error) {
		backend, err := do.Invoke[store.Backend](i)
		if err != nil {
			return nil, err
		}
		sender, err := do.Invoke[*fcm.Client](i)
		if err != nil {
			return nil, err
		}
		return app.NewDispatcher(backend, sender, metrics, logger), nil
	})
	do.Provide(i, func(i do.Injector) (ports.AssignmentService, error) {
		names, err := do.Invoke[ports.NameResolver](i)
		if err != nil {
			return nil, err
		}
		notifier, err := do.Invoke[ports.Notifier](i)
		if err != nil {
			return nil, err
		}
		return app.NewAssignmentService(names, notifier, locale, metrics, logger), nil
	})

	do.Provide(i, func(do.Injector) (ports.HealthRegistry, error) {
		return health.New(health.WithCheckTimeout(cfg.Server.ReadinessTimeout)), nil
	})

	do.Provide(i, func(i do.Injector) (nethttp.Handler, error) {
		svc, err := do.Invoke[ports.AssignmentService](i)
		if err != nil {
			return nil, err
		}
		events := middleware.Chain(
			middleware.Concurrency(cfg.Events.MaxConcurrency, cfg.Events.AcquireTimeout),
			middleware.Timeout(cfg.Events.HandlerTimeout),
		)
		return adapthttp.NewRouter(
			handlers.NewEventHandler(svc),
			handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
			events,
			middleware.Recovery(logger),
			middleware.RequestIDs(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
		), nil
	})
	do.Provide(i, func(i do.Injector) (*adapthttp.Server, error) {
		handler, err := do.Invoke[nethttp.Handler](i)
		if err != nil {
			return nil, err
		}
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})

	return i
}
