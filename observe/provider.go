package observe

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// ServiceName is reported as service.name on every exported series.
const ServiceName = "vimy-hero"

// InitProvider installs an SDK meter provider backed by the Prometheus
// exporter as the global provider. When addr is not empty, /metrics is
// served there in the background.
//
// Returns a shutdown function; call it in a defer from main().
func InitProvider(addr string) (shutdown func(context.Context) error, err error) {
	res, err := resource.Merge(
		resource.Default(),
		resource.NewSchemaless(semconv.ServiceName(ServiceName)),
	)
	if err != nil {
		return nil, err
	}

	exp, err := promexporter.New()
	if err != nil {
		return nil, err
	}
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(exp),
	)
	otel.SetMeterProvider(mp)

	var srv *http.Server
	if addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		srv = &http.Server{Addr: addr, Handler: mux}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("metrics server failed", "addr", addr, "error", err)
			}
		}()
		slog.Info("serving metrics", "addr", addr)
	}

	return func(ctx context.Context) error {
		var errs []error
		if srv != nil {
			errs = append(errs, srv.Shutdown(ctx))
		}
		errs = append(errs, mp.Shutdown(ctx))
		return errors.Join(errs...)
	}, nil
}
