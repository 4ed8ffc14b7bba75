// Package observe provides OpenTelemetry metrics for planning passes.
//
// Instruments are created from a [metric.MeterProvider]; [InitProvider]
// installs an SDK provider with a Prometheus exporter so the numbers can be
// scraped from /metrics. Tests should use [NewMetrics] with their own
// provider.
package observe

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// meterName is the instrumentation scope name used for all vimy-hero metrics.
const meterName = "github.com/nstehr/vimy/vimy-hero"

// Path rejection reasons.
const (
	RejectEnemyLethal     = "enemy_lethal"
	RejectIneligible      = "ineligible"
	RejectScoutExchange   = "scout_exchange"
	RejectUnresolvedBlock = "unresolved_block"
	RejectUnsafe          = "unsafe"
	RejectLocked          = "locked"
)

// Metrics holds the instruments. All fields are safe for concurrent use.
type Metrics struct {
	// GoalsProduced counts goals returned by behaviors. Use with attribute:
	//   attribute.String("kind", ...)
	GoalsProduced metric.Int64Counter

	// PathsRejected counts paths that did not become a goal. Use with attribute:
	//   attribute.String("reason", ...)
	PathsRejected metric.Int64Counter

	// ObjectsScanned counts candidate objects. Use with attribute:
	//   attribute.String("bucket", ...)
	ObjectsScanned metric.Int64Counter

	// DecomposeDuration tracks how long one behavior pass takes.
	DecomposeDuration metric.Float64Histogram
}

var passBuckets = []float64{
	0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1,
}

// NewMetrics creates all instruments from mp.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.GoalsProduced, err = m.Int64Counter("vimy_hero.goals.produced",
		metric.WithDescription("Goals produced by capture behaviors, by goal kind."),
	); err != nil {
		return nil, err
	}
	if met.PathsRejected, err = m.Int64Counter("vimy_hero.paths.rejected",
		metric.WithDescription("Candidate paths rejected, by reason."),
	); err != nil {
		return nil, err
	}
	if met.ObjectsScanned, err = m.Int64Counter("vimy_hero.objects.scanned",
		metric.WithDescription("Candidate objects evaluated, by bucket."),
	); err != nil {
		return nil, err
	}
	if met.DecomposeDuration, err = m.Float64Histogram("vimy_hero.decompose.duration",
		metric.WithDescription("Duration of one behavior decomposition pass."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(passBuckets...),
	); err != nil {
		return nil, err
	}
	return met, nil
}

// Nop returns instruments that record nothing.
func Nop() *Metrics {
	m, _ := NewMetrics(noop.NewMeterProvider())
	return m
}

// RecordGoal counts one produced goal of the given kind.
func (m *Metrics) RecordGoal(ctx context.Context, kind string) {
	m.GoalsProduced.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
}

// RecordRejection counts one rejected path.
func (m *Metrics) RecordRejection(ctx context.Context, reason string) {
	m.PathsRejected.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
}

// RecordScan counts n objects taken from a bucket.
func (m *Metrics) RecordScan(ctx context.Context, bucket string, n int) {
	m.ObjectsScanned.Add(ctx, int64(n), metric.WithAttributes(attribute.String("bucket", bucket)))
}
