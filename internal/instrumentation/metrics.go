package instrumentation

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric attribute keys - using constants for consistency and DRY
const (
	attrStatus = "status"
	attrServer = "server"
	attrEvent  = "event"
)

// Metrics provides methods for recording observability metrics.
type Metrics struct {
	// Resolution metrics
	resolutionsTotal   metric.Int64Counter
	resolutionDuration metric.Float64Histogram
	resolveAllDuration metric.Float64Histogram

	// Parsing metrics
	parsesTotal            metric.Int64Counter
	mentionsExtractedTotal metric.Int64Counter

	// Cache metrics
	cacheEventsTotal metric.Int64Counter

	// Registry metrics
	resolverBindings metric.Int64UpDownCounter

	// detailedLabels controls whether high-cardinality labels are included
	detailedLabels bool
}

// NewMetrics creates a new Metrics instance with all metrics initialized.
// The detailedLabels parameter controls whether the server-name label,
// which is host-defined and unbounded, is attached to resolution metrics.
func NewMetrics(meter metric.Meter, detailedLabels bool) (*Metrics, error) {
	m := &Metrics{
		detailedLabels: detailedLabels,
	}

	var err error

	m.resolutionsTotal, err = meter.Int64Counter(
		"mention_resolutions_total",
		metric.WithDescription("Total number of mention resolutions"),
		metric.WithUnit("{resolution}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mention_resolutions_total counter: %w", err)
	}

	m.resolutionDuration, err = meter.Float64Histogram(
		"mention_resolution_duration_seconds",
		metric.WithDescription("Per-mention resolution duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.0001, 0.001, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0, 10.0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mention_resolution_duration_seconds histogram: %w", err)
	}

	m.resolveAllDuration, err = meter.Float64Histogram(
		"mention_resolve_all_duration_seconds",
		metric.WithDescription("Whole-text resolution duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.001, 0.01, 0.1, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mention_resolve_all_duration_seconds histogram: %w", err)
	}

	m.parsesTotal, err = meter.Int64Counter(
		"mention_parses_total",
		metric.WithDescription("Total number of parse passes over text"),
		metric.WithUnit("{parse}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mention_parses_total counter: %w", err)
	}

	m.mentionsExtractedTotal, err = meter.Int64Counter(
		"mentions_extracted_total",
		metric.WithDescription("Total number of mentions extracted by parsing"),
		metric.WithUnit("{mention}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mentions_extracted_total counter: %w", err)
	}

	m.cacheEventsTotal, err = meter.Int64Counter(
		"mention_cache_events_total",
		metric.WithDescription("Total number of resolution cache events"),
		metric.WithUnit("{event}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mention_cache_events_total counter: %w", err)
	}

	m.resolverBindings, err = meter.Int64UpDownCounter(
		"resolver_bindings_active",
		metric.WithDescription("Number of currently registered resolver bindings"),
		metric.WithUnit("{binding}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resolver_bindings_active gauge: %w", err)
	}

	return m, nil
}

// RecordResolution records a single mention resolution with its status
// and duration. Status should be one of: "success", "not_found", "error".
func (m *Metrics) RecordResolution(ctx context.Context, server, status string, duration time.Duration) {
	if m.resolutionsTotal == nil || m.resolutionDuration == nil {
		return // Instrumentation not initialized
	}

	attrs := []attribute.KeyValue{
		attribute.String(attrStatus, status),
	}

	// Only add high-cardinality labels if explicitly enabled
	if m.detailedLabels && server != "" {
		attrs = append(attrs, attribute.String(attrServer, server))
	}

	m.resolutionsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.resolutionDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
}

// RecordResolveAll records a whole-text resolution pass.
func (m *Metrics) RecordResolveAll(ctx context.Context, status string, duration time.Duration) {
	if m.resolveAllDuration == nil {
		return // Instrumentation not initialized
	}

	attrs := []attribute.KeyValue{
		attribute.String(attrStatus, status),
	}

	m.resolveAllDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
}

// RecordParse records a parse pass and the number of mentions it extracted.
func (m *Metrics) RecordParse(ctx context.Context, mentionCount int) {
	if m.parsesTotal == nil || m.mentionsExtractedTotal == nil {
		return // Instrumentation not initialized
	}

	m.parsesTotal.Add(ctx, 1)
	m.mentionsExtractedTotal.Add(ctx, int64(mentionCount))
}

// RecordCacheEvent records a cache event.
// Event should be one of: "hit", "miss", "store", "invalidate".
func (m *Metrics) RecordCacheEvent(ctx context.Context, event string) {
	if m.cacheEventsTotal == nil {
		return // Instrumentation not initialized
	}

	attrs := []attribute.KeyValue{
		attribute.String(attrEvent, event),
	}

	m.cacheEventsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// IncrementResolverBindings increments the active resolver bindings gauge.
func (m *Metrics) IncrementResolverBindings(ctx context.Context) {
	if m.resolverBindings == nil {
		return // Instrumentation not initialized
	}

	m.resolverBindings.Add(ctx, 1)
}

// DecrementResolverBindings decrements the active resolver bindings gauge.
func (m *Metrics) DecrementResolverBindings(ctx context.Context) {
	if m.resolverBindings == nil {
		return // Instrumentation not initialized
	}

	m.resolverBindings.Add(ctx, -1)
}
