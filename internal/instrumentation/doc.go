// Package instrumentation provides OpenTelemetry instrumentation for
// the mention resolution engine.
//
// This package enables production-grade observability through:
//   - OpenTelemetry metrics for parsing, resolution and cache activity
//   - Distributed tracing for resolution flows
//   - Prometheus metrics export via /metrics endpoint on dedicated port
//   - OTLP export support for modern observability platforms
//
// # Metrics
//
// The package exposes the following metric categories:
//
// Resolution Metrics:
//   - mention_resolutions_total: Counter of mention resolutions by status
//   - mention_resolution_duration_seconds: Histogram of per-mention resolution durations
//   - mention_resolve_all_duration_seconds: Histogram of whole-text resolution durations
//
// Parsing Metrics:
//   - mention_parses_total: Counter of parse passes over text
//   - mentions_extracted_total: Counter of mentions extracted by parsing
//
// Cache Metrics:
//   - mention_cache_events_total: Counter of cache events (hit, miss, store, invalidate)
//
// Registry Metrics:
//   - resolver_bindings_active: Gauge of currently registered resolver bindings
//
// # Tracing
//
// Spans are created for single-mention resolution (mention.resolve)
// and whole-text resolution (mention.resolve_all), carrying the server
// name, path and cache outcome as attributes.
//
// # Configuration
//
// Instrumentation can be configured via environment variables:
//   - INSTRUMENTATION_ENABLED: Enable/disable instrumentation (default: true)
//   - METRICS_EXPORTER: Metrics exporter type (prometheus, otlp, stdout, default: prometheus)
//   - TRACING_EXPORTER: Tracing exporter type (otlp, stdout, none, default: none)
//   - OTEL_EXPORTER_OTLP_ENDPOINT: OTLP endpoint for traces/metrics
//   - OTEL_TRACES_SAMPLER_ARG: Sampling rate (0.0 to 1.0, default: 0.1)
//   - OTEL_SERVICE_NAME: Service name (default: mentions)
package instrumentation
