package instrumentation

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the default tracer name for the mentions package.
const TracerName = "github.com/contextwire/mentions"

// Span attribute keys for operations.
const (
	// SpanAttrServer is the logical server name attribute.
	SpanAttrServer = "mention.server"

	// SpanAttrPath is the resource path attribute.
	SpanAttrPath = "mention.path"

	// SpanAttrScheme is the mention scheme attribute.
	SpanAttrScheme = "mention.scheme"

	// SpanAttrMentionCount is the number of mentions in a text.
	SpanAttrMentionCount = "mention.count"

	// SpanAttrErrorCount is the number of failed resolutions in a text.
	SpanAttrErrorCount = "mention.error_count"

	// SpanAttrCacheHit indicates whether resolution was served from cache.
	SpanAttrCacheHit = "mention.cache_hit"

	// SpanAttrResolveID is the correlation id of a whole-text resolution.
	SpanAttrResolveID = "mention.resolve_id"
)

// SpanAttributeBuilder helps construct OpenTelemetry span attributes
// with consistent naming.
type SpanAttributeBuilder struct {
	attrs []attribute.KeyValue
}

// NewSpanAttributeBuilder creates a new SpanAttributeBuilder.
func NewSpanAttributeBuilder() *SpanAttributeBuilder {
	return &SpanAttributeBuilder{
		attrs: make([]attribute.KeyValue, 0, 8),
	}
}

// WithServer adds the logical server name attribute.
func (b *SpanAttributeBuilder) WithServer(server string) *SpanAttributeBuilder {
	b.attrs = append(b.attrs, attribute.String(SpanAttrServer, server))
	return b
}

// WithPath adds the resource path attribute.
func (b *SpanAttributeBuilder) WithPath(path string) *SpanAttributeBuilder {
	b.attrs = append(b.attrs, attribute.String(SpanAttrPath, path))
	return b
}

// WithScheme adds the mention scheme attribute.
func (b *SpanAttributeBuilder) WithScheme(scheme string) *SpanAttributeBuilder {
	if scheme != "" {
		b.attrs = append(b.attrs, attribute.String(SpanAttrScheme, scheme))
	}
	return b
}

// WithMentionCount adds the mention count attribute.
func (b *SpanAttributeBuilder) WithMentionCount(n int) *SpanAttributeBuilder {
	b.attrs = append(b.attrs, attribute.Int(SpanAttrMentionCount, n))
	return b
}

// WithCacheHit adds the cache hit indicator attribute.
func (b *SpanAttributeBuilder) WithCacheHit(hit bool) *SpanAttributeBuilder {
	b.attrs = append(b.attrs, attribute.Bool(SpanAttrCacheHit, hit))
	return b
}

// WithResolveID adds the resolve correlation id attribute.
func (b *SpanAttributeBuilder) WithResolveID(id string) *SpanAttributeBuilder {
	if id != "" {
		b.attrs = append(b.attrs, attribute.String(SpanAttrResolveID, id))
	}
	return b
}

// Build returns the constructed attributes.
func (b *SpanAttributeBuilder) Build() []attribute.KeyValue {
	return b.attrs
}

// StartSpan starts a new span with the given name and attributes.
// Returns the context with the span and the span itself.
// The caller is responsible for ending the span with defer span.End().
func StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	tracer := otel.GetTracerProvider().Tracer(TracerName)
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// StartResolveSpan starts a span for a single mention resolution.
func StartResolveSpan(ctx context.Context, server, path string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	allAttrs := make([]attribute.KeyValue, 0, len(attrs)+2)
	allAttrs = append(allAttrs,
		attribute.String(SpanAttrServer, server),
		attribute.String(SpanAttrPath, path),
	)
	allAttrs = append(allAttrs, attrs...)

	tracer := otel.GetTracerProvider().Tracer(TracerName)
	return tracer.Start(ctx, "mention.resolve",
		trace.WithAttributes(allAttrs...),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// StartResolveAllSpan starts a span for a whole-text resolution pass.
func StartResolveAllSpan(ctx context.Context, resolveID string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	allAttrs := make([]attribute.KeyValue, 0, len(attrs)+1)
	allAttrs = append(allAttrs, attribute.String(SpanAttrResolveID, resolveID))
	allAttrs = append(allAttrs, attrs...)

	tracer := otel.GetTracerProvider().Tracer(TracerName)
	return tracer.Start(ctx, "mention.resolve_all",
		trace.WithAttributes(allAttrs...),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// SetSpanError records an error on the span and sets the status to error.
func SetSpanError(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// SetSpanSuccess sets the span status to OK.
func SetSpanSuccess(span trace.Span) {
	span.SetStatus(codes.Ok, "")
}

// AddSpanEvent adds an event to the span with optional attributes.
func AddSpanEvent(span trace.Span, name string, attrs ...attribute.KeyValue) {
	span.AddEvent(name, trace.WithAttributes(attrs...))
}

// GetTraceID returns the trace ID from the current span in context.
// Returns empty string if no valid span is present.
func GetTraceID(ctx context.Context) string {
	span := trace.SpanFromContext(ctx)
	if span.SpanContext().IsValid() {
		return span.SpanContext().TraceID().String()
	}
	return ""
}
