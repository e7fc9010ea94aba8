package instrumentation

import (
	"context"
	"testing"
	"time"
)

func testProviderConfig() Config {
	return Config{
		ServiceName:     "test-service",
		ServiceVersion:  "1.0.0",
		Enabled:         true,
		MetricsExporter: ExporterPrometheus,
		TracingExporter: ExporterNone,
	}
}

func TestNewProvider_Disabled(t *testing.T) {
	ctx := context.Background()

	provider, err := NewProvider(ctx, Config{Enabled: false})
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}

	if provider.Enabled() {
		t.Error("expected provider to be disabled")
	}
	if provider.Metrics() == nil {
		t.Fatal("expected a no-op metrics recorder, got nil")
	}
	// No-op recorder must accept calls without panicking
	provider.Metrics().RecordHTTPRequest(ctx, "GET", "/api/letters", 200, time.Millisecond)
	provider.Metrics().RecordPipelineStep(ctx, "create_document", StatusSuccess)

	if err := provider.Shutdown(ctx); err != nil {
		t.Errorf("shutdown of disabled provider should be a no-op, got %v", err)
	}
}

func TestNewProvider_Prometheus(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	provider, err := NewProvider(ctx, testProviderConfig())
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}
	defer func() { _ = provider.Shutdown(ctx) }()

	if !provider.Enabled() {
		t.Error("expected provider to be enabled")
	}
	if provider.Metrics() == nil {
		t.Error("expected a metrics recorder")
	}
	if provider.Tracer("test") == nil {
		t.Error("expected a tracer")
	}
}

func TestNewProvider_UnknownExporter(t *testing.T) {
	ctx := context.Background()

	config := testProviderConfig()
	config.MetricsExporter = "graphite"

	if _, err := NewProvider(ctx, config); err == nil {
		t.Error("expected error for unknown metrics exporter")
	}
}

func TestMetrics_Record(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	provider, err := NewProvider(ctx, testProviderConfig())
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}
	defer func() { _ = provider.Shutdown(ctx) }()

	metrics := provider.Metrics()
	if metrics == nil {
		t.Fatal("expected metrics to be non-nil")
	}

	// Should not panic
	metrics.RecordHTTPRequest(ctx, "POST", "/api/letters", 201, 100*time.Millisecond)
	metrics.RecordHTTPRequest(ctx, "GET", "/api/letters/{id}", 500, 50*time.Millisecond)
	metrics.RecordGoogleAPIOperation(ctx, ServiceDrive, "list", StatusSuccess, 200*time.Millisecond)
	metrics.RecordGoogleAPIOperation(ctx, ServiceDocs, "create", StatusError, 500*time.Millisecond)
	metrics.RecordOAuthAuth(ctx, OAuthResultSuccess)
	metrics.RecordOAuthAuth(ctx, OAuthResultFailure)
	metrics.RecordLetterOperation(ctx, "create", StatusSuccess, 300*time.Millisecond)
	metrics.RecordPipelineStep(ctx, "ensure_folder", StatusSuccess)
	metrics.RecordPipelineStep(ctx, "add_parent", StatusError)
}

func TestMetrics_ZeroValueIsNoOp(t *testing.T) {
	ctx := context.Background()
	var m Metrics

	// Zero value must accept calls without panicking
	m.RecordHTTPRequest(ctx, "GET", "/api/letters", 200, time.Millisecond)
	m.RecordGoogleAPIOperation(ctx, ServiceDrive, "get", StatusSuccess, time.Millisecond)
	m.RecordOAuthAuth(ctx, OAuthResultSuccess)
	m.RecordLetterOperation(ctx, "read", StatusSuccess, time.Millisecond)
	m.RecordPipelineStep(ctx, "insert_text", StatusSuccess)
}
