package server

import (
	"context"
	"strings"
	"testing"

	"github.com/letterdrive/letterdrive/internal/config"
	"github.com/letterdrive/letterdrive/internal/instrumentation"
)

func createDisabledProvider(t *testing.T) *instrumentation.Provider {
	t.Helper()

	provider, err := instrumentation.NewProvider(context.Background(), instrumentation.Config{Enabled: false})
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}
	return provider
}

func createEnabledProvider(t *testing.T) *instrumentation.Provider {
	t.Helper()

	provider, err := instrumentation.NewProvider(context.Background(), instrumentation.Config{
		ServiceName:     "test",
		ServiceVersion:  "test",
		Enabled:         true,
		MetricsExporter: instrumentation.ExporterPrometheus,
		TracingExporter: instrumentation.ExporterNone,
	})
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })
	return provider
}

func TestNewMetricsServer(t *testing.T) {
	tests := []struct {
		name        string
		addr        string
		provider    *instrumentation.Provider
		expectError bool
		errContains string
		wantAddr    string
	}{
		{
			name:        "nil provider",
			addr:        ":9090",
			provider:    nil,
			expectError: true,
			errContains: "instrumentation provider is required",
		},
		{
			name:        "disabled provider",
			addr:        ":9090",
			provider:    createDisabledProvider(t),
			expectError: true,
			errContains: "instrumentation provider is not enabled",
		},
		{
			name:     "explicit addr",
			addr:     ":9191",
			provider: createEnabledProvider(t),
			wantAddr: ":9191",
		},
		{
			name:     "empty addr falls back to the configured default",
			addr:     "",
			provider: createEnabledProvider(t),
			wantAddr: config.DefaultMetricsAddr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, err := NewMetricsServer(tt.addr, tt.provider)

			if tt.expectError {
				if err == nil {
					t.Fatal("expected an error")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %q", tt.errContains, err.Error())
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if server.Addr() != tt.wantAddr {
				t.Errorf("expected addr %q, got %q", tt.wantAddr, server.Addr())
			}
		})
	}
}

func TestMetricsServer_ShutdownBeforeStart(t *testing.T) {
	server := &MetricsServer{addr: config.DefaultMetricsAddr}

	if err := server.Shutdown(context.Background()); err != nil {
		t.Errorf("shutdown before start should be a no-op, got %v", err)
	}
}
