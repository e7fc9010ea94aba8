package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/letterdrive/letterdrive/internal/config"
	"github.com/letterdrive/letterdrive/internal/google"
	"github.com/letterdrive/letterdrive/internal/instrumentation"
	"github.com/letterdrive/letterdrive/internal/letters"
	"github.com/letterdrive/letterdrive/internal/server"
)

func newServeCmd() *cobra.Command {
	var (
		debugMode          bool
		addr               string
		clientURL          string
		folderName         string
		googleClientID     string
		googleClientSecret string
		googleRedirectURL  string
		metricsEnabled     bool
		metricsAddr        string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the letterdrive API server",
		Long: `Start the HTTP API server that the letter-writing client talks to.

Configuration is read from the environment (a .env file in the working
directory is honored), with flags taking precedence when set:

  GOOGLE_CLIENT_ID, GOOGLE_CLIENT_SECRET, GOOGLE_REDIRECT_URL (required)
  LETTERDRIVE_ADDR, CLIENT_URL, LETTERS_FOLDER_NAME
  METRICS_ENABLED, METRICS_ADDR

The service itself stores nothing: letters live in the authenticated user's
Google Drive, and access tokens are passed through per request.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()

			// Flags override the environment only when explicitly set.
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if cmd.Flags().Changed("client-url") {
				cfg.ClientURL = clientURL
			}
			if cmd.Flags().Changed("folder-name") {
				cfg.FolderName = folderName
			}
			if cmd.Flags().Changed("google-client-id") {
				cfg.GoogleClientID = googleClientID
			}
			if cmd.Flags().Changed("google-client-secret") {
				cfg.GoogleClientSecret = googleClientSecret
			}
			if cmd.Flags().Changed("google-redirect-url") {
				cfg.GoogleRedirectURL = googleRedirectURL
			}
			if cmd.Flags().Changed("metrics-enabled") {
				cfg.MetricsEnabled = metricsEnabled
			}
			if cmd.Flags().Changed("metrics-addr") {
				cfg.MetricsAddr = metricsAddr
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			return runServe(cfg, debugMode)
		},
	}

	cmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	cmd.Flags().StringVar(&addr, "addr", config.DefaultAddr, "API server listen address. Can also use LETTERDRIVE_ADDR env var.")
	cmd.Flags().StringVar(&clientURL, "client-url", config.DefaultClientURL, "Base URL of the frontend client, used for the OAuth redirect and CORS. Can also use CLIENT_URL env var.")
	cmd.Flags().StringVar(&folderName, "folder-name", config.DefaultFolderName, "Name of the Drive folder letters are stored in. Can also use LETTERS_FOLDER_NAME env var.")
	cmd.Flags().StringVar(&googleClientID, "google-client-id", "", "Google OAuth client ID. Can also use GOOGLE_CLIENT_ID env var.")
	cmd.Flags().StringVar(&googleClientSecret, "google-client-secret", "", "Google OAuth client secret. Can also use GOOGLE_CLIENT_SECRET env var.")
	cmd.Flags().StringVar(&googleRedirectURL, "google-redirect-url", "", "OAuth callback URL registered with Google. Can also use GOOGLE_REDIRECT_URL env var.")
	cmd.Flags().BoolVar(&metricsEnabled, "metrics-enabled", true, "Enable the metrics server on a dedicated port. Can also use METRICS_ENABLED env var.")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", config.DefaultMetricsAddr, "Metrics server address. Can also use METRICS_ADDR env var.")

	return cmd
}

func runServe(cfg *config.Config, debugMode bool) error {
	// Setup graceful shutdown
	shutdownCtx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	level := slog.LevelInfo
	if debugMode {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// Initialize instrumentation provider
	instrConfig := instrumentation.DefaultConfig()
	instrConfig.ServiceVersion = version

	provider, err := instrumentation.NewProvider(shutdownCtx, instrConfig)
	if err != nil {
		return fmt.Errorf("failed to create instrumentation provider: %w", err)
	}
	defer func() {
		if err := provider.Shutdown(context.Background()); err != nil {
			logger.Error("error during instrumentation shutdown", "error", err)
		}
	}()

	// Start metrics server on its own port if enabled
	var metricsServer *server.MetricsServer
	if cfg.MetricsEnabled && provider.Enabled() {
		metricsServer, err = server.NewMetricsServer(cfg.MetricsAddr, provider)
		if err != nil {
			return fmt.Errorf("failed to create metrics server: %w", err)
		}

		// Use ready channel to confirm the metrics server bound its port
		metricsReady := make(chan struct{})
		metricsErr := make(chan error, 1)
		go func() {
			if err := metricsServer.StartWithReadySignal(metricsReady); err != nil && err != http.ErrServerClosed {
				metricsErr <- err
			}
			close(metricsErr)
		}()

		select {
		case <-metricsReady:
			logger.Info("metrics server started", "addr", metricsServer.Addr())
		case err := <-metricsErr:
			return fmt.Errorf("metrics server failed to start: %w", err)
		case <-time.After(5 * time.Second):
			return fmt.Errorf("metrics server startup timed out")
		}

		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := metricsServer.Shutdown(ctx); err != nil {
				logger.Error("error during metrics server shutdown", "error", err)
			}
		}()
	}

	oauth := google.NewOAuth(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL)
	factory := letters.NewGoogleClientFactory()

	apiServer := server.NewAPIServer(*cfg, oauth, factory, logger, provider.Metrics())

	logger.Info("letterdrive starting",
		"version", version,
		"addr", cfg.Addr,
		"client_url", cfg.ClientURL,
		"folder_name", cfg.FolderName)

	serverDone := make(chan error, 1)
	go func() {
		defer close(serverDone)
		if err := apiServer.Start(); err != nil && err != http.ErrServerClosed {
			serverDone <- err
		}
	}()

	select {
	case <-shutdownCtx.Done():
		logger.Info("shutdown signal received, stopping api server")
		ctx, cancel := context.WithTimeout(context.Background(), server.DefaultShutdownTimeout)
		defer cancel()
		if err := apiServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("error shutting down api server: %w", err)
		}
	case err := <-serverDone:
		if err != nil {
			return fmt.Errorf("api server stopped with error: %w", err)
		}
	}

	logger.Info("api server gracefully stopped")
	return nil
}
