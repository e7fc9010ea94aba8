package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Defaults applied when the corresponding environment variable is unset.
const (
	DefaultAddr        = ":8080"
	DefaultClientURL   = "http://localhost:3000"
	DefaultFolderName  = "Letters"
	DefaultMetricsAddr = ":9090"
)

// Config holds application-wide configuration populated from environment variables.
// It is constructed once at process start and passed explicitly into the server;
// there is no mutable configuration singleton.
type Config struct {
	// Addr is the listen address of the API server
	Addr string

	// ClientURL is the base URL of the frontend client. The OAuth callback
	// redirects here with the tokens, and CORS is restricted to this origin.
	ClientURL string

	// FolderName is the name of the Drive folder used as the letter store
	FolderName string

	// GoogleClientID and GoogleClientSecret identify the OAuth2 application
	GoogleClientID     string
	GoogleClientSecret string

	// GoogleRedirectURL is the OAuth2 callback URL registered with Google
	GoogleRedirectURL string

	// MetricsEnabled controls whether the dedicated metrics server is started
	MetricsEnabled bool

	// MetricsAddr is the listen address of the metrics server
	MetricsAddr string
}

// Load reads environment variables and returns Config with defaults applied.
// A .env file in the working directory is read first if present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Addr:               getEnv("LETTERDRIVE_ADDR", DefaultAddr),
		ClientURL:          strings.TrimRight(getEnv("CLIENT_URL", DefaultClientURL), "/"),
		FolderName:         getEnv("LETTERS_FOLDER_NAME", DefaultFolderName),
		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),
		MetricsEnabled:     getEnvBool("METRICS_ENABLED", true),
		MetricsAddr:        getEnv("METRICS_ADDR", DefaultMetricsAddr),
	}
}

// Validate checks that the configuration is complete enough to serve requests.
func (c *Config) Validate() error {
	if c.GoogleClientID == "" {
		return fmt.Errorf("GOOGLE_CLIENT_ID is required")
	}
	if c.GoogleClientSecret == "" {
		return fmt.Errorf("GOOGLE_CLIENT_SECRET is required")
	}
	if c.GoogleRedirectURL == "" {
		return fmt.Errorf("GOOGLE_REDIRECT_URL is required")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	switch getEnv(key, "") {
	case "1", "true", "TRUE", "True", "yes", "on":
		return true
	case "0", "false", "FALSE", "False", "no", "off":
		return false
	default:
		return def
	}
}
