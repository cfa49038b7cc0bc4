package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Defaults mirror the documented GigaChat API surface.
const (
	DefaultAuthURL = "https://ngw.devices.sberbank.ru:9443/api/v2/oauth"
	DefaultAPIURL  = "https://gigachat.devices.sberbank.ru/api/v1/chat/completions"
	DefaultScope   = "GIGACHAT_API_PERS"
	DefaultModel   = "GigaChat"

	DefaultTimeout = 45 * time.Second
	MinTimeout     = 5 * time.Second
	MaxTimeout     = 10 * time.Minute
)

// Config holds everything needed to run the analyzer.
type Config struct {
	// Credentials is the base64 authorization key for the OAuth exchange.
	// Empty means the AI path is disabled and only local heuristics run.
	Credentials string
	Scope       string
	AuthURL     string
	APIURL      string
	Model       string

	// Timeout bounds one full upstream exchange.
	Timeout time.Duration

	// InsecureTLS disables upstream certificate verification. Needed when the
	// Sber chain is not installed or corporate TLS interception is in place.
	InsecureTLS bool

	Debug bool
}

// Load reads configuration from the environment. A .env file is loaded first
// when present; real environment variables win over it.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Credentials: strings.TrimSpace(os.Getenv("GIGACHAT_CREDENTIALS")),
		Scope:       envOr("GIGACHAT_SCOPE", DefaultScope),
		AuthURL:     envOr("GIGACHAT_AUTH_URL", DefaultAuthURL),
		APIURL:      envOr("GIGACHAT_API_URL", DefaultAPIURL),
		Model:       envOr("GIGACHAT_MODEL", DefaultModel),
		Timeout:     DefaultTimeout,
		InsecureTLS: envBool("GIGACHAT_INSECURE_TLS"),
		Debug:       envBool("LINGVOBOT_DEBUG"),
	}

	if raw := strings.TrimSpace(os.Getenv("GIGACHAT_TIMEOUT_SECONDS")); raw != "" {
		if seconds, err := strconv.Atoi(raw); err == nil && seconds > 0 {
			cfg.Timeout, _ = ClampTimeout(time.Duration(seconds) * time.Second)
		}
	}

	return cfg
}

// HasCredentials reports whether the AI path can be constructed at all.
func (c *Config) HasCredentials() bool {
	return strings.TrimSpace(c.Credentials) != ""
}

// ClampTimeout keeps the timeout inside sane bounds. The second return value
// reports whether the input was already valid.
func ClampTimeout(d time.Duration) (time.Duration, bool) {
	if d < MinTimeout {
		return MinTimeout, false
	}
	if d > MaxTimeout {
		return MaxTimeout, false
	}
	return d, true
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
