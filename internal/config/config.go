package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Load reads the .env file specified by ARBITER_ENV (or .env by default),
// then loads the corresponding .secret file if it exists.
// All config is flat env vars read via os.Getenv after loading.
func Load() error {
	envFile := os.Getenv("ARBITER_ENV")
	if envFile == "" {
		envFile = ".env"
	}

	// Load main env file (ignore error if file doesn't exist)
	_ = godotenv.Load(envFile)

	// Load secret sidecar if it exists
	_ = godotenv.Load(envFile + ".secret")

	return nil
}

func ServerPort() int {
	port, err := strconv.Atoi(os.Getenv("SERVER_PORT"))
	if err != nil {
		return 8080
	}
	return port
}

func ServerAddr() string {
	return fmt.Sprintf(":%d", ServerPort())
}

func DatabaseURL() string {
	return os.Getenv("DATABASE_URL")
}

// APIKey returns the static API key required on /v1 routes.
// Empty means auth is disabled (local development).
func APIKey() string {
	return os.Getenv("API_KEY")
}

func OpenAIAPIKey() string {
	return os.Getenv("OPENAI_API_KEY")
}

func AnthropicAPIKey() string {
	return os.Getenv("ANTHROPIC_API_KEY")
}

func GeminiAPIKey() string {
	return os.Getenv("GEMINI_API_KEY")
}

func CerebrasAPIKey() string {
	return os.Getenv("CEREBRAS_API_KEY")
}

// Backends returns the configured judgment backends in dispatch order.
// Defaults to the three-backend panel if not set.
// Valid entries: openai, anthropic, gemini, cerebras, mock
func Backends() []string {
	raw := os.Getenv("JUDGE_BACKENDS")
	if raw == "" {
		raw = "openai,anthropic,gemini"
	}
	parts := strings.Split(raw, ",")
	backends := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(strings.ToLower(p))
		if p != "" {
			backends = append(backends, p)
		}
	}
	return backends
}

// BackendAPIKey returns the API key for the named backend provider.
func BackendAPIKey(provider string) string {
	switch provider {
	case "anthropic":
		return AnthropicAPIKey()
	case "gemini":
		return GeminiAPIKey()
	case "cerebras":
		return CerebrasAPIKey()
	case "mock":
		return ""
	default:
		return OpenAIAPIKey()
	}
}

// BackendTier returns the quality tier used for backend calls.
// Valid values: fast, balanced, premium. Defaults to "balanced".
func BackendTier() string {
	t := os.Getenv("BACKEND_TIER")
	if t == "" {
		return "balanced"
	}
	return t
}

// BackendTimeout returns the per-backend dispatch deadline.
// Defaults to 30s if not set.
func BackendTimeout() time.Duration {
	ms, err := strconv.Atoi(os.Getenv("BACKEND_TIMEOUT_MS"))
	if err != nil || ms <= 0 {
		return 30 * time.Second
	}
	return time.Duration(ms) * time.Millisecond
}

// SearchProvider returns the configured search provider.
// Valid values: brave, mock. Defaults to "brave".
func SearchProvider() string {
	p := os.Getenv("SEARCH_PROVIDER")
	if p == "" {
		return "brave"
	}
	return p
}

func BraveAPIKey() string {
	return os.Getenv("BRAVE_API_KEY")
}

// SearchMaxResults bounds the result count per evidence search.
// Defaults to 5 if not set.
func SearchMaxResults() int {
	n, err := strconv.Atoi(os.Getenv("SEARCH_MAX_RESULTS"))
	if err != nil || n <= 0 {
		return 5
	}
	return n
}

// EvidenceMaxFacts bounds the fact count per extraction.
// Defaults to 5 if not set.
func EvidenceMaxFacts() int {
	n, err := strconv.Atoi(os.Getenv("EVIDENCE_MAX_FACTS"))
	if err != nil || n <= 0 {
		return 5
	}
	return n
}

// EvidenceTimeout returns the deadline for the whole evidence step
// (search plus extraction). Defaults to 20s if not set.
func EvidenceTimeout() time.Duration {
	ms, err := strconv.Atoi(os.Getenv("EVIDENCE_TIMEOUT_MS"))
	if err != nil || ms <= 0 {
		return 20 * time.Second
	}
	return time.Duration(ms) * time.Millisecond
}

// RateLimitRPS returns requests per second limit.
// Defaults to 100 if not set.
func RateLimitRPS() float64 {
	rps, err := strconv.ParseFloat(os.Getenv("RATE_LIMIT_RPS"), 64)
	if err != nil || rps <= 0 {
		return 100
	}
	return rps
}

// RateLimitBurst returns the burst size for rate limiting.
// Defaults to 20 if not set.
func RateLimitBurst() int {
	burst, err := strconv.Atoi(os.Getenv("RATE_LIMIT_BURST"))
	if err != nil || burst <= 0 {
		return 20
	}
	return burst
}

// LogLevel returns the log level (debug, info, warn, error).
// Defaults to "info" if not set.
func LogLevel() string {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		return "info"
	}
	return level
}
