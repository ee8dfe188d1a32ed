package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Load reads the .env file named by JTMS_ENV (or .env by default),
// then loads the corresponding .secret file if it exists.
// All config is flat env vars read via os.Getenv after loading.
func Load() error {
	envFile := os.Getenv("JTMS_ENV")
	if envFile == "" {
		envFile = ".env"
	}

	// Missing files are fine; the environment may already be populated.
	_ = godotenv.Load(envFile)
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

// StrictMode reports whether mutations reject undeclared beliefs unless a
// request says otherwise. Defaults to false (beliefs are created lazily).
func StrictMode() bool {
	strict, err := strconv.ParseBool(os.Getenv("JTMS_STRICT"))
	return err == nil && strict
}

// SeedFile returns the YAML seed loaded at startup, empty for none.
func SeedFile() string {
	return os.Getenv("JTMS_SEED_FILE")
}

// WatchSeed reports whether the seed file is reloaded when it changes.
func WatchSeed() bool {
	watch, err := strconv.ParseBool(os.Getenv("JTMS_WATCH_SEED"))
	return err == nil && watch
}

// APIToken returns the bearer token required by mutating routes.
// Empty disables authentication.
func APIToken() string {
	return os.Getenv("JTMS_API_TOKEN")
}
