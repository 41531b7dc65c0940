package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	App      AppConfig
	Seed     SeedConfig
	Workflow WorkflowConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type SeedConfig struct {
	// File is an optional YAML file with clients and candidates; when empty the
	// built-in reference data is used.
	File string
}

type WorkflowConfig struct {
	// SimLatencyMS adds an artificial delay to mutating requests so rendering
	// layers can be exercised against a slow backend. Zero disables it.
	SimLatencyMS int
	// NotifyTTLSeconds is how long operation-outcome notifications stay visible.
	NotifyTTLSeconds int
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Seed = SeedConfig{
		File: opt("SEED_FILE"),
	}

	simLatency, err := optInt("SIM_LATENCY_MS", 0)
	if err != nil {
		return Config{}, err
	}
	notifyTTL, err := optInt("NOTIFY_TTL_SECONDS", 4)
	if err != nil {
		return Config{}, err
	}
	cfg.Workflow = WorkflowConfig{
		SimLatencyMS:     simLatency,
		NotifyTTLSeconds: notifyTTL,
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func optInt(key string, defaultVal int) (int, error) {
	s := strings.TrimSpace(os.Getenv(key))
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, s)
	}
	return v, nil
}
