package update

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type RuntimeConfig struct {
	DatabasePath          string `yaml:"database_path"`
	SeedSampleTasks       bool   `yaml:"seed_sample_tasks"`
	CaptureCompletionTime bool   `yaml:"capture_completion_time"`
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		DatabasePath:          defaultDatabasePath(),
		SeedSampleTasks:       true,
		CaptureCompletionTime: true,
	}
}

// LoadRuntimeConfig resolves the config in order: defaults, then the YAML file
// (PLANNER_CONFIG or ~/.config/myplanner/config.yml), then PLANNER_* env vars.
func LoadRuntimeConfig() (RuntimeConfig, error) {
	cfg := DefaultRuntimeConfig()
	cfg, err := runtimeConfigFromFile(cfg, configFilePath())
	if err != nil {
		return cfg, err
	}
	return RuntimeConfigFromEnv(cfg), nil
}

func runtimeConfigFromFile(base RuntimeConfig, path string) (RuntimeConfig, error) {
	if strings.TrimSpace(path) == "" {
		return base, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return base, nil
		}
		return base, err
	}
	cfg := base
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return base, err
	}
	return cfg, nil
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v := strings.TrimSpace(os.Getenv("PLANNER_DB_PATH")); v != "" {
		cfg.DatabasePath = v
	}
	if v, ok := getEnvBool("PLANNER_SEED_SAMPLES"); ok {
		cfg.SeedSampleTasks = v
	}
	if v, ok := getEnvBool("PLANNER_CAPTURE_TIME"); ok {
		cfg.CaptureCompletionTime = v
	}
	return cfg
}

func configFilePath() string {
	if v := strings.TrimSpace(os.Getenv("PLANNER_CONFIG")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "myplanner", "config.yml")
}

func defaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "share", "myplanner", "planner.db")
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
