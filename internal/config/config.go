package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Catalog   CatalogConfig   `yaml:"catalog"`
	LLM       LLMConfig       `yaml:"llm"`
	Storage   StorageConfig   `yaml:"storage"`
	Auth      AuthConfig      `yaml:"auth"`
	Tailscale TailscaleConfig `yaml:"tailscale"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// CatalogConfig configures the remote exercise catalog. An empty APIKey is a
// normal operating mode: the built-in exercise table is served instead.
type CatalogConfig struct {
	URL             string `yaml:"url"`
	APIKey          string `yaml:"api_key"`
	TimeoutSeconds  int    `yaml:"timeout_seconds"`
	CacheTTLSeconds int    `yaml:"cache_ttl_seconds"`
}

// LLMConfig configures the completion service. An empty APIKey disables the
// AI path; plans then come from the deterministic planner.
type LLMConfig struct {
	URL            string `yaml:"url"`
	APIKey         string `yaml:"api_key"`
	Model          string `yaml:"model"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type StorageConfig struct {
	Path string `yaml:"path"`
}

// AuthConfig guards mutating API routes. An empty APIKey leaves them open
// (e.g. when tsnet already gates access).
type AuthConfig struct {
	APIKey string `yaml:"api_key"`
}

type TailscaleConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Hostname string `yaml:"hostname"`
	StateDir string `yaml:"state_dir"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. Env vars use the prefix PLANFIT_ and underscore-separated paths:
//
//	PLANFIT_SERVER_HOST, PLANFIT_SERVER_PORT,
//	PLANFIT_CATALOG_URL, PLANFIT_CATALOG_API_KEY,
//	PLANFIT_LLM_URL, PLANFIT_LLM_API_KEY, PLANFIT_LLM_MODEL,
//	PLANFIT_STORAGE_PATH, PLANFIT_AUTH_API_KEY
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PLANFIT_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("PLANFIT_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("PLANFIT_CATALOG_URL"); v != "" {
		cfg.Catalog.URL = v
	}
	if v := os.Getenv("PLANFIT_CATALOG_API_KEY"); v != "" {
		cfg.Catalog.APIKey = v
	}
	if v := os.Getenv("PLANFIT_LLM_URL"); v != "" {
		cfg.LLM.URL = v
	}
	if v := os.Getenv("PLANFIT_LLM_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("PLANFIT_LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("PLANFIT_STORAGE_PATH"); v != "" {
		cfg.Storage.Path = v
	}
	if v := os.Getenv("PLANFIT_AUTH_API_KEY"); v != "" {
		cfg.Auth.APIKey = v
	}
}

func (c *Config) validate() error {
	if c.Server.Port == 0 {
		return fmt.Errorf("server.port is required")
	}
	if c.Storage.Path == "" {
		return fmt.Errorf("storage.path is required")
	}
	// Catalog and LLM credentials are deliberately optional: missing keys
	// degrade to the fallback exercise table and the deterministic planner.
	return nil
}
