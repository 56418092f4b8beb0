package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config defines server configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Catalog CatalogConfig `yaml:"catalog"`
	Upload  UploadConfig  `yaml:"upload"`
	Log     LogConfig     `yaml:"log"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type CatalogConfig struct {
	// Path of the catalog database file.
	Path string `yaml:"path"`
	// DataDir is where per-project database files are allocated.
	DataDir string `yaml:"data_dir"`
}

type UploadConfig struct {
	// MaxBytes caps multipart PDF uploads.
	MaxBytes int64 `yaml:"max_bytes"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from an optional .env file, an optional
// YAML file, and environment variables, in increasing precedence.
func Load() (Config, error) {
	// Missing .env is fine; it only exists in dev setups.
	_ = godotenv.Load()

	cfg := Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8000,
		},
		Catalog: CatalogConfig{
			Path:    "paperbase.db",
			DataDir: "projects",
		},
		Upload: UploadConfig{
			MaxBytes: 50 << 20,
		},
		Log: LogConfig{
			Level: "info",
		},
	}

	if path := os.Getenv("PAPERBASE_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := os.Getenv("PAPERBASE_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("PAPERBASE_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid PAPERBASE_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if catalogPath := os.Getenv("PAPERBASE_CATALOG_PATH"); catalogPath != "" {
		cfg.Catalog.Path = catalogPath
	}
	if dataDir := os.Getenv("PAPERBASE_DATA_DIR"); dataDir != "" {
		cfg.Catalog.DataDir = dataDir
	}
	if maxStr := os.Getenv("PAPERBASE_MAX_UPLOAD_BYTES"); maxStr != "" {
		maxBytes, err := strconv.ParseInt(maxStr, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid PAPERBASE_MAX_UPLOAD_BYTES: %w", err)
		}
		cfg.Upload.MaxBytes = maxBytes
	}
	if level := os.Getenv("PAPERBASE_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
