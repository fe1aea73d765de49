package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config defines server configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Admin    AdminConfig    `yaml:"admin"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
	Log      LogConfig      `yaml:"log"`
}

type ServerConfig struct {
	Host       string `yaml:"host"`
	Port       int    `yaml:"port"`
	EnableCORS bool   `yaml:"enable_cors"`
}

// AdminConfig sets the administrator seeded into an empty store.
type AdminConfig struct {
	DefaultUsername string `yaml:"default_username"`
	DefaultPassword string `yaml:"default_password"`
}

// SnapshotConfig sets where automatic logout exports are written.
type SnapshotConfig struct {
	Dir string `yaml:"dir"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Host:       "0.0.0.0",
			Port:       8080,
			EnableCORS: true,
		},
		Admin: AdminConfig{
			DefaultUsername: "admin",
			DefaultPassword: "123456",
		},
		Snapshot: SnapshotConfig{
			Dir: "snapshots",
		},
		Log: LogConfig{
			Level: "info",
		},
	}

	if path := os.Getenv("GOAOXOR_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := os.Getenv("GOAOXOR_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("GOAOXOR_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid GOAOXOR_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if username := os.Getenv("GOAOXOR_ADMIN_USERNAME"); username != "" {
		cfg.Admin.DefaultUsername = username
	}
	if password := os.Getenv("GOAOXOR_ADMIN_PASSWORD"); password != "" {
		cfg.Admin.DefaultPassword = password
	}
	if dir := os.Getenv("GOAOXOR_SNAPSHOT_DIR"); dir != "" {
		cfg.Snapshot.Dir = dir
	}
	if level := os.Getenv("GOAOXOR_LOG_LEVEL"); level != "" {
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
