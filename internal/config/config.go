package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/xxxsen/common/logger"
)

type Config struct {
	Port        int              `json:"port"`
	Environment string           `json:"environment"`
	JWTSecret   string           `json:"jwt_secret"`
	JWTTTLHours int              `json:"jwt_ttl_hours"`
	Database    DatabaseConfig   `json:"database"`
	CORSOrigins []string         `json:"cors_origins"`
	LogConfig   logger.LogConfig `json:"log_config"`
}

type DatabaseConfig struct {
	DSN      string `json:"dsn"`
	Host     string `json:"host"`
	Port     int    `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
	DBName   string `json:"db_name"`
	SSLMode  string `json:"ssl_mode"`
}

// Load reads the optional JSON config file, then applies environment
// overrides (DATABASE_URL, JWT_SECRET, PORT, FRONTEND_URL, ENVIRONMENT).
// The env vars win so deployments can run without a file at all.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()
		if err := json.NewDecoder(file).Decode(&cfg); err != nil {
			return nil, fmt.Errorf("decode config: %w", err)
		}
	}
	applyEnv(&cfg)

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt_secret is required")
	}
	if cfg.Database.DSN == "" && (cfg.Database.Host == "" || cfg.Database.DBName == "") {
		return nil, fmt.Errorf("database.dsn or database.host/db_name is required")
	}
	if cfg.Port == 0 {
		cfg.Port = 5000
	}
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.JWTTTLHours == 0 {
		cfg.JWTTTLHours = 168
	}
	if cfg.LogConfig.Level == "" {
		cfg.LogConfig.Level = "info"
	}
	return &cfg, nil
}

func applyEnv(cfg *Config) {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		cfg.Database.DSN = dsn
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.JWTSecret = secret
	}
	if port := os.Getenv("PORT"); port != "" {
		if parsed, err := strconv.Atoi(port); err == nil && parsed > 0 {
			cfg.Port = parsed
		}
	}
	if env := os.Getenv("ENVIRONMENT"); env != "" {
		cfg.Environment = env
	}
	if origin := os.Getenv("FRONTEND_URL"); origin != "" {
		cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
	}
}
