package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the server configuration.
type Config struct {
	Port       int           `yaml:"port"`
	DataFile   string        `yaml:"data_file"`
	RedisAddr  string        `yaml:"redis_addr"`
	RateLimit  int           `yaml:"rate_limit"`
	RateWindow time.Duration `yaml:"-"`
}

type fileConfig struct {
	Port              int    `yaml:"port"`
	DataFile          string `yaml:"data_file"`
	RedisAddr         string `yaml:"redis_addr"`
	RateLimit         int    `yaml:"rate_limit"`
	RateWindowSeconds int    `yaml:"rate_window_seconds"`
}

// Load reads configuration from environment variables, with a .env file
// honored if present. CONFIG_FILE may point at a YAML file whose values
// override the environment.
func Load() (*Config, error) {
	// Ignore a missing .env file
	_ = godotenv.Load()

	cfg := &Config{
		Port:       getEnvInt("PORT", 8080),
		DataFile:   getEnvString("DATA_FILE", "loan_data.json"),
		RedisAddr:  getEnvString("REDIS_ADDR", ""),
		RateLimit:  getEnvInt("RATE_LIMIT", 60),
		RateWindow: time.Duration(getEnvInt("RATE_WINDOW_SECONDS", 60)) * time.Second,
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.applyFile(path); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	if fc.Port != 0 {
		c.Port = fc.Port
	}
	if fc.DataFile != "" {
		c.DataFile = fc.DataFile
	}
	if fc.RedisAddr != "" {
		c.RedisAddr = fc.RedisAddr
	}
	if fc.RateLimit != 0 {
		c.RateLimit = fc.RateLimit
	}
	if fc.RateWindowSeconds != 0 {
		c.RateWindow = time.Duration(fc.RateWindowSeconds) * time.Second
	}
	return nil
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
