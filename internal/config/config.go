package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Session SessionConfig `mapstructure:"session"`
	Mock    MockConfig    `mapstructure:"mock"`
}

type APIConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
	RateLimit float64       `mapstructure:"rate_limit"`
	Debug     bool          `mapstructure:"debug"`
}

type SessionConfig struct {
	Path string `mapstructure:"path"`
}

type MockConfig struct {
	Addr string `mapstructure:"addr"`
}

// LoadConfig loads configuration from config.yaml and environment variables.
// A missing config file is fine; defaults cover every key.
func LoadConfig() (*Config, error) {
	v := viper.New()

	// Set config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./")
	v.AddConfigPath("$HOME/.shopctl/")
	v.AddConfigPath("/etc/shopctl/")

	v.SetDefault("api.base_url", "https://storefront.example.com/api")
	v.SetDefault("api.timeout", 30*time.Second)
	v.SetDefault("api.rate_limit", 0)
	v.SetDefault("api.debug", false)
	v.SetDefault("session.path", defaultSessionPath())
	v.SetDefault("mock.addr", ":8089")

	// Enable environment variable override with SHOPCTL_ prefix,
	// e.g. SHOPCTL_API_BASE_URL
	v.SetEnvPrefix("SHOPCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file if one exists
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

func defaultSessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "session.json"
	}
	return filepath.Join(home, ".shopctl", "session.json")
}
