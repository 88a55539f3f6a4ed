package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// ServerConfig configures the local viewer server.
type ServerConfig struct {
	Addr            string `mapstructure:"addr"`
	ReportURL       string `mapstructure:"report_url"`
	ShutdownSeconds int    `mapstructure:"shutdown_seconds"`
}

// LoadServerConfig loads the viewer server configuration from the given file.
func LoadServerConfig(path string) (*ServerConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("addr", ":8080")
	v.SetDefault("shutdown_seconds", 10)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config ServerConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to parse server config: %w", err)
	}
	if config.ReportURL == "" {
		return nil, fmt.Errorf("server config has no report_url")
	}
	return &config, nil
}
