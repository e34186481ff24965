package config

import (
	"os"

	"book-club-server/internal/domain"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort  string
	DataPath    string
	LogLevel    string
	SystemTheme string
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// PaaS-style PORT wins; SERVER_PORT kept for local/dev compatibility.
		ServerPort: getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		DataPath:   getEnvOrDefault("DATA_PATH", "./data"),
		LogLevel:   getEnvOrDefault("LOG_LEVEL", "info"),
		// Optional fixed ambient theme ("light" or "dark"); empty means
		// the ambient source derives it from the local clock.
		SystemTheme: getEnvOrDefault("SYSTEM_THEME", ""),
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetDataPath returns the local storage directory path
func (c *AppConfig) GetDataPath() string {
	return c.DataPath
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetSystemTheme returns the fixed ambient theme override, if any
func (c *AppConfig) GetSystemTheme() string {
	return c.SystemTheme
}

// Helper function for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
