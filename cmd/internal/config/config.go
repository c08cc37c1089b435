package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Log      LogConfig
}

type DatabaseConfig struct {
	URL string
}

type ServerConfig struct {
	Transport string
	Host      string
	Port      int
}

type LogConfig struct {
	Level string
}

// Address returns the host:port the HTTP transport binds to.
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LoadConfig reads settings from the environment. A .env file in the working
// directory is loaded first when present; real environment variables win.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("MCP_PORT", "8000"))
	if err != nil {
		return nil, fmt.Errorf("invalid MCP_PORT: %w", err)
	}

	config := &Config{
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", "appointments.db"),
		},
		Server: ServerConfig{
			Transport: parseTransport(getEnv("MCP_TRANSPORT", TransportStdio)),
			Host:      getEnv("MCP_HOST", "0.0.0.0"),
			Port:      port,
		},
		Log: LogConfig{
			Level: strings.ToLower(getEnv("LOG_LEVEL", "info")),
		},
	}
	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

// Anything other than "http" falls back to stdio.
func parseTransport(s string) string {
	if strings.ToLower(s) == TransportHTTP {
		return TransportHTTP
	}
	return TransportStdio
}
