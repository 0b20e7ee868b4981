package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the fixture server.
type Config struct {
	Server ServerConfig
	Logger LoggerConfig
	Parser ParserConfig
}

// ServerConfig identifies the MCP server to clients.
type ServerConfig struct {
	Name    string
	Version string
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// ParserConfig tunes directory parsing.
type ParserConfig struct {
	Workers int
}

// Load reads configuration from an optional .env file and the environment,
// applying defaults where a variable is unset.
func Load() (*Config, error) {
	_ = godotenv.Load()

	workers, err := getEnvAsInt("FIXTURE_PARSE_WORKERS", 4)
	if err != nil {
		return nil, err
	}
	if workers < 1 {
		return nil, fmt.Errorf("invalid FIXTURE_PARSE_WORKERS: must be at least 1, got %d", workers)
	}

	return &Config{
		Server: ServerConfig{
			Name:    getEnv("FIXTURE_SERVER_NAME", "gocontext-fixtures"),
			Version: getEnv("FIXTURE_SERVER_VERSION", "1.0.0"),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Parser: ParserConfig{
			Workers: workers,
		},
	}, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}
