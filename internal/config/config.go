package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	ServerPort    string
	ServerWorkers int

	LogLevel      string
	RunMigrations bool
}

// In all cases the default behavior should be for the docker compose setup
var defaults = map[string]interface{}{
	"postgres.address":  "localhost",
	"postgres.port":     "5433",
	"postgres.db":       "postgres",
	"postgres.username": "postgres",
	"postgres.password": "testpassword",
	"server.port":       "9446",
	"server.workers":    "4",
	"log.level":         "info",
	"run.migrations":    "false",
}

// envPrefixes lists the environment variable families read into the config.
// POSTGRES_ADDRESS becomes postgres.address and so on.
var envPrefixes = []string{"POSTGRES_", "SERVER_", "LOG_", "RUN_"}

// ProcessEnvironmentVariables builds the configuration from, in increasing
// priority: built in defaults, the YAML file named by CONFIG_FILE, and the
// environment. A .env file in the working directory is loaded into the
// environment first when present.
func ProcessEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	for _, prefix := range envPrefixes {
		if err := k.Load(env.Provider(prefix, ".", envKey), nil); err != nil {
			return nil, fmt.Errorf("load %s environment: %w", prefix, err)
		}
	}

	return fromKoanf(k)
}

func envKey(s string) string {
	return strings.Replace(strings.ToLower(s), "_", ".", 1)
}

func fromKoanf(k *koanf.Koanf) (*Config, error) {
	cfg := Config{
		PostgresAddress:  k.String("postgres.address"),
		PostgresPort:     k.String("postgres.port"),
		PostgresDB:       k.String("postgres.db"),
		PostgresUsername: k.String("postgres.username"),
		PostgresPassword: k.String("postgres.password"),
		ServerPort:       k.String("server.port"),
		LogLevel:         k.String("log.level"),
	}

	workers, err := strconv.Atoi(k.String("server.workers"))
	if err != nil {
		return nil, fmt.Errorf("invalid server workers %q: must be a number", k.String("server.workers"))
	}
	cfg.ServerWorkers = workers

	runMigrations, err := strconv.ParseBool(k.String("run.migrations"))
	if err != nil {
		return nil, fmt.Errorf("invalid run migrations %q: must be a boolean", k.String("run.migrations"))
	}
	cfg.RunMigrations = runMigrations

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.ServerPort); err != nil || port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid server port '%s': must be between 1 and 65535", c.ServerPort))
	}
	if port, err := strconv.Atoi(c.PostgresPort); err != nil || port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid postgres port '%s': must be between 1 and 65535", c.PostgresPort))
	}
	if c.ServerWorkers < 1 {
		problems = append(problems, fmt.Sprintf("invalid server workers %d: must be at least 1", c.ServerWorkers))
	}
	if c.PostgresAddress == "" {
		problems = append(problems, "postgres address is required")
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(problems, "; "))
	}
	return nil
}

// PostgresDSN returns the lib/pq connection URL.
func (c *Config) PostgresDSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.PostgresUsername, c.PostgresPassword),
		Host:     net.JoinHostPort(c.PostgresAddress, c.PostgresPort),
		Path:     "/" + c.PostgresDB,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}
