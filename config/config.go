package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// It is composed of smaller structs that represent different concerns of the system,
// such as server settings, the swap source, the pipeline and the optional run log.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	GRAPH_API_KEY=...
//	NETWORK=ethereum
//	TARGET_SWAPS=2000
//	RUNLOG_ENABLED=true
//	POSTGRES_HOST=localhost
//	POSTGRES_DB=dexboard
type Config struct {
	Server   ServerConfig   // HTTP server configuration
	Subgraph SubgraphConfig // Swap source settings
	Pipeline PipelineConfig // Fetch and ranking knobs
	RunLog   RunLogConfig   // Optional run audit log
	Postgres PostgresConfig // PostgreSQL connection settings (run log only)
	Tracing  TracingConfig  // OpenTelemetry spans
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host           string        // Interface to bind, empty for all
	Port           string        // The TCP port the HTTP server will listen on (e.g., "8080")
	AllowedOrigins []string      // CORS origins; "*" allows any
	RequestTimeout time.Duration // Upper bound for a single API request
	RateLimit      int           // Requests per minute per client IP
}

// Addr returns host:port for http.Server.
func (s ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}

// SubgraphConfig describes where swaps come from.
//
// Fields:
//   - APIKey: gateway key substituted into catalogue endpoints.
//   - URL: explicit endpoint overriding the catalogue for every network.
//   - Network: catalogue key used when a request names none.
//   - Timeout: per-request HTTP timeout.
type SubgraphConfig struct {
	APIKey  string
	URL     string
	Network string
	Timeout time.Duration
}

// PipelineConfig tunes the paginated fetch and the ranked output.
type PipelineConfig struct {
	BatchSize    int // Swaps requested per page
	TargetSwaps  int // Stop once at least this many swaps are collected
	DefaultLimit int // Traders shown when a request omits limit
	Parallel     int // Concurrent runs for multi-token requests
}

// RunLogConfig toggles the Postgres-backed run log.
type RunLogConfig struct {
	Enabled bool
}

// TracingConfig toggles span export to stdout.
type TracingConfig struct {
	Enabled bool
}

// PostgresConfig defines connection details for PostgreSQL.
//
// Fields:
//   - Host: hostname of the database server.
//   - Port: port number of the database server (default 5432).
//   - User: username for authentication.
//   - Password: password for authentication.
//   - DBName: target database name.
//   - SSLMode: SSL mode (e.g., "disable", "require").
//   - URL: computed DSN used by database/sql to connect.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	URL      string
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing or invalid, validateConfig() will
//     terminate the app with a descriptive log message.
func LoadConfig() {
	setDefaults()

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	viper.AutomaticEnv()

	AppConfig = fromViper()
	validateConfig()
}

func setDefaults() {
	viper.SetDefault("SERVER_HOST", "")
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("ALLOWED_ORIGINS", "*")
	viper.SetDefault("REQUEST_TIMEOUT", "30s")
	viper.SetDefault("RATE_LIMIT", 60)

	viper.SetDefault("GRAPH_API_KEY", "")
	viper.SetDefault("SUBGRAPH_URL", "")
	viper.SetDefault("NETWORK", "ethereum")
	viper.SetDefault("SUBGRAPH_TIMEOUT", "30s")

	viper.SetDefault("BATCH_SIZE", 1000)
	viper.SetDefault("TARGET_SWAPS", 2000)
	viper.SetDefault("DEFAULT_LIMIT", 20)
	viper.SetDefault("PARALLEL", 4)

	viper.SetDefault("RUNLOG_ENABLED", false)
	viper.SetDefault("TRACING_ENABLED", false)

	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", 5432)
	viper.SetDefault("POSTGRES_USER", "postgres")
	viper.SetDefault("POSTGRES_PASSWORD", "postgres")
	viper.SetDefault("POSTGRES_DB", "dexboard")
	viper.SetDefault("POSTGRES_SSLMODE", "disable")
}

func fromViper() Config {
	cfg := Config{
		Server: ServerConfig{
			Host:           viper.GetString("SERVER_HOST"),
			Port:           viper.GetString("SERVER_PORT"),
			AllowedOrigins: splitList(viper.GetString("ALLOWED_ORIGINS")),
			RequestTimeout: viper.GetDuration("REQUEST_TIMEOUT"),
			RateLimit:      viper.GetInt("RATE_LIMIT"),
		},
		Subgraph: SubgraphConfig{
			APIKey:  viper.GetString("GRAPH_API_KEY"),
			URL:     viper.GetString("SUBGRAPH_URL"),
			Network: viper.GetString("NETWORK"),
			Timeout: viper.GetDuration("SUBGRAPH_TIMEOUT"),
		},
		Pipeline: PipelineConfig{
			BatchSize:    viper.GetInt("BATCH_SIZE"),
			TargetSwaps:  viper.GetInt("TARGET_SWAPS"),
			DefaultLimit: viper.GetInt("DEFAULT_LIMIT"),
			Parallel:     viper.GetInt("PARALLEL"),
		},
		RunLog:  RunLogConfig{Enabled: viper.GetBool("RUNLOG_ENABLED")},
		Tracing: TracingConfig{Enabled: viper.GetBool("TRACING_ENABLED")},
		Postgres: PostgresConfig{
			Host:     viper.GetString("POSTGRES_HOST"),
			Port:     viper.GetInt("POSTGRES_PORT"),
			User:     viper.GetString("POSTGRES_USER"),
			Password: viper.GetString("POSTGRES_PASSWORD"),
			DBName:   viper.GetString("POSTGRES_DB"),
			SSLMode:  viper.GetString("POSTGRES_SSLMODE"),
		},
	}

	// Construct Postgres DSN (used by database/sql)
	cfg.Postgres.URL = fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.Postgres.User,
		cfg.Postgres.Password,
		cfg.Postgres.Host,
		cfg.Postgres.Port,
		cfg.Postgres.DBName,
		cfg.Postgres.SSLMode,
	)
	return cfg
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// problems lists missing or invalid settings of cfg.
//
// Postgres settings are only required when the run log is enabled.
func problems(cfg Config) []string {
	var missing []string

	if cfg.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if cfg.Subgraph.Network == "" && cfg.Subgraph.URL == "" {
		missing = append(missing, "NETWORK")
	}
	if cfg.Subgraph.Timeout <= 0 {
		missing = append(missing, "SUBGRAPH_TIMEOUT")
	}
	if cfg.Pipeline.BatchSize <= 0 {
		missing = append(missing, "BATCH_SIZE")
	}
	if cfg.Pipeline.TargetSwaps <= 0 {
		missing = append(missing, "TARGET_SWAPS")
	}
	if cfg.Pipeline.DefaultLimit < 0 {
		missing = append(missing, "DEFAULT_LIMIT")
	}
	if cfg.Pipeline.Parallel <= 0 {
		missing = append(missing, "PARALLEL")
	}

	if cfg.RunLog.Enabled {
		if cfg.Postgres.Host == "" {
			missing = append(missing, "POSTGRES_HOST")
		}
		if cfg.Postgres.Port == 0 {
			missing = append(missing, "POSTGRES_PORT")
		}
		if cfg.Postgres.User == "" {
			missing = append(missing, "POSTGRES_USER")
		}
		if cfg.Postgres.Password == "" {
			missing = append(missing, "POSTGRES_PASSWORD")
		}
		if cfg.Postgres.DBName == "" {
			missing = append(missing, "POSTGRES_DB")
		}
	}
	return missing
}

// validateConfig terminates the application with log.Fatalf when AppConfig
// has missing or invalid required variables.
func validateConfig() {
	if missing := problems(AppConfig); len(missing) > 0 {
		log.Fatalf("❌ Missing or invalid environment variables: %v\n", missing)
	}
}
