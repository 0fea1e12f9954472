package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
	"github.com/zalando/go-keyring"
)

const (
	EnvPrefix = "STREAK_RADAR"
	AppName   = "streak-radar"

	// KeyringUser is the account under which the Postgres DSN is stored.
	KeyringUser = "postgres-dsn"
)

type Platform string

const (
	PlatformNative Platform = "native"
	PlatformWeb    Platform = "web"
)

const (
	BackendAuto     = "auto"
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

var (
	ErrUnsupportedPlatform = errors.New("unsupported platform (must be native or web)")
	ErrUnsupportedBackend  = errors.New("unsupported store backend")
	ErrMissingPostgresDSN  = errors.New("postgres backend selected but no DSN configured")
)

// Config is read from STREAK_RADAR_* environment variables.
type Config struct {
	Environment string   `envconfig:"ENV" default:"development"`
	Platform    Platform `envconfig:"PLATFORM" default:"native"`

	Backend       string `envconfig:"STORE_BACKEND" default:"auto"`
	SQLitePath    string `envconfig:"SQLITE_PATH" default:""`
	PostgresDSN   string `envconfig:"POSTGRES_DSN" default:""`
	PostgresTable string `envconfig:"POSTGRES_TABLE" default:"kv_store"`

	RedisHost      string `envconfig:"REDIS_HOST" default:"localhost"`
	RedisPort      string `envconfig:"REDIS_PORT" default:"6379"`
	RedisPassword  string `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB        int    `envconfig:"REDIS_DB" default:"0"`
	RedisKeyPrefix string `envconfig:"REDIS_KEY_PREFIX" default:"streak-radar:"`

	CacheEnabled bool          `envconfig:"CACHE_ENABLED" default:"false"`
	CacheTTL     time.Duration `envconfig:"CACHE_TTL" default:"30m"`

	HTTPAddr           string `envconfig:"HTTP_ADDR" default:"127.0.0.1:8080"`
	RateLimitPerMinute int    `envconfig:"RATE_LIMIT_PER_MINUTE" default:"0"`
	MetricsEnabled     bool   `envconfig:"METRICS_ENABLED" default:"true"`

	Timezone        string `envconfig:"TIMEZONE" default:"Local"`
	WorkerQueueSize int    `envconfig:"WORKER_QUEUE_SIZE" default:"100"`
	RemindersOn     bool   `envconfig:"REMINDERS_ENABLED" default:"true"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFile   string `envconfig:"LOG_FILE" default:""`
	LogPretty bool   `envconfig:"LOG_PRETTY" default:"false"`

	location *time.Location
}

// Load reads an optional .env file and then the environment.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Warn().Err(err).Str("file", f).Msg("could not read env file")
		}
	}

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}

	log.Info().
		Str("environment", cfg.Environment).
		Str("platform", string(cfg.Platform)).
		Str("backend", cfg.Backend).
		Str("http_addr", cfg.HTTPAddr).
		Str("timezone", cfg.location.String()).
		Bool("cache", cfg.CacheEnabled).
		Bool("postgres_dsn_present", cfg.PostgresDSN != "").
		Msg("Configuration loaded")

	return &cfg, nil
}

// ResolveDefaults validates the platform and derives the backend, the SQLite
// path and the timezone.
func (c *Config) ResolveDefaults() error {
	var defaultBackend string
	switch c.Platform {
	case PlatformNative:
		defaultBackend = BackendSQLite
	case PlatformWeb:
		defaultBackend = BackendRedis
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedPlatform, c.Platform)
	}

	c.Backend = strings.ToLower(strings.TrimSpace(c.Backend))
	if c.Backend == "" || c.Backend == BackendAuto {
		c.Backend = defaultBackend
	}

	switch c.Backend {
	case BackendMemory, BackendRedis:
	case BackendSQLite:
		if c.SQLitePath == "" {
			c.SQLitePath = defaultSQLitePath()
		}
	case BackendPostgres:
		if c.PostgresDSN == "" {
			c.PostgresDSN = dsnFromKeyring()
		}
		if c.PostgresDSN == "" {
			return ErrMissingPostgresDSN
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedBackend, c.Backend)
	}

	loc, err := LoadLocation(c.Timezone)
	if err != nil {
		return err
	}
	c.location = loc

	if c.WorkerQueueSize <= 0 {
		c.WorkerQueueSize = 100
	}
	return nil
}

// Location is the timezone used to derive calendar days.
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.Local
	}
	return c.location
}

func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}

// LoadLocation accepts an IANA name; empty and "Local" mean the system zone.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", name, err)
	}
	return loc, nil
}

func defaultSQLitePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, AppName, AppName+".db")
}

func dsnFromKeyring() string {
	dsn, err := keyring.Get(AppName, KeyringUser)
	if err != nil {
		if !errors.Is(err, keyring.ErrNotFound) {
			log.Warn().Err(err).Msg("OS keyring unavailable")
		}
		return ""
	}
	return dsn
}

// StoreDSN saves the Postgres DSN in the OS keyring.
func StoreDSN(dsn string) error {
	if dsn == "" {
		return errors.New("connection string cannot be empty")
	}
	if err := keyring.Set(AppName, KeyringUser, dsn); err != nil {
		return fmt.Errorf("failed to store credentials in keyring: %w", err)
	}
	return nil
}
