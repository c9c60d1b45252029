package config

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	envPrefix = "BOOKRECORD"

	// DriverPGXPool selects the jackc/pgx pool.
	DriverPGXPool = "pgx.pool"
	// DriverSQLDB selects database/sql with the lib/pq driver.
	DriverSQLDB = "sql.db"
	// DriverSQLX selects jmoiron/sqlx with the lib/pq driver.
	DriverSQLX = "sqlx.db"

	keyPostgresDSN               = "postgres.dsn"
	keyPostgresDriver            = "postgres.driver"
	keyPostgresMaxConns          = "postgres.max_conns"
	keyPostgresMinConns          = "postgres.min_conns"
	keyPostgresMaxConnLifetime   = "postgres.max_conn_lifetime"
	keyPostgresMaxConnIdleTime   = "postgres.max_conn_idle_time"
	keyPostgresHealthCheckPeriod = "postgres.health_check_period"
	keyPostgresConnectTimeout    = "postgres.connect_timeout"
	keyBookStoreTableName        = "bookstore.table_name"
	keyLogLevel                  = "log.level"
)

var (
	// ErrReadingConfigFailed is returned when the config file cannot be read or parsed.
	ErrReadingConfigFailed = errors.New("reading config failed")

	// ErrDecodingConfigFailed is returned when the config values do not fit the Config struct.
	ErrDecodingConfigFailed = errors.New("decoding config failed")

	// ErrMissingDSN is returned when no PostgreSQL DSN is configured.
	ErrMissingDSN = errors.New("postgres dsn must not be empty")

	// ErrUnsupportedDriver is returned for a driver other than pgx.pool, sql.db, or sqlx.db.
	ErrUnsupportedDriver = errors.New("unsupported postgres driver")

	// ErrInvalidPoolSize is returned when the pool sizes are not positive or min exceeds max.
	ErrInvalidPoolSize = errors.New("invalid connection pool size")

	// ErrInvalidLogLevel is returned when the log level is not one of debug, info, warn, error.
	ErrInvalidLogLevel = errors.New("invalid log level")
)

// Config is the complete runtime configuration.
type Config struct {
	Postgres  PostgresConfig  `mapstructure:"postgres"`
	BookStore BookStoreConfig `mapstructure:"bookstore"`
	Log       LogConfig       `mapstructure:"log"`
}

// PostgresConfig configures the database connection pool.
type PostgresConfig struct {
	DSN               string        `mapstructure:"dsn"`
	Driver            string        `mapstructure:"driver"`
	MaxConns          int32         `mapstructure:"max_conns"`
	MinConns          int32         `mapstructure:"min_conns"`
	MaxConnLifetime   time.Duration `mapstructure:"max_conn_lifetime"`
	MaxConnIdleTime   time.Duration `mapstructure:"max_conn_idle_time"`
	HealthCheckPeriod time.Duration `mapstructure:"health_check_period"`
	ConnectTimeout    time.Duration `mapstructure:"connect_timeout"`
}

// BookStoreConfig configures the book table.
type BookStoreConfig struct {
	TableName string `mapstructure:"table_name"`
}

// LogConfig configures the slog logger.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads the configuration from configFile, if given, and from the environment.
// An empty configFile means environment and defaults only.
func Load(configFile string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType(strings.TrimLeft(filepath.Ext(configFile), "."))

		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Join(ErrReadingConfigFailed, fmt.Errorf("v.ReadInConfig: %w", err))
		}
	}

	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Join(ErrDecodingConfigFailed, fmt.Errorf("v.Unmarshal: %w", err))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyPostgresDSN, "")
	v.SetDefault(keyPostgresDriver, DriverPGXPool)
	v.SetDefault(keyPostgresMaxConns, 8)
	v.SetDefault(keyPostgresMinConns, 2)
	v.SetDefault(keyPostgresMaxConnLifetime, time.Hour)
	v.SetDefault(keyPostgresMaxConnIdleTime, 5*time.Minute)
	v.SetDefault(keyPostgresHealthCheckPeriod, time.Minute)
	v.SetDefault(keyPostgresConnectTimeout, 5*time.Second)
	v.SetDefault(keyBookStoreTableName, "book_records")
	v.SetDefault(keyLogLevel, "info")
}

// Validate reports the first problem that would make the configuration unusable.
func (cfg Config) Validate() error {
	if cfg.Postgres.DSN == "" {
		return ErrMissingDSN
	}

	switch cfg.Postgres.Driver {
	case DriverPGXPool, DriverSQLDB, DriverSQLX:
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Postgres.Driver)
	}

	if cfg.Postgres.MaxConns <= 0 || cfg.Postgres.MinConns < 0 || cfg.Postgres.MinConns > cfg.Postgres.MaxConns {
		return fmt.Errorf("%w: min %d, max %d", ErrInvalidPoolSize, cfg.Postgres.MinConns, cfg.Postgres.MaxConns)
	}

	if _, err := cfg.Log.SlogLevel(); err != nil {
		return err
	}

	return nil
}

// SlogLevel maps the configured level name onto a slog.Level.
func (cfg LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return 0, errors.Join(ErrInvalidLogLevel, err)
	}

	return level, nil
}
