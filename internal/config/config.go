package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	envPrefix     = "AIRLINE"
	configFileEnv = "AIRLINE_CONFIG_FILE"

	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

type Config struct {
	Port             int    `validate:"min=1,max=65535"`
	Env              string `validate:"oneof=dev staging prod test"`
	OtelCollectorUrl string
	Store            string `validate:"oneof=postgres memory"`
	Migrate          bool
	MigrationsPath   string
	DisplayVersion   bool
	DB               DBConfig
	Redis            RedisConfig
	Admin            AdminConfig
	Booking          BookingConfig
}

type DBConfig struct {
	DSN          string
	MaxOpenConns int `validate:"min=1"`
	MaxIdleTime  time.Duration
}

type RedisConfig struct {
	URL          string
	MaxOpenConns int `validate:"min=1"`
	MaxIdleConns int `validate:"min=0"`
	MaxIdleTime  time.Duration
}

type AdminConfig struct {
	Username     string
	PasswordHash string
}

type BookingConfig struct {
	IdempotencyTTL time.Duration `validate:"min=1s"`
}

// Load parses args into a Config. Every flag falls back to an AIRLINE_* environment
// variable (db-dsn reads AIRLINE_DB_DSN), or to the file named by AIRLINE_CONFIG_FILE.
func Load(fs *flag.FlagSet, args []string) (Config, error) {
	v, err := newViper()
	if err != nil {
		return Config{}, err
	}

	var cfg Config

	fs.IntVar(&cfg.Port, "port", v.GetInt("port"), "server port")
	fs.StringVar(&cfg.Env, "env", v.GetString("env"), "Environment (dev|staging|prod|test)")
	fs.StringVar(&cfg.OtelCollectorUrl, "otel-collector-url", v.GetString("otel-collector-url"), "OpenTelemetry collector gRPC endpoint")
	fs.StringVar(&cfg.Store, "store", v.GetString("store"), "Data store (postgres|memory)")
	fs.BoolVar(&cfg.Migrate, "migrate", v.GetBool("migrate"), "Apply database migrations at startup")
	fs.StringVar(&cfg.MigrationsPath, "migrations-path", v.GetString("migrations-path"), "Migration source URL")

	fs.StringVar(&cfg.DB.DSN, "db-dsn", v.GetString("db-dsn"), "PostgreSQL DSN")
	fs.IntVar(&cfg.DB.MaxOpenConns, "db-max-open-conns", v.GetInt("db-max-open-conns"), "PostgreSQL max open connections")
	fs.DurationVar(&cfg.DB.MaxIdleTime, "db-max-idle-time", v.GetDuration("db-max-idle-time"), "PostgreSQL max idle time for connections")

	fs.StringVar(&cfg.Redis.URL, "redis-url", v.GetString("redis-url"), "Redis address")
	fs.IntVar(&cfg.Redis.MaxOpenConns, "redis-max-open-conns", v.GetInt("redis-max-open-conns"), "Redis max open connections")
	fs.IntVar(&cfg.Redis.MaxIdleConns, "redis-max-idle-conns", v.GetInt("redis-max-idle-conns"), "Redis max idle connections")
	fs.DurationVar(&cfg.Redis.MaxIdleTime, "redis-max-idle-time", v.GetDuration("redis-max-idle-time"), "Redis max idle time for connections")

	fs.StringVar(&cfg.Admin.Username, "admin-username", v.GetString("admin-username"), "Administrator username")
	fs.StringVar(&cfg.Admin.PasswordHash, "admin-password-hash", v.GetString("admin-password-hash"), "Administrator bcrypt password hash")

	fs.DurationVar(&cfg.Booking.IdempotencyTTL, "idempotency-ttl", v.GetDuration("idempotency-ttl"), "How long booking idempotency keys are remembered")

	fs.BoolVar(&cfg.DisplayVersion, "version", false, "Display version and exit")

	err = fs.Parse(args)
	if err != nil {
		return Config{}, err
	}

	if cfg.DisplayVersion {
		return cfg, nil
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	err := validator.New(validator.WithRequiredStructEnabled()).Struct(c)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if c.Store == StorePostgres && c.DB.DSN == "" {
		return errors.New("invalid configuration: db-dsn is required when store is postgres")
	}

	if c.Migrate && c.Store != StorePostgres {
		return errors.New("invalid configuration: migrations only apply to the postgres store")
	}

	return nil
}

func newViper() (*viper.Viper, error) {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", 3000)
	v.SetDefault("env", "dev")
	v.SetDefault("store", StorePostgres)
	v.SetDefault("migrate", false)
	v.SetDefault("migrations-path", "file://migrations")
	v.SetDefault("db-max-open-conns", 25)
	v.SetDefault("db-max-idle-time", 15*time.Minute)
	v.SetDefault("redis-max-open-conns", 25)
	v.SetDefault("redis-max-idle-conns", 10)
	v.SetDefault("redis-max-idle-time", 2*time.Minute)
	v.SetDefault("admin-username", "admin")
	v.SetDefault("idempotency-ttl", 24*time.Hour)

	if file := os.Getenv(configFileEnv); file != "" {
		v.SetConfigFile(file)

		err := v.ReadInConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
	}

	return v, nil
}
