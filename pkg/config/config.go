package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Pricing      PricingConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.FeatureFlags.UseSQLite {
		cfg.DB.Driver = "sqlite"
		if cfg.DB.DSN == "" {
			cfg.DB.DSN = "file:flyerworks.db?cache=shared"
		}
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"FLYERWORKS_APP_ENV" required:"true"`
	Port         string `envconfig:"FLYERWORKS_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"FLYERWORKS_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"FLYERWORKS_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"FLYERWORKS_DB_DSN"`
	Driver string `envconfig:"FLYERWORKS_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"FLYERWORKS_DB_HOST"`
	LegacyPort     int    `envconfig:"FLYERWORKS_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"FLYERWORKS_DB_USER"`
	LegacyPassword string `envconfig:"FLYERWORKS_DB_PASSWORD"`
	LegacyName     string `envconfig:"FLYERWORKS_DB_NAME"`
	LegacySSLMode  string `envconfig:"FLYERWORKS_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"FLYERWORKS_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"FLYERWORKS_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"FLYERWORKS_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"FLYERWORKS_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"FLYERWORKS_REDIS_URL" required:"true"`
	Address      string        `envconfig:"FLYERWORKS_REDIS_ADDR"`
	Password     string        `envconfig:"FLYERWORKS_REDIS_PASSWORD"`
	DB           int           `envconfig:"FLYERWORKS_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"FLYERWORKS_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"FLYERWORKS_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"FLYERWORKS_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"FLYERWORKS_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"FLYERWORKS_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type PricingConfig struct {
	OptionsCacheTTL time.Duration `envconfig:"FLYERWORKS_PRICING_OPTIONS_CACHE_TTL" default:"5m"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"FLYERWORKS_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"FLYERWORKS_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
