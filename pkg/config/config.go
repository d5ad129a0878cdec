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
	Cache        CacheConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"RIGHTTOOL_APP_ENV" required:"true"`
	Port         string `envconfig:"RIGHTTOOL_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"RIGHTTOOL_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"RIGHTTOOL_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"RIGHTTOOL_DB_DSN"`
	Driver string `envconfig:"RIGHTTOOL_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"RIGHTTOOL_DB_HOST"`
	LegacyPort     int    `envconfig:"RIGHTTOOL_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"RIGHTTOOL_DB_USER"`
	LegacyPassword string `envconfig:"RIGHTTOOL_DB_PASSWORD"`
	LegacyName     string `envconfig:"RIGHTTOOL_DB_NAME"`
	LegacySSLMode  string `envconfig:"RIGHTTOOL_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"RIGHTTOOL_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"RIGHTTOOL_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"RIGHTTOOL_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"RIGHTTOOL_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// RedisConfig is optional: when neither URL nor Address is set, the API runs
// without the listing cache.
type RedisConfig struct {
	URL          string        `envconfig:"RIGHTTOOL_REDIS_URL"`
	Address      string        `envconfig:"RIGHTTOOL_REDIS_ADDR"`
	Password     string        `envconfig:"RIGHTTOOL_REDIS_PASSWORD"`
	DB           int           `envconfig:"RIGHTTOOL_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"RIGHTTOOL_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"RIGHTTOOL_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"RIGHTTOOL_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"RIGHTTOOL_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"RIGHTTOOL_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a Redis endpoint was configured at all.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

type CacheConfig struct {
	ListingTTL time.Duration `envconfig:"RIGHTTOOL_CACHE_LISTING_TTL" default:"5m"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"RIGHTTOOL_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"RIGHTTOOL_AUTO_MIGRATE" default:"false"`
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
