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
	Cart         CartConfig
	Media        MediaConfig
	Storage      StorageConfig
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
	Env          string   `envconfig:"TECHPINIK_APP_ENV" required:"true"`
	Port         string   `envconfig:"TECHPINIK_APP_PORT" default:"8080"`
	LogLevel     string   `envconfig:"TECHPINIK_LOG_LEVEL" default:"info"`
	LogWarnStack bool     `envconfig:"TECHPINIK_LOG_WARN_STACK" default:"false"`
	CORSOrigins  []string `envconfig:"TECHPINIK_CORS_ORIGINS" default:"*"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"TECHPINIK_DB_DSN"`
	Driver string `envconfig:"TECHPINIK_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"TECHPINIK_DB_HOST"`
	LegacyPort     int    `envconfig:"TECHPINIK_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"TECHPINIK_DB_USER"`
	LegacyPassword string `envconfig:"TECHPINIK_DB_PASSWORD"`
	LegacyName     string `envconfig:"TECHPINIK_DB_NAME"`
	LegacySSLMode  string `envconfig:"TECHPINIK_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"TECHPINIK_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"TECHPINIK_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"TECHPINIK_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"TECHPINIK_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"TECHPINIK_REDIS_URL" required:"true"`
	Address      string        `envconfig:"TECHPINIK_REDIS_ADDR"`
	Password     string        `envconfig:"TECHPINIK_REDIS_PASSWORD"`
	DB           int           `envconfig:"TECHPINIK_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"TECHPINIK_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"TECHPINIK_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"TECHPINIK_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"TECHPINIK_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"TECHPINIK_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type CartConfig struct {
	TTLHours int `envconfig:"TECHPINIK_CART_TTL_HOURS" default:"168"`
}

// TTL returns how long an idle cart survives in the store.
func (c CartConfig) TTL() time.Duration {
	if c.TTLHours <= 0 {
		return 0
	}
	return time.Duration(c.TTLHours) * time.Hour
}

type MediaConfig struct {
	MaxUploadMB    int      `envconfig:"TECHPINIK_MEDIA_MAX_UPLOAD_MB" default:"10"`
	AllowedFolders []string `envconfig:"TECHPINIK_MEDIA_ALLOWED_FOLDERS" default:"products,categories,sliders"`
}

type StorageConfig struct {
	BucketName      string `envconfig:"TECHPINIK_STORAGE_BUCKET"`
	CredentialsJSON string `envconfig:"TECHPINIK_STORAGE_CREDENTIALS_JSON"`
	PublicBaseURL   string `envconfig:"TECHPINIK_STORAGE_PUBLIC_BASE_URL"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"TECHPINIK_AUTO_MIGRATE" default:"false"`
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
