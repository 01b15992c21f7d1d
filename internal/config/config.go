package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. PARCEL_DB_PATH.
const EnvPrefix = "PARCEL"

type Config struct {
	Port    string        `mapstructure:"port"`
	Log     LogConfig     `mapstructure:"log"`
	DB      DBConfig      `mapstructure:"db"`
	Auth    AuthConfig    `mapstructure:"auth"`
	Admin   AdminConfig   `mapstructure:"admin"`
	Email   EmailConfig   `mapstructure:"email"`
	Queue   QueueConfig   `mapstructure:"queue"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Watcher WatcherConfig `mapstructure:"watcher"`
	Console ConsoleConfig `mapstructure:"console"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type DBConfig struct {
	Path string `mapstructure:"path"`
}

type AuthConfig struct {
	SigningKey string        `mapstructure:"signing_key"`
	TokenTTL   time.Duration `mapstructure:"token_ttl"`
}

// AdminConfig holds the built-in administrator account.
type AdminConfig struct {
	Email    string `mapstructure:"email"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
}

type EmailConfig struct {
	Provider string     `mapstructure:"provider"` // log | smtp
	From     string     `mapstructure:"from"`
	SMTP     SMTPConfig `mapstructure:"smtp"`
}

type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type QueueConfig struct {
	Backend string `mapstructure:"backend"` // memory | redis
	Buffer  int    `mapstructure:"buffer"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Key      string `mapstructure:"key"`
}

type WatcherConfig struct {
	Tick       time.Duration `mapstructure:"tick"`
	StaleAfter time.Duration `mapstructure:"stale_after"`
}

type ConsoleConfig struct {
	Port          string        `mapstructure:"port"`
	APIURL        string        `mapstructure:"api_url"`
	SessionSecret string        `mapstructure:"session_secret"`
	Timeout       time.Duration `mapstructure:"timeout"`
}

var defaults = map[string]any{
	"port":                   "8080",
	"log.level":              "info",
	"db.path":                "parcels.db",
	"auth.token_ttl":         "24h",
	"admin.name":             "Administrator",
	"email.provider":         "log",
	"email.from":             "no-reply@parceltrack.local",
	"email.smtp.port":        587,
	"queue.backend":          "memory",
	"queue.buffer":           256,
	"redis.addr":             "localhost:6379",
	"redis.key":              "parceltrack:notifications",
	"watcher.tick":           "1m",
	"watcher.stale_after":    "72h",
	"console.port":           "3000",
	"console.api_url":        "http://localhost:8080",
	"console.timeout":        "10s",
	"auth.signing_key":       "",
	"admin.email":            "",
	"admin.password":         "",
	"email.smtp.host":        "",
	"email.smtp.username":    "",
	"email.smtp.password":    "",
	"redis.password":         "",
	"redis.db":               0,
	"console.session_secret": "",
}

// Load reads an optional .env file, then the YAML config at path (or
// configs/config.yml when path is empty), then PARCEL_* environment overrides.
func Load(path string) (*Config, error) {
	// .env is optional; real environment variables still apply without it.
	_ = godotenv.Load()

	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath("configs") // configs/config.yml
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects combinations the server cannot start with.
func (c *Config) Validate() error {
	switch c.Email.Provider {
	case "log":
	case "smtp":
		if c.Email.SMTP.Host == "" {
			return errors.New("email provider is 'smtp' but email.smtp.host is not set")
		}
	default:
		return fmt.Errorf("unknown email provider: %s", c.Email.Provider)
	}
	switch c.Queue.Backend {
	case "memory", "redis":
	default:
		return fmt.Errorf("unknown queue backend: %s", c.Queue.Backend)
	}
	if c.Auth.TokenTTL <= 0 {
		return errors.New("auth.token_ttl must be positive")
	}
	return nil
}
