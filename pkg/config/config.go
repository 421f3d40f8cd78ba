package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	App struct {
		Env      string `koanf:"env"`
		LogLevel string `koanf:"log_level"`
		LogFile  string `koanf:"log_file"`
		HTTPAddr string `koanf:"http_addr"`
	} `koanf:"app"`

	HTTP struct {
		ReadTimeout  time.Duration `koanf:"read_timeout"`
		WriteTimeout time.Duration `koanf:"write_timeout"`
		IdleTimeout  time.Duration `koanf:"idle_timeout"`
	} `koanf:"http"`

	Postgres struct {
		Host            string        `koanf:"host"`
		Port            int           `koanf:"port"`
		User            string        `koanf:"user"`
		Password        string        `koanf:"password"`
		Database        string        `koanf:"database"`
		SSLMode         string        `koanf:"ssl_mode"`
		MaxOpenConns    int           `koanf:"max_open_conns"`
		MaxIdleConns    int           `koanf:"max_idle_conns"`
		ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	} `koanf:"postgres"`

	Redis struct {
		Addr       string        `koanf:"addr"`
		Password   string        `koanf:"password"`
		ProductTTL time.Duration `koanf:"product_ttl"`
	} `koanf:"redis"`

	Auth struct {
		JWTSecret string        `koanf:"jwt_secret"`
		TokenTTL  time.Duration `koanf:"token_ttl"`
	} `koanf:"auth"`
}

// Load reads an optional yaml file and overlays STOREFRONT_ environment
// variables. Nested keys use __, e.g. STOREFRONT_POSTGRES__HOST.
func Load(path string) (Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("load %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("STOREFRONT_", ".", func(s string) string {
		s = strings.TrimPrefix(s, "STOREFRONT_")
		s = strings.ReplaceAll(s, "__", ".")
		return strings.ToLower(s)
	}), nil); err != nil {
		return Config{}, fmt.Errorf("env overlay: %w", err)
	}

	cfg := defaults()
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func defaults() Config {
	var c Config
	c.App.Env = "dev"
	c.App.LogLevel = "info"
	c.App.HTTPAddr = ":8080"
	c.HTTP.ReadTimeout = 15 * time.Second
	c.HTTP.WriteTimeout = 15 * time.Second
	c.HTTP.IdleTimeout = 60 * time.Second
	c.Postgres.Host = "localhost"
	c.Postgres.Port = 5432
	c.Postgres.User = "storefront"
	c.Postgres.Database = "storefront_db"
	c.Postgres.SSLMode = "disable"
	c.Postgres.MaxOpenConns = 25
	c.Postgres.MaxIdleConns = 5
	c.Postgres.ConnMaxLifetime = 30 * time.Minute
	c.Redis.ProductTTL = 5 * time.Minute
	c.Auth.TokenTTL = 7 * 24 * time.Hour
	return c
}

func (c Config) validate() error {
	if c.App.HTTPAddr == "" {
		return fmt.Errorf("app.http_addr required")
	}
	if c.Postgres.Host == "" || c.Postgres.Database == "" {
		return fmt.Errorf("postgres.host and postgres.database required")
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret required")
	}
	return nil
}
