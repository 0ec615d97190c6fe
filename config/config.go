package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Project   ProjectConfig   `mapstructure:"project"`
	Explorer  ExplorerConfig  `mapstructure:"explorer"`
	Geocoder  GeocoderConfig  `mapstructure:"geocoder"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Export    ExportConfig    `mapstructure:"export"`
	Site      SiteConfig      `mapstructure:"site"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// ProjectConfig identifies the project whose travels are being logged.
type ProjectConfig struct {
	BTCAddress  string `mapstructure:"btc_address"`
	OriginLabel string `mapstructure:"origin_label"`
}

// ExplorerConfig points at the blockchain explorer used for payment verification.
type ExplorerConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

// GeocoderConfig points at the geocoding service used for location resolution.
type GeocoderConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

// RateLimitConfig controls the per-origin submission quota.
// Backend "memory" keeps attempt state in-process (single instance);
// "redis" shares it across instances.
type RateLimitConfig struct {
	Backend string        `mapstructure:"backend"` // memory, redis
	Limit   int64         `mapstructure:"limit"`
	Window  time.Duration `mapstructure:"window"`
}

type ExportConfig struct {
	Path string `mapstructure:"path"`
}

type SiteConfig struct {
	Dir string `mapstructure:"dir"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: TM_ (Traveling Message).
// Nested keys use underscore: TM_DATABASE_HOST, TM_PROJECT_BTC_ADDRESS, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "traveling_message")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("project.btc_address", "bc1qexampleaddressxxxxxxxxxxxxxxxxxxxxxx")
	v.SetDefault("project.origin_label", "Vancouver Island, BC, Canada")
	v.SetDefault("explorer.base_url", "https://blockstream.info/api")
	v.SetDefault("explorer.timeout", "10s")
	v.SetDefault("explorer.user_agent", "TravelingMessage/1.0 (contact: none)")
	v.SetDefault("geocoder.base_url", "https://nominatim.openstreetmap.org")
	v.SetDefault("geocoder.timeout", "10s")
	v.SetDefault("geocoder.user_agent", "TravelingMessage/1.0 (contact: none)")
	v.SetDefault("ratelimit.backend", "memory")
	v.SetDefault("ratelimit.limit", 12)
	v.SetDefault("ratelimit.window", "60s")
	v.SetDefault("export.path", "site/data/log.json")
	v.SetDefault("site.dir", "site")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: TM_DATABASE_HOST -> database.host
	v.SetEnvPrefix("TM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required — env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
