package config

import (
	"errors"
	"fmt"
	"net/netip"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// ErrInvalidConfig возвращается, когда конфигурация не проходит валидацию
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Redis     RedisConfig     `toml:"redis"`
	Cache     CacheConfig     `toml:"cache"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// RedisConfig настройки Redis (кэш запросов)
type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// CacheConfig настройки кэша запросов
type CacheConfig struct {
	Prefix string `toml:"prefix"`
	TTL    int    `toml:"ttl"` // секунды
}

// LogsConfig настройки логгера
type LogsConfig struct {
	Level  string `toml:"level"`
	File   string `toml:"file"`
	Format string `toml:"format"` // json | console
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// RateLimitConfig ограничение частоты поиска бронирований по IP
type RateLimitConfig struct {
	LookupPerMinute int `toml:"lookup_per_minute"`
	LookupBurst     int `toml:"lookup_burst"`
	VisitorTTL      int `toml:"visitor_ttl"` // секунды
	// CIDR прокси, которым доверяем X-Forwarded-For и X-Real-IP
	TrustedProxies []string `toml:"trusted_proxies"`
}

// TrustedProxyPrefixes разбирает TrustedProxies.
// Одиночный адрес без маски считается сетью из одного адреса.
func (c *RateLimitConfig) TrustedProxyPrefixes() ([]netip.Prefix, error) {
	prefixes := make([]netip.Prefix, 0, len(c.TrustedProxies))
	for _, raw := range c.TrustedProxies {
		if addr, err := netip.ParseAddr(raw); err == nil {
			prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
			continue
		}
		p, err := netip.ParsePrefix(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: rate_limit.trusted_proxies: %q", ErrInvalidConfig, raw)
		}
		prefixes = append(prefixes, p.Masked())
	}
	return prefixes, nil
}

// Load читает конфигурацию из TOML файла, накладывает переменные окружения
// (и .env, если он есть) и проверяет результат
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	// .env необязателен
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: failed to load .env: %w", err)
	}

	cfg.LoadFromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "smc_visit",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		Cache: CacheConfig{
			Prefix: "visit",
			TTL:    60,
		},
		Logs: LogsConfig{
			Level:  "info",
			Format: "json",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "visitservice",
		},
		RateLimit: RateLimitConfig{
			LookupPerMinute: 10,
			LookupBurst:     5,
			VisitorTTL:      600,
		},
	}
}

// LoadFromEnv накладывает значения из переменных окружения
func (c *Config) LoadFromEnv() {
	setInt(&c.Server.HTTPPort, "HTTP_PORT")

	c.Database.LoadFromEnv("DB")
	c.Redis.LoadFromEnv("REDIS")

	setString(&c.Logs.Level, "LOG_LEVEL")
	setString(&c.Logs.File, "LOG_FILE")
	setBool(&c.Metrics.Enabled, "METRICS_ENABLED")
}

// LoadFromEnv загружает настройки БД из переменных с префиксом
func (c *DatabaseConfig) LoadFromEnv(prefix string) {
	setString(&c.Host, prefix+"_HOST")
	setInt(&c.Port, prefix+"_PORT")
	setString(&c.User, prefix+"_USER")
	setString(&c.Password, prefix+"_PASSWORD")
	setString(&c.DBName, prefix+"_NAME")
	setString(&c.SSLMode, prefix+"_SSLMODE")
}

// LoadFromEnv загружает настройки Redis из переменных с префиксом
func (c *RedisConfig) LoadFromEnv(prefix string) {
	setBool(&c.Enabled, prefix+"_ENABLED")
	setString(&c.Addr, prefix+"_ADDR")
	setString(&c.Password, prefix+"_PASSWORD")
	setInt(&c.DB, prefix+"_DB")
}

// DSN строка подключения для lib/pq
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// Validate проверяет обязательные поля и диапазоны
func (c *Config) Validate() error {
	switch {
	case c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535:
		return fmt.Errorf("%w: server.http_port out of range: %d", ErrInvalidConfig, c.Server.HTTPPort)
	case c.Database.Host == "":
		return fmt.Errorf("%w: database.host is required", ErrInvalidConfig)
	case c.Database.DBName == "":
		return fmt.Errorf("%w: database.dbname is required", ErrInvalidConfig)
	case c.Redis.Enabled && c.Redis.Addr == "":
		return fmt.Errorf("%w: redis.addr is required when redis is enabled", ErrInvalidConfig)
	case c.Cache.TTL <= 0:
		return fmt.Errorf("%w: cache.ttl must be positive", ErrInvalidConfig)
	case c.Metrics.Enabled && c.Metrics.Path == "":
		return fmt.Errorf("%w: metrics.path is required when metrics are enabled", ErrInvalidConfig)
	case c.RateLimit.LookupPerMinute <= 0 || c.RateLimit.LookupBurst <= 0:
		return fmt.Errorf("%w: rate_limit values must be positive", ErrInvalidConfig)
	}
	if _, err := c.RateLimit.TrustedProxyPrefixes(); err != nil {
		return err
	}
	return nil
}

// CacheTTL TTL кэша как time.Duration
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Cache.TTL) * time.Second
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setBool(dst *bool, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}
