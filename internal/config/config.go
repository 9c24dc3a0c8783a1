package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Backend реализация внешнего хранилища
const (
	BackendPostgres = "postgres"
	BackendSupabase = "supabase"
)

// Переменные окружения с секретами
const (
	EnvDBPassword         = "DB_PASSWORD"
	EnvSupabaseServiceKey = "SUPABASE_SERVICE_KEY"
	EnvSupabaseJWTSecret  = "SUPABASE_JWT_SECRET"
)

// ErrInvalidConfig возвращается при некорректной конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Backend  string         `toml:"backend"`
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Supabase SupabaseConfig `toml:"supabase"`
	Auth     AuthConfig     `toml:"auth"`
	Venue    VenueConfig    `toml:"venue"`
	Gate     GateConfig     `toml:"gate"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	CORS     CORSConfig     `toml:"cors"`
}

// ServerConfig HTTP сервер, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig прямое подключение к Postgres
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	sslMode := d.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, sslMode)
}

// MigrateURL URL подключения для golang-migrate
func (d DatabaseConfig) MigrateURL() string {
	sslMode := d.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, sslMode)
}

// SupabaseConfig подключение к Supabase (PostgREST + RPC)
type SupabaseConfig struct {
	URL        string `toml:"url"`
	ServiceKey string `toml:"service_key"`
	Timeout    int    `toml:"timeout"`
}

// AuthConfig проверка JWT сессии
type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret"`
	Issuer    string `toml:"issuer"`
}

// VenueConfig параметры площадки
type VenueConfig struct {
	Timezone string `toml:"timezone"`
}

// Location часовой пояс площадки
func (v VenueConfig) Location() (*time.Location, error) {
	tz := v.Timezone
	if tz == "" {
		tz = "America/Santiago"
	}
	return time.LoadLocation(tz)
}

// GateConfig сессии confirmation gate
type GateConfig struct {
	SessionTTL        int     `toml:"session_ttl"`        // секунды
	CleanupInterval   int     `toml:"cleanup_interval"`   // секунды
	PINAttemptsPerMin float64 `toml:"pin_attempts_per_min"`
	PINBurst          int     `toml:"pin_burst"`
}

// LogsConfig логирование
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// CORSConfig доступ браузерной консоли
type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// Load читает TOML файл и подмешивает секреты из окружения (.env опционален)
func Load(path string) (*Config, error) {
	// .env может отсутствовать
	_ = godotenv.Load()

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default значения по умолчанию
func Default() *Config {
	return &Config{
		Backend: BackendSupabase,
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Supabase: SupabaseConfig{Timeout: 10},
		Venue:    VenueConfig{Timezone: "America/Santiago"},
		Gate: GateConfig{
			SessionTTL:        900,
			CleanupInterval:   60,
			PINAttemptsPerMin: 5,
			PINBurst:          3,
		},
		Logs:    LogsConfig{Level: "info"},
		Metrics: MetricsConfig{Path: "/metrics", ServiceName: "venue-console"},
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvDBPassword); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv(EnvSupabaseServiceKey); v != "" {
		c.Supabase.ServiceKey = v
	}
	if v := os.Getenv(EnvSupabaseJWTSecret); v != "" {
		c.Auth.JWTSecret = v
	}
}

// Validate проверяет обязательные поля
func (c *Config) Validate() error {
	var problems []string

	switch c.Backend {
	case BackendPostgres:
		if c.Database.Host == "" {
			problems = append(problems, "database.host is required")
		}
		if c.Database.DBName == "" {
			problems = append(problems, "database.dbname is required")
		}
	case BackendSupabase:
		if c.Supabase.URL == "" {
			problems = append(problems, "supabase.url is required")
		}
		if c.Supabase.ServiceKey == "" {
			problems = append(problems, "supabase.service_key is required ("+EnvSupabaseServiceKey+")")
		}
	default:
		problems = append(problems, fmt.Sprintf("backend must be %q or %q", BackendPostgres, BackendSupabase))
	}

	if c.Auth.JWTSecret == "" {
		problems = append(problems, "auth.jwt_secret is required ("+EnvSupabaseJWTSecret+")")
	}
	if c.Server.HTTPPort <= 0 {
		problems = append(problems, "server.http_port must be positive")
	}
	if _, err := c.Venue.Location(); err != nil {
		problems = append(problems, fmt.Sprintf("venue.timezone: %v", err))
	}
	if c.Gate.SessionTTL <= 0 {
		problems = append(problems, "gate.session_ttl must be positive")
	}
	if c.Gate.PINAttemptsPerMin <= 0 || c.Gate.PINBurst <= 0 {
		problems = append(problems, "gate.pin_attempts_per_min and gate.pin_burst must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}
