package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix префикс переменных окружения, переопределяющих значения из файла.
// Ключ собирается из имён полей: ARENA_SERVER_HTTPPORT, ARENA_ADMIN_TOKEN, ARENA_BOOKINGFEED_URL
const EnvPrefix = "ARENA"

var (
	// ErrReadConfig ошибка чтения файла конфигурации
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrEnvOverride ошибка применения переменных окружения
	ErrEnvOverride = errors.New("config: failed to apply environment overrides")

	// ErrInvalidConfig конфигурация не прошла валидацию
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server      ServerConfig      `toml:"server"`
	Database    DatabaseConfig    `toml:"database"`
	Redis       RedisConfig       `toml:"redis"`
	Logs        LogsConfig        `toml:"logs"`
	Metrics     MetricsConfig     `toml:"metrics"`
	Booking     BookingConfig     `toml:"booking"`
	Conflicts   ConflictsConfig   `toml:"conflicts"`
	Admin       AdminConfig       `toml:"admin"`
	RateLimit   RateLimitConfig   `toml:"rate_limit"`
	CORS        CORSConfig        `toml:"cors"`
	BookingFeed BookingFeedConfig `toml:"booking_feed"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к Postgres
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
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// RedisConfig настройки Redis (кэш лидерборда). Пустой Addr отключает кэш
type RedisConfig struct {
	Addr      string `toml:"addr"`
	Password  string `toml:"password"`
	DB        int    `toml:"db"`
	KeyPrefix string `toml:"key_prefix"`
}

// Enabled включен ли кэш
func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BookingConfig настройки бронирования и каталога слотов
type BookingConfig struct {
	Timezone     string  `toml:"timezone"`
	DefaultPrice float64 `toml:"default_price"`
	DefaultVenue string  `toml:"default_venue"`
	FirstSlot    string  `toml:"first_slot"`
	LastSlot     string  `toml:"last_slot"`
	StepMinutes  int     `toml:"step_minutes"`
	PublicURL    string  `toml:"public_url"` // база ссылки в QR-коде бронирования
}

// Location часовой пояс, в котором сравниваются дата и время бронирования
func (c BookingConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// ConflictsConfig настройки поиска конфликтов
type ConflictsConfig struct {
	BufferMinutes       int `toml:"buffer_minutes"`
	ScanIntervalSeconds int `toml:"scan_interval_seconds"`
}

// ScanInterval период фонового сканирования, 0 отключает воркер
func (c ConflictsConfig) ScanInterval() time.Duration {
	return time.Duration(c.ScanIntervalSeconds) * time.Second
}

// AdminConfig доступ к административным маршрутам
type AdminConfig struct {
	Token string `toml:"token"`
}

// RateLimitConfig ограничение частоты создания бронирований на клиента
type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
}

// CORSConfig настройки CORS
type CORSConfig struct {
	AllowedOrigins   []string `toml:"allowed_origins"`
	AllowedMethods   []string `toml:"allowed_methods"`
	AllowedHeaders   []string `toml:"allowed_headers"`
	AllowCredentials bool     `toml:"allow_credentials"`
	MaxAge           int      `toml:"max_age"`
}

// BookingFeedConfig внешняя лента бронирований. Пустой URL отключает публикацию
type BookingFeedConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// Default конфигурация по умолчанию, поверх которой применяется файл
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "arena",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Redis: RedisConfig{
			KeyPrefix: "arena",
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "arena-booking",
		},
		Booking: BookingConfig{
			DefaultPrice: 100,
			DefaultVenue: "Main Field",
			FirstSlot:    "06:00",
			LastSlot:     "23:00",
			StepMinutes:  60,
		},
		Conflicts: ConflictsConfig{
			BufferMinutes:       60,
			ScanIntervalSeconds: 0,
		},
		RateLimit: RateLimitConfig{
			Enabled:           true,
			RequestsPerSecond: 1,
			Burst:             5,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type", "X-User-ID", "X-Admin-Token"},
			MaxAge:         600,
		},
		BookingFeed: BookingFeedConfig{
			Timeout: 5,
		},
	}
}

// Load читает конфигурацию из TOML файла и применяет переменные окружения ARENA_*.
// Отсутствующий файл не ошибка: используются значения по умолчанию
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEnvOverride, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет согласованность значений
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database.host and database.dbname are required", ErrInvalidConfig)
	}
	if _, err := c.Booking.Location(); err != nil {
		return fmt.Errorf("%w: booking.timezone: %v", ErrInvalidConfig, err)
	}
	if c.Booking.DefaultPrice < 0 {
		return fmt.Errorf("%w: booking.default_price must not be negative", ErrInvalidConfig)
	}
	if c.Booking.StepMinutes <= 0 {
		return fmt.Errorf("%w: booking.step_minutes must be positive", ErrInvalidConfig)
	}
	if c.Conflicts.BufferMinutes <= 0 {
		return fmt.Errorf("%w: conflicts.buffer_minutes must be positive", ErrInvalidConfig)
	}
	if c.Conflicts.ScanIntervalSeconds < 0 {
		return fmt.Errorf("%w: conflicts.scan_interval_seconds must not be negative", ErrInvalidConfig)
	}
	if c.Admin.Token == "" {
		return fmt.Errorf("%w: admin.token is required", ErrInvalidConfig)
	}
	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("%w: rate_limit.requests_per_second and rate_limit.burst must be positive", ErrInvalidConfig)
	}
	return nil
}
