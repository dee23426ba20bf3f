package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/opsdesk/OPS-ResourceService/internal/domain"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Booking  BookingConfig  `toml:"booking"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
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

// DSN собирает строку подключения для lib/pq
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BookingConfig политика бронирования.
// Значения передаются в операции явно, общего мутабельного состояния нет.
type BookingConfig struct {
	MinRoomDurationMinutes    int    `toml:"min_room_duration_minutes"`
	MinVehicleDurationMinutes int    `toml:"min_vehicle_duration_minutes"`
	Timezone                  string `toml:"timezone"`
	UpcomingWindowHours       int    `toml:"upcoming_window_hours"`
}

// MinDurationFor возвращает минимальную длительность бронирования для типа ресурса
func (b *BookingConfig) MinDurationFor(kind domain.ResourceKind) time.Duration {
	switch kind {
	case domain.KindVehicle:
		return time.Duration(b.MinVehicleDurationMinutes) * time.Minute
	default:
		return time.Duration(b.MinRoomDurationMinutes) * time.Minute
	}
}

// Location возвращает таймзону для свертки выручки по периодам
func (b *BookingConfig) Location() (*time.Location, error) {
	if b.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(b.Timezone)
}

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 25
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Logs.Level == "" {
		cfg.Logs.Level = "info"
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "resource-service"
	}
	if cfg.Booking.MinRoomDurationMinutes == 0 {
		cfg.Booking.MinRoomDurationMinutes = domain.DefaultMinRoomBookingMinutes
	}
	if cfg.Booking.MinVehicleDurationMinutes == 0 {
		cfg.Booking.MinVehicleDurationMinutes = domain.DefaultMinVehicleBookingMinutes
	}
	if cfg.Booking.UpcomingWindowHours == 0 {
		cfg.Booking.UpcomingWindowHours = domain.DefaultUpcomingWindowHours
	}
}

func validate(cfg *Config) error {
	if cfg.Database.Host == "" {
		return fmt.Errorf("config: database.host is required")
	}
	if cfg.Database.DBName == "" {
		return fmt.Errorf("config: database.dbname is required")
	}
	if cfg.Booking.MinRoomDurationMinutes < 0 || cfg.Booking.MinVehicleDurationMinutes < 0 {
		return fmt.Errorf("config: booking minimum durations must be non-negative")
	}
	if cfg.Booking.UpcomingWindowHours > domain.MaxUpcomingWindowHours {
		return fmt.Errorf("config: booking.upcoming_window_hours must not exceed %d", domain.MaxUpcomingWindowHours)
	}
	if _, err := cfg.Booking.Location(); err != nil {
		return fmt.Errorf("config: invalid booking.timezone: %w", err)
	}
	return nil
}
