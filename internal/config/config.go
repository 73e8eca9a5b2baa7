package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig            `toml:"server"`
	Logs     LogsConfig              `toml:"logs"`
	Metrics  MetricsConfig           `toml:"metrics"`
	CORS     CORSConfig              `toml:"cors"`
	Catalog  CatalogConfig           `toml:"catalog"`
	Policies map[string]PolicyConfig `toml:"policies"`
	Seed     SeedConfig              `toml:"seed"`
}

// ServerConfig настройки HTTP-сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"` // пустая строка = stdout
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// CORSConfig настройки CORS для браузерного фронтенда
type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// CatalogConfig параметры генерации каталога слотов
type CatalogConfig struct {
	OpenTime    string `toml:"open_time"`
	CloseTime   string `toml:"close_time"`
	SlotMinutes int    `toml:"slot_minutes"`
}

// PolicyConfig лимиты одного тарифа (0 = без ограничений)
type PolicyConfig struct {
	MaxRooms int  `toml:"max_rooms"`
	MaxHours int  `toml:"max_hours"`
	Free     bool `toml:"free"`
}

// SeedConfig управление демо-данными
type SeedConfig struct {
	Enabled bool `toml:"enabled"`
}

// Load читает и валидирует конфигурацию из TOML-файла
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// BuildCatalog строит доменный каталог слотов из конфигурации
func (c *Config) BuildCatalog() (domain.SlotCatalog, error) {
	return domain.BuildCatalog(c.Catalog.OpenTime, c.Catalog.CloseTime, c.Catalog.SlotMinutes)
}

// BuildPolicies строит таблицу тарифов из конфигурации.
// Отсутствующие в файле тарифы дополняются встроенными значениями.
func (c *Config) BuildPolicies() domain.PolicyTable {
	table := domain.DefaultPolicies()
	for name, policy := range c.Policies {
		tier := domain.NormalizeTier(domain.Tier(name))
		table[tier] = domain.RolePolicy{
			Tier:     tier,
			MaxRooms: policy.MaxRooms,
			MaxHours: policy.MaxHours,
			Free:     policy.Free,
		}
	}
	return table
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     false,
			ServiceName: "room-booking-service",
			Path:        "/metrics",
		},
		Catalog: CatalogConfig{
			OpenTime:    domain.DefaultOpenTime,
			CloseTime:   domain.DefaultCloseTime,
			SlotMinutes: domain.DefaultSlotMinutes,
		},
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("server.http_port must be in (0, 65535], got %d", c.Server.HTTPPort)
	}
	if c.Catalog.SlotMinutes <= 0 {
		return fmt.Errorf("catalog.slot_minutes must be positive, got %d", c.Catalog.SlotMinutes)
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("metrics.path is required when metrics are enabled")
	}

	// Каталог должен собираться уже на старте, а не при первом запросе
	if _, err := c.BuildCatalog(); err != nil {
		return fmt.Errorf("catalog: %w", err)
	}

	for name, policy := range c.Policies {
		if policy.MaxRooms < 0 || policy.MaxHours < 0 {
			return fmt.Errorf("policies.%s: caps must be non-negative", name)
		}
	}

	return nil
}
