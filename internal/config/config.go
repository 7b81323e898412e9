package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	defaultUserIDFileName = ".shortener.uuid"
	envDevelopment        = "development"
)

// Config содержит настройки приложения
type Config struct {
	Env              string         `env:"ENV"`
	ServerAddress    NetworkAddress `env:"SERVER_ADDRESS"`
	BaseURL          URLPrefix      `env:"BASE_URL"`
	DefaultTTL       time.Duration  `env:"DEFAULT_TTL"`
	DefaultMaxClicks int            `env:"DEFAULT_MAX_CLICKS"`
	UserIDFile       string         `env:"USER_ID_FILE"`
	ShutdownTimeout  time.Duration  `env:"SHUTDOWN_TIMEOUT"`
	Sweep            SweepConfig    `envPrefix:"SWEEP_"`
}

// SweepConfig настройки фоновой очистки просроченных ссылок
type SweepConfig struct {
	InitialDelay time.Duration `env:"INITIAL_DELAY"`
	Period       time.Duration `env:"PERIOD"`
}

// NewDefaultConfig возвращает конфигурацию со значениями по умолчанию
func NewDefaultConfig() *Config {
	return &Config{
		Env:              "production",
		ServerAddress:    NetworkAddress{Host: "localhost", Port: 8080},
		BaseURL:          URLPrefix("http://localhost:8080/u/"),
		DefaultTTL:       24 * time.Hour,
		DefaultMaxClicks: 0,
		UserIDFile:       defaultUserIDFile(),
		ShutdownTimeout:  5 * time.Second,
		Sweep: SweepConfig{
			InitialDelay: time.Minute,
			Period:       30 * time.Minute,
		},
	}
}

// IsDevelopment сообщает, запущено ли приложение в режиме разработки
func (c *Config) IsDevelopment() bool {
	return c.Env == envDevelopment
}

// Load читает конфигурацию из .env, флагов командной строки и переменных окружения.
// Переменные окружения имеют приоритет над флагами.
func Load() (*Config, error) {
	// .env необязателен
	_ = godotenv.Load()

	return LoadFrom(os.Args[1:])
}

// LoadFrom разбирает переданные аргументы, затем применяет переменные окружения
func LoadFrom(args []string) (*Config, error) {
	cfg := NewDefaultConfig()

	fs := flag.NewFlagSet("shortener", flag.ContinueOnError)
	fs.Var(&cfg.ServerAddress, "a", "address to run HTTP redirect server")
	fs.Var(&cfg.BaseURL, "b", "base URL for shortened links")
	fs.DurationVar(&cfg.DefaultTTL, "ttl", cfg.DefaultTTL, "default link time-to-live")
	fs.IntVar(&cfg.DefaultMaxClicks, "limit", cfg.DefaultMaxClicks, "default click limit, 0 means unlimited")
	fs.StringVar(&cfg.UserIDFile, "u", cfg.UserIDFile, "file with persisted user identifier")
	fs.StringVar(&cfg.Env, "env", cfg.Env, "environment: production or development")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	var errs []error

	if c.DefaultTTL <= 0 {
		errs = append(errs, fmt.Errorf("default TTL must be positive, got %s", c.DefaultTTL))
	}
	if c.DefaultMaxClicks < 0 {
		errs = append(errs, fmt.Errorf("default click limit must not be negative, got %d", c.DefaultMaxClicks))
	}
	if c.Sweep.Period <= 0 {
		errs = append(errs, fmt.Errorf("sweep period must be positive, got %s", c.Sweep.Period))
	}
	if c.Sweep.InitialDelay < 0 {
		errs = append(errs, fmt.Errorf("sweep initial delay must not be negative, got %s", c.Sweep.InitialDelay))
	}
	if c.UserIDFile == "" {
		errs = append(errs, errors.New("user ID file path is required"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}

	return nil
}

func defaultUserIDFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return defaultUserIDFileName
	}

	return filepath.Join(home, defaultUserIDFileName)
}
