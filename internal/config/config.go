package config

import (
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Database DatabaseConfig
	HTTP     HTTPConfig
	Log      LogConfig
}

type DatabaseConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost" validate:"required"`
	Port     string `envconfig:"DB_PORT" default:"5432" validate:"required,numeric"`
	User     string `envconfig:"DB_USER" default:"users" validate:"required"`
	Password string `envconfig:"DB_PASSWORD" default:"users"`
	DBName   string `envconfig:"DB_NAME" default:"users" validate:"required"`
	SSLMode  string `envconfig:"DB_SSLMODE" default:"disable" validate:"oneof=disable allow prefer require verify-ca verify-full"`
}

type HTTPConfig struct {
	Addr            string        `envconfig:"HTTP_ADDR" default:":8080" validate:"required"`
	ReadTimeout     time.Duration `envconfig:"HTTP_READ_TIMEOUT" default:"15s" validate:"gt=0"`
	WriteTimeout    time.Duration `envconfig:"HTTP_WRITE_TIMEOUT" default:"15s" validate:"gt=0"`
	ShutdownTimeout time.Duration `envconfig:"HTTP_SHUTDOWN_TIMEOUT" default:"5s" validate:"gt=0"`
	// RateLimit - запросов в минуту с одного IP, 0 отключает ограничение
	RateLimit int `envconfig:"HTTP_RATE_LIMIT" default:"100" validate:"gte=0"`
}

type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=trace debug info warn error"`
	Format string `envconfig:"LOG_FORMAT" default:"console" validate:"oneof=console json"`
}

// DSN собирает postgres:// URL; net/url экранирует пароль и имя БД с пробелами и кавычками
func (c DatabaseConfig) DSN() string {
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": []string{c.SSLMode}}.Encode(),
	}
	return dsn.String()
}

// Load читает переменные окружения и .env файлы.
// Без аргументов берется .env из текущей директории, и его отсутствие не ошибка.
// Явно переданные файлы обязательны.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		_ = godotenv.Load()
	}
	for _, path := range envFiles {
		if err := godotenv.Load(path); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", path, err)
		}
	}

	// Секции обрабатываются по отдельности, иначе envconfig добавит к ключам префикс DATABASE_, HTTP_ и т.д.
	var cfg Config
	for _, section := range []any{&cfg.Database, &cfg.HTTP, &cfg.Log} {
		if err := envconfig.Process("", section); err != nil {
			return nil, fmt.Errorf("failed to process env: %w", err)
		}
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func MustLoad(envFiles ...string) *Config {
	cfg, err := Load(envFiles...)
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}
