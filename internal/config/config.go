package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config содержит конфигурацию сервера
type Config struct {
	Server ServerConfig
	DB     DBConfig
	JWT    JWTConfig
	Log    LogConfig
}

type ServerConfig struct {
	Host string
	Port string
}

type DBConfig struct {
	// Path путь к файлу SQLite (":memory:" для тестов)
	Path string
}

type JWTConfig struct {
	Secret         string
	AccessTokenTTL time.Duration
}

type LogConfig struct {
	Level string
}

// Load читает конфигурацию из окружения; .env подхватывается если есть
func Load() (*Config, error) {
	_ = godotenv.Load()

	accessTTL, err := time.ParseDuration(getEnv("JWT_ACCESS_TTL", "15m"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_TTL: %w", err)
	}

	secret := getEnv("JWT_SECRET", "")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return &Config{
		Server: ServerConfig{
			Host: getEnv("HOST", "0.0.0.0"),
			Port: getEnv("PORT", "8080"),
		},
		DB: DBConfig{
			Path: getEnv("DB_PATH", "flightbase.db"),
		},
		JWT: JWTConfig{
			Secret:         secret,
			AccessTokenTTL: accessTTL,
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

// Addr возвращает адрес для http.Server
func (c *Config) Addr() string {
	return c.Server.Host + ":" + c.Server.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
