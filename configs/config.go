// configs/config.go
package configs

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Compute  ComputeConfig
	Database DatabaseConfig
	MQTT     MQTTConfig
	Auth     AuthConfig
}

type AppConfig struct {
	Port        string // HTTP_PORT
	GRPCPort    string // GRPC_PORT
	GinMode     string
	LogLevel    string
	Env         string
	CORSOrigins []string
}

// ComputeConfig описывает внешний сервис расчёта передаточных функций
type ComputeConfig struct {
	URL     string        // полный адрес /api/compute
	Timeout time.Duration // 0 - без таймаута
}

type DatabaseConfig struct {
	Enabled  bool
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	TimeZone string
}

type MQTTConfig struct {
	Broker      string // пусто - публикация выключена
	ClientID    string
	Username    string
	Password    string
	QoS         int
	TopicPrefix string
}

type AuthConfig struct {
	JWTSecret string
}

// LoadConfig загружает конфигурацию из окружения (и .env файла, если он есть)
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("Failed to read .env file", "error", err)
	}

	return &Config{
		App: AppConfig{
			Port:        getEnv("HTTP_PORT", "8080"),
			GRPCPort:    getEnv("GRPC_PORT", "50051"),
			GinMode:     getEnv("GIN_MODE", "release"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Env:         getEnv("ENV", "development"),
			CORSOrigins: getEnvAsList("CORS_ORIGINS", []string{"http://localhost:3000", "http://localhost:80"}),
		},
		Compute: ComputeConfig{
			URL:     getEnv("COMPUTE_API_URL", "https://control-system-mtxi.onrender.com/api/compute"),
			Timeout: time.Duration(getEnvAsInt("COMPUTE_TIMEOUT_SEC", 0)) * time.Second,
		},
		Database: DatabaseConfig{
			Enabled:  getEnvAsBool("DB_ENABLED", false),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "control_user"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "control_system"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			TimeZone: getEnv("DB_TIMEZONE", "UTC"),
		},
		MQTT: MQTTConfig{
			Broker:      getEnv("MQTT_BROKER", ""),
			ClientID:    getEnv("MQTT_CLIENT_ID", "control_system_service"),
			Username:    getEnv("MQTT_USERNAME", ""),
			Password:    getEnv("MQTT_PASSWORD", ""),
			QoS:         getEnvAsInt("MQTT_QOS", 1),
			TopicPrefix: getEnv("MQTT_TOPIC_PREFIX", "control/compute"),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
		},
	}
}

// getEnv получает переменную окружения или возвращает значение по умолчанию
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt получает переменную окружения как int
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsList разбирает список через запятую
func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
