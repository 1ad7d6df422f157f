package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	SMTP     SMTPConfig
	Osu      OsuConfig
	Auth     AuthConfig
	Pool     PoolConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

type OsuConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	BaseURL      string
}

type AuthConfig struct {
	JWTSecret   string
	TokenTTL    time.Duration
	AdminOsuIds []int64
}

type PoolConfig struct {
	Dir                string // pick-list CSVs
	CacheDir           string // file backend artifacts
	CacheBackend       string // "file", "redis", "postgres" or "memory"
	ResolveTimeout     time.Duration
	ResolveConcurrency int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "6969"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:6969"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173,https://ocbs.rrex.cc"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "OCBS"),
		},
		Osu: OsuConfig{
			ClientID:     getEnv("OSU_CLIENT_ID", ""),
			ClientSecret: getEnv("OSU_CLIENT_SECRET", ""),
			RedirectURI:  getEnv("OSU_REDIRECT_URI", "http://localhost:5173/login"),
			BaseURL:      getEnv("OSU_API_BASE_URL", "https://osu.ppy.sh"),
		},
		Auth: AuthConfig{
			JWTSecret:   getEnv("JWT_SECRET", ""),
			TokenTTL:    getEnvAsDuration("JWT_TTL", 24*time.Hour),
			AdminOsuIds: getEnvAsInt64List("ADMIN_OSU_IDS"),
		},
		Pool: PoolConfig{
			Dir:                getEnv("POOL_DIR", "pools"),
			CacheDir:           getEnv("POOL_CACHE_DIR", "pools/cache"),
			CacheBackend:       getEnv("POOL_CACHE_BACKEND", "file"),
			ResolveTimeout:     getEnvAsDuration("POOL_RESOLVE_TIMEOUT", 10*time.Second),
			ResolveConcurrency: getEnvAsInt("POOL_RESOLVE_CONCURRENCY", 4),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsInt64List(key string) []int64 {
	var out []int64
	for _, part := range strings.Split(getEnv(key, ""), ",") {
		if v, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64); err == nil {
			out = append(out, v)
		}
	}
	return out
}
