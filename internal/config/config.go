// internal/config/config.go
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"tripplanner-api/internal/constants"

	"github.com/joho/godotenv"
)

type Config struct {
	Database   DatabaseConfig
	Redis      RedisConfig
	Server     ServerConfig
	JWT        JWTConfig
	Cookie     CookieConfig
	Kakao      KakaoConfig
	Log        LogConfig
	RateLimit  RateLimitConfig
	AppBaseURL string
	Env        string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type RedisConfig struct {
	URL string
}

type ServerConfig struct {
	Port string
}

type JWTConfig struct {
	Secret          string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

// CookieConfig controls the lifetime of the auth cookies. It is kept apart
// from the token TTLs because browsers and Redis expire independently.
type CookieConfig struct {
	AccessMaxAge  time.Duration
	RefreshMaxAge time.Duration
	Secure        bool
}

type KakaoConfig struct {
	RestAPIKey string
	BaseURL    string
	Timeout    time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

// RateLimitConfig holds per-minute limits; zero disables a limiter.
type RateLimitConfig struct {
	AuthPerMinute  int
	SharePerMinute int
}

func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	env := getEnv("ENVIRONMENT", "development")

	config := &Config{
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "3306"),
			User:     getEnv("DB_USER", "root"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "tripplanner"),
		},
		Redis: RedisConfig{
			URL: getEnv("REDIS_URL", "redis://localhost:6379/0"),
		},
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
		},
		JWT: JWTConfig{
			Secret:          getEnv("JWT_SECRET", "your-default-secret-key"),
			AccessTokenTTL:  getEnvDuration("ACCESS_TOKEN_TTL", 24*time.Hour),
			RefreshTokenTTL: getEnvDuration("REFRESH_TOKEN_TTL", 7*24*time.Hour),
		},
		Cookie: CookieConfig{
			AccessMaxAge:  getEnvDuration("ACCESS_COOKIE_MAX_AGE", 24*time.Hour),
			RefreshMaxAge: getEnvDuration("REFRESH_COOKIE_MAX_AGE", 7*24*time.Hour),
			Secure:        env == "production",
		},
		Kakao: KakaoConfig{
			RestAPIKey: getEnv("KAKAO_REST_API_KEY", ""),
			BaseURL:    getEnv("KAKAO_BASE_URL", "https://dapi.kakao.com"),
			Timeout:    getEnvDuration("KAKAO_TIMEOUT", 10*time.Second),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", defaultLogFormat(env)),
		},
		RateLimit: RateLimitConfig{
			AuthPerMinute:  getEnvInt("AUTH_RATE_LIMIT", constants.GlobalAuthLimit),
			SharePerMinute: getEnvInt("SHARE_RATE_LIMIT", constants.SharedTripLimit),
		},
		AppBaseURL: getEnv("APP_BASE_URL", "http://localhost:3000"),
		Env:        env,
	}

	return config, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func defaultLogFormat(env string) string {
	if env == "production" {
		return "json"
	}
	return "console"
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}
