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
	Server  ServerConfig
	Cart    CartConfig
	Storage StorageConfig
	Redis   RedisConfig
	Geo     GeoConfig
	CORS    CORSConfig
}

type ServerConfig struct {
	Port        string
	GinMode     string
	Environment string
}

type CartConfig struct {
	TaxRate        float64
	TipPercentages []int
	IdleTTL        time.Duration // carts untouched longer than this are cleared
}

type StorageConfig struct {
	Backend  string // "file" or "redis"
	FilePath string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type GeoConfig struct {
	ProviderURL string
	Timeout     time.Duration
	MaxFixAge   time.Duration // how long a cached coordinate fix stays acceptable
}

type CORSConfig struct {
	AllowedOrigins []string
}

func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Server: ServerConfig{
			Port:        getEnv("SERVER_PORT", "8080"),
			GinMode:     getEnv("GIN_MODE", "debug"),
			Environment: getEnv("ENVIRONMENT", "development"),
		},
		Cart: CartConfig{
			TaxRate:        parseFloat(getEnv("CART_TAX_RATE", "0.0875"), 0.0875),
			TipPercentages: parseIntSlice(getEnv("CART_TIP_PERCENTAGES", "15,18,20,25")),
			IdleTTL:        parseDuration(getEnv("CART_IDLE_TTL", "24h"), 24*time.Hour),
		},
		Storage: StorageConfig{
			Backend:  getEnv("STORAGE_BACKEND", "file"),
			FilePath: getEnv("STORAGE_FILE_PATH", "./data/storage.json"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       parseInt(getEnv("REDIS_DB", "0"), 0),
		},
		Geo: GeoConfig{
			ProviderURL: getEnv("GEO_PROVIDER_URL", "http://ip-api.com/json"),
			Timeout:     parseDuration(getEnv("GEO_TIMEOUT", "10s"), 10*time.Second),
			MaxFixAge:   parseDuration(getEnv("GEO_MAX_FIX_AGE", "5m"), 5*time.Minute),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseSlice(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(s)
	if err != nil {
		log.Printf("Invalid duration %s, using default %s", s, fallback)
		return fallback
	}
	return duration
}

func parseFloat(s string, fallback float64) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Printf("Invalid number %s, using default %v", s, fallback)
		return fallback
	}
	return f
}

func parseInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}

func parseSlice(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func parseIntSlice(s string) []int {
	var result []int
	for _, p := range parseSlice(s) {
		if n, err := strconv.Atoi(p); err == nil {
			result = append(result, n)
		}
	}
	return result
}
