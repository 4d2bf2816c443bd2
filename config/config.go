package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Storage  StorageConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Seed     SeedConfig
	CORS     CORSConfig
	S3       S3Config
	Leads    LeadsConfig
}

type ServerConfig struct {
	Port        string
	GinMode     string
	Environment string
}

// StorageConfig selects the storage backend.
// "memory" keeps everything in process; "postgres" uses Database.
type StorageConfig struct {
	Driver string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// RedisConfig configures the optional catalog cache. Host empty disables it.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	CacheTTL time.Duration
}

// SeedConfig points the seed loader at the external product and project
// documents. A location is a local path or an s3://bucket/key URI.
type SeedConfig struct {
	ProductsLocation string
	ProjectsLocation string
	DemoUsername     string
	DemoEmail        string
	DemoPassword     string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type S3Config struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
}

// LeadsConfig drives the scheduled lead export. An empty ExportLocation
// disables it.
type LeadsConfig struct {
	ExportLocation string
	ExportSchedule string
}

const (
	StorageDriverMemory   = "memory"
	StorageDriverPostgres = "postgres"
)

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
		Storage: StorageConfig{
			Driver: strings.ToLower(getEnv("STORAGE_DRIVER", StorageDriverMemory)),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "featherwood"),
			Password: getEnv("DB_PASSWORD", "featherwood"),
			DBName:   getEnv("DB_NAME", "featherwood"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", ""),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       parseInt(getEnv("REDIS_DB", "0"), 0),
			CacheTTL: parseDuration(getEnv("CATALOG_CACHE_TTL", "5m"), 5*time.Minute),
		},
		Seed: SeedConfig{
			ProductsLocation: getEnv("SEED_PRODUCTS", "data/furnitureProducts.json"),
			ProjectsLocation: getEnv("SEED_PROJECTS", "data/interiorProjects.json"),
			DemoUsername:     getEnv("DEMO_USERNAME", "demo"),
			DemoEmail:        getEnv("DEMO_EMAIL", "demo@featherwood.in"),
			DemoPassword:     getEnv("DEMO_PASSWORD", "featherwood-demo"),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseSlice(getEnv("ALLOWED_ORIGINS", "http://localhost:5173")),
		},
		S3: S3Config{
			Region:          getEnv("AWS_REGION", "ap-south-1"),
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		},
		Leads: LeadsConfig{
			ExportLocation: getEnv("LEADS_EXPORT_LOCATION", ""),
			ExportSchedule: getEnv("LEADS_EXPORT_SCHEDULE", "0 9 * * *"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate rejects configurations the server cannot start with.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case StorageDriverMemory, StorageDriverPostgres:
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER %q", c.Storage.Driver)
	}
	return nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// Enabled reports whether a Redis host was configured.
func (c *RedisConfig) Enabled() bool {
	return c.Host != ""
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

func parseInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Printf("Invalid integer %s, using default %d", s, fallback)
		return fallback
	}
	return n
}

func parseSlice(s string) []string {
	if s == "" {
		return []string{}
	}
	var result []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}
