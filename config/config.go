package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"frontdesk/constants"
	"frontdesk/models"

	"github.com/joho/godotenv"
)

// Store drivers
const (
	StoreFile     = "file"
	StoreRedis    = "redis"
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
)

// AppConfig is every setting the service reads from the environment.
type AppConfig struct {
	Port        string
	Env         string
	GinMode     string
	StoreDriver string
	StoreDir    string
	SQLitePath  string
	DB          DBConfig
	Redis       RedisConfig
	StaffSecret string
	VatRate     float64
	LogLevel    string
	Business    models.InvoiceDetails
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	TimeZone string
}

type RedisConfig struct {
	Addr     string
	User     string
	Password string
	DB       int
}

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: no .env file loaded, using the process environment: %v", err)
	}
}

// GetEnv returns the variable or def when it is unset or blank.
func GetEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v, err := strconv.Atoi(GetEnv(key, ""))
	if err != nil {
		return def
	}
	return v
}

func getEnvFloat(key string, def float64) float64 {
	v, err := strconv.ParseFloat(GetEnv(key, ""), 64)
	if err != nil || v <= 0 {
		return def
	}
	return v
}

// Load reads AppConfig from the environment, applying defaults.
func Load() AppConfig {
	cfg := AppConfig{
		Port:        GetEnv("PORT", "8083"),
		Env:         GetEnv("ENV", "dev"),
		GinMode:     GetEnv("GIN_MODE", ""),
		StoreDriver: strings.ToLower(GetEnv("STORE_DRIVER", StoreFile)),
		StoreDir:    GetEnv("STORE_DIR", "data"),
		SQLitePath:  GetEnv("SQLITE_PATH", "frontdesk.db"),
		DB: DBConfig{
			Host:     GetEnv("DB_HOST", "localhost"),
			Port:     GetEnv("DB_PORT", "5432"),
			User:     GetEnv("DB_USER", "postgres"),
			Password: GetEnv("DB_PASSWORD", ""),
			Name:     GetEnv("DB_NAME", "frontdesk"),
			SSLMode:  GetEnv("DB_SSLMODE", "disable"),
			TimeZone: GetEnv("DB_TIMEZONE", "Asia/Jerusalem"),
		},
		Redis: RedisConfig{
			Addr:     GetEnv("REDIS_ADDR", ""),
			User:     GetEnv("REDIS_USER", ""),
			Password: GetEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		StaffSecret: GetEnv("STAFF_JWT_SECRET", ""),
		VatRate:     getEnvFloat("VAT_RATE", constants.DefaultVatRate),
		LogLevel:    GetEnv("LOG_LEVEL", "info"),
		Business: models.InvoiceDetails{
			BusinessName:    GetEnv("BUSINESS_NAME", "Airport Guest House"),
			BusinessID:      GetEnv("BUSINESS_ID", ""),
			BusinessAddress: GetEnv("BUSINESS_ADDRESS", ""),
		},
	}
	if cfg.StoreDriver == StoreRedis && cfg.Redis.Addr == "" {
		cfg.Redis.Addr = "localhost:6379"
	}
	return cfg
}

// UsesRedis reports whether the redis client is needed, for storage or the report cache.
func (c AppConfig) UsesRedis() bool {
	return c.StoreDriver == StoreRedis || c.Redis.Addr != ""
}
