package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	GinMode   string
	HTTPAddr  string
	TZ        string
	DBHost    string
	DBPort    string
	DBUser    string
	DBPass    string
	DBName    string
	DBSSLMode string

	CORSAllowOrigin string

	// Object storage for cover-image uploads. Endpoint and public
	// domain are required; startup aborts without them.
	StorageEndpoint     string
	StoragePublicDomain string
	StorageBucket       string
	StorageAccessKey    string
	StorageSecretKey    string
}

func Load() *Config {
	if getenv("GIN_MODE", "debug") == "debug" {
		if err := godotenv.Load(); err != nil {
			log.Printf("no .env file loaded: %v", err)
		}
	}

	cfg := &Config{
		GinMode:   getenv("GIN_MODE", "debug"),
		HTTPAddr:  getenv("HTTP_ADDR", ":8080"),
		TZ:        getenv("TZ", "UTC"),
		DBHost:    getenv("DB_HOST", "localhost"),
		DBPort:    getenv("DB_PORT", "5432"),
		DBUser:    getenv("DB_USER", "postgres"),
		DBPass:    getenv("DB_PASS", ""),
		DBName:    getenv("DB_NAME", "postgres"),
		DBSSLMode: os.Getenv("DB_SSLMODE"),

		CORSAllowOrigin: getenv("CORS_ALLOW_ORIGIN", "*"),

		StorageEndpoint:     os.Getenv("STORAGE_ENDPOINT"),
		StoragePublicDomain: os.Getenv("STORAGE_PUBLIC_DOMAIN"),
		StorageBucket:       getenv("STORAGE_BUCKET", "covers"),
		StorageAccessKey:    os.Getenv("STORAGE_ACCESS_KEY_ID"),
		StorageSecretKey:    os.Getenv("STORAGE_SECRET_ACCESS_KEY"),
	}

	if cfg.DBSSLMode == "" {
		if cfg.GinMode == "release" {
			cfg.DBSSLMode = "require"
		} else {
			cfg.DBSSLMode = "disable"
		}
	}

	if cfg.StorageEndpoint == "" || cfg.StoragePublicDomain == "" {
		log.Fatal("missing object storage configuration: STORAGE_ENDPOINT and STORAGE_PUBLIC_DOMAIN are required")
	}

	return cfg
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.DBHost,
		c.DBUser,
		c.DBPass,
		c.DBName,
		c.DBPort,
		c.DBSSLMode,
		c.TZ,
	)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
