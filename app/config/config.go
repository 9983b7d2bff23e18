package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Config holds application configuration loaded from environment variables.
// Defaults suit local development.
type Config struct {
	AppName string
	Env     string // development, production
	Version string

	HTTPAddr        string
	ShutdownTimeout time.Duration

	DBPath     string
	DBInMemory bool
	BackupDir  string

	// Timezone names the location human readable dates are rendered in.
	Timezone string
	LogLevel string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %v, using default %v", key, err, def)
			return def
		}
		return b
	}
	return def
}

func getdur(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid duration for %s: %v, using default %v", key, err, def)
			return def
		}
		return d
	}
	return def
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		AppName: getenv("APP_NAME", "quillpress"),
		Env:     getenv("APP_ENV", "development"),

		HTTPAddr:        getenv("HTTP_ADDR", ":3000"),
		ShutdownTimeout: getdur("SHUTDOWN_TIMEOUT", 10*time.Second),

		DBPath:     getenv("DB_PATH", "data/badger"),
		DBInMemory: getbool("DB_IN_MEMORY", false),
		BackupDir:  getenv("BACKUP_DIR", "data/backups"),

		Timezone: getenv("TIMEZONE", "Local"),
		LogLevel: getenv("LOG_LEVEL", ""),
	}
}

// Location resolves Timezone, falling back to the local zone when the name
// is unknown.
func (c *Config) Location() *time.Location {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Printf("invalid timezone %q: %v, using local time", c.Timezone, err)
		return time.Local
	}
	return loc
}

// IsDevelopment reports whether the app runs in the development environment.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
