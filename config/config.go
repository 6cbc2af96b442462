package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string // postgres DSN; empty selects the sqlite fallback
	SQLitePath  string
	Port        string
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}
	return &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		SQLitePath:  getenvOrDefault("SQLITE_PATH", "/tmp/starwars.db"),
		Port:        getenvOrDefault("PORT", "3000"),
	}
}

// getenvOrDefault returns the environment variable value if set, otherwise returns def
func getenvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
