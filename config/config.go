package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	InputPath  string
	ReportPath string
	TargetCity string
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		InputPath:  getEnv("INPUT_PATH", "realestates.txt"),
		ReportPath: getEnv("REPORT_PATH", "outputRealEstate.txt"),
		TargetCity: getEnv("TARGET_CITY", "Budapest"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
