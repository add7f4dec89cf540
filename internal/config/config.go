package config

import (
	"os"

	"github.com/joho/godotenv"
)

const DefaultDataFile = "student_gpa_data.csv"

type Config struct {
	DataFile string
	LogLevel string
	Debug    bool
	JSONLogs bool
	Port     string
	GinMode  string
}

// Load reads .env (if any) and then the process environment
func Load() *Config {
	// Non-fatal if missing
	_ = godotenv.Load()

	return FromEnv()
}

func FromEnv() *Config {
	return &Config{
		DataFile: getenv("GPA_DATA_FILE", DefaultDataFile),
		LogLevel: getenv("LOG_LEVEL", "info"),
		Debug:    os.Getenv("DEBUG") == "1",
		JSONLogs: os.Getenv("GPA_JSON_LOGS") == "true",
		Port:     getenv("PORT", "8080"),
		GinMode:  os.Getenv("GIN_MODE"),
	}
}

func getenv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}
