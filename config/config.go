package config

import (
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"
)

const (
	SourceMongo    = "mongodb"
	SourcePostgres = "postgres"
)

type Config struct {
	Port           string
	AllowedOrigins []string

	EnrollmentSource string

	MongoURI        string
	MongoDatabase   string
	MongoCollection string

	PostgresDSN   string
	PostgresTable string

	ReadTimeout time.Duration
}

// EnvFile returns the dotenv file for the current APP_ENV (".env" or ".env.<APP_ENV>").
func EnvFile() string {
	if env := strings.TrimSpace(os.Getenv("APP_ENV")); env != "" {
		return ".env." + env
	}
	return ".env"
}

// LoadEnv loads the dotenv file into the process environment.
// Variables already present in the environment are not overwritten.
func LoadEnv() {
	file := EnvFile()
	if err := godotenv.Load(file); err != nil {
		log.Warnf("env file %s not found, using system environment variables", file)
	}
}

// Load reads the configuration from the environment. Call LoadEnv first
// when a dotenv file should be honoured.
func Load() *Config {
	source := strings.ToLower(getEnvWithDefault("ENROLLMENT_SOURCE", SourceMongo))
	if source != SourcePostgres {
		source = SourceMongo
	}

	return &Config{
		Port:             getEnvWithDefault("PORT", "8080"),
		AllowedOrigins:   getEnvAsList("ALLOWED_ORIGINS", []string{"*"}),
		EnrollmentSource: source,
		MongoURI:         os.Getenv("MONGO_URI"),
		MongoDatabase:    getEnvWithDefault("MONGO_DB", "test"),
		MongoCollection:  getEnvWithDefault("MONGO_COLLECTION", "InfoSenaSoft"),
		PostgresDSN:      os.Getenv("DATABASE_URL"),
		PostgresTable:    getEnvWithDefault("ENROLLMENT_TABLE", "enrollments"),
		ReadTimeout:      getEnvAsDuration("DB_READ_TIMEOUT", 10*time.Second),
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	raw := os.Getenv(key)
	if strings.TrimSpace(raw) == "" {
		return defaultValue
	}

	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Warnf("invalid duration %q for %s, using %s", raw, key, defaultValue)
		return defaultValue
	}
	return d
}
