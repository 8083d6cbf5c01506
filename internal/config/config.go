package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Keys     APIKeys
	Ai       AIConfig
	Catalog  CatalogConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	UploadDir          string
	EventTopic         string
}

type DatabaseConfig struct {
	Connection string
}

type APIKeys struct {
	GoogleGemini string
}

type AIConfig struct {
	Provider       string // "gemini" is the only supported provider for now
	Model          string // e.g. "gemini-1.5-pro"
	TimeoutSeconds int    // upper bound for a single generateContent call

	// StrictExtraction rejects a whole model response when any array
	// element fails validation, instead of keeping the valid ones.
	StrictExtraction bool
}

type CatalogConfig struct {
	BaseURL         string
	CacheTTLMinutes int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3001"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3001"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			UploadDir:          getEnv("UPLOAD_DIR", "uploads"),
			EventTopic:         getEnv("STUDY_EVENT_TOPIC_NAME", "STUDY_ARTIFACTS_GENERATED"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Keys: APIKeys{
			GoogleGemini: getEnv("GOOGLE_GEMINI_API_KEY", ""),
		},
		Ai: AIConfig{
			Provider:         getEnv("LLM_PROVIDER", "gemini"),
			Model:            getEnv("LLM_MODEL", "gemini-1.5-pro"),
			TimeoutSeconds:   getEnvAsInt("LLM_TIMEOUT_SECONDS", 120),
			StrictExtraction: getEnvAsBool("LLM_STRICT_EXTRACTION", false),
		},
		Catalog: CatalogConfig{
			BaseURL:         getEnv("COURSE_CATALOG_BASE_URL", "https://www.sfu.ca/bin/wcm/course-outlines"),
			CacheTTLMinutes: getEnvAsInt("COURSE_CATALOG_CACHE_TTL_MINUTES", 60),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
