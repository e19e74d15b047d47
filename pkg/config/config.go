package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	FirebaseProject string
	FirebaseApiKey  string
	StorageBucket   string
	Environment     string

	// Messaging limits
	MaxMessageLength     int
	ConversationScanSize int

	// Item listing limits
	DefaultPageSize int
	MaxPageSize     int
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		FirebaseProject: getEnv("FIREBASE_PROJECT_ID", ""),
		FirebaseApiKey:  getEnv("FIREBASE_API_KEY", ""),
		StorageBucket:   getEnv("IMAGE_BUCKET", "finders-keeper-images"),
		Environment:     getEnv("ENVIRONMENT", "development"),

		MaxMessageLength:     getEnvAsInt("MAX_MESSAGE_LENGTH", 1000),
		ConversationScanSize: getEnvAsInt("CONVERSATION_SCAN_SIZE", 10),

		DefaultPageSize: getEnvAsInt("DEFAULT_PAGE_SIZE", 25),
		MaxPageSize:     getEnvAsInt("MAX_PAGE_SIZE", 50),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.Atoi(value)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}
