package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	StoreDriverFirestore = "firestore"
	StoreDriverMemory    = "memory"
)

type Config struct {
	ServerPort  string
	Environment string
	StoreDriver string

	FirebaseProject        string
	FirebaseCredentialJSON string
	FirebaseCredentialPath string
	StorageBucket          string

	// Summaries are disabled when the key is empty.
	AnthropicAPIKey  string
	SummaryModel     string
	SummaryMaxTokens int64

	SummaryRatePerMinute int
	MessageRatePerMinute int
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		StoreDriver: strings.ToLower(getEnv("STORE_DRIVER", StoreDriverFirestore)),

		FirebaseProject:        getEnv("FIREBASE_PROJECT_ID", ""),
		FirebaseCredentialJSON: getEnv("FIREBASE_SERVICE_ACCOUNT_JSON", ""),
		FirebaseCredentialPath: getEnv("FIREBASE_SERVICE_ACCOUNT_PATH", ""),
		StorageBucket:          getEnv("STORAGE_BUCKET", ""),

		AnthropicAPIKey:  getEnv("ANTHROPIC_API_KEY", ""),
		SummaryModel:     getEnv("SUMMARY_MODEL", "claude-3-5-haiku-latest"),
		SummaryMaxTokens: getEnvAsInt64("SUMMARY_MAX_TOKENS", 1024),

		SummaryRatePerMinute: int(getEnvAsInt64("RATE_LIMIT_SUMMARY_PER_MINUTE", 6)),
		MessageRatePerMinute: int(getEnvAsInt64("RATE_LIMIT_MESSAGES_PER_MINUTE", 30)),
	}

	return config, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}
