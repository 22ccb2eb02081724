package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	Environment     string
	FirebaseProject string
	FirebaseApiKey  string

	IGDBBaseURL     string
	IGDBClientID    string
	IGDBAccessToken string

	DiscordClientID     string
	DiscordClientSecret string
	DiscordRedirectURI  string

	OAuthStateSecret string

	RedisAddr     string
	RedisPassword string

	VocabularyCacheTTL int64 // seconds
	FeedRefreshMinutes int64
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		FirebaseProject: getEnv("FIREBASE_PROJECT_ID", ""),
		FirebaseApiKey:  getEnv("FIREBASE_API_KEY", ""),

		IGDBBaseURL:     getEnv("IGDB_BASE_URL", "https://api.igdb.com/v4"),
		IGDBClientID:    getEnv("IGDB_CLIENT_ID", ""),
		IGDBAccessToken: getEnv("IGDB_ACCESS_TOKEN", ""),

		DiscordClientID:     getEnv("DISCORD_CLIENT_ID", ""),
		DiscordClientSecret: getEnv("DISCORD_CLIENT_SECRET", ""),
		DiscordRedirectURI:  getEnv("DISCORD_REDIRECT_URI", "http://localhost:8080/api/auth/callback/discord"),

		OAuthStateSecret: getEnv("OAUTH_STATE_SECRET", "dev-state-secret"),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		VocabularyCacheTTL: getEnvAsInt64("VOCABULARY_CACHE_TTL", 4*60*60), // 4 hours
		FeedRefreshMinutes: getEnvAsInt64("FEED_REFRESH_MINUTES", 5),
	}

	return config, nil
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
