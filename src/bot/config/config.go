package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Token    string
	GroupID  int64
	MySQLDSN string
	RedisURL string
}

// Load reads the environment, with a best-effort .env file on top of it.
func Load() Config {
	_ = godotenv.Load()

	token := os.Getenv("BOT_TOKEN")
	if token == "" {
		log.Fatal("BOT_TOKEN not set")
	}

	var groupID int64
	if raw := os.Getenv("TELEGRAM_GROUP_ID"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			log.Fatalf("TELEGRAM_GROUP_ID: %v", err)
		}
		groupID = id
	}

	return Config{
		Token:    token,
		GroupID:  groupID,
		MySQLDSN: getenv("MYSQL_DSN", "squadbot:squadbot@tcp(127.0.0.1:3306)/squadbot"),
		RedisURL: getenv("REDIS_URL", "redis://127.0.0.1:6379/0"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
