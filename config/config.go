package config

import (
	"os"
	"strconv"
	"strings"
)

type Configuration struct {
	ApiPort string
	LogMode string // "dev" or "prod"

	Database string // "sqlite3" or "postgres"
	DbHost   string
	DbPort   string
	DbUser   string
	DbName   string
	DbPass   string
	DbPath   string // sqlite file location

	OpenAI struct {
		ApiKey      string
		Model       string
		MaxTokens   int
		Temperature float64
	}

	Chat struct {
		RetentionDays int
	}

	Dashboard struct {
		Username string
		Password string
	}

	Web3FormsAccessKey string
}

// FromEnv builds the process configuration from environment variables,
// filling defaults for everything that is safe to default. API keys have no
// default on purpose.
func FromEnv() Configuration {
	var c Configuration

	c.ApiPort = getenv("PORT", "8080")
	c.LogMode = getenv("LOG_MODE", "dev")

	c.Database = getenv("DATABASE", "sqlite3")
	c.DbHost = os.Getenv("DB_HOST")
	c.DbPort = getenv("DB_PORT", "5432")
	c.DbUser = os.Getenv("DB_USER")
	c.DbName = os.Getenv("DB_NAME")
	c.DbPass = os.Getenv("DB_PASS")
	c.DbPath = getenv("DB_PATH", "db/database.db")

	c.OpenAI.ApiKey = os.Getenv("OPENAI_API_KEY")
	c.OpenAI.Model = getenv("OPENAI_MODEL", "gpt-3.5-turbo")
	c.OpenAI.MaxTokens = getenvInt("OPENAI_MAX_TOKENS", 100)
	c.OpenAI.Temperature = getenvFloat("OPENAI_TEMPERATURE", 0.7)

	c.Chat.RetentionDays = getenvInt("CHAT_LOG_RETENTION_DAYS", 14)

	c.Dashboard.Username = getenv("DASHBOARD_USERNAME", "admin")
	c.Dashboard.Password = os.Getenv("DASHBOARD_PASSWORD")

	c.Web3FormsAccessKey = os.Getenv("WEB3FORMS_ACCESS_KEY")

	return c
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getenvFloat(key string, def float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}
