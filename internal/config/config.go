package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port     string
	Env      string
	LogLevel string

	GithubSecret         string
	GithubPrivateKeyPath string
	GithubAppID          string
	GithubInstallationID string

	AIProvider  string
	OpenAIKey   string
	OpenAIModel string
	OllamaURL   string
	OllamaModel string

	QueueType string
	RedisAddr string

	DBPath string

	RateLimitRPS   int
	RateLimitBurst int

	// Per-pass timeouts. Security gets a longer default because its
	// prompt covers the widest checklist.
	PassTimeout         time.Duration
	SecurityPassTimeout time.Duration

	BudgetEnabled  bool
	BudgetDailyUSD float64
	BudgetPRUSD    float64

	MaxPromptLines int
}

func Load() *Config {
	return &Config{
		Port:                 getEnv("PORT", "8080"),
		Env:                  getEnv("ENV", "local"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		GithubSecret:         getEnv("GITHUB_WEBHOOK_SECRET", ""),
		GithubPrivateKeyPath: getEnv("GITHUB_APP_PRIVATE_KEY_PATH", ""),
		GithubAppID:          getEnv("GITHUB_APP_ID", ""),
		GithubInstallationID: getEnv("GITHUB_APP_INSTALLATION_ID", ""),
		AIProvider:           getEnv("AI_PROVIDER", "openai"),
		OpenAIKey:            getEnv("OPENAI_KEY", ""),
		OpenAIModel:          getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		OllamaURL:            getEnv("OLLAMA_URL", "http://localhost:11434"),
		OllamaModel:          getEnv("OLLAMA_MODEL", "llama3"),
		QueueType:            getEnv("QUEUE_TYPE", "memory"), // memory | redis
		RedisAddr:            getEnv("REDIS_ADDR", "localhost:6379"),
		DBPath:               getEnv("DB_PATH", "prai.db"),
		RateLimitRPS:         getEnvInt("RATE_LIMIT_RPS", 1),
		RateLimitBurst:       getEnvInt("RATE_LIMIT_BURST", 2),
		PassTimeout:          getEnvDuration("PASS_TIMEOUT", 60*time.Second),
		SecurityPassTimeout:  getEnvDuration("SECURITY_PASS_TIMEOUT", 90*time.Second),
		BudgetEnabled:        getEnv("BUDGET_ENABLED", "false") == "true",
		BudgetDailyUSD:       getEnvFloat("BUDGET_DAILY_USD", 5.0),
		BudgetPRUSD:          getEnvFloat("BUDGET_PR_USD", 0.5),
		MaxPromptLines:       getEnvInt("MAX_PROMPT_LINES", 400),
	}
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("invalid env %s: %v", key, err)
	}
	return i
}

func getEnvFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Fatalf("invalid env %s: %v", key, err)
	}
	return f
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("invalid env %s: %v", key, err)
	}
	return d
}
