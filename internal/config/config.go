package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr    string
	VisionBackend string
	GeminiAPIKey  string
	GeminiModel   string
	ClaudeAPIKey  string
	ClaudeModel   string
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string
	OllamaHost    string
	OllamaModel   string
	SessionTTL    time.Duration
	MaxPages      int
	LogLevel      string
	LogFile       string
	LogFormat     string
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present; variables already set in the
// process environment take precedence over it.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ListenAddr:    getEnv("LISTEN_ADDR", ":8080"),
		VisionBackend: getEnv("VISION_BACKEND", "gemini"),
		GeminiAPIKey:  getSecret("GEMINI_API_KEY", "API_KEY"),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		ClaudeAPIKey:  getSecret("CLAUDE_API_KEY"),
		ClaudeModel:   getEnv("CLAUDE_MODEL", "claude-sonnet-4-5"),
		OpenAIAPIKey:  getSecret("OPENAI_API_KEY"),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-4o"),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", ""),
		OllamaHost:    getEnv("OLLAMA_HOST", "http://localhost:11434"),
		OllamaModel:   getEnv("OLLAMA_MODEL", "llava"),
		SessionTTL:    getDuration("SESSION_TTL", 2*time.Hour),
		MaxPages:      getInt("MAX_PAGES", 10),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFile:       getEnv("LOG_FILE", ""),
		LogFormat:     getEnv("LOG_FORMAT", "json"),
	}
}

func getEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}

// getSecret returns the first non-empty sanitised value among keys.
func getSecret(keys ...string) string {
	for _, key := range keys {
		if v := SanitizeSecret(os.Getenv(key)); v != "" {
			return v
		}
	}
	return ""
}

// SanitizeSecret strips quotes and surrounding whitespace that commonly sneak
// in when a key is pasted into a hosting dashboard. The literal "undefined"
// is treated as unset.
func SanitizeSecret(s string) string {
	s = strings.NewReplacer(`"`, "", `'`, "").Replace(s)
	s = strings.TrimSpace(s)
	if s == "undefined" {
		return ""
	}
	return s
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	val, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil || d <= 0 {
		return defaultVal
	}
	return d
}

func getInt(key string, defaultVal int) int {
	val, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil || n <= 0 {
		return defaultVal
	}
	return n
}
