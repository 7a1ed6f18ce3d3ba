package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port       string `mapstructure:"port"`
	AuthToken  string `mapstructure:"AUTH_TOKEN"`
	AIProvider string `mapstructure:"ai_provider"` // "openai" or "gemini"
	AIEndpoint string `mapstructure:"ai_endpoint"`
	Model      string `mapstructure:"model"`

	OpenAIAPIKey  string   `mapstructure:"OPENAI_API_KEY"`
	GeminiAPIKeys []string `mapstructure:"GEMINI_API_KEYS"`

	Document DocumentConfig `mapstructure:"document"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Download DownloadConfig `mapstructure:"download"`
	LLM      LLMConfig      `mapstructure:"llm"`
}

type DocumentConfig struct {
	MaxChunkSize   int `mapstructure:"max_chunk_size"`
	OverlapSize    int `mapstructure:"overlap_size"`
	MinTextLength  int `mapstructure:"min_text_length"`
	ExtractWorkers int `mapstructure:"extract_workers"`
}

type CacheConfig struct {
	TTLSeconds int `mapstructure:"ttl_seconds"`
	MaxEntries int `mapstructure:"max_entries"`
}

type DownloadConfig struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
	MaxRetries     int `mapstructure:"max_retries"`
}

type LLMConfig struct {
	MaxTokens         int     `mapstructure:"max_tokens"`
	Temperature       float64 `mapstructure:"temperature"`
	TimeoutSeconds    int     `mapstructure:"timeout_seconds"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
}

func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

func (c DownloadConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func (c LLMConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Set up Viper to read from config file
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Set up Viper to read from environment variables
	v.AutomaticEnv()

	setDefaults(v)

	// Read config file; the defaults plus environment are enough to run
	// without one.
	if err := v.ReadInConfig(); err != nil {
		log.Printf("config file %s not readable, using defaults and environment", configPath)
	}

	// Bind environment variables
	v.BindEnv("AUTH_TOKEN")
	v.BindEnv("OPENAI_API_KEY")
	v.BindEnv("GEMINI_API_KEYS")

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// GEMINI_API_KEYS arrives comma-separated when set from the environment.
	config.GeminiAPIKeys = normalizeKeys(config.GeminiAPIKeys)

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8000")
	v.SetDefault("ai_provider", "openai")
	v.SetDefault("model", "gpt-4")
	v.SetDefault("document.max_chunk_size", 30000)
	v.SetDefault("document.overlap_size", 500)
	v.SetDefault("document.min_text_length", 100)
	v.SetDefault("document.extract_workers", 4)
	v.SetDefault("cache.ttl_seconds", 3600)
	v.SetDefault("cache.max_entries", 100)
	v.SetDefault("download.timeout_seconds", 60)
	v.SetDefault("download.max_retries", 3)
	v.SetDefault("llm.max_tokens", 4000)
	v.SetDefault("llm.temperature", 0.0)
	v.SetDefault("llm.timeout_seconds", 60)
	v.SetDefault("llm.requests_per_second", 2)
}

func normalizeKeys(keys []string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		for _, part := range strings.Split(k, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
