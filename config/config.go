package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Ollama   OllamaConfig
	Matching MatchingConfig
	Upload   UploadConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// OllamaConfig holds generator endpoint configuration
type OllamaConfig struct {
	BaseURL     string `mapstructure:"base_url"`
	Model       string `mapstructure:"model"`
	VisionModel string `mapstructure:"vision_model"`
}

// MatchingConfig holds the relevance-engine thresholds. Both thresholds are
// tunables with no derivation from an invariant, so they stay configurable.
type MatchingConfig struct {
	LowConfidenceThreshold int  `mapstructure:"low_confidence_threshold"`
	MinRelevanceScore      int  `mapstructure:"min_relevance_score"`
	EnableDebugLogging     bool `mapstructure:"enable_debug_logging"`
}

// UploadConfig holds image upload handling configuration
type UploadConfig struct {
	Dir       string `mapstructure:"dir"`
	MaxSizeMB int64  `mapstructure:"max_size_mb"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/pocketai/")

	// Environment variable settings
	v.SetEnvPrefix("POCKETAI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "4000")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	// Ollama defaults
	v.SetDefault("ollama.base_url", "http://localhost:11434/api")
	v.SetDefault("ollama.model", "llama3.2")
	v.SetDefault("ollama.vision_model", "llava")

	// Matching defaults
	v.SetDefault("matching.low_confidence_threshold", 5)
	v.SetDefault("matching.min_relevance_score", 70)
	v.SetDefault("matching.enable_debug_logging", false)

	// Upload defaults
	v.SetDefault("upload.dir", "uploads")
	v.SetDefault("upload.max_size_mb", 10)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Ollama.BaseURL == "" {
		return fmt.Errorf("ollama base URL is required (set POCKETAI_OLLAMA_BASE_URL)")
	}

	if config.Matching.LowConfidenceThreshold < 0 {
		return fmt.Errorf("low confidence threshold must be non-negative, got: %d", config.Matching.LowConfidenceThreshold)
	}

	if config.Matching.MinRelevanceScore < 0 || config.Matching.MinRelevanceScore > 100 {
		return fmt.Errorf("minimum relevance score must be within 0-100, got: %d", config.Matching.MinRelevanceScore)
	}

	if config.Upload.MaxSizeMB <= 0 {
		return fmt.Errorf("upload max size must be positive, got: %d", config.Upload.MaxSizeMB)
	}

	return nil
}
