package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	AI       AIConfig       `mapstructure:"ai"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
	// Mode is gin's mode: "release" in production, "debug" otherwise.
	Mode string `mapstructure:"mode"`
	// StaticDir, when set, is the directory of built front-end assets
	// served alongside the API.
	StaticDir string `mapstructure:"static_dir"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// AIConfig selects and authenticates the advice model provider.
// Leaving Provider empty disables the advice routes.
type AIConfig struct {
	Provider     string `mapstructure:"provider"` // "gemini" or "openai"
	GeminiAPIKey string `mapstructure:"gemini_api_key"`
	OpenAIAPIKey string `mapstructure:"openai_api_key"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Environment overrides, e.g. server.address -> SERVER_ADDRESS,
	// ai.gemini_api_key -> AI_GEMINI_API_KEY.
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("database.path", "fittrack.db")

	err = viper.ReadInConfig()
	// A missing config file is fine; env vars and defaults cover it.
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		err = nil
	} else if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	return config, nil
}
