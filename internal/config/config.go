package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Provider struct {
		Name         string `mapstructure:"name"`          // "groq" or "gemini"
		APIKey       string `mapstructure:"api_key"`       // bound to GROQ_API_KEY / GEMINI_API_KEY
		PlannerModel string `mapstructure:"planner_model"` // reasons stage
		WriterModel  string `mapstructure:"writer_model"`  // advice stage
	} `mapstructure:"provider"`

	Server struct {
		Addr string `mapstructure:"addr"`
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`

	History struct {
		Enabled bool   `mapstructure:"enabled"`
		Path    string `mapstructure:"path"` // sqlite file
	} `mapstructure:"history"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".") // Look for config.yaml in the current directory

	viper.SetDefault("provider.name", "groq")
	viper.SetDefault("provider.planner_model", "gemma2-9b-it")
	viper.SetDefault("provider.writer_model", "gemma2-9b-it")
	viper.SetDefault("server.addr", "localhost")
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("history.enabled", true)
	viper.SetDefault("history.path", "advisor_history.db")

	viper.AutomaticEnv()
	// Bind the credential env vars directly so no config file is needed
	// for the common case. Groq is checked first, then Gemini.
	viper.BindEnv("provider.api_key", "GROQ_API_KEY", "GEMINI_API_KEY")

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; defaults and env vars carry it.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}
	return &config, nil
}
