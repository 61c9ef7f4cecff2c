package config

import (
	"fmt"
	"os"
	"time"

	"github.com/l6131a-ai/LLM/pkg/validator"
	"github.com/spf13/viper"
)

type Config struct {
	App Server    `mapstructure:"app" validate:"required"`
	API APIConfig `mapstructure:"api" validate:"required"`
	UI  UIConfig  `mapstructure:"ui"`
	Env string    `mapstructure:"env" validate:"oneof=development production staging"`
}

type Server struct {
	Addr            string        `mapstructure:"addr" validate:"required"`
	Timeout         time.Duration `mapstructure:"timeout" validate:"min=1"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"min=0"`
}

type APIConfig struct {
	Key              string `mapstructure:"key" validate:"required"`
	Endpoint         string `mapstructure:"endpoint" validate:"required,url"`
	Provider         string `mapstructure:"provider" validate:"oneof=mentorpiece openai"`
	TranslationModel string `mapstructure:"translation_model" validate:"required"`
	JudgeModel       string `mapstructure:"judge_model" validate:"required"`
}

type UIConfig struct {
	ClearOnError bool `mapstructure:"clear_on_error"`
}

func Init() (*Config, error) {
	v := viper.New()

	v.AutomaticEnv()

	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}

	v.AddConfigPath("configs")
	v.SetConfigName(configName)

	if err := v.BindEnv("api.key", "MENTORPIECE_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind MENTORPIECE_API_KEY: %w", err)
	}
	if err := v.BindEnv("api.endpoint", "API_ENDPOINT"); err != nil {
		return nil, fmt.Errorf("failed to bind API_ENDPOINT: %w", err)
	}
	if err := v.BindEnv("api.provider", "API_PROVIDER"); err != nil {
		return nil, fmt.Errorf("failed to bind API_PROVIDER: %w", err)
	}
	if err := v.BindEnv("app.addr", "APP_ADDR"); err != nil {
		return nil, fmt.Errorf("failed to bind APP_ADDR: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
