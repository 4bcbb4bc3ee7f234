package config

import (
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/samber/oops"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Log           Log           `yaml:"log"`
	OpenAI        OpenAI        `yaml:"openai"`
	StatsBomb     StatsBomb     `yaml:"statsbomb"`
	Transfermarkt Transfermarkt `yaml:"transfermarkt"`
	Telegram      Telegram      `yaml:"telegram"`
	Server        Server        `yaml:"server"`
}

type OpenAI struct {
	// Model used for rendering performance reports
	Report ModelConfig `yaml:"report"`
	// Model used for intent classification and message rephrasing
	Intent ModelConfig `yaml:"intent"`
	// Model used for the free-form chat assistant
	Chat ModelConfig `yaml:"chat"`
}

type ModelConfig struct {
	// OpenAI base url
	BaseURL string `yaml:"base_url" example:"https://openrouter.ai/api/v1"`
	// OpenAI token, empty token disables the LLM path
	Token string `yaml:"token" example:"sk-proj-abc123456789DEF789ghi012JKL345mno678PQR901stu234VWX"`
	// OpenAI model
	Model string `yaml:"model" example:"gpt-4o-mini"`
}

func (m ModelConfig) Enabled() bool {
	return m.Token != ""
}

type StatsBomb struct {
	// Base url of the open-data repository
	BaseURL string `yaml:"base_url" example:"https://raw.githubusercontent.com/statsbomb/open-data/master/data" validate:"required"`
	// Competition ids to index players from, empty means every competition
	Competitions []int `yaml:"competitions"`
	// Per-request timeout
	Timeout time.Duration `yaml:"timeout" example:"20s"`
	// How long fetched documents stay cached
	CacheTTL time.Duration `yaml:"cache_ttl" example:"1h"`
}

type Transfermarkt struct {
	// Base url of the quick-search endpoint, empty disables market data
	BaseURL string `yaml:"base_url" example:"https://www.transfermarkt.com"`
	// Per-request timeout
	Timeout time.Duration `yaml:"timeout" example:"10s"`
}

type Telegram struct {
	// Chat bot token, obtain it via BotFather
	Token string `yaml:"token" example:"1234567890:ABCdefGHIjklMNopQRstUVwxyZ-123456789"`
}

type Server struct {
	// HTTP listen address
	Listen string `yaml:"listen" example:":8080" validate:"required"`
}

type Log struct {
	// Telegram logging config
	Telegram TelegramLog `yaml:"telegram"`
}

type TelegramLog struct {
	// Chat bot token, obtain it via BotFather
	Token string `yaml:"token" example:"1234567890:ABCdefGHIjklMNopQRstUVwxyZ-123456789"`
	// Chat ID to send messages to
	ChatID string `yaml:"chat_id" example:"1001234567890"`
}

func Load() (*Config, error) {
	var result Config

	data, err := os.ReadFile("config.yaml")
	if err != nil {
		return nil, oops.Errorf("failed to read config file: %w", err)
	}

	if err = yaml.Unmarshal(data, &result); err != nil {
		return nil, oops.Errorf("failed to parse YAML config: %w", err)
	}

	if result.StatsBomb.BaseURL == "" {
		result.StatsBomb.BaseURL = "https://raw.githubusercontent.com/statsbomb/open-data/master/data"
	}
	if result.StatsBomb.Timeout == 0 {
		result.StatsBomb.Timeout = 20 * time.Second
	}
	if result.StatsBomb.CacheTTL == 0 {
		result.StatsBomb.CacheTTL = time.Hour
	}
	if result.Transfermarkt.Timeout == 0 {
		result.Transfermarkt.Timeout = 10 * time.Second
	}
	if result.Server.Listen == "" {
		result.Server.Listen = ":8080"
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(result); err != nil {
		return nil, oops.Errorf("failed to validate config: %w", err)
	}

	return &result, nil
}
