package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Whisper WhisperConfig `yaml:"whisper"`
	Gemini  GeminiConfig  `yaml:"gemini"`
	Paths   PathsConfig   `yaml:"paths"`
	Logging LoggingConfig `yaml:"logging"`
	Bot     BotConfig     `yaml:"bot"`
}

type WhisperConfig struct {
	ModelPath  string `yaml:"model_path"`
	BinaryPath string `yaml:"binary_path"`
	Language   string `yaml:"language"`
	Threads    int    `yaml:"threads"`
}

type GeminiConfig struct {
	Model   string   `yaml:"model"`
	APIKeys []string `yaml:"api_keys"`
}

type PathsConfig struct {
	Inbound   string `yaml:"inbound"`
	Audio     string `yaml:"audio"`
	Documents string `yaml:"documents"`
	Template  string `yaml:"template"`
	DataFile  string `yaml:"data_file"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// BotConfig identifies the user the console transport acts as.
type BotConfig struct {
	UserID   int64  `yaml:"user_id"`
	UserName string `yaml:"user_name"`
}

// Load reads and validates a YAML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Whisper.ModelPath == "" {
		return fmt.Errorf("whisper.model_path is required")
	}
	if c.Whisper.BinaryPath == "" {
		return fmt.Errorf("whisper.binary_path is required")
	}
	if len(c.Gemini.APIKeys) == 0 {
		return fmt.Errorf("gemini.api_keys is required")
	}

	if c.Whisper.Language == "" {
		c.Whisper.Language = "ru"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 4
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Paths.Inbound == "" {
		c.Paths.Inbound = "data/inbound"
	}
	if c.Paths.Audio == "" {
		c.Paths.Audio = "data/audio"
	}
	if c.Paths.Documents == "" {
		c.Paths.Documents = "data/documents"
	}
	if c.Paths.Template == "" {
		c.Paths.Template = "templates/template.txt"
	}
	if c.Paths.DataFile == "" {
		c.Paths.DataFile = "data/records.json"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Bot.UserID == 0 {
		c.Bot.UserID = 1
	}
	if c.Bot.UserName == "" {
		c.Bot.UserName = "console"
	}

	return nil
}
