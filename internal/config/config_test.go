package config

import (
	"os"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				Whisper: WhisperConfig{
					ModelPath:  "models/ggml-tiny.bin",
					BinaryPath: "./whisper",
				},
				Gemini: GeminiConfig{
					APIKeys: []string{"key-1"},
				},
			},
			wantErr: false,
		},
		{
			name: "missing model path",
			config: Config{
				Whisper: WhisperConfig{
					BinaryPath: "./whisper",
				},
				Gemini: GeminiConfig{
					APIKeys: []string{"key-1"},
				},
			},
			wantErr: true,
		},
		{
			name: "missing binary path",
			config: Config{
				Whisper: WhisperConfig{
					ModelPath: "models/ggml-tiny.bin",
				},
				Gemini: GeminiConfig{
					APIKeys: []string{"key-1"},
				},
			},
			wantErr: true,
		},
		{
			name: "missing api keys",
			config: Config{
				Whisper: WhisperConfig{
					ModelPath:  "models/ggml-tiny.bin",
					BinaryPath: "./whisper",
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{
		Whisper: WhisperConfig{
			ModelPath:  "models/ggml-tiny.bin",
			BinaryPath: "./whisper",
		},
		Gemini: GeminiConfig{
			APIKeys: []string{"key-1"},
		},
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Whisper.Language != "ru" {
		t.Errorf("Language = %v, want ru", cfg.Whisper.Language)
	}
	if cfg.Gemini.Model != "gemini-2.5-flash" {
		t.Errorf("Model = %v, want gemini-2.5-flash", cfg.Gemini.Model)
	}
	if cfg.Paths.DataFile != "data/records.json" {
		t.Errorf("DataFile = %v, want data/records.json", cfg.Paths.DataFile)
	}
	if cfg.Bot.UserID != 1 {
		t.Errorf("UserID = %v, want 1", cfg.Bot.UserID)
	}
}

func TestLoad(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
whisper:
  model_path: "models/ggml-tiny.bin"
  binary_path: "./whisper"
  language: "ru"

gemini:
  model: "gemini-2.5-flash"
  api_keys:
    - "key-1"
    - "key-2"

paths:
  audio: "data/audio"
  data_file: "data/records.json"

logging:
  level: "info"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Whisper.ModelPath != "models/ggml-tiny.bin" {
		t.Errorf("ModelPath = %v, want %v", cfg.Whisper.ModelPath, "models/ggml-tiny.bin")
	}

	if len(cfg.Gemini.APIKeys) != 2 {
		t.Errorf("APIKeys = %v, want 2 keys", cfg.Gemini.APIKeys)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
