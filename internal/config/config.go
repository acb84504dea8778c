package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Prompt styles accepted by prompt_style.
const (
	PromptStyleStrict   = "strict"
	PromptStyleFreeform = "freeform"
)

// Config holds all application configuration.
type Config struct {
	Port           int    `yaml:"port"`
	APIKey         string `yaml:"api_key"`
	DefaultModel   string `yaml:"default_model"`
	PromptStyle    string `yaml:"prompt_style"`
	StyleGuidePath string `yaml:"style_guide_path"`
	OpenAIAPIKey   string `yaml:"openai_api_key"`
	OpenAIModel    string `yaml:"openai_model"`
	OpenAIBaseURL  string `yaml:"openai_base_url"`
	ClaudeAPIKey   string `yaml:"claude_api_key"`
	ClaudeModel    string `yaml:"claude_model"`
	OllamaURL      string `yaml:"ollama_url"`
	OllamaModel    string `yaml:"ollama_model"`
}

func defaults() Config {
	return Config{
		Port:        8090,
		PromptStyle: PromptStyleStrict,
		OpenAIModel: "gpt-4o-mini",
		ClaudeModel: "claude-sonnet-4-5-20250929",
		OllamaModel: "qwen2.5:7b",
	}
}

// Load reads configuration from a YAML file (if path is non-empty), then
// applies REVISOR_* environment variable overrides. An empty path returns
// defaults + env overrides. A .env file in the working directory is loaded
// first, if present.
func Load(path string) (Config, error) {
	godotenv.Load()

	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse yaml: %w", err)
		}
	}

	if v := os.Getenv("REVISOR_PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: invalid REVISOR_PORT %q: %w", v, err)
		}
		cfg.Port = p
	}
	if v := os.Getenv("REVISOR_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("REVISOR_DEFAULT_MODEL"); v != "" {
		cfg.DefaultModel = v
	}
	if v := os.Getenv("REVISOR_PROMPT_STYLE"); v != "" {
		cfg.PromptStyle = v
	}
	if v := os.Getenv("REVISOR_STYLE_GUIDE_PATH"); v != "" {
		cfg.StyleGuidePath = v
	}
	if v := os.Getenv("REVISOR_OPENAI_API_KEY"); v != "" {
		cfg.OpenAIAPIKey = v
	}
	if v := os.Getenv("REVISOR_OPENAI_MODEL"); v != "" {
		cfg.OpenAIModel = v
	}
	if v := os.Getenv("REVISOR_OPENAI_BASE_URL"); v != "" {
		cfg.OpenAIBaseURL = v
	}
	if v := os.Getenv("REVISOR_CLAUDE_API_KEY"); v != "" {
		cfg.ClaudeAPIKey = v
	}
	if v := os.Getenv("REVISOR_CLAUDE_MODEL"); v != "" {
		cfg.ClaudeModel = v
	}
	if v := os.Getenv("REVISOR_OLLAMA_URL"); v != "" {
		cfg.OllamaURL = v
	}
	if v := os.Getenv("REVISOR_OLLAMA_MODEL"); v != "" {
		cfg.OllamaModel = v
	}

	if cfg.PromptStyle != PromptStyleStrict && cfg.PromptStyle != PromptStyleFreeform {
		return Config{}, fmt.Errorf("config: invalid prompt_style %q (want %q or %q)",
			cfg.PromptStyle, PromptStyleStrict, PromptStyleFreeform)
	}

	return cfg, nil
}
