package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const apiKeyEnv = "EURI_API_KEY"

// LLMConfig points at one OpenAI-compatible endpoint.
type LLMConfig struct {
	BaseURL string `yaml:"base_url"`
	Key     string `yaml:"key"`
	Model   string `yaml:"model"`
}

type RAGConfig struct {
	ChunkSize int `yaml:"chunk_size"`
	// ChunkOverlap is a pointer so an explicit zero in the file is
	// distinguishable from an absent key.
	ChunkOverlap *int   `yaml:"chunk_overlap"`
	TopK         int    `yaml:"top_k"`
	Persona      string `yaml:"persona"`
}

type Config struct {
	EmbedLLM LLMConfig `yaml:"embed_llm"`
	ChatLLM  LLMConfig `yaml:"chat_llm"`
	RAG      RAGConfig `yaml:"rag"`
	// Collections maps collection names to their resource folders.
	Collections map[string]string `yaml:"collections"`
}

// LoadConfig reads the yaml config at path. A missing file yields the
// defaults rather than an error, so the tool works out of the box.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.EmbedLLM.BaseURL == "" {
		cfg.EmbedLLM.BaseURL = "https://api.euron.one/api/v1/euri"
	}
	if cfg.EmbedLLM.Model == "" {
		cfg.EmbedLLM.Model = "text-embedding-3-small"
	}
	if cfg.ChatLLM.BaseURL == "" {
		cfg.ChatLLM.BaseURL = cfg.EmbedLLM.BaseURL
	}
	if cfg.ChatLLM.Model == "" {
		cfg.ChatLLM.Model = "gpt-4.1-nano"
	}
	// Credential comes from the environment when the file leaves it out.
	if cfg.EmbedLLM.Key == "" {
		cfg.EmbedLLM.Key = os.Getenv(apiKeyEnv)
	}
	if cfg.ChatLLM.Key == "" {
		cfg.ChatLLM.Key = os.Getenv(apiKeyEnv)
	}
	if cfg.RAG.ChunkSize == 0 {
		cfg.RAG.ChunkSize = 1000
	}
	if cfg.RAG.ChunkOverlap == nil {
		overlap := 200
		cfg.RAG.ChunkOverlap = &overlap
	}
	if cfg.RAG.TopK == 0 {
		cfg.RAG.TopK = 4
	}
	if cfg.Collections == nil {
		cfg.Collections = map[string]string{
			"medical":  "./medical_report",
			"medicine": "./medicine",
			"hospital": "./hospital",
		}
	}
}
