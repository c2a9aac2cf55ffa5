package config

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// Model types understood by the provider factory.
const (
	TypeOpenAI    = "openai"
	TypeAnthropic = "anthropic"
	TypeGemini    = "gemini"
	TypeGeneric   = "generic"
)

// DefaultPromptTemplate is used when the config document carries no template.
// {max_length} and {content} are substituted at request time.
const DefaultPromptTemplate = `Create a concise, compact summary of the following Markdown content, strictly following these rules:
1. Stay within {max_length} characters, be as brief as possible
2. Do not use Markdown syntax or formatting (no headings, list markers, emphasis, quotes, code blocks)
3. Use coherent, flowing narrative text
4. Extract only the most essential information from the document
5. Use an objective, concise style
6. The summary must be a single compact block of text with no paragraphs or line breaks
Here is the content to summarize:
{content}`

type Config struct {
	SummaryLength   int               `json:"summary_length"`
	Directory       string            `json:"directory"`
	RequestInterval int               `json:"request_interval"`
	MaxWorkers      int               `json:"max_workers"`
	PromptTemplate  string            `json:"prompt_template"`
	Models          map[string]*Model `json:"models"`
	ActiveModel     string            `json:"active_model"`
	LogFile         string            `json:"log_file,omitempty"`
	LogLevel        string            `json:"log_level,omitempty"`
}

// Model is one adapter record of the config document.
type Model struct {
	Name          string   `json:"name"`
	BaseURL       string   `json:"base_url"`
	APIKeyName    string   `json:"api_key_name"`
	APIKey        string   `json:"api_key"`
	Models        []string `json:"models"`
	SelectedModel string   `json:"selected_model"`
	ModelType     string   `json:"model_type"`
}

// ResolveAPIKey returns the stored key, falling back to the environment
// variable named by api_key_name.
func (m *Model) ResolveAPIKey() string {
	if m.APIKey != "" {
		return m.APIKey
	}
	return os.Getenv(m.APIKeyName)
}

// DefaultModel returns the built-in adapter used when the document has none.
func DefaultModel() *Model {
	return &Model{
		Name:          "deepseek",
		BaseURL:       "https://api.deepseek.com",
		APIKeyName:    "DEEPSEEK_API_KEY",
		Models:        []string{"deepseek-chat"},
		SelectedModel: "deepseek-chat",
		ModelType:     TypeOpenAI,
	}
}

// Default returns a fully usable configuration.
func Default() *Config {
	m := DefaultModel()
	return &Config{
		SummaryLength:   200,
		RequestInterval: 3,
		MaxWorkers:      5,
		PromptTemplate:  DefaultPromptTemplate,
		Models:          map[string]*Model{m.Name: m},
		ActiveModel:     m.Name,
		LogFile:         "summarizer.log",
		LogLevel:        "info",
	}
}

func (c *Config) Validate() error {
	if c.SummaryLength <= 0 {
		c.SummaryLength = 200
	}
	if c.RequestInterval < 1 {
		c.RequestInterval = 3
	}
	if c.MaxWorkers < 1 {
		c.MaxWorkers = 5
	}
	if c.PromptTemplate == "" {
		c.PromptTemplate = DefaultPromptTemplate
	}
	if !strings.Contains(c.PromptTemplate, "{content}") {
		return fmt.Errorf("prompt_template must contain the {content} placeholder")
	}
	if !strings.Contains(c.PromptTemplate, "{max_length}") {
		return fmt.Errorf("prompt_template must contain the {max_length} placeholder")
	}
	if c.LogFile == "" {
		c.LogFile = "summarizer.log"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}

	if c.Models == nil {
		c.Models = map[string]*Model{}
	}
	for name, m := range c.Models {
		if m == nil {
			return fmt.Errorf("models[%s] is empty", name)
		}
		if m.Name == "" {
			m.Name = name
		}
		if m.ModelType == "" {
			m.ModelType = TypeGeneric
		}
		if m.SelectedModel == "" && len(m.Models) > 0 {
			m.SelectedModel = m.Models[0]
		}
	}
	if len(c.Models) == 0 {
		m := DefaultModel()
		c.Models[m.Name] = m
		c.ActiveModel = m.Name
	}
	if _, ok := c.Models[c.ActiveModel]; !ok {
		names := SortedModelNames(c.Models)
		c.ActiveModel = names[0]
	}

	return nil
}

// SortedModelNames returns the model names in stable order.
func SortedModelNames(models map[string]*Model) []string {
	names := make([]string, 0, len(models))
	for name := range models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
