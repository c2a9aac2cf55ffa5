package provider

import (
	"fmt"
	"net/http"
	"time"

	"github.com/nguyentantai21042004/articlegpt/internal/config"
)

// httpClient is shared by all HTTP-based summarizers. Remote summarization
// calls can be slow, so the timeout is generous.
var httpClient = &http.Client{Timeout: 120 * time.Second}

// New builds the Summarizer variant matching the model's type tag.
// The generic type uses the chat-completions shape, which is the de facto
// standard for self-hosted and compatible endpoints.
func New(m *config.Model) (Summarizer, error) {
	switch m.ModelType {
	case config.TypeOpenAI, config.TypeGeneric:
		return &openAISummarizer{
			name:    m.Name,
			baseURL: m.BaseURL,
			apiKey:  m.ResolveAPIKey(),
			model:   m.SelectedModel,
			client:  httpClient,
		}, nil
	case config.TypeAnthropic:
		return &anthropicSummarizer{
			name:    m.Name,
			baseURL: m.BaseURL,
			apiKey:  m.ResolveAPIKey(),
			model:   m.SelectedModel,
			client:  httpClient,
		}, nil
	case config.TypeGemini:
		return &geminiSummarizer{
			name:   m.Name,
			apiKey: m.ResolveAPIKey(),
			model:  m.SelectedModel,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported model type: %s", m.ModelType)
	}
}
