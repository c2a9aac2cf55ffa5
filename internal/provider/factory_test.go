package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/articlegpt/internal/config"
)

func TestNewDispatchesOnModelType(t *testing.T) {
	tests := []struct {
		name      string
		modelType string
		wantType  interface{}
	}{
		{"openai", config.TypeOpenAI, &openAISummarizer{}},
		{"generic uses chat completions", config.TypeGeneric, &openAISummarizer{}},
		{"anthropic", config.TypeAnthropic, &anthropicSummarizer{}},
		{"gemini", config.TypeGemini, &geminiSummarizer{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(&config.Model{
				Name:          "test",
				BaseURL:       "https://example.com",
				APIKey:        "key",
				SelectedModel: "model-id",
				ModelType:     tt.modelType,
			})
			require.NoError(t, err)
			assert.IsType(t, tt.wantType, s)
			assert.Equal(t, "test", s.Name())
		})
	}
}

func TestNewRejectsUnknownType(t *testing.T) {
	_, err := New(&config.Model{Name: "bad", ModelType: "mystery"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported model type")
}

func TestRenderPrompt(t *testing.T) {
	got := renderPrompt("Summarize in {max_length} chars:\n{content}", 200, "Hello world")
	assert.Equal(t, "Summarize in 200 chars:\nHello world", got)
}
