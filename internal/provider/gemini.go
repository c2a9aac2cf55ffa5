package provider

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// geminiSummarizer talks to the Gemini API through the official SDK.
type geminiSummarizer struct {
	name   string
	apiKey string
	model  string
}

func (s *geminiSummarizer) Name() string {
	return s.name
}

func (s *geminiSummarizer) GenerateSummary(ctx context.Context, content string, maxLength int, promptTemplate string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  s.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("gemini: create client: %w", err)
	}

	prompt := renderPrompt(promptTemplate, maxLength, content)
	result, err := client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini: empty response")
	}

	var text strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text.WriteString(part.Text)
		}
	}
	if text.Len() == 0 {
		return "", fmt.Errorf("gemini: no text parts in response")
	}

	return strings.TrimSpace(text.String()), nil
}
