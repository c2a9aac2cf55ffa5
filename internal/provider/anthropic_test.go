package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnthropicGenerateSummary(t *testing.T) {
	var gotPath, gotKey, gotVersion string
	var gotReq anthropicMessagesRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-api-key")
		gotVersion = r.Header.Get("anthropic-version")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		resp := anthropicMessagesResponse{
			Content: []anthropicContentBlock{
				{Type: "text", Text: "A compact "},
				{Type: "tool_use", Text: "ignored"},
				{Type: "text", Text: "summary."},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	s := &anthropicSummarizer{
		name:    "claude",
		baseURL: srv.URL,
		apiKey:  "sk-ant-test",
		model:   "claude-sonnet-4-20250514",
		client:  srv.Client(),
	}

	summary, err := s.GenerateSummary(context.Background(), "Hello world", 150, "Len {max_length}: {content}")
	require.NoError(t, err)

	assert.Equal(t, "A compact summary.", summary)
	assert.Equal(t, "/v1/messages", gotPath)
	assert.Equal(t, "sk-ant-test", gotKey)
	assert.Equal(t, "2023-06-01", gotVersion)
	assert.Equal(t, 1024, gotReq.MaxTokens)
	assert.Equal(t, systemPrompt, gotReq.System)
	require.Len(t, gotReq.Messages, 1)
	assert.Equal(t, "Len 150: Hello world", gotReq.Messages[0].Content)
}

func TestAnthropicGenerateSummaryErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{"api error payload", http.StatusForbidden, `{"error":{"message":"permission denied"}}`, "permission denied"},
		{"bad status no payload", http.StatusBadGateway, ``, "unexpected status 502"},
		{"empty content", http.StatusOK, `{"content":[]}`, "empty response content"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			s := &anthropicSummarizer{baseURL: srv.URL, model: "m", client: srv.Client()}
			_, err := s.GenerateSummary(context.Background(), "content", 100, "{max_length} {content}")

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
