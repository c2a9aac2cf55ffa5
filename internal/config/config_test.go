package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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
				SummaryLength:   150,
				RequestInterval: 2,
				MaxWorkers:      3,
				PromptTemplate:  "Summarize in {max_length} chars: {content}",
				Models: map[string]*Model{
					"deepseek": DefaultModel(),
				},
				ActiveModel: "deepseek",
			},
			wantErr: false,
		},
		{
			name: "template missing content placeholder",
			config: Config{
				PromptTemplate: "Summarize in {max_length} chars",
			},
			wantErr: true,
		},
		{
			name: "template missing max_length placeholder",
			config: Config{
				PromptTemplate: "Summarize: {content}",
			},
			wantErr: true,
		},
		{
			name:    "empty config gets defaults",
			config:  Config{},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{}
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 200, cfg.SummaryLength)
	assert.Equal(t, 3, cfg.RequestInterval)
	assert.Equal(t, 5, cfg.MaxWorkers)
	assert.Equal(t, DefaultPromptTemplate, cfg.PromptTemplate)
	assert.Len(t, cfg.Models, 1)
	assert.Equal(t, "deepseek", cfg.ActiveModel)
}

func TestValidateFixesDanglingActiveModel(t *testing.T) {
	cfg := Config{
		Models: map[string]*Model{
			"beta":  {Name: "beta", ModelType: TypeOpenAI},
			"alpha": {Name: "alpha", ModelType: TypeOpenAI},
		},
		ActiveModel: "gone",
	}
	require.NoError(t, cfg.Validate())

	// First remaining name in sorted order.
	assert.Equal(t, "alpha", cfg.ActiveModel)
}

func TestValidateFillsSelectedModel(t *testing.T) {
	cfg := Config{
		Models: map[string]*Model{
			"m": {Name: "m", Models: []string{"id-1", "id-2"}},
		},
	}
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "id-1", cfg.Models["m"].SelectedModel)
	assert.Equal(t, TypeGeneric, cfg.Models["m"].ModelType)
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summarizer_config.json")

	cfg := Default()
	cfg.SummaryLength = 120
	cfg.Directory = "/notes"
	cfg.Models["claude"] = &Model{
		Name:          "claude",
		BaseURL:       "https://api.anthropic.com",
		APIKeyName:    "CLAUDE_API_KEY",
		Models:        []string{"claude-sonnet-4-20250514"},
		SelectedModel: "claude-sonnet-4-20250514",
		ModelType:     TypeAnthropic,
	}
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 120, loaded.SummaryLength)
	assert.Equal(t, "/notes", loaded.Directory)
	assert.Equal(t, cfg.ActiveModel, loaded.ActiveModel)
	require.Len(t, loaded.Models, 2)
	assert.Equal(t, cfg.Models["claude"], loaded.Models["claude"])
	assert.Equal(t, cfg.Models["deepseek"], loaded.Models["deepseek"])
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.json"))

	assert.Error(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, 200, cfg.SummaryLength)
}

func TestLoadMalformedFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	cfg, err := Load(path)

	assert.Error(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "deepseek", cfg.ActiveModel)
}

func TestResolveAPIKey(t *testing.T) {
	m := &Model{APIKey: "stored-key", APIKeyName: "ARTICLEGPT_TEST_KEY"}
	assert.Equal(t, "stored-key", m.ResolveAPIKey())

	m.APIKey = ""
	t.Setenv("ARTICLEGPT_TEST_KEY", "env-key")
	assert.Equal(t, "env-key", m.ResolveAPIKey())
}
