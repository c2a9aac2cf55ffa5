package processor

import (
	"context"
	"os"
)

// Process reads the file, replaces any prior summary block with a freshly
// generated one, and writes the result back. The file is only rewritten
// after a summary has been obtained.
func (p *implProcessor) Process(ctx context.Context, path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		p.logger.Error(ctx, "❌ Failed to process %s: %v", path, err)
		return false
	}

	content := stripFrontMatter(string(data))

	model, err := p.models.Active()
	if err != nil {
		p.logger.Error(ctx, "❌ Failed to process %s: %v", path, err)
		return false
	}
	p.logger.Debug(ctx, "Using model: %s", model.Name())

	summary, err := model.GenerateSummary(ctx, content, p.cfg.SummaryLength, p.cfg.PromptTemplate)
	if err != nil {
		p.logger.Error(ctx, "❌ Failed to process %s: %v", path, err)
		return false
	}

	if err := os.WriteFile(path, []byte(composeFrontMatter(summary, content)), 0644); err != nil {
		p.logger.Error(ctx, "❌ Failed to process %s: %v", path, err)
		return false
	}

	p.logger.Info(ctx, "✅ Processed: %s", path)
	return true
}
