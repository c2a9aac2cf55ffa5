package processor

import (
	"github.com/nguyentantai21042004/articlegpt/internal/config"
	"github.com/nguyentantai21042004/articlegpt/internal/logger"
)

type implProcessor struct {
	cfg    *config.Config
	models ModelSource
	logger logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, models ModelSource, log logger.Logger) Processor {
	return &implProcessor{
		cfg:    cfg,
		models: models,
		logger: log,
	}
}
