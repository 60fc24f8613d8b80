package processor

import (
	"github.com/tranquocbao1210/verse-deck/internal/config"
	"github.com/tranquocbao1210/verse-deck/internal/logger"
	"github.com/tranquocbao1210/verse-deck/internal/merger"
)

type implProcessor struct {
	cfg    *config.Config
	merger merger.Merger
	logger logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, m merger.Merger, log logger.Logger) Processor {
	return &implProcessor{
		cfg:    cfg,
		merger: m,
		logger: log,
	}
}
