package merger

import (
	"github.com/tranquocbao1210/verse-deck/internal/logger"
)

type implMerger struct {
	style  Style
	logger logger.Logger
}

// New creates a new Merger instance with a fixed style for the run.
func New(style Style, log logger.Logger) Merger {
	return &implMerger{
		style:  style,
		logger: log,
	}
}
