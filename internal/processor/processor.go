package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tranquocbao1210/verse-deck/internal/merger"
)

// Process reformats one dropped-in file through the merge pipeline: read,
// merge as a single-item run, write the restyled deck to the output folder,
// then archive the original.
func (p *implProcessor) Process(ctx context.Context, sourcePath string) error {
	startTime := time.Now()
	originalFilename := filepath.Base(sourcePath)

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Reformatting: %s", sourcePath)
	p.logger.Info(ctx, "========================================")

	item, err := ItemFromFile(sourcePath)
	if err != nil {
		return fmt.Errorf("load source: %w", err)
	}

	out, err := p.merger.Merge(ctx, []merger.SourceItem{item})
	if err != nil {
		return fmt.Errorf("merge: %w", err)
	}

	stem := strings.TrimSuffix(originalFilename, filepath.Ext(originalFilename))
	outputPath := filepath.Join(p.cfg.Paths.Output, stem+"_formatted.pptx")
	if err := os.WriteFile(outputPath, out, 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if err := p.moveToArchived(ctx, sourcePath); err != nil {
		p.logger.Warn(ctx, "Failed to move original to archived folder: %v", err)
	}

	duration := time.Since(startTime)
	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Reformatting completed successfully!")
	p.logger.Info(ctx, "Output deck: %s", outputPath)
	p.logger.Info(ctx, "Processing time: %s", duration)
	p.logger.Info(ctx, "========================================")

	return nil
}

// ItemFromFile reads a source file and tags it by extension: .pptx is a
// deck, .txt/.text is a script.
func ItemFromFile(path string) (merger.SourceItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return merger.SourceItem{}, fmt.Errorf("read %s: %w", path, err)
	}

	name := filepath.Base(path)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pptx":
		return merger.SourceItem{Name: name, Kind: merger.SourceDeck, Data: data}, nil
	case ".txt", ".text":
		return merger.SourceItem{Name: name, Kind: merger.SourceScript, Data: data}, nil
	default:
		return merger.SourceItem{}, fmt.Errorf("%s: unsupported file type %q", name, filepath.Ext(path))
	}
}

func (p *implProcessor) moveToArchived(ctx context.Context, sourcePath string) error {
	archivedPath := filepath.Join(p.cfg.Paths.Archived, filepath.Base(sourcePath))
	if err := os.Rename(sourcePath, archivedPath); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}
	p.logger.Debug(ctx, "Archived original: %s", archivedPath)
	return nil
}
