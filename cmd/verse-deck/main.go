package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tranquocbao1210/verse-deck/internal/config"
	"github.com/tranquocbao1210/verse-deck/internal/imaging"
	"github.com/tranquocbao1210/verse-deck/internal/logger"
	"github.com/tranquocbao1210/verse-deck/internal/merger"
	"github.com/tranquocbao1210/verse-deck/internal/processor"
	"github.com/tranquocbao1210/verse-deck/internal/watcher"
)

const maxConcurrent = 2

func main() {
	ctx := context.Background()

	configPath := flag.String("config", "config.yaml", "path to the YAML configuration file")
	outPath := flag.String("out", "", "output deck path (one-shot mode, overrides config)")
	watchMode := flag.Bool("watch", false, "monitor the input directory and reformat new files")
	template := flag.String("template", "", "write a template artifact and exit: deck or script")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)

	style, err := buildStyle(cfg)
	if err != nil {
		log.Error(ctx, "Failed to build style: %v", err)
		os.Exit(1)
	}

	if *template != "" {
		if err := writeTemplate(*template, style); err != nil {
			log.Error(ctx, "Failed to write template: %v", err)
			os.Exit(1)
		}
		return
	}

	m := merger.New(style, log)

	if *watchMode {
		runWatch(ctx, cfg, m, log)
		return
	}

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Usage: verse-deck [flags] <deck.pptx|script.txt> ...")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if err := runMerge(ctx, cfg, m, log, flag.Args(), *outPath); err != nil {
		log.Error(ctx, "Merge failed: %v", err)
		os.Exit(1)
	}
}

// buildStyle resolves the config into a run style, loading and resizing the
// background image once so every slide shares the same bytes.
func buildStyle(cfg *config.Config) (merger.Style, error) {
	style := merger.DefaultStyle()

	titleColor, err := config.ParseColor(cfg.Style.TitleColor)
	if err != nil {
		return merger.Style{}, err
	}
	verseColor, err := config.ParseColor(cfg.Style.VerseColor)
	if err != nil {
		return merger.Style{}, err
	}

	style.TitleColor = titleColor
	style.VerseColor = verseColor
	style.TitleFont = cfg.Style.TitleFont
	style.VerseFont = cfg.Style.VerseFont
	style.TitleSize = cfg.Style.TitleFontSize
	style.VerseSize = cfg.Style.VerseFontSize

	if cfg.Style.BackgroundImage != "" {
		data, err := os.ReadFile(cfg.Style.BackgroundImage)
		if err != nil {
			return merger.Style{}, fmt.Errorf("read background image: %w", err)
		}
		style.Background = imaging.Fit(data, imaging.BackgroundWidth, imaging.BackgroundHeight)
	}

	return style, nil
}

// runMerge is the one-shot mode: merge the ordered file arguments into a
// single output deck.
func runMerge(ctx context.Context, cfg *config.Config, m merger.Merger, log logger.Logger, args []string, outPath string) error {
	items := make([]merger.SourceItem, 0, len(args))
	for _, arg := range args {
		item, err := processor.ItemFromFile(arg)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	out, err := m.Merge(ctx, items)
	if err != nil {
		return err
	}

	if outPath == "" {
		outPath = cfg.Output.Filename
	}
	if err := os.WriteFile(outPath, out, 0644); err != nil {
		return fmt.Errorf("write output deck: %w", err)
	}

	log.Info(ctx, "Output deck written: %s", outPath)
	return nil
}

// runWatch is the daemon mode: reformat every deck or script dropped into
// the input directory until interrupted.
func runWatch(ctx context.Context, cfg *config.Config, m merger.Merger, log logger.Logger) {
	log.Info(ctx, "========================================")
	log.Info(ctx, "Verse Deck Reformatting Pipeline")
	log.Info(ctx, "========================================")

	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	proc := processor.New(cfg, m, log)

	w, err := watcher.New(cfg.Paths.Input, proc.Process, log, maxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Press Ctrl+C to stop")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	log.Info(ctx, "Shutting down gracefully...")
	cancel()

	log.Info(ctx, "Pipeline stopped")
}

// writeTemplate exports a style-preview deck or an example script.
func writeTemplate(kind string, style merger.Style) error {
	switch kind {
	case "deck":
		out, err := merger.TemplateDeck(style)
		if err != nil {
			return err
		}
		return os.WriteFile("template_presentation.pptx", out, 0644)
	case "script":
		return os.WriteFile("template_script.txt", []byte(merger.ScriptTemplate), 0644)
	default:
		return fmt.Errorf("unknown template kind %q (want deck or script)", kind)
	}
}

// ensureDirectories creates the watch-mode directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
