package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/avasilyev/tredit/internal/domain/richtext"
	"github.com/avasilyev/tredit/internal/domain/transcript"
	"github.com/avasilyev/tredit/internal/export"
	"github.com/avasilyev/tredit/internal/types"
)

type Config struct {
	// Input is a flat-text transcript or a JSON segment payload; the
	// extension decides which parser runs.
	Input   string
	OutDir  string
	Formats []export.Format

	IncludeTimestamps bool

	// Logger receives diagnostics; nil means the standard logger.
	Logger *logrus.Logger
}

func (c Config) Validate() error {
	if c.Input == "" {
		return errors.New("input is empty")
	}
	if _, err := os.Stat(c.Input); err != nil {
		return fmt.Errorf("stat input: %w", err)
	}
	if len(c.Formats) == 0 {
		return errors.New("at least one export format is required")
	}
	return nil
}

// Run loads the transcript and writes one file per requested format into
// OutDir, named after the input file. It returns the written paths.
func Run(ctx context.Context, cfg Config) ([]string, error) {
	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	transcript.SetLogger(log)
	richtext.SetLogger(log)

	segs, err := load(cfg.Input)
	if err != nil {
		return nil, err
	}
	if len(segs) == 0 {
		return nil, fmt.Errorf("no segments in %s", cfg.Input)
	}
	log.WithFields(logrus.Fields{"segments": len(segs), "input": cfg.Input}).Info("transcript loaded")

	outDir := cfg.OutDir
	if outDir == "" {
		outDir = "out"
	}
	base := strings.TrimSuffix(filepath.Base(cfg.Input), filepath.Ext(cfg.Input))

	paths, err := export.Files(ctx, outDir, base, segs, cfg.Formats, cfg.IncludeTimestamps)
	if err != nil {
		return nil, err
	}
	for _, p := range paths {
		log.WithField("file", p).Info("export written")
	}
	return paths, nil
}

func load(path string) ([]types.Segment, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return transcript.DecodePayload(raw)
	}
	return transcript.Parse(string(raw)), nil
}
