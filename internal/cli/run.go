package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/avasilyev/tredit/internal/export"
	"github.com/avasilyev/tredit/internal/pipeline"
)

func run(cmd *cobra.Command, input string) error {
	outDir, _ := cmd.Flags().GetString("out")
	formatNames, _ := cmd.Flags().GetStringSlice("format")
	withTimestamps, _ := cmd.Flags().GetBool("timestamps")
	verbose, _ := cmd.Flags().GetBool("verbose")

	if !cmd.Flags().Changed("out") {
		outDir = getenvDefault("TREDIT_OUT", outDir)
	}

	formats, err := export.ParseFormats(formatNames)
	if err != nil {
		return err
	}

	absIn, err := filepath.Abs(input)
	if err != nil {
		return err
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	cfg := pipeline.Config{
		Input:             absIn,
		OutDir:            outDir,
		Formats:           formats,
		IncludeTimestamps: withTimestamps,
		Logger:            log,
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	_, err = pipeline.Run(ctx, cfg)
	return err
}

func getenvDefault(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
