// Command merge combines the per-site font CSVs of a results directory into
// one deduplicated all-sites report.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/go-scripts/fontcheck/internal/config"
	"github.com/go-scripts/fontcheck/internal/merge"
	"github.com/go-scripts/fontcheck/internal/types"
	"github.com/go-scripts/fontcheck/internal/writer"
	"github.com/go-scripts/fontcheck/ui"
)

// CLIFlags holds the command line flags
type CLIFlags struct {
	ConfigFile string `help:"Path to YAML configuration file" short:"c" type:"path"`
	ResultsDir string `help:"Directory containing the per-site CSV files" short:"d"`
	OutputFile string `help:"Merged report file name inside the results directory" short:"o"`
	Verbose    bool   `help:"Enable debug logging" short:"v"`
}

func loadConfig(flags CLIFlags) (*config.Configuration, error) {
	cfg, err := config.Load(flags.ConfigFile)
	if err != nil {
		return nil, err
	}
	if flags.ResultsDir != "" {
		cfg.ResultsDir = flags.ResultsDir
	}
	if flags.OutputFile != "" {
		cfg.OutputFile = flags.OutputFile
	}
	if flags.Verbose {
		cfg.Verbose = true
	}
	return cfg, cfg.Validate()
}

func run(ctx context.Context, flags CLIFlags, stderr io.Writer) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}
	logger := ui.NewLogger(stderr, "merge", cfg.Verbose)
	logger.Info("Font CSV Merger (with Deduplication)")

	m, err := merge.New(merge.Configuration{
		ResultsDir: cfg.ResultsDir,
		OutputFile: cfg.OutputFile,
		Encodings:  cfg.Encodings,
		Progress:   stderr,
	}, logger)
	if err != nil {
		return err
	}

	res, err := m.Run(ctx)
	if err != nil {
		return err
	}
	if !res.Written {
		return nil
	}

	outputPath, err := filepath.Abs(res.Summary.Path)
	if err != nil {
		outputPath = res.Summary.Path
	}
	summary := ui.Summary{Title: "Merged CSV created!"}
	summary.Add("Output file", outputPath)
	summary.Add("Unique fonts", len(res.Records))
	summary.Add("Sites processed", res.SitesProcessed)
	summary.Add("Columns", strings.Join(types.Header(), ", "))
	summary.Add("Output file size", writer.FormatSize(res.Summary.Bytes))
	fmt.Fprintln(stderr, summary.View())
	return nil
}

func main() {
	var flags CLIFlags
	kong.Parse(&flags,
		kong.Name("merge"),
		kong.Description("Merge per-site font CSV reports into one deduplicated report."),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, flags, os.Stderr); err != nil {
		if errors.Is(err, merge.ErrCancelled) {
			log.Error("Operation cancelled by user")
		} else {
			log.Error("Merge failed", "error", err)
		}
		stop()
		os.Exit(1)
	}
}
