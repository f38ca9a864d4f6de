// Command extract loads one page in headless Chrome and writes the fonts it
// uses to <results-dir>/<host>.csv.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/go-scripts/fontcheck/internal/config"
	"github.com/go-scripts/fontcheck/internal/extract"
	"github.com/go-scripts/fontcheck/ui"
)

// CLIFlags holds the command line flags
type CLIFlags struct {
	URL        string        `arg:"" optional:"" help:"Page to extract fonts from (defaults to the configured URL)"`
	ConfigFile string        `help:"Path to YAML configuration file" short:"c" type:"path"`
	ResultsDir string        `help:"Directory for the per-site CSV" short:"o"`
	WaitTime   time.Duration `help:"Settle delay after the page is ready" short:"w"`
	Timeout    time.Duration `help:"Timeout for loading and evaluating the page"`
	ExecPath   string        `help:"Chrome binary to use instead of auto-discovery"`
	Verbose    bool          `help:"Enable debug logging" short:"v"`
}

// browserFactory opens the browser used for the page load
type browserFactory func(ctx context.Context, cfg extract.ChromeConfig, logger *log.Logger) (extract.Browser, func(), error)

func chromeFactory(ctx context.Context, cfg extract.ChromeConfig, logger *log.Logger) (extract.Browser, func(), error) {
	b, err := extract.NewChromeBrowser(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return b, b.Close, nil
}

// loadConfig merges the config file with the flags that were set
func loadConfig(flags CLIFlags) (*config.Configuration, error) {
	cfg, err := config.Load(flags.ConfigFile)
	if err != nil {
		return nil, err
	}
	if flags.ResultsDir != "" {
		cfg.ResultsDir = flags.ResultsDir
	}
	if flags.WaitTime != 0 {
		cfg.WaitTime = flags.WaitTime
	}
	if flags.Timeout != 0 {
		cfg.Timeout = flags.Timeout
	}
	if flags.Verbose {
		cfg.Verbose = true
	}
	return cfg, cfg.Validate()
}

func run(ctx context.Context, flags CLIFlags, newBrowser browserFactory, stderr io.Writer) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}
	logger := ui.NewLogger(stderr, "extract", cfg.Verbose)

	targetURL := flags.URL
	if targetURL == "" {
		targetURL = cfg.DefaultURL
	}

	browser, closeBrowser, err := newBrowser(ctx, extract.ChromeConfig{
		WaitTime: cfg.WaitTime,
		Timeout:  cfg.Timeout,
		ExecPath: flags.ExecPath,
	}, logger)
	if err != nil {
		return err
	}
	defer closeBrowser()

	extractor := extract.New(extract.Configuration{
		ResultsDir:   cfg.ResultsDir,
		GenericFonts: cfg.GenericFonts,
		SystemFonts:  cfg.SystemFonts,
		Progress:     stderr,
	}, browser, logger)

	res, err := extractor.Run(ctx, targetURL)
	if err != nil {
		return err
	}

	summary := ui.Summary{Title: "Font audit complete!"}
	summary.Add("Results saved to", res.Summary.Path)
	summary.Add("Total fonts found", len(res.Records))
	fmt.Fprintln(stderr, summary.View())
	return nil
}

func main() {
	var flags CLIFlags
	kong.Parse(&flags,
		kong.Name("extract"),
		kong.Description("Extract the fonts used by a web page into a CSV report."),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, flags, chromeFactory, os.Stderr); err != nil {
		log.Error("Font extraction failed", "error", err)
		stop()
		os.Exit(1)
	}
}
