// Package extract loads a page in a headless browser, classifies the fonts
// it uses and writes them as a per-site report.
package extract

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/log"

	"github.com/go-scripts/fontcheck/internal/types"
	"github.com/go-scripts/fontcheck/internal/writer"
)

// Configuration holds the extraction settings
type Configuration struct {
	ResultsDir   string
	GenericFonts []string
	SystemFonts  []string
	// Progress receives the page load spinner. Nil disables it.
	Progress io.Writer
}

// Result reports the outcome of one extraction
type Result struct {
	URL     string
	Site    string
	Records []types.FontRecord
	Sources []types.FontFaceSource
	Summary writer.Summary
}

// Extractor runs one page through the browser and writes its report
type Extractor struct {
	config     Configuration
	browser    Browser
	classifier *Classifier
	logger     *log.Logger
}

// New creates an Extractor using browser for page loads
func New(config Configuration, browser Browser, logger *log.Logger) *Extractor {
	if logger == nil {
		logger = log.Default()
	}
	return &Extractor{
		config:     config,
		browser:    browser,
		classifier: NewClassifier(config.GenericFonts, config.SystemFonts),
		logger:     logger,
	}
}

// NormalizeURL adds an https scheme to bare host names
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw != "" && !strings.Contains(raw, "://") {
		return "https://" + raw
	}
	return raw
}

// SiteFromURL returns the URL host, port included, without a leading "www."
func SiteFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid URL %q: %w", raw, err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("invalid URL %q: missing host", raw)
	}
	return strings.TrimPrefix(u.Host, "www."), nil
}

// Run extracts the fonts of targetURL and writes <site>.csv into the results directory
func (e *Extractor) Run(ctx context.Context, targetURL string) (Result, error) {
	targetURL = NormalizeURL(targetURL)
	site, err := SiteFromURL(targetURL)
	if err != nil {
		return Result{}, err
	}
	res := Result{URL: targetURL, Site: site}

	e.logger.Info("Extracting fonts", "url", targetURL)
	snap, err := e.snapshot(ctx, targetURL)
	if err != nil {
		return res, err
	}

	fonts, sources := Collect(snap)
	res.Sources = sources
	res.Records = e.classifier.BuildRecords(fonts, sources, site)
	e.logger.Debug("Collected fonts", "fonts", len(fonts), "sources", len(sources))

	w, err := writer.New(e.config.ResultsDir)
	if err != nil {
		return res, err
	}
	summary, err := w.WriteSiteReport(site, res.Records)
	if err != nil {
		return res, fmt.Errorf("error writing results: %w", err)
	}
	res.Summary = summary
	return res, nil
}

// snapshot loads the page, showing a spinner while the browser works
func (e *Extractor) snapshot(ctx context.Context, targetURL string) (Snapshot, error) {
	if e.config.Progress == nil {
		return e.browser.Snapshot(ctx, targetURL)
	}

	s := spinner.New(spinner.CharSets[9], 100*time.Millisecond, spinner.WithWriter(e.config.Progress))
	s.Suffix = " Navigating to " + targetURL
	s.Start()
	defer s.Stop()
	return e.browser.Snapshot(ctx, targetURL)
}
