// Package merge combines per-site font reports into one deduplicated report.
package merge

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/go-scripts/fontcheck/internal/progress"
	"github.com/go-scripts/fontcheck/internal/reader"
	"github.com/go-scripts/fontcheck/internal/types"
	"github.com/go-scripts/fontcheck/internal/writer"
)

// ErrCancelled is returned when the run is interrupted before the report is written
var ErrCancelled = errors.New("operation cancelled by user")

// Configuration holds the merge settings
type Configuration struct {
	ResultsDir string
	OutputFile string
	Encodings  []string
	// Progress receives the file progress bar. Nil disables it.
	Progress io.Writer
}

// Result reports what a merge run did
type Result struct {
	Dir            string
	Files          []string
	SitesProcessed int
	RowsBefore     int
	Records        []types.FontRecord
	Written        bool
	Summary        writer.Summary
}

// DuplicatesRemoved is the number of rows folded into another row
func (r Result) DuplicatesRemoved() int {
	return r.RowsBefore - len(r.Records)
}

// Merger runs the merge pipeline
type Merger struct {
	config Configuration
	reader *reader.Reader
	logger *log.Logger
}

// New creates a Merger
func New(config Configuration, logger *log.Logger) (*Merger, error) {
	if logger == nil {
		logger = log.Default()
	}
	r, err := reader.New(config.Encodings, logger)
	if err != nil {
		return nil, err
	}
	return &Merger{config: config, reader: r, logger: logger}, nil
}

// FindInputs returns the CSV files in dir sorted by name, excluding outputFile
func FindInputs(dir, outputFile string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return nil, fmt.Errorf("failed to list CSV files: %w", err)
	}

	outputPath, err := filepath.Abs(filepath.Join(dir, outputFile))
	if err != nil {
		return nil, err
	}

	files := make([]string, 0, len(matches))
	for _, m := range matches {
		abs, err := filepath.Abs(m)
		if err != nil {
			return nil, err
		}
		if abs == outputPath {
			continue
		}
		files = append(files, m)
	}
	slices.Sort(files)
	return files, nil
}

// resolveDir falls back to the current directory when the results directory is missing
func (m *Merger) resolveDir() string {
	dir := m.config.ResultsDir
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		m.logger.Warn("Results directory not found, using current directory", "dir", dir)
		return "."
	}
	return dir
}

// Run merges every input file and writes the report. A run that finds no
// input files or no data rows returns a Result with Written false and no error.
func (m *Merger) Run(ctx context.Context) (Result, error) {
	res := Result{Dir: m.resolveDir()}

	files, err := FindInputs(res.Dir, m.config.OutputFile)
	if err != nil {
		return res, err
	}
	res.Files = files
	if len(files) == 0 {
		m.logger.Info("No CSV files found", "dir", res.Dir)
		return res, nil
	}

	m.logger.Info("Found CSV files to merge", "count", len(files))
	for _, f := range files {
		m.logger.Debug("Input file", "file", filepath.Base(f))
	}

	tracker := progress.New(m.config.Progress, len(files))
	var all [][]string
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("%w: %w", ErrCancelled, err)
		}

		rows := m.processFile(file)
		tracker.Increment(filepath.Base(file))
		if rows == nil {
			continue
		}
		all = append(all, rows.normalized...)
		res.RowsBefore += rows.raw
		res.SitesProcessed++
	}

	if len(all) == 0 {
		m.logger.Info("No data to merge")
		return res, nil
	}

	res.Records = Dedupe(all)
	m.logger.Info("Deduplicated fonts",
		"before", res.RowsBefore,
		"after", len(res.Records),
		"removed", res.DuplicatesRemoved())

	if err := ctx.Err(); err != nil {
		return res, fmt.Errorf("%w: %w", ErrCancelled, err)
	}

	w, err := writer.New(res.Dir)
	if err != nil {
		return res, fmt.Errorf("error writing output file: %w", err)
	}
	summary, err := w.WriteReport(m.config.OutputFile, types.Header(), res.Records)
	if err != nil {
		return res, fmt.Errorf("error writing output file: %w", err)
	}
	if err := ctx.Err(); err != nil {
		os.Remove(summary.Path)
		return res, fmt.Errorf("%w: %w", ErrCancelled, err)
	}
	res.Summary = summary
	res.Written = true
	return res, nil
}

type fileRows struct {
	raw        int
	normalized [][]string
}

// processFile reads and normalizes one input file. It returns nil when the
// file contributes nothing.
func (m *Merger) processFile(file string) *fileRows {
	site := SiteFromPath(file)
	logger := m.logger.With("file", filepath.Base(file), "site", site)

	header, rows, err := m.reader.Read(file)
	if err != nil || len(header) == 0 {
		logger.Warn("Skipped: empty or unreadable file", "error", err)
		return nil
	}

	shape := CheckHeader(header)
	switch shape {
	case HeaderWithSite, HeaderWithoutSite:
		logger.Debug("Headers OK", "shape", shape)
	default:
		logger.Warn("Unexpected header format, attempting to proceed anyway",
			"expected", strings.Join(types.Header(), ","),
			"found", strings.Join(header, ","))
	}

	if len(rows) == 0 {
		logger.Warn("Skipped: no data rows found")
		return nil
	}

	out := &fileRows{raw: len(rows), normalized: make([][]string, 0, len(rows))}
	for i, row := range rows {
		norm, ok := Normalize(row, site, shape == HeaderWithSite)
		if !ok {
			logger.Warn("Skipped row without font name", "row", i+1)
			continue
		}
		out.normalized = append(out.normalized, norm)
	}
	logger.Info("Added fonts", "count", len(rows))
	return out
}
