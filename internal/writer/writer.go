package writer

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-scripts/fontcheck/internal/types"
)

// Summary describes a written report
type Summary struct {
	Path    string
	Bytes   int64
	Records int
}

// FileWriter writes font reports into a directory
type FileWriter struct {
	outputDir string
}

// New creates a FileWriter, creating outputDir if it does not exist
func New(outputDir string) (*FileWriter, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &FileWriter{outputDir: outputDir}, nil
}

// WriteReport writes header and records to name inside the output directory.
// The file appears only once every row has been written.
func (w *FileWriter) WriteReport(name string, header []string, records []types.FontRecord) (Summary, error) {
	path := filepath.Join(w.outputDir, name)

	tmp, err := os.CreateTemp(w.outputDir, "."+name+".*.tmp")
	if err != nil {
		return Summary{}, fmt.Errorf("failed to create file: %w", err)
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	cw := csv.NewWriter(tmp)
	cw.UseCRLF = true
	if err := cw.Write(header); err != nil {
		return Summary{}, fmt.Errorf("failed to write header: %w", err)
	}
	for _, rec := range records {
		if err := cw.Write(rec.Row()); err != nil {
			return Summary{}, fmt.Errorf("failed to write record %q: %w", rec.FontName, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return Summary{}, fmt.Errorf("failed to flush report: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return Summary{}, fmt.Errorf("failed to close report: %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return Summary{}, fmt.Errorf("failed to set report permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return Summary{}, fmt.Errorf("failed to move report into place: %w", err)
	}
	committed = true

	info, err := os.Stat(path)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to stat report: %w", err)
	}
	return Summary{Path: path, Bytes: info.Size(), Records: len(records)}, nil
}

// WriteSiteReport writes the report of a single site as <site>.csv
func (w *FileWriter) WriteSiteReport(site string, records []types.FontRecord) (Summary, error) {
	return w.WriteReport(sanitizeFilename(site)+".csv", types.Header(), records)
}

// FormatSize renders a byte count as bytes, KB or MB
func FormatSize(n int64) string {
	switch {
	case n < 1024:
		return fmt.Sprintf("%d bytes", n)
	case n < 1024*1024:
		return fmt.Sprintf("%.2f KB", float64(n)/1024)
	default:
		return fmt.Sprintf("%.2f MB", float64(n)/(1024*1024))
	}
}

// sanitizeFilename replaces characters that are unsafe in file names
func sanitizeFilename(name string) string {
	unsafe := []string{"/", "\\", ":", "*", "?", "\"", "<", ">", "|", " "}
	for _, char := range unsafe {
		name = strings.ReplaceAll(name, char, "_")
	}
	if name == "" {
		name = "index"
	}
	return name
}
