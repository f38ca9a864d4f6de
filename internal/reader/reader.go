// Package reader loads font report CSV files written in any of a fixed list
// of text encodings.
package reader

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

var (
	// ErrEmpty is returned for a file with no records at all.
	ErrEmpty = errors.New("file is empty")
	// ErrUndecodable is returned when no configured encoding could read the file.
	ErrUndecodable = errors.New("could not read file with any encoding")
)

// Reader reads CSV files, trying each decoder in order
type Reader struct {
	decoders []Decoder
	logger   *log.Logger
}

// New creates a Reader for the given encoding names
func New(encodings []string, logger *log.Logger) (*Reader, error) {
	decs, err := Decoders(encodings)
	if err != nil {
		return nil, err
	}
	if len(decs) == 0 {
		return nil, errors.New("at least one encoding is required")
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Reader{decoders: decs, logger: logger}, nil
}

// Read returns the header and the non-blank data rows of the file at path.
// The first decoder that both decodes the bytes and yields valid CSV wins.
func (r *Reader) Read(path string) ([]string, [][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	for _, dec := range r.decoders {
		text, err := dec.Decode(data)
		if err != nil {
			r.logger.Debug("Decoding failed", "file", path, "encoding", dec.Name, "error", err)
			continue
		}

		records, err := parse(text)
		if err != nil {
			r.logger.Warn("Error reading file", "file", path, "encoding", dec.Name, "error", err)
			continue
		}
		if len(records) == 0 {
			return nil, nil, ErrEmpty
		}

		r.logger.Debug("Decoded file", "file", path, "encoding", dec.Name)
		return records[0], dropBlank(records[1:]), nil
	}

	return nil, nil, ErrUndecodable
}

func parse(text []byte) ([][]string, error) {
	cr := csv.NewReader(bytes.NewReader(text))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var records [][]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// dropBlank removes rows whose fields are all empty or whitespace
func dropBlank(rows [][]string) [][]string {
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		if !isBlank(row) {
			out = append(out, row)
		}
	}
	return out
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
