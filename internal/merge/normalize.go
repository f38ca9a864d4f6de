package merge

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-scripts/fontcheck/internal/types"
)

// HeaderShape describes how an input file's header relates to the report columns
type HeaderShape int

const (
	HeaderUnexpected HeaderShape = iota
	HeaderWithoutSite
	HeaderWithSite
)

// String returns a human readable shape name
func (h HeaderShape) String() string {
	switch h {
	case HeaderWithSite:
		return "with site"
	case HeaderWithoutSite:
		return "without site"
	default:
		return "unexpected"
	}
}

// CheckHeader classifies a header row. Only exact matches count.
func CheckHeader(header []string) HeaderShape {
	switch {
	case slices.Equal(header, types.Header()):
		return HeaderWithSite
	case slices.Equal(header, types.HeaderWithoutSite()):
		return HeaderWithoutSite
	default:
		return HeaderUnexpected
	}
}

// SiteFromPath derives a site identifier from a file name by dropping its extension
func SiteFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Normalize shapes a raw data row into the six report columns.
// With hasSite the sixth field is kept as the site, otherwise site is appended
// after the first five fields. The second result is false when the font name
// is empty after trimming.
func Normalize(row []string, site string, hasSite bool) ([]string, bool) {
	width := len(types.Header())
	if !hasSite {
		width = len(types.HeaderWithoutSite())
	}

	out := make([]string, width, len(types.Header()))
	copy(out, row)
	if !hasSite {
		out = append(out, site)
	}

	if strings.TrimSpace(out[0]) == "" {
		return nil, false
	}
	return out, true
}
