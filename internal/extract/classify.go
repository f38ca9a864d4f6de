package extract

import (
	"slices"
	"strings"

	"github.com/go-scripts/fontcheck/internal/types"
)

// Classifier assigns a FontType using fixed generic and system font tables
type Classifier struct {
	generic map[string]bool
	system  map[string]bool
}

// NewClassifier builds a Classifier from the given font name lists
func NewClassifier(genericFonts, systemFonts []string) *Classifier {
	c := &Classifier{
		generic: make(map[string]bool, len(genericFonts)),
		system:  make(map[string]bool, len(systemFonts)),
	}
	for _, f := range genericFonts {
		c.generic[f] = true
	}
	for _, f := range systemFonts {
		c.system[f] = true
	}
	return c
}

// SourceMap groups font-face sources by family
func SourceMap(sources []types.FontFaceSource) map[string][]types.FontFaceSource {
	m := make(map[string][]types.FontFaceSource)
	for _, s := range sources {
		m[s.Family] = append(m[s.Family], s)
	}
	return m
}

// Type classifies font. Generic families win, then known system fonts, then
// any family declared by @font-face is Primary. Everything else is Fallback.
func (c *Classifier) Type(font string, sources map[string][]types.FontFaceSource) types.FontType {
	switch {
	case c.generic[font]:
		return types.Generic
	case c.system[font]:
		return types.Fallback
	case len(sources[font]) > 0:
		return types.Primary
	default:
		return types.Fallback
	}
}

// Formats returns the sorted distinct formats declared for font joined with
// ", ", or N/A when none are known.
func Formats(font string, sources map[string][]types.FontFaceSource) string {
	var formats []string
	for _, s := range sources[font] {
		if !slices.Contains(formats, s.Format) {
			formats = append(formats, s.Format)
		}
	}
	if len(formats) == 0 {
		return types.NoFormats
	}
	slices.Sort(formats)
	return strings.Join(formats, ", ")
}

// BuildRecords creates one report row per font. Description and Source are
// left empty for manual research.
func (c *Classifier) BuildRecords(fonts []string, sources []types.FontFaceSource, site string) []types.FontRecord {
	m := SourceMap(sources)
	records := make([]types.FontRecord, 0, len(fonts))
	for _, font := range fonts {
		records = append(records, types.FontRecord{
			FontName: font,
			Type:     string(c.Type(font, m)),
			Formats:  Formats(font, m),
			Site:     site,
		})
	}
	return records
}
