package extract

import (
	"regexp"
	"slices"
	"strings"

	"github.com/go-scripts/fontcheck/internal/types"
)

// FontFaceRule is the raw family and src text of one @font-face rule
type FontFaceRule struct {
	Family string `json:"family"`
	Src    string `json:"src"`
}

// Snapshot is the font data read from a rendered page
type Snapshot struct {
	// Families holds computed font-family values, one per distinct value.
	Families  []string       `json:"families"`
	FontFaces []FontFaceRule `json:"fontFaces"`
}

var (
	srcEntryRE = regexp.MustCompile(`url\(['"]?([^'")]+)['"]?\)(?:\s+format\(['"]?([^'")]+)['"]?\))?`)
	quoteStrip = strings.NewReplacer(`'`, "", `"`, "")
)

// stripQuotes removes every single and double quote from s
func stripQuotes(s string) string {
	return quoteStrip.Replace(s)
}

// ParseSrc returns one FontFaceSource per url(...) entry of an @font-face src value
func ParseSrc(family, src string) []types.FontFaceSource {
	var out []types.FontFaceSource
	for _, m := range srcEntryRE.FindAllStringSubmatch(src, -1) {
		format := m[2]
		if format == "" {
			format = types.UnknownFormat
		}
		out = append(out, types.FontFaceSource{Family: family, URL: m[1], Format: format})
	}
	return out
}

// Collect turns a snapshot into the sorted distinct font names and the
// parsed @font-face sources.
func Collect(s Snapshot) ([]string, []types.FontFaceSource) {
	set := make(map[string]struct{})
	for _, value := range s.Families {
		for _, part := range strings.Split(value, ",") {
			if name := strings.TrimSpace(stripQuotes(part)); name != "" {
				set[name] = struct{}{}
			}
		}
	}

	var sources []types.FontFaceSource
	for _, rule := range s.FontFaces {
		family := strings.TrimSpace(stripQuotes(rule.Family))
		if family == "" {
			continue
		}
		set[family] = struct{}{}
		sources = append(sources, ParseSrc(family, rule.Src)...)
	}

	fonts := make([]string, 0, len(set))
	for name := range set {
		fonts = append(fonts, name)
	}
	slices.Sort(fonts)
	return fonts, sources
}
