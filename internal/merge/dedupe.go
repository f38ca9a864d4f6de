package merge

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/go-scripts/fontcheck/internal/types"
)

// siteSeparator joins the sites that reported the same font
const siteSeparator = ", "

// SelectBest returns the longest non-empty trimmed value, measured in
// characters. The first value wins a tie. All-empty input yields "".
func SelectBest(values []string) string {
	best, bestLen := "", 0
	for _, v := range values {
		v = strings.TrimSpace(v)
		if n := utf8.RuneCountInString(v); n > bestLen {
			best, bestLen = v, n
		}
	}
	return best
}

// Dedupe merges rows that share a trimmed font name. Rows shorter than six
// fields or without a font name are ignored. Sites keep first-seen order;
// each metadata column takes the value chosen by SelectBest. The result is
// sorted by font name.
func Dedupe(rows [][]string) []types.FontRecord {
	width := len(types.Header())
	groups := make(map[string][][]string)
	for _, row := range rows {
		if len(row) < width {
			continue
		}
		name := strings.TrimSpace(row[0])
		if name == "" {
			continue
		}
		groups[name] = append(groups[name], row)
	}

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	slices.Sort(names)

	out := make([]types.FontRecord, 0, len(names))
	for _, name := range names {
		out = append(out, mergeGroup(name, groups[name]))
	}
	return out
}

func mergeGroup(name string, rows [][]string) types.FontRecord {
	column := func(i int) []string {
		values := make([]string, 0, len(rows))
		for _, row := range rows {
			values = append(values, row[i])
		}
		return values
	}

	site := len(types.Header()) - 1
	merged := make([]string, site+1)
	merged[0] = name
	for i := 1; i < site; i++ {
		merged[i] = SelectBest(column(i))
	}
	merged[site] = joinSites(column(site))
	return types.RecordFromRow(merged)
}

func joinSites(sites []string) string {
	seen := make(map[string]bool, len(sites))
	unique := make([]string, 0, len(sites))
	for _, site := range sites {
		site = strings.TrimSpace(site)
		if site == "" || seen[site] {
			continue
		}
		seen[site] = true
		unique = append(unique, site)
	}
	return strings.Join(unique, siteSeparator)
}
