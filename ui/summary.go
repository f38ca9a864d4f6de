package ui

import (
	"fmt"
	"strings"
)

// Stat is one labelled line of a summary panel
type Stat struct {
	Label string
	Value string
}

// Summary is a bordered panel of statistics printed when a command finishes
type Summary struct {
	Title string
	Stats []Stat
}

// Add appends a labelled value to the summary
func (s *Summary) Add(label string, value any) {
	s.Stats = append(s.Stats, Stat{Label: label, Value: fmt.Sprint(value)})
}

// View renders the panel
func (s Summary) View() string {
	width := 0
	for _, stat := range s.Stats {
		width = max(width, len(stat.Label)+1)
	}

	var content strings.Builder
	content.WriteString(successStyle.Render("✓ ") + titleStyle.Render(s.Title))
	for _, stat := range s.Stats {
		content.WriteString("\n")
		content.WriteString(labelStyle.Render(fmt.Sprintf("%-*s", width, stat.Label+":")))
		content.WriteString(" ")
		content.WriteString(valueStyle.Render(stat.Value))
	}
	return borderStyle.Render(content.String())
}
