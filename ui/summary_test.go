package ui

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummary(t *testing.T) {
	var s Summary
	s.Title = "Merged CSV created"
	s.Add("Unique fonts", 3)
	s.Add("Output file size", "120 bytes")

	require.Len(t, s.Stats, 2)
	assert.Equal(t, Stat{Label: "Unique fonts", Value: "3"}, s.Stats[0])

	view := s.View()
	assert.Contains(t, view, "Merged CSV created")
	assert.Contains(t, view, "Unique fonts:")
	assert.Contains(t, view, "120 bytes")
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	logger := NewLogger(&buf, "merge", false)
	logger.Debug("hidden")
	logger.Info("shown", "file", "a.csv")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "a.csv")

	buf.Reset()
	logger = NewLogger(&buf, "merge", true)
	logger.Debug("visible")
	assert.Equal(t, log.DebugLevel, logger.GetLevel())
	assert.Contains(t, buf.String(), "visible")
}
