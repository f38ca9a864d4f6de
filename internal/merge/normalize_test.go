package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckHeader(t *testing.T) {
	tests := []struct {
		name   string
		header []string
		want   HeaderShape
	}{
		{"with site", []string{"Font Name", "Type", "Format(s)", "Description", "Source", "Site"}, HeaderWithSite},
		{"without site", []string{"Font Name", "Type", "Format(s)", "Description", "Source"}, HeaderWithoutSite},
		{"renamed column", []string{"Font", "Type", "Format(s)", "Description", "Source"}, HeaderUnexpected},
		{"extra column", []string{"Font Name", "Type", "Format(s)", "Description", "Source", "Site", "Notes"}, HeaderUnexpected},
		{"empty", nil, HeaderUnexpected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckHeader(tt.header))
		})
	}
}

func TestSiteFromPath(t *testing.T) {
	assert.Equal(t, "example.com", SiteFromPath("Results/example.com.csv"))
	assert.Equal(t, "a", SiteFromPath("a.csv"))
	assert.Equal(t, "noext", SiteFromPath("/tmp/noext"))
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		row     []string
		hasSite bool
		want    []string
		wantOK  bool
	}{
		{
			name:   "five columns gets derived site",
			row:    []string{"Arial", "Fallback", "N/A", "", ""},
			want:   []string{"Arial", "Fallback", "N/A", "", "", "file"},
			wantOK: true,
		},
		{
			name:   "six fields under five column header drops the sixth",
			row:    []string{"Arial", "Fallback", "N/A", "", "", "ignored"},
			want:   []string{"Arial", "Fallback", "N/A", "", "", "file"},
			wantOK: true,
		},
		{
			name:   "short row padded",
			row:    []string{"Arial"},
			want:   []string{"Arial", "", "", "", "", "file"},
			wantOK: true,
		},
		{
			name:    "site column trusted",
			row:     []string{"Inter", "Primary", "woff2", "", "", "example.com"},
			hasSite: true,
			want:    []string{"Inter", "Primary", "woff2", "", "", "example.com"},
			wantOK:  true,
		},
		{
			name:    "site header short row padded",
			row:     []string{"Inter", "Primary"},
			hasSite: true,
			want:    []string{"Inter", "Primary", "", "", "", ""},
			wantOK:  true,
		},
		{
			name:    "site header long row truncated",
			row:     []string{"Inter", "Primary", "woff2", "", "", "a.com", "extra"},
			hasSite: true,
			want:    []string{"Inter", "Primary", "woff2", "", "", "a.com"},
			wantOK:  true,
		},
		{
			name:   "blank font name rejected",
			row:    []string{"  ", "Primary", "woff2", "", ""},
			wantOK: false,
		},
		{
			name:   "empty row rejected",
			row:    []string{},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Normalize(tt.row, "file", tt.hasSite)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	row := []string{"Arial", "Fallback", "N/A", "", "", "x", "y"}
	_, ok := Normalize(row, "file", false)
	assert.True(t, ok)
	assert.Equal(t, []string{"Arial", "Fallback", "N/A", "", "", "x", "y"}, row)
}
