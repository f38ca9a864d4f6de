package reader

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultEncodings = []string{"utf-8", "utf-8-sig", "latin-1", "cp1252"}

func newTestReader(t *testing.T) *Reader {
	t.Helper()
	r, err := New(defaultEncodings, log.New(io.Discard))
	require.NoError(t, err)
	return r
}

func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0644))
	return path
}

func TestNew(t *testing.T) {
	_, err := New([]string{"utf-8", "ebcdic"}, nil)
	assert.Error(t, err)

	_, err = New(nil, nil)
	assert.Error(t, err)
}

func TestRead(t *testing.T) {
	header := []string{"Font Name", "Type", "Format(s)", "Description", "Source"}

	tests := []struct {
		name     string
		content  []byte
		wantRows [][]string
	}{
		{
			name:     "utf-8",
			content:  []byte("Font Name,Type,Format(s),Description,Source\nInter,Primary,woff2,,\n"),
			wantRows: [][]string{{"Inter", "Primary", "woff2", "", ""}},
		},
		{
			name:     "utf-8 with BOM",
			content:  append([]byte{0xEF, 0xBB, 0xBF}, []byte("Font Name,Type,Format(s),Description,Source\nInter,Primary,woff2,,\n")...),
			wantRows: [][]string{{"Inter", "Primary", "woff2", "", ""}},
		},
		{
			name:     "latin-1 fallback",
			content:  []byte("Font Name,Type,Format(s),Description,Source\nCaf\xe9 Sans,Primary,woff,,\n"),
			wantRows: [][]string{{"Café Sans", "Primary", "woff", "", ""}},
		},
		{
			name:     "quoted fields",
			content:  []byte("Font Name,Type,Format(s),Description,Source\nInter,Primary,\"woff, woff2\",\"says \"\"hi\"\"\",\n"),
			wantRows: [][]string{{"Inter", "Primary", "woff, woff2", "says \"hi\"", ""}},
		},
		{
			name:     "blank rows dropped",
			content:  []byte("Font Name,Type,Format(s),Description,Source\n,,,,\n  , ,,,\nInter,Primary,woff2,,\n\n"),
			wantRows: [][]string{{"Inter", "Primary", "woff2", "", ""}},
		},
		{
			name:     "header only",
			content:  []byte("Font Name,Type,Format(s),Description,Source\n"),
			wantRows: [][]string{},
		},
		{
			name:     "ragged rows",
			content:  []byte("Font Name,Type,Format(s),Description,Source\nInter\nArial,Fallback,N/A,,,,extra\n"),
			wantRows: [][]string{{"Inter"}, {"Arial", "Fallback", "N/A", "", "", "", "extra"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestReader(t)
			path := writeFile(t, "site.csv", tt.content)

			gotHeader, gotRows, err := r.Read(path)
			require.NoError(t, err)
			assert.Equal(t, header, gotHeader)
			assert.Equal(t, tt.wantRows, gotRows)
		})
	}
}

func TestReadEmpty(t *testing.T) {
	r := newTestReader(t)
	path := writeFile(t, "empty.csv", nil)

	header, rows, err := r.Read(path)
	assert.ErrorIs(t, err, ErrEmpty)
	assert.Empty(t, header)
	assert.Empty(t, rows)
}

func TestReadUndecodable(t *testing.T) {
	r, err := New([]string{"utf-8", "utf-8-sig"}, log.New(io.Discard))
	require.NoError(t, err)
	path := writeFile(t, "bad.csv", []byte("Font Name\n\xff\xfe\n"))

	header, rows, err := r.Read(path)
	assert.ErrorIs(t, err, ErrUndecodable)
	assert.Empty(t, header)
	assert.Empty(t, rows)
}

func TestReadMissingFile(t *testing.T) {
	r := newTestReader(t)

	_, _, err := r.Read(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrUndecodable)
}

func TestDecoders(t *testing.T) {
	decs, err := Decoders(defaultEncodings)
	require.NoError(t, err)
	require.Len(t, decs, 4)

	_, err = decs[0].Decode([]byte("\xe9"))
	assert.Error(t, err)

	out, err := decs[3].Decode([]byte("\x80"))
	require.NoError(t, err)
	assert.Equal(t, "€", string(out))
}
