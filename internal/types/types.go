package types

// Column names of the report. Input files may omit the trailing Site column.
const (
	ColFontName    = "Font Name"
	ColType        = "Type"
	ColFormats     = "Format(s)"
	ColDescription = "Description"
	ColSource      = "Source"
	ColSite        = "Site"
)

// NoFormats is written when no @font-face format is known for a font.
const NoFormats = "N/A"

// UnknownFormat is used when a src entry carries no format() hint.
const UnknownFormat = "unknown"

// FontType is the classification assigned to a font by the extractor
type FontType string

const (
	Primary  FontType = "Primary"
	Fallback FontType = "Fallback"
	Generic  FontType = "Generic"
)

// HeaderWithoutSite returns the five-column header used by older per-site files
func HeaderWithoutSite() []string {
	return []string{ColFontName, ColType, ColFormats, ColDescription, ColSource}
}

// Header returns the canonical six-column header
func Header() []string {
	return append(HeaderWithoutSite(), ColSite)
}

// FontRecord represents one row of a font report
type FontRecord struct {
	FontName    string
	Type        string
	Formats     string
	Description string
	Source      string
	Site        string
}

// Row returns the record in column order
func (r FontRecord) Row() []string {
	return []string{r.FontName, r.Type, r.Formats, r.Description, r.Source, r.Site}
}

// RecordFromRow builds a record from a canonical six-field row.
// Missing trailing fields are left empty.
func RecordFromRow(row []string) FontRecord {
	field := func(i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}
	return FontRecord{
		FontName:    field(0),
		Type:        field(1),
		Formats:     field(2),
		Description: field(3),
		Source:      field(4),
		Site:        field(5),
	}
}

// FontFaceSource is one url(...) entry of an @font-face src declaration
type FontFaceSource struct {
	Family string `json:"family"`
	URL    string `json:"url"`
	Format string `json:"format"`
}
