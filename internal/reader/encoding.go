package reader

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	errInvalidUTF8 = errors.New("invalid utf-8 sequence")
	utf8BOM        = []byte{0xEF, 0xBB, 0xBF}
)

// Decoder converts raw file bytes to UTF-8 text
type Decoder struct {
	Name   string
	decode func([]byte) ([]byte, error)
}

// Decode returns data decoded as UTF-8
func (d Decoder) Decode(data []byte) ([]byte, error) {
	return d.decode(data)
}

// decoders maps accepted encoding names to their decoders
var decoders = map[string]func([]byte) ([]byte, error){
	"utf-8":        decodeUTF8,
	"utf8":         decodeUTF8,
	"utf-8-sig":    decodeUTF8Sig,
	"latin-1":      decodeCharmap(charmap.ISO8859_1),
	"latin1":       decodeCharmap(charmap.ISO8859_1),
	"iso-8859-1":   decodeCharmap(charmap.ISO8859_1),
	"cp1252":       decodeCharmap(charmap.Windows1252),
	"windows-1252": decodeCharmap(charmap.Windows1252),
}

// Decoders resolves encoding names into decoders, keeping their order
func Decoders(names []string) ([]Decoder, error) {
	out := make([]Decoder, 0, len(names))
	for _, name := range names {
		fn, ok := decoders[name]
		if !ok {
			return nil, fmt.Errorf("unsupported encoding %q", name)
		}
		out = append(out, Decoder{Name: name, decode: fn})
	}
	return out, nil
}

// decodeUTF8 rejects invalid input. A leading BOM is dropped so the first
// header cell compares equal.
func decodeUTF8(data []byte) ([]byte, error) {
	if !utf8.Valid(data) {
		return nil, errInvalidUTF8
	}
	return bytes.TrimPrefix(data, utf8BOM), nil
}

func decodeUTF8Sig(data []byte) ([]byte, error) {
	if !utf8.Valid(data) {
		return nil, errInvalidUTF8
	}
	out, _, err := transform.Bytes(unicode.UTF8BOM.NewDecoder(), data)
	return out, err
}

func decodeCharmap(cm *charmap.Charmap) func([]byte) ([]byte, error) {
	return func(data []byte) ([]byte, error) {
		out, _, err := transform.Bytes(cm.NewDecoder(), data)
		return out, err
	}
}
