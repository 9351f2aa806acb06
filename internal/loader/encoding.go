package loader

import (
	"bytes"
	"errors"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

var errInvalidUTF8 = errors.New("invalid utf-8")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Encoding turns raw bytes into text or reports that it cannot.
type Encoding struct {
	Name   string
	Decode func(raw []byte) (string, error)
}

var (
	UTF8SIG = Encoding{Name: "utf-8-sig", Decode: decodeUTF8SIG}
	UTF8    = Encoding{Name: "utf-8", Decode: decodeUTF8}
	Latin1  = Encoding{Name: "latin-1", Decode: decodeLatin1}
)

// DefaultEncodings is tried in order; latin-1 accepts any byte sequence.
var DefaultEncodings = []Encoding{UTF8SIG, UTF8, Latin1}

func decodeUTF8SIG(raw []byte) (string, error) {
	return decodeUTF8(bytes.TrimPrefix(raw, utf8BOM))
}

func decodeUTF8(raw []byte) (string, error) {
	if !utf8.Valid(raw) {
		return "", errInvalidUTF8
	}
	return string(raw), nil
}

func decodeLatin1(raw []byte) (string, error) {
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (l *Loader) decode(raw []byte) (string, string, error) {
	tried := make([]string, 0, len(l.encodings))
	for _, enc := range l.encodings {
		tried = append(tried, enc.Name)
		text, err := enc.Decode(raw)
		if err == nil {
			return text, enc.Name, nil
		}
	}
	return "", "", &DecodeError{Tried: tried}
}
