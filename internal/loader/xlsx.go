package loader

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	spreadsheetEncoding  = "xlsx"
	spreadsheetDelimiter = "n/a"
)

var zipMagic = []byte("PK\x03\x04")

func isSpreadsheet(name string, raw []byte) bool {
	return strings.EqualFold(filepath.Ext(name), ".xlsx") || bytes.HasPrefix(raw, zipMagic)
}

// readSpreadsheet reads the first sheet of a workbook. Short rows are padded
// to the header width, since the sheet reader drops trailing empty cells.
func readSpreadsheet(raw []byte) (*table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		return nil, &ParseError{Encoding: spreadsheetEncoding, Tried: []string{spreadsheetDelimiter}, Wrapped: err}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &ParseError{Encoding: spreadsheetEncoding, Tried: []string{spreadsheetDelimiter}, Wrapped: errors.New("workbook has no sheets")}
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, &ParseError{Encoding: spreadsheetEncoding, Tried: []string{spreadsheetDelimiter}, Wrapped: err}
	}
	if len(rows) == 0 || len(rows[0]) < 2 {
		return nil, &ParseError{Encoding: spreadsheetEncoding, Tried: []string{spreadsheetDelimiter}, Wrapped: errNarrowHeader}
	}

	t := &table{header: rows[0]}
	width := len(rows[0])
	for i, row := range rows[1:] {
		if blankRecord(row) {
			continue
		}
		padded := make([]string, width)
		copy(padded, row)
		t.rows = append(t.rows, padded)
		t.lines = append(t.lines, i+2)
	}
	return t, nil
}
