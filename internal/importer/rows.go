package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
)

const utf8BOM = "\ufeff"

// Row is one CSV record keyed by lower-cased column name.
type Row struct {
	line   int
	fields map[string]string
}

// NewRow builds a Row from column/value pairs, normalizing the column names.
func NewRow(line int, fields map[string]string) Row {
	row := Row{line: line, fields: make(map[string]string, len(fields))}
	for k, v := range fields {
		row.fields[normalizeColumn(k)] = v
	}
	return row
}

// Line returns the line number the record started on.
func (r Row) Line() int { return r.line }

// Get returns the value of column, matched case-insensitively.
func (r Row) Get(column string) (string, error) {
	v, ok := r.fields[normalizeColumn(column)]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrMissingColumn, column)
	}
	return v, nil
}

func normalizeColumn(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ReadRows reads a delimited file with a header row and yields one Row per
// record. Column names are normalized once, when the header is read. A short
// record simply lacks the trailing columns. Iteration stops after the first
// error.
func ReadRows(r io.Reader, delimiter rune) iter.Seq2[Row, error] {
	return func(yield func(Row, error) bool) {
		cr := csv.NewReader(r)
		cr.Comma = delimiter
		cr.FieldsPerRecord = -1
		cr.LazyQuotes = true

		header, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			yield(Row{}, fmt.Errorf("reading header: %w", err))
			return
		}
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
		columns := make([]string, len(header))
		for i, name := range header {
			columns[i] = normalizeColumn(name)
		}

		for {
			rec, err := cr.Read()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(Row{}, fmt.Errorf("reading CSV: %w", err))
				return
			}

			line, _ := cr.FieldPos(0)
			row := Row{line: line, fields: make(map[string]string, len(columns))}
			for i, value := range rec {
				if i >= len(columns) {
					break
				}
				row.fields[columns[i]] = value
			}
			if !yield(row, nil) {
				return
			}
		}
	}
}

// Decode wraps r so that it yields UTF-8 text from the named charset, e.g.
// "utf-8", "latin1" or "windows-1252". An empty name means UTF-8.
func Decode(r io.Reader, charset string) (io.Reader, error) {
	if charset == "" {
		return r, nil
	}
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return nil, fmt.Errorf("%w %q", ErrUnknownEncoding, charset)
	}
	return enc.NewDecoder().Reader(r), nil
}
