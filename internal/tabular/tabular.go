// Package tabular encodes comma-separated text in which every data field is
// double-quoted.
package tabular

import (
	"errors"
	"fmt"
	"strings"
)

// ErrFieldCount is returned by Decode when a row's width differs from the
// header.
var ErrFieldCount = errors.New("row width does not match header")

// ErrMalformed is returned by Decode for a quote that is never closed or that
// sits where a field cannot hold one.
var ErrMalformed = errors.New("malformed field")

// Encode renders the header row verbatim followed by one line per row with
// every field quoted and embedded quotes doubled. Lines are joined by "\n"
// with no trailing newline.
func Encode(header []string, rows [][]string) string {
	var b strings.Builder
	b.WriteString(strings.Join(header, ","))
	for _, row := range rows {
		b.WriteByte('\n')
		for i, field := range row {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(Quote(field))
		}
	}
	return b.String()
}

// Quote wraps field in double quotes, doubling any quote inside it.
func Quote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

// Decode parses text produced by Encode. Records end at "\n" outside
// quotes. Quoted fields may span lines and keep every byte between the quotes
// except doubled quotes, so "\r\n" and a lone "\r" survive the round trip.
// Bare fields are accepted for the header.
func Decode(text string) ([]string, [][]string, error) {
	if text == "" {
		return nil, nil, nil
	}
	records, err := scan(text)
	if err != nil {
		return nil, nil, err
	}

	header := records[0]
	var rows [][]string
	for i, row := range records[1:] {
		if len(row) != len(header) {
			return nil, nil, fmt.Errorf("row %d has %d fields, want %d: %w", i+1, len(row), len(header), ErrFieldCount)
		}
		rows = append(rows, row)
	}
	return header, rows, nil
}

// scan splits text into records of fields. A single trailing newline does not
// start another record.
func scan(text string) ([][]string, error) {
	var (
		records [][]string
		record  []string
		field   strings.Builder
		line    = 1
		i       int
	)
	for {
		if i < len(text) && text[i] == '"' {
			start := line
			i++
			for {
				j := strings.IndexByte(text[i:], '"')
				if j < 0 {
					return nil, fmt.Errorf("line %d: unterminated quote: %w", start, ErrMalformed)
				}
				chunk := text[i : i+j]
				line += strings.Count(chunk, "\n")
				field.WriteString(chunk)
				i += j + 1
				if i < len(text) && text[i] == '"' {
					field.WriteByte('"')
					i++
					continue
				}
				break
			}
			if i < len(text) && text[i] != ',' && text[i] != '\n' {
				return nil, fmt.Errorf("line %d: text after closing quote: %w", line, ErrMalformed)
			}
		} else {
			j := strings.IndexAny(text[i:], ",\n")
			if j < 0 {
				j = len(text) - i
			}
			bare := text[i : i+j]
			if strings.Contains(bare, `"`) {
				return nil, fmt.Errorf("line %d: quote in bare field: %w", line, ErrMalformed)
			}
			field.WriteString(bare)
			i += j
		}

		record = append(record, field.String())
		field.Reset()

		if i >= len(text) {
			return append(records, record), nil
		}
		sep := text[i]
		i++
		if sep == '\n' {
			records = append(records, record)
			record = nil
			line++
			if i == len(text) {
				return records, nil
			}
		}
	}
}
