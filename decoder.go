package swiftdsv

import (
	"io"
	"time"

	"github.com/cockroachdb/errors"
)

// Decode parses text into a rectangular table. Every '\n' ends a row, so the result
// always holds at least one row and a trailing newline yields a final single empty field.
//
// Decode returns no table when any character belongs to no valid field or when rows
// differ in width; the error is a *ParseError matching ErrMalformedInput.
func (c *Codec) Decode(text string) (table [][]string, err error) {
	start := time.Now()
	defer func() { emitDecodeComplete(len(text), table, time.Since(start), err) }()

	rows, err := c.grammar.scan(text, 0)
	if err != nil {
		return nil, err
	}
	if err := checkFieldCount(rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// DecodeHeaderRow parses only the first row of text. The rest of the input is not
// inspected, so a header can be read from a table whose body is malformed.
func (c *Codec) DecodeHeaderRow(text string) (header []string, err error) {
	start := time.Now()
	defer func() { emitHeaderComplete(len(text), header, time.Since(start), err) }()

	rows, err := c.grammar.scan(text, 1)
	if err != nil {
		return nil, err
	}
	return rows[0], nil
}

// DecodeReader reads r to EOF and decodes the complete input with Decode.
func (c *Codec) DecodeReader(r io.Reader) ([][]string, error) {
	if r == nil {
		return nil, errors.New("swiftdsv: reader source cannot be nil")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "swiftdsv: read input")
	}
	return c.Decode(string(data))
}

// checkFieldCount rejects rows whose width differs from the first row. Rows never
// span lines, so row i is reported on line i+1.
func checkFieldCount(rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}
	want := len(rows[0])
	for i, row := range rows[1:] {
		if len(row) != want {
			return &ParseError{
				Line:   i + 2,
				Column: 1,
				Err:    errors.Wrapf(ErrFieldCount, "expected %d fields, got %d", want, len(row)),
			}
		}
	}
	return nil
}
