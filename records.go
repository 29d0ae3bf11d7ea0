package swiftdsv

import (
	"github.com/cockroachdb/errors"
)

// Record maps header names to the fields of one data row.
type Record map[string]string

// ToRecords zips headers with each row. Every row must have exactly len(headers)
// fields; otherwise ToRecords fails with ErrArityMismatch. When headers repeat a
// name, the rightmost column wins.
func ToRecords(headers []string, rows [][]string) ([]Record, error) {
	records := make([]Record, 0, len(rows))
	for i, row := range rows {
		if len(row) != len(headers) {
			return nil, errors.Wrapf(ErrArityMismatch, "row %d has %d fields, header has %d", i+1, len(row), len(headers))
		}
		rec := make(Record, len(headers))
		for j, name := range headers {
			rec[name] = row[j]
		}
		records = append(records, rec)
	}
	return records, nil
}

// ToRecordsFromValues is ToRecords for dynamically typed input such as decoded
// JSON or YAML. Headers must all be strings and rows must all be []string or []any;
// otherwise it fails with ErrTypeMismatch. Cells of []any rows are converted to
// their canonical text, with nil becoming "".
func ToRecordsFromValues(headers []any, rows []any) ([]Record, error) {
	names := make([]string, len(headers))
	for i, h := range headers {
		name, ok := h.(string)
		if !ok {
			return nil, errors.Wrapf(ErrTypeMismatch, "header %d is %T, not string", i+1, h)
		}
		names[i] = name
	}

	table := make([][]string, len(rows))
	for i, r := range rows {
		switch row := r.(type) {
		case []string:
			table[i] = row
		case []any:
			fields := make([]string, len(row))
			for j, v := range row {
				if !isNullish(v) {
					fields[j] = canonicalText(v)
				}
			}
			table[i] = fields
		default:
			return nil, errors.Wrapf(ErrTypeMismatch, "row %d is %T, not a sequence", i+1, r)
		}
	}
	return ToRecords(names, table)
}

// DecodeRecords decodes text and zips its first row, taken as the header, with
// the remaining rows.
func (c *Codec) DecodeRecords(text string) ([]Record, error) {
	table, err := c.Decode(text)
	if err != nil {
		return nil, err
	}
	return ToRecords(table[0], table[1:])
}
