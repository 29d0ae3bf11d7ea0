package swiftdsv

import (
	"bufio"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
)

const defaultBufferSize = 1 << 10 // 1024 bytes

var errWriterNoTarget = errors.New("swiftdsv: writer destination cannot be nil")

// textWriter is satisfied by *strings.Builder and *bufio.Writer.
type textWriter interface {
	io.StringWriter
	WriteRune(r rune) (int, error)
	WriteByte(c byte) error
}

// EncodeField converts v to its canonical text form and escapes it when it contains
// '\r', '\n', the delimiter or the escaper, or when every field is escaped.
// Nil values encode as the null literal, or as "" when nullish values are not stringified.
func (c *Codec) EncodeField(v any) string {
	if isNullish(v) {
		if !c.stringifyNullish {
			return ""
		}
		return c.escape(c.nullLiteral)
	}
	return c.escape(canonicalText(v))
}

// Encode joins table into text: fields by the delimiter, rows by '\n', with no
// trailing newline. A nil table encodes as "". An empty or ragged table fails with
// ErrRaggedTable and produces no output.
func (c *Codec) Encode(table [][]string) (string, error) {
	if table == nil {
		return "", nil
	}
	var b strings.Builder
	if err := encodeTable(c, &b, table, c.escape); err != nil {
		return "", err
	}
	return b.String(), nil
}

// EncodeValues is Encode for tables of arbitrary values, each converted with EncodeField.
func (c *Codec) EncodeValues(table [][]any) (string, error) {
	if table == nil {
		return "", nil
	}
	var b strings.Builder
	if err := encodeTable(c, &b, table, c.EncodeField); err != nil {
		return "", err
	}
	return b.String(), nil
}

// EncodeTo writes the encoding of table to w through a buffered writer. The table
// shape is validated before anything is written.
func (c *Codec) EncodeTo(w io.Writer, table [][]string) error {
	if w == nil {
		return errWriterNoTarget
	}
	if table == nil {
		return nil
	}
	bw := bufio.NewWriterSize(w, defaultBufferSize)
	if err := encodeTable(c, bw, table, c.escape); err != nil {
		return err
	}
	return bw.Flush()
}

func encodeTable[T any](c *Codec, w textWriter, table [][]T, cell func(T) string) (err error) {
	start := time.Now()
	size := 0
	width := 0
	if len(table) > 0 {
		width = len(table[0])
	}
	defer func() { emitEncodeComplete(size, len(table), width, time.Since(start), err) }()

	if err := checkRectangular(table); err != nil {
		return err
	}

	for i, row := range table {
		if i > 0 {
			if err := w.WriteByte('\n'); err != nil {
				return err
			}
			size++
		}
		for j := range row {
			if j > 0 {
				n, err := w.WriteRune(c.grammar.delimiter)
				if err != nil {
					return err
				}
				size += n
			}
			n, err := w.WriteString(cell(row[j]))
			if err != nil {
				return err
			}
			size += n
		}
	}
	return nil
}

func checkRectangular[T any](table [][]T) error {
	if len(table) == 0 {
		return errors.Wrap(ErrRaggedTable, "table has no rows")
	}
	want := len(table[0])
	for i, row := range table[1:] {
		if len(row) != want {
			return errors.Wrapf(ErrRaggedTable, "row %d has %d fields, expected %d", i+2, len(row), want)
		}
	}
	return nil
}

// escape wraps s in escapers, doubling every escaper inside, when s needs it.
func (c *Codec) escape(s string) string {
	if !c.escapeAllFields && !c.grammar.needsEscape(s) {
		return s
	}

	esc := c.grammar.escaper
	width := utf8.RuneLen(esc)
	var b strings.Builder
	b.Grow(len(s) + 2*width)
	b.WriteRune(esc)
	start := 0
	for i, r := range s {
		if r != esc {
			continue
		}
		// Keep the escaper in the current run and write it again to double it.
		b.WriteString(s[start : i+width])
		b.WriteRune(esc)
		start = i + width
	}
	b.WriteString(s[start:])
	b.WriteRune(esc)
	return b.String()
}

// isNullish reports whether v is nil or a nil pointer, map, channel, function or interface.
func isNullish(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// canonicalText converts v to the text written for it.
func canonicalText(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	case error:
		return v.Error()
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return fmt.Sprint(v)
}
