package swiftdsv

import (
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// rowOracle is an RE2 rendition of the row grammar, used to cross-check the scanner.
type rowOracle struct {
	row       *regexp.Regexp
	field     *regexp.Regexp
	delimiter string
	escaper   string
}

func newRowOracle(delimiter, escaper rune) rowOracle {
	d := regexp.QuoteMeta(string(delimiter))
	e := regexp.QuoteMeta(string(escaper))
	unescaped := `[^` + e + d + `\r\n]*`
	escaped := e + `(?:[^` + e + `\n]|` + e + e + `)*` + e
	field := `(?:` + unescaped + `|` + escaped + `)`
	return rowOracle{
		row:       regexp.MustCompile(`^` + field + `(?:` + d + field + `)*$`),
		field:     regexp.MustCompile(d + `(?:` + e + `((?:[^` + e + `\n]|` + e + e + `)*)` + e + `|(` + unescaped + `))`),
		delimiter: string(delimiter),
		escaper:   string(escaper),
	}
}

// decode returns nil when input is not a valid rectangular table.
func (o rowOracle) decode(input string) [][]string {
	var table [][]string
	for _, line := range strings.Split(input, "\n") {
		if !o.row.MatchString(line) {
			return nil
		}
		var row []string
		// A leading delimiter makes every field match non-empty.
		for _, m := range o.field.FindAllStringSubmatchIndex(o.delimiter+line, -1) {
			if m[2] >= 0 {
				s := (o.delimiter + line)[m[2]:m[3]]
				row = append(row, strings.ReplaceAll(s, o.escaper+o.escaper, o.escaper))
				continue
			}
			row = append(row, (o.delimiter + line)[m[4]:m[5]])
		}
		if len(table) > 0 && len(row) != len(table[0]) {
			return nil
		}
		table = append(table, row)
	}
	return table
}

func FuzzDecodeMatchesOracle(f *testing.F) {
	seeds := []string{
		"",
		"a,b,c",
		"a,\"b,b\",c",
		"a,\"b\nc\",d",
		"\"unterminated",
		"a\"b,c",
		"\"a\"b,c",
		"one\r\ntwo",
		"trailing,newline\n",
		",,\n,,",
		"\"\"\"\",\"x\"\"y\"\n1,2",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	codecs := []struct {
		delimiter, escaper rune
	}{
		{',', '"'},
		{';', '\''},
	}

	f.Fuzz(func(t *testing.T, input string) {
		if len(input) > 1<<12 {
			t.Skip()
		}

		for _, cfg := range codecs {
			c, err := New(WithDelimiter(cfg.delimiter), WithEscaper(cfg.escaper))
			if err != nil {
				t.Fatal(err)
			}
			want := newRowOracle(cfg.delimiter, cfg.escaper).decode(input)
			got, err := c.Decode(input)

			switch {
			case want == nil && err == nil:
				t.Fatalf("Decode accepted input rejected by the oracle: input=%q got=%q", truncateForMessage(input), got)
			case want != nil && err != nil:
				t.Fatalf("Decode rejected valid input: input=%q err=%v", truncateForMessage(input), err)
			case want != nil:
				if diff := cmp.Diff(want, got); diff != "" {
					t.Fatalf("Decode mismatch (-oracle +got) for input %q:\n%s", truncateForMessage(input), diff)
				}
			}
		}
	})
}

func FuzzRoundTrip(f *testing.F) {
	f.Add("a", "b", "c", false)
	f.Add("the \"cat\"", "x,y", "", true)
	f.Add("\"", "\r", ",\",", false)

	f.Fuzz(func(t *testing.T, a, b, c string, escapeAll bool) {
		// Embedded newlines are outside the grammar.
		strip := func(s string) string { return strings.ReplaceAll(s, "\n", "") }
		table := [][]string{
			{strip(a), strip(b)},
			{strip(c), strip(a)},
		}

		codec, err := New(WithEscapeAllFields(escapeAll))
		if err != nil {
			t.Fatal(err)
		}
		text, err := codec.Encode(table)
		if err != nil {
			t.Fatalf("Encode() error = %v", err)
		}
		got, err := codec.Decode(text)
		if err != nil {
			t.Fatalf("Decode(%q) error = %v", truncateForMessage(text), err)
		}
		if diff := cmp.Diff(table, got); diff != "" {
			t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
		}
	})
}

func truncateForMessage(s string) string {
	const max = 256
	if len(s) <= max {
		return s
	}
	return s[:max] + "...(truncated)"
}
