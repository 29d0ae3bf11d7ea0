package swiftdsv

import (
	"strings"
	"unicode/utf8"
)

// reservedBracket cannot be configured as delimiter or escaper.
const reservedBracket = ']'

// charClass represents the role of a character under a given delimiter/escaper pair.
type charClass uint8

const (
	classOther charClass = iota
	classDelimiter
	classEscaper
	classCR
	classLF
	numCharClasses
)

// scanState represents the position of the scanner within a row.
type scanState uint8

const (
	stateFieldStart scanState = iota
	stateUnescaped
	stateEscaped
	stateAfterEscaper
	numStates
)

// scanAction represents what the scanner does with the current character.
type scanAction uint8

const (
	actionAppend   scanAction = iota // add the character to the current field
	actionSkip                       // opening or closing escaper
	actionEndField                   // delimiter
	actionEndRow                     // '\n'
	actionError
)

type transition struct {
	next   scanState
	action scanAction
	err    error
}

// transitions is independent of configuration; only classification depends on
// the delimiter and escaper.
var transitions = [numStates][numCharClasses]transition{
	stateFieldStart: {
		classOther:     {stateUnescaped, actionAppend, nil},
		classDelimiter: {stateFieldStart, actionEndField, nil},
		classEscaper:   {stateEscaped, actionSkip, nil},
		classCR:        {stateFieldStart, actionError, ErrBareCarriageReturn},
		classLF:        {stateFieldStart, actionEndRow, nil},
	},
	stateUnescaped: {
		classOther:     {stateUnescaped, actionAppend, nil},
		classDelimiter: {stateFieldStart, actionEndField, nil},
		classEscaper:   {stateUnescaped, actionError, ErrBareEscaper},
		classCR:        {stateUnescaped, actionError, ErrBareCarriageReturn},
		classLF:        {stateFieldStart, actionEndRow, nil},
	},
	stateEscaped: {
		classOther:     {stateEscaped, actionAppend, nil},
		classDelimiter: {stateEscaped, actionAppend, nil},
		classEscaper:   {stateAfterEscaper, actionSkip, nil},
		classCR:        {stateEscaped, actionAppend, nil},
		classLF:        {stateEscaped, actionError, ErrNewlineInEscape},
	},
	stateAfterEscaper: {
		classOther:     {stateAfterEscaper, actionError, ErrUnexpectedAfterEscaper},
		classDelimiter: {stateFieldStart, actionEndField, nil},
		classEscaper:   {stateEscaped, actionAppend, nil}, // doubled escaper
		classCR:        {stateAfterEscaper, actionError, ErrUnexpectedAfterEscaper},
		classLF:        {stateFieldStart, actionEndRow, nil},
	},
}

// grammar is the field/row grammar derived from one delimiter/escaper pair.
// It is immutable once built.
type grammar struct {
	delimiter rune
	escaper   rune
}

func newGrammar(delimiter, escaper rune) (grammar, error) {
	if err := checkSpecialRune("delimiter", delimiter); err != nil {
		return grammar{}, err
	}
	if err := checkSpecialRune("escaper", escaper); err != nil {
		return grammar{}, err
	}
	if delimiter == escaper {
		return grammar{}, &ConfigError{Option: "escaper", Value: escaper, Reason: "must differ from the delimiter"}
	}
	return grammar{delimiter: delimiter, escaper: escaper}, nil
}

func checkSpecialRune(option string, r rune) error {
	switch {
	case r == utf8.RuneError || !utf8.ValidRune(r):
		return &ConfigError{Option: option, Value: r, Reason: "not a valid character"}
	case r == '\n', r == '\r':
		return &ConfigError{Option: option, Value: r, Reason: "line terminators are reserved"}
	case r == '\\':
		return &ConfigError{Option: option, Value: r, Reason: "backslash is reserved"}
	case r == reservedBracket:
		return &ConfigError{Option: option, Value: r, Reason: "closing bracket is reserved"}
	}
	return nil
}

func (g grammar) classify(r rune) charClass {
	switch r {
	case g.delimiter:
		return classDelimiter
	case g.escaper:
		return classEscaper
	case '\r':
		return classCR
	case '\n':
		return classLF
	}
	return classOther
}

// needsEscape reports whether s contains '\r', '\n', the delimiter or the escaper.
func (g grammar) needsEscape(s string) bool {
	if g.delimiter < utf8.RuneSelf && g.escaper < utf8.RuneSelf {
		for i := 0; i < len(s); i++ {
			switch rune(s[i]) {
			case g.delimiter, g.escaper, '\n', '\r':
				return true
			}
		}
		return false
	}
	return strings.ContainsFunc(s, func(r rune) bool {
		return g.classify(r) != classOther
	})
}

// scan walks text once, left to right, and returns its rows. When limit is positive,
// scanning stops after that many rows and the rest of text is not inspected.
func (g grammar) scan(text string, limit int) ([][]string, error) {
	var (
		rows   [][]string
		row    []string
		field  []byte
		state  = stateFieldStart
		line   = 1
		column = 1
	)

	for pos := 0; pos < len(text); {
		r, size := utf8.DecodeRuneInString(text[pos:])
		t := transitions[state][g.classify(r)]

		switch t.action {
		case actionAppend:
			field = append(field, text[pos:pos+size]...)
		case actionEndField:
			row = append(row, string(field))
			field = field[:0]
		case actionEndRow:
			rows = append(rows, append(row, string(field)))
			if limit > 0 && len(rows) == limit {
				return rows, nil
			}
			row = make([]string, 0, len(rows[0]))
			field = field[:0]
		case actionError:
			return nil, &ParseError{Line: line, Column: column, Err: t.err}
		}

		state = t.next
		pos += size
		if t.action == actionEndRow {
			line++
			column = 1
		} else {
			column++
		}
	}

	if state == stateEscaped {
		return nil, &ParseError{Line: line, Column: column, Err: ErrUnterminatedEscape}
	}
	return append(rows, append(row, string(field))), nil
}
