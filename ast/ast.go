// Package ast defines the value tree for the restricted literal syntax
// embedded in legacy view attributes.
package ast

import (
	"strconv"
	"strings"
)

// Value represents a parsed literal value.
type Value interface {
	valueNode()

	// Repr renders the value as its canonical source literal: strings
	// quoted, booleans as True/False, sequences bracketed.
	Repr() string
}

// Str represents a quoted string literal.
type Str struct {
	Value string
}

func (Str) valueNode() {}

// Int represents an integer literal.
type Int struct {
	Value int64
}

func (Int) valueNode() {}

// Float represents a floating point literal.
type Float struct {
	Value float64
}

func (Float) valueNode() {}

// Bool represents True or False.
type Bool struct {
	Value bool
}

func (Bool) valueNode() {}

// None represents the None literal.
type None struct{}

func (None) valueNode() {}

// List represents a bracketed sequence like ['draft', 'done'].
type List struct {
	Items []Value
}

func (List) valueNode() {}

// Tuple represents a parenthesized sequence like ('state', '=', 'draft').
type Tuple struct {
	Items []Value
}

func (Tuple) valueNode() {}

// DictEntry is a single key-value pair in a Dict.
type DictEntry struct {
	Key   Value
	Value Value
}

// Dict represents a mapping literal. Entries keep their source order.
type Dict struct {
	Entries []DictEntry
}

func (Dict) valueNode() {}

func (s Str) Repr() string {
	quote := byte('\'')
	if strings.ContainsRune(s.Value, '\'') && !strings.ContainsRune(s.Value, '"') {
		quote = '"'
	}

	var b strings.Builder
	b.WriteByte(quote)
	for i := 0; i < len(s.Value); i++ {
		c := s.Value[i]
		switch {
		case c == '\\' || c == quote:
			b.WriteByte('\\')
			b.WriteByte(c)
		case c == '\n':
			b.WriteString(`\n`)
		case c == '\r':
			b.WriteString(`\r`)
		case c == '\t':
			b.WriteString(`\t`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte(quote)
	return b.String()
}

func (i Int) Repr() string {
	return strconv.FormatInt(i.Value, 10)
}

func (f Float) Repr() string {
	s := strconv.FormatFloat(f.Value, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func (b Bool) Repr() string {
	if b.Value {
		return "True"
	}
	return "False"
}

func (None) Repr() string {
	return "None"
}

func (l List) Repr() string {
	return reprItems(l.Items, "[", "]", false)
}

func (t Tuple) Repr() string {
	// A 1-tuple keeps its trailing comma so the rendering stays a tuple.
	return reprItems(t.Items, "(", ")", len(t.Items) == 1)
}

func (d Dict) Repr() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, e := range d.Entries {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.Key.Repr())
		b.WriteString(": ")
		b.WriteString(e.Value.Repr())
	}
	b.WriteByte('}')
	return b.String()
}

func reprItems(items []Value, open, close string, trailingComma bool) string {
	var b strings.Builder
	b.WriteString(open)
	for i, v := range items {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(v.Repr())
	}
	if trailingComma {
		b.WriteByte(',')
	}
	b.WriteString(close)
	return b.String()
}
