// Package parser parses the restricted literal syntax found in legacy
// view attributes using participle.
//
// The supported grammar covers exactly the values a domain expression or
// attribute mapping can contain: booleans, None, integers, floats,
// quoted strings, lists, tuples and dicts. It is a literal parser, not
// an expression evaluator.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/odootools/attrsmigrate/ast"
)

// LiteralError reports input that is not valid literal syntax. Line and
// Column are 1-indexed positions within the parsed text.
type LiteralError struct {
	Line   int
	Column int
	err    error
}

func (e *LiteralError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("invalid literal at %d:%d: %v", e.Line, e.Column, e.err)
	}
	return fmt.Sprintf("invalid literal: %v", e.err)
}

// Unwrap returns the underlying parse error.
func (e *LiteralError) Unwrap() error {
	return e.err
}

var def = newParser()

func newParser() *participle.Parser[literalGrammar] {
	lex := lexer.MustStateful(lexer.Rules{
		"Root": {
			{Name: "Whitespace", Pattern: `[\s]+`},
			{Name: "Float", Pattern: `-?(?:[0-9]+\.[0-9]*|\.[0-9]+)(?:[eE][-+]?[0-9]+)?|-?[0-9]+[eE][-+]?[0-9]+`},
			{Name: "Int", Pattern: `-?[0-9]+`},
			{Name: "String", Pattern: `'(?:[^'\\]|\\.)*'|"(?:[^"\\]|\\.)*"`},
			{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
			{Name: "Punct", Pattern: `[\[\](){},:]`},
		},
	})

	return participle.MustBuild[literalGrammar](
		participle.Lexer(lex),
		participle.Elide("Whitespace"),
		participle.UseLookahead(2),
	)
}

// Parse parses a single literal value from a string.
func Parse(input string) (ast.Value, error) {
	g, err := def.ParseString("", input)
	if err != nil {
		return nil, asLiteralError(err)
	}
	return convert(g)
}

func asLiteralError(err error) error {
	lerr := &LiteralError{err: err}
	if perr, ok := err.(participle.Error); ok {
		pos := perr.Position()
		lerr.Line = pos.Line
		lerr.Column = pos.Column
	}
	return lerr
}

func convert(g *literalGrammar) (ast.Value, error) {
	switch {
	case g.Bool != nil:
		return ast.Bool{Value: *g.Bool == "True"}, nil

	case g.None:
		return ast.None{}, nil

	case g.Float != nil:
		return ast.Float{Value: *g.Float}, nil

	case g.Int != nil:
		return ast.Int{Value: *g.Int}, nil

	case g.Str != nil:
		return ast.Str{Value: unquoteString(*g.Str)}, nil

	case g.List != nil:
		items, err := convertItems(g.List.Items)
		if err != nil {
			return nil, err
		}
		return ast.List{Items: items}, nil

	case g.Tuple != nil:
		items, err := convertItems(g.Tuple.Items)
		if err != nil {
			return nil, err
		}
		if len(items) == 1 && !g.Tuple.Trailing {
			return items[0], nil
		}
		return ast.Tuple{Items: items}, nil

	case g.Dict != nil:
		entries := make([]ast.DictEntry, 0, len(g.Dict.Entries))
		for _, e := range g.Dict.Entries {
			key, err := convert(e.Key)
			if err != nil {
				return nil, err
			}
			value, err := convert(e.Value)
			if err != nil {
				return nil, err
			}
			entries = append(entries, ast.DictEntry{Key: key, Value: value})
		}
		return ast.Dict{Entries: entries}, nil
	}

	return nil, &LiteralError{err: fmt.Errorf("unknown literal kind")}
}

func convertItems(items []*literalGrammar) ([]ast.Value, error) {
	out := make([]ast.Value, 0, len(items))
	for _, item := range items {
		v, err := convert(item)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func unquoteString(s string) string {
	if len(s) < 2 {
		return s
	}
	s = s[1 : len(s)-1]

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 >= len(s) {
			b.WriteByte(s[i])
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case '\\':
			b.WriteByte('\\')
		case '\'':
			b.WriteByte('\'')
		case '"':
			b.WriteByte('"')
		case 'x':
			if i+2 < len(s) {
				if v, err := strconv.ParseUint(s[i+1:i+3], 16, 8); err == nil {
					b.WriteByte(byte(v))
					i += 2
					continue
				}
			}
			b.WriteByte('\\')
			b.WriteByte(s[i])
		default:
			b.WriteByte('\\')
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
