// Package translate converts prefix-notation domain expressions into
// equivalent infix boolean expression strings.
package translate

import (
	"github.com/odootools/attrsmigrate/ast"
)

// operators maps a condition operator to its rendering given the field
// name and the parsed value.
var operators = map[string]func(field string, value ast.Value) string{
	"=":      equalsOperator,
	"!=":     notEqualsOperator,
	"in":     comparison("in"),
	"not in": comparison("not in"),
	">":      comparison(">"),
	"<":      comparison("<"),
	">=":     comparison(">="),
	"<=":     comparison("<="),
}

// Equality against a boolean collapses to the bare (or negated) field
// name instead of an explicit comparison.
func equalsOperator(field string, value ast.Value) string {
	if b, ok := value.(ast.Bool); ok {
		if b.Value {
			return field
		}
		return "not " + field
	}
	return field + " == " + value.Repr()
}

func notEqualsOperator(field string, value ast.Value) string {
	if b, ok := value.(ast.Bool); ok {
		if b.Value {
			return "not " + field
		}
		return field
	}
	return field + " != " + value.Repr()
}

func comparison(op string) func(field string, value ast.Value) string {
	return func(field string, value ast.Value) string {
		return field + " " + op + " " + value.Repr()
	}
}

type stack []string

func (s *stack) push(e string) {
	*s = append(*s, e)
}

func (s *stack) pop() (string, bool) {
	l := len(*s)
	if l == 0 {
		return "", false
	}
	e := (*s)[l-1]
	*s = (*s)[:l-1]
	return e, true
}

// Translate converts a domain expression into an infix boolean
// expression string. The input is either a constant — the literal 0/1
// or a bare True/False, meaning always-false/always-true — or a list
// mixing (field, operator, value) conditions with the prefix join
// tokens "&" and "|". Conditions with no join token between them are
// implicitly ANDed.
//
// The expression is scanned right to left on an explicit stack: a
// condition pushes its rendering, a join token pops two sub-expressions
// and pushes their parenthesized combination. Leftover sub-expressions
// are then collapsed with implicit AND, left-associatively in their
// original order of appearance: A B C renders as ((A and B) and C).
func Translate(v ast.Value) (string, error) {
	if b, ok := v.(ast.Bool); ok {
		return b.Repr(), nil
	}
	if n, ok := v.(ast.Int); ok && (n.Value == 0 || n.Value == 1) {
		if n.Value == 0 {
			return "False", nil
		}
		return "True", nil
	}

	seq, ok := v.(ast.List)
	if !ok {
		return "", &MalformedExpressionError{Reason: "expression must be a list or a 0/1/True/False constant"}
	}

	var st stack
	for i := len(seq.Items) - 1; i >= 0; i-- {
		switch tok := seq.Items[i].(type) {
		case ast.Tuple:
			rendered, err := renderCondition(tok)
			if err != nil {
				return "", err
			}
			st.push(rendered)

		case ast.Str:
			if tok.Value != "&" && tok.Value != "|" {
				return "", &MalformedExpressionError{Reason: "unknown join token " + tok.Repr()}
			}
			op := "and"
			if tok.Value == "|" {
				op = "or"
			}
			left, ok := st.pop()
			if !ok {
				return "", &MalformedExpressionError{Reason: "join token " + tok.Repr() + " has no operands"}
			}
			right, ok := st.pop()
			if !ok {
				return "", &MalformedExpressionError{Reason: "join token " + tok.Repr() + " has only one operand"}
			}
			st.push("(" + left + " " + op + " " + right + ")")

		default:
			return "", &MalformedExpressionError{Reason: "unexpected element " + tok.Repr()}
		}
	}

	// Collapse implicit ANDs. The scan ran right to left, so the top of
	// the stack is the leftmost leftover sub-expression.
	for len(st) > 1 {
		left, _ := st.pop()
		right, _ := st.pop()
		st.push("(" + left + " and " + right + ")")
	}

	if len(st) == 0 {
		return "", nil
	}
	return st[0], nil
}

func renderCondition(t ast.Tuple) (string, error) {
	if len(t.Items) != 3 {
		return "", &MalformedExpressionError{Reason: "condition " + t.Repr() + " is not a (field, operator, value) triple"}
	}
	field, ok := t.Items[0].(ast.Str)
	if !ok {
		return "", &MalformedExpressionError{Reason: "condition field " + t.Items[0].Repr() + " is not a string"}
	}
	opName, ok := t.Items[1].(ast.Str)
	if !ok {
		return "", &MalformedExpressionError{Reason: "condition operator " + t.Items[1].Repr() + " is not a string"}
	}
	render, ok := operators[opName.Value]
	if !ok {
		return "", &UnsupportedOperatorError{Operator: opName.Value}
	}
	return render(field.Value, t.Items[2]), nil
}
