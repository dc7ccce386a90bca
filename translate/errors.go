package translate

import "fmt"

// UnsupportedOperatorError reports a condition operator outside the
// supported set.
type UnsupportedOperatorError struct {
	Operator string
}

func (e *UnsupportedOperatorError) Error() string {
	return fmt.Sprintf("unsupported operator %q", e.Operator)
}

// MalformedExpressionError reports a domain expression that cannot be
// reduced to a single boolean expression, such as a join token with
// fewer than two operands or a condition that is not a 3-tuple.
type MalformedExpressionError struct {
	Reason string
}

func (e *MalformedExpressionError) Error() string {
	return fmt.Sprintf("malformed domain expression: %s", e.Reason)
}
