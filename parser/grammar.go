package parser

// Grammar structs for the participle parser.
// These define the literal subset using struct tags: booleans, None,
// numbers, strings, lists, tuples and dicts, arbitrarily nested. There
// are deliberately no names, calls or operators.

type literalGrammar struct {
	Bool  *string       `parser:"( @'True' | @'False'"`
	None  bool          `parser:"| @'None'"`
	Float *float64      `parser:"| @Float"`
	Int   *int64        `parser:"| @Int"`
	Str   *string       `parser:"| @String"`
	List  *listGrammar  `parser:"| @@"`
	Tuple *tupleGrammar `parser:"| @@"`
	Dict  *dictGrammar  `parser:"| @@ )"`
}

type listGrammar struct {
	Items []*literalGrammar `parser:"'[' (@@ (',' @@)* ','?)? ']'"`
}

// A parenthesized single value without a trailing comma is grouping,
// not a 1-tuple; the convert pass unwraps it.
type tupleGrammar struct {
	Items    []*literalGrammar `parser:"'(' (@@ (',' @@)*)?"`
	Trailing bool              `parser:"@','? ')'"`
}

type dictGrammar struct {
	Entries []*dictEntryGrammar `parser:"'{' (@@ (',' @@)* ','?)? '}'"`
}

type dictEntryGrammar struct {
	Key   *literalGrammar `parser:"@@ ':'"`
	Value *literalGrammar `parser:"@@"`
}
