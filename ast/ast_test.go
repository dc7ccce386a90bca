package ast

import "testing"

func TestRepr(t *testing.T) {
	tests := []struct {
		name string
		in   Value
		want string
	}{
		{"string", Str{Value: "draft"}, `'draft'`},
		{"string with quote", Str{Value: "it's"}, `"it's"`},
		{"string with both quotes", Str{Value: `it's "x"`}, `'it\'s "x"'`},
		{"string with newline", Str{Value: "a\nb"}, `'a\nb'`},
		{"int", Int{Value: 42}, "42"},
		{"negative int", Int{Value: -7}, "-7"},
		{"float", Float{Value: 1.5}, "1.5"},
		{"whole float", Float{Value: 2}, "2.0"},
		{"true", Bool{Value: true}, "True"},
		{"false", Bool{Value: false}, "False"},
		{"none", None{}, "None"},
		{"empty list", List{}, "[]"},
		{"list", List{Items: []Value{Str{Value: "a"}, Str{Value: "b"}}}, `['a', 'b']`},
		{"nested list", List{Items: []Value{List{Items: []Value{Int{Value: 1}}}}}, "[[1]]"},
		{"tuple", Tuple{Items: []Value{Str{Value: "state"}, Str{Value: "="}, Str{Value: "draft"}}}, `('state', '=', 'draft')`},
		{"one-tuple", Tuple{Items: []Value{Int{Value: 1}}}, "(1,)"},
		{"empty tuple", Tuple{}, "()"},
		{"dict", Dict{Entries: []DictEntry{
			{Key: Str{Value: "invisible"}, Value: List{Items: []Value{Int{Value: 1}}}},
			{Key: Str{Value: "readonly"}, Value: Bool{Value: true}},
		}}, `{'invisible': [1], 'readonly': True}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Repr(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
