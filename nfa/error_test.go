package nfa

import "testing"

func TestSyntaxErrorMessages(t *testing.T) {
	cases := []struct {
		name string
		err  *SyntaxError
	}{
		{"missing paren", &SyntaxError{Kind: MissingParenthesis, Pos: 3}},
		{"unbalanced paren", &SyntaxError{Kind: UnbalancedParenthesis, Pos: 4}},
		{"missing brace", &SyntaxError{Kind: MissingBrace, Pos: 2}},
		{"unbalanced brace", &SyntaxError{Kind: UnbalancedBrace, Pos: 5}},
		{"nondigit in braces", &SyntaxError{Kind: NondigitInBraces, Pos: 6, Sym: 'x'}},
		{"empty braces", &SyntaxError{Kind: EmptyBraces, Pos: 1}},
		{"too large repetition", &SyntaxError{Kind: TooLargeRepetition, Pos: -1}},
		{"nothing to repeat", &SyntaxError{Kind: NothingToRepeat, Pos: 0}},
		{"multiple repeat", &SyntaxError{Kind: MultipleRepeat, Pos: 1}},
		{"escape at end", &SyntaxError{Kind: EscapeAtEnd, Pos: -1}},
		{"escape unknown", &SyntaxError{Kind: EscapeUnknown, Pos: 2, Sym: 'q'}},
		{"invalid byte", &SyntaxError{Kind: InvalidByte, Pos: 0}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if msg := c.err.Error(); msg == "" {
				t.Fatal("expected non-empty message")
			}
		})
	}
}

func TestTooManyStatesError(t *testing.T) {
	err := &TooManyStatesError{Limit: 100}
	if err.Error() == "" {
		t.Fatal("expected non-empty message")
	}
}
