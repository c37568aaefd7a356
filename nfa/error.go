package nfa

import "fmt"

// Kind identifies a class of parse failure so callers can branch on the
// failure type rather than match message text — message text is
// informational only, per the error handling design.
type Kind int

const (
	_ Kind = iota
	// MissingParenthesis: a '(' at Pos is never closed.
	MissingParenthesis
	// UnbalancedParenthesis: a ')' at Pos has no matching '('.
	UnbalancedParenthesis
	// MissingBrace: a '{' at Pos is never closed.
	MissingBrace
	// UnbalancedBrace: a '}' at Pos does not follow a '{'.
	UnbalancedBrace
	// NondigitInBraces: a non-digit byte (Sym) appeared inside '{...}'.
	NondigitInBraces
	// EmptyBraces: '{}' with no digits at all.
	EmptyBraces
	// TooLargeRepetition: the value inside '{...}' exceeds Config.MaxRepetition.
	TooLargeRepetition
	// NothingToRepeat: '*', '+', '?', or '{' with no preceding atom.
	NothingToRepeat
	// MultipleRepeat: a repetition operator directly after another one.
	MultipleRepeat
	// EscapeAtEnd: a trailing lone '\' at the end of the pattern.
	EscapeAtEnd
	// EscapeUnknown: '\x' where Sym is not a recognized escape.
	EscapeUnknown
	// InvalidByte: the pattern contains a literal 0 byte, reserved as the
	// internal epsilon sentinel and rejected as input.
	InvalidByte
)

// SyntaxError is the structured value every parse failure in this package
// returns. Pos is the byte offset into the pattern the failure is anchored
// to (-1 when the kind carries none); Sym is the offending byte for the
// kinds that have one (0 otherwise).
type SyntaxError struct {
	Kind Kind
	Pos  int
	Sym  byte
}

func (e *SyntaxError) Error() string {
	switch e.Kind {
	case MissingParenthesis:
		return fmt.Sprintf("missing parenthesis: '(' at position %d is never closed", e.Pos)
	case UnbalancedParenthesis:
		return fmt.Sprintf("unbalanced parenthesis: ')' at position %d has no matching '('", e.Pos)
	case MissingBrace:
		return fmt.Sprintf("missing brace: '{' at position %d is never closed", e.Pos)
	case UnbalancedBrace:
		return fmt.Sprintf("unbalanced brace: '}' at position %d does not follow '{'", e.Pos)
	case NondigitInBraces:
		return fmt.Sprintf("non-digit %q inside '{...}' at position %d", e.Sym, e.Pos)
	case EmptyBraces:
		return fmt.Sprintf("empty '{}' at position %d", e.Pos)
	case TooLargeRepetition:
		return "repetition count exceeds the configured maximum"
	case NothingToRepeat:
		return fmt.Sprintf("nothing to repeat at position %d", e.Pos)
	case MultipleRepeat:
		return fmt.Sprintf("multiple repeat at position %d", e.Pos)
	case EscapeAtEnd:
		return "trailing '\\' at end of pattern"
	case EscapeUnknown:
		return fmt.Sprintf("unknown escape '\\%c' at position %d", e.Sym, e.Pos)
	case InvalidByte:
		return fmt.Sprintf("invalid 0x00 byte at position %d", e.Pos)
	default:
		return "syntax error"
	}
}

// TooManyStatesError reports that compiling the pattern would exceed
// Config.MaxNFAStates — the adversarial-input cap the resource model calls
// for, since a deeply nested {n} repetition can otherwise blow up the NFA
// arena well past what any realistic pattern needs.
type TooManyStatesError struct {
	Limit int
}

func (e *TooManyStatesError) Error() string {
	return fmt.Sprintf("pattern exceeds the %d NFA state limit", e.Limit)
}
