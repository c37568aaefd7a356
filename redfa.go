// Package redfa compiles a small regular expression language straight down
// to a minimized DFA and matches whole strings against it.
//
// The pipeline is four stages: Thompson NFA construction and a stack-driven
// parser build the automaton from the pattern text (package nfa), subset
// construction determinizes it, and Hopcroft-style partition refinement
// minimizes the result (package dfa). Matching is then a pure table walk —
// no backtracking, no allocation, no catastrophic blowup on adversarial
// input.
//
// Supported syntax: literal bytes, concatenation, '|' alternation,
// '(' ')' grouping, '*' '+' '?' repetition, '{n}' counted repetition, '\d'
// for a digit class, and '\' to escape any of '(' ')' '{' '}' '|' '*' '+'
// '?' '\'. There is no '.', no character classes, no anchors, no lazy
// quantifiers, and no submatch capture — Parser.MatchExact only reports
// whether the whole input string is in the pattern's language.
package redfa

import (
	"github.com/pkg/errors"

	"github.com/coregx/redfa/dfa"
	"github.com/coregx/redfa/nfa"
)

// Config controls resource limits applied during compilation. The zero
// Config is not valid for direct use — call DefaultConfig and adjust only
// the fields that matter, the way the corpus's engines do for their own
// Config types.
type Config struct {
	// MaxRepetition caps the value n may take inside a single "{n}". It
	// guards against a pattern text that is small but whose repeated
	// cloning would still blow up compile time and memory.
	MaxRepetition int

	// MaxNFAStates caps the number of NFA states a single compile may
	// allocate. A deeply nested {n} repetition can otherwise grow the NFA
	// arena without bound even with MaxRepetition in place (e.g. nested
	// groups each individually under the per-brace cap); this is the
	// backstop against the combination.
	MaxNFAStates int
}

// DefaultConfig returns the Config used when Compile is called without one.
func DefaultConfig() Config {
	return Config{
		MaxRepetition: 1024,
		MaxNFAStates:  200_000,
	}
}

// Stats reports the size of each stage's output, for callers who want
// visibility into what a pattern actually compiled to without re-deriving
// it themselves.
type Stats struct {
	NFAStates          int
	RawDFAStates       int
	MinimizedDFAStates int
	AlphabetSize       int
}

// Parser is a compiled pattern: an executable minimized DFA plus the stats
// collected while building it. The name mirrors the corpus's convention of
// naming the compiled-pattern type after the stage that ultimately owns
// matching, not after the whole pipeline.
type Parser struct {
	dfa   *dfa.Minimized
	stats Stats
}

// Compile parses re and builds its minimized DFA using DefaultConfig.
func Compile(re string) (*Parser, error) {
	return CompileWithConfig(re, DefaultConfig())
}

// MustCompile is like Compile but panics if re fails to compile. Intended
// for package-level pattern variables initialized from literals known to be
// valid at compile time, the same use case stdlib's regexp.MustCompile
// serves.
func MustCompile(re string) *Parser {
	p, err := Compile(re)
	if err != nil {
		panic(err)
	}
	return p
}

// CompileWithConfig parses re and builds its minimized DFA under cfg's
// resource limits.
func CompileWithConfig(re string, cfg Config) (*Parser, error) {
	arena, start, err := nfa.Compile([]byte(re), cfg.MaxNFAStates, cfg.MaxRepetition)
	if err != nil {
		return nil, errors.Wrap(err, "parsing pattern")
	}

	alphabet := arena.Alphabet.Symbols()
	raw := dfa.Determinize(arena, start, alphabet)
	min := dfa.Minimize(raw)

	return &Parser{
		dfa: min,
		stats: Stats{
			NFAStates:          arena.Len(),
			RawDFAStates:       len(raw.Trans),
			MinimizedDFAStates: len(min.States),
			AlphabetSize:       len(alphabet),
		},
	}, nil
}

// MatchExact reports whether s, in its entirety, is in the compiled
// pattern's language. There is no partial or prefix match.
func (p *Parser) MatchExact(s []byte) bool {
	return p.dfa.Accept(s)
}

// Find is reserved for substring search, which this package's scope
// excludes — it always reports no match.
func (p *Parser) Find(s []byte) int {
	return -1
}

// Stats returns the size of each compilation stage's output for this
// pattern.
func (p *Parser) Stats() Stats {
	return p.stats
}
