// Package nfa implements Thompson-style NFA construction and the stack-driven
// regular expression parser that builds it (the C1 and C2 components of the
// compiler pipeline).
//
// An Arena owns every state created while compiling a single pattern. States
// are allocated by index into a growable slice and referred to solely by
// StateID, so the slice can grow (and reallocate) without invalidating any
// handle returned earlier — only the index has to stay correct, and indices
// never change once assigned. This is the same stable-identity guarantee the
// source achieved with a non-relocating linked container, reached here
// without pointers into the slice.
package nfa

import (
	"sort"

	"github.com/coregx/redfa/internal/conv"
	"github.com/coregx/redfa/internal/sparse"
)

// StateID identifies a state within an Arena.
type StateID uint32

// InvalidState is the all-ones sentinel handle: no state has this id.
const InvalidState StateID = ^StateID(0)

// epsilon is the sentinel transition key for spontaneous (epsilon) moves. It
// is a distinct value from every literal byte (0-255), so a pattern byte of
// value 0 — rejected during parsing, see Parser.step — can never collide
// with it the way it can in a representation that reuses byte 0 as both.
const epsilon = -1

// state is one NFA node: an id, a final flag, and a transition table keyed
// by symbol (a literal byte 0-255, or epsilon). Because a Thompson
// construction can route several edges for the same symbol into the same
// node (e.g. both branches of an alternation joining one accept state),
// each symbol maps to a set of targets, not a single one.
type state struct {
	final       bool
	transitions map[int][]StateID
}

// Arena allocates NFA states for a single compile and hosts the fragment
// algebra (Symbol, Concat, Alt, Kleene, Plus, Question, Copy) that combines
// them into larger fragments. It also accumulates the Alphabet: exactly the
// literal bytes that appeared in any Symbol fragment, which subset
// construction needs for totalization and minimization for its columns.
type Arena struct {
	states   []state
	Alphabet Alphabet

	maxStates int // 0 means unbounded
}

// NewArena creates an empty arena. maxStates bounds the number of states the
// arena will allocate (0 means unbounded); exceeding it raises
// TooManyStatesError rather than growing without limit, the adversarial-input
// guard the resource model calls for against deeply nested {n} repetition.
func NewArena(maxStates int) *Arena {
	return &Arena{states: make([]state, 0, 64), maxStates: maxStates}
}

// NewState allocates a fresh state with the given final flag and returns its
// stable id.
func (a *Arena) NewState(final bool) (StateID, error) {
	if a.maxStates > 0 && len(a.states) >= a.maxStates {
		return InvalidState, &TooManyStatesError{Limit: a.maxStates}
	}
	id := StateID(len(a.states))
	a.states = append(a.states, state{final: final})
	return id, nil
}

// IsFinal reports whether id is an accepting state.
func (a *Arena) IsFinal(id StateID) bool { return a.states[id].final }

// SetFinal sets id's final flag.
func (a *Arena) SetFinal(id StateID, final bool) { a.states[id].final = final }

// Len returns the number of states allocated so far.
func (a *Arena) Len() int { return len(a.states) }

func (a *Arena) addEdge(from StateID, sym int, to StateID) {
	s := &a.states[from]
	if s.transitions == nil {
		s.transitions = make(map[int][]StateID, 2)
	}
	s.transitions[sym] = append(s.transitions[sym], to)
}

// Fragment is a single-entry, single-exit NFA sub-automaton, per the data
// model: Start is the entry state, End the exit state. The fragment with
// Start == End == InvalidState (see emptyFragment; not the zero value,
// whose ids are 0) is the empty fragment, the language {""} —
// concatenating or alternating with it is a no-op or degenerates to
// Question, per the combinators below.
type Fragment struct {
	Start, End StateID
}

func emptyFragment() Fragment { return Fragment{Start: InvalidState, End: InvalidState} }

// IsEmpty reports whether f is the distinguished empty fragment.
func (f Fragment) IsEmpty() bool { return f.Start == InvalidState && f.End == InvalidState }

// Symbol builds the two-state fragment for a single literal byte b: a fresh
// start state with a b-transition to a fresh final end state. b is recorded
// in the arena's Alphabet.
func (a *Arena) Symbol(b byte) (Fragment, error) {
	start, err := a.NewState(false)
	if err != nil {
		return Fragment{}, err
	}
	end, err := a.NewState(true)
	if err != nil {
		return Fragment{}, err
	}
	a.addEdge(start, int(b), end)
	a.Alphabet.Add(b)
	return Fragment{Start: start, End: end}, nil
}

// Concat builds the fragment for x followed by y. An empty operand is
// dropped rather than wired in, since {""} concatenated with anything is
// that thing.
func (a *Arena) Concat(x, y Fragment) Fragment {
	if x.IsEmpty() {
		return y
	}
	if y.IsEmpty() {
		return x
	}
	a.SetFinal(x.End, false)
	a.addEdge(x.End, epsilon, y.Start)
	return Fragment{Start: x.Start, End: y.End}
}

// Alt builds the fragment for x|y: a fresh split state epsilon-branching
// into both operands, and a fresh join state both operands epsilon-join
// into. If both operands are empty the result is empty; if exactly one is,
// the result degenerates to Question of the other (matching {""}|R == R?).
func (a *Arena) Alt(x, y Fragment) (Fragment, error) {
	if x.IsEmpty() && y.IsEmpty() {
		return x, nil
	}
	if x.IsEmpty() {
		return a.Question(y), nil
	}
	if y.IsEmpty() {
		return a.Question(x), nil
	}

	start, err := a.NewState(false)
	if err != nil {
		return Fragment{}, err
	}
	end, err := a.NewState(true)
	if err != nil {
		return Fragment{}, err
	}

	a.SetFinal(x.End, false)
	a.SetFinal(y.End, false)

	a.addEdge(start, epsilon, x.Start)
	a.addEdge(start, epsilon, y.Start)
	a.addEdge(x.End, epsilon, end)
	a.addEdge(y.End, epsilon, end)

	return Fragment{Start: start, End: end}, nil
}

// Kleene builds f* in place: f.start gains an epsilon edge to f.end (zero
// occurrences) and f.end gains an epsilon edge back to f.start (repeat).
// f's own start/end states are reused, so f's final flag stays correct
// without any further bookkeeping.
func (a *Arena) Kleene(f Fragment) Fragment {
	if f.IsEmpty() {
		return f
	}
	a.addEdge(f.Start, epsilon, f.End)
	a.addEdge(f.End, epsilon, f.Start)
	return f
}

// Plus builds f+ in place: only the repeat edge (end back to start) is
// added, so zero occurrences is not reachable.
func (a *Arena) Plus(f Fragment) Fragment {
	if f.IsEmpty() {
		return f
	}
	a.addEdge(f.End, epsilon, f.Start)
	return f
}

// Question builds f? in place: only the skip edge (start to end) is added.
func (a *Arena) Question(f Fragment) Fragment {
	if f.IsEmpty() {
		return f
	}
	a.addEdge(f.Start, epsilon, f.End)
	return f
}

// Copy deep-clones the subgraph reachable from f.Start, preserving every
// state's final flag and every transition within the subgraph, and returns
// the clone's own (start, end) pair. Used by {n} to materialize n
// independent copies of an atom before concat-folding them. Traversal uses
// an explicit worklist rather than recursion: an {n}-fold clone of a deeply
// nested atom can chain to a stack depth proportional to n, which recursion
// would risk overflowing for n near the 1024 ceiling.
func (a *Arena) Copy(f Fragment) (Fragment, error) {
	if f.IsEmpty() {
		return f, nil
	}

	copied := make(map[StateID]StateID, 8)
	cloneOf := func(id StateID) (StateID, bool, error) {
		if c, ok := copied[id]; ok {
			return c, false, nil
		}
		c, err := a.NewState(a.IsFinal(id))
		if err != nil {
			return InvalidState, false, err
		}
		copied[id] = c
		return c, true, nil
	}

	if _, _, err := cloneOf(f.Start); err != nil {
		return Fragment{}, err
	}

	worklist := []StateID{f.Start}
	for len(worklist) > 0 {
		from := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		newFrom := copied[from]

		for sym, targets := range a.states[from].transitions {
			for _, to := range targets {
				newTo, isNew, err := cloneOf(to)
				if err != nil {
					return Fragment{}, err
				}
				a.addEdge(newFrom, sym, newTo)
				if isNew {
					worklist = append(worklist, to)
				}
			}
		}
	}

	return Fragment{Start: copied[f.Start], End: copied[f.End]}, nil
}

// ClosureSet is an epsilon-closed set of NFA states: the least set
// containing some seed states and closed under epsilon-successor, per the
// subset construction data model. States is sorted ascending so it can be
// used to build a stable dictionary key (see Key), which is what makes
// subset construction's DFA-state deduplication deterministic.
type ClosureSet struct {
	States []StateID
	Final  bool
}

// Key returns a value comparable with ==, uniquely identifying this closure
// set's state membership, for use as a map key when subset construction
// memoizes DFA states by the NFA-state set they represent.
func (c ClosureSet) Key() string {
	buf := make([]byte, 0, len(c.States)*4)
	for _, s := range c.States {
		buf = append(buf, byte(s>>24), byte(s>>16), byte(s>>8), byte(s))
	}
	return string(buf)
}

// Closure computes the epsilon-closure of seeds. Implemented with an
// explicit worklist backed by a sparse.SparseSet rather than recursion or a
// map[StateID]bool, since closure sets are computed over and over during
// determinization and the arena's state count is known up front.
func (a *Arena) Closure(seeds []StateID) ClosureSet {
	seen := sparse.NewSparseSet(conv.IntToUint32(len(a.states)))
	stack := make([]StateID, 0, len(seeds))
	for _, s := range seeds {
		seen.Insert(uint32(s))
		stack = append(stack, s)
	}

	var states []StateID
	final := false
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		states = append(states, s)
		if a.IsFinal(s) {
			final = true
		}
		for _, to := range a.states[s].transitions[epsilon] {
			if !seen.Contains(uint32(to)) {
				seen.Insert(uint32(to))
				stack = append(stack, to)
			}
		}
	}

	sort.Slice(states, func(i, j int) bool { return states[i] < states[j] })
	return ClosureSet{States: states, Final: final}
}

// Move returns every state reachable from set via a single transition on
// byte b. The result is not epsilon-closed; callers close it themselves
// (via Closure) to land on the next DFA state.
func (a *Arena) Move(set []StateID, b byte) []StateID {
	var out []StateID
	for _, s := range set {
		out = append(out, a.states[s].transitions[int(b)]...)
	}
	return out
}
