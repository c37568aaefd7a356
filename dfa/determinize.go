// Package dfa implements subset construction (C3), Hopcroft-style
// minimization with dead-state removal (C4), and the deterministic
// executor (C5) of the compiler pipeline.
package dfa

import (
	"github.com/coregx/redfa/internal/conv"
	"github.com/coregx/redfa/nfa"
)

// DeadState is the distinguished non-accepting state every undefined
// transition in a Raw automaton routes to. Subset construction produces a
// total machine without a separate totalization pass — DeadState is simply
// registered first, as the closure of no NFA states — so Minimize can
// refine partitions on a Raw without totalizing it first.
const DeadState = 0

// Raw is the DFA subset construction produces directly from an NFA: total
// over the alphabet, but not yet minimized, so it may contain states that
// are language-equivalent to one another.
type Raw struct {
	Alphabet []byte
	Final    []bool
	Trans    [][]uint32 // Trans[state][symbolIndex] -> state
	Start    uint32
}

// Determinize runs subset construction over arena starting from start,
// using alphabet (the arena's recorded literal bytes) as the transition
// columns. The returned Raw is total: DeadState stands in for every
// transition on a symbol no NFA path defines.
func Determinize(arena *nfa.Arena, start nfa.StateID, alphabet []byte) *Raw {
	width := len(alphabet)

	byKey := make(map[string]uint32)
	var finals []bool
	var rows [][]uint32
	var pending []nfa.ClosureSet

	register := func(set nfa.ClosureSet) uint32 {
		key := set.Key()
		if id, ok := byKey[key]; ok {
			return id
		}
		id := conv.IntToUint32(len(rows))
		byKey[key] = id
		finals = append(finals, set.Final)
		rows = append(rows, make([]uint32, width))
		pending = append(pending, set)
		return id
	}

	register(nfa.ClosureSet{}) // DeadState, id 0: the closure of nothing
	startID := register(arena.Closure([]nfa.StateID{start}))

	for id := 0; id < len(pending); id++ {
		set := pending[id]
		if id == DeadState {
			continue // dead state's row is already all zeroes (self-loop to dead)
		}
		row := rows[id]
		for col, b := range alphabet {
			moved := arena.Move(set.States, b)
			if len(moved) == 0 {
				row[col] = DeadState
				continue
			}
			row[col] = register(arena.Closure(moved))
		}
	}

	return &Raw{Alphabet: alphabet, Final: finals, Trans: rows, Start: startID}
}
