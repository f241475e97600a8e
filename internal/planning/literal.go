package planning

import (
	"fmt"
	"sort"
	"strings"
)

// Literal is an atomic proposition about the learner's world, e.g.
// "Confident(ch1)". Literals are opaque tokens: planners compare them for
// equality and never parse their structure.
type Literal string

// Lit builds a literal from a predicate and subject.
func Lit(pred, subject string) Literal {
	return Literal(fmt.Sprintf("%s(%s)", pred, subject))
}

// State is a set of literals that currently hold.
type State map[Literal]bool

// NewState creates a State from the given literals.
func NewState(lits ...Literal) State {
	s := make(State, len(lits))
	for _, l := range lits {
		s[l] = true
	}
	return s
}

// Contains reports whether l holds in s.
func (s State) Contains(l Literal) bool {
	return s[l]
}

// ContainsAll reports whether every literal of other holds in s.
func (s State) ContainsAll(other State) bool {
	for l := range other {
		if !s[l] {
			return false
		}
	}
	return true
}

// Intersects reports whether s and other share at least one literal.
func (s State) Intersects(other State) bool {
	// Iterate over the smaller set.
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	for l := range small {
		if large[l] {
			return true
		}
	}
	return false
}

// Clone returns an independent copy of s.
func (s State) Clone() State {
	out := make(State, len(s))
	for l := range s {
		out[l] = true
	}
	return out
}

// Union adds every literal of other to s.
func (s State) Union(other State) {
	for l := range other {
		s[l] = true
	}
}

// Equal reports whether s and other hold exactly the same literals.
func (s State) Equal(other State) bool {
	if len(s) != len(other) {
		return false
	}
	return s.ContainsAll(other)
}

// Sorted returns the literals of s in lexicographic order.
// Used wherever iteration order must be deterministic.
func (s State) Sorted() []Literal {
	out := make([]Literal, 0, len(s))
	for l := range s {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (s State) String() string {
	parts := make([]string, 0, len(s))
	for _, l := range s.Sorted() {
		parts = append(parts, string(l))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
