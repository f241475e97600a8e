package planning

import (
	"fmt"
	"strings"
)

// Action is a STRIPS-style operator over literals. Actions are static: a
// Domain defines them once and planners never mutate them.
//
// Applicability: Pre must be a subset of the current state. Applying an
// action removes Del then adds Add (delete-before-add). Domains with
// overlapping Add and Del sets are rejected at construction so the apply
// order never matters in practice.
type Action struct {
	Name string
	Pre  State
	Add  State
	Del  State
}

// NewAction builds an Action from literal slices.
func NewAction(name string, pre, add, del []Literal) Action {
	return Action{
		Name: name,
		Pre:  NewState(pre...),
		Add:  NewState(add...),
		Del:  NewState(del...),
	}
}

// Domain is an ordered collection of action schemas. Declaration order
// matters: both planners break ties by it. A Domain is immutable after
// construction and safe for concurrent readers.
type Domain struct {
	Name    string
	actions []Action
	byName  map[string]*Action
}

// NewDomain validates the given actions and builds a Domain.
// It rejects duplicate action names and actions whose add and delete
// effects overlap.
func NewDomain(name string, actions []Action) (*Domain, error) {
	var errs []string

	d := &Domain{
		Name:    name,
		actions: actions,
		byName:  make(map[string]*Action, len(actions)),
	}
	for i := range d.actions {
		a := &d.actions[i]
		if a.Name == "" {
			errs = append(errs, fmt.Sprintf("action %d has no name", i))
			continue
		}
		if _, dup := d.byName[a.Name]; dup {
			errs = append(errs, fmt.Sprintf("duplicate action name: %q", a.Name))
		}
		d.byName[a.Name] = a

		for l := range a.Add {
			if a.Del[l] {
				errs = append(errs, fmt.Sprintf("action %q both adds and deletes %q", a.Name, l))
			}
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid domain %q: %s", name, strings.Join(errs, "; "))
	}
	return d, nil
}

// Actions returns the action schemas in declaration order.
// Callers must not modify the returned slice.
func (d *Domain) Actions() []Action {
	return d.actions
}

// Get returns the action with the given name, or nil if unknown.
func (d *Domain) Get(name string) *Action {
	return d.byName[name]
}

// Len returns the number of action schemas.
func (d *Domain) Len() int {
	return len(d.actions)
}

// Applicable reports whether a can fire in state s.
func (a *Action) Applicable(s State) bool {
	return s.ContainsAll(a.Pre)
}

// Apply mutates s with a's effects: deletes first, then adds.
func (a *Action) Apply(s State) {
	for l := range a.Del {
		delete(s, l)
	}
	for l := range a.Add {
		s[l] = true
	}
}
