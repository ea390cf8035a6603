/*
Package env implements mylang's environment chain (spec.md §3,
§4.3.1). It is grounded on the teacher's scope.Scope, trimmed to
mylang's semantics: no Consts/LetVars/LetTypes (mylang has no var/let/
const), and — the one deliberate divergence from the teacher — Assign
never searches up the chain. spec.md §4.3.1 is explicit that a write
always targets the current top frame, even when that frame is a bare
block nested inside a function; only Call creates a new frame (spec.md
§4.3.3), so there is no shadowing mechanism to search past.
*/
package env

import "github.com/akashmaji946/mylang/value"

// Environment is one frame of variable bindings plus an optional link
// to a parent frame.
type Environment struct {
	vars   map[string]value.Value
	parent *Environment
}

// New creates an Environment whose parent is parent, or a root frame
// when parent is nil.
func New(parent *Environment) *Environment {
	return &Environment{
		vars:   make(map[string]value.Value),
		parent: parent,
	}
}

// Lookup searches this frame and then each parent frame in turn,
// returning the first binding found.
func (e *Environment) Lookup(name string) (value.Value, bool) {
	if v, ok := e.vars[name]; ok {
		return v, true
	}
	if e.parent != nil {
		return e.parent.Lookup(name)
	}
	return nil, false
}

// Assign binds name to val in this frame only (spec.md §4.3.1). A
// write inside a nested if/while/bare block mutates the same frame as
// the enclosing function call (or the global frame), since those
// constructs never call New — they keep evaluating in the environment
// they were given.
func (e *Environment) Assign(name string, val value.Value) {
	e.vars[name] = val
}
