package interp

import "github.com/vinhtc27/interpreter/internal/object"

// Environment is a chain of scopes implementing lexical variable binding.
// A block's Environment shares, rather than clones, its enclosing
// Environment: reading and assigning via the pointer chain is how
// mutations made inside a block stay visible once the block exits.
type Environment struct {
	values    map[string]object.Value
	enclosing *Environment
}

// NewEnvironment creates a scope enclosed by parent. Pass nil for the
// global scope.
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{values: make(map[string]object.Value), enclosing: parent}
}

// Define always inserts into the current scope, shadowing (without
// destroying) any outer binding of the same name.
func (e *Environment) Define(name string, value object.Value) {
	e.values[name] = value
}

// Get walks from this scope outward and returns the first binding found.
func (e *Environment) Get(name string) (object.Value, bool) {
	for env := e; env != nil; env = env.enclosing {
		if v, ok := env.values[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Assign walks outward to find an existing binding and rewrites it in
// place. It reports false if no such binding exists anywhere in the
// chain; the caller turns that into an UndefinedVariableError.
func (e *Environment) Assign(name string, value object.Value) bool {
	for env := e; env != nil; env = env.enclosing {
		if _, ok := env.values[name]; ok {
			env.values[name] = value
			return true
		}
	}
	return false
}

// Names returns every name bound anywhere in the scope chain from this
// Environment outward, de-duplicated. Used to offer "did you mean"
// suggestions for an undefined-variable diagnostic.
func (e *Environment) Names() []string {
	seen := make(map[string]bool)
	var names []string
	for env := e; env != nil; env = env.enclosing {
		for name := range env.values {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	return names
}

// Depth returns the number of scopes from this Environment up to (and
// including) the global scope. Used by the evaluator to enforce the
// optional MaxEnvironmentDepth safety valve from the sidecar config.
func (e *Environment) Depth() int {
	depth := 1
	for env := e.enclosing; env != nil; env = env.enclosing {
		depth++
	}
	return depth
}
