package interpreter

import "sort"

// binding is a variable slot: its value plus an optional stuffed value.
type binding struct {
	value Value
	stuff *Value
}

// Environment is one scope in the chain. The parent is fixed at creation, so
// the chain always points strictly outward and has no cycles.
type Environment struct {
	parent *Environment
	vars   map[string]binding
}

func NewEnvironment() *Environment {
	return &Environment{vars: map[string]binding{}}
}

// Extend returns a new child scope of e.
func (e *Environment) Extend() *Environment {
	return &Environment{parent: e, vars: map[string]binding{}}
}

func (e *Environment) Parent() *Environment { return e.parent }

func (e *Environment) lookup(name string) (binding, bool) {
	for env := e; env != nil; env = env.parent {
		if b, ok := env.vars[name]; ok {
			return b, true
		}
	}
	return binding{}, false
}

// Get returns the value of the nearest binding of name.
func (e *Environment) Get(name string) (Value, error) {
	if b, ok := e.lookup(name); ok {
		return b.value, nil
	}
	return Value{}, NewError(UndefinedVariableError, "Undefined variable: %s", name)
}

// Set assigns name in this scope, never in an ancestor. An outer binding of
// the same name is shadowed, not updated, and any stuffed value on the old
// binding is dropped.
func (e *Environment) Set(name string, v Value) Value {
	e.vars[name] = binding{value: v}
	return v
}

// Define binds name in this scope. It is used for parameters and host
// functions.
func (e *Environment) Define(name string, v Value) Value {
	e.vars[name] = binding{value: v}
	return v
}

// Exists reports whether this scope itself binds name. Ancestors are not
// consulted.
func (e *Environment) Exists(name string) bool {
	_, ok := e.vars[name]
	return ok
}

// SetStuff attaches v to name. The nearest visible value is copied into
// this scope so the stuffed binding is local, like Set.
func (e *Environment) SetStuff(name string, v Value) (Value, error) {
	b, ok := e.lookup(name)
	if !ok {
		return Value{}, NewError(UndefinedVariableError, "Undefined variable: %s", name)
	}
	stuff := v
	e.vars[name] = binding{value: b.value, stuff: &stuff}
	return v, nil
}

// GetStuff returns the value stuffed on the nearest binding of name.
func (e *Environment) GetStuff(name string) (Value, error) {
	b, ok := e.lookup(name)
	if !ok || b.stuff == nil {
		return Value{}, NewError(UndefinedMetadataError, "Undefined stuffed variable: %s", name)
	}
	return *b.stuff, nil
}

// Names returns the names bound directly in this scope, sorted.
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.vars))
	for name := range e.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
