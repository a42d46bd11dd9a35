package interpreter

// GlobalsSnapshot returns a copy of the values bound in the root scope.
func (i *Interpreter) GlobalsSnapshot() map[string]Value {
	out := make(map[string]Value, len(i.root.vars))
	for k, b := range i.root.vars {
		out[k] = b.value
	}
	return out
}

// FuncNames returns the sorted names of root bindings that hold functions,
// host functions included.
func (i *Interpreter) FuncNames() []string {
	names := []string{}
	for _, name := range i.root.Names() {
		if i.root.vars[name].value.Kind == ValFunction {
			names = append(names, name)
		}
	}
	return names
}
