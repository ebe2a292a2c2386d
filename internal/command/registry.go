package command

import "sort"

// Registry stores definitions by name. It does not perform dispatch; the
// router looks up commands and invokes them with its own context.
type Registry struct {
	commands map[string]*Definition
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]*Definition)}
}

// Register adds definitions. Registering the same name twice replaces the
// earlier entry (last write wins).
func (r *Registry) Register(defs ...*Definition) {
	for _, d := range defs {
		r.commands[d.Name] = d
	}
}

// Get returns the definition with the given name.
func (r *Registry) Get(name string) (*Definition, bool) {
	d, ok := r.commands[name]
	return d, ok
}

// All returns every registered definition, sorted by name.
func (r *Registry) All() []*Definition {
	list := make([]*Definition, 0, len(r.commands))
	for _, d := range r.commands {
		list = append(list, d)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Name < list[j].Name
	})
	return list
}
