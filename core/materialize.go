package core

import "github.com/terror/arrg/schema"

// Instance is the materialized form of a parse result: a two-layer value
// lookup per command node. The overlay layer holds values that actually
// appeared on the command line and always wins; the stored layer holds
// defaults and the cached results of computed fields. Computed fields
// evaluate at most once, so repeated reads are stable and never re-trigger
// user code.
type Instance struct {
	cmd     *schema.Command
	overlay map[string]any
	stored  map[string]any
	subs    map[string]*Instance
}

// Materialize builds the instance tree for a result and its schema.
// Subcommand entries mirror the result: a selected child materializes
// recursively, an absent child stays nil.
func Materialize(cmd *schema.Command, result *Result) *Instance {
	inst := &Instance{
		cmd:     cmd,
		overlay: make(map[string]any),
		stored:  make(map[string]any),
		subs:    make(map[string]*Instance),
	}

	for _, f := range cmd.Fields() {
		if result.Supplied[f.Name()] {
			inst.overlay[f.Name()] = result.Values[f.Name()]
			continue
		}
		if f.Compute() == nil {
			inst.stored[f.Name()] = result.Values[f.Name()]
		}
		// Computed fields stay unset until first read.
	}

	for _, child := range cmd.Children() {
		if sub := result.Command(child.Name()); sub != nil {
			inst.subs[child.Name()] = Materialize(child, sub)
		} else {
			inst.subs[child.Name()] = nil
		}
	}

	return inst
}

// Get returns the value for the named field, consulting the overlay first.
// A computed field with no parsed value evaluates on first read and caches
// its result in the stored layer.
func (i *Instance) Get(name string) any {
	if v, ok := i.overlay[name]; ok {
		return v
	}
	if v, ok := i.stored[name]; ok {
		return v
	}
	if f := i.cmd.Field(name); f != nil && f.Compute() != nil {
		v := f.Compute()()
		i.stored[name] = v
		return v
	}
	return nil
}

// Set writes into the overlay layer, shadowing stored and computed values.
func (i *Instance) Set(name string, value any) {
	i.overlay[name] = value
}

// Sub returns the materialized instance for the named subcommand, or nil
// when it was not selected.
func (i *Instance) Sub(name string) *Instance { return i.subs[name] }

// Absent reports whether the named subcommand was declared but not
// selected.
func (i *Instance) Absent(name string) bool {
	sub, ok := i.subs[name]
	return ok && sub == nil
}

// Schema returns the command node this instance was materialized from.
func (i *Instance) Schema() *schema.Command { return i.cmd }
