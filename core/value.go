package core

import "github.com/terror/arrg/schema"

// Result is the value tree produced by one parse: a mapping from field name
// to converted value, plus one entry per declared subcommand. A nil entry
// in Commands means the subcommand was not selected (Absent). At most one
// entry per level is non-nil.
type Result struct {
	// Values maps field name to converted value. Every declared field has an
	// entry; fields left unfilled carry their explicit or type-driven
	// default (nil for types with no natural zero).
	Values map[string]any

	// Commands maps every declared child name to its nested result, or nil
	// when the child was not selected.
	Commands map[string]*Result

	// Supplied records which fields were actually present in the token
	// stream, as opposed to filled from a default. The materializer uses
	// this to decide what belongs in the overlay layer.
	Supplied map[string]bool

	cmd *schema.Command
}

func newResult(cmd *schema.Command) *Result {
	return &Result{
		Values:   make(map[string]any),
		Commands: make(map[string]*Result),
		Supplied: make(map[string]bool),
		cmd:      cmd,
	}
}

// Schema returns the command node this result was parsed against.
func (r *Result) Schema() *schema.Command { return r.cmd }

// Value returns the value for the named field, or nil.
func (r *Result) Value(name string) any { return r.Values[name] }

// Command returns the nested result for the named subcommand, or nil when
// the subcommand was not selected.
func (r *Result) Command(name string) *Result { return r.Commands[name] }

// Absent reports whether the named subcommand was declared but not
// selected in this parse.
func (r *Result) Absent(name string) bool {
	sub, ok := r.Commands[name]
	return ok && sub == nil
}
