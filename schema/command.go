package schema

import (
	"github.com/terror/arrg/errors"
)

// Command is one level of the command tree: the root application or a
// subcommand. It owns an ordered list of fields and an ordered list of
// child commands. Commands are built once at declaration time and are not
// mutated during parsing.
type Command struct {
	name     string
	version  string
	fields   []*Field
	children []*Command

	// inherited marks fields copied from a template; only those may be
	// shadowed by a later AddField with the same name.
	inherited map[string]bool
}

// New creates an empty command node.
func New(name string) *Command {
	return &Command{name: name}
}

// Extend creates a command that inherits the template's fields. The copy
// happens here, at construction time: fields later redefined on the child
// with AddField shadow the template's descriptor entirely (the template's
// descriptor is dropped, not merged). Child commands are not inherited.
func Extend(name string, template *Command) *Command {
	c := &Command{name: name, inherited: make(map[string]bool)}
	for _, f := range template.fields {
		c.fields = append(c.fields, f)
		c.inherited[f.name] = true
	}
	return c
}

// WithVersion attaches a version string, surfaced by the display layer.
func (c *Command) WithVersion(v string) *Command {
	c.version = v
	return c
}

// AddField appends a field. A field with the same name as an inherited
// template field replaces it in place, keeping the template's declaration
// order; a name collision with a directly declared field is an error.
func (c *Command) AddField(f *Field) error {
	for i, existing := range c.fields {
		if existing.name == f.name {
			if c.inherited[f.name] {
				c.fields[i] = f
				delete(c.inherited, f.name)
				return nil
			}
			return errors.NewParseError("duplicate field name: " + f.name)
		}
	}
	c.fields = append(c.fields, f)
	return nil
}

// MustAddField is AddField for statically known schemas, panicking on a
// name collision. Schema construction errors are programming errors.
func (c *Command) MustAddField(f *Field) *Command {
	if err := c.AddField(f); err != nil {
		panic(err)
	}
	return c
}

// AddCommand appends a child command. Child names must be unique within
// the parent.
func (c *Command) AddCommand(child *Command) error {
	for _, existing := range c.children {
		if existing.name == child.name {
			return errors.NewParseError("duplicate subcommand name: " + child.name)
		}
	}
	c.children = append(c.children, child)
	return nil
}

// MustAddCommand is AddCommand panicking on a name collision.
func (c *Command) MustAddCommand(child *Command) *Command {
	if err := c.AddCommand(child); err != nil {
		panic(err)
	}
	return c
}

func (c *Command) Name() string    { return c.name }
func (c *Command) Version() string { return c.version }

// Fields returns the fields in declaration order (template fields first).
func (c *Command) Fields() []*Field { return c.fields }

// Children returns the child commands in declaration order.
func (c *Command) Children() []*Command { return c.children }

// Child returns the child with the given name, or nil.
func (c *Command) Child(name string) *Command {
	for _, child := range c.children {
		if child.name == name {
			return child
		}
	}
	return nil
}

// Field returns the field with the given name, or nil.
func (c *Command) Field(name string) *Field {
	for _, f := range c.fields {
		if f.name == name {
			return f
		}
	}
	return nil
}
