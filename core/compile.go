package core

import (
	"github.com/terror/arrg/errors"
	"github.com/terror/arrg/schema"
)

// Parser is the executable form of a command node: a flag lookup table, a
// positional queue, and a registry of compiled child parsers. It holds no
// mutable state once built, so a Parser may be shared across concurrent
// Parse calls, but it is cheap enough to rebuild per invocation.
type Parser struct {
	cmd         *schema.Command
	flags       map[string]*schema.Field
	positionals []*schema.Field
	children    map[string]*Parser
	childOrder  []string
}

type compileOptions struct {
	override bool
}

// Option configures compilation.
type Option func(*compileOptions)

// WithOverride enables the conflict-resolution policy under which a
// later-declared field silently wins a flag-spelling collision instead of
// failing compilation.
func WithOverride() Option {
	return func(o *compileOptions) { o.override = true }
}

// Compile walks a command node and builds its parser tree. Fields register
// in declaration order: positionals append to the positional queue and
// every flag spelling points at its descriptor. Template inheritance is
// already resolved on the command node itself (copy-then-overlay at
// construction), so a child redefinition of a spelling has replaced the
// template's descriptor before compilation sees it.
func Compile(cmd *schema.Command, opts ...Option) (*Parser, error) {
	var options compileOptions
	for _, opt := range opts {
		opt(&options)
	}
	return compile(cmd, options)
}

func compile(cmd *schema.Command, options compileOptions) (*Parser, error) {
	p := &Parser{
		cmd:      cmd,
		flags:    make(map[string]*schema.Field),
		children: make(map[string]*Parser),
	}

	for _, f := range cmd.Fields() {
		if f.Positional() {
			p.positionals = append(p.positionals, f)
			continue
		}
		for _, spelling := range f.Spellings() {
			if _, exists := p.flags[spelling]; exists && !options.override {
				return nil, errors.NewDuplicateFlag(spelling, f.Name())
			}
			p.flags[spelling] = f
		}
	}

	for _, child := range cmd.Children() {
		sub, err := compile(child, options)
		if err != nil {
			return nil, err
		}
		p.children[child.Name()] = sub
		p.childOrder = append(p.childOrder, child.Name())
	}

	return p, nil
}

// Schema returns the command node this parser was compiled from.
func (p *Parser) Schema() *schema.Command { return p.cmd }

// Lookup returns the field registered under the given flag spelling.
func (p *Parser) Lookup(spelling string) (*schema.Field, bool) {
	f, ok := p.flags[spelling]
	return f, ok
}

// Child returns the compiled parser for the named subcommand.
func (p *Parser) Child(name string) (*Parser, bool) {
	sub, ok := p.children[name]
	return sub, ok
}

func (p *Parser) spellings() []string {
	out := make([]string, 0, len(p.flags))
	for s := range p.flags {
		out = append(out, s)
	}
	return out
}
