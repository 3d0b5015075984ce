package schema

import "strings"

// ArityKind describes how many tokens a field consumes.
type ArityKind int

const (
	// ArityOne consumes the single following token.
	ArityOne ArityKind = iota
	// ArityZeroOrMore consumes every following token up to the next flag or
	// subcommand name.
	ArityZeroOrMore
	// ArityExactly consumes exactly N following tokens.
	ArityExactly
	// ArityFlag consumes no tokens; presence alone sets boolean true.
	ArityFlag
)

// Arity pairs an ArityKind with its count for ArityExactly.
type Arity struct {
	Kind ArityKind
	N    int
}

func One() Arity        { return Arity{Kind: ArityOne} }
func ZeroOrMore() Arity { return Arity{Kind: ArityZeroOrMore} }
func Exactly(n int) Arity {
	return Arity{Kind: ArityExactly, N: n}
}
func Presence() Arity { return Arity{Kind: ArityFlag} }

// Field is the atomic unit of a schema: one positional argument or one
// flag. Fields are constructed once when the schema is declared and are not
// mutated afterwards; the With* methods are only meant to be chained off the
// constructor.
type Field struct {
	name      string
	spellings []string // empty means positional
	typ       *Type
	def       any
	hasDef    bool
	required  bool
	arity     Arity
	help      string
	compute   func() any
}

// NewField declares a positional field. Positionals are filled in
// declaration order and are required unless a default is declared.
func NewField(name string, typ *Type) *Field {
	f := &Field{name: name, typ: typ, arity: One()}
	if typ.Kind() == KindList || typ.Kind() == KindSet {
		f.arity = ZeroOrMore()
	}
	return f
}

// NewFlag declares a flag field with the given spellings. With no explicit
// spellings the long form is derived from the field name. Boolean flags
// default to presence arity, list and set flags to zero-or-more.
func NewFlag(name string, typ *Type, spellings ...string) *Field {
	if len(spellings) == 0 {
		spellings = []string{"--" + strings.ToLower(name)}
	}
	f := &Field{name: name, spellings: spellings, typ: typ, arity: One()}
	switch {
	case typ.Kind() == KindPrimitive && typ.Primitive() == PrimBool:
		f.arity = Presence()
	case typ.Kind() == KindList || typ.Kind() == KindSet:
		f.arity = ZeroOrMore()
	}
	return f
}

// WithShort adds a short spelling derived from the first letter of the
// field name, mirroring option(short=True) in declaration layers.
func (f *Field) WithShort() *Field {
	f.spellings = append(f.spellings, "-"+strings.ToLower(f.name[:1]))
	return f
}

// WithSpellings replaces the flag spellings entirely.
func (f *Field) WithSpellings(spellings ...string) *Field {
	f.spellings = spellings
	return f
}

// WithDefault declares an explicit default, used when the field is absent
// from the token stream.
func (f *Field) WithDefault(v any) *Field {
	f.def = v
	f.hasDef = true
	return f
}

// Require marks the field as required. A required field missing from the
// token stream is an error even when a default is declared.
func (f *Field) Require() *Field {
	f.required = true
	return f
}

// WithArity overrides the arity chosen by the constructor.
func (f *Field) WithArity(a Arity) *Field {
	f.arity = a
	return f
}

// WithHelp attaches help text. The engine carries it for external help
// renderers but never formats it itself.
func (f *Field) WithHelp(text string) *Field {
	f.help = text
	return f
}

// WithCompute attaches a lazily evaluated value used by the materializer
// when the field was not parsed. Parsed values always take precedence.
func (f *Field) WithCompute(fn func() any) *Field {
	f.compute = fn
	return f
}

func (f *Field) Name() string        { return f.name }
func (f *Field) Spellings() []string { return f.spellings }
func (f *Field) Positional() bool    { return len(f.spellings) == 0 }
func (f *Field) Type() *Type         { return f.typ }
func (f *Field) Required() bool      { return f.required }
func (f *Field) Arity() Arity        { return f.arity }
func (f *Field) Help() string        { return f.help }
func (f *Field) Compute() func() any { return f.compute }

// Default returns the declared default and whether one was declared.
func (f *Field) Default() (any, bool) { return f.def, f.hasDef }
