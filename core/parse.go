package core

import (
	"fmt"
	"strings"

	"github.com/terror/arrg/errors"
	"github.com/terror/arrg/internal/common"
	"github.com/terror/arrg/schema"
)

// gathered holds the raw tokens collected for one field at one level.
type gathered struct {
	tokens  []string
	present bool
}

// Parse consumes the token stream against this compiled parser and returns
// the value tree. Parsing is a single left-to-right pass per level: tokens
// before the first subcommand name belong to this level, everything after
// is handed to the chosen child's parser, which partitions its own segment
// the same way. Parsing never mutates the parser, so failed calls leave no
// state behind.
func (p *Parser) Parse(tokens []string) (*Result, error) {
	local, childName, segment := p.partition(tokens)

	raw, err := p.scan(local)
	if err != nil {
		return nil, err
	}

	result := newResult(p.cmd)
	for _, f := range p.cmd.Fields() {
		value, supplied, err := p.fieldValue(f, raw[f.Name()])
		if err != nil {
			return nil, err
		}
		result.Values[f.Name()] = value
		if supplied {
			result.Supplied[f.Name()] = true
		}
	}

	for _, name := range p.childOrder {
		result.Commands[name] = nil
	}
	if childName != "" {
		sub, err := p.children[childName].Parse(segment)
		if err != nil {
			return nil, err
		}
		result.Commands[childName] = sub
	}

	return result, nil
}

// partition splits tokens at the first one naming a registered child:
// everything before is level-local, everything after belongs to the child.
// Matching is greedy: a positional value that happens to equal a
// subcommand name selects the subcommand.
func (p *Parser) partition(tokens []string) (local []string, childName string, segment []string) {
	for i, tok := range tokens {
		if _, ok := p.children[tok]; ok {
			return tokens[:i], tok, tokens[i+1:]
		}
	}
	return tokens, "", nil
}

// scan walks the level-local tokens once, assigning each to a flag (with
// its arity's worth of following tokens) or to the next unfilled positional
// slot.
func (p *Parser) scan(local []string) (map[string]*gathered, error) {
	raw := make(map[string]*gathered)
	collect := func(name string) *gathered {
		g, ok := raw[name]
		if !ok {
			g = &gathered{}
			raw[name] = g
		}
		g.present = true
		return g
	}

	positionalIndex := 0
	for i := 0; i < len(local); i++ {
		tok := local[i]

		if common.LooksLikeFlag(tok) {
			spelling, inline, hasInline := splitInline(tok)
			field, ok := p.flags[spelling]
			if !ok {
				suggestion := closestMatch(spelling, p.spellings())
				return nil, errors.NewUnknownFlag(tok, p.cmd.Name(), suggestion)
			}
			g := collect(field.Name())
			if hasInline {
				g.tokens = append(g.tokens, inline)
				continue
			}
			switch field.Arity().Kind {
			case schema.ArityFlag:
				// presence alone; no tokens consumed
			case schema.ArityOne:
				if i+1 >= len(local) || common.LooksLikeFlag(local[i+1]) {
					return nil, errors.NewArity(field.Name(), 1, 0)
				}
				g.tokens = append(g.tokens, local[i+1])
				i++
			case schema.ArityExactly:
				want := field.Arity().N
				got := 0
				for got < want && i+1 < len(local) && !common.LooksLikeFlag(local[i+1]) {
					g.tokens = append(g.tokens, local[i+1])
					i++
					got++
				}
				if got != want {
					return nil, errors.NewArity(field.Name(), want, got)
				}
			case schema.ArityZeroOrMore:
				for i+1 < len(local) && !common.LooksLikeFlag(local[i+1]) {
					g.tokens = append(g.tokens, local[i+1])
					i++
				}
			}
			continue
		}

		// Positional token.
		if positionalIndex >= len(p.positionals) {
			if len(p.childOrder) > 0 {
				// Every positional slot is filled and the command has
				// subcommands, so this is most likely a mistyped one.
				return nil, errors.NewUnknownSubcommand(tok, closestMatch(tok, p.childOrder))
			}
			return nil, errors.NewParseError(
				fmt.Sprintf("unexpected argument %q for command %s", tok, p.cmd.Name()))
		}
		field := p.positionals[positionalIndex]
		positionalIndex++
		g := collect(field.Name())
		g.tokens = append(g.tokens, tok)
		switch field.Arity().Kind {
		case schema.ArityExactly:
			want := field.Arity().N
			for len(g.tokens) < want && i+1 < len(local) && !common.LooksLikeFlag(local[i+1]) {
				g.tokens = append(g.tokens, local[i+1])
				i++
			}
			if len(g.tokens) != want {
				return nil, errors.NewArity(field.Name(), want, len(g.tokens))
			}
		case schema.ArityZeroOrMore:
			for i+1 < len(local) && !common.LooksLikeFlag(local[i+1]) {
				g.tokens = append(g.tokens, local[i+1])
				i++
			}
		}
	}

	return raw, nil
}

// fieldValue converts a field's gathered tokens into its final value, or
// derives a default when the field never appeared. Required fields that
// never appeared fail before any default is consulted.
func (p *Parser) fieldValue(f *schema.Field, g *gathered) (any, bool, error) {
	if g == nil || !g.present {
		if f.Required() {
			return nil, false, errors.NewMissingRequired(f.Name(), p.cmd.Name())
		}
		if def, ok := f.Default(); ok {
			return def, false, nil
		}
		if f.Positional() && f.Arity().Kind != schema.ArityZeroOrMore {
			// Positionals are required unless explicitly defaulted; only
			// zero-or-more slots may legitimately be empty.
			return nil, false, errors.NewMissingRequired(f.Name(), p.cmd.Name())
		}
		return inferredDefault(f.Type()), false, nil
	}

	value, err := convert(f, g)
	if err != nil {
		return nil, false, withField(err, f.Name())
	}
	return value, true, nil
}

func convert(f *schema.Field, g *gathered) (any, error) {
	t := f.Type()
	converter := Resolve(t)

	// A presence flag given no inline value is simply true.
	if f.Arity().Kind == schema.ArityFlag && len(g.tokens) == 0 {
		return true, nil
	}

	switch t.Kind() {
	case schema.KindList:
		out := make([]any, 0, len(g.tokens))
		for _, tok := range g.tokens {
			v, err := converter(tok)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case schema.KindSet:
		out := make([]any, 0, len(g.tokens))
		seen := make(map[string]bool)
		for _, tok := range g.tokens {
			v, err := converter(tok)
			if err != nil {
				return nil, err
			}
			key := fmt.Sprintf("%#v", v)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, v)
		}
		return out, nil
	case schema.KindMap:
		out := make(map[any]any, len(g.tokens))
		for _, tok := range g.tokens {
			v, err := converter(tok)
			if err != nil {
				return nil, err
			}
			for k, entry := range v.(map[any]any) {
				out[k] = entry
			}
		}
		return out, nil
	}

	if len(g.tokens) == 0 {
		// Zero-or-more arity on a scalar type, flag present with no value
		// tokens: an empty collection, same as the multi-token shape below.
		return []any{}, nil
	}
	if len(g.tokens) > 1 {
		// Fixed multi-token arity on a scalar type yields the converted
		// tokens in order.
		out := make([]any, 0, len(g.tokens))
		for _, tok := range g.tokens {
			v, err := converter(tok)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	}
	return converter(g.tokens[0])
}

// inferredDefault derives a zero value from the type when no explicit
// default was declared: bool false, numeric zero, string empty, list and
// set empty, everything else absent.
func inferredDefault(t *schema.Type) any {
	switch t.Kind() {
	case schema.KindPrimitive:
		switch t.Primitive() {
		case schema.PrimBool:
			return false
		case schema.PrimInt:
			return int64(0)
		case schema.PrimFloat:
			return 0.0
		case schema.PrimString:
			return ""
		}
	case schema.KindList, schema.KindSet:
		return []any{}
	}
	return nil
}

// withField stamps the owning field's name onto conversion and arity
// errors raised by converters, which do not know the field they serve.
func withField(err error, name string) error {
	switch e := err.(type) {
	case errors.ConversionError:
		if e.Field == "" {
			e.Field = name
		}
		return e
	case errors.ArityError:
		if e.Field == "" {
			e.Field = name
		}
		return e
	}
	return err
}

// splitInline splits a --flag=value token into spelling and inline value.
func splitInline(tok string) (spelling, inline string, ok bool) {
	spelling, inline, ok = strings.Cut(tok, "=")
	return spelling, inline, ok
}
