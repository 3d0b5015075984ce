package schema

import (
	"fmt"
	"strings"
)

// TypeKind discriminates the Type variant.
type TypeKind int

const (
	KindPrimitive TypeKind = iota
	KindOptional
	KindUnion
	KindList
	KindSet
	KindTuple
	KindMap
	KindEnum
	KindLiteral
	KindCustom
)

// PrimitiveKind names a scalar token type the resolver knows how to parse.
type PrimitiveKind int

const (
	PrimBool PrimitiveKind = iota
	PrimInt
	PrimFloat
	PrimString
	PrimPath
	PrimUUID
	PrimDate
	PrimDateTime
	PrimTime
	PrimDuration
	PrimIP
	PrimRegex
)

var primitiveNames = map[PrimitiveKind]string{
	PrimBool:     "bool",
	PrimInt:      "int",
	PrimFloat:    "float",
	PrimString:   "str",
	PrimPath:     "path",
	PrimUUID:     "uuid",
	PrimDate:     "date",
	PrimDateTime: "datetime",
	PrimTime:     "time",
	PrimDuration: "duration",
	PrimIP:       "ip",
	PrimRegex:    "regex",
}

// Converter turns one raw token into a typed value.
type Converter func(token string) (any, error)

// EnumMember is one name/value pair of an enumeration, in declaration order.
type EnumMember struct {
	Name  string
	Value any
}

// Type is a tagged description of a field's value type. Types are built with
// the constructor functions below and are immutable once constructed.
//
// Union member order is significant: members are tried in declaration order
// and the first successful conversion wins.
type Type struct {
	kind TypeKind
	prim PrimitiveKind

	// Elems holds the inner type(s): one element for Optional/List/Set, the
	// ordered members for Union/Tuple, and [key, value] for Map.
	elems []*Type

	enumName string
	members  []EnumMember
	literals []any
	convert  Converter
}

func Bool() *Type     { return &Type{kind: KindPrimitive, prim: PrimBool} }
func Int() *Type      { return &Type{kind: KindPrimitive, prim: PrimInt} }
func Float() *Type    { return &Type{kind: KindPrimitive, prim: PrimFloat} }
func String() *Type   { return &Type{kind: KindPrimitive, prim: PrimString} }
func Path() *Type     { return &Type{kind: KindPrimitive, prim: PrimPath} }
func UUID() *Type     { return &Type{kind: KindPrimitive, prim: PrimUUID} }
func Date() *Type     { return &Type{kind: KindPrimitive, prim: PrimDate} }
func DateTime() *Type { return &Type{kind: KindPrimitive, prim: PrimDateTime} }
func Time() *Type     { return &Type{kind: KindPrimitive, prim: PrimTime} }
func Duration() *Type { return &Type{kind: KindPrimitive, prim: PrimDuration} }
func IP() *Type       { return &Type{kind: KindPrimitive, prim: PrimIP} }
func Regex() *Type    { return &Type{kind: KindPrimitive, prim: PrimRegex} }

// Optional wraps inner so that absence maps to the no-value sentinel (nil)
// instead of a type-driven default.
func Optional(inner *Type) *Type {
	return &Type{kind: KindOptional, elems: []*Type{inner}}
}

// Union tries members in the given order and accepts the first successful
// conversion. If every member fails the raw token is passed through as a
// string rather than rejected.
func Union(members ...*Type) *Type {
	return &Type{kind: KindUnion, elems: members}
}

// List converts one element per token; token grouping is the parser's job.
func List(elem *Type) *Type { return &Type{kind: KindList, elems: []*Type{elem}} }

// Set is List with duplicate elements collapsed by the parser.
func Set(elem *Type) *Type { return &Type{kind: KindSet, elems: []*Type{elem}} }

// Tuple converts a single comma-delimited token into a fixed-length value,
// one inner type per position.
func Tuple(elems ...*Type) *Type { return &Type{kind: KindTuple, elems: elems} }

// Map converts a single key=value token.
func Map(key, value *Type) *Type {
	return &Type{kind: KindMap, elems: []*Type{key, value}}
}

// Enum declares a named enumeration. Members keep declaration order, which
// fixes the order of the name list in conversion errors.
func Enum(name string, members ...EnumMember) *Type {
	return &Type{kind: KindEnum, enumName: name, members: members}
}

// Literal restricts the token to one of the given scalar values. Numeric
// literals compare numerically and boolean literals through the boolean
// matcher.
func Literal(values ...any) *Type { return &Type{kind: KindLiteral, literals: values} }

// Custom wraps a user-supplied converter.
func Custom(fn Converter) *Type { return &Type{kind: KindCustom, convert: fn} }

func (t *Type) Kind() TypeKind           { return t.kind }
func (t *Type) Primitive() PrimitiveKind { return t.prim }
func (t *Type) Elems() []*Type           { return t.elems }
func (t *Type) EnumName() string         { return t.enumName }
func (t *Type) Members() []EnumMember    { return t.members }
func (t *Type) Literals() []any          { return t.literals }
func (t *Type) Converter() Converter     { return t.convert }

// Inner returns the single wrapped type of an Optional, List, or Set, and
// nil for every other kind.
func (t *Type) Inner() *Type {
	switch t.kind {
	case KindOptional, KindList, KindSet:
		return t.elems[0]
	}
	return nil
}

// String renders the descriptor for diagnostics, e.g. "union[bool,int,str]".
func (t *Type) String() string {
	switch t.kind {
	case KindPrimitive:
		return primitiveNames[t.prim]
	case KindOptional:
		return fmt.Sprintf("optional[%s]", t.elems[0])
	case KindUnion:
		return "union[" + joinTypes(t.elems) + "]"
	case KindList:
		return fmt.Sprintf("list[%s]", t.elems[0])
	case KindSet:
		return fmt.Sprintf("set[%s]", t.elems[0])
	case KindTuple:
		return "tuple[" + joinTypes(t.elems) + "]"
	case KindMap:
		return fmt.Sprintf("map[%s,%s]", t.elems[0], t.elems[1])
	case KindEnum:
		if t.enumName != "" {
			return t.enumName
		}
		return "enum"
	case KindLiteral:
		parts := make([]string, len(t.literals))
		for i, v := range t.literals {
			parts[i] = fmt.Sprintf("%v", v)
		}
		return "literal[" + strings.Join(parts, ",") + "]"
	case KindCustom:
		return "custom"
	}
	return "unknown"
}

func joinTypes(ts []*Type) string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = t.String()
	}
	return strings.Join(parts, ",")
}
