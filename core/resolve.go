package core

import (
	"fmt"
	"net/netip"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/terror/arrg/errors"
	"github.com/terror/arrg/schema"
)

// Boolean literal sets. Matching is case-insensitive.
var (
	boolTrueValues  = []string{"true", "t", "yes", "y", "1"}
	boolFalseValues = []string{"false", "f", "no", "n", "0"}
)

// boolFromString matches the token against the fixed boolean literal sets.
// It returns nil when the token is not a boolean literal, so callers can
// distinguish "not a bool" from false.
func boolFromString(s string) *bool {
	lower := strings.ToLower(s)
	for _, v := range boolTrueValues {
		if lower == v {
			b := true
			return &b
		}
	}
	for _, v := range boolFalseValues {
		if lower == v {
			b := false
			return &b
		}
	}
	return nil
}

// Resolve converts a type descriptor into a converter from one raw token to
// a typed value. Conversion errors carry the offending token and a rendering
// of the expected type; the parser fills in the field name.
//
// List and set descriptors resolve to their element converter: grouping
// tokens into a collection is arity handling and belongs to the parser.
func Resolve(t *schema.Type) schema.Converter {
	switch t.Kind() {
	case schema.KindPrimitive:
		return resolvePrimitive(t)
	case schema.KindOptional:
		return Resolve(t.Inner())
	case schema.KindUnion:
		return resolveUnion(t)
	case schema.KindList, schema.KindSet:
		return Resolve(t.Inner())
	case schema.KindTuple:
		return resolveTuple(t)
	case schema.KindMap:
		return resolveMap(t)
	case schema.KindEnum:
		return resolveEnum(t)
	case schema.KindLiteral:
		return resolveLiteral(t)
	case schema.KindCustom:
		return t.Converter()
	}
	return func(s string) (any, error) { return s, nil }
}

var datetimeLayouts = []string{
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

func resolvePrimitive(t *schema.Type) schema.Converter {
	fail := func(s string) error { return errors.NewConversion("", s, t.String()) }

	switch t.Primitive() {
	case schema.PrimBool:
		return func(s string) (any, error) {
			if b := boolFromString(s); b != nil {
				return *b, nil
			}
			return nil, fail(s)
		}
	case schema.PrimInt:
		return func(s string) (any, error) {
			n, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				return nil, fail(s)
			}
			return n, nil
		}
	case schema.PrimFloat:
		return func(s string) (any, error) {
			f, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fail(s)
			}
			return f, nil
		}
	case schema.PrimString:
		return func(s string) (any, error) { return s, nil }
	case schema.PrimPath:
		return func(s string) (any, error) { return filepath.Clean(s), nil }
	case schema.PrimUUID:
		return func(s string) (any, error) {
			id, err := uuid.Parse(s)
			if err != nil {
				return nil, fail(s)
			}
			return id, nil
		}
	case schema.PrimDate:
		return func(s string) (any, error) {
			d, err := time.Parse("2006-01-02", s)
			if err != nil {
				return nil, fail(s)
			}
			return d, nil
		}
	case schema.PrimDateTime:
		return func(s string) (any, error) {
			// ISO-8601 input; the "T" separator is normalized to a space.
			normalized := strings.Replace(s, "T", " ", 1)
			for _, layout := range datetimeLayouts {
				if d, err := time.Parse(layout, normalized); err == nil {
					return d, nil
				}
			}
			return nil, fail(s)
		}
	case schema.PrimTime:
		return func(s string) (any, error) {
			for _, layout := range []string{"15:04:05.999999999", "15:04:05", "15:04"} {
				if d, err := time.Parse(layout, s); err == nil {
					return d, nil
				}
			}
			return nil, fail(s)
		}
	case schema.PrimDuration:
		return func(s string) (any, error) {
			d, err := time.ParseDuration(s)
			if err != nil {
				return nil, fail(s)
			}
			return d, nil
		}
	case schema.PrimIP:
		return func(s string) (any, error) {
			addr, err := netip.ParseAddr(s)
			if err != nil {
				return nil, fail(s)
			}
			return addr, nil
		}
	case schema.PrimRegex:
		return func(s string) (any, error) {
			re, err := regexp.Compile(s)
			if err != nil {
				return nil, fail(s)
			}
			return re, nil
		}
	}
	return func(s string) (any, error) { return s, nil }
}

// resolveUnion tries members in declaration order and accepts the first
// success. Boolean members go through the literal matcher rather than a
// blind cast, so arbitrary strings cannot spuriously match bool. When every
// member fails, the raw token is returned unchanged: unions are a
// best-effort typed decoder, not a rejection point.
func resolveUnion(t *schema.Type) schema.Converter {
	members := t.Elems()
	return func(s string) (any, error) {
		for _, member := range members {
			switch member.Kind() {
			case schema.KindPrimitive:
				if member.Primitive() == schema.PrimBool {
					if b := boolFromString(s); b != nil {
						return *b, nil
					}
					continue
				}
			case schema.KindEnum:
				if v, err := resolveEnum(member)(s); err == nil {
					return v, nil
				}
				continue
			}
			if v, err := Resolve(member)(s); err == nil {
				return v, nil
			}
		}
		return s, nil
	}
}

// resolveTuple converts one comma-delimited token into a fixed-length
// []any, one inner type per position. A part-count mismatch is an arity
// error.
func resolveTuple(t *schema.Type) schema.Converter {
	elems := t.Elems()
	return func(s string) (any, error) {
		parts := strings.Split(s, ",")
		if len(parts) != len(elems) {
			return nil, errors.NewArity("", len(elems), len(parts))
		}
		out := make([]any, len(parts))
		for i, part := range parts {
			v, err := Resolve(elems[i])(part)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	}
}

// resolveMap converts one key=value token into a single-entry map. The
// parser merges entries when a map-typed field repeats.
func resolveMap(t *schema.Type) schema.Converter {
	keyType, valueType := t.Elems()[0], t.Elems()[1]
	return func(s string) (any, error) {
		key, value, ok := strings.Cut(s, "=")
		if !ok {
			return nil, errors.NewConversion("", s, t.String())
		}
		k, err := Resolve(keyType)(key)
		if err != nil {
			return nil, err
		}
		v, err := Resolve(valueType)(value)
		if err != nil {
			return nil, err
		}
		return map[any]any{k: v}, nil
	}
}

// resolveEnum looks the token up by member name first (case-sensitive),
// then by the string form of each member's underlying value. When every
// underlying value is numeric a numeric parse and value lookup is tried last.
func resolveEnum(t *schema.Type) schema.Converter {
	members := t.Members()
	return func(s string) (any, error) {
		for _, m := range members {
			if m.Name == s {
				return m, nil
			}
		}
		for _, m := range members {
			if fmt.Sprintf("%v", m.Value) == s {
				return m, nil
			}
		}
		if allNumericValues(members) {
			if n, err := strconv.ParseInt(s, 10, 64); err == nil {
				for _, m := range members {
					if numericValue(m.Value) == float64(n) {
						return m, nil
					}
				}
			}
		}
		names := make([]string, len(members))
		for i, m := range members {
			names[i] = "'" + m.Name + "'"
		}
		return nil, errors.NewConversion("", s,
			fmt.Sprintf("%s (choices: %s)", t.String(), strings.Join(names, ", ")))
	}
}

func allNumericValues(members []schema.EnumMember) bool {
	for _, m := range members {
		switch m.Value.(type) {
		case int, int64, float64:
		default:
			return false
		}
	}
	return len(members) > 0
}

func numericValue(v any) float64 {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case float64:
		return n
	}
	return 0
}

// resolveLiteral accepts only the listed scalar values, applying the same
// type-specific coercion as elsewhere: numeric literals compare numerically
// and boolean literals through the literal matcher.
func resolveLiteral(t *schema.Type) schema.Converter {
	literals := t.Literals()
	return func(s string) (any, error) {
		for _, lit := range literals {
			switch v := lit.(type) {
			case string:
				if s == v {
					return v, nil
				}
			case bool:
				if b := boolFromString(s); b != nil && *b == v {
					return v, nil
				}
			case int:
				if n, err := strconv.ParseInt(s, 10, 64); err == nil && n == int64(v) {
					return v, nil
				}
			case int64:
				if n, err := strconv.ParseInt(s, 10, 64); err == nil && n == v {
					return v, nil
				}
			case float64:
				if f, err := strconv.ParseFloat(s, 64); err == nil && f == v {
					return v, nil
				}
			}
		}
		accepted := make([]string, len(literals))
		for i, lit := range literals {
			accepted[i] = fmt.Sprintf("%v", lit)
		}
		return nil, errors.NewConversion("", s,
			fmt.Sprintf("one of: %s", strings.Join(accepted, ", ")))
	}
}
