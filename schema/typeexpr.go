package schema

import (
	"strconv"
	"strings"

	"github.com/terror/arrg/errors"
)

// ParseTypeExpr parses the textual type language used by declaration files
// into a type descriptor. The grammar mirrors the descriptor variants:
//
//	bool, int, float, str, path, uuid, date, datetime, time, duration, ip, regex
//	optional[T]  union[T1,...]  list[T]  set[T]  tuple[T1,...]  map[K,V]
//	enum[NAME=value,...]  literal[v1,v2,...]
//
// Literal and enum values parse as int, float, or bool when they look like
// one, and as strings otherwise.
func ParseTypeExpr(expr string) (*Type, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, errors.NewParseError("empty type expression")
	}

	head, args, err := splitTypeExpr(expr)
	if err != nil {
		return nil, err
	}

	if args == nil {
		if t := primitiveByName(head); t != nil {
			return t, nil
		}
		return nil, errors.NewParseError("unknown type: " + head)
	}

	switch head {
	case "optional":
		if len(args) != 1 {
			return nil, errors.NewParseError("optional takes exactly one type argument")
		}
		inner, err := ParseTypeExpr(args[0])
		if err != nil {
			return nil, err
		}
		return Optional(inner), nil
	case "union":
		members, err := parseTypeList(args)
		if err != nil {
			return nil, err
		}
		return Union(members...), nil
	case "list", "set":
		if len(args) != 1 {
			return nil, errors.NewParseError(head + " takes exactly one type argument")
		}
		inner, err := ParseTypeExpr(args[0])
		if err != nil {
			return nil, err
		}
		if head == "list" {
			return List(inner), nil
		}
		return Set(inner), nil
	case "tuple":
		elems, err := parseTypeList(args)
		if err != nil {
			return nil, err
		}
		return Tuple(elems...), nil
	case "map":
		if len(args) != 2 {
			return nil, errors.NewParseError("map takes exactly two type arguments")
		}
		key, err := ParseTypeExpr(args[0])
		if err != nil {
			return nil, err
		}
		value, err := ParseTypeExpr(args[1])
		if err != nil {
			return nil, err
		}
		return Map(key, value), nil
	case "enum":
		members := make([]EnumMember, 0, len(args))
		for _, arg := range args {
			name, raw, ok := strings.Cut(arg, "=")
			if !ok {
				return nil, errors.NewParseError("enum member must be NAME=value: " + arg)
			}
			members = append(members, EnumMember{
				Name:  strings.TrimSpace(name),
				Value: scalarFromString(strings.TrimSpace(raw)),
			})
		}
		return Enum("enum", members...), nil
	case "literal":
		values := make([]any, 0, len(args))
		for _, arg := range args {
			values = append(values, scalarFromString(strings.TrimSpace(arg)))
		}
		return Literal(values...), nil
	}
	return nil, errors.NewParseError("unknown type: " + head)
}

var primitivesByName = map[string]func() *Type{
	"bool":     Bool,
	"int":      Int,
	"float":    Float,
	"str":      String,
	"string":   String,
	"path":     Path,
	"uuid":     UUID,
	"date":     Date,
	"datetime": DateTime,
	"time":     Time,
	"duration": Duration,
	"ip":       IP,
	"regex":    Regex,
}

func primitiveByName(name string) *Type {
	if ctor, ok := primitivesByName[name]; ok {
		return ctor()
	}
	return nil
}

// splitTypeExpr splits "head[a,b,c]" into head and its bracketed arguments,
// honoring nested brackets. A bare name returns nil arguments.
func splitTypeExpr(expr string) (string, []string, error) {
	open := strings.IndexByte(expr, '[')
	if open < 0 {
		return expr, nil, nil
	}
	if !strings.HasSuffix(expr, "]") {
		return "", nil, errors.NewParseError("unbalanced brackets in type: " + expr)
	}

	head := expr[:open]
	body := expr[open+1 : len(expr)-1]

	var args []string
	depth := 0
	start := 0
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth < 0 {
				return "", nil, errors.NewParseError("unbalanced brackets in type: " + expr)
			}
		case ',':
			if depth == 0 {
				args = append(args, strings.TrimSpace(body[start:i]))
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return "", nil, errors.NewParseError("unbalanced brackets in type: " + expr)
	}
	args = append(args, strings.TrimSpace(body[start:]))
	return head, args, nil
}

func parseTypeList(exprs []string) ([]*Type, error) {
	out := make([]*Type, 0, len(exprs))
	for _, e := range exprs {
		t, err := ParseTypeExpr(e)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// scalarFromString coerces a literal token: int, float, and bool spellings
// become typed values, everything else stays a string. Quoted strings drop
// their quotes, which lets "1" stay a string literal.
func scalarFromString(s string) any {
	if len(s) >= 2 && (s[0] == '\'' || s[0] == '"') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return int(n)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	switch s {
	case "true":
		return true
	case "false":
		return false
	}
	return s
}
