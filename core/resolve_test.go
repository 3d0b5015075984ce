package core

import (
	stderrs "errors"
	"net/netip"
	"testing"
	"time"

	"github.com/chriso345/gore/assert"
	"github.com/chriso345/gore/vital"
	"github.com/google/uuid"
	clierr "github.com/terror/arrg/errors"
	"github.com/terror/arrg/schema"
)

func TestResolve_BoolLiterals(t *testing.T) {
	convert := Resolve(schema.Bool())

	cases := []struct {
		token string
		want  bool
	}{
		{"true", true}, {"t", true}, {"yes", true}, {"y", true}, {"1", true},
		{"TRUE", true}, {"Yes", true},
		{"false", false}, {"f", false}, {"no", false}, {"n", false}, {"0", false},
		{"FALSE", false}, {"No", false},
	}
	for _, c := range cases {
		v, err := convert(c.token)
		vital.Nil(t, err)
		assert.Equal[any](t, v, c.want)
	}

	_, err := convert("maybe")
	assert.NotNil(t, err)
	var ce clierr.ConversionError
	assert.True(t, stderrs.As(err, &ce))
	assert.Equal(t, ce.Token, "maybe")
}

func TestResolve_IntAndFloat(t *testing.T) {
	v, err := Resolve(schema.Int())("42")
	vital.Nil(t, err)
	assert.Equal[any](t, v, int64(42))

	_, err = Resolve(schema.Int())("forty-two")
	assert.NotNil(t, err)

	f, err := Resolve(schema.Float())("2.5")
	vital.Nil(t, err)
	assert.Equal(t, f, 2.5)
}

func TestResolve_StringRoundTrip(t *testing.T) {
	convert := Resolve(schema.String())
	v, err := convert("hello world")
	vital.Nil(t, err)
	assert.Equal(t, v, "hello world")
}

func TestResolve_UnionIntString(t *testing.T) {
	convert := Resolve(schema.Union(schema.Int(), schema.String()))

	v, err := convert("1")
	vital.Nil(t, err)
	assert.Equal[any](t, v, int64(1))

	v, err = convert("foo")
	vital.Nil(t, err)
	assert.Equal(t, v, "foo")
}

func TestResolve_UnionBoolBeforeInt(t *testing.T) {
	convert := Resolve(schema.Union(schema.Bool(), schema.Int(), schema.String()))

	// Boolean literals classify as bool before int is attempted.
	for token, want := range map[string]any{
		"true": true,
		"yes":  true,
		"1":    true,
		"0":    false,
		"42":   int64(42),
		"abc":  "abc",
	} {
		v, err := convert(token)
		vital.Nil(t, err)
		assert.Equal(t, v, want)
	}
}

func TestResolve_UnionOrderSensitive(t *testing.T) {
	// Declaration order decides: str before int swallows everything.
	convert := Resolve(schema.Union(schema.String(), schema.Int()))
	v, err := convert("7")
	vital.Nil(t, err)
	assert.Equal(t, v, "7")
}

func TestResolve_UnionFallbackToRawString(t *testing.T) {
	// When no member matches, the union passes the raw token through
	// instead of failing. This is intentionally inconsistent with the
	// fail-fast behavior elsewhere; callers relying on rejection must not
	// use a bare union.
	convert := Resolve(schema.Union(schema.Int(), schema.Float()))
	v, err := convert("not-a-number")
	vital.Nil(t, err)
	assert.Equal(t, v, "not-a-number")
}

func TestResolve_UnionWithEnumMember(t *testing.T) {
	status := schema.Enum("Status",
		schema.EnumMember{Name: "PENDING", Value: 1},
		schema.EnumMember{Name: "ACTIVE", Value: 2},
	)
	convert := Resolve(schema.Union(status, schema.Int()))

	v, err := convert("PENDING")
	vital.Nil(t, err)
	member, ok := v.(schema.EnumMember)
	assert.True(t, ok)
	assert.Equal(t, member.Name, "PENDING")

	v, err = convert("7")
	vital.Nil(t, err)
	assert.Equal[any](t, v, int64(7))
}

func TestResolve_EnumByNameValueAndNumeric(t *testing.T) {
	status := schema.Enum("Status",
		schema.EnumMember{Name: "PENDING", Value: 1},
		schema.EnumMember{Name: "ACTIVE", Value: 2},
	)
	convert := Resolve(status)

	v, err := convert("ACTIVE")
	vital.Nil(t, err)
	assert.Equal(t, v.(schema.EnumMember).Name, "ACTIVE")

	// Underlying value, coerced through its string form.
	v, err = convert("1")
	vital.Nil(t, err)
	assert.Equal(t, v.(schema.EnumMember).Name, "PENDING")

	_, err = convert("4")
	assert.NotNil(t, err)
	assert.StringContains(t, err.Error(), "'PENDING'")
	assert.StringContains(t, err.Error(), "'ACTIVE'")
}

func TestResolve_EnumStringValues(t *testing.T) {
	color := schema.Enum("Color",
		schema.EnumMember{Name: "RED", Value: "red"},
		schema.EnumMember{Name: "BLUE", Value: "blue"},
	)
	convert := Resolve(color)

	v, err := convert("red")
	vital.Nil(t, err)
	assert.Equal(t, v.(schema.EnumMember).Name, "RED")

	// Non-numeric values: no numeric lookup pass.
	_, err = convert("2")
	assert.NotNil(t, err)
}

func TestResolve_Literal(t *testing.T) {
	convert := Resolve(schema.Literal("fast", "slow", 3, true))

	v, err := convert("fast")
	vital.Nil(t, err)
	assert.Equal(t, v, "fast")

	// Numeric literals compare numerically.
	v, err = convert("3")
	vital.Nil(t, err)
	assert.Equal(t, v, 3)

	// Boolean literals go through the boolean matcher.
	v, err = convert("yes")
	vital.Nil(t, err)
	assert.Equal(t, v, true)

	_, err = convert("medium")
	assert.NotNil(t, err)
	assert.StringContains(t, err.Error(), "fast")
	assert.StringContains(t, err.Error(), "slow")
}

func TestResolve_TuplePartsAndArity(t *testing.T) {
	point := schema.Tuple(schema.Int(), schema.Int(), schema.Int())
	convert := Resolve(point)

	v, err := convert("1,2,3")
	vital.Nil(t, err)
	assert.Equal(t, len(v.([]any)), 3)
	assert.Equal[any](t, v.([]any)[1], int64(2))

	_, err = convert("1,2")
	assert.NotNil(t, err)
	var ae clierr.ArityError
	assert.True(t, stderrs.As(err, &ae))
	assert.Equal(t, ae.Want, 3)
	assert.Equal(t, ae.Got, 2)
}

func TestResolve_TupleMixedTypes(t *testing.T) {
	pair := schema.Tuple(schema.String(), schema.Int())
	v, err := Resolve(pair)("answer,42")
	vital.Nil(t, err)
	parts := v.([]any)
	assert.Equal(t, parts[0], "answer")
	assert.Equal[any](t, parts[1], int64(42))
}

func TestResolve_Map(t *testing.T) {
	convert := Resolve(schema.Map(schema.String(), schema.Int()))

	v, err := convert("retries=3")
	vital.Nil(t, err)
	entries := v.(map[any]any)
	assert.Equal[any](t, entries["retries"], int64(3))

	_, err = convert("no-equals-sign")
	assert.NotNil(t, err)
}

func TestResolve_MapValueKeepsEquals(t *testing.T) {
	// Only the first = separates key from value.
	v, err := Resolve(schema.Map(schema.String(), schema.String()))("expr=a=b")
	vital.Nil(t, err)
	assert.Equal(t, v.(map[any]any)["expr"], "a=b")
}

func TestResolve_OptionalUsesInner(t *testing.T) {
	convert := Resolve(schema.Optional(schema.Int()))
	v, err := convert("5")
	vital.Nil(t, err)
	assert.Equal[any](t, v, int64(5))
}

func TestResolve_ListResolvesElement(t *testing.T) {
	// The list converter operates on one element at a time; grouping is
	// the parser's job.
	convert := Resolve(schema.List(schema.Int()))
	v, err := convert("9")
	vital.Nil(t, err)
	assert.Equal[any](t, v, int64(9))
}

func TestResolve_UUID(t *testing.T) {
	v, err := Resolve(schema.UUID())("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	vital.Nil(t, err)
	assert.Equal[any](t, v, uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"))

	_, err = Resolve(schema.UUID())("not-a-uuid")
	assert.NotNil(t, err)
}

func TestResolve_DateAndDateTime(t *testing.T) {
	v, err := Resolve(schema.Date())("2024-06-01")
	vital.Nil(t, err)
	assert.Equal(t, v.(time.Time).Year(), 2024)

	// The T separator normalizes to a space before parsing.
	v, err = Resolve(schema.DateTime())("2024-06-01T12:30:00")
	vital.Nil(t, err)
	assert.Equal(t, v.(time.Time).Hour(), 12)

	v, err = Resolve(schema.DateTime())("2024-06-01 12:30:00")
	vital.Nil(t, err)
	assert.Equal(t, v.(time.Time).Minute(), 30)
}

func TestResolve_DurationAndIP(t *testing.T) {
	v, err := Resolve(schema.Duration())("1h30m")
	vital.Nil(t, err)
	assert.Equal[any](t, v, 90*time.Minute)

	_, err = Resolve(schema.IP())("256.1.1.1")
	assert.NotNil(t, err)

	v, err = Resolve(schema.IP())("192.168.0.1")
	vital.Nil(t, err)
	assert.Equal[any](t, v, netip.MustParseAddr("192.168.0.1"))
}

func TestResolve_Custom(t *testing.T) {
	upper := schema.Custom(func(s string) (any, error) { return s + "!", nil })
	v, err := Resolve(upper)("hey")
	vital.Nil(t, err)
	assert.Equal(t, v, "hey!")
}

func TestResolve_ConversionIdempotence(t *testing.T) {
	// Re-stringifying a converted primitive and converting again yields
	// the same semantic value.
	convert := Resolve(schema.Int())
	v, err := convert("19")
	vital.Nil(t, err)
	again, err := convert("19")
	vital.Nil(t, err)
	assert.Equal(t, v, again)
}
