package core

import (
	"testing"

	"github.com/chriso345/gore/assert"
	"github.com/chriso345/gore/vital"
	"github.com/terror/arrg/schema"
)

func TestMaterialize_ParsedValueOverlaysDefault(t *testing.T) {
	cmd := schema.New("mytool")
	cmd.MustAddField(schema.NewFlag("port", schema.Int(), "--port").WithDefault(int64(8080)))

	result, err := mustCompile(t, cmd).Parse([]string{"--port", "9090"})
	vital.Nil(t, err)

	inst := Materialize(cmd, result)
	assert.Equal[any](t, inst.Get("port"), int64(9090))
}

func TestMaterialize_DefaultWhenNotSupplied(t *testing.T) {
	cmd := schema.New("mytool")
	cmd.MustAddField(schema.NewFlag("port", schema.Int(), "--port").WithDefault(int64(8080)))

	result, err := mustCompile(t, cmd).Parse(nil)
	vital.Nil(t, err)

	inst := Materialize(cmd, result)
	assert.Equal[any](t, inst.Get("port"), int64(8080))
}

func TestMaterialize_ComputedEvaluatesOnce(t *testing.T) {
	calls := 0
	cmd := schema.New("mytool")
	cmd.MustAddField(schema.NewFlag("token", schema.String(), "--token").
		WithCompute(func() any {
			calls++
			return "generated"
		}))

	result, err := mustCompile(t, cmd).Parse(nil)
	vital.Nil(t, err)

	inst := Materialize(cmd, result)
	assert.Equal(t, calls, 0)
	assert.Equal(t, inst.Get("token"), "generated")
	assert.Equal(t, inst.Get("token"), "generated")
	assert.Equal(t, calls, 1)
}

func TestMaterialize_ParsedValueSuppressesCompute(t *testing.T) {
	calls := 0
	cmd := schema.New("mytool")
	cmd.MustAddField(schema.NewFlag("token", schema.String(), "--token").
		WithCompute(func() any {
			calls++
			return "generated"
		}))

	result, err := mustCompile(t, cmd).Parse([]string{"--token", "supplied"})
	vital.Nil(t, err)

	inst := Materialize(cmd, result)
	assert.Equal(t, inst.Get("token"), "supplied")
	assert.Equal(t, calls, 0)
}

func TestMaterialize_SetShadowsEverything(t *testing.T) {
	cmd := schema.New("mytool")
	cmd.MustAddField(schema.NewFlag("port", schema.Int(), "--port").WithDefault(int64(8080)))

	result, err := mustCompile(t, cmd).Parse(nil)
	vital.Nil(t, err)

	inst := Materialize(cmd, result)
	inst.Set("port", int64(1234))
	assert.Equal[any](t, inst.Get("port"), int64(1234))
}

func TestMaterialize_SubcommandTreeMirrorsResult(t *testing.T) {
	push := schema.New("push")
	push.MustAddField(schema.NewFlag("force", schema.Bool(), "-f"))
	remote := schema.New("remote")
	remote.MustAddCommand(push)
	app := schema.New("git")
	app.MustAddCommand(remote)
	app.MustAddCommand(schema.New("status"))

	result, err := mustCompile(t, app).Parse([]string{"remote", "push", "-f"})
	vital.Nil(t, err)

	inst := Materialize(app, result)
	assert.True(t, inst.Absent("status"))

	remoteInst := inst.Sub("remote")
	if remoteInst == nil {
		t.Fatal("expected remote instance")
	}
	pushInst := remoteInst.Sub("push")
	if pushInst == nil {
		t.Fatal("expected push instance")
	}
	assert.Equal(t, pushInst.Get("force"), true)
}
