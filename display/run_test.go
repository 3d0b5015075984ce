package display_test

import (
	"bytes"
	"testing"

	"github.com/chriso345/gore/assert"

	"github.com/terror/arrg/core"
	"github.com/terror/arrg/display"
	"github.com/terror/arrg/errors"
	"github.com/terror/arrg/schema"
)

func demoSchema() *schema.Command {
	cmd := schema.New("mytool").WithVersion("1.2.3")
	cmd.MustAddField(schema.NewFlag("verbose", schema.Bool(), "-v", "--verbose"))
	cmd.MustAddField(schema.NewField("input", schema.String()))
	return cmd
}

func TestRun_Success(t *testing.T) {
	var buf bytes.Buffer
	var got *core.Result

	code := display.Run(demoSchema(), []string{"-v", "data.txt"}, &buf, func(r *core.Result) error {
		got = r
		return nil
	})

	assert.Equal(t, code, display.ExitSuccess)
	assert.Equal(t, buf.String(), "")
	if got == nil {
		t.Fatal("expected callback to receive a result")
	}
	assert.Equal(t, got.Value("verbose"), true)
	assert.Equal(t, got.Value("input"), "data.txt")
}

func TestRun_Version(t *testing.T) {
	var buf bytes.Buffer

	code := display.Run(demoSchema(), []string{"--version"}, &buf, nil)

	assert.Equal(t, code, display.ExitSuccess)
	assert.StringContains(t, buf.String(), "mytool v1.2.3")
}

func TestRun_UsageError(t *testing.T) {
	var buf bytes.Buffer

	code := display.Run(demoSchema(), []string{"--bogus"}, &buf, nil)

	assert.Equal(t, code, display.ExitUsage)
	assert.StringContains(t, buf.String(), "error:")
	assert.StringContains(t, buf.String(), "--bogus")
}

func TestRun_CompileError(t *testing.T) {
	cmd := schema.New("broken")
	cmd.MustAddField(schema.NewFlag("alpha", schema.String(), "-a"))
	cmd.MustAddField(schema.NewFlag("all", schema.Bool(), "-a"))

	var buf bytes.Buffer
	code := display.Run(cmd, nil, &buf, nil)

	assert.Equal(t, code, display.ExitFailure)
	assert.StringContains(t, buf.String(), "-a")
}

func TestRun_CallbackError(t *testing.T) {
	var buf bytes.Buffer

	code := display.Run(demoSchema(), []string{"data.txt"}, &buf, func(r *core.Result) error {
		return errors.NewParseError("downstream failure")
	})

	assert.Equal(t, code, display.ExitFailure)
	assert.StringContains(t, buf.String(), "downstream failure")
}

func TestRunString_SplitsQuotedTokens(t *testing.T) {
	var buf bytes.Buffer
	var got *core.Result

	code := display.RunString(demoSchema(), `--verbose "my file.txt"`, &buf, func(r *core.Result) error {
		got = r
		return nil
	})

	assert.Equal(t, code, display.ExitSuccess)
	if got == nil {
		t.Fatal("expected callback to receive a result")
	}
	assert.Equal(t, got.Value("input"), "my file.txt")
}

func TestReport_ExitCodes(t *testing.T) {
	var buf bytes.Buffer

	assert.Equal(t, display.Report(&buf, errors.NewParseError("boom")), display.ExitFailure)
	assert.Equal(t, display.Report(&buf, errors.NewDuplicateFlag("-a", "alpha")), display.ExitFailure)
	assert.Equal(t, display.Report(&buf, errors.NewUnknownFlag("--x", "app", "")), display.ExitUsage)
	assert.Equal(t, display.Report(&buf, errors.NewMissingRequired("input", "app")), display.ExitUsage)
}

func TestBuildVersion(t *testing.T) {
	v, err := display.BuildVersion(demoSchema())
	assert.Nil(t, err)
	assert.Equal(t, v, "mytool v1.2.3")

	v, err = display.BuildVersion(schema.New("bare"))
	assert.Nil(t, err)
	assert.StringContains(t, v, "version")
}
