package arrg

import (
	"github.com/terror/arrg/core"
	"github.com/terror/arrg/schema"
)

// Compile builds the executable parser tree for a command schema. A
// duplicate flag spelling at one level fails compilation unless the
// core.WithOverride conflict policy is passed.
//
// Usage:
//
//	app := schema.New("git").
//		MustAddField(schema.NewFlag("verbose", schema.Bool(), "-v", "--verbose")).
//		MustAddCommand(schema.New("status"))
//
//	parser, err := arrg.Compile(app)
//	if err != nil {
//		log.Fatal(err)
//	}
//	result, err := parser.Parse(os.Args[1:])
var Compile = core.Compile

// Materialize turns a parse result into a two-layer instance: parsed
// values overlay stored defaults and lazily computed fields.
var Materialize = core.Materialize

// Resolve converts a type descriptor into a token converter. Exposed for
// callers that convert tokens outside a full parse.
var Resolve = core.Resolve

// Parse compiles the schema and parses tokens in one step. Programs that
// parse repeatedly should Compile once and reuse the parser; it is
// read-only after compilation.
func Parse(cmd *schema.Command, tokens []string) (*core.Result, error) {
	parser, err := core.Compile(cmd)
	if err != nil {
		return nil, err
	}
	return parser.Parse(tokens)
}
