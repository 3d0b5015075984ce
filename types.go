package arrg

import (
	"github.com/terror/arrg/core"
	"github.com/terror/arrg/schema"
)

// Re-exports so simple programs only import the root package. The schema
// and core packages remain the canonical homes.

// Command is one level of the command tree: the root application or a
// subcommand, owning fields and child commands.
type Command = schema.Command

// Field is the schema entry for one flag or positional value.
type Field = schema.Field

// Type is a tagged descriptor of a field's value type.
type Type = schema.Type

// Parser is the compiled, executable form of a command node.
type Parser = core.Parser

// Result is the nested value tree produced by a parse.
type Result = core.Result

// Instance is the materialized, overlay-aware form of a Result.
type Instance = core.Instance

var (
	New      = schema.New
	Extend   = schema.Extend
	NewField = schema.NewField
	NewFlag  = schema.NewFlag

	Bool     = schema.Bool
	Int      = schema.Int
	Float    = schema.Float
	String   = schema.String
	Optional = schema.Optional
	Union    = schema.Union
	List     = schema.List
	Set      = schema.Set
	Tuple    = schema.Tuple
	Map      = schema.Map
	Enum     = schema.Enum
	Literal  = schema.Literal
	Custom   = schema.Custom
)
