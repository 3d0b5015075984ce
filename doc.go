// Package arrg is a declarative command-line interface engine for Go: the
// shape of a command line (flags, positionals, nested subcommands, inherited
// option sets) is described as a typed schema, compiled into a parser, and
// raw argument tokens are mapped back into a strongly-typed value tree.
//
// The schema is plain data built with the schema package's constructors or
// loaded from a YAML/TOML declaration file; no runtime reflection is
// involved. Parsing is pure: the engine never prints, reads os.Args, or
// exits the process. The display package provides that boundary for
// programs that want it.
package arrg

//go:generate gomarkdoc ./ -o docs/arrg.md
