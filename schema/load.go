package schema

import (
	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/terror/arrg/errors"
)

// Declaration files are one way to produce a schema without writing
// builder calls: a YAML or TOML document describing the command tree.
// The wire shape is shared between both formats.

type fileField struct {
	Name     string   `yaml:"name" toml:"name"`
	Flags    []string `yaml:"flags" toml:"flags"`
	Type     string   `yaml:"type" toml:"type"`
	Default  any      `yaml:"default" toml:"default"`
	Required bool     `yaml:"required" toml:"required"`
	Arity    string   `yaml:"arity" toml:"arity"`
	Help     string   `yaml:"help" toml:"help"`
}

type fileCommand struct {
	Name     string        `yaml:"name" toml:"name"`
	Version  string        `yaml:"version" toml:"version"`
	Extends  string        `yaml:"extends" toml:"extends"`
	Fields   []fileField   `yaml:"fields" toml:"fields"`
	Commands []fileCommand `yaml:"commands" toml:"commands"`
}

type fileSchema struct {
	fileCommand `yaml:",inline"`
	Templates   []fileCommand `yaml:"templates" toml:"templates"`
}

// LoadYAML builds a command schema from a YAML declaration document.
func LoadYAML(data []byte) (*Command, error) {
	var doc fileSchema
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.NewParseError("invalid schema document: " + err.Error())
	}
	return buildSchema(&doc)
}

// LoadTOML builds a command schema from a TOML declaration document.
func LoadTOML(data []byte) (*Command, error) {
	var doc fileSchema
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, errors.NewParseError("invalid schema document: " + err.Error())
	}
	return buildSchema(&doc)
}

func buildSchema(doc *fileSchema) (*Command, error) {
	templates := make(map[string]*Command, len(doc.Templates))
	for i := range doc.Templates {
		tpl, err := buildCommand(&doc.Templates[i], templates)
		if err != nil {
			return nil, err
		}
		templates[tpl.Name()] = tpl
	}
	return buildCommand(&doc.fileCommand, templates)
}

func buildCommand(fc *fileCommand, templates map[string]*Command) (*Command, error) {
	if fc.Name == "" {
		return nil, errors.NewParseError("command is missing a name")
	}

	var cmd *Command
	if fc.Extends != "" {
		tpl, ok := templates[fc.Extends]
		if !ok {
			return nil, errors.NewParseError("unknown template: " + fc.Extends)
		}
		cmd = Extend(fc.Name, tpl)
	} else {
		cmd = New(fc.Name)
	}
	if fc.Version != "" {
		cmd.WithVersion(fc.Version)
	}

	for i := range fc.Fields {
		f, err := buildField(&fc.Fields[i])
		if err != nil {
			return nil, err
		}
		if err := cmd.AddField(f); err != nil {
			return nil, err
		}
	}

	for i := range fc.Commands {
		child, err := buildCommand(&fc.Commands[i], templates)
		if err != nil {
			return nil, err
		}
		if err := cmd.AddCommand(child); err != nil {
			return nil, err
		}
	}

	return cmd, nil
}

func buildField(ff *fileField) (*Field, error) {
	if ff.Name == "" {
		return nil, errors.NewParseError("field is missing a name")
	}
	typeExpr := ff.Type
	if typeExpr == "" {
		typeExpr = "str"
	}
	t, err := ParseTypeExpr(typeExpr)
	if err != nil {
		return nil, errors.NewParseError("field " + ff.Name + ": " + err.Error())
	}

	var f *Field
	if len(ff.Flags) > 0 {
		f = NewFlag(ff.Name, t, ff.Flags...)
	} else {
		f = NewField(ff.Name, t)
	}

	if ff.Default != nil {
		f.WithDefault(normalizeDefault(ff.Default))
	}
	if ff.Required {
		f.Require()
	}
	if ff.Help != "" {
		f.WithHelp(ff.Help)
	}
	if ff.Arity != "" {
		a, err := parseArity(ff.Arity)
		if err != nil {
			return nil, errors.NewParseError("field " + ff.Name + ": " + err.Error())
		}
		f.WithArity(a)
	}
	return f, nil
}

func parseArity(s string) (Arity, error) {
	switch s {
	case "*":
		return ZeroOrMore(), nil
	case "flag":
		return Presence(), nil
	case "1":
		return One(), nil
	}
	var n int
	for _, c := range s {
		if c < '0' || c > '9' {
			return Arity{}, errors.NewParseError("invalid arity: " + s)
		}
		n = n*10 + int(c-'0')
	}
	if n == 0 {
		return Arity{}, errors.NewParseError("invalid arity: " + s)
	}
	return Exactly(n), nil
}

// normalizeDefault narrows decoder-specific integer types so defaults
// compare cleanly with converted values (the resolver produces int64).
func normalizeDefault(v any) any {
	switch n := v.(type) {
	case int:
		return int64(n)
	case int32:
		return int64(n)
	case uint64:
		return int64(n)
	}
	return v
}
