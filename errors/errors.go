package errors

import "fmt"

// ParseError is a generic parsing error produced by the engine. It is used
// where no more specific error kind applies, such as leftover tokens that
// match neither a flag, a positional slot, nor a subcommand.
type ParseError struct{ Msg string }

func (e ParseError) Error() string { return e.Msg }

// DuplicateFlagError indicates two field descriptors registered the same
// flag spelling at the same command level. It is a schema construction
// error, reported at compile time.
type DuplicateFlagError struct{ Spelling, Field string }

func (e DuplicateFlagError) Error() string {
	return fmt.Sprintf("duplicate flag %s registered by field %s", e.Spelling, e.Field)
}

// UnknownFlagError indicates a token that looks like a flag but matches no
// registered spelling at the current level. Suggestion, if present, is a
// close match the user may have intended.
type UnknownFlagError struct{ Flag, Command, Suggestion string }

func (e UnknownFlagError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown flag %s for command %s (did you mean %q?)", e.Flag, e.Command, e.Suggestion)
	}
	return fmt.Sprintf("unknown flag %s for command %s", e.Flag, e.Command)
}

// MissingRequiredError indicates a required positional or flag was never
// supplied.
type MissingRequiredError struct{ Field, Command string }

func (e MissingRequiredError) Error() string {
	return fmt.Sprintf("missing required argument %s for command %s", e.Field, e.Command)
}

// ConversionError indicates a token could not be converted to a field's
// declared type. Type holds a rendering of the expected type descriptor.
type ConversionError struct{ Field, Token, Type string }

func (e ConversionError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("cannot convert %q to %s", e.Token, e.Type)
	}
	return fmt.Sprintf("cannot convert %q to %s for field %s", e.Token, e.Type, e.Field)
}

// ArityError indicates the wrong number of tokens for a fixed-arity field,
// for example a 3-tuple given 2 comma-separated parts.
type ArityError struct {
	Field     string
	Want, Got int
}

func (e ArityError) Error() string {
	return fmt.Sprintf("field %s expects %d value(s), got %d", e.Field, e.Want, e.Got)
}

// UnknownSubcommandError indicates the user invoked a subcommand that does
// not exist. Suggestion, if present, is a close match the user may have
// intended.
type UnknownSubcommandError struct{ Name, Suggestion string }

func (e UnknownSubcommandError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown subcommand: %s (did you mean %q?)", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("unknown subcommand: %s", e.Name)
}

// Helper constructors
func NewParseError(msg string) error { return ParseError{Msg: msg} }
func NewDuplicateFlag(spelling, field string) error {
	return DuplicateFlagError{Spelling: spelling, Field: field}
}
func NewUnknownFlag(flag, command, suggestion string) error {
	return UnknownFlagError{Flag: flag, Command: command, Suggestion: suggestion}
}
func NewMissingRequired(field, command string) error {
	return MissingRequiredError{Field: field, Command: command}
}
func NewConversion(field, token, typ string) error {
	return ConversionError{Field: field, Token: token, Type: typ}
}
func NewArity(field string, want, got int) error {
	return ArityError{Field: field, Want: want, Got: got}
}
func NewUnknownSubcommand(name, suggestion string) error {
	return UnknownSubcommandError{Name: name, Suggestion: suggestion}
}
