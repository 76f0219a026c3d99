package domain

import "errors"

// ErrMalformedLine is returned when the argument line cannot be tokenized,
// typically because a quoted value never closes.
var ErrMalformedLine = errors.New("malformed argument line")

// ErrUnsupportedArgument is returned when a named token is not in the allow-list.
var ErrUnsupportedArgument = errors.New("unsupported argument")

// ErrUnsupportedPositional is returned when a positional token is supplied
// but the allow-list does not accept positionals.
var ErrUnsupportedPositional = errors.New("unsupported positional argument")

// ErrInvalidInvocation is returned when the plugin process is started with
// an unrecognized option or argument shape.
var ErrInvalidInvocation = errors.New("invalid invocation")
