package config

import (
	"errors"
	"fmt"
)

// IgnoreCaseKey is the environment toggle that enables case-insensitive
// search. Only its presence matters; the value is never inspected.
const IgnoreCaseKey = "IGNORE_CASE"

// ErrInsufficientArguments is returned by Build when the query or file path
// is missing.
var ErrInsufficientArguments = errors.New("not enough arguments")

// Kind classifies a configuration failure.
type Kind int

const (
	// InsufficientArguments means fewer than two positional values followed
	// the program name.
	InsufficientArguments Kind = iota + 1
)

func (k Kind) String() string {
	switch k {
	case InsufficientArguments:
		return "InsufficientArguments"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is the concrete error returned by Build.
type Error struct {
	Kind Kind
	// Got is the number of positional values received after the program name.
	Got int
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: expected a query and a file path, got %d positional argument(s)", ErrInsufficientArguments, e.Got)
}

// Is lets errors.Is match the sentinel for the error's kind.
func (e *Error) Is(target error) bool {
	return e.Kind == InsufficientArguments && target == ErrInsufficientArguments
}

// LookupFunc reports whether an environment key is present and its value.
// os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// MapLookup adapts a plain map to a LookupFunc.
func MapLookup(env map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

// Config is the immutable search configuration for one invocation.
type Config struct {
	query      string
	filePath   string
	ignoreCase bool
}

// Query returns the text to search for.
func (c Config) Query() string { return c.query }

// FilePath returns the path of the file to search.
func (c Config) FilePath() string { return c.filePath }

// IgnoreCase reports whether matching is case-insensitive.
func (c Config) IgnoreCase() bool { return c.ignoreCase }

// Build resolves a Config from args and the environment. args[0] is the
// program name and is skipped; args[1] and args[2] are the query and the file
// path. Anything after them is ignored. On failure the returned Config is the
// zero value.
func Build(args []string, lookup LookupFunc) (Config, error) {
	if len(args) < 3 {
		got := len(args) - 1
		if got < 0 {
			got = 0
		}
		return Config{}, &Error{Kind: InsufficientArguments, Got: got}
	}

	return Config{
		query:      args[1],
		filePath:   args[2],
		ignoreCase: toggled(lookup, IgnoreCaseKey),
	}, nil
}

// toggled treats a nil lookup, like an absent key, as false.
func toggled(lookup LookupFunc, key string) bool {
	if lookup == nil {
		return false
	}
	_, ok := lookup(key)
	return ok
}
