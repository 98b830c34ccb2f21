// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It
// translates flags, an optional profile and the positional arguments into the
// runner's configuration.
package cli
