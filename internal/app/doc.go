// Package app contains the runner for one search invocation. It owns the
// logger and the output stream, reads the target file, runs the selected
// search variant and writes the matching lines. It is decoupled from the
// command line so it can be driven directly from tests.
package app
