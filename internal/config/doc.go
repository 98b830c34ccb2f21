// Package config resolves the search configuration for a single invocation
// from positional process arguments and the environment. It never touches the
// filesystem; reading the target file is the runner's job.
package config
