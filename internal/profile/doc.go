// Package profile loads optional HCL files that set the ambient defaults of
// the command line, such as log level and format. Profiles are evaluated with
// an `env` variable exposing the MINIGREP_* environment, for example:
//
//	log_level  = env.MINIGREP_LOG_LEVEL
//	log_format = "json"
//
// A profile never decides what is searched or how.
package profile
