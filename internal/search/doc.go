// Package search implements line-oriented substring matching over an
// in-memory text buffer.
//
// Every line yielded by this package is a substring of the content it was
// given. Go strings share their backing array when sliced, so no line data is
// copied; the yielded values stay valid for as long as the caller holds them.
package search
