package cliargs

import "errors"

// Sentinel errors returned by Config parsing and validation. Callers
// should use errors.Is against these rather than string-matching.
var (
	ErrMissingRequired = errors.New("cliargs: missing required argument")
	ErrInvalidEnum     = errors.New("cliargs: invalid enum value")
	ErrOutOfRange      = errors.New("cliargs: numeric value out of range")
	ErrNotAPermutation = errors.New("cliargs: priority is not a permutation")
)
