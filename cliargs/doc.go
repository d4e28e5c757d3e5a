// Package cliargs parses and validates c2boost's command-line
// arguments: a tagged-union Value accessor replacing an
// exception-throwing variant, an AlgoChoice sum type resolving
// "auto" against a priority's monotonicity/submodularity, and a
// Config loader backed by an optional TOML defaults file.
package cliargs
