// Package ioformat reads the two plain-text input files: a graph file
// (node/edge count header, then one "u v p pBoost" line per edge) and
// a seed file (Sa count and indices, then Sr count and indices).
package ioformat
