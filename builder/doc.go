// Package builder assembles synthetic benchmark graphs for c2boost:
// deterministic topologies (star, cycle, path) and an Erdos-Renyi-style
// random-sparse generator, each assigning base/boosted edge
// probabilities so the result is immediately usable by prrsketch and
// simulate. Intended for demo data, load tests, and test fixtures
// where a real social-graph dump isn't at hand.
package builder
