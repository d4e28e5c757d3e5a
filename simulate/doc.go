// Package simulate runs true forward Monte Carlo simulation of the
// competitive cascade over a full graph (not a PRR-sketch) with a
// concrete boosted-node set applied directly at those nodes, used to
// verify what a PR-IMM/SA-IMM solution actually achieves rather than
// estimating it from sketches.
//
// Once simulates one full propagation round and tallies node-state
// counts and gain; Many repeats it simTimes across a worker pool and
// averages; Compare runs Many twice (with and without the boosted set
// applied) and returns the paired difference.
package simulate
