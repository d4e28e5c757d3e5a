// Package imm implements the IMM-family sample-size control and
// selection loops: RunPRDynamic/RunPRStatic drive collect.Collection
// for the monotone+submodular regime (PR-IMM), and RunSADynamic/
// RunSAStatic drive collect.CollectionSA for the general regime
// (SA-IMM / SA-RG-IMM).
//
// The dynamic variants implement an adaptive martingale
// sample-size doubling: start from a cheap theta0 estimate, double the
// sample count each round while checking whether the greedy
// selection's average gain already clears a shrinking threshold, and
// then, unless the sample limit was reached, top up to the full
// theoretical theta derived from the lower bound found (or from a
// lower bound of 1 when no round cleared it). The static variants
// simply run the caller-supplied sample-size schedule and report a
// ResultItem at each step, useful for plotting quality-vs-cost curves.
//
// Sample generation fans out across a worker pool built on
// golang.org/x/sync/errgroup, one linkstate.Sampler and one reused
// prrsketch.Sketch per worker so concurrent sampling never contends on
// shared scratch state.
package imm
