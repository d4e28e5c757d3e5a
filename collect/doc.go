// Package collect accumulates marginal-gain contributions across many
// PRR-sketches into a form cheap to run greedy selection against,
// without re-walking every sketch for every candidate node.
//
// Collection serves the monotone+submodular regime (PR-IMM): each
// sketch keeps only the nodes whose boosting actually improves the
// center's gain over its unboosted state, and Select runs the lazy
// greedy algorithm — picking the currently-best node, then walking
// only the sketches that node touches to deduct the gain it has now
// claimed from every other candidate.
//
// CollectionSA serves the non-monotone regime (SA-IMM / SA-RG-IMM):
// there sketches are drawn in batches at each candidate center rather
// than at one uniformly random center per sketch as in PR-IMM, so
// contributions are folded in per center and then averaged by how
// often that center was sampled, before either a greedy or a
// random-greedy selection pass.
package collect
