// Package linkstate implements the lazily-sampled, epoch-cached edge
// state behind PRR-sketch generation: each edge's LinkState (Blocked,
// Active, or Boosted) is sampled once, on first access, from that
// edge's (p, pBoost); repeat accesses within the same epoch return the
// cached draw. Refresh invalidates every edge's cache in O(1) by
// bumping an epoch counter rather than clearing or resampling
// anything — the next Get after a Refresh re-draws lazily.
package linkstate
