package collect

import "errors"

// ErrMismatchedSize is the value Collection.Merge panics with when two
// Collections built over different graph sizes are merged together.
var ErrMismatchedSize = errors.New("collect: mismatched graph size in merge")

// halfMin permanently excludes a node from greedy selection: seeds can
// never be boosted, and an already-selected node must never be picked
// twice. Large in magnitude but finite, so arithmetic on it never
// produces NaN/Inf the way -math.MaxFloat64 combined with a deduction
// could.
const halfMin = -1e18
