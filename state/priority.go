package state

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for Priority construction/parsing.
var (
	ErrNotAPermutation  = errors.New("state: priority values are not a permutation of [0,3]")
	ErrRepeatedToken    = errors.New("state: repeated state token")
	ErrUnrecognizedToken = errors.New("state: unrecognized state token")
	ErrTooFewTokens     = errors.New("state: too few tokens, exactly 4 required")
	ErrTooManyTokens    = errors.New("state: too many tokens, exactly 4 required")
)

// Priority is the total order over {Ca+, Ca, Cr, Cr-} used to break
// same-round arrival ties during propagation, plus the monotonicity
// and submodularity classification that order implies for the
// objective function. It is immutable once constructed.
type Priority struct {
	rank [numStates]int // rank[None] == -1 always; higher rank == higher priority
	monotonic  bool
	submodular bool
}

// NewPriority builds a Priority from the rank of each non-None state.
// Values must be a permutation of {0,1,2,3}; higher means higher
// priority. Mirrors the "Ca+ > Cr- > Cr > Ca" convention:
// NewPriority(3, 0, 1, 2) encodes exactly that order.
func NewPriority(caPlus, ca, cr, crMinus int) (Priority, error) {
	mask := 0
	for _, v := range [...]int{caPlus, ca, cr, crMinus} {
		if v < 0 || v > 3 {
			return Priority{}, ErrNotAPermutation
		}
		mask |= 1 << v
	}
	if mask != 0b1111 {
		return Priority{}, ErrNotAPermutation
	}

	p := Priority{}
	p.rank[None] = -1
	p.rank[CaPlus] = caPlus
	p.rank[Ca] = ca
	p.rank[Cr] = cr
	p.rank[CrMinus] = crMinus
	p.classify()
	return p, nil
}

// UpperBoundPriority returns "Ca+ > Cr- > Cr > Ca", the priority SA-IMM
// and SA-RG-IMM use to compute a monotone+submodular upper bound on the
// objective via PR-IMM.
func UpperBoundPriority() Priority {
	p, _ := NewPriority(3, 0, 1, 2)
	return p
}

// ParsePriority parses a permutation of the tokens "Ca+", "Ca", "Cr",
// "Cr-" separated by spaces, commas, or '>', highest priority first.
// e.g. "Ca+ > Cr- > Cr > Ca" or "cr,ca+,cr-,ca".
func ParsePriority(s string) (Priority, error) {
	tokens := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '>'
	})
	if len(tokens) < 4 {
		return Priority{}, ErrTooFewTokens
	}
	if len(tokens) > 4 {
		return Priority{}, ErrTooManyTokens
	}

	rank := [numStates]int{None: -1, CaPlus: -1, Ca: -1, Cr: -1, CrMinus: -1}
	next := 3
	for _, tok := range tokens {
		var s NodeState
		switch strings.ToLower(tok) {
		case "ca+":
			s = CaPlus
		case "ca":
			s = Ca
		case "cr":
			s = Cr
		case "cr-":
			s = CrMinus
		default:
			return Priority{}, fmt.Errorf("%w: %q", ErrUnrecognizedToken, tok)
		}
		if rank[s] != -1 {
			return Priority{}, fmt.Errorf("%w: %q", ErrRepeatedToken, tok)
		}
		rank[s] = next
		next--
	}

	p := Priority{rank: rank}
	p.classify()
	return p, nil
}

// Compare returns >0 if a outranks b, 0 if equal, <0 if b outranks a.
func (p Priority) Compare(a, b NodeState) int {
	return p.rank[a] - p.rank[b]
}

// Rank returns s's raw priority rank (-1 for None).
func (p Priority) Rank(s NodeState) int { return p.rank[s] }

// Monotonic reports whether this priority makes the objective monotone.
func (p Priority) Monotonic() bool { return p.monotonic }

// Submodular reports whether this priority makes the objective submodular.
func (p Priority) Submodular() bool { return p.submodular }

// classify reproduces the four canonical non-monotonic
// patterns and three canonical submodular patterns, evaluated against
// this priority's rank order rather than a fixed enum — any priority
// matching one of the non-monotonic orderings below loses monotonicity,
// regardless of which concrete ranks produced it.
func (p *Priority) classify() {
	gt := func(a, b NodeState) bool { return p.rank[a] > p.rank[b] }

	p.monotonic = true
	switch {
	case gt(Ca, Cr) && gt(Cr, CaPlus): // (1) Ca > Cr > Ca+
		p.monotonic = false
	case gt(Ca, CrMinus) && gt(CrMinus, CaPlus): // (2) Ca > Cr- > Ca+
		p.monotonic = false
	case gt(CrMinus, CaPlus) && gt(CaPlus, Cr): // (3) Cr- > Ca+ > Cr
		p.monotonic = false
	case gt(CrMinus, Ca) && gt(Ca, Cr): // (4) Cr- > Ca > Cr
		p.monotonic = false
	}

	p.submodular = false
	for _, c := range submodularCases {
		if p.rank == c {
			p.submodular = true
			break
		}
	}
}

// submodularCases are the three rank arrays (indexed like Priority.rank)
// known to yield a submodular objective: Ca+>Ca>Cr->Cr, Ca+>Cr->Cr>Ca,
// and Cr->Cr>Ca+>Ca.
var submodularCases = [3][numStates]int{
	{None: -1, CaPlus: 3, Ca: 2, Cr: 0, CrMinus: 1},
	{None: -1, CaPlus: 3, Ca: 0, Cr: 1, CrMinus: 2},
	{None: -1, CaPlus: 1, Ca: 0, Cr: 2, CrMinus: 3},
}

// Satisfies checks a constraint string of tokens "M"/"nM"/"S"/"nS"
// (monotonic/non-monotonic/submodular/non-submodular), separated by
// space, comma, semicolon, or hyphen. Returns false if any token's
// constraint is violated; returns an error only for unrecognized tokens.
func (p Priority) Satisfies(constraint string) (bool, error) {
	tokens := splitPriorityTokens(constraint)

	ok := true
	for _, tok := range tokens {
		switch tok {
		case "M":
			if !p.monotonic {
				ok = false
			}
		case "nM":
			if p.monotonic {
				ok = false
			}
		case "S":
			if !p.submodular {
				ok = false
			}
		case "nS":
			if p.submodular {
				ok = false
			}
		default:
			return false, fmt.Errorf("%w: %q", ErrUnrecognizedToken, tok)
		}
	}
	return ok, nil
}

func splitPriorityTokens(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == ';' || r == '-'
	})
}

// Dump renders the priority values, the 4x4 comparison matrix, and the
// monotonic/submodular verdict, the way NodePriorityProperty::dump did.
func (p Priority) Dump() string {
	var b strings.Builder
	b.WriteString("Priority values:\n")
	for _, s := range []NodeState{None, CaPlus, Ca, Cr, CrMinus} {
		fmt.Fprintf(&b, "    %-4s => %d\n", s, p.rank[s])
	}

	b.WriteString("Comparison matrix of L <=> R:\nL\\R  Ca+  Ca  Cr Cr-\n")
	order := []NodeState{CaPlus, Ca, Cr, CrMinus}
	for _, lhs := range order {
		fmt.Fprintf(&b, "%-4s", lhs)
		for _, rhs := range order {
			c := p.Compare(lhs, rhs)
			sym := '='
			if c > 0 {
				sym = '>'
			} else if c < 0 {
				sym = '<'
			}
			fmt.Fprintf(&b, "%4c", sym)
		}
		b.WriteByte('\n')
	}

	mono, sub := "non-", "non-"
	monoTag, subTag := "nM", "nS"
	if p.monotonic {
		mono, monoTag = "", "M"
	}
	if p.submodular {
		sub, subTag = "", "S"
	}
	fmt.Fprintf(&b, "Property: %smonotonic & %ssubmodular (%s - %s)", mono, sub, monoTag, subTag)
	return b.String()
}
