package cliargs

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/c2boost/state"
)

// AlgoChoice is the CLI's "algo" enum, a sum type over every selection
// method c2boost can run. AlgoAuto is resolved to a concrete choice by
// Resolve, using the priority's Satisfies classification — replacing
// a typeid-dispatch pattern over separate PR_IMM/SA_IMM entry points.
type AlgoChoice int

const (
	AlgoAuto AlgoChoice = iota
	AlgoPRIMM
	AlgoSAIMM
	AlgoSARGIMM
	AlgoGreedy
	AlgoMaxDegree
	AlgoPageRank
)

func (a AlgoChoice) String() string {
	switch a {
	case AlgoAuto:
		return "auto"
	case AlgoPRIMM:
		return "pr-imm"
	case AlgoSAIMM:
		return "sa-imm"
	case AlgoSARGIMM:
		return "sa-rg-imm"
	case AlgoGreedy:
		return "greedy"
	case AlgoMaxDegree:
		return "max-degree"
	case AlgoPageRank:
		return "page-rank"
	default:
		return "unknown"
	}
}

// ParseAlgoChoice parses one of the CLI's algo tokens, case-insensitive.
func ParseAlgoChoice(s string) (AlgoChoice, error) {
	switch strings.ToLower(s) {
	case "auto":
		return AlgoAuto, nil
	case "pr-imm":
		return AlgoPRIMM, nil
	case "sa-imm":
		return AlgoSAIMM, nil
	case "sa-rg-imm":
		return AlgoSARGIMM, nil
	case "greedy":
		return AlgoGreedy, nil
	case "max-degree":
		return AlgoMaxDegree, nil
	case "page-rank":
		return AlgoPageRank, nil
	default:
		return AlgoAuto, fmt.Errorf("%w: algo %q", ErrInvalidEnum, s)
	}
}

// Resolve maps AlgoAuto to PR-IMM when priority qualifies
// (monotone+submodular), or SA-IMM otherwise — the implicit rule for
// picking between the two families. Any non-auto choice
// passes through unchanged.
func Resolve(choice AlgoChoice, priority state.Priority) AlgoChoice {
	if choice != AlgoAuto {
		return choice
	}
	if ok, _ := priority.Satisfies("M,S"); ok {
		return AlgoPRIMM
	}
	return AlgoSAIMM
}
