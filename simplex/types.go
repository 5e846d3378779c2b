package simplex

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Unbounded is the upper-bound value meaning "no capacity limit".
// It is the default upper bound of every arc after Reset.
const Unbounded int64 = math.MaxInt64

// ProblemType selects the node balance relation a feasible flow must satisfy:
// for every node, (outgoing flow − incoming flow) compared against supply.
type ProblemType int8

const (
	// Equal requires exact balance at every node; the supply values must sum
	// to zero.
	Equal ProblemType = iota
	// GreaterOrEqual requires balance ≥ supply: supplies are fully carried,
	// demands may remain under-served. The supply sum must be ≤ 0.
	GreaterOrEqual
	// LessOrEqual requires balance ≤ supply: demands bind, supplies may
	// remain partially unused. The supply sum must be ≥ 0.
	LessOrEqual

	// CarrySupplies is the supply-normalization alias of GreaterOrEqual:
	// the slack absorbing the imbalance sits on the demand side.
	CarrySupplies = GreaterOrEqual
	// SatisfyDemands is the supply-normalization alias of LessOrEqual:
	// the slack absorbing the imbalance sits on the supply side.
	SatisfyDemands = LessOrEqual
)

// String implements fmt.Stringer.
func (t ProblemType) String() string {
	switch t {
	case Equal:
		return "Equal"
	case GreaterOrEqual:
		return "GreaterOrEqual"
	case LessOrEqual:
		return "LessOrEqual"
	default:
		return "ProblemType(?)"
	}
}

// PivotRule selects the entering-arc search heuristic used by Run.
// Every rule reaches the same optimal total cost; they trade the cost of one
// scan against the number of pivots.
type PivotRule int8

const (
	// BlockSearch scans fixed-size contiguous arc blocks from a wrapping
	// cursor and enters the best violator of the first block that has one.
	// The best all-round choice and the default.
	BlockSearch PivotRule = iota
	// FirstEligible enters the first violating arc found by a cyclic scan
	// from a retained cursor.
	FirstEligible
	// BestEligible scans every non-tree arc on every iteration and enters
	// the arc with the most violating reduced cost.
	BestEligible
	// CandidateList keeps a bounded list of previously seen violators,
	// enters the best of the list and refills it by block scans when the
	// list runs dry.
	CandidateList
	// AlteringList extends the candidate list every iteration, dropping
	// entries that stopped violating and keeping only the strongest head.
	AlteringList
)

// String implements fmt.Stringer.
func (r PivotRule) String() string {
	switch r {
	case BlockSearch:
		return "BlockSearch"
	case FirstEligible:
		return "FirstEligible"
	case BestEligible:
		return "BestEligible"
	case CandidateList:
		return "CandidateList"
	case AlteringList:
		return "AlteringList"
	default:
		return "PivotRule(?)"
	}
}

// Numeric constrains the accumulator type of TotalCostAs; any integer or
// floating-point type wide enough for the caller's cost·flow products.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// arcState tags where each arc currently sits: pinned at a bound or in the
// tree basis. The numeric values make state · reducedCost a uniform
// violation measure (negative ⇔ eligible to enter).
type arcState int8

const (
	stateUpper arcState = -1
	stateTree  arcState = 0
	stateLower arcState = 1
)

// runStatus is the pivoting engine's state machine.
type runStatus int8

const (
	statusSearching runStatus = iota
	statusOptimal
	statusInfeasible
)
