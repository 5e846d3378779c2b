package simplex

import (
	"math"
	"sort"
)

// pivotStrategy nominates the entering arc of each iteration by writing it
// to Solver.inArc. All strategies share the same violation test and scan
// only the search arcs (real arcs plus inequality slack arcs); they differ
// in how much of the arc range they inspect per call.
type pivotStrategy interface {
	// findEnteringArc reports whether any violating arc remains; on true
	// the chosen arc has been stored in the solver.
	findEnteringArc() bool
}

// newStrategy builds the per-run state of the requested rule. Called after
// init, so searchArcNum is final.
func (s *Solver) newStrategy(rule PivotRule) pivotStrategy {
	switch rule {
	case FirstEligible:
		return &firstEligiblePivot{s: s}
	case BestEligible:
		return &bestEligiblePivot{s: s}
	case CandidateList:
		return newCandidateListPivot(s)
	case AlteringList:
		return newAlteringListPivot(s)
	default:
		return newBlockSearchPivot(s)
	}
}

// firstEligiblePivot scans cyclically from a retained cursor and enters the
// first violating arc it meets. Cheapest per iteration, most pivots overall.
type firstEligiblePivot struct {
	s       *Solver
	nextArc int
}

func (p *firstEligiblePivot) findEnteringArc() bool {
	s := p.s
	for e := p.nextArc; e < s.searchArcNum; e++ {
		if s.violation(e) < 0 {
			s.inArc = e
			p.nextArc = e + 1

			return true
		}
	}
	for e := 0; e < p.nextArc; e++ {
		if s.violation(e) < 0 {
			s.inArc = e
			p.nextArc = e + 1

			return true
		}
	}

	return false
}

// bestEligiblePivot scans every search arc on every call and enters the one
// with the most negative violation. Fewest pivots, costliest scans.
type bestEligiblePivot struct {
	s *Solver
}

func (p *bestEligiblePivot) findEnteringArc() bool {
	s := p.s
	var best int64
	bestArc := -1
	for e := 0; e < s.searchArcNum; e++ {
		if c := s.violation(e); c < best {
			best = c
			bestArc = e
		}
	}
	if bestArc < 0 {
		return false
	}
	s.inArc = bestArc

	return true
}

// blockSearchPivot partitions the arc range into √m-sized blocks and, from a
// wrapping cursor, enters the best violator of the first block containing
// one; a full pass without a violator proves optimality. The default rule.
type blockSearchPivot struct {
	s         *Solver
	blockSize int
	nextArc   int
}

func newBlockSearchPivot(s *Solver) *blockSearchPivot {
	const (
		blockSizeFactor = 1.0
		minBlockSize    = 10
	)
	size := int(blockSizeFactor * math.Sqrt(float64(s.searchArcNum)))
	if size < minBlockSize {
		size = minBlockSize
	}

	return &blockSearchPivot{s: s, blockSize: size}
}

func (p *blockSearchPivot) findEnteringArc() bool {
	s := p.s
	var best int64
	bestArc := -1
	count := p.blockSize

	e := p.nextArc
	for scanned := 0; scanned < s.searchArcNum; scanned++ {
		if c := s.violation(e); c < best {
			best = c
			bestArc = e
		}
		if count--; count == 0 {
			if best < 0 {
				break
			}
			count = p.blockSize
		}
		if e++; e == s.searchArcNum {
			e = 0
		}
	}
	if bestArc < 0 {
		return false
	}
	s.inArc = bestArc
	p.nextArc = e

	return true
}

// candidateListPivot keeps a bounded list of violating arcs. Minor
// iterations re-evaluate only the list, dropping entries that stopped
// violating and entering the best survivor; when the list runs dry (or the
// minor budget is spent) a major iteration rebuilds it from a block scan.
type candidateListPivot struct {
	s          *Solver
	candidates []int
	listLength int
	minorLimit int
	curLength  int
	minorCount int
	nextArc    int
}

func newCandidateListPivot(s *Solver) *candidateListPivot {
	const (
		listLengthFactor = 0.25
		minListLength    = 10
		minorLimitFactor = 0.1
		minMinorLimit    = 3
	)
	length := int(listLengthFactor * math.Sqrt(float64(s.searchArcNum)))
	if length < minListLength {
		length = minListLength
	}
	minor := int(minorLimitFactor * float64(length))
	if minor < minMinorLimit {
		minor = minMinorLimit
	}

	return &candidateListPivot{
		s:          s,
		candidates: make([]int, length),
		listLength: length,
		minorLimit: minor,
	}
}

func (p *candidateListPivot) findEnteringArc() bool {
	s := p.s

	// Minor iteration over the retained list.
	if p.curLength > 0 && p.minorCount < p.minorLimit {
		p.minorCount++
		var best int64
		bestArc := -1
		for i := 0; i < p.curLength; i++ {
			e := p.candidates[i]
			c := s.violation(e)
			if c < best {
				best = c
				bestArc = e
			}
			if c >= 0 {
				// Compact: replace the stale entry with the tail.
				p.curLength--
				p.candidates[i] = p.candidates[p.curLength]
				i--
			}
		}
		if bestArc >= 0 {
			s.inArc = bestArc

			return true
		}
	}

	// Major iteration: refill from a wrapping scan, at most listLength
	// violators.
	var best int64
	bestArc := -1
	p.curLength = 0
	e := p.nextArc
	for scanned := 0; scanned < s.searchArcNum; scanned++ {
		if c := s.violation(e); c < 0 {
			p.candidates[p.curLength] = e
			p.curLength++
			if c < best {
				best = c
				bestArc = e
			}
		}
		if e++; e == s.searchArcNum {
			e = 0
		}
		if p.curLength == p.listLength {
			break
		}
	}
	if bestArc < 0 {
		return false
	}
	p.minorCount = 1
	p.nextArc = e
	s.inArc = bestArc

	return true
}

// alteringListPivot extends a candidate list by block scans on every call,
// continuously dropping entries that stopped violating, and keeps only the
// strongest few candidates alive between iterations.
type alteringListPivot struct {
	s          *Solver
	blockSize  int
	headLength int
	candidates []int
	curLength  int
	nextArc    int
}

func newAlteringListPivot(s *Solver) *alteringListPivot {
	const (
		blockSizeFactor  = 1.0
		minBlockSize     = 10
		headLengthFactor = 0.01
		minHeadLength    = 3
	)
	size := int(blockSizeFactor * math.Sqrt(float64(s.searchArcNum)))
	if size < minBlockSize {
		size = minBlockSize
	}
	head := int(headLengthFactor * float64(size))
	if head < minHeadLength {
		head = minHeadLength
	}

	return &alteringListPivot{
		s:          s,
		blockSize:  size,
		headLength: head,
		candidates: make([]int, 0, head+size),
	}
}

func (p *alteringListPivot) findEnteringArc() bool {
	s := p.s

	// Drop retained candidates that no longer violate.
	live := p.candidates[:0]
	for _, e := range p.candidates[:p.curLength] {
		if s.violation(e) < 0 {
			live = append(live, e)
		}
	}
	p.candidates = live
	p.curLength = len(live)

	// Extend block by block until the list outgrows the head.
	count := p.blockSize
	limit := p.headLength
	e := p.nextArc
	for scanned := 0; scanned < s.searchArcNum; scanned++ {
		if s.violation(e) < 0 {
			p.candidates = append(p.candidates, e)
			p.curLength++
		}
		if count--; count == 0 {
			if p.curLength > limit {
				break
			}
			limit = 0
			count = p.blockSize
		}
		if e++; e == s.searchArcNum {
			e = 0
		}
	}
	if p.curLength == 0 {
		return false
	}
	p.nextArc = e

	// Keep the strongest head of the list; enter the best candidate and
	// retain the runners-up for the next call.
	sort.Slice(p.candidates[:p.curLength], func(i, j int) bool {
		return s.violation(p.candidates[i]) < s.violation(p.candidates[j])
	})
	s.inArc = p.candidates[0]
	keep := p.headLength
	if keep > p.curLength-1 {
		keep = p.curLength - 1
	}
	copy(p.candidates, p.candidates[1:1+keep])
	p.candidates = p.candidates[:keep]
	p.curLength = keep

	return true
}
