package sim

import "github.com/mihai-snyk/genetic/pkg/genetic/framework"

// iterationLimit stops a run after a fixed number of generations.
type iterationLimit struct {
	max uint64
	set bool
}

func (l iterationLimit) reached(generation uint64) bool {
	return l.set && generation >= l.max
}

// earlyStopper tracks how many consecutive generations improved the best
// known fitness by less than threshold.
type earlyStopper[F framework.Fitness[F]] struct {
	threshold F
	patience  uint64
	streak    uint64
}

func newEarlyStopper[F framework.Fitness[F]](threshold F, patience uint64) *earlyStopper[F] {
	if patience == 0 {
		patience = 1
	}
	return &earlyStopper[F]{threshold: threshold, patience: patience}
}

func (e *earlyStopper[F]) update(improvement F) {
	if improvement.Compare(e.threshold) < 0 {
		e.streak++
	} else {
		e.streak = 0
	}
}

func (e *earlyStopper[F]) converged() bool {
	return e.streak >= e.patience
}
