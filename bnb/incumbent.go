package bnb

import (
	"sync"

	"github.com/yevhenk/shiplp/simplex"
)

// incumbent is the mutex-guarded best-so-far shared by the two children
// forked from one branch-and-bound node. Its critical section is the short
// compare-and-maybe-replace in update; the expensive recursive solve that
// produces sol/err always happens before the lock is taken.
type incumbent struct {
	mu           sync.Mutex
	minimization bool
	sol          *simplex.Solution
	err          error
	hasResult    bool
}

// update folds one child's outcome into the incumbent:
//   - a feasible result always beats no result yet, and replaces an earlier
//     feasible result only if it is strictly better (on a tie the earlier
//     one is kept);
//   - if both children error (no feasible result ever arrives), the
//     composite outcome of the fork is always ErrAbsent, regardless of which
//     two errors the children actually reported.
func (inc *incumbent) update(sol *simplex.Solution, err error) {
	inc.mu.Lock()
	defer inc.mu.Unlock()

	switch {
	case sol != nil:
		if inc.sol == nil || inc.isStrictlyBetter(sol, inc.sol) {
			inc.sol, inc.err = sol, nil
		}
	case inc.sol == nil:
		if inc.hasResult {
			inc.err = simplex.ErrAbsent
		} else {
			inc.err = err
		}
	}
	inc.hasResult = true
}

func (inc *incumbent) isStrictlyBetter(candidate, current *simplex.Solution) bool {
	cmp, ok := candidate.FnVal.PartialCmp(current.FnVal)
	if !ok {
		return false
	}
	if inc.minimization {
		return cmp < 0
	}
	return cmp > 0
}
