package service

import (
	"fmt"

	"github.com/amezhanin/finlock/models"
)

// maxErrorSample bounds the number of error messages carried in a run
// result. The count keeps growing past the cap; only the sample is bounded.
const maxErrorSample = 15

// runErrors accumulates per-record failures across a run. Both engines fold
// records into (successes, errors) through it instead of aborting, so one
// bad record never blocks the thousands behind it.
type runErrors struct {
	count  int
	sample []string
}

func (e *runErrors) add(cat models.Category, id string, err error) {
	e.count++
	if len(e.sample) < maxErrorSample {
		e.sample = append(e.sample, fmt.Sprintf("%s %s: %v", cat, id, err))
	}
}

// addCategory records a failure that affects a whole category, typically a
// failed listing. The remaining categories are still attempted.
func (e *runErrors) addCategory(cat models.Category, err error) {
	e.count++
	if len(e.sample) < maxErrorSample {
		e.sample = append(e.sample, fmt.Sprintf("%s: list failed: %v", cat, err))
	}
}

func (e *runErrors) ok() bool { return e.count == 0 }
