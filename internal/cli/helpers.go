package cli

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/briandowns/spinner"

	"github.com/amezhanin/finlock/models"
)

// engineRunning guards against a second migration/rotation run starting
// while one is in flight. The engines themselves stay single-run; the guard
// lives at the call site, which is the only place that starts runs.
var engineRunning atomic.Bool

func beginRun(name string) (func(), error) {
	if !engineRunning.CompareAndSwap(false, true) {
		return nil, fmt.Errorf("%s already running", name)
	}
	return func() { engineRunning.Store(false) }, nil
}

// startSpinner renders a spinner with message while a run is in progress.
// In verbose mode the spinner stays off so it does not fight the log output.
func startSpinner(message string) (*spinner.Spinner, func()) {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	// Ignore color errors - continue without a colored spinner if it fails.
	_ = s.Color("cyan")

	if !verbose {
		s.Start()
	}

	return s, s.Stop
}

// categoryProgress returns a progress callback that moves the spinner text
// through the categories as the engine reaches them.
func categoryProgress(s *spinner.Spinner, verb string) func(models.Category) {
	return func(cat models.Category) {
		s.Suffix = fmt.Sprintf(" %s %s...", verb, cat)
	}
}
