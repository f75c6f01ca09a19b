package sched

import "errors"

// Parameter errors reported before any file is written or process started.
var (
	ErrNoName     = errors.New("sched: simulation name must be provided")
	ErrNoEnsemble = errors.New("sched: ensemble must be provided")
	ErrNoPath     = errors.New("sched: working path must be provided")
)
