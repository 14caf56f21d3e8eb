package pipeline

import "errors"

// Run-aborting error kinds. Everything else (a dead feed, a broken detail
// page, a rejected broadcast batch) is recovered at the smallest enclosing
// unit and the run continues.
var (
	// ErrContract marks a classifier reply inconsistent with the request;
	// the position correlation cannot be trusted, so the run aborts
	ErrContract = errors.New("contract violation")

	// ErrConfig marks a missing credential or connection failure detected
	// before run logic executes
	ErrConfig = errors.New("configuration error")
)
