package analysis

import "errors"

var (
	// ErrNoEntries is returned when there is nothing to analyze; the
	// service is not contacted.
	ErrNoEntries = errors.New("no journal entries to analyze")

	// ErrAnalysis covers transport-level failures: the request could not
	// be made, the service answered non-2xx, or the reply had no body.
	ErrAnalysis = errors.New("journal analysis failed")
)
