package domain

import "errors"

var (
	// ErrNotFound is returned when a conversion id does not resolve.
	ErrNotFound = errors.New("conversion not found")
	// ErrEmptyJourney is returned when no touchpoint matches the conversion.
	// Attribution cannot proceed for that conversion.
	ErrEmptyJourney = errors.New("empty journey")
	// ErrUnknownModel is a configuration error: the model name is not
	// registered.
	ErrUnknownModel = errors.New("unknown attribution model")
	// ErrDegenerateNormalization marks a weight vector whose total is zero.
	// It is recovered by uniform weighting and only ever logged.
	ErrDegenerateNormalization = errors.New("degenerate normalization")
	// ErrLookupFailure marks a failed performance lookup. It is recovered
	// with a zero default and only ever logged.
	ErrLookupFailure = errors.New("performance lookup failed")
)
