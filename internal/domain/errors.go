package domain

import "errors"

// Precondition failure categories. Every validation error returned by this
// package wraps exactly one of these sentinels so callers can classify
// failures with errors.Is and turn them into user-facing messages.
var (
	// ErrInvalidSchedule covers malformed accumulation or decumulation
	// inputs: a build phase shorter than one year, negative phase lengths,
	// negative cash-flow amounts, negative starting capital or a negative
	// inflation rate.
	ErrInvalidSchedule = errors.New("invalid schedule")

	// ErrInvalidDistribution covers malformed return-model parameters.
	ErrInvalidDistribution = errors.New("invalid distribution")

	// ErrInvalidPercentileRequest covers percentile lists that are empty or
	// contain values outside [0,100]. Duplicates and unordered lists are not
	// errors; they are normalized deterministically before use.
	ErrInvalidPercentileRequest = errors.New("invalid percentile request")

	// ErrEmptyResultSet covers runs that cannot produce any trajectory:
	// a non-positive scenario count or an empty trajectory matrix.
	ErrEmptyResultSet = errors.New("empty result set")
)
