// Package scaleprofile: sentinel error set.
// All operations return these sentinels (optionally wrapped with index
// context via fmt.Errorf("...: %w", ...)); tests and callers match them
// with errors.Is. User-triggered conditions never panic.

package scaleprofile

import "errors"

var (
	// ErrNotInitialized is returned when a profile or noise-level
	// operation is attempted before Init, or after Clear.
	ErrNotInitialized = errors.New("scaleprofile: profile not initialized")

	// ErrIndexOutOfRange indicates a scale index outside [0, Count).
	ErrIndexOutOfRange = errors.New("scaleprofile: scale index out of range")

	// ErrBadScales is returned by Init/InitCount for an empty scale
	// sequence or a scale that is not strictly positive and finite
	// (scale 0 is meaningless in log space).
	ErrBadScales = errors.New("scaleprofile: scales must be a non-empty sequence of positive finite values")

	// ErrEmptyStatistic is returned by Values when a scale's accumulator
	// holds no samples, so its reduction is undefined.
	ErrEmptyStatistic = errors.New("scaleprofile: scale has no accumulated samples")

	// ErrNonPositiveValue is returned by Values when a reduced statistic
	// is not strictly positive, so its logarithm is undefined.
	ErrNonPositiveValue = errors.New("scaleprofile: reduced statistic is not strictly positive")

	// ErrNilStatistic indicates a nil *stats.Statistic argument.
	ErrNilStatistic = errors.New("scaleprofile: nil statistic")

	// ErrBadLowerBound is returned by LowerBoundedNoiseLevel when
	// LowerBoundAtScale1 is not strictly positive (the floor lives in
	// log space).
	ErrBadLowerBound = errors.New("scaleprofile: lower bound at scale 1 must be strictly positive")

	// ErrInsufficientPoints is returned when a least-squares fit is
	// attempted over fewer than two distinct x values.
	ErrInsufficientPoints = errors.New("scaleprofile: regression needs at least two distinct points")
)
