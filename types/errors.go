package types

import "errors"

var (
	// ErrNoValue is returned when a value is requested from an empty result.
	ErrNoValue = errors.New("no value present")

	// ErrNullValue is returned when a present value is required but a
	// nil-equivalent was given.
	ErrNullValue = errors.New("value is nil")

	// ErrPipelineConsumed is returned by any operation on a stream whose
	// lineage already ran a terminal operation.
	ErrPipelineConsumed = errors.New("stream has already been operated upon or closed")

	// ErrIllegalState is returned when a stage cannot run over its source,
	// e.g. sorting an unbounded stream.
	ErrIllegalState = errors.New("illegal stream state")

	// ErrFieldPath is returned when a field path does not resolve on an element.
	ErrFieldPath = errors.New("field path is incorrect")
)

// ErrIllegalArgument is returned for out-of-range stage arguments such as a
// negative limit.
var ErrIllegalArgument = errors.New("illegal argument")
