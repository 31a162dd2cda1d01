package piechart

import "errors"

// Sentinel errors returned by Chart and Entry. Callers match them with
// errors.Is; the returned errors carry the offending value in their message.
var (
	// ErrInvalidArgument is returned when a required entry or color is nil.
	ErrInvalidArgument = errors.New("piechart: invalid argument")

	// ErrInvalidValue is returned for NaN, infinite or out-of-domain numbers.
	ErrInvalidValue = errors.New("piechart: invalid value")

	// ErrInvalidDimension is returned by New for a NaN, infinite or
	// non-positive chart dimension.
	ErrInvalidDimension = errors.New("piechart: invalid dimension")

	// ErrIndexOutOfRange is returned by the indexed collection operations.
	ErrIndexOutOfRange = errors.New("piechart: index out of range")

	// ErrTooLarge is returned by Render when the chart does not fit in a
	// raster of MaxRenderSize pixels per side.
	ErrTooLarge = errors.New("piechart: chart too large to rasterize")
)
