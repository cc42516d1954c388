package curve

import "errors"

// Sentinel errors for curve construction and CPoint/CInterval arithmetic.
var (
	// ErrEmptyCurve indicates a curve was constructed with zero points
	// (after consecutive-duplicate removal).
	ErrEmptyCurve = errors.New("curve: curve has no points")

	// ErrNaNCoordinate indicates a point with a NaN or infinite coordinate
	// was supplied to New.
	ErrNaNCoordinate = errors.New("curve: non-finite coordinate")

	// ErrIndexOutOfRange indicates a CPoint or segment index referenced a
	// position outside the curve's valid range.
	ErrIndexOutOfRange = errors.New("curve: index out of range")

	// ErrBadFraction indicates a CPoint fraction outside [0,1).
	ErrBadFraction = errors.New("curve: fraction outside [0,1)")
)
