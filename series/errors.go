package series

import "errors"

var (
	// ErrEmpty indicates a series with no points.
	ErrEmpty = errors.New("series: must contain at least one point")
	// ErrShapeMismatch indicates coordinate/value counts that differ, or
	// coordinates that are not strictly increasing or contain NaN.
	ErrShapeMismatch = errors.New("series: invalid coordinate/value arrays")
	// ErrDomainMismatch indicates element-wise algebra between series
	// whose coordinate grids are not identical.
	ErrDomainMismatch = errors.New("series: coordinate grids differ")
	// ErrEmptyIntersection indicates common-domain alignment of series
	// whose domains do not overlap.
	ErrEmptyIntersection = errors.New("series: domains do not overlap")
	// ErrOutOfBounds indicates evaluation outside the series domain.
	ErrOutOfBounds = errors.New("series: coordinate outside domain")
	// ErrInvalidWindow indicates a smoothing window that does not fit the
	// series or the polynomial order.
	ErrInvalidWindow = errors.New("series: invalid smoothing window")
	// ErrNonUniformSampling indicates an operation that requires a uniform
	// coordinate step on an irregularly sampled series.
	ErrNonUniformSampling = errors.New("series: sampling is not uniform")
	// ErrEmptyRange indicates a crop that would leave no points.
	ErrEmptyRange = errors.New("series: no points in range")
	// ErrMaskedData indicates an operation that requires a clean domain
	// applied to a series with masked points.
	ErrMaskedData = errors.New("series: operation not defined on masked data")
)
