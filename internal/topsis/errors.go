package topsis

import "errors"

var (
	// ErrEmptyMatrix is returned for a nil or zero sized decision matrix.
	ErrEmptyMatrix = errors.New("topsis: empty decision matrix")

	// ErrDimensionMismatch is returned when weights, impacts or ideal
	// vectors do not have one entry per criterion.
	ErrDimensionMismatch = errors.New("topsis: dimension mismatch")

	// ErrInvalidImpact is returned for an impact symbol other than + or -.
	ErrInvalidImpact = errors.New("topsis: invalid impact")

	// ErrDegenerateColumn is returned when a criterion column has a zero
	// Euclidean norm and cannot be normalized.
	ErrDegenerateColumn = errors.New("topsis: degenerate column (zero norm)")

	// ErrDegenerateDistance is returned when an alternative sits on both
	// ideal points at once, which leaves its closeness undefined.
	ErrDegenerateDistance = errors.New("topsis: degenerate distance (both distances are zero)")

	// ErrNonFinite is returned when a NaN or Inf enters or leaves any step.
	ErrNonFinite = errors.New("topsis: NaN or Inf encountered")
)
