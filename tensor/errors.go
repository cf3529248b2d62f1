package tensor

import "errors"

// Failure kinds shared by every operation in this package. Operations wrap
// them with context via fmt.Errorf("...: %w", ErrX); match with errors.Is.
var (
	ErrInvalidParams = errors.New("tensor: invalid parameters")
	ErrSlice         = errors.New("tensor: invalid slice for matrix")
	ErrView          = errors.New("tensor: invalid view for matrix")
	ErrBroadcast     = errors.New("tensor: shapes are not broadcastable")
	ErrOp            = errors.New("tensor: matrix cannot be operated on")
	ErrDim           = errors.New("tensor: matrix cannot be operated on over the given dimension")
	ErrMatmulShape   = errors.New("tensor: operand shapes are invalid for matrix multiplication")
	ErrShape         = errors.New("tensor: invalid shape")
	ErrOutOfBounds   = errors.New("tensor: indices are out of bounds for the matrix")
	ErrReshape       = errors.New("tensor: matrix cannot be reshaped into given shape")
)
