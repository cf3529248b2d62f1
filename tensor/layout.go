package tensor

// Layout selects how canonical strides are assigned to a shape.
type Layout int

const (
	// RowMajor gives the last axis stride 1; strides grow toward axis 0.
	RowMajor Layout = iota
	// ColumnMajor gives axis 0 stride 1; strides grow toward the last axis.
	ColumnMajor
)

// Flip returns the opposite layout.
func (l Layout) Flip() Layout {
	if l == RowMajor {
		return ColumnMajor
	}
	return RowMajor
}

func (l Layout) String() string {
	switch l {
	case RowMajor:
		return "RowMajor"
	case ColumnMajor:
		return "ColumnMajor"
	default:
		return "Layout(?)"
	}
}
