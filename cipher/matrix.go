package cipher

import "cryptonic/tensor"

// Add returns lhs + rhs elementwise, broadcasting as tensor.Add does.
func Add(lhs, rhs *tensor.Matrix[Value]) (*tensor.Matrix[Value], error) {
	return tensor.ZipWith(lhs, rhs, Value.Add)
}

// Subtract returns lhs - rhs elementwise, broadcasting as tensor.Subtract
// does.
func Subtract(lhs, rhs *tensor.Matrix[Value]) (*tensor.Matrix[Value], error) {
	return tensor.ZipWith(lhs, rhs, Value.Sub)
}

// Sum folds every element of m with Add, starting from the unset Value.
func Sum(m *tensor.Matrix[Value]) (Value, error) {
	var acc Value
	for _, v := range m.All() {
		var err error
		if acc, err = acc.Add(v); err != nil {
			return Value{}, err
		}
	}
	return acc, nil
}
