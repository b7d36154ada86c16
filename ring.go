package spatial

// Ring describes a type with ring-like addition and multiplication, such as
// Quaternion or any plain numeric wrapper. Generic code written against Ring
// (averaging, power series, folds) runs over quaternions exactly as it does
// over ordinary numbers.
type Ring[T any] interface {
	Add(T) T
	Mul(T) T
}

// Sum folds the values together with the ring addition, starting from the
// additive identity provided.
func Sum[T Ring[T]](zero T, values ...T) T {
	total := zero
	for _, value := range values {
		total = total.Add(value)
	}
	return total
}

// Product folds the values together with the ring multiplication, starting
// from the multiplicative identity provided. For Quaternions this composes
// rotations left to right.
func Product[T Ring[T]](one T, values ...T) T {
	total := one
	for _, value := range values {
		total = total.Mul(value)
	}
	return total
}
