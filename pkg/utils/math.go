package utils

// RoundDecimal rounds a float64 value to the specified number of decimal places.
// For example, RoundDecimal(3.14159, 2) returns 3.14.
func RoundDecimal(value float64, decimals int) float64 {
	pow := 1.0
	for i := 0; i < decimals; i++ {
		pow *= 10
	}

	return float64(int(value*pow+0.5)) / pow
}

// ChooseTwo returns C(n, 2), the number of unordered pairs of n items.
// Returns 0 for n < 2.
func ChooseTwo(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}
