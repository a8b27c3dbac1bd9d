package sha256step

import "math/bits"

// RotateRight rotates x right by n bits. n is taken mod 32.
func RotateRight(x uint32, n uint) uint32 {
	return bits.RotateLeft32(x, -int(n&31))
}

// ShiftRight shifts x right by n bits, filling with zeros.
func ShiftRight(x uint32, n uint) uint32 {
	return x >> n
}

// Choose picks bits from y where x is set and from z where it is not.
func Choose(x, y, z uint32) uint32 {
	return (x & y) ^ (^x & z)
}

// Majority returns the bitwise majority vote of x, y and z.
func Majority(x, y, z uint32) uint32 {
	return (x & y) ^ (x & z) ^ (y & z)
}

// BigSigma0 is Σ0: x rotated right by 2, 13 and 22, xored together.
func BigSigma0(x uint32) uint32 {
	return RotateRight(x, 2) ^ RotateRight(x, 13) ^ RotateRight(x, 22)
}

// BigSigma1 is Σ1: x rotated right by 6, 11 and 25, xored together.
func BigSigma1(x uint32) uint32 {
	return RotateRight(x, 6) ^ RotateRight(x, 11) ^ RotateRight(x, 25)
}

// SmallSigma0 is σ0: x rotated right by 7 and 18, xored with x shifted right by 3.
func SmallSigma0(x uint32) uint32 {
	return RotateRight(x, 7) ^ RotateRight(x, 18) ^ ShiftRight(x, 3)
}

// SmallSigma1 is σ1: x rotated right by 17 and 19, xored with x shifted right by 10.
func SmallSigma1(x uint32) uint32 {
	return RotateRight(x, 17) ^ RotateRight(x, 19) ^ ShiftRight(x, 10)
}
