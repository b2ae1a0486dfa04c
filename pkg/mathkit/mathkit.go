// Package mathkit implements integer bound and overflow helpers
// that work the same way for signed and unsigned types.
package mathkit

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

type Int constraints.Integer

// IsSigned tells whether INT can represent negative values.
func IsSigned[INT Int]() bool {
	var zero INT
	return ^zero < zero
}

func MaxInt[INT Int]() INT {
	if IsSigned[INT]() {
		// all bits set except the sign bit
		return ^MinInt[INT]()
	}
	return ^INT(0)
}

func MinInt[INT Int]() INT {
	if !IsSigned[INT]() {
		return 0
	}
	var zero INT
	// -2^(n-1) is the sign bit alone
	return INT(1) << (8*unsafe.Sizeof(zero) - 1)
}

// CanIntSumOverflow reports whether a + b would leave the representable range of INT.
func CanIntSumOverflow[INT Int](a, b INT) bool {
	switch {
	case 0 < b:
		return MaxInt[INT]()-b < a // positive overflow
	case b < 0:
		// MinInt - -b -> MinInt plus abs b, which can't overflow
		return a < MinInt[INT]()-b // negative overflow
	default:
		return false
	}
}

func SumInt[INT Int](a, b INT) (INT, bool) {
	if CanIntSumOverflow(a, b) {
		var zero INT
		return zero, false
	}
	return a + b, true
}

// SaturatingAdd adds b to a, and clamps the result to MaxInt or MinInt instead of wrapping around.
func SaturatingAdd[INT Int](a, b INT) INT {
	if sum, ok := SumInt(a, b); ok {
		return sum
	}
	if 0 < b {
		return MaxInt[INT]()
	}
	return MinInt[INT]()
}

type AInt = uint64

// AbsInt returns the magnitude of n.
// Abs(MinInt) is representable as well, since AInt is unsigned.
func AbsInt[INT Int](n INT) AInt {
	if 0 <= n {
		return AInt(n)
	}
	if n == MinInt[INT]() {
		// -(n+1) is MaxInt, and MaxInt+1 fits into AInt
		return AInt(-(n + 1)) + 1
	}
	return AInt(-n)
}

// Distance returns the unsigned difference between two values, where from <= to.
// The two's complement subtraction in AInt is exact for every INT,
// because the real difference is always less than 2^64.
func Distance[INT Int](from, to INT) AInt {
	return AInt(to) - AInt(from)
}
