// Package math includes important helpers for Ethereum such as fast integer square roots
// and the checked uint64 arithmetic used by consensus-critical code.
package math

import (
	"math/bits"

	"github.com/pkg/errors"
)

var (
	// ErrAddOverflow is returned when an addition overflows a uint64.
	ErrAddOverflow = errors.New("addition overflows")
	// ErrMulOverflow is returned when a multiplication overflows a uint64.
	ErrMulOverflow = errors.New("multiplication overflows")
	// ErrSubUnderflow is returned when a subtraction goes below zero.
	ErrSubUnderflow = errors.New("subtraction underflows")
	// ErrDivByZero is returned when dividing by zero.
	ErrDivByZero = errors.New("integer divide by zero")
)

// IntegerSquareRoot defines a function that returns the
// largest possible integer root of a number using Newton's method.
//
// Phase 0 definition:
//
//	def integer_squareroot(n: uint64) -> uint64:
//	    x = n
//	    y = (x + 1) // 2
//	    while y < x:
//	        x = y
//	        y = (x + n // x) // 2
//	    return x
func IntegerSquareRoot(n uint64) uint64 {
	x := n
	// (x + 1) / 2 without wrapping at the top of the range.
	y := x>>1 + x&1
	for y < x {
		x = y
		y = (x + n/x) >> 1
	}
	return x
}

// Add64 adds a and b, returning ErrAddOverflow on wrap around.
func Add64(a, b uint64) (uint64, error) {
	res, carry := bits.Add64(a, b, 0)
	if carry > 0 {
		return 0, ErrAddOverflow
	}
	return res, nil
}

// Sub64 subtracts b from a, returning ErrSubUnderflow if b > a.
func Sub64(a, b uint64) (uint64, error) {
	res, borrow := bits.Sub64(a, b, 0)
	if borrow > 0 {
		return 0, ErrSubUnderflow
	}
	return res, nil
}

// Mul64 multiplies a and b, returning ErrMulOverflow if the product does not fit in 64 bits.
func Mul64(a, b uint64) (uint64, error) {
	overflows, val := bits.Mul64(a, b)
	if overflows > 0 {
		return 0, ErrMulOverflow
	}
	return val, nil
}

// Div64 divides a by b and returns the floored quotient.
func Div64(a, b uint64) (uint64, error) {
	if b == 0 {
		return 0, ErrDivByZero
	}
	return a / b, nil
}

// SaturatingSub returns a - b, or zero when b exceeds a.
func SaturatingSub(a, b uint64) uint64 {
	if b > a {
		return 0
	}
	return a - b
}

// Max returns the larger of a and b.
func Max(a, b uint64) uint64 {
	if a > b {
		return a
	}
	return b
}
