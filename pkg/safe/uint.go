// Package safe provides overflow-checked arithmetic for base-unit amounts.
package safe

import (
	"fmt"
	"math/bits"
)

// Add returns a+b or an error on uint64 overflow.
func Add(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, fmt.Errorf("uint64 overflow adding %d and %d", a, b)
	}
	return sum, nil
}

// Sub returns a-b or an error when b exceeds a.
func Sub(a, b uint64) (uint64, error) {
	diff, borrow := bits.Sub64(a, b, 0)
	if borrow != 0 {
		return 0, fmt.Errorf("uint64 underflow subtracting %d from %d", b, a)
	}
	return diff, nil
}

// Sum totals the values, failing on overflow.
func Sum(values ...uint64) (uint64, error) {
	var total uint64
	for _, v := range values {
		var err error
		total, err = Add(total, v)
		if err != nil {
			return 0, err
		}
	}
	return total, nil
}

// MulDiv returns floor(a*b/c) computed with a 128-bit intermediate, so
// ratio scaling never overflows for any uint64 inputs. c must be nonzero
// and the quotient must fit in uint64.
func MulDiv(a, b, c uint64) (uint64, error) {
	if c == 0 {
		return 0, fmt.Errorf("division by zero in %d*%d/0", a, b)
	}
	hi, lo := bits.Mul64(a, b)
	if hi >= c {
		return 0, fmt.Errorf("uint64 overflow in %d*%d/%d", a, b, c)
	}
	quo, _ := bits.Div64(hi, lo, c)
	return quo, nil
}
