// SPDX-License-Identifier: GPL-2.0-or-later

package math

import (
	"github.com/chewxy/math32"
)

// FloorInt returns the largest integer <= x.
func FloorInt(x float32) int {
	return int(math32.Floor(x))
}

// CeilInt returns the smallest integer >= x.
func CeilInt(x float32) int {
	return int(math32.Ceil(x))
}

// IsInteger reports whether x lies exactly on a unit boundary.
func IsInteger(x float32) bool {
	return math32.Floor(x) == x
}

// Lerp computes a weighted average between a and b.
func Lerp(a, b, frac float32) float32 {
	return a + (b-a)*frac
}
