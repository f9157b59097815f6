// SPDX-License-Identifier: GPL-2.0-or-later

package math

import (
	"testing"
)

func TestFloorCeil(t *testing.T) {
	for _, tc := range []struct {
		in          float32
		floor, ceil int
		integer     bool
	}{
		{0.5, 0, 1, false},
		{-0.5, -1, 0, false},
		{2, 2, 2, true},
		{-3, -3, -3, true},
	} {
		if got := FloorInt(tc.in); got != tc.floor {
			t.Errorf("FloorInt(%v) = %v, want %v", tc.in, got, tc.floor)
		}
		if got := CeilInt(tc.in); got != tc.ceil {
			t.Errorf("CeilInt(%v) = %v, want %v", tc.in, got, tc.ceil)
		}
		if got := IsInteger(tc.in); got != tc.integer {
			t.Errorf("IsInteger(%v) = %v, want %v", tc.in, got, tc.integer)
		}
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(2, 4, 0.5); got != 3 {
		t.Errorf("Lerp(2,4,0.5) = %v, want 3", got)
	}
}
