// SPDX-License-Identifier: GPL-2.0-or-later

package math

import (
	"testing"
)

func TestClampMin(t *testing.T) {
	v := Clamp(1, 0, 10)
	if v != 1 {
		t.Errorf("Clamp(1,0,10) = %v", v)
	}
}

func TestClampMax(t *testing.T) {
	v := Clamp(1, 100, 10)
	if v != 10 {
		t.Errorf("Clamp(1,100,10) = %v", v)
	}
}

func TestClampVal(t *testing.T) {
	v := Clamp(float32(1), 5, 10)
	if v != 5 {
		t.Errorf("Clamp(1,5,10) = %v", v)
	}
}

func TestSign(t *testing.T) {
	for _, tc := range []struct {
		in   float32
		want int
	}{
		{-3.5, -1},
		{0, 0},
		{0.001, 1},
	} {
		if got := Sign(tc.in); got != tc.want {
			t.Errorf("Sign(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
