// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import "testing"

func TestRadiansDegrees(t *testing.T) {
	if !Aeq(Radians(180.0), PI[float64]()) {
		t.Errorf("Radians(180) = %v, want PI", Radians(180.0))
	}
	if !Aeq(Degrees(PI[float64]()), 180.0) {
		t.Errorf("Degrees(PI) = %v, want 180", Degrees(PI[float64]()))
	}
}

func TestSinCosTan(t *testing.T) {
	if !Aeq(Sin(0.0), 0.0) {
		t.Error("Sin(0) should be 0")
	}
	if !Aeq(Cos(0.0), 1.0) {
		t.Error("Cos(0) should be 1")
	}
	if !Aeq(Tan(0.0), 0.0) {
		t.Error("Tan(0) should be 0")
	}
}

func TestInverseTrig(t *testing.T) {
	if !Aeq(ASin(1.0), HalfPI[float64]()) {
		t.Errorf("ASin(1) = %v, want PI/2", ASin(1.0))
	}
	if !Aeq(ACos(1.0), 0.0) {
		t.Error("ACos(1) should be 0")
	}
	if !Aeq(ACos(-1.0), PI[float64]()) {
		t.Errorf("ACos(-1) = %v, want PI", ACos(-1.0))
	}
	if !IsNaN(ASin(2.0)) {
		t.Error("ASin(2) should be NaN")
	}
}

func TestATan2Convention(t *testing.T) {
	if got := ATan2(0.0, 0.0); got != 0.0 {
		t.Errorf("ATan2(0,0) = %v, want 0 by this library's convention", got)
	}
	if !Aeq(ATan2(1.0, 1.0), QuarterPI[float64]()) {
		t.Errorf("ATan2(1,1) = %v, want PI/4", ATan2(1.0, 1.0))
	}
}

func TestHyperbolic(t *testing.T) {
	if !Aeq(SinH(0.0), 0.0) {
		t.Error("SinH(0) should be 0")
	}
	if !Aeq(CosH(0.0), 1.0) {
		t.Error("CosH(0) should be 1")
	}
	if !Aeq(ASinH(SinH(0.5)), 0.5) {
		t.Error("ASinH(SinH(x)) should round-trip to x")
	}
}
