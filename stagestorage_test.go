/*
Copyright © 2023 the StormLab authors.
This file is part of StormLab.

StormLab is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

StormLab is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with StormLab.  If not, see <http://www.gnu.org/licenses/>.
*/

package stormlab

import (
	"math"
	"testing"
)

func TestStageStorageRoundTrip(t *testing.T) {
	curve := PrismaticCurve(100, 10, 120, 80, 2, 11)
	if err := curve.Validate(); err != nil {
		t.Fatal(err)
	}
	for stage := 100.25; stage < 110; stage += 0.5 {
		back := curve.Stage(curve.Storage(stage))
		if different(back, stage, 1e-9) {
			t.Errorf("round trip at stage %g gave %g", stage, back)
		}
	}
}

func TestStageStorageClamps(t *testing.T) {
	curve := StageStorage{{100, 0}, {105, 50000}, {110, 140000}}
	if got := curve.Storage(95); got != 0 {
		t.Errorf("below curve: storage %g, want 0", got)
	}
	if got := curve.Storage(115); got != 140000 {
		t.Errorf("above curve: storage %g, want 140000", got)
	}
	if got := curve.Stage(-5); got != 100 {
		t.Errorf("below curve: stage %g, want 100", got)
	}
	if got := curve.Stage(1e9); got != 110 {
		t.Errorf("above curve: stage %g, want 110", got)
	}
	if got := curve.Storage(102.5); different(got, 25000, 1e-9) {
		t.Errorf("interior: storage %g, want 25000", got)
	}
}

func TestStageStorageValidate(t *testing.T) {
	if err := (StageStorage{{100, 0}}).Validate(); err == nil {
		t.Error("expected error for single-point curve")
	}
	if err := (StageStorage{{100, 0}, {100, 10}}).Validate(); err == nil {
		t.Error("expected error for repeated stage")
	}
	if err := (StageStorage{{100, 10}, {101, 10}}).Validate(); err == nil {
		t.Error("expected error for non-increasing storage")
	}
}

func TestPrismaticCurve(t *testing.T) {
	// 100×50 bottom, 1:1 sides, 10 ft deep:
	// V = 100·50·10 + 150·1·100 + 4/3·1·1000.
	curve := PrismaticCurve(100, 10, 100, 50, 1, 11)
	want := 100.*50*10 + 150*100 + 4./3.*1000
	got := curve[len(curve)-1].Storage
	if different(got, want, 1e-9) {
		t.Errorf("full prismatic volume %g, want %g", got, want)
	}
	if curve[0].Stage != 100 || curve[len(curve)-1].Stage != 110 {
		t.Errorf("curve spans [%g, %g], want [100, 110]", curve[0].Stage, curve[len(curve)-1].Stage)
	}
	// Vertical walls reduce to the prism.
	box := PrismaticCurve(0, 4, 20, 10, 0, 5)
	if different(box[len(box)-1].Storage, 800, 1e-9) {
		t.Errorf("box volume %g, want 800", box[len(box)-1].Storage)
	}
}

func TestConicalCurve(t *testing.T) {
	// Zero side slope reduces to a cylinder.
	curve := ConicalCurve(0, 6, 10, 0, 7)
	want := math.Pi * 100 * 6
	if different(curve[len(curve)-1].Storage, want, 1e-9) {
		t.Errorf("conical volume %g, want %g", curve[len(curve)-1].Storage, want)
	}
}

func TestCylindricalCurve(t *testing.T) {
	curve := CylindricalCurve(50, 8, 5, 9)
	want := math.Pi * 25 * 8
	if different(curve[len(curve)-1].Storage, want, 1e-9) {
		t.Errorf("cylindrical volume %g, want %g", curve[len(curve)-1].Storage, want)
	}
	if err := curve.Validate(); err != nil {
		t.Fatal(err)
	}
}
