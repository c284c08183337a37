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

// different reports whether a and b differ by more than tolerance,
// relative to b when b is large enough for that to make sense.
func different(a, b, tolerance float64) bool {
	if math.Abs(b) > 1 {
		return math.Abs((a-b)/b) > tolerance
	}
	return math.Abs(a-b) > tolerance
}

var allStormTypes = []StormType{StormTypeI, StormTypeIA, StormTypeII, StormTypeIII}

func TestMassCurveEndpoints(t *testing.T) {
	for _, st := range allStormTypes {
		start, err := CumulativeRainfall(st, 1, 0)
		if err != nil {
			t.Fatal(err)
		}
		if start != 0 {
			t.Errorf("type %s: F(0) = %g, want 0", st, start)
		}
		end, err := CumulativeRainfall(st, 1, 24)
		if err != nil {
			t.Fatal(err)
		}
		if end != 1 {
			t.Errorf("type %s: F(24) = %g, want 1", st, end)
		}
	}
}

func TestMassCurveMonotone(t *testing.T) {
	for _, st := range allStormTypes {
		prev := 0.
		for ti := 0.; ti <= 26; ti += 0.25 {
			cum, err := CumulativeRainfall(st, 3.5, ti)
			if err != nil {
				t.Fatal(err)
			}
			if cum < prev {
				t.Errorf("type %s: cumulative rainfall decreased at t=%g (%g < %g)", st, ti, cum, prev)
			}
			prev = cum
		}
	}
}

func TestCumulativeRainfallClamps(t *testing.T) {
	before, err := CumulativeRainfall(StormTypeII, 5, -1)
	if err != nil {
		t.Fatal(err)
	}
	if before != 0 {
		t.Errorf("t<0: got %g, want 0", before)
	}
	after, err := CumulativeRainfall(StormTypeII, 5, 30)
	if err != nil {
		t.Fatal(err)
	}
	if after != 5 {
		t.Errorf("t>24: got %g, want 5", after)
	}
}

// A 5-inch Type II storm has dropped 5.0·0.663 inches by hour 12.
func TestTypeIIHalfway(t *testing.T) {
	cum, err := CumulativeRainfall(StormTypeII, 5, 12)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(cum-3.315) > 0.01 {
		t.Errorf("Type II at t=12: got %g, want 3.315", cum)
	}
}

func TestIncrementalRainfall(t *testing.T) {
	incs, err := IncrementalRainfall(StormTypeII, 4, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if got := incs[len(incs)-1].Time; got != 24 {
		t.Errorf("final increment ends at %g, want 24", got)
	}
	var total float64
	for _, inc := range incs {
		if inc.Depth < 0 {
			t.Errorf("negative increment %g at t=%g", inc.Depth, inc.Time)
		}
		total += inc.Depth
	}
	if different(total, 4, 1e-9) {
		t.Errorf("increments sum to %g, want 4", total)
	}
}

func TestIncrementalRainfallUnevenStep(t *testing.T) {
	// 0.7 does not divide 24; the final interval must still end at 24.
	incs, err := IncrementalRainfall(StormTypeIII, 2, 0.7)
	if err != nil {
		t.Fatal(err)
	}
	if got := incs[len(incs)-1].Time; got != 24 {
		t.Errorf("final increment ends at %g, want 24", got)
	}
}

func TestRainfallErrors(t *testing.T) {
	if _, err := IncrementalRainfall(StormTypeII, 4, 0); err == nil {
		t.Error("expected error for zero timestep")
	}
	if _, err := IncrementalRainfall("IV", 4, 0.5); err == nil {
		t.Error("expected error for unknown storm type")
	}
	if _, err := CumulativeRainfall("X", 4, 12); err == nil {
		t.Error("expected error for unknown storm type")
	}
}
