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

// triangularInflow builds a hydrograph rising to peak over rise hours and
// falling back to zero over fall hours, then holding at zero.
func triangularInflow(peak, rise, fall, tail, dt float64) Hydrograph {
	var h Hydrograph
	for t := 0.; t <= rise+fall+tail+1e-9; t += dt {
		var q float64
		switch {
		case t <= rise:
			q = peak * t / rise
		case t <= rise+fall:
			q = peak * (1 - (t-rise)/fall)
		}
		h = append(h, Sample{Time: t, Flow: q})
	}
	return h
}

func testPond() (StageStorage, []OutletDevice) {
	curve := PrismaticCurve(100, 10, 300, 200, 2, 21)
	devices := []OutletDevice{
		&Orifice{Coefficient: 0.6, Diameter: 1.5, CenterElevation: 100.25},
		&Weir{Shape: WeirBroadCrested, Coefficient: 2.85, CrestLength: 6, CrestElevation: 104},
	}
	return curve, devices
}

func TestRoutePondAttenuates(t *testing.T) {
	curve, devices := testPond()
	inflow := triangularInflow(50, 1, 2, 6, 0.1)
	r, err := RoutePond(inflow, curve, devices, 100)
	if err != nil {
		t.Fatal(err)
	}
	peakIn, tIn := inflow.Peak()
	if r.PeakInflow != peakIn {
		t.Errorf("peak inflow %g, want %g", r.PeakInflow, peakIn)
	}
	if r.PeakOutflow > peakIn {
		t.Errorf("peak outflow %g exceeds peak inflow %g", r.PeakOutflow, peakIn)
	}
	if r.PeakOutflow <= 0 {
		t.Error("expected a positive peak outflow")
	}
	if r.TimeOfPeakOutflow < tIn-0.1 {
		t.Errorf("outflow peaked at %g, before inflow peak at %g", r.TimeOfPeakOutflow, tIn)
	}
	lo, hi := curve[0].Stage, curve[len(curve)-1].Stage
	for _, s := range r.Steps {
		if s.Stage < lo || s.Stage > hi {
			t.Fatalf("stage %g outside curve domain [%g, %g]", s.Stage, lo, hi)
		}
	}
	if r.PeakStage <= lo {
		t.Error("pond never rose above its initial stage")
	}
}

// The storage-indication recurrence is an exact restatement of reservoir
// continuity, so inflow volume must equal outflow volume plus the change
// in storage as long as the lookup never clamps.
func TestRoutePondMassBalance(t *testing.T) {
	curve, devices := testPond()
	inflow := triangularInflow(50, 1, 2, 10, 0.1)
	r, err := RoutePond(inflow, curve, devices, 100)
	if err != nil {
		t.Fatal(err)
	}
	dts := inflow.TimeStep() * 3600
	var inVol, outVol float64
	for k := 0; k+1 < len(r.Steps); k++ {
		inVol += (r.Steps[k].Inflow + r.Steps[k+1].Inflow) / 2 * dts
		outVol += (r.Steps[k].Outflow + r.Steps[k+1].Outflow) / 2 * dts
	}
	dStorage := r.Steps[len(r.Steps)-1].Storage - r.Steps[0].Storage
	if math.Abs(inVol-outVol-dStorage)/inVol > 1e-4 {
		t.Errorf("continuity violated: in %g, out %g, dS %g", inVol, outVol, dStorage)
	}
}

func TestRoutePondClampsInitialWSE(t *testing.T) {
	curve, devices := testPond()
	inflow := triangularInflow(10, 1, 2, 2, 0.1)
	r, err := RoutePond(inflow, curve, devices, 90)
	if err != nil {
		t.Fatal(err)
	}
	if r.Steps[0].Stage != 100 {
		t.Errorf("initial stage %g, want clamped to 100", r.Steps[0].Stage)
	}
	r, err = RoutePond(inflow, curve, devices, 200)
	if err != nil {
		t.Fatal(err)
	}
	if r.Steps[0].Stage != 110 {
		t.Errorf("initial stage %g, want clamped to 110", r.Steps[0].Stage)
	}
}

func TestRoutePondErrors(t *testing.T) {
	curve, devices := testPond()
	if _, err := RoutePond(Hydrograph{{0, 5}}, curve, devices, 100); err == nil {
		t.Error("expected error for single-sample inflow")
	}
	short := StageStorage{{100, 0}}
	if _, err := RoutePond(triangularInflow(10, 1, 1, 1, 0.1), short, devices, 100); err == nil {
		t.Error("expected error for invalid stage-storage curve")
	}
}
