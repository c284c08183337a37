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

import "testing"

func TestSubcatchmentTcOverride(t *testing.T) {
	sc := &Subcatchment{
		SubAreas:   []SubArea{{CurveNumber: 80, Area: 10}},
		Segments:   []FlowSegment{{Kind: SegmentShallow, Length: 800, Slope: 0.015}},
		TcOverride: 1.25,
	}
	tc, err := sc.Tc()
	if err != nil {
		t.Fatal(err)
	}
	if tc != 1.25 {
		t.Errorf("Tc = %g, want the 1.25 override", tc)
	}

	sc.TcOverride = 0
	tc, err = sc.Tc()
	if err != nil {
		t.Fatal(err)
	}
	want, err := CalculateTc(sc.Segments)
	if err != nil {
		t.Fatal(err)
	}
	if tc != want {
		t.Errorf("Tc = %g, want segment sum %g", tc, want)
	}
}

func TestSubcatchmentRunoff(t *testing.T) {
	sc := &Subcatchment{
		SubAreas: []SubArea{
			{CurveNumber: 75, Area: 80},
			{CurveNumber: 90, Area: 20},
		},
		TcOverride: 0.5,
	}
	ev := &RainfallEvent{ID: "e", StormType: StormTypeII, TotalDepth: 4}
	r, err := SubcatchmentRunoff(sc, ev)
	if err != nil {
		t.Fatal(err)
	}
	if r.CurveNumber != 78 {
		t.Errorf("composite CN %g, want 78", r.CurveNumber)
	}
	if r.Area != 100 {
		t.Errorf("area %g, want 100", r.Area)
	}
	if r.Tc != 0.5 {
		t.Errorf("Tc %g, want 0.5", r.Tc)
	}
	if r.Runoff == nil || r.Runoff.Peak <= 0 {
		t.Fatal("expected a runoff hydrograph with a positive peak")
	}
}

func TestSubcatchmentCNOverride(t *testing.T) {
	sc := &Subcatchment{
		SubAreas:   []SubArea{{CurveNumber: 75, Area: 50}},
		TcOverride: 0.5,
		CNOverride: 88,
	}
	ev := &RainfallEvent{ID: "e", StormType: StormTypeII, TotalDepth: 4}
	r, err := SubcatchmentRunoff(sc, ev)
	if err != nil {
		t.Fatal(err)
	}
	if r.CurveNumber != 88 {
		t.Errorf("curve number %g, want the 88 override", r.CurveNumber)
	}
}

func TestSubcatchmentRunoffErrors(t *testing.T) {
	ev := &RainfallEvent{ID: "e", StormType: StormTypeII, TotalDepth: 4}
	if _, err := SubcatchmentRunoff(&Subcatchment{TcOverride: 0.5}, ev); err == nil {
		t.Error("expected error for missing sub-areas")
	}
	if _, err := SubcatchmentRunoff(&Subcatchment{
		SubAreas: []SubArea{{CurveNumber: 80, Area: 10}},
	}, ev); err == nil {
		t.Error("expected error for missing flow path")
	}
}
