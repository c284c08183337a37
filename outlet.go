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

import "math"

// gravity is the gravitational acceleration [ft/s²].
const gravity = 32.174

// An OutletDevice discharges water from a pond as a function of the
// water-surface elevation. Discharge is 0 at non-positive head and
// monotone non-decreasing beyond it.
type OutletDevice interface {
	// Discharge returns the flow [cfs] through the device at the given
	// water-surface elevation [ft].
	Discharge(wse float64) float64
}

// Orifice is a circular opening discharging under a head measured to the
// center of the opening: Q = C·A·√(2gH).
type Orifice struct {
	Coefficient     float64 `json:"coefficient"`
	Diameter        float64 `json:"diameter"`        // [ft]
	CenterElevation float64 `json:"centerElevation"` // [ft]
}

// Discharge implements OutletDevice.
func (o *Orifice) Discharge(wse float64) float64 {
	h := wse - o.CenterElevation
	if h <= 0 {
		return 0
	}
	a := math.Pi * o.Diameter * o.Diameter / 4
	return o.Coefficient * a * math.Sqrt(2*gravity*h)
}

// WeirShape selects the weir discharge coefficient family.
type WeirShape string

const (
	WeirBroadCrested WeirShape = "broad"
	WeirSharpCrested WeirShape = "sharp"
)

// Weir is a horizontal-crested weir, Q = C·L·H^1.5. Broad- and
// sharp-crested weirs share the rating form and differ only in the
// coefficient supplied.
type Weir struct {
	Shape          WeirShape `json:"subtype"`
	Coefficient    float64   `json:"coefficient"`
	CrestLength    float64   `json:"crestLength"`    // [ft]
	CrestElevation float64   `json:"crestElevation"` // [ft]
}

// Discharge implements OutletDevice.
func (w *Weir) Discharge(wse float64) float64 {
	h := wse - w.CrestElevation
	if h <= 0 {
		return 0
	}
	return w.Coefficient * w.CrestLength * math.Pow(h, 1.5)
}

// VNotchWeir is a triangular weir, Q = C·tan(θ/2)·H^2.5 with the head
// measured above the notch vertex.
type VNotchWeir struct {
	Coefficient    float64 `json:"coefficient"`
	NotchAngle     float64 `json:"notchAngle"`     // [degrees], 0 < θ < 180
	CrestElevation float64 `json:"crestElevation"` // [ft] vertex elevation
}

// Discharge implements OutletDevice.
func (v *VNotchWeir) Discharge(wse float64) float64 {
	h := wse - v.CrestElevation
	if h <= 0 {
		return 0
	}
	half := v.NotchAngle / 2 * math.Pi / 180
	return v.Coefficient * math.Tan(half) * math.Pow(h, 2.5)
}

// TotalDischarge sums the discharge of a composite outlet structure at a
// water-surface elevation.
func TotalDischarge(devices []OutletDevice, wse float64) float64 {
	var q float64
	for _, d := range devices {
		q += d.Discharge(wse)
	}
	return q
}
