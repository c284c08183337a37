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

import "fmt"

// DefaultLambda is the standard initial-abstraction ratio Ia = λS.
const DefaultLambda = 0.2

const cubicFeetPerAcreFoot = 43560.

// Runoff converts a cumulative rainfall depth p [inches] to a cumulative
// runoff depth [inches] with the SCS curve-number method. lambda ≤ 0
// selects DefaultLambda. Runoff is non-decreasing in p and never exceeds p.
func Runoff(p, cn, lambda float64) (float64, error) {
	if cn <= 0 || cn > 100 {
		return 0, fmt.Errorf("stormlab: curve number must be in (0, 100], got %g", cn)
	}
	if p < 0 {
		return 0, fmt.Errorf("stormlab: rainfall depth must be non-negative, got %g", p)
	}
	if lambda <= 0 {
		lambda = DefaultLambda
	}
	s := 1000/cn - 10 // potential maximum retention [inches]
	ia := lambda * s  // initial abstraction [inches]
	if p <= ia {
		return 0, nil
	}
	q := (p - ia) * (p - ia) / (p - ia + s)
	if q > p { // rounding at S = 0 can land a ULP above p
		q = p
	}
	return q, nil
}
