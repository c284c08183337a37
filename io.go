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

// Serialisation of the native project record. Node and outlet-device
// variants are tagged: a node's "type" selects its "data" payload, and a
// device's "kind" selects its rating. External tools produce and consume
// this format; the engine only ever sees the decoded Project.

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

type nodeEnvelope struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Kind     NodeKind        `json:"type"`
	Position Position        `json:"position"`
	Data     json.RawMessage `json:"data,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (n *Node) MarshalJSON() ([]byte, error) {
	env := nodeEnvelope{ID: n.ID, Name: n.Name, Kind: n.Kind, Position: n.Position}
	var payload interface{}
	switch n.Kind {
	case KindSubcatchment:
		payload = n.Subcatchment
	case KindPond:
		payload = n.Pond
	case KindReach:
		payload = n.Reach
	case KindJunction:
		// no payload
	default:
		return nil, fmt.Errorf("stormlab: node %q has unknown kind %q", n.ID, n.Kind)
	}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		env.Data = data
	}
	return json.Marshal(env)
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Node) UnmarshalJSON(b []byte) error {
	var env nodeEnvelope
	if err := json.Unmarshal(b, &env); err != nil {
		return err
	}
	n.ID = env.ID
	n.Name = env.Name
	n.Kind = env.Kind
	n.Position = env.Position
	switch env.Kind {
	case KindSubcatchment:
		n.Subcatchment = new(Subcatchment)
		return json.Unmarshal(env.Data, n.Subcatchment)
	case KindPond:
		n.Pond = new(Pond)
		return json.Unmarshal(env.Data, n.Pond)
	case KindReach:
		n.Reach = new(Reach)
		return json.Unmarshal(env.Data, n.Reach)
	case KindJunction:
		return nil
	default:
		return fmt.Errorf("stormlab: node %q has unknown type %q", env.ID, env.Kind)
	}
}

// deviceEnvelope is the tagged wire form of an outlet device.
type deviceEnvelope struct {
	Kind            string    `json:"kind"`
	Subtype         WeirShape `json:"subtype,omitempty"`
	Coefficient     float64   `json:"coefficient"`
	Diameter        float64   `json:"diameter,omitempty"`
	CenterElevation float64   `json:"centerElevation,omitempty"`
	CrestLength     float64   `json:"crestLength,omitempty"`
	CrestElevation  float64   `json:"crestElevation,omitempty"`
	NotchAngle      float64   `json:"notchAngle,omitempty"`
}

func marshalDevice(d OutletDevice) (deviceEnvelope, error) {
	switch dev := d.(type) {
	case *Orifice:
		return deviceEnvelope{
			Kind:            "orifice",
			Coefficient:     dev.Coefficient,
			Diameter:        dev.Diameter,
			CenterElevation: dev.CenterElevation,
		}, nil
	case *Weir:
		return deviceEnvelope{
			Kind:           "weir",
			Subtype:        dev.Shape,
			Coefficient:    dev.Coefficient,
			CrestLength:    dev.CrestLength,
			CrestElevation: dev.CrestElevation,
		}, nil
	case *VNotchWeir:
		return deviceEnvelope{
			Kind:           "vnotch",
			Coefficient:    dev.Coefficient,
			NotchAngle:     dev.NotchAngle,
			CrestElevation: dev.CrestElevation,
		}, nil
	default:
		return deviceEnvelope{}, fmt.Errorf("stormlab: unknown outlet device type %T", d)
	}
}

func unmarshalDevice(env deviceEnvelope) (OutletDevice, error) {
	switch env.Kind {
	case "orifice":
		return &Orifice{
			Coefficient:     env.Coefficient,
			Diameter:        env.Diameter,
			CenterElevation: env.CenterElevation,
		}, nil
	case "weir":
		shape := env.Subtype
		if shape == "" {
			shape = WeirBroadCrested
		}
		if shape != WeirBroadCrested && shape != WeirSharpCrested {
			return nil, fmt.Errorf("stormlab: unknown weir subtype %q", shape)
		}
		return &Weir{
			Shape:          shape,
			Coefficient:    env.Coefficient,
			CrestLength:    env.CrestLength,
			CrestElevation: env.CrestElevation,
		}, nil
	case "vnotch":
		return &VNotchWeir{
			Coefficient:    env.Coefficient,
			NotchAngle:     env.NotchAngle,
			CrestElevation: env.CrestElevation,
		}, nil
	default:
		return nil, fmt.Errorf("stormlab: unknown outlet device kind %q", env.Kind)
	}
}

type pondEnvelope struct {
	Curve      StageStorage     `json:"stageStorage"`
	Outlets    []deviceEnvelope `json:"outletDevices"`
	InitialWSE float64          `json:"initialWSE"`
}

// MarshalJSON implements json.Marshaler.
func (p *Pond) MarshalJSON() ([]byte, error) {
	env := pondEnvelope{Curve: p.Curve, InitialWSE: p.InitialWSE}
	for _, d := range p.Outlets {
		de, err := marshalDevice(d)
		if err != nil {
			return nil, err
		}
		env.Outlets = append(env.Outlets, de)
	}
	return json.Marshal(env)
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Pond) UnmarshalJSON(b []byte) error {
	var env pondEnvelope
	if err := json.Unmarshal(b, &env); err != nil {
		return err
	}
	p.Curve = env.Curve
	p.InitialWSE = env.InitialWSE
	p.Outlets = nil
	for _, de := range env.Outlets {
		d, err := unmarshalDevice(de)
		if err != nil {
			return err
		}
		p.Outlets = append(p.Outlets, d)
	}
	return nil
}

// ReadProject decodes a native project record.
func ReadProject(r io.Reader) (*Project, error) {
	var p Project
	dec := json.NewDecoder(r)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("stormlab: decoding project: %w", err)
	}
	return &p, nil
}

// WriteProject encodes a project as an indented native record.
func WriteProject(w io.Writer, p *Project) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("stormlab: encoding project: %w", err)
	}
	return nil
}

// LoadProject reads a project file from disk.
func LoadProject(path string) (*Project, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadProject(f)
}

// SaveProject writes a project file to disk.
func SaveProject(path string, p *Project) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteProject(f, p)
}
