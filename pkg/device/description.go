package device

import (
	"fmt"

	"github.com/screen-co/libhyscandriver-sub000/pkg/capability"
	"github.com/screen-co/libhyscandriver-sub000/pkg/schema"
)

// AddDescription encodes every entity of d. Encoders are created only for
// kinds that have entities.
func (s *Schema) AddDescription(d *capability.DeviceDescription) error {
	if err := d.Validate(); err != nil {
		return err
	}

	if len(d.Sensors) > 0 {
		enc, err := s.Sensors()
		if err != nil {
			return err
		}
		for _, sensor := range d.Sensors {
			if err := enc.AddFull(sensor); err != nil {
				return fmt.Errorf("sensor %s: %w", sensor.Name, err)
			}
		}
	}

	if len(d.Actuators) > 0 {
		enc, err := s.Actuators()
		if err != nil {
			return err
		}
		for _, a := range d.Actuators {
			if err := enc.AddFull(a); err != nil {
				return fmt.Errorf("actuator %s: %w", a.Name, err)
			}
		}
	}

	if len(d.Sources) > 0 {
		enc, err := s.Sonar()
		if err != nil {
			return err
		}
		for _, src := range d.Sources {
			if err := enc.AddFull(src); err != nil {
				return fmt.Errorf("source %s: %w", src.Source, err)
			}
		}
	}
	return nil
}

// BuildFromDescription returns a complete device schema for d.
func BuildFromDescription(d *capability.DeviceDescription) (*schema.Schema, error) {
	s := NewSchema()
	if err := s.AddDescription(d); err != nil {
		return nil, err
	}
	return s.Build(), nil
}

// Describe decodes every capability kind present in s. Kinds missing from
// the schema are left empty; a schema without the device identity fails.
func Describe(s schema.Reader) (*capability.DeviceDescription, error) {
	if !Check(s) {
		return nil, ErrIncompatibleSchema
	}

	d := &capability.DeviceDescription{}
	if sensors, err := ParseSensors(s); err == nil {
		for _, sensor := range sensors {
			d.Sensors = append(d.Sensors, sensor)
		}
	}
	if actuators, err := ParseActuators(s); err == nil {
		for _, a := range actuators {
			d.Actuators = append(d.Actuators, a)
		}
	}
	if sources, err := ParseSources(s); err == nil {
		for _, src := range sources {
			d.Sources = append(d.Sources, src)
		}
	}
	d.Sort()
	return d, nil
}
