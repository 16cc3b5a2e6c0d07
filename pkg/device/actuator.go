package device

import (
	"github.com/screen-co/libhyscandriver-sub000/pkg/capability"
	"github.com/screen-co/libhyscandriver-sub000/pkg/schema"
)

// Actuator leaf fields.
const (
	fieldCapabilities = "capabilities"
	fieldRange        = "range"
	fieldSpeed        = "speed"
)

// ActuatorSchema encodes actuators into a device schema.
type ActuatorSchema struct {
	w *entityWriter
}

// AddActuator adds an actuator with its capabilities.
func (s *ActuatorSchema) AddActuator(name, devID, description string, caps capability.ActuatorCaps) error {
	if err := s.w.add(name, devID, description); err != nil {
		return err
	}
	return s.w.setString(name, "Capabilities", "", caps.String(), fieldCapabilities)
}

// SetParams sets the angular range (degrees) and speed (degrees per second)
// limits of an added actuator.
func (s *ActuatorSchema) SetParams(name string, minRange, maxRange, minSpeed, maxSpeed float64) error {
	if err := s.w.require(name); err != nil {
		return err
	}
	if err := s.w.setRange(name, "Scan range", minRange, maxRange, fieldRange); err != nil {
		return err
	}
	return s.w.setRange(name, "Scan speed", minSpeed, maxSpeed, fieldSpeed)
}

// AddFull adds an actuator together with its limits.
func (s *ActuatorSchema) AddFull(a capability.Actuator) error {
	if err := s.AddActuator(a.Name, a.DevID, a.Description, a.Caps); err != nil {
		return err
	}
	return s.SetParams(a.Name, a.MinRange, a.MaxRange, a.MinSpeed, a.MaxSpeed)
}

// ParseActuators decodes all actuators of a device schema, keyed by name.
// Actuators without range or speed limits are skipped.
func ParseActuators(s schema.Reader) (map[string]capability.Actuator, error) {
	if !actuatorKind.check(s) {
		return nil, ErrIncompatibleSchema
	}

	r := entityReader{s: s, ns: actuatorKind.ns}
	actuators := make(map[string]capability.Actuator)
	for _, name := range r.ids() {
		devID, description, ok := r.base(name)
		if !ok {
			continue
		}

		caps, _ := r.str(name, fieldCapabilities)
		minRange, maxRange, ok := r.rng(name, fieldRange)
		if !ok {
			continue
		}
		minSpeed, maxSpeed, ok := r.rng(name, fieldSpeed)
		if !ok {
			continue
		}

		actuators[name] = capability.Actuator{
			Name:        name,
			DevID:       devID,
			Description: description,
			Caps:        capability.ParseActuatorCaps(caps),
			MinRange:    minRange,
			MaxRange:    maxRange,
			MinSpeed:    minSpeed,
			MaxSpeed:    maxSpeed,
		}
	}

	if len(actuators) == 0 {
		return nil, ErrNoEntities
	}
	return actuators, nil
}
