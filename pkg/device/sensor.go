package device

import (
	"github.com/screen-co/libhyscandriver-sub000/pkg/capability"
	"github.com/screen-co/libhyscandriver-sub000/pkg/schema"
)

// SensorSchema encodes sensors into a device schema.
type SensorSchema struct {
	w *entityWriter
}

// AddSensor adds a sensor. devID must not be empty and name must not have
// been added before.
func (s *SensorSchema) AddSensor(name, devID, description string) error {
	return s.w.add(name, devID, description)
}

// SetOffset sets the default antenna offset of an added sensor.
func (s *SensorSchema) SetOffset(name string, offset capability.Offset) error {
	return s.w.setOffset(name, sensorOffsetFields, offset)
}

// AddFull adds a sensor together with its offset, if any.
func (s *SensorSchema) AddFull(sensor capability.Sensor) error {
	if err := s.AddSensor(sensor.Name, sensor.DevID, sensor.Description); err != nil {
		return err
	}
	if sensor.Offset != nil {
		return s.SetOffset(sensor.Name, *sensor.Offset)
	}
	return nil
}

// ParseSensors decodes all sensors of a device schema, keyed by name.
func ParseSensors(s schema.Reader) (map[string]capability.Sensor, error) {
	if !sensorKind.check(s) {
		return nil, ErrIncompatibleSchema
	}

	r := entityReader{s: s, ns: sensorKind.ns}
	sensors := make(map[string]capability.Sensor)
	for _, name := range r.ids() {
		devID, description, ok := r.base(name)
		if !ok {
			continue
		}
		sensors[name] = capability.Sensor{
			Name:        name,
			DevID:       devID,
			Description: description,
			Offset:      r.offset(name, sensorOffsetFields),
		}
	}

	if len(sensors) == 0 {
		return nil, ErrNoEntities
	}
	return sensors, nil
}
