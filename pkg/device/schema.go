package device

import (
	"errors"
	"fmt"

	"github.com/screen-co/libhyscandriver-sub000/pkg/schema"
)

// Device schema identity.
const (
	SchemaID      int64 = 0x4a5f8c3d2b1e9076
	SchemaVersion int64 = 20190100
)

// Device schema errors.
var (
	ErrIncompatibleSchema = errors.New("incompatible device schema")
	ErrNoEntities         = errors.New("no entities in schema")
	ErrEmptyDevID         = errors.New("empty device id")
	ErrDuplicateEntity    = errors.New("entity already exists")
	ErrUnknownEntity      = errors.New("unknown entity")
	ErrInvalidSource      = errors.New("invalid source type")
)

// Schema is a builder for device schemas. It embeds a schema.Builder, so
// drivers can add their own parameter branches next to the capabilities.
type Schema struct {
	*schema.Builder

	sensors   *SensorSchema
	actuators *ActuatorSchema
	sonar     *SonarSchema
}

// NewSchema creates a device schema builder with the device identity keys.
func NewSchema() *Schema {
	b := schema.NewBuilder()
	if err := b.AddIdentity(schema.IdentityPrefix, SchemaID, SchemaVersion); err != nil {
		panic(fmt.Sprintf("device schema identity: %v", err))
	}
	return &Schema{Builder: b}
}

// Check reports whether s carries the device schema identity.
func Check(s schema.Reader) bool {
	return schema.CheckID(s, SchemaID, SchemaVersion)
}

// Sensors returns the sensor encoder, creating it and its identity keys on
// first use.
func (s *Schema) Sensors() (*SensorSchema, error) {
	if s.sensors == nil {
		w, err := newEntityWriter(s.Builder, sensorKind)
		if err != nil {
			return nil, err
		}
		s.sensors = &SensorSchema{w: w}
	}
	return s.sensors, nil
}

// Actuators returns the actuator encoder, creating it and its identity keys
// on first use.
func (s *Schema) Actuators() (*ActuatorSchema, error) {
	if s.actuators == nil {
		w, err := newEntityWriter(s.Builder, actuatorKind)
		if err != nil {
			return nil, err
		}
		s.actuators = &ActuatorSchema{w: w}
	}
	return s.actuators, nil
}

// Sonar returns the sonar source encoder, creating it and its identity keys
// on first use.
func (s *Schema) Sonar() (*SonarSchema, error) {
	if s.sonar == nil {
		w, err := newEntityWriter(s.Builder, sonarKind)
		if err != nil {
			return nil, err
		}
		s.sonar = &SonarSchema{w: w}
	}
	return s.sonar, nil
}
