package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/screen-co/libhyscandriver-sub000/pkg/capability"
	"github.com/screen-co/libhyscandriver-sub000/pkg/schema"
)

func TestActuatorRoundTrip(t *testing.T) {
	s := NewSchema()
	enc, err := s.Actuators()
	require.NoError(t, err)

	a := capability.Actuator{
		Name:     "rotor",
		DevID:    "act-1",
		Caps:     capability.ActuatorScan,
		MinRange: -45,
		MaxRange: 45,
		MinSpeed: 0.5,
		MaxSpeed: 12,
	}
	require.NoError(t, enc.AddFull(a))

	built := s.Build()
	caps, ok := built.GetString("/actuators/rotor/capabilities")
	require.True(t, ok)
	assert.Equal(t, "scan", caps)

	actuators, err := ParseActuators(built)
	require.NoError(t, err)
	assert.Equal(t, map[string]capability.Actuator{"rotor": a}, actuators)
}

func TestActuatorWithoutLimitsIsSkipped(t *testing.T) {
	s := NewSchema()
	enc, err := s.Actuators()
	require.NoError(t, err)
	require.NoError(t, enc.AddActuator("rotor", "act-1", "", capability.ActuatorManual))

	_, err = ParseActuators(s.Build())
	assert.ErrorIs(t, err, ErrNoEntities)
}

func TestActuatorSetParamsErrors(t *testing.T) {
	s := NewSchema()
	enc, err := s.Actuators()
	require.NoError(t, err)

	assert.ErrorIs(t, enc.SetParams("rotor", 0, 1, 0, 1), ErrUnknownEntity)

	require.NoError(t, enc.AddActuator("rotor", "act-1", "", 0))
	assert.ErrorIs(t, enc.SetParams("rotor", 10, -10, 0, 1), schema.ErrInvalidRange)
}
