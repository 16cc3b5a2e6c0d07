package capability

import "errors"

// Capability errors.
var (
	ErrUnknownToken       = errors.New("unknown capability token")
	ErrUnknownSource      = errors.New("unknown source type")
	ErrInvalidDescription = errors.New("invalid device description")
)

// Offset is the antenna mounting offset relative to the vessel origin.
// Linear values are in meters, angles in radians.
type Offset struct {
	Starboard float64 `yaml:"starboard"`
	Forward   float64 `yaml:"forward"`
	Vertical  float64 `yaml:"vertical"`
	Yaw       float64 `yaml:"yaw"`
	Pitch     float64 `yaml:"pitch"`
	Roll      float64 `yaml:"roll"`
}

// Sensor describes a navigation or auxiliary sensor.
type Sensor struct {
	// Name is the sensor identifier within the device.
	Name string `yaml:"name"`

	// DevID identifies the physical device providing the sensor.
	DevID string `yaml:"dev-id"`

	// Description is optional ("" when absent).
	Description string `yaml:"description,omitempty"`

	// Offset is the default antenna offset, nil when not specified.
	Offset *Offset `yaml:"offset,omitempty"`
}

// Actuator describes a rotating actuator.
type Actuator struct {
	Name        string       `yaml:"name"`
	DevID       string       `yaml:"dev-id"`
	Description string       `yaml:"description,omitempty"`
	Caps        ActuatorCaps `yaml:"capabilities"`

	// Angular range, degrees.
	MinRange float64 `yaml:"min-range"`
	MaxRange float64 `yaml:"max-range"`

	// Angular speed, degrees per second.
	MinSpeed float64 `yaml:"min-speed"`
	MaxSpeed float64 `yaml:"max-speed"`
}

// Receiver describes receiver capabilities of a sonar source.
type Receiver struct {
	Caps ReceiverCaps `yaml:"capabilities"`

	// Manual receive time range, seconds.
	MinTime float64 `yaml:"min-time"`
	MaxTime float64 `yaml:"max-time"`
}

// GeneratorPreset is a named generator setting of a sonar source.
type GeneratorPreset struct {
	// ID is the preset identifier, used as the last key path segment.
	ID string `yaml:"id"`

	// Value is the preset numeric code passed to the hardware.
	Value int64 `yaml:"value"`

	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

// TVG describes time-varied gain capabilities of a sonar source.
type TVG struct {
	Caps TVGCaps `yaml:"capabilities"`

	// Gain range, dB. Meaningful only when Caps.HasGain().
	MinGain float64 `yaml:"min-gain"`
	MaxGain float64 `yaml:"max-gain"`

	// Decrease is true if gain may decrease over time.
	Decrease bool `yaml:"decrease"`
}

// SonarSource describes one sonar data source.
type SonarSource struct {
	Source      SourceType `yaml:"source"`
	DevID       string     `yaml:"dev-id"`
	Description string     `yaml:"description,omitempty"`

	// Link is the master source this source is slaved to, SourceInvalid for none.
	Link SourceType `yaml:"link,omitempty"`

	Offset   *Offset           `yaml:"offset,omitempty"`
	Receiver *Receiver         `yaml:"receiver,omitempty"`
	Presets  []GeneratorPreset `yaml:"presets,omitempty"`
	TVG      *TVG              `yaml:"tvg,omitempty"`
}
