package capability

import (
	"bytes"
	"cmp"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// DeviceDescription is the content of a device description file.
type DeviceDescription struct {
	Sensors   []Sensor      `yaml:"sensors,omitempty"`
	Actuators []Actuator    `yaml:"actuators,omitempty"`
	Sources   []SonarSource `yaml:"sources,omitempty"`
}

// LoadFile reads and validates a YAML device description file.
func LoadFile(path string) (*DeviceDescription, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read description: %w", err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Parse decodes and validates a YAML device description. Unknown fields
// are rejected.
func Parse(data []byte) (*DeviceDescription, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var d DeviceDescription
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDescription, err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Marshal encodes the description as YAML.
func (d *DeviceDescription) Marshal() ([]byte, error) {
	return yaml.Marshal(d)
}

// Sort orders sensors and actuators by name and sources by source type.
func (d *DeviceDescription) Sort() {
	slices.SortFunc(d.Sensors, func(a, b Sensor) int { return cmp.Compare(a.Name, b.Name) })
	slices.SortFunc(d.Actuators, func(a, b Actuator) int { return cmp.Compare(a.Name, b.Name) })
	slices.SortFunc(d.Sources, func(a, b SonarSource) int { return cmp.Compare(a.Source, b.Source) })
}

// Validate checks mandatory fields and name uniqueness.
func (d *DeviceDescription) Validate() error {
	sensors := make(map[string]struct{})
	for i, s := range d.Sensors {
		if s.Name == "" {
			return fmt.Errorf("%w: sensor #%d has no name", ErrInvalidDescription, i)
		}
		if s.DevID == "" {
			return fmt.Errorf("%w: sensor %q has no dev-id", ErrInvalidDescription, s.Name)
		}
		if _, dup := sensors[s.Name]; dup {
			return fmt.Errorf("%w: duplicate sensor %q", ErrInvalidDescription, s.Name)
		}
		sensors[s.Name] = struct{}{}
	}

	actuators := make(map[string]struct{})
	for i, a := range d.Actuators {
		if a.Name == "" {
			return fmt.Errorf("%w: actuator #%d has no name", ErrInvalidDescription, i)
		}
		if a.DevID == "" {
			return fmt.Errorf("%w: actuator %q has no dev-id", ErrInvalidDescription, a.Name)
		}
		if _, dup := actuators[a.Name]; dup {
			return fmt.Errorf("%w: duplicate actuator %q", ErrInvalidDescription, a.Name)
		}
		actuators[a.Name] = struct{}{}
	}

	sources := make(map[SourceType]struct{})
	for i, s := range d.Sources {
		if !s.Source.Valid() {
			return fmt.Errorf("%w: source #%d has no source type", ErrInvalidDescription, i)
		}
		if s.DevID == "" {
			return fmt.Errorf("%w: source %s has no dev-id", ErrInvalidDescription, s.Source)
		}
		if _, dup := sources[s.Source]; dup {
			return fmt.Errorf("%w: duplicate source %s", ErrInvalidDescription, s.Source)
		}
		sources[s.Source] = struct{}{}
	}
	return nil
}
