package device

import (
	"fmt"

	"github.com/screen-co/libhyscandriver-sub000/pkg/capability"
	"github.com/screen-co/libhyscandriver-sub000/pkg/keypath"
	"github.com/screen-co/libhyscandriver-sub000/pkg/schema"
)

// kind binds a capability namespace to its identity keys.
type kind struct {
	ns      keypath.Namespace
	prefix  string
	id      int64
	version int64
}

// Capability kind identities.
const (
	SensorSchemaID        int64 = 0x6e2b7d41a9c35f18
	SensorSchemaVersion   int64 = 20190100
	ActuatorSchemaID      int64 = 0x1f93c4e8b76a2d05
	ActuatorSchemaVersion int64 = 20190100
	SonarSchemaID         int64 = 0x58d2a7f1c0e4b639
	SonarSchemaVersion    int64 = 20190100
)

var (
	sensorKind   = kind{keypath.Sensors, schema.IdentityPrefix + "/sensor", SensorSchemaID, SensorSchemaVersion}
	actuatorKind = kind{keypath.Actuators, schema.IdentityPrefix + "/actuator", ActuatorSchemaID, ActuatorSchemaVersion}
	sonarKind    = kind{keypath.Sources, schema.IdentityPrefix + "/sonar", SonarSchemaID, SonarSchemaVersion}
)

// check verifies both the device and the kind identity.
func (k kind) check(s schema.Reader) bool {
	return Check(s) && schema.CheckIDAt(s, k.prefix, k.id, k.version)
}

// Offset leaf names. Sensors and sources name the same six values
// differently.
var (
	sensorOffsetFields = [6]string{"starboard", "forward", "vertical", "yaw", "pitch", "roll"}
	sourceOffsetFields = [6]string{"x", "y", "z", "psi", "gamma", "theta"}
)

func offsetValues(o capability.Offset) [6]float64 {
	return [6]float64{o.Starboard, o.Forward, o.Vertical, o.Yaw, o.Pitch, o.Roll}
}

// entityWriter writes read-only keys for the entities of one namespace and
// tracks which entities were added.
type entityWriter struct {
	b    *schema.Builder
	ns   keypath.Namespace
	seen map[string]struct{}
}

func newEntityWriter(b *schema.Builder, k kind) (*entityWriter, error) {
	if err := b.AddIdentity(k.prefix, k.id, k.version); err != nil {
		return nil, fmt.Errorf("%s identity: %w", k.ns, err)
	}
	return &entityWriter{
		b:    b,
		ns:   k.ns,
		seen: make(map[string]struct{}),
	}, nil
}

// add writes dev-id and, when not empty, description of a new entity.
func (w *entityWriter) add(id, devID, description string) error {
	if devID == "" {
		return fmt.Errorf("%w: %s/%s", ErrEmptyDevID, w.ns, id)
	}
	if _, ok := w.seen[id]; ok {
		return fmt.Errorf("%w: %s/%s", ErrDuplicateEntity, w.ns, id)
	}

	if err := w.setString(id, "Device id", "", devID, keypath.FieldDevID); err != nil {
		return err
	}
	if description != "" {
		if err := w.setString(id, "Description", "", description, keypath.FieldDescription); err != nil {
			return err
		}
	}

	w.seen[id] = struct{}{}
	return nil
}

func (w *entityWriter) require(id string) error {
	if _, ok := w.seen[id]; !ok {
		return fmt.Errorf("%w: %s/%s", ErrUnknownEntity, w.ns, id)
	}
	return nil
}

func (w *entityWriter) path(id string, fields ...string) (string, error) {
	return keypath.Build(w.ns, id, fields...)
}

func (w *entityWriter) readOnly(path string, err error) error {
	if err != nil {
		return err
	}
	return w.b.SetAccess(path, schema.AccessReadOnly)
}

func (w *entityWriter) setString(id, name, description, value string, fields ...string) error {
	p, err := w.path(id, fields...)
	if err != nil {
		return err
	}
	return w.readOnly(p, w.b.CreateString(p, name, description, value))
}

func (w *entityWriter) setBoolean(id, name string, value bool, fields ...string) error {
	p, err := w.path(id, fields...)
	if err != nil {
		return err
	}
	return w.readOnly(p, w.b.CreateBoolean(p, name, "", value))
}

func (w *entityWriter) setInteger(id, name, description string, value int64, fields ...string) error {
	p, err := w.path(id, fields...)
	if err != nil {
		return err
	}
	return w.readOnly(p, w.b.CreateInteger(p, name, description, value))
}

func (w *entityWriter) setDouble(id, name string, value float64, fields ...string) error {
	p, err := w.path(id, fields...)
	if err != nil {
		return err
	}
	return w.readOnly(p, w.b.CreateDouble(p, name, "", value))
}

// setRange writes a double key whose declared range is [min, max] and
// whose value is min.
func (w *entityWriter) setRange(id, name string, min, max float64, fields ...string) error {
	p, err := w.path(id, fields...)
	if err != nil {
		return err
	}
	if err := w.b.CreateDouble(p, name, "", min); err != nil {
		return err
	}
	if err := w.b.SetDoubleRange(p, min, max, 0); err != nil {
		return err
	}
	return w.b.SetAccess(p, schema.AccessReadOnly)
}

func (w *entityWriter) setOffset(id string, names [6]string, o capability.Offset) error {
	if err := w.require(id); err != nil {
		return err
	}
	values := offsetValues(o)
	for i, name := range names {
		if err := w.setDouble(id, name, values[i], "offset", name); err != nil {
			return err
		}
	}
	return nil
}

// entityReader reads the entities of one namespace.
type entityReader struct {
	s  schema.Reader
	ns keypath.Namespace
}

// ids returns the entities that have a dev-id key, in key order.
func (r entityReader) ids() []string {
	return keypath.Entities(r.s.Keys(), r.ns, keypath.FieldDevID)
}

func (r entityReader) path(id string, fields ...string) string {
	p, err := keypath.Build(r.ns, id, fields...)
	if err != nil {
		return ""
	}
	return p
}

// base returns dev-id and description. ok is false when dev-id is missing,
// empty or not a string.
func (r entityReader) base(id string) (devID, description string, ok bool) {
	devID, ok = r.s.GetString(r.path(id, keypath.FieldDevID))
	if !ok || devID == "" {
		return "", "", false
	}
	description, _ = r.s.GetString(r.path(id, keypath.FieldDescription))
	return devID, description, true
}

func (r entityReader) str(id string, fields ...string) (string, bool) {
	return r.s.GetString(r.path(id, fields...))
}

func (r entityReader) boolean(id string, fields ...string) (bool, bool) {
	return r.s.GetBoolean(r.path(id, fields...))
}

// rng returns the declared range of a double key.
func (r entityReader) rng(id string, fields ...string) (min, max float64, ok bool) {
	min, max, _, ok = r.s.DoubleRange(r.path(id, fields...))
	return min, max, ok
}

// offset returns the offset when all six values are present.
func (r entityReader) offset(id string, names [6]string) *capability.Offset {
	var v [6]float64
	for i, name := range names {
		d, ok := r.s.GetDouble(r.path(id, "offset", name))
		if !ok {
			return nil
		}
		v[i] = d
	}
	return &capability.Offset{
		Starboard: v[0],
		Forward:   v[1],
		Vertical:  v[2],
		Yaw:       v[3],
		Pitch:     v[4],
		Roll:      v[5],
	}
}
