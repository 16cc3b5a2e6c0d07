package driver

import (
	"context"

	"github.com/screen-co/libhyscandriver-sub000/pkg/capability"
	"github.com/screen-co/libhyscandriver-sub000/pkg/schema"
)

// Params holds connection parameter values keyed by the paths of the
// schema returned from Discover.Config.
type Params map[string]any

// DiscoverSubscriber receives asynchronous scan notifications.
type DiscoverSubscriber interface {
	// OnProgress reports scan progress in percent, 0 to 100.
	OnProgress(percent float64)

	// OnCompleted is called once per finished scan.
	OnCompleted()
}

// Discover finds and connects to devices.
type Discover interface {
	// Start begins an asynchronous scan. It returns without waiting for
	// the scan to finish; subscribers are notified of progress.
	Start() error

	// Stop ends a running scan. It is best-effort and does not unblock
	// Connect calls in flight.
	Stop() error

	// List returns the devices currently known.
	List() []DeviceSummary

	// Config returns the connection parameter schema for uri, or nil when
	// the device needs no parameters or uri is not handled.
	Config(uri string) *schema.Schema

	// Check is a synchronous best-effort reachability probe.
	Check(uri string) bool

	// Connect opens the device at uri. It blocks until the device is
	// ready or ctx is done.
	Connect(ctx context.Context, uri string, params Params) (Device, error)

	Subscribe(s DiscoverSubscriber)
	Unsubscribe(s DiscoverSubscriber)
}

// Device is a connected device.
type Device interface {
	// Schema returns the device schema describing capabilities and
	// parameters.
	Schema() *schema.Schema

	// Set writes device parameters.
	Set(params Params) error

	// Sync applies pending parameter changes to the hardware.
	Sync() error

	// Disconnect releases the device. Further calls fail.
	Disconnect() error
}

// Sonar is implemented by devices that provide sonar sources.
type Sonar interface {
	// Start begins data acquisition into the given track.
	Start(ctx context.Context, project, track string) error

	// Stop ends data acquisition.
	Stop() error

	// SetAntennaOffset overrides the default antenna offset of a source.
	SetAntennaOffset(source capability.SourceType, offset capability.Offset) error

	// SetReceiverTime sets a manual receive window, seconds.
	SetReceiverTime(source capability.SourceType, receive, wait float64) error

	// SetReceiverAuto switches the receiver to automatic timing.
	SetReceiverAuto(source capability.SourceType) error

	// SetGeneratorPreset selects a generator preset by its value.
	SetGeneratorPreset(source capability.SourceType, preset int64) error

	// SetTVGAuto switches TVG to automatic mode. Negative level or
	// sensitivity keep the device defaults.
	SetTVGAuto(source capability.SourceType, level, sensitivity float64) error

	// SetTVGConstant sets a constant gain, dB.
	SetTVGConstant(source capability.SourceType, gain float64) error

	// SetTVGLinearDB sets a linear gain curve starting at gain0 with step
	// dB per 100 meters.
	SetTVGLinearDB(source capability.SourceType, gain0, step float64) error

	// SetTVGLogarithmic sets a logarithmic gain curve.
	SetTVGLogarithmic(source capability.SourceType, gain0, beta, alpha float64) error
}

// Sensor is implemented by devices that provide sensors.
type Sensor interface {
	// SetSensorOffset overrides the default antenna offset of a sensor.
	SetSensorOffset(name string, offset capability.Offset) error

	// EnableSensor enables or disables data from a sensor.
	EnableSensor(name string, enable bool) error
}

// Actuator is implemented by devices that provide actuators.
type Actuator interface {
	// DisableActuator stops an actuator.
	DisableActuator(name string) error

	// ScanActuator sweeps between from and to degrees at speed degrees
	// per second.
	ScanActuator(name string, from, to, speed float64) error

	// ManualActuator turns an actuator to a fixed angle, degrees.
	ManualActuator(name string, angle float64) error
}
