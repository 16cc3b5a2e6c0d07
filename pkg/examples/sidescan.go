package examples

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"github.com/screen-co/libhyscandriver-sub000/pkg/capability"
	"github.com/screen-co/libhyscandriver-sub000/pkg/device"
	"github.com/screen-co/libhyscandriver-sub000/pkg/driver"
	"github.com/screen-co/libhyscandriver-sub000/pkg/schema"
)

//go:embed sidescan.yaml
var sideScanDescription []byte

// Device errors.
var (
	ErrDisconnected  = errors.New("device disconnected")
	ErrUnknownEntity = errors.New("unknown entity")
	ErrUnsupported   = errors.New("capability not supported")
	ErrOutOfRange    = errors.New("value out of range")
	ErrNotRunning    = errors.New("sonar not running")
)

// Parameter keys of the side-scan device branch.
const (
	ParamSoundVelocity = "/params/sound-velocity"
	ParamPingRate      = "/params/ping-rate"
)

// SideScanConfig contains configuration for creating a SideScan.
type SideScanConfig struct {
	URI    string
	Serial string
	Model  string
}

// SourceState is the control state of one sonar source.
type SourceState struct {
	Offset       *capability.Offset
	ReceiverAuto bool
	ReceiveTime  float64 // s
	WaitTime     float64 // s
	Preset       int64
	TVGMode      capability.TVGCaps

	// TVG parameters of the selected mode.
	Gain0       float64 // dB
	Step        float64 // dB per 100 m
	Alpha, Beta float64
	Level       float64
	Sensitivity float64
}

// ActuatorState is the control state of one actuator.
type ActuatorState struct {
	Mode     capability.ActuatorCaps // 0 when disabled
	From, To float64                 // degrees
	Speed    float64                 // degrees per second
	Angle    float64                 // degrees
}

// SideScan is an in-memory dual-frequency side-scan sonar. It implements
// driver.Device, driver.Sonar, driver.Sensor and driver.Actuator and checks
// every call against the capabilities in its own device schema.
type SideScan struct {
	mu sync.RWMutex

	cfg    SideScanConfig
	schema *schema.Schema

	// Capabilities decoded from schema.
	sources   map[capability.SourceType]capability.SonarSource
	sensors   map[string]capability.Sensor
	actuators map[string]capability.Actuator

	// Internal state
	connected      bool
	running        bool
	project, track string
	params         driver.Params
	pending        driver.Params
	sourceState    map[capability.SourceType]*SourceState
	sensorOffsets  map[string]capability.Offset
	sensorsEnabled map[string]bool
	actuatorState  map[string]*ActuatorState
}

var (
	_ driver.Device   = (*SideScan)(nil)
	_ driver.Sonar    = (*SideScan)(nil)
	_ driver.Sensor   = (*SideScan)(nil)
	_ driver.Actuator = (*SideScan)(nil)
)

// NewSideScan creates a connected side-scan device.
func NewSideScan(cfg SideScanConfig) (*SideScan, error) {
	s, err := SideScanSchema()
	if err != nil {
		return nil, err
	}

	d := &SideScan{
		cfg:            cfg,
		schema:         s,
		connected:      true,
		params:         make(driver.Params),
		pending:        make(driver.Params),
		sourceState:    make(map[capability.SourceType]*SourceState),
		sensorOffsets:  make(map[string]capability.Offset),
		sensorsEnabled: make(map[string]bool),
		actuatorState:  make(map[string]*ActuatorState),
	}
	if err := d.setupCapabilities(); err != nil {
		return nil, err
	}
	return d, nil
}

// SideScanSchema builds the device schema of the side-scan sonar: the
// capabilities from the embedded description plus the parameter branch.
func SideScanSchema() (*schema.Schema, error) {
	desc, err := capability.Parse(sideScanDescription)
	if err != nil {
		return nil, err
	}

	s := device.NewSchema()
	if err := s.AddDescription(desc); err != nil {
		return nil, err
	}

	if err := s.CreateDouble(ParamSoundVelocity, "Sound velocity", "Sound velocity, m/s", 1500); err != nil {
		return nil, err
	}
	if err := s.SetDoubleRange(ParamSoundVelocity, 1300, 1700, 0.1); err != nil {
		return nil, err
	}
	if err := s.CreateInteger(ParamPingRate, "Ping rate", "Pings per second", 10); err != nil {
		return nil, err
	}
	if err := s.SetIntegerRange(ParamPingRate, 1, 30, 1); err != nil {
		return nil, err
	}
	return s.Build(), nil
}

func (d *SideScan) setupCapabilities() error {
	var err error
	if d.sources, err = device.ParseSources(d.schema); err != nil {
		return fmt.Errorf("sources: %w", err)
	}
	if d.sensors, err = device.ParseSensors(d.schema); err != nil {
		return fmt.Errorf("sensors: %w", err)
	}
	if d.actuators, err = device.ParseActuators(d.schema); err != nil {
		return fmt.Errorf("actuators: %w", err)
	}

	for src, caps := range d.sources {
		st := &SourceState{Offset: caps.Offset, ReceiverAuto: true, TVGMode: capability.TVGAuto}
		if len(caps.Presets) > 0 {
			st.Preset = caps.Presets[0].Value
		}
		d.sourceState[src] = st
	}
	for name, s := range d.sensors {
		if s.Offset != nil {
			d.sensorOffsets[name] = *s.Offset
		}
		d.sensorsEnabled[name] = true
	}
	for name := range d.actuators {
		d.actuatorState[name] = &ActuatorState{}
	}
	for _, p := range []string{ParamSoundVelocity, ParamPingRate} {
		key, _ := d.schema.Key(p)
		switch key.Type {
		case schema.TypeDouble:
			d.params[p] = key.Default.Double
		case schema.TypeInteger:
			d.params[p] = key.Default.Int
		}
	}
	return nil
}

// URI returns the address the device was opened at.
func (d *SideScan) URI() string { return d.cfg.URI }

// Schema returns the device schema.
func (d *SideScan) Schema() *schema.Schema { return d.schema }

// Set stages parameter values. Values are checked against the schema and
// applied by Sync.
func (d *SideScan) Set(params driver.Params) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.connected {
		return ErrDisconnected
	}
	for path, v := range params {
		if err := checkParam(d.schema, path, v); err != nil {
			return err
		}
	}
	for path, v := range params {
		d.pending[path] = v
	}
	return nil
}

func checkParam(s *schema.Schema, path string, v any) error {
	key, ok := s.Key(path)
	if !ok || !key.Access.CanWrite() {
		return fmt.Errorf("%w: parameter %s", ErrUnknownEntity, path)
	}
	switch key.Type {
	case schema.TypeDouble:
		f, ok := v.(float64)
		if !ok {
			return fmt.Errorf("%s: want float64, got %T", path, v)
		}
		if lo, hi, _, ok := s.DoubleRange(path); ok && (f < lo || f > hi) {
			return fmt.Errorf("%w: %s = %g", ErrOutOfRange, path, f)
		}
	case schema.TypeInteger:
		i, ok := v.(int64)
		if !ok {
			return fmt.Errorf("%s: want int64, got %T", path, v)
		}
		if lo, hi, _, ok := s.IntegerRange(path); ok && (i < lo || i > hi) {
			return fmt.Errorf("%w: %s = %d", ErrOutOfRange, path, i)
		}
	case schema.TypeString:
		if _, ok := v.(string); !ok {
			return fmt.Errorf("%s: want string, got %T", path, v)
		}
	default:
		return fmt.Errorf("%w: parameter %s", ErrUnsupported, path)
	}
	return nil
}

// Sync applies staged parameters.
func (d *SideScan) Sync() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.connected {
		return ErrDisconnected
	}
	for path, v := range d.pending {
		d.params[path] = v
	}
	clear(d.pending)
	return nil
}

// Params returns a copy of the applied parameters.
func (d *SideScan) Params() driver.Params {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make(driver.Params, len(d.params))
	for k, v := range d.params {
		out[k] = v
	}
	return out
}

// Disconnect releases the device.
func (d *SideScan) Disconnect() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.connected {
		return ErrDisconnected
	}
	d.connected = false
	d.running = false
	return nil
}

// Start begins recording into project/track.
func (d *SideScan) Start(ctx context.Context, project, track string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.connected {
		return ErrDisconnected
	}
	if project == "" || track == "" {
		return errors.New("project and track must be set")
	}
	d.running = true
	d.project, d.track = project, track
	return nil
}

// Stop ends recording.
func (d *SideScan) Stop() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.connected {
		return ErrDisconnected
	}
	if !d.running {
		return ErrNotRunning
	}
	d.running = false
	return nil
}

// Running reports the recording state and target track.
func (d *SideScan) Running() (running bool, project, track string) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.running, d.project, d.track
}

// source returns the capabilities and state of a source. d.mu must be held.
func (d *SideScan) source(src capability.SourceType) (capability.SonarSource, *SourceState, error) {
	if !d.connected {
		return capability.SonarSource{}, nil, ErrDisconnected
	}
	caps, ok := d.sources[src]
	if !ok {
		return capability.SonarSource{}, nil, fmt.Errorf("%w: source %s", ErrUnknownEntity, src)
	}
	return caps, d.sourceState[src], nil
}

// SourceState returns a copy of the state of a source.
func (d *SideScan) SourceState(src capability.SourceType) (SourceState, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	st, ok := d.sourceState[src]
	if !ok {
		return SourceState{}, false
	}
	return *st, true
}

func (d *SideScan) SetAntennaOffset(src capability.SourceType, offset capability.Offset) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	_, st, err := d.source(src)
	if err != nil {
		return err
	}
	st.Offset = &offset
	return nil
}

func (d *SideScan) SetReceiverTime(src capability.SourceType, receive, wait float64) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	caps, st, err := d.source(src)
	if err != nil {
		return err
	}
	if caps.Receiver == nil || caps.Receiver.Caps&capability.ReceiverManual == 0 {
		return fmt.Errorf("%w: manual receiver on %s", ErrUnsupported, src)
	}
	if receive < caps.Receiver.MinTime || receive > caps.Receiver.MaxTime || wait < 0 {
		return fmt.Errorf("%w: receive time %g", ErrOutOfRange, receive)
	}
	st.ReceiverAuto = false
	st.ReceiveTime, st.WaitTime = receive, wait
	return nil
}

func (d *SideScan) SetReceiverAuto(src capability.SourceType) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	caps, st, err := d.source(src)
	if err != nil {
		return err
	}
	if caps.Receiver == nil || caps.Receiver.Caps&capability.ReceiverAuto == 0 {
		return fmt.Errorf("%w: automatic receiver on %s", ErrUnsupported, src)
	}
	st.ReceiverAuto = true
	return nil
}

func (d *SideScan) SetGeneratorPreset(src capability.SourceType, preset int64) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	caps, st, err := d.source(src)
	if err != nil {
		return err
	}
	for _, p := range caps.Presets {
		if p.Value == preset {
			st.Preset = preset
			return nil
		}
	}
	return fmt.Errorf("%w: preset %d on %s", ErrUnknownEntity, preset, src)
}

// tvg checks that mode is supported and gain lies in the gain range.
func (d *SideScan) tvg(src capability.SourceType, mode capability.TVGCaps, gains ...float64) (*SourceState, error) {
	caps, st, err := d.source(src)
	if err != nil {
		return nil, err
	}
	if caps.TVG == nil || caps.TVG.Caps&mode == 0 {
		return nil, fmt.Errorf("%w: TVG %s on %s", ErrUnsupported, mode, src)
	}
	for _, g := range gains {
		if g < caps.TVG.MinGain || g > caps.TVG.MaxGain {
			return nil, fmt.Errorf("%w: gain %g", ErrOutOfRange, g)
		}
	}
	return st, nil
}

func (d *SideScan) SetTVGAuto(src capability.SourceType, level, sensitivity float64) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	st, err := d.tvg(src, capability.TVGAuto)
	if err != nil {
		return err
	}
	st.TVGMode = capability.TVGAuto
	st.Level, st.Sensitivity = level, sensitivity
	return nil
}

func (d *SideScan) SetTVGConstant(src capability.SourceType, gain float64) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	st, err := d.tvg(src, capability.TVGConstant, gain)
	if err != nil {
		return err
	}
	st.TVGMode = capability.TVGConstant
	st.Gain0 = gain
	return nil
}

func (d *SideScan) SetTVGLinearDB(src capability.SourceType, gain0, step float64) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	st, err := d.tvg(src, capability.TVGLinearDB, gain0)
	if err != nil {
		return err
	}
	st.TVGMode = capability.TVGLinearDB
	st.Gain0, st.Step = gain0, step
	return nil
}

func (d *SideScan) SetTVGLogarithmic(src capability.SourceType, gain0, beta, alpha float64) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	st, err := d.tvg(src, capability.TVGLogarithmic, gain0)
	if err != nil {
		return err
	}
	st.TVGMode = capability.TVGLogarithmic
	st.Gain0, st.Beta, st.Alpha = gain0, beta, alpha
	return nil
}

func (d *SideScan) SetSensorOffset(name string, offset capability.Offset) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.sensor(name); err != nil {
		return err
	}
	d.sensorOffsets[name] = offset
	return nil
}

func (d *SideScan) EnableSensor(name string, enable bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.sensor(name); err != nil {
		return err
	}
	d.sensorsEnabled[name] = enable
	return nil
}

// SensorEnabled reports whether a sensor delivers data.
func (d *SideScan) SensorEnabled(name string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.sensorsEnabled[name]
}

func (d *SideScan) sensor(name string) error {
	if !d.connected {
		return ErrDisconnected
	}
	if _, ok := d.sensors[name]; !ok {
		return fmt.Errorf("%w: sensor %s", ErrUnknownEntity, name)
	}
	return nil
}

// actuator returns the capabilities and state of an actuator. d.mu must be
// held.
func (d *SideScan) actuator(name string, mode capability.ActuatorCaps) (capability.Actuator, *ActuatorState, error) {
	if !d.connected {
		return capability.Actuator{}, nil, ErrDisconnected
	}
	caps, ok := d.actuators[name]
	if !ok {
		return capability.Actuator{}, nil, fmt.Errorf("%w: actuator %s", ErrUnknownEntity, name)
	}
	if mode != 0 && caps.Caps&mode == 0 {
		return capability.Actuator{}, nil, fmt.Errorf("%w: %s mode on %s", ErrUnsupported, mode, name)
	}
	return caps, d.actuatorState[name], nil
}

func (d *SideScan) DisableActuator(name string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	_, st, err := d.actuator(name, 0)
	if err != nil {
		return err
	}
	*st = ActuatorState{}
	return nil
}

func (d *SideScan) ScanActuator(name string, from, to, speed float64) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	caps, st, err := d.actuator(name, capability.ActuatorScan)
	if err != nil {
		return err
	}
	if from > to || from < caps.MinRange || to > caps.MaxRange {
		return fmt.Errorf("%w: sector [%g, %g]", ErrOutOfRange, from, to)
	}
	if speed < caps.MinSpeed || speed > caps.MaxSpeed {
		return fmt.Errorf("%w: speed %g", ErrOutOfRange, speed)
	}
	*st = ActuatorState{Mode: capability.ActuatorScan, From: from, To: to, Speed: speed}
	return nil
}

func (d *SideScan) ManualActuator(name string, angle float64) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	caps, st, err := d.actuator(name, capability.ActuatorManual)
	if err != nil {
		return err
	}
	if angle < caps.MinRange || angle > caps.MaxRange {
		return fmt.Errorf("%w: angle %g", ErrOutOfRange, angle)
	}
	*st = ActuatorState{Mode: capability.ActuatorManual, Angle: angle}
	return nil
}

// ActuatorState returns a copy of the state of an actuator.
func (d *SideScan) ActuatorState(name string) (ActuatorState, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	st, ok := d.actuatorState[name]
	if !ok {
		return ActuatorState{}, false
	}
	return *st, true
}
