package examples

import (
	"context"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/screen-co/libhyscandriver-sub000/pkg/capability"
	"github.com/screen-co/libhyscandriver-sub000/pkg/device"
	"github.com/screen-co/libhyscandriver-sub000/pkg/driver"
)

func newSideScan(t *testing.T) *SideScan {
	t.Helper()
	d, err := NewSideScan(SideScanConfig{URI: SimulatorURI})
	require.NoError(t, err)
	return d
}

func TestSideScanSchemaDescribesDevice(t *testing.T) {
	s, err := SideScanSchema()
	require.NoError(t, err)
	require.True(t, device.Check(s))

	desc, err := device.Describe(s)
	require.NoError(t, err)
	require.Len(t, desc.Sources, 2)
	assert.Equal(t, capability.SourceSideScanStarboard, desc.Sources[0].Source)
	assert.Equal(t, capability.SourceSideScanPort, desc.Sources[1].Source)
	assert.Equal(t, capability.SourceSideScanStarboard, desc.Sources[1].Link)
	require.Len(t, desc.Actuators, 1)
	assert.Equal(t, capability.ActuatorScan|capability.ActuatorManual, desc.Actuators[0].Caps)
	require.Len(t, desc.Sensors, 1)
	assert.Equal(t, "gnss", desc.Sensors[0].Name)

	v, ok := s.GetDouble(ParamSoundVelocity)
	require.True(t, ok)
	assert.Equal(t, 1500.0, v)
}

func TestSideScanReceiver(t *testing.T) {
	d := newSideScan(t)
	src := capability.SourceSideScanStarboard

	st, ok := d.SourceState(src)
	require.True(t, ok)
	assert.True(t, st.ReceiverAuto)

	require.NoError(t, d.SetReceiverTime(src, 0.1, 0.05))
	st, _ = d.SourceState(src)
	assert.False(t, st.ReceiverAuto)
	assert.Equal(t, 0.1, st.ReceiveTime)

	assert.ErrorIs(t, d.SetReceiverTime(src, 0.5, 0), ErrOutOfRange)
	assert.ErrorIs(t, d.SetReceiverTime(capability.SourceForwardEcho, 0.1, 0), ErrUnknownEntity)

	require.NoError(t, d.SetReceiverAuto(src))
	st, _ = d.SourceState(src)
	assert.True(t, st.ReceiverAuto)
}

func TestSideScanGeneratorPreset(t *testing.T) {
	d := newSideScan(t)
	src := capability.SourceSideScanPort

	require.NoError(t, d.SetGeneratorPreset(src, 2))
	st, _ := d.SourceState(src)
	assert.Equal(t, int64(2), st.Preset)

	assert.ErrorIs(t, d.SetGeneratorPreset(src, 7), ErrUnknownEntity)
}

func TestSideScanTVG(t *testing.T) {
	d := newSideScan(t)
	src := capability.SourceSideScanStarboard

	require.NoError(t, d.SetTVGConstant(src, 20))
	st, _ := d.SourceState(src)
	assert.Equal(t, capability.TVGConstant, st.TVGMode)
	assert.Equal(t, 20.0, st.Gain0)

	require.NoError(t, d.SetTVGLinearDB(src, 10, 2))
	require.NoError(t, d.SetTVGLogarithmic(src, 10, 40, 0.02))
	st, _ = d.SourceState(src)
	assert.Equal(t, capability.TVGLogarithmic, st.TVGMode)
	assert.Equal(t, 40.0, st.Beta)

	require.NoError(t, d.SetTVGAuto(src, -1, -1))
	st, _ = d.SourceState(src)
	assert.Equal(t, capability.TVGAuto, st.TVGMode)

	assert.ErrorIs(t, d.SetTVGConstant(src, 80), ErrOutOfRange)
	assert.ErrorIs(t, d.SetTVGLinearDB(src, -1, 2), ErrOutOfRange)
}

func TestSideScanActuator(t *testing.T) {
	d := newSideScan(t)

	require.NoError(t, d.ScanActuator("pan", -30, 30, 10))
	st, ok := d.ActuatorState("pan")
	require.True(t, ok)
	assert.Equal(t, ActuatorState{Mode: capability.ActuatorScan, From: -30, To: 30, Speed: 10}, st)

	tests := []struct {
		name            string
		from, to, speed float64
	}{
		{"reversed", 30, -30, 10},
		{"below range", -50, 0, 10},
		{"above range", 0, 50, 10},
		{"too fast", -10, 10, 25},
		{"too slow", -10, 10, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, d.ScanActuator("pan", tt.from, tt.to, tt.speed), ErrOutOfRange)
		})
	}

	require.NoError(t, d.ManualActuator("pan", 12))
	st, _ = d.ActuatorState("pan")
	assert.Equal(t, capability.ActuatorManual, st.Mode)
	assert.Equal(t, 12.0, st.Angle)

	require.NoError(t, d.DisableActuator("pan"))
	st, _ = d.ActuatorState("pan")
	assert.Equal(t, ActuatorState{}, st)

	assert.ErrorIs(t, d.ManualActuator("tilt", 0), ErrUnknownEntity)
}

func TestSideScanSensor(t *testing.T) {
	d := newSideScan(t)

	assert.True(t, d.SensorEnabled("gnss"))
	require.NoError(t, d.EnableSensor("gnss", false))
	assert.False(t, d.SensorEnabled("gnss"))

	require.NoError(t, d.SetSensorOffset("gnss", capability.Offset{Forward: 1}))
	assert.ErrorIs(t, d.EnableSensor("compass", true), ErrUnknownEntity)
}

func TestSideScanParams(t *testing.T) {
	d := newSideScan(t)

	require.NoError(t, d.Set(driver.Params{ParamSoundVelocity: 1480.0, ParamPingRate: int64(5)}))
	assert.Equal(t, 1500.0, d.Params()[ParamSoundVelocity], "not applied before Sync")

	require.NoError(t, d.Sync())
	assert.Equal(t, 1480.0, d.Params()[ParamSoundVelocity])
	assert.Equal(t, int64(5), d.Params()[ParamPingRate])

	assert.ErrorIs(t, d.Set(driver.Params{ParamSoundVelocity: 2000.0}), ErrOutOfRange)
	assert.Error(t, d.Set(driver.Params{ParamPingRate: 5}))
	assert.ErrorIs(t, d.Set(driver.Params{"/schema/id": int64(1)}), ErrUnknownEntity)
}

func TestSideScanStartStop(t *testing.T) {
	d := newSideScan(t)

	assert.ErrorIs(t, d.Stop(), ErrNotRunning)
	require.NoError(t, d.Start(context.Background(), "survey", "track-1"))

	running, project, track := d.Running()
	assert.True(t, running)
	assert.Equal(t, "survey", project)
	assert.Equal(t, "track-1", track)

	require.NoError(t, d.Stop())
	assert.Error(t, d.Start(context.Background(), "", "track-1"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, d.Start(ctx, "survey", "track-2"), context.Canceled)
}

func TestSideScanDisconnect(t *testing.T) {
	d := newSideScan(t)

	require.NoError(t, d.Disconnect())
	assert.ErrorIs(t, d.Disconnect(), ErrDisconnected)
	assert.ErrorIs(t, d.SetTVGConstant(capability.SourceSideScanPort, 10), ErrDisconnected)
	assert.ErrorIs(t, d.ManualActuator("pan", 0), ErrDisconnected)
	assert.ErrorIs(t, d.EnableSensor("gnss", true), ErrDisconnected)
	assert.ErrorIs(t, d.Sync(), ErrDisconnected)
}

type recordingSubscriber struct {
	mu        sync.Mutex
	progress  []float64
	completed chan struct{}
}

func newRecordingSubscriber() *recordingSubscriber {
	return &recordingSubscriber{completed: make(chan struct{}, 1)}
}

func (r *recordingSubscriber) OnProgress(p float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.progress = append(r.progress, p)
}

func (r *recordingSubscriber) OnCompleted() { r.completed <- struct{}{} }

func TestDiscoverSimulator(t *testing.T) {
	d := NewDiscover(DiscoverConfig{})

	sub := newRecordingSubscriber()
	d.Subscribe(sub)
	require.NoError(t, d.Start())

	select {
	case <-sub.completed:
	case <-time.After(time.Second):
		t.Fatal("scan did not complete")
	}
	assert.Equal(t, []float64{100}, sub.progress)
	d.Unsubscribe(sub)

	list := d.List()
	require.Len(t, list, 1)
	assert.Equal(t, SimulatorURI, list[0].URI)
	assert.True(t, d.Check(SimulatorURI))
	assert.False(t, d.Check("tcp://192.0.2.1:5000"))
	assert.Nil(t, d.Config("tcp://192.0.2.1:5000"))

	cfg := d.Config(SimulatorURI)
	require.NotNil(t, cfg)
	timeout, ok := cfg.GetDouble(ParamTimeout)
	require.True(t, ok)
	assert.Equal(t, DefaultConnectTimeout.Seconds(), timeout)
}

func TestDiscoverConnect(t *testing.T) {
	d := NewDiscover(DiscoverConfig{})
	ctx := context.Background()

	dev, err := d.Connect(ctx, SimulatorURI, driver.Params{ParamTimeout: 1.0})
	require.NoError(t, err)
	assert.True(t, device.Check(dev.Schema()))

	sonar, ok := dev.(driver.Sonar)
	require.True(t, ok)
	require.NoError(t, sonar.SetTVGConstant(capability.SourceSideScanPort, 30))
	require.NoError(t, dev.Disconnect())

	_, err = d.Connect(ctx, "tcp://192.0.2.1:5000", nil)
	assert.ErrorIs(t, err, ErrUnknownURI)

	_, err = d.Connect(ctx, SimulatorURI, driver.Params{ParamTimeout: 100.0})
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = d.Connect(ctx, SimulatorURI, driver.Params{ParamSerial: "other"})
	assert.Error(t, err)
}

func TestDiscoverProbe(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			conn.Close()
		}
	}()

	d := NewDiscover(DiscoverConfig{})
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, d.probe(ctx, "tcp://"+ln.Addr().String()))
}

func TestInfoSchema(t *testing.T) {
	s := InfoSchema()
	require.NotNil(t, s)
	require.True(t, driver.CheckInfo(s))

	info, err := driver.ParseInfo(s)
	require.NoError(t, err)
	assert.Equal(t, DriverName, info.Name)
	assert.Equal(t, DriverVersion, info.Version)
}
