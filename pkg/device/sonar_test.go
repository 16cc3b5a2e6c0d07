package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/screen-co/libhyscandriver-sub000/pkg/capability"
	"github.com/screen-co/libhyscandriver-sub000/pkg/keypath"
)

func newSonarSchema(t *testing.T) (*Schema, *SonarSchema) {
	t.Helper()
	s := NewSchema()
	enc, err := s.Sonar()
	require.NoError(t, err)
	return s, enc
}

func TestSonarKeyLayout(t *testing.T) {
	s, enc := newSonarSchema(t)
	require.NoError(t, enc.AddFull(capability.SonarSource{
		Source:   capability.SourceEchosounder,
		DevID:    "es-1",
		Link:     capability.SourceBottomLook,
		Offset:   &capability.Offset{},
		Receiver: &capability.Receiver{Caps: capability.ReceiverAuto, MinTime: 0, MaxTime: 1},
		Presets:  []capability.GeneratorPreset{{ID: "p1", Value: 1, Name: "P1"}},
		TVG:      &capability.TVG{Caps: capability.TVGConstant, MaxGain: 40},
	}))

	for _, p := range []string{
		"/sources/echosounder/dev-id",
		"/sources/echosounder/link",
		"/sources/echosounder/offset/x",
		"/sources/echosounder/offset/y",
		"/sources/echosounder/offset/z",
		"/sources/echosounder/offset/psi",
		"/sources/echosounder/offset/gamma",
		"/sources/echosounder/offset/theta",
		"/sources/echosounder/receiver/capabilities",
		"/sources/echosounder/receiver/time",
		"/sources/echosounder/generator/p1",
		"/sources/echosounder/tvg/capabilities",
		"/sources/echosounder/tvg/gain",
		"/sources/echosounder/tvg/decrease",
	} {
		assert.True(t, s.Has(p), p)
	}
}

func TestSonarOptionalRanges(t *testing.T) {
	s, enc := newSonarSchema(t)
	require.NoError(t, enc.AddSource(capability.SourceProfiler, "pr-1", "", capability.SourceInvalid))
	require.NoError(t, enc.SetReceiverParams(capability.SourceProfiler, 0, 5, 10))
	require.NoError(t, enc.SetTVGParams(capability.SourceProfiler, capability.TVGAuto, 5, 10, false))

	assert.False(t, s.Has("/sources/profiler/receiver/time"))
	assert.False(t, s.Has("/sources/profiler/tvg/gain"))
	assert.False(t, s.Has("/sources/profiler/link"))

	sources, err := ParseSources(s.Build())
	require.NoError(t, err)
	src := sources[capability.SourceProfiler]
	assert.Equal(t, &capability.Receiver{}, src.Receiver)
	assert.Equal(t, &capability.TVG{Caps: capability.TVGAuto}, src.TVG)
	assert.Equal(t, capability.SourceInvalid, src.Link)
}

func TestSonarPresetsKeepOrder(t *testing.T) {
	s, enc := newSonarSchema(t)
	require.NoError(t, enc.AddSource(capability.SourceForwardLook, "fl-1", "", 0))

	presets := []capability.GeneratorPreset{
		{ID: "z-last", Value: 3, Name: "Z"},
		{ID: "a-first", Value: 1, Name: "A", Description: "first"},
		{ID: "m", Value: 2, Name: "M"},
	}
	for _, p := range presets {
		require.NoError(t, enc.AddGeneratorPreset(capability.SourceForwardLook, p))
	}
	// Nested keys under generator/ are not presets.
	require.NoError(t, s.CreateInteger("/sources/forward-look/generator/z-last/extra", "extra", "", 9))

	sources, err := ParseSources(s.Build())
	require.NoError(t, err)
	assert.Equal(t, presets, sources[capability.SourceForwardLook].Presets)
}

func TestSonarIncompleteReceiverRejectsSource(t *testing.T) {
	s, enc := newSonarSchema(t)
	require.NoError(t, enc.AddSource(capability.SourceSideScanPort, "ss-1", "", 0))
	require.NoError(t, enc.AddSource(capability.SourceSideScanStarboard, "ss-1", "", 0))

	// Manual receiver without a time range.
	require.NoError(t, s.CreateString("/sources/ss-port/receiver/capabilities", "caps", "", "manual"))

	sources, err := ParseSources(s.Build())
	require.NoError(t, err)
	assert.NotContains(t, sources, capability.SourceSideScanPort)
	assert.Contains(t, sources, capability.SourceSideScanStarboard)
}

func TestSonarIncompleteTVGRejectsSource(t *testing.T) {
	s, enc := newSonarSchema(t)
	require.NoError(t, enc.AddSource(capability.SourceBottomLook, "bl-1", "", 0))
	require.NoError(t, s.CreateString("/sources/bottom-look/tvg/capabilities", "caps", "", "logarithmic"))

	_, err := ParseSources(s.Build())
	assert.ErrorIs(t, err, ErrNoEntities)
}

func TestSonarUnknownSourceIgnored(t *testing.T) {
	s, enc := newSonarSchema(t)
	require.NoError(t, enc.AddSource(capability.SourceEchosounder, "es-1", "", 0))
	require.NoError(t, s.CreateString("/sources/mystery/dev-id", "dev-id", "", "x"))

	sources, err := ParseSources(s.Build())
	require.NoError(t, err)
	assert.Len(t, sources, 1)
}

func TestSonarErrors(t *testing.T) {
	_, enc := newSonarSchema(t)

	assert.ErrorIs(t, enc.AddSource(capability.SourceInvalid, "x", "", 0), ErrInvalidSource)
	assert.ErrorIs(t, enc.AddSource(capability.SourceEchosounder, "", "", 0), ErrEmptyDevID)
	assert.ErrorIs(t, enc.SetReceiverParams(capability.SourceEchosounder, capability.ReceiverAuto, 0, 1), ErrUnknownEntity)
	assert.ErrorIs(t, enc.SetTVGParams(capability.SourceEchosounder, 0, 0, 0, false), ErrUnknownEntity)
	assert.ErrorIs(t, enc.AddGeneratorPreset(capability.SourceEchosounder, capability.GeneratorPreset{ID: "p"}), ErrUnknownEntity)
	assert.ErrorIs(t, enc.SetOffset(capability.SourceEchosounder, capability.Offset{}), ErrUnknownEntity)

	require.NoError(t, enc.AddSource(capability.SourceEchosounder, "es-1", "", 0))
	assert.ErrorIs(t, enc.AddSource(capability.SourceEchosounder, "es-1", "", 0), ErrDuplicateEntity)
	assert.ErrorIs(t, enc.AddGeneratorPreset(capability.SourceEchosounder, capability.GeneratorPreset{ID: "bad/id"}), keypath.ErrInvalidSegment)
}

func TestSonarAddFullStopsAtFirstFailure(t *testing.T) {
	s, enc := newSonarSchema(t)
	err := enc.AddFull(capability.SonarSource{
		Source:   capability.SourceEchosounder,
		DevID:    "es-1",
		Receiver: &capability.Receiver{Caps: capability.ReceiverManual, MinTime: 2, MaxTime: 1},
		TVG:      &capability.TVG{Caps: capability.TVGAuto},
	})
	require.Error(t, err)

	// Keys written before the failure stay.
	assert.True(t, s.Has("/sources/echosounder/dev-id"))
	assert.True(t, s.Has("/sources/echosounder/receiver/capabilities"))
	assert.False(t, s.Has("/sources/echosounder/tvg/capabilities"))

	// A retry hits the entity written by the failed attempt.
	err = enc.AddFull(capability.SonarSource{Source: capability.SourceEchosounder, DevID: "es-1"})
	assert.ErrorIs(t, err, ErrDuplicateEntity)
}
