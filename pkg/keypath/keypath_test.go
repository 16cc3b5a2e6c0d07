package keypath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name    string
		ns      Namespace
		id      string
		fields  []string
		want    string
		wantErr error
	}{
		{
			name: "dev-id",
			ns:   Sensors, id: "nmea", fields: []string{FieldDevID},
			want: "/sensors/nmea/dev-id",
		},
		{
			name: "nested",
			ns:   Sources, id: "ss-starboard", fields: []string{"offset", "x"},
			want: "/sources/ss-starboard/offset/x",
		},
		{
			name: "entity only",
			ns:   Actuators, id: "rotor",
			want: "/actuators/rotor",
		},
		{
			name: "bad namespace",
			ns:   Namespace("params"), id: "x",
			wantErr: ErrInvalidNamespace,
		},
		{
			name: "empty id",
			ns:   Sensors, id: "",
			wantErr: ErrInvalidSegment,
		},
		{
			name: "slash in id",
			ns:   Sensors, id: "a/b",
			wantErr: ErrInvalidSegment,
		},
		{
			name: "empty field",
			ns:   Sensors, id: "a", fields: []string{"offset", ""},
			wantErr: ErrInvalidSegment,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Build(tt.ns, tt.id, tt.fields...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		path string
		want Entity
		ok   bool
	}{
		{"/sensors/gps/dev-id", Entity{Sensors, "gps", "dev-id"}, true},
		{"/sources/ss-port/description", Entity{Sources, "ss-port", "description"}, true},
		{"/actuators/a1/range", Entity{Actuators, "a1", "range"}, true},
		{"/sources/ss-port/offset/x", Entity{}, false},
		{"/sensors/gps", Entity{}, false},
		{"/params/gps/dev-id", Entity{}, false},
		{"sensors/gps/dev-id/x", Entity{}, false},
		{"/sensors//dev-id", Entity{}, false},
		{"/sensors/gps/", Entity{}, false},
		{"", Entity{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := Split(tt.path)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
			if ok {
				assert.Equal(t, tt.path, got.String())
			}
		})
	}
}

func TestEntities(t *testing.T) {
	paths := []string{
		"/schema/id",
		"/sensors/gps/dev-id",
		"/sensors/gps/description",
		"/sensors/compass/description",
		"/sensors/gps/offset/yaw",
		"/sensors/sonar/dev-id",
		"/sources/ss-port/dev-id",
		"/params/sensors/dev-id",
	}

	assert.Equal(t, []string{"gps", "sonar"}, Entities(paths, Sensors, FieldDevID))
	assert.Equal(t, []string{"ss-port"}, Entities(paths, Sources, FieldDevID))
	assert.Empty(t, Entities(paths, Actuators, FieldDevID))
}

func TestChildren(t *testing.T) {
	paths := []string{
		"/sources/ss-port/generator/tone",
		"/sources/ss-port/generator/lfm",
		"/sources/ss-port/generator/lfm/extra",
		"/sources/ss-port/generator",
		"/sources/ss-starboard/generator/tone",
	}
	assert.Equal(t, []string{"tone", "lfm"}, Children(paths, "/sources/ss-port/generator/"))
}

func TestPrefix(t *testing.T) {
	p, err := Prefix(Sources, "echosounder", "generator")
	require.NoError(t, err)
	assert.Equal(t, "/sources/echosounder/generator/", p)
}
