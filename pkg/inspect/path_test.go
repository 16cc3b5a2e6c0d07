package inspect

import (
	"errors"
	"testing"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "namespace", input: "sources", want: "/sources"},
		{name: "entity", input: "sources/ss-port", want: "/sources/ss-port"},
		{name: "leading slash", input: "/sources/ss-port/tvg", want: "/sources/ss-port/tvg"},
		{name: "trailing slash", input: "sensors/gnss/", want: "/sensors/gnss"},
		{name: "root", input: "/", want: ""},
		{name: "surrounding space", input: "  schema/id ", want: "/schema/id"},
		{name: "empty", input: "  ", wantErr: ErrEmptyPath},
		{name: "double slash", input: "sources//tvg", wantErr: ErrInvalidPath},
		{name: "bad character", input: "sources/ss port", wantErr: ErrInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePath(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParsePath(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePath(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParsePath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		prefix, path string
		want         bool
	}{
		{"", "/sources/ss-port/dev-id", true},
		{"/sources", "/sources/ss-port/dev-id", true},
		{"/sources/ss-port", "/sources/ss-port", true},
		{"/sources/ss", "/sources/ss-port/dev-id", false},
		{"/sensors", "/sources/ss-port/dev-id", false},
	}

	for _, tt := range tests {
		if got := Match(tt.prefix, tt.path); got != tt.want {
			t.Errorf("Match(%q, %q) = %v, want %v", tt.prefix, tt.path, got, tt.want)
		}
	}
}
