package inspect

import (
	"strings"
	"testing"

	"github.com/screen-co/libhyscandriver-sub000/pkg/driver"
	"github.com/screen-co/libhyscandriver-sub000/pkg/schema"
)

func testSchema(t *testing.T) *schema.Schema {
	t.Helper()

	b := schema.NewBuilder()
	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
	}
	must(b.CreateString("/sources/ss-port/dev-id", "dev-id", "", "ss"))
	must(b.SetAccess("/sources/ss-port/dev-id", schema.AccessReadOnly))
	must(b.CreateDouble("/sources/ss-port/tvg/max-gain", "max-gain", "", 70))
	must(b.SetDoubleRange("/sources/ss-port/tvg/max-gain", 0, 70, 0.5))
	must(b.CreateInteger("/params/ping-rate", "ping-rate", "", 10))
	must(b.SetIntegerRange("/params/ping-rate", 1, 30, 1))
	must(b.CreateBoolean("/params/debug", "debug", "", false))
	must(b.SetAccess("/params/debug", schema.AccessReadWrite|schema.AccessHidden))
	must(b.CreateEnum("/params/mode", "mode", "", []schema.EnumValue{
		{Value: 1, ID: "survey", Name: "Survey"},
		{Value: 2, ID: "calibrate", Name: "Calibrate"},
	}, 2))
	return b.Build()
}

func TestFormatValue(t *testing.T) {
	f := NewFormatter()
	s := testSchema(t)

	tests := []struct {
		path     string
		expected string
	}{
		{"/sources/ss-port/dev-id", `"ss"`},
		{"/sources/ss-port/tvg/max-gain", "70"},
		{"/params/ping-rate", "10"},
		{"/params/debug", "false"},
		{"/params/mode", "calibrate"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			key, ok := s.Key(tt.path)
			if !ok {
				t.Fatalf("missing key %s", tt.path)
			}
			if got := f.FormatValue(key); got != tt.expected {
				t.Errorf("FormatValue(%s) = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}
}

func TestFormatRange(t *testing.T) {
	s := testSchema(t)

	tests := []struct {
		path     string
		expected string
	}{
		{"/sources/ss-port/tvg/max-gain", "[0, 70] step 0.5"},
		{"/params/ping-rate", "[1, 30] step 1"},
		{"/params/mode", "{survey, calibrate}"},
		{"/params/debug", ""},
	}

	for _, tt := range tests {
		key, _ := s.Key(tt.path)
		if got := FormatRange(key); got != tt.expected {
			t.Errorf("FormatRange(%s) = %q, want %q", tt.path, got, tt.expected)
		}
	}
}

func TestFormatAccess(t *testing.T) {
	tests := []struct {
		access   schema.Access
		expected string
	}{
		{schema.AccessReadOnly, "read-only"},
		{schema.AccessReadWrite, "read-write"},
		{schema.AccessWrite, "write-only"},
		{0, "none"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := FormatAccess(tt.access); got != tt.expected {
				t.Errorf("FormatAccess(%d) = %q, want %q", tt.access, got, tt.expected)
			}
		})
	}
}

func TestFormatSchema(t *testing.T) {
	f := NewFormatter()
	s := testSchema(t)

	out := f.FormatSchema(s, "/sources")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d:\n%s", len(lines), out)
	}

	// Values start in the same column.
	col0 := strings.Index(lines[0], `"ss"`)
	col1 := strings.Index(lines[1], "70")
	if col0 != col1 {
		t.Errorf("values not aligned:\n%s", out)
	}
	if !strings.Contains(lines[1], "(double, read-write, [0, 70] step 0.5)") {
		t.Errorf("missing metadata: %q", lines[1])
	}
}

func TestFormatSchemaHidden(t *testing.T) {
	f := NewFormatter()
	s := testSchema(t)

	if out := f.FormatSchema(s, "/params"); strings.Contains(out, "/params/debug") {
		t.Errorf("hidden key shown:\n%s", out)
	}

	f.ShowHidden = true
	if out := f.FormatSchema(s, "/params"); !strings.Contains(out, "/params/debug") {
		t.Errorf("hidden key not shown:\n%s", out)
	}
}

func TestFormatKeyTableEmpty(t *testing.T) {
	f := &Formatter{}
	if got := f.FormatKeyTable(nil); got != "  (no keys)\n" {
		t.Errorf("FormatKeyTable(nil) = %q", got)
	}
}

func TestFormatKeyTableNoMetadata(t *testing.T) {
	f := &Formatter{IndentWidth: 1}
	got := f.FormatKeyTable([]KeyRow{{Path: "/a", Value: "1", Type: "integer"}})
	if got != " /a  1\n" {
		t.Errorf("FormatKeyTable = %q", got)
	}
}

func TestFormatInfo(t *testing.T) {
	f := NewFormatter()
	out := f.FormatInfo(driver.Info{
		Name:       "dummy",
		Version:    "1.0.0",
		ID:         "20190127",
		APIVersion: 20190100,
	})

	for _, want := range []string{"dummy\n", "version:     1.0.0", "api:         2019.01.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("FormatInfo missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "description") {
		t.Errorf("empty description printed:\n%s", out)
	}
}

func TestFormatSummary(t *testing.T) {
	got := FormatSummary(driver.DeviceSummary{ID: "sn1", URI: "tcp://10.0.0.2:5000", Name: "Sonar", Model: "SSS", Multi: true})
	want := "sn1  tcp://10.0.0.2:5000  Sonar (SSS) [multi]"
	if got != want {
		t.Errorf("FormatSummary = %q, want %q", got, want)
	}
}
