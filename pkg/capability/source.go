package capability

import "fmt"

// SourceType identifies a sonar data source. The set is closed: schemas
// naming an unknown source id are ignored by the decoder.
type SourceType uint16

const (
	SourceInvalid SourceType = iota
	SourceSideScanStarboard
	SourceSideScanPort
	SourceSideScanStarboardHi
	SourceSideScanPortHi
	SourceBottomLook
	SourceEchosounder
	SourceEchosounderHi
	SourceProfiler
	SourceProfilerEcho
	SourceLookAroundStarboard
	SourceLookAroundPort
	SourceForwardLook
	SourceForwardEcho
)

var sourceIDs = []string{
	SourceInvalid:             "",
	SourceSideScanStarboard:   "ss-starboard",
	SourceSideScanPort:        "ss-port",
	SourceSideScanStarboardHi: "ss-starboard-hi",
	SourceSideScanPortHi:      "ss-port-hi",
	SourceBottomLook:          "bottom-look",
	SourceEchosounder:         "echosounder",
	SourceEchosounderHi:       "echosounder-hi",
	SourceProfiler:            "profiler",
	SourceProfilerEcho:        "profiler-echo",
	SourceLookAroundStarboard: "look-around-starboard",
	SourceLookAroundPort:      "look-around-port",
	SourceForwardLook:         "forward-look",
	SourceForwardEcho:         "forward-echo",
}

var sourceByID = func() map[string]SourceType {
	m := make(map[string]SourceType, len(sourceIDs))
	for i, id := range sourceIDs {
		if id != "" {
			m[id] = SourceType(i)
		}
	}
	return m
}()

// ID returns the schema identifier of the source, or "" for invalid sources.
func (s SourceType) ID() string {
	if int(s) < len(sourceIDs) {
		return sourceIDs[s]
	}
	return ""
}

// Valid returns true for known sources.
func (s SourceType) Valid() bool { return s.ID() != "" }

// String returns the source identifier.
func (s SourceType) String() string {
	if !s.Valid() {
		return fmt.Sprintf("source(%d)", uint16(s))
	}
	return s.ID()
}

// ParseSourceType resolves a schema identifier.
func ParseSourceType(id string) (SourceType, bool) {
	s, ok := sourceByID[id]
	return s, ok
}

// AllSources returns every valid source type.
func AllSources() []SourceType {
	out := make([]SourceType, 0, len(sourceIDs)-1)
	for i := 1; i < len(sourceIDs); i++ {
		out = append(out, SourceType(i))
	}
	return out
}

// MarshalText implements encoding.TextMarshaler.
func (s SourceType) MarshalText() ([]byte, error) {
	return []byte(s.ID()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The empty string
// decodes to SourceInvalid.
func (s *SourceType) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*s = SourceInvalid
		return nil
	}
	v, ok := ParseSourceType(string(text))
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSource, string(text))
	}
	*s = v
	return nil
}
