package device

import (
	"fmt"

	"github.com/screen-co/libhyscandriver-sub000/pkg/capability"
	"github.com/screen-co/libhyscandriver-sub000/pkg/keypath"
	"github.com/screen-co/libhyscandriver-sub000/pkg/schema"
)

// Sonar source leaf fields.
const (
	fieldLink      = "link"
	fieldReceiver  = "receiver"
	fieldGenerator = "generator"
	fieldTVG       = "tvg"
	fieldTime      = "time"
	fieldGain      = "gain"
	fieldDecrease  = "decrease"
)

// SonarSchema encodes sonar sources into a device schema.
type SonarSchema struct {
	w *entityWriter
}

func sourceID(source capability.SourceType) (string, error) {
	if !source.Valid() {
		return "", fmt.Errorf("%w: %s", ErrInvalidSource, source)
	}
	return source.ID(), nil
}

// AddSource adds a sonar source. link names the master source for slaved
// sources and is ignored when it is not a valid source type.
func (s *SonarSchema) AddSource(source capability.SourceType, devID, description string, link capability.SourceType) error {
	id, err := sourceID(source)
	if err != nil {
		return err
	}
	if err := s.w.add(id, devID, description); err != nil {
		return err
	}
	if link.Valid() {
		return s.w.setString(id, "Master source", "", link.ID(), fieldLink)
	}
	return nil
}

func (s *SonarSchema) added(source capability.SourceType) (string, error) {
	id, err := sourceID(source)
	if err != nil {
		return "", err
	}
	return id, s.w.require(id)
}

// SetOffset sets the default antenna offset of an added source.
func (s *SonarSchema) SetOffset(source capability.SourceType, offset capability.Offset) error {
	id, err := sourceID(source)
	if err != nil {
		return err
	}
	return s.w.setOffset(id, sourceOffsetFields, offset)
}

// SetReceiverParams sets the receiver capabilities of an added source. The
// receive time range (seconds) is written only for non-empty capabilities.
func (s *SonarSchema) SetReceiverParams(source capability.SourceType, caps capability.ReceiverCaps, minTime, maxTime float64) error {
	id, err := s.added(source)
	if err != nil {
		return err
	}
	if err := s.w.setString(id, "Receiver capabilities", "", caps.String(), fieldReceiver, fieldCapabilities); err != nil {
		return err
	}
	if caps == 0 {
		return nil
	}
	return s.w.setRange(id, "Receive time", minTime, maxTime, fieldReceiver, fieldTime)
}

// AddGeneratorPreset adds a generator preset to an added source.
func (s *SonarSchema) AddGeneratorPreset(source capability.SourceType, preset capability.GeneratorPreset) error {
	id, err := s.added(source)
	if err != nil {
		return err
	}
	return s.w.setInteger(id, preset.Name, preset.Description, preset.Value, fieldGenerator, preset.ID)
}

// SetTVGParams sets the time-varied gain capabilities of an added source.
// The gain range (dB) is written only when caps include a gain mode.
func (s *SonarSchema) SetTVGParams(source capability.SourceType, caps capability.TVGCaps, minGain, maxGain float64, decrease bool) error {
	id, err := s.added(source)
	if err != nil {
		return err
	}
	if err := s.w.setString(id, "TVG capabilities", "", caps.String(), fieldTVG, fieldCapabilities); err != nil {
		return err
	}
	if caps.HasGain() {
		if err := s.w.setRange(id, "Gain", minGain, maxGain, fieldTVG, fieldGain); err != nil {
			return err
		}
	}
	return s.w.setBoolean(id, "Gain decrease", decrease, fieldTVG, fieldDecrease)
}

// AddFull adds a source with all of its optional parts. It stops at the
// first failure; keys written before it are kept.
func (s *SonarSchema) AddFull(src capability.SonarSource) error {
	if err := s.AddSource(src.Source, src.DevID, src.Description, src.Link); err != nil {
		return err
	}
	if src.Offset != nil {
		if err := s.SetOffset(src.Source, *src.Offset); err != nil {
			return err
		}
	}
	if src.Receiver != nil {
		if err := s.SetReceiverParams(src.Source, src.Receiver.Caps, src.Receiver.MinTime, src.Receiver.MaxTime); err != nil {
			return err
		}
	}
	for _, p := range src.Presets {
		if err := s.AddGeneratorPreset(src.Source, p); err != nil {
			return err
		}
	}
	if src.TVG != nil {
		t := src.TVG
		if err := s.SetTVGParams(src.Source, t.Caps, t.MinGain, t.MaxGain, t.Decrease); err != nil {
			return err
		}
	}
	return nil
}

// ParseSources decodes all sonar sources of a device schema. Entries with
// unknown source ids are ignored. A source whose receiver or TVG branch is
// present but incomplete is skipped.
func ParseSources(s schema.Reader) (map[capability.SourceType]capability.SonarSource, error) {
	if !sonarKind.check(s) {
		return nil, ErrIncompatibleSchema
	}

	r := entityReader{s: s, ns: sonarKind.ns}
	keys := s.Keys()
	sources := make(map[capability.SourceType]capability.SonarSource)

	for _, id := range r.ids() {
		source, ok := capability.ParseSourceType(id)
		if !ok {
			continue
		}
		devID, description, ok := r.base(id)
		if !ok {
			continue
		}

		src := capability.SonarSource{
			Source:      source,
			DevID:       devID,
			Description: description,
			Offset:      r.offset(id, sourceOffsetFields),
		}
		if link, ok := r.str(id, fieldLink); ok {
			src.Link, _ = capability.ParseSourceType(link)
		}

		if src.Receiver, ok = readReceiver(r, id); !ok {
			continue
		}
		if src.TVG, ok = readTVG(r, id); !ok {
			continue
		}
		src.Presets = readPresets(r, keys, id)

		sources[source] = src
	}

	if len(sources) == 0 {
		return nil, ErrNoEntities
	}
	return sources, nil
}

// readReceiver returns nil, true when the source has no receiver branch.
func readReceiver(r entityReader, id string) (*capability.Receiver, bool) {
	token, ok := r.str(id, fieldReceiver, fieldCapabilities)
	if !ok {
		return nil, true
	}

	rcv := &capability.Receiver{Caps: capability.ParseReceiverCaps(token)}
	if rcv.Caps == 0 {
		return rcv, true
	}
	if rcv.MinTime, rcv.MaxTime, ok = r.rng(id, fieldReceiver, fieldTime); !ok {
		return nil, false
	}
	return rcv, true
}

// readTVG returns nil, true when the source has no TVG branch.
func readTVG(r entityReader, id string) (*capability.TVG, bool) {
	token, ok := r.str(id, fieldTVG, fieldCapabilities)
	if !ok {
		return nil, true
	}

	tvg := &capability.TVG{Caps: capability.ParseTVGCaps(token)}
	tvg.Decrease, _ = r.boolean(id, fieldTVG, fieldDecrease)
	if !tvg.Caps.HasGain() {
		return tvg, true
	}
	if tvg.MinGain, tvg.MaxGain, ok = r.rng(id, fieldTVG, fieldGain); !ok {
		return nil, false
	}
	return tvg, true
}

// readPresets collects the integer keys directly below generator/, in key
// order.
func readPresets(r entityReader, keys []string, id string) []capability.GeneratorPreset {
	prefix, err := keypath.Prefix(r.ns, id, fieldGenerator)
	if err != nil {
		return nil
	}

	var presets []capability.GeneratorPreset
	for _, name := range keypath.Children(keys, prefix) {
		key, ok := r.s.Key(prefix + name)
		if !ok || key.Type != schema.TypeInteger || !key.Access.CanRead() {
			continue
		}
		presets = append(presets, capability.GeneratorPreset{
			ID:          name,
			Value:       key.Default.Int,
			Name:        key.Name,
			Description: key.Description,
		})
	}
	return presets
}
