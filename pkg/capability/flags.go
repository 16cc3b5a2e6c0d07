package capability

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ActuatorCaps is the actuator capability bit-set.
type ActuatorCaps uint32

const (
	// ActuatorScan: the actuator sweeps between two angles.
	ActuatorScan ActuatorCaps = 1 << iota

	// ActuatorManual: the actuator holds a commanded angle.
	ActuatorManual
)

// ReceiverCaps is the receiver capability bit-set.
type ReceiverCaps uint32

const (
	// ReceiverManual: receive time is set explicitly.
	ReceiverManual ReceiverCaps = 1 << iota

	// ReceiverAuto: receive time follows the working distance.
	ReceiverAuto
)

// TVGCaps is the time-varied gain capability bit-set.
type TVGCaps uint32

const (
	TVGAuto TVGCaps = 1 << iota
	TVGConstant
	TVGLinearDB
	TVGLogarithmic
)

type flagToken[T ~uint32] struct {
	flag  T
	token string
}

var actuatorTokens = []flagToken[ActuatorCaps]{
	{ActuatorScan, "scan"},
	{ActuatorManual, "manual"},
}

var receiverTokens = []flagToken[ReceiverCaps]{
	{ReceiverManual, "manual"},
	{ReceiverAuto, "auto"},
}

var tvgTokens = []flagToken[TVGCaps]{
	{TVGAuto, "auto"},
	{TVGConstant, "constant"},
	{TVGLinearDB, "linear-db"},
	{TVGLogarithmic, "logarithmic"},
}

// joinTokens renders the set flags as space-joined tokens in table order.
func joinTokens[T ~uint32](caps T, table []flagToken[T]) string {
	tokens := make([]string, 0, len(table))
	for _, ft := range table {
		if caps&ft.flag != 0 {
			tokens = append(tokens, ft.token)
		}
	}
	return strings.Join(tokens, " ")
}

// searchTokens returns the flags whose token occurs in s. The search is a
// case-sensitive substring match, so order and whitespace are irrelevant
// and unknown words contribute nothing.
func searchTokens[T ~uint32](s string, table []flagToken[T]) T {
	var caps T
	for _, ft := range table {
		if strings.Contains(s, ft.token) {
			caps |= ft.flag
		}
	}
	return caps
}

// parseTokenList converts exact tokens to flags, rejecting unknown tokens.
func parseTokenList[T ~uint32](tokens []string, table []flagToken[T]) (T, error) {
	var caps T
next:
	for _, tok := range tokens {
		for _, ft := range table {
			if tok == ft.token {
				caps |= ft.flag
				continue next
			}
		}
		return 0, fmt.Errorf("%w: %q", ErrUnknownToken, tok)
	}
	return caps, nil
}

// unmarshalTokensYAML accepts a scalar ("scan manual") or a sequence
// ([scan, manual]) of tokens.
func unmarshalTokensYAML[T ~uint32](node *yaml.Node, table []flagToken[T]) (T, error) {
	var tokens []string
	switch node.Kind {
	case yaml.ScalarNode:
		tokens = strings.Fields(node.Value)
	case yaml.SequenceNode:
		if err := node.Decode(&tokens); err != nil {
			return 0, err
		}
	default:
		return 0, fmt.Errorf("%w: line %d: expected token string or list", ErrInvalidDescription, node.Line)
	}
	return parseTokenList(tokens, table)
}

// String returns the space-joined tokens.
func (c ActuatorCaps) String() string { return joinTokens(c, actuatorTokens) }

// String returns the space-joined tokens.
func (c ReceiverCaps) String() string { return joinTokens(c, receiverTokens) }

// String returns the space-joined tokens.
func (c TVGCaps) String() string { return joinTokens(c, tvgTokens) }

// ParseActuatorCaps decodes an actuator token string.
func ParseActuatorCaps(s string) ActuatorCaps { return searchTokens(s, actuatorTokens) }

// ParseReceiverCaps decodes a receiver token string.
func ParseReceiverCaps(s string) ReceiverCaps { return searchTokens(s, receiverTokens) }

// ParseTVGCaps decodes a TVG token string.
func ParseTVGCaps(s string) TVGCaps { return searchTokens(s, tvgTokens) }

// HasGain returns true if any mode other than automatic is supported.
// Such modes need a gain range.
func (c TVGCaps) HasGain() bool { return c&^TVGAuto != 0 }

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *ActuatorCaps) UnmarshalYAML(node *yaml.Node) error {
	v, err := unmarshalTokensYAML(node, actuatorTokens)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c ActuatorCaps) MarshalYAML() (any, error) { return c.String(), nil }

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *ReceiverCaps) UnmarshalYAML(node *yaml.Node) error {
	v, err := unmarshalTokensYAML(node, receiverTokens)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c ReceiverCaps) MarshalYAML() (any, error) { return c.String(), nil }

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *TVGCaps) UnmarshalYAML(node *yaml.Node) error {
	v, err := unmarshalTokensYAML(node, tvgTokens)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c TVGCaps) MarshalYAML() (any, error) { return c.String(), nil }
