package interval

import (
	"fmt"

	msgpack "gopkg.in/vmihailenco/msgpack.v2"
	"gopkg.in/yaml.v3"
)

// MarshalText renders the interval in duration literal form.
func (i Interval) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText parses a duration literal, e.g. "1d12h30m".
func (i *Interval) UnmarshalText(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}

	*i = parsed

	return nil
}

// MarshalJSON renders the interval as a duration literal string.
func (i Interval) MarshalJSON() ([]byte, error) {
	return []byte(`"` + i.String() + `"`), nil
}

// UnmarshalJSON parses a quoted duration literal.
func (i *Interval) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("%w: expected a quoted duration literal, got %s", ErrLiteralSyntax, data)
	}

	return i.UnmarshalText(data[1 : len(data)-1])
}

// MarshalYAML renders the interval as a duration literal scalar.
func (i Interval) MarshalYAML() (interface{}, error) {
	return i.String(), nil
}

// UnmarshalYAML parses a duration literal scalar. Declaring duration
// constants in configuration files goes through here.
func (i *Interval) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return fmt.Errorf("%w: %v", ErrLiteralSyntax, err)
	}

	return i.UnmarshalText([]byte(raw))
}

// EncodeMsgpack writes the interval as a duration literal string.
func (i Interval) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(i.String())
}

// DecodeMsgpack reads a duration literal string.
func (i *Interval) DecodeMsgpack(dec *msgpack.Decoder) error {
	raw, err := dec.DecodeString()
	if err != nil {
		return err
	}

	return i.UnmarshalText([]byte(raw))
}
