package datetime

import (
	"fmt"

	msgpack "gopkg.in/vmihailenco/msgpack.v2"
	"gopkg.in/yaml.v3"
)

// offsetLayouts extends the free-form candidates with ±HHMM suffixes, the
// shapes String produces for timezone-aware instants.
var offsetLayouts = []string{
	"%Y-%m-%dT%H:%M:%S%z",
	"%Y-%m-%dT%H:%M:%S%.6f%z",
	"%Y-%m-%dT%H:%M:%S%.9f%z",
}

// MarshalText renders the default serialization.
func (d DateTime) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText parses the default serialization and its offset-suffixed
// variants.
func (d *DateTime) UnmarshalText(data []byte) error {
	s := string(data)

	parsed, err := ParseAny(s)
	if err == nil {
		*d = parsed

		return nil
	}

	for _, layout := range offsetLayouts {
		if parsed, lerr := Parse(s, layout); lerr == nil {
			*d = parsed

			return nil
		}
	}

	return err
}

// MarshalJSON renders the instant as a JSON string.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON parses a quoted timestamp.
func (d *DateTime) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("%w: expected a quoted timestamp, got %s", ErrParse, data)
	}

	return d.UnmarshalText(data[1 : len(data)-1])
}

// MarshalYAML renders the instant as a scalar string.
func (d DateTime) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

// UnmarshalYAML parses a timestamp scalar.
func (d *DateTime) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return fmt.Errorf("%w: %v", ErrParse, err)
	}

	return d.UnmarshalText([]byte(raw))
}

// EncodeMsgpack writes the default serialization as a msgpack string, the
// form tarantool tuples carry.
func (d DateTime) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(d.String())
}

// DecodeMsgpack reads a msgpack timestamp string.
func (d *DateTime) DecodeMsgpack(dec *msgpack.Decoder) error {
	raw, err := dec.DecodeString()
	if err != nil {
		return err
	}

	return d.UnmarshalText([]byte(raw))
}
