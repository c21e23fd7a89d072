package serializer

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/mailru/mapstructure"

	"github.com/mailru/datetime/pkg/datetime"
	"github.com/mailru/datetime/pkg/interval"
	"github.com/mailru/datetime/pkg/serializer/errs"
)

// DateTimeDecodeHook converts string fields into datetime.DateTime targets
// using the free-form parser.
func DateTimeDecodeHook(from, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf(datetime.DateTime{}) {
		return data, nil
	}

	return datetime.ParseAny(data.(string))
}

// IntervalDecodeHook converts string fields into interval.Interval targets
// using the duration literal grammar. Duration constants declared in
// configuration are parsed exactly once, here.
func IntervalDecodeHook(from, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf(interval.Interval{}) {
		return data, nil
	}

	return interval.Parse(data.(string))
}

func MapstructureUnmarshal(data string, v any) error {
	m := make(map[string]interface{})

	err := json.Unmarshal([]byte(data), &m)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrUnmarshalJSON, err)
	}

	config := &mapstructure.DecoderConfig{
		ErrorUnused: true,
		ZeroFields:  true,
		DecodeHook:  mapstructure.ComposeDecodeHookFunc(DateTimeDecodeHook, IntervalDecodeHook),
		Result:      v,
	}

	decoder, err := mapstructure.NewDecoder(config)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrMapstructureNewDecoder, err)
	}

	err = decoder.Decode(m)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrMapstructureDecode, err)
	}

	return nil
}

func MapstructureMarshal(v any) (string, error) {
	m := make(map[string]interface{})

	err := mapstructure.Decode(v, &m)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrMapstructureEncode, err)
	}

	b, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrMarshalJSON, err)
	}

	return string(b), nil
}
