// Package serializer decodes configuration payloads that declare timestamps
// and duration literals, converting them into pkg/datetime and pkg/interval
// values while decoding.
package serializer

import (
	"encoding/json"
	"fmt"

	"github.com/mailru/datetime/pkg/serializer/errs"
)

// JSONUnmarshal decodes a JSON document into v. Timestamp and duration
// fields declared as datetime.DateTime or interval.Interval are parsed
// through their UnmarshalJSON codecs, so a parse failure of either form
// surfaces here wrapped in ErrUnmarshalJSON.
func JSONUnmarshal(data string, v any) error {
	err := json.Unmarshal([]byte(data), v)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrUnmarshalJSON, err)
	}

	return nil
}

// JSONMarshal renders v as a JSON string, timestamps in their default
// precision-driven serialization and intervals in literal form.
func JSONMarshal(v any) (string, error) {
	ret, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrMarshalJSON, err)
	}

	return string(ret), nil
}
