// Package tarantool stores datetime values in tarantool tuple fields.
//
// A timestamp travels as a single integer column whose unit is chosen from
// the value's precision, so second-aligned values stay human-readable in
// the box while nanosecond residues survive losslessly.
package tarantool

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/mailru/datetime/pkg/datetime"
	"github.com/mailru/datetime/pkg/interval"
)

// Unit is the resolution of a stored timestamp column.
type Unit uint8

const (
	UnitSecond Unit = iota
	UnitMillisecond
	UnitMicrosecond
	UnitNanosecond
)

func (u Unit) String() string {
	switch u {
	case UnitSecond:
		return "second"
	case UnitMillisecond:
		return "millisecond"
	case UnitMicrosecond:
		return "microsecond"
	case UnitNanosecond:
		return "nanosecond"
	default:
		return "(unknown)"
	}
}

// ToColumn encodes an instant as an integer column in the most compact
// lossless unit.
func ToColumn(d datetime.DateTime) (int64, Unit) {
	switch d.Precision() {
	case interval.PrecisionSecond:
		return d.Unix(), UnitSecond
	case interval.PrecisionMillisecond:
		return d.UnixMilli(), UnitMillisecond
	case interval.PrecisionMicrosecond:
		return d.UnixMicro(), UnitMicrosecond
	default:
		return d.UnixNano(), UnitNanosecond
	}
}

// FromColumn decodes an integer column of a known unit back into an
// instant.
func FromColumn(value int64, unit Unit) (datetime.DateTime, error) {
	var iv interval.Interval

	switch unit {
	case UnitSecond:
		iv = interval.New(value, 0)
	case UnitMillisecond:
		iv = interval.FromMilliseconds(value)
	case UnitMicrosecond:
		iv = interval.FromMicroseconds(value)
	case UnitNanosecond:
		iv = interval.FromNanoseconds(value)
	default:
		return datetime.DateTime{}, errors.Wrap(ErrBadUnit, fmt.Sprintf("unit %d", unit))
	}

	return datetime.FromUnix(0, 0).Add(iv), nil
}
