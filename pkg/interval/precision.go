package interval

// Precision classifies a nanosecond residue by its finest non-zero decimal
// position. It is derived, never stored, and picks the most compact lossless
// serialization of a value.
type Precision uint8

const (
	PrecisionSecond Precision = iota
	PrecisionMillisecond
	PrecisionMicrosecond
	PrecisionNanosecond
)

func (p Precision) String() string {
	switch p {
	case PrecisionSecond:
		return "second"
	case PrecisionMillisecond:
		return "millisecond"
	case PrecisionMicrosecond:
		return "microsecond"
	case PrecisionNanosecond:
		return "nanosecond"
	default:
		return "(unknown)"
	}
}

// PrecisionOf returns the precision of a nanosecond residue.
func PrecisionOf(nanos uint32) Precision {
	switch {
	case nanos == 0:
		return PrecisionSecond
	case nanos%1_000_000 == 0:
		return PrecisionMillisecond
	case nanos%1_000 == 0:
		return PrecisionMicrosecond
	default:
		return PrecisionNanosecond
	}
}

// Precision returns the finest unit needed to represent the interval
// without loss.
func (i Interval) Precision() Precision {
	return PrecisionOf(i.nanos)
}
