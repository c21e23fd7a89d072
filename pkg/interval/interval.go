package interval

// Interval is a signed span of time with nanosecond resolution.
//
// The nanosecond residue is always non-negative, even when seconds is
// negative: -2.5s is stored as seconds=-3, nanos=500_000_000. Reconstructing
// the total always means adding nanos, never subtracting. Every constructor
// and operation keeps that encoding, consistent with Euclidean division.
type Interval struct {
	seconds int64
	nanos   uint32
}

const NanosPerSecond = 1_000_000_000

// New creates an Interval from seconds and a nanosecond residue.
// A residue of 1e9 or more is carried into seconds.
func New(seconds int64, nanos uint32) Interval {
	for nanos >= NanosPerSecond {
		nanos -= NanosPerSecond
		seconds++
	}

	return Interval{seconds: seconds, nanos: nanos}
}

// FromMilliseconds creates an Interval from a signed millisecond count.
func FromMilliseconds(millis int64) Interval {
	return Interval{
		seconds: floorDiv(millis, 1_000),
		nanos:   uint32(floorMod(millis, 1_000)) * 1_000_000,
	}
}

// FromMicroseconds creates an Interval from a signed microsecond count.
func FromMicroseconds(micros int64) Interval {
	return Interval{
		seconds: floorDiv(micros, 1_000_000),
		nanos:   uint32(floorMod(micros, 1_000_000)) * 1_000,
	}
}

// FromNanoseconds creates an Interval from a signed nanosecond count.
func FromNanoseconds(nanos int64) Interval {
	return Interval{
		seconds: floorDiv(nanos, NanosPerSecond),
		nanos:   uint32(floorMod(nanos, NanosPerSecond)),
	}
}

// Seconds returns the whole-second part of the interval. The nanosecond
// residue is always positive, so -2.5s reports -3 here.
func (i Interval) Seconds() int64 {
	return i.seconds
}

// Nanoseconds returns the non-negative sub-second residue.
func (i Interval) Nanoseconds() uint32 {
	return i.nanos
}

// AsMilliseconds returns the total length of the interval in milliseconds.
func (i Interval) AsMilliseconds() int64 {
	return i.seconds*1_000 + int64(i.nanos/1_000_000)
}

// AsMicroseconds returns the total length of the interval in microseconds.
func (i Interval) AsMicroseconds() int64 {
	return i.seconds*1_000_000 + int64(i.nanos/1_000)
}

// AsNanoseconds returns the total length of the interval in nanoseconds.
func (i Interval) AsNanoseconds() int64 {
	return i.seconds*NanosPerSecond + int64(i.nanos)
}

// IsZero reports whether the interval has zero length.
func (i Interval) IsZero() bool {
	return i.seconds == 0 && i.nanos == 0
}

// Add returns the sum of two intervals.
func (i Interval) Add(other Interval) Interval {
	seconds := i.seconds + other.seconds
	nanos := i.nanos + other.nanos

	for nanos >= NanosPerSecond {
		nanos -= NanosPerSecond
		seconds++
	}

	return Interval{seconds: seconds, nanos: nanos}
}

// Sub returns the difference of two intervals.
func (i Interval) Sub(other Interval) Interval {
	seconds := i.seconds - other.seconds
	nanos := i.nanos

	if nanos < other.nanos {
		seconds--
		nanos += NanosPerSecond
	}

	return Interval{seconds: seconds, nanos: nanos - other.nanos}
}

// Neg returns the interval with the opposite sign.
func (i Interval) Neg() Interval {
	return Interval{}.Sub(i)
}

// Mul multiplies the interval by an integer scalar.
func (i Interval) Mul(scalar int64) Interval {
	return FromNanoseconds(i.AsNanoseconds() * scalar)
}

// Div divides the interval by an integer scalar. The quotient of the total
// nanosecond counts is truncated, then re-encoded with a positive residue.
func (i Interval) Div(scalar int64) Interval {
	return FromNanoseconds(i.AsNanoseconds() / scalar)
}

// Ratio returns the ratio between two intervals. The sign follows the
// operand signs: -1800s / 3600s is -0.5.
func (i Interval) Ratio(other Interval) float64 {
	return float64(i.AsNanoseconds()) / float64(other.AsNanoseconds())
}

// Compare orders two intervals. It returns -1 if i is shorter than other,
// 0 if they are equal and +1 if i is longer.
func (i Interval) Compare(other Interval) int {
	switch {
	case i.seconds < other.seconds:
		return -1
	case i.seconds > other.seconds:
		return 1
	case i.nanos < other.nanos:
		return -1
	case i.nanos > other.nanos:
		return 1
	default:
		return 0
	}
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}

	return q
}

func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}
