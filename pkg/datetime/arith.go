package datetime

import "github.com/mailru/datetime/pkg/interval"

// Add returns the instant shifted forward by an interval. Both residues are
// already non-negative, so only a carry is possible.
func (d DateTime) Add(iv interval.Interval) DateTime {
	seconds := d.seconds + iv.Seconds()
	nanos := d.nanos + iv.Nanoseconds()

	for nanos >= nanosPerSecond {
		nanos -= nanosPerSecond
		seconds++
	}

	return DateTime{seconds: seconds, nanos: nanos, tz: d.tz}
}

// Sub returns the instant shifted backward by an interval. A single borrow
// suffices because both residues are below 1e9.
func (d DateTime) Sub(iv interval.Interval) DateTime {
	seconds := d.seconds - iv.Seconds()
	nanos := d.nanos

	if nanos < iv.Nanoseconds() {
		seconds--
		nanos += nanosPerSecond
	}

	return DateTime{seconds: seconds, nanos: nanos - iv.Nanoseconds(), tz: d.tz}
}

// Since returns the signed interval d - other: positive when d is later.
func (d DateTime) Since(other DateTime) interval.Interval {
	seconds := d.seconds - other.seconds
	nanos := d.nanos

	if nanos < other.nanos {
		seconds--
		nanos += nanosPerSecond
	}

	return interval.New(seconds, nanos-other.nanos)
}
