// Package datetime implements an absolute instant with nanosecond
// resolution, arithmetic against pkg/interval, a strftime-style format
// engine and a layout-driven parser.
//
// A DateTime stores seconds since 1970-01-01T00:00:00Z plus a non-negative
// nanosecond residue, optionally tagged with a timezone. The residue stays
// in [0, 1e9) whatever the sign of the instant, the same floor encoding
// pkg/interval uses.
package datetime

import (
	"time"

	"github.com/mailru/datetime/pkg/calendar"
	"github.com/mailru/datetime/pkg/interval"
	"github.com/mailru/datetime/pkg/tz"
)

const (
	nanosPerSecond   = 1_000_000_000
	secondsPerMinute = 60
	secondsPerHour   = 3_600
	secondsPerDay    = 86_400
)

// DateTime is an absolute instant. The zero value is the epoch itself,
// untagged. Values are immutable; all methods return copies.
//
// The timezone tag is not part of identity: two DateTimes naming the same
// instant in different zones compare equal. Use Equal and Compare, not ==.
type DateTime struct {
	seconds int64
	nanos   uint32
	tz      tz.Tag
}

// FromUnix creates a DateTime from an epoch offset. A nanos value of 1e9 or
// more is carried into seconds.
func FromUnix(seconds int64, nanos uint32) DateTime {
	for nanos >= nanosPerSecond {
		nanos -= nanosPerSecond
		seconds++
	}

	return DateTime{seconds: seconds, nanos: nanos}
}

// Now returns the current instant from the system clock.
func Now() DateTime {
	now := time.Now()

	return FromUnix(now.Unix(), uint32(now.Nanosecond()))
}

// Unix returns the epoch seconds of the instant.
func (d DateTime) Unix() int64 {
	return d.seconds
}

// UnixMilli returns the instant as milliseconds since the epoch.
func (d DateTime) UnixMilli() int64 {
	return d.seconds*1_000 + int64(d.nanos/1_000_000)
}

// UnixMicro returns the instant as microseconds since the epoch.
func (d DateTime) UnixMicro() int64 {
	return d.seconds*1_000_000 + int64(d.nanos/1_000)
}

// UnixNano returns the instant as nanoseconds since the epoch.
func (d DateTime) UnixNano() int64 {
	return d.seconds*nanosPerSecond + int64(d.nanos)
}

// Nanosecond returns the sub-second residue. Range: [0, 1e9).
func (d DateTime) Nanosecond() uint32 {
	return d.nanos
}

// Timezone returns the attached timezone tag.
func (d DateTime) Timezone() tz.Tag {
	return d.tz
}

// WithTimezone re-tags the instant. The absolute instant is unchanged; only
// the wall clock reported by accessors moves. A named tag is validated
// against the default provider so that an unknown zone fails here rather
// than in a later accessor.
func (d DateTime) WithTimezone(tag tz.Tag) (DateTime, error) {
	if _, err := tag.OffsetSeconds(nil, d.seconds); err != nil {
		return DateTime{}, err
	}

	return DateTime{seconds: d.seconds, nanos: d.nanos, tz: tag}, nil
}

// tzSeconds shifts the instant by the tag's offset, yielding wall-clock
// seconds. The tag was validated when it was attached; a provider that has
// since dropped the zone is a programming error and panics.
func (d DateTime) tzSeconds() int64 {
	offset, err := d.tz.OffsetSeconds(nil, d.seconds)
	if err != nil {
		panic("datetime: timezone vanished from provider: " + err.Error())
	}

	return d.seconds + int64(offset)
}

// CalendarDate decomposes the instant into calendar fields in its zone.
func (d DateTime) CalendarDate() calendar.Date {
	return calendar.FromDayCount(floorDiv(d.tzSeconds(), secondsPerDay))
}

// Year returns the calendar year.
func (d DateTime) Year() int {
	return d.CalendarDate().Year
}

// Month returns the calendar month. Range: [1, 12].
func (d DateTime) Month() int {
	return d.CalendarDate().Month
}

// Day returns the day of the month. Range: [1, 31].
func (d DateTime) Day() int {
	return d.CalendarDate().Day
}

// Weekday returns the day of the week.
func (d DateTime) Weekday() calendar.Weekday {
	return d.CalendarDate().Weekday
}

// DayOfYear returns the ordinal day of the year. Range: [1, 366].
func (d DateTime) DayOfYear() int {
	return d.CalendarDate().DayOfYear
}

// Hour returns the hour of the day. Range: [0, 24).
func (d DateTime) Hour() int {
	return int(floorMod(d.tzSeconds(), secondsPerDay) / secondsPerHour)
}

// Minute returns the minute of the hour. Range: [0, 60).
func (d DateTime) Minute() int {
	return int(floorMod(d.tzSeconds(), secondsPerHour) / secondsPerMinute)
}

// Second returns the second of the minute. Range: [0, 60).
func (d DateTime) Second() int {
	return int(floorMod(d.tzSeconds(), secondsPerMinute))
}

// Precision returns the finest unit needed to represent the instant without
// loss. It drives the default serialization width.
func (d DateTime) Precision() interval.Precision {
	return interval.PrecisionOf(d.nanos)
}

// Equal reports whether two DateTimes name the same instant. The timezone
// tag does not participate.
func (d DateTime) Equal(other DateTime) bool {
	return d.seconds == other.seconds && d.nanos == other.nanos
}

// Before reports whether d is strictly earlier than other.
func (d DateTime) Before(other DateTime) bool {
	return d.Compare(other) < 0
}

// After reports whether d is strictly later than other.
func (d DateTime) After(other DateTime) bool {
	return d.Compare(other) > 0
}

// Compare orders two instants on (seconds, nanos) only.
func (d DateTime) Compare(other DateTime) int {
	switch {
	case d.seconds < other.seconds:
		return -1
	case d.seconds > other.seconds:
		return 1
	case d.nanos < other.nanos:
		return -1
	case d.nanos > other.nanos:
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
