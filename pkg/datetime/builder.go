package datetime

import (
	"fmt"

	"github.com/mailru/datetime/pkg/calendar"
	"github.com/mailru/datetime/pkg/tz"
)

// Builder assembles a DateTime stage by stage. Each stage validates its own
// inputs and records the first violation; Build reports it. Out-of-range
// fields are never clamped.
type Builder struct {
	days    int64
	daySecs int64
	nanos   uint32
	tag     tz.Tag
	offset  int64
	err     error
}

// Date starts a builder from calendar fields.
func Date(year, month, day int) *Builder {
	b := &Builder{}

	if month < 1 || month > 12 {
		b.err = fmt.Errorf("%w: %d", ErrMonthRange, month)

		return b
	}

	if day < 1 || day > calendar.DaysInMonth(year, month) {
		b.err = fmt.Errorf("%w: %04d-%02d-%02d", ErrDayRange, year, month, day)

		return b
	}

	b.days = calendar.ToDayCount(year, month, day)

	return b
}

// HMS attaches an hour, minute and second.
func (b *Builder) HMS(hour, minute, second int) *Builder {
	if b.err != nil {
		return b
	}

	switch {
	case hour < 0 || hour > 23:
		b.err = fmt.Errorf("%w: %d", ErrHourRange, hour)
	case minute < 0 || minute > 59:
		b.err = fmt.Errorf("%w: %d", ErrMinRange, minute)
	case second < 0 || second > 59:
		b.err = fmt.Errorf("%w: %d", ErrSecRange, second)
	default:
		b.daySecs = int64(hour)*secondsPerHour + int64(minute)*secondsPerMinute + int64(second)
	}

	return b
}

// Nanos attaches a sub-second residue.
func (b *Builder) Nanos(nanos uint32) *Builder {
	if b.err != nil {
		return b
	}

	if nanos >= nanosPerSecond {
		b.err = fmt.Errorf("%w: %d", ErrNanosRange, nanos)

		return b
	}

	b.nanos = nanos

	return b
}

// Timezone attaches a timezone tag. The wall-clock fields given to the
// builder are preserved and the zone's offset, resolved at the wall
// instant, shifts the underlying timestamp. An unknown named zone fails the
// build here.
func (b *Builder) Timezone(tag tz.Tag) *Builder {
	if b.err != nil {
		return b
	}

	offset, err := tag.OffsetSeconds(nil, b.days*secondsPerDay+b.daySecs)
	if err != nil {
		b.err = err

		return b
	}

	b.tag = tag
	b.offset = int64(offset)

	return b
}

// Build returns the assembled DateTime, or the first staged error.
func (b *Builder) Build() (DateTime, error) {
	if b.err != nil {
		return DateTime{}, b.err
	}

	return DateTime{
		seconds: b.days*secondsPerDay + b.daySecs - b.offset,
		nanos:   b.nanos,
		tz:      b.tag,
	}, nil
}

// MustBuild is Build for field values known good ahead of time. It panics
// on a staged error.
func (b *Builder) MustBuild() DateTime {
	d, err := b.Build()
	if err != nil {
		panic(err)
	}

	return d
}
