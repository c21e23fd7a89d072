package datetime

import (
	"fmt"
	"strconv"

	"github.com/gobwas/pool/pbytes"

	"github.com/mailru/datetime/pkg/calendar"
	"github.com/mailru/datetime/pkg/interval"
)

// padding selects how a numeric field is widened to its default width.
type padding uint8

const (
	padDefault padding = iota
	padZero
	padSpace
	padSuppress
)

// Format renders the instant according to a strftime-style layout.
//
// Directives start with '%'. Padding modifiers: '0' zero-pads, '-'
// suppresses padding, '_' pads with spaces. Fraction modifiers '.', '3', '6'
// and '9' are only valid immediately before 'f'. An unknown directive letter
// or a misplaced modifier is an error.
func (d DateTime) Format(layout string) (string, error) {
	buf := pbytes.GetCap(len(layout) + 16)
	defer pbytes.Put(buf)

	out, err := d.AppendFormat(buf[:0], layout)
	if err != nil {
		return "", err
	}

	return string(out), nil
}

// AppendFormat renders the instant into b according to a strftime-style
// layout, returning the extended buffer. The layout is scanned once, left
// to right; literal bytes are copied as is.
func (d DateTime) AppendFormat(b []byte, layout string) ([]byte, error) {
	var (
		wall    = d.tzSeconds()
		cd      calendar.Date
		haveCD  bool
		inDir   bool
		pad     padding
		dotted  bool
		sized   bool
		fracDiv uint32 = 1
	)

	date := func() calendar.Date {
		if !haveCD {
			cd = calendar.FromDayCount(floorDiv(wall, secondsPerDay))
			haveCD = true
		}

		return cd
	}
	hour := func() int { return int(floorMod(wall, secondsPerDay) / secondsPerHour) }
	minute := func() int { return int(floorMod(wall, secondsPerHour) / secondsPerMinute) }
	second := func() int { return int(floorMod(wall, secondsPerMinute)) }

	for i := 0; i < len(layout); i++ {
		c := layout[i]

		if !inDir {
			if c == '%' {
				inDir = true
				pad = padDefault
				dotted = false
				sized = false
				fracDiv = 1

				continue
			}

			b = append(b, c)

			continue
		}

		switch c {
		case '0':
			pad = padZero

			continue
		case '-':
			pad = padSuppress

			continue
		case '_':
			pad = padSpace

			continue
		case '.':
			dotted = true

			continue
		case '3':
			fracDiv = 1_000_000
			sized = true

			continue
		case '6':
			fracDiv = 1_000
			sized = true

			continue
		case '9':
			fracDiv = 1
			sized = true

			continue
		}

		if c != 'f' && (sized || dotted) {
			return b, fmt.Errorf("%w: %%.%c", ErrBadModifier, c)
		}

		inDir = false

		switch c {
		case 'Y':
			b = appendPadded(b, pad, 4, int64(date().Year))
		case 'C':
			b = appendPadded(b, pad, 2, int64(date().Year/100))
		case 'y':
			b = appendPadded(b, pad, 2, int64(date().Year%100))
		case 'm':
			b = appendPadded(b, pad, 2, int64(date().Month))
		case 'b', 'h':
			b = append(b, monthAbbrevs[date().Month]...)
		case 'B':
			b = append(b, monthNames[date().Month]...)
		case 'd':
			b = appendPadded(b, pad, 2, int64(date().Day))
		case 'a':
			b = append(b, date().Weekday.Abbrev()...)
		case 'A':
			b = append(b, date().Weekday.String()...)
		case 'w':
			b = strconv.AppendInt(b, int64(date().Weekday), 10)
		case 'u':
			b = strconv.AppendInt(b, int64(date().Weekday.ISO()), 10)
		case 'j':
			b = appendPadded(b, pad, 3, int64(date().DayOfYear))
		case 'H':
			b = appendPadded(b, pad, 2, int64(hour()))
		case 'I':
			h := hour()
			switch {
			case h == 0:
				h = 12
			case h > 12:
				h -= 12
			}
			b = appendPadded(b, pad, 2, int64(h))
		case 'M':
			b = appendPadded(b, pad, 2, int64(minute()))
		case 'S':
			b = appendPadded(b, pad, 2, int64(second()))
		case 'z':
			b = d.appendOffset(b)
		case 'P':
			if hour() >= 12 {
				b = append(b, "PM"...)
			} else {
				b = append(b, "AM"...)
			}
		case 'p':
			if hour() >= 12 {
				b = append(b, "pm"...)
			} else {
				b = append(b, "am"...)
			}
		case 's':
			b = strconv.AppendInt(b, d.seconds, 10)
		case 'f':
			if dotted {
				b = append(b, '.')
			}
			switch fracDiv {
			case 1_000_000:
				b = appendPadded(b, padZero, 3, int64(d.nanos/fracDiv))
			case 1_000:
				b = appendPadded(b, padZero, 6, int64(d.nanos/fracDiv))
			default:
				b = appendPadded(b, padZero, 9, int64(d.nanos))
			}
		case 'D':
			b = appendPadded(b, padZero, 2, int64(date().Month))
			b = append(b, '/')
			b = appendPadded(b, padZero, 2, int64(date().Day))
			b = append(b, '/')
			b = appendPadded(b, padZero, 2, int64(date().Year%100))
		case 'F':
			b = appendPadded(b, padZero, 4, int64(date().Year))
			b = append(b, '-')
			b = appendPadded(b, padZero, 2, int64(date().Month))
			b = append(b, '-')
			b = appendPadded(b, padZero, 2, int64(date().Day))
		case 'v':
			b = appendPadded(b, padZero, 2, int64(date().Day))
			b = append(b, '-')
			b = append(b, monthAbbrevs[date().Month]...)
			b = append(b, '-')
			b = appendPadded(b, padZero, 4, int64(date().Year))
		case 'R':
			b = appendPadded(b, padZero, 2, int64(hour()))
			b = append(b, ':')
			b = appendPadded(b, padZero, 2, int64(minute()))
		case 'T':
			b = appendPadded(b, padZero, 2, int64(hour()))
			b = append(b, ':')
			b = appendPadded(b, padZero, 2, int64(minute()))
			b = append(b, ':')
			b = appendPadded(b, padZero, 2, int64(second()))
		case 't':
			b = append(b, '\t')
		case 'n':
			b = append(b, '\n')
		case '%':
			b = append(b, '%')
		default:
			return b, fmt.Errorf("%w: %%%c", ErrUnknownDirective, c)
		}
	}

	if inDir {
		return b, fmt.Errorf("%w: layout ends inside a directive", ErrUnknownDirective)
	}

	return b, nil
}

// appendOffset renders the zone offset as ±HHMM.
func (d DateTime) appendOffset(b []byte) []byte {
	offset := int64(d.tzSeconds() - d.seconds)

	sign := byte('+')
	if offset < 0 {
		sign = '-'
		offset = -offset
	}

	b = append(b, sign)
	b = appendPadded(b, padZero, 2, offset/secondsPerHour)
	b = appendPadded(b, padZero, 2, offset%secondsPerHour/secondsPerMinute)

	return b
}

func appendPadded(b []byte, pad padding, width int, v int64) []byte {
	neg := v < 0
	if neg {
		v = -v
		b = append(b, '-')
	}

	digits := 1
	for x := v; x >= 10; x /= 10 {
		digits++
	}

	if pad != padSuppress {
		fill := byte('0')
		if pad == padSpace {
			fill = ' '
		}
		for i := digits; i < width; i++ {
			b = append(b, fill)
		}
	}

	return strconv.AppendInt(b, v, 10)
}

// String renders the default serialization: seconds precision plain,
// microsecond-aligned residues with 6 fractional digits, anything finer
// with 9. A timezone-aware instant gets a ±HHMM suffix.
func (d DateTime) String() string {
	layout := "%Y-%m-%dT%H:%M:%S"

	switch d.Precision() {
	case interval.PrecisionSecond:
	case interval.PrecisionMillisecond, interval.PrecisionMicrosecond:
		layout += "%.6f"
	default:
		layout += "%.9f"
	}

	if d.tz.Aware() {
		layout += "%z"
	}

	out, err := d.Format(layout)
	if err != nil {
		// the layouts above are fixed and valid
		panic(err)
	}

	return out
}
