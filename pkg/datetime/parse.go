package datetime

import (
	"fmt"

	"github.com/mailru/datetime/pkg/tz"
)

// RawDateTime is the unvalidated bag of fields recovered from text, prior
// to assembly into a DateTime. Nil means the layout did not name the field.
type RawDateTime struct {
	Year   *int
	Month  *int
	Day    *int
	Hour   *int
	Minute *int
	Second *int
	Nanos  *uint32
	// UTCOffset is seconds east of UTC when the input carried an offset.
	UTCOffset *int32
}

// ParseError describes a failed match of input text against a layout.
type ParseError struct {
	Layout string
	Input  string
	Pos    int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q with %q: %s at position %d", e.Input, e.Layout, e.Msg, e.Pos)
}

func (e *ParseError) Unwrap() error {
	return ErrParse
}

// parseLayouts is the ordered candidate list ParseAny walks. The first
// fully matching layout wins, even if a later one would also match; callers
// depend on this try-order.
var parseLayouts = []string{
	"%Y-%m-%d %H:%M:%S",
	"%Y-%m-%d %H:%M:%S%.6f",
	"%Y-%m-%d %H:%M:%S%.9f",
	"%Y-%m-%dT%H:%M:%S",
	"%Y-%m-%dT%H:%M:%S%.6f",
	"%Y-%m-%dT%H:%M:%S%.9f",
	"%Y-%m-%d %H:%M:%SZ",
	"%Y-%m-%dT%H:%M:%SZ",
}

// Parse matches input against a single layout and assembles the result.
func Parse(input, layout string) (DateTime, error) {
	raw, err := ParseRaw(input, layout)
	if err != nil {
		return DateTime{}, err
	}

	return raw.Assemble()
}

// ParseAny matches input against the documented ordered layout list,
// returning the first full match.
func ParseAny(input string) (DateTime, error) {
	for _, layout := range parseLayouts {
		if d, err := Parse(input, layout); err == nil {
			return d, nil
		}
	}

	return DateTime{}, fmt.Errorf("%w: %q", ErrNoMatchingLayout, input)
}

// ParseRaw is the low layer: it matches one fixed layout against input,
// consuming literal characters exactly and directives as typed fields, and
// returns the raw component bag without validating calendar consistency.
func ParseRaw(input, layout string) (RawDateTime, error) {
	var raw RawDateTime

	fail := func(pos int, format string, args ...interface{}) (RawDateTime, error) {
		return RawDateTime{}, &ParseError{
			Layout: layout,
			Input:  input,
			Pos:    pos,
			Msg:    fmt.Sprintf(format, args...),
		}
	}

	pos := 0
	for li := 0; li < len(layout); li++ {
		c := layout[li]

		if c != '%' {
			if pos >= len(input) || input[pos] != c {
				return fail(pos, "expected %q", c)
			}
			pos++

			continue
		}

		li++
		if li >= len(layout) {
			return fail(pos, "layout ends inside a directive")
		}

		// fraction modifiers
		fracWidth := 9
		dotted := false
		sized := false
		for {
			if li >= len(layout) {
				return fail(pos, "layout ends inside a directive")
			}

			switch layout[li] {
			case '.':
				dotted = true
				li++

				continue
			case '3':
				fracWidth = 3
				sized = true
				li++

				continue
			case '6':
				fracWidth = 6
				sized = true
				li++

				continue
			case '9':
				fracWidth = 9
				sized = true
				li++

				continue
			}

			break
		}

		dir := layout[li]
		if dir != 'f' && (dotted || sized) {
			return fail(pos, "modifier on %%%c", dir)
		}

		switch dir {
		case 'Y':
			v, n, ok := scanInt(input[pos:], 4, true)
			if !ok {
				return fail(pos, "expected year")
			}
			pos += n
			raw.Year = &v
		case 'y':
			v, n, ok := scanInt(input[pos:], 2, false)
			if !ok {
				return fail(pos, "expected two-digit year")
			}
			pos += n
			if v < 70 {
				v += 2000
			} else {
				v += 1900
			}
			raw.Year = &v
		case 'm':
			v, n, ok := scanInt(input[pos:], 2, false)
			if !ok {
				return fail(pos, "expected month")
			}
			pos += n
			raw.Month = &v
		case 'd':
			v, n, ok := scanInt(input[pos:], 2, false)
			if !ok {
				return fail(pos, "expected day")
			}
			pos += n
			raw.Day = &v
		case 'H':
			v, n, ok := scanInt(input[pos:], 2, false)
			if !ok {
				return fail(pos, "expected hour")
			}
			pos += n
			raw.Hour = &v
		case 'M':
			v, n, ok := scanInt(input[pos:], 2, false)
			if !ok {
				return fail(pos, "expected minute")
			}
			pos += n
			raw.Minute = &v
		case 'S':
			v, n, ok := scanInt(input[pos:], 2, false)
			if !ok {
				return fail(pos, "expected second")
			}
			pos += n
			raw.Second = &v
		case 'f':
			if dotted {
				if pos >= len(input) || input[pos] != '.' {
					return fail(pos, "expected decimal point")
				}
				pos++
			}

			digits := 0
			var frac uint32
			for pos < len(input) && digits < fracWidth && input[pos] >= '0' && input[pos] <= '9' {
				frac = frac*10 + uint32(input[pos]-'0')
				digits++
				pos++
			}
			if digits == 0 {
				return fail(pos, "expected fractional seconds")
			}
			for i := digits; i < 9; i++ {
				frac *= 10
			}
			raw.Nanos = &frac
		case 'z':
			off, n, ok := scanOffset(input[pos:])
			if !ok {
				return fail(pos, "expected Z or ±HHMM offset")
			}
			pos += n
			raw.UTCOffset = &off
		case '%':
			if pos >= len(input) || input[pos] != '%' {
				return fail(pos, "expected %%")
			}
			pos++
		default:
			return fail(pos, "unknown directive %%%c", dir)
		}
	}

	if pos != len(input) {
		return fail(pos, "trailing input")
	}

	return raw, nil
}

// Assemble validates the raw fields through the builder and produces a
// DateTime. Date fields are required; missing time fields default to zero.
// An explicit UTC offset preserves the wall clock and shifts the instant.
func (r RawDateTime) Assemble() (DateTime, error) {
	if r.Year == nil || r.Month == nil || r.Day == nil {
		return DateTime{}, fmt.Errorf("%w: incomplete date", ErrParse)
	}

	var hour, minute, second int
	if r.Hour != nil {
		hour = *r.Hour
	}
	if r.Minute != nil {
		minute = *r.Minute
	}
	if r.Second != nil {
		second = *r.Second
	}

	b := Date(*r.Year, *r.Month, *r.Day).HMS(hour, minute, second)
	if r.Nanos != nil {
		b = b.Nanos(*r.Nanos)
	}

	d, err := b.Build()
	if err != nil {
		return DateTime{}, err
	}

	if r.UTCOffset != nil {
		d = DateTime{
			seconds: d.seconds - int64(*r.UTCOffset),
			nanos:   d.nanos,
			tz:      tz.FixedOffset(*r.UTCOffset),
		}
	}

	return d, nil
}

// scanInt reads 1..width decimal digits, optionally signed.
func scanInt(s string, width int, signed bool) (value, consumed int, ok bool) {
	neg := false
	i := 0

	if signed && i < len(s) && (s[i] == '-' || s[i] == '+') {
		neg = s[i] == '-'
		i++
	}

	digits := 0
	for i < len(s) && digits < width && s[i] >= '0' && s[i] <= '9' {
		value = value*10 + int(s[i]-'0')
		digits++
		i++
	}

	if digits == 0 {
		return 0, 0, false
	}

	if neg {
		value = -value
	}

	return value, i, true
}

// scanOffset reads a trailing Z or a ±HHMM offset, returning seconds east
// of UTC.
func scanOffset(s string) (offset int32, consumed int, ok bool) {
	if len(s) > 0 && (s[0] == 'Z' || s[0] == 'z') {
		return 0, 1, true
	}

	if len(s) < 5 || (s[0] != '+' && s[0] != '-') {
		return 0, 0, false
	}

	for i := 1; i < 5; i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, 0, false
		}
	}

	hours := int32(s[1]-'0')*10 + int32(s[2]-'0')
	minutes := int32(s[3]-'0')*10 + int32(s[4]-'0')
	offset = hours*secondsPerHour + minutes*secondsPerMinute

	if s[0] == '-' {
		offset = -offset
	}

	return offset, 5, true
}
