package interval

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrLiteralSyntax  = errors.New("malformed duration literal")
	ErrUnitOrder      = errors.New("duration unit out of order")
	ErrUnitTwice      = errors.New("duration unit declared twice")
	ErrFractionTwice  = errors.New("fractional seconds declared twice")
	ErrFractionDigits = errors.New("fractional seconds limited to 9 digits")
)

// unit multipliers, in the only order the grammar allows
const (
	secondsPerMinute = 60
	secondsPerHour   = 3_600
	secondsPerDay    = 86_400
)

var unitSeconds = map[byte]uint64{
	'd': secondsPerDay,
	'h': secondsPerHour,
	'm': secondsPerMinute,
	's': 1,
}

// Parse converts a compact duration literal such as "1d12h30m" or "-2.5s"
// into an Interval.
//
// The grammar is sign? days? hours? minutes? seconds?, each unit written as
// digits followed by its letter. Units must appear in strictly decreasing
// magnitude order, each at most once, and a declared unit may not outweigh
// everything written before it: "1h90m" is as malformed as "1h2d". A
// fraction is allowed on the seconds unit only, with at most 9 digits.
// A leading + or - applies to the whole literal.
func Parse(literal string) (Interval, error) {
	s := literal
	if s == "" {
		return Interval{}, fmt.Errorf("%w: empty literal", ErrLiteralSyntax)
	}

	negative := false
	switch s[0] {
	case '-':
		negative = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	if s == "" {
		return Interval{}, fmt.Errorf("%w: %q has no units", ErrLiteralSyntax, literal)
	}

	var (
		total       uint64 // accumulated magnitude, seconds
		nanos       uint32
		lastMult    uint64 = 1 << 62
		seen        = map[byte]bool{}
		fractionSet bool
	)

	for len(s) > 0 {
		digits := countDigits(s)
		if digits == 0 {
			return Interval{}, fmt.Errorf("%w: unexpected %q in %q", ErrLiteralSyntax, s[0], literal)
		}

		value, err := strconv.ParseUint(s[:digits], 10, 64)
		if err != nil {
			return Interval{}, fmt.Errorf("%w: bad number in %q: %v", ErrLiteralSyntax, literal, err)
		}
		s = s[digits:]

		// optional fraction, only meaningful before the trailing 's'
		var frac uint32
		hasFrac := false
		if len(s) > 0 && s[0] == '.' {
			if fractionSet {
				return Interval{}, fmt.Errorf("%w in %q", ErrFractionTwice, literal)
			}

			s = s[1:]
			fracDigits := countDigits(s)
			switch {
			case fracDigits == 0:
				return Interval{}, fmt.Errorf("%w: missing digits after '.' in %q", ErrLiteralSyntax, literal)
			case fracDigits > 9:
				return Interval{}, fmt.Errorf("%w: %q", ErrFractionDigits, s[:fracDigits])
			}

			parsed, err := strconv.ParseUint(s[:fracDigits], 10, 32)
			if err != nil {
				return Interval{}, fmt.Errorf("%w: bad fraction in %q: %v", ErrLiteralSyntax, literal, err)
			}

			// zero-extend to nanosecond width
			frac = uint32(parsed)
			for i := fracDigits; i < 9; i++ {
				frac *= 10
			}

			hasFrac = true
			s = s[fracDigits:]

			if len(s) > 0 && s[0] == '.' {
				return Interval{}, fmt.Errorf("%w in %q", ErrFractionTwice, literal)
			}
		}

		if len(s) == 0 {
			return Interval{}, fmt.Errorf("%w: trailing number without a unit in %q", ErrLiteralSyntax, literal)
		}

		unit := s[0]
		s = s[1:]

		mult, ok := unitSeconds[unit]
		if !ok {
			return Interval{}, fmt.Errorf("%w: unknown unit %q in %q", ErrLiteralSyntax, unit, literal)
		}

		if hasFrac && unit != 's' {
			return Interval{}, fmt.Errorf("%w: fraction not allowed on %q in %q", ErrLiteralSyntax, unit, literal)
		}

		if seen[unit] {
			return Interval{}, fmt.Errorf("%w: %q in %q", ErrUnitTwice, unit, literal)
		}
		seen[unit] = true

		if mult >= lastMult {
			return Interval{}, fmt.Errorf("%w: place only larger units before %q in %q", ErrUnitOrder, unit, literal)
		}
		lastMult = mult

		contribution := value * mult
		if total > 0 && contribution > total {
			return Interval{}, fmt.Errorf("%w: place only larger units before %q in %q", ErrUnitOrder, unit, literal)
		}

		total += contribution
		if hasFrac {
			nanos = frac
			fractionSet = true
		}
	}

	seconds := int64(total)
	if negative {
		seconds = -seconds
		// keep the residue non-negative: borrow a second and invert
		if nanos > 0 {
			seconds--
			nanos = NanosPerSecond - nanos
		}
	}

	return Interval{seconds: seconds, nanos: nanos}, nil
}

// MustParse is Parse for literals known good ahead of time, typically fixed
// configuration defaults. It panics on a malformed literal.
func MustParse(literal string) Interval {
	i, err := Parse(literal)
	if err != nil {
		panic(err)
	}

	return i
}

// String renders the interval back in literal form: "1d12h30m", "-2.5s",
// "0s". The fraction is printed at the shortest lossless width.
func (i Interval) String() string {
	if i.IsZero() {
		return "0s"
	}

	total := i.AsNanoseconds()

	var b strings.Builder
	if total < 0 {
		b.WriteByte('-')
		total = -total
	}

	seconds := total / NanosPerSecond
	nanos := uint32(total % NanosPerSecond)

	days := seconds / secondsPerDay
	seconds -= days * secondsPerDay
	hours := seconds / secondsPerHour
	seconds -= hours * secondsPerHour
	minutes := seconds / secondsPerMinute
	seconds -= minutes * secondsPerMinute

	if days > 0 {
		fmt.Fprintf(&b, "%dd", days)
	}
	if hours > 0 {
		fmt.Fprintf(&b, "%dh", hours)
	}
	if minutes > 0 {
		fmt.Fprintf(&b, "%dm", minutes)
	}

	switch {
	case nanos == 0 && seconds == 0:
	case nanos == 0:
		fmt.Fprintf(&b, "%ds", seconds)
	case nanos%1_000_000 == 0:
		fmt.Fprintf(&b, "%d.%03ds", seconds, nanos/1_000_000)
	case nanos%1_000 == 0:
		fmt.Fprintf(&b, "%d.%06ds", seconds, nanos/1_000)
	default:
		fmt.Fprintf(&b, "%d.%09ds", seconds, nanos)
	}

	return b.String()
}

func countDigits(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}

	return n
}
