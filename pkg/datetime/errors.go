package datetime

import "errors"

// construction errors, reported by the builder stage that saw them
var (
	ErrMonthRange = errors.New("month out of range")
	ErrDayRange   = errors.New("day out of range")
	ErrHourRange  = errors.New("hour out of range")
	ErrMinRange   = errors.New("minute out of range")
	ErrSecRange   = errors.New("second out of range")
	ErrNanosRange = errors.New("nanoseconds out of range")
)

// format errors
var (
	ErrUnknownDirective = errors.New("unknown format directive")
	ErrBadModifier      = errors.New("width modifier only allowed on %f")
)

// parse errors
var (
	ErrParse            = errors.New("parse error")
	ErrNoMatchingLayout = errors.New("no layout matched the input")
)
