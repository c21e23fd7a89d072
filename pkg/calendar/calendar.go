// Package calendar decomposes day counts into proleptic Gregorian calendar
// fields and back. It is the calendar collaborator of pkg/datetime: the core
// stores plain epoch offsets and asks this package for year/month/day.
package calendar

// Weekday is a day of the week. Sunday is 0, matching the %w format
// directive.
type Weekday uint8

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var weekdayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

func (d Weekday) String() string {
	if d > Saturday {
		return "(unknown)"
	}

	return weekdayNames[d]
}

// Abbrev returns the three-letter English abbreviation.
func (d Weekday) Abbrev() string {
	return d.String()[:3]
}

// ISO returns the ISO-8601 weekday number: Monday is 1, Sunday is 7.
func (d Weekday) ISO() int {
	if d == Sunday {
		return 7
	}

	return int(d)
}

// Date is a decomposed calendar day.
type Date struct {
	Year      int
	Month     int
	Day       int
	Weekday   Weekday
	DayOfYear int
}

// FromDayCount converts a count of days since 1970-01-01 into calendar
// fields. The algorithm is the era/day-of-era decomposition over 400-year
// cycles.
func FromDayCount(days int64) Date {
	z := days + 719_468
	era := floorDiv(z, 146_097)
	doe := z - era*146_097                                  // [0, 146096]
	yoe := (doe - doe/1_460 + doe/36_524 - doe/146_096) / 365 // [0, 399]
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100) // [0, 365]
	mp := (5*doy + 2) / 153                  // [0, 11]
	day := int(doy - (153*mp+2)/5 + 1)       // [1, 31]
	month := int(mp)
	if month < 10 {
		month += 3
	} else {
		month -= 9
	}
	year := int(y)
	if month <= 2 {
		year++
	}

	return Date{
		Year:      year,
		Month:     month,
		Day:       day,
		Weekday:   Weekday(floorMod(days+4, 7)), // 1970-01-01 was a Thursday
		DayOfYear: int(days - ToDayCount(year, 1, 1) + 1),
	}
}

// ToDayCount converts a calendar date into a count of days since
// 1970-01-01. The inverse of FromDayCount.
func ToDayCount(year, month, day int) int64 {
	y := int64(year)
	if month <= 2 {
		y--
	}
	era := floorDiv(y, 400)
	yoe := y - era*400 // [0, 399]
	m := int64(month)
	var mp int64
	if m > 2 {
		mp = m - 3
	} else {
		mp = m + 9
	}
	doy := (153*mp+2)/5 + int64(day) - 1     // [0, 365]
	doe := yoe*365 + yoe/4 - yoe/100 + doy   // [0, 146096]

	return era*146_097 + doe - 719_468
}

// IsLeap reports whether a year is a Gregorian leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

var daysInMonth = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInMonth returns the number of days in a month of a given year.
func DaysInMonth(year, month int) int {
	if month == 2 && IsLeap(year) {
		return 29
	}
	if month < 1 || month > 12 {
		return 0
	}

	return daysInMonth[month]
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
