package datetime

// fixed English month tables, indexed by month number
var (
	monthNames = [13]string{
		"", "January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
	monthAbbrevs = [13]string{
		"", "Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	}
)

// MonthName returns the English name of the instant's month.
func (d DateTime) MonthName() string {
	return monthNames[d.Month()]
}

// MonthAbbrev returns the three-letter abbreviation of the instant's month.
func (d DateTime) MonthAbbrev() string {
	return monthAbbrevs[d.Month()]
}
