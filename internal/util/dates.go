package util

import "time"

const isoDate = "2006-01-02"

// GetMonthDates returns the first and last instant of the month in loc.
func GetMonthDates(month int, year int, loc *time.Location) (time.Time, time.Time) {
	firstOfMonth := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	lastOfMonth := firstOfMonth.AddDate(0, 1, 0).Add(time.Nanosecond * -1)

	return firstOfMonth, lastOfMonth
}

// MonthBounds returns the first and last day of the month containing t as
// YYYY-MM-DD strings.
func MonthBounds(t time.Time) (string, string) {
	first, last := GetMonthDates(int(t.Month()), t.Year(), t.Location())
	return first.Format(isoDate), last.Format(isoDate)
}

// HumanDate renders a YYYY-MM-DD date as "Jan 2, 2006", returning the
// input unchanged when it does not parse.
func HumanDate(iso string) string {
	d, err := time.Parse(isoDate, iso)
	if err != nil {
		return iso
	}
	return d.Format("Jan 2, 2006")
}
