package timeutil

import (
	"time"
	// Embedded zone database so America/New_York resolves on minimal images.
	_ "time/tzdata"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// EasternZone is the calendar zone schedules are bucketed and defaulted in.
const EasternZone = "America/New_York"

// TBDHour is the local hour assigned to games whose start time is unknown.
const TBDHour = 19

var eastern = mustLoad(EasternZone)

func mustLoad(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// Eastern returns the US Eastern location.
func Eastern() *time.Location {
	return eastern
}

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// EasternDay returns the US Eastern calendar day of t as YYYY-MM-DD.
func EasternDay(t time.Time) string {
	return FormatDate(t.In(eastern))
}

// EveningOf returns TBDHour:00 US Eastern on the given YYYY-MM-DD day, in UTC.
func EveningOf(day string) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, day, eastern)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year(), d.Month(), d.Day(), TBDHour, 0, 0, 0, eastern).UTC(), nil
}
