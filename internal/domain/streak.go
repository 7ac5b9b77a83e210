package domain

import (
	"fmt"
	"time"
)

const dayLayout = "2006-01-02"

// legacyDayLayout is the JavaScript Date.toDateString form written by older
// builds; it is accepted on read only.
const legacyDayLayout = "Mon Jan 02 2006"

// Day is a calendar date with no time-of-day or zone. The zero value means
// "no date".
type Day struct {
	Year  int
	Month time.Month
	Dom   int
}

// DayOf returns the calendar day of t in loc.
func DayOf(t time.Time, loc *time.Location) Day {
	y, m, d := t.In(loc).Date()
	return Day{Year: y, Month: m, Dom: d}
}

// ParseDay accepts YYYY-MM-DD, or the legacy "Mon Jan 02 2006" form.
// The empty string parses to the zero Day.
func ParseDay(s string) (Day, error) {
	if s == "" {
		return Day{}, nil
	}
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		var legacyErr error
		t, legacyErr = time.Parse(legacyDayLayout, s)
		if legacyErr != nil {
			return Day{}, fmt.Errorf("parsing day %q: %w", s, err)
		}
	}
	y, m, d := t.Date()
	return Day{Year: y, Month: m, Dom: d}, nil
}

func (d Day) IsZero() bool { return d == Day{} }

// String formats the day as YYYY-MM-DD, or "" for the zero Day.
func (d Day) String() string {
	if d.IsZero() {
		return ""
	}
	return d.time().Format(dayLayout)
}

// AddDays moves the day by n calendar days, normalizing month and year.
func (d Day) AddDays(n int) Day {
	t := d.time().AddDate(0, 0, n)
	y, m, dd := t.Date()
	return Day{Year: y, Month: m, Dom: dd}
}

// DaysSinceEpoch counts calendar days since 1970-01-01.
func (d Day) DaysSinceEpoch() int {
	return int(d.time().Unix() / 86400)
}

func (d Day) time() time.Time {
	return time.Date(d.Year, d.Month, d.Dom, 0, 0, 0, 0, time.UTC)
}

// StreakState is the consecutive-day counter and the day it was last advanced.
type StreakState struct {
	Count            int
	LastActivityDate Day
}
