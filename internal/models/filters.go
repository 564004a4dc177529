package models

import (
	"fmt"
	"strings"
)

// DayFilter is a closed day-of-week filter: one of the seven day names, the
// synthetic categories "weekday"/"weekend", or empty (no filtering). Unknown
// values are rejected at parse time instead of silently ignored.
type DayFilter string

const (
	DayAny     DayFilter = ""
	DayMonday  DayFilter = "Monday"
	DayTuesday DayFilter = "Tuesday"
	DayWed     DayFilter = "Wednesday"
	DayThu     DayFilter = "Thursday"
	DayFriday  DayFilter = "Friday"
	DaySat     DayFilter = "Saturday"
	DaySunday  DayFilter = "Sunday"
	DayWeekday DayFilter = "weekday"
	DayWeekend DayFilter = "weekend"
)

var dayNames = map[string]DayFilter{
	"monday":    DayMonday,
	"tuesday":   DayTuesday,
	"wednesday": DayWed,
	"thursday":  DayThu,
	"friday":    DayFriday,
	"saturday":  DaySat,
	"sunday":    DaySunday,
	"weekday":   DayWeekday,
	"weekend":   DayWeekend,
}

// ParseDayFilter parses a day filter, case-insensitively on the first letter
// convention used by callers ("Tuesday", "tuesday", "Weekend" all accepted).
func ParseDayFilter(s string) (DayFilter, error) {
	if s == "" {
		return DayAny, nil
	}
	if d, ok := dayNames[strings.ToLower(s)]; ok {
		return d, nil
	}
	return DayAny, fmt.Errorf("unknown day filter %q", s)
}

// Matches reports whether a citation's day-of-week name passes the filter.
func (d DayFilter) Matches(dow string) bool {
	switch d {
	case DayAny:
		return true
	case DayWeekend:
		return dow == string(DaySat) || dow == string(DaySunday)
	case DayWeekday:
		return dow != string(DaySat) && dow != string(DaySunday)
	default:
		return dow == string(d)
	}
}

// Days returns the concrete day names selected by the filter, nil for DayAny.
func (d DayFilter) Days() []string {
	switch d {
	case DayAny:
		return nil
	case DayWeekend:
		return []string{string(DaySat), string(DaySunday)}
	case DayWeekday:
		return []string{
			string(DayMonday), string(DayTuesday), string(DayWed),
			string(DayThu), string(DayFriday),
		}
	default:
		return []string{string(d)}
	}
}

// TimeOfDay is a closed time-of-day filter over the hour bucket: four
// half-open six-hour windows, or empty for no filtering.
type TimeOfDay string

const (
	TimeAny       TimeOfDay = ""
	TimeEarly     TimeOfDay = "early"     // [0,6)
	TimeMorning   TimeOfDay = "morning"   // [6,12)
	TimeAfternoon TimeOfDay = "afternoon" // [12,18)
	TimeEvening   TimeOfDay = "evening"   // [18,24)
)

// ParseTimeOfDay parses a time-of-day filter, rejecting unknown values.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	switch strings.ToLower(s) {
	case "":
		return TimeAny, nil
	case "early":
		return TimeEarly, nil
	case "morning":
		return TimeMorning, nil
	case "afternoon":
		return TimeAfternoon, nil
	case "evening":
		return TimeEvening, nil
	}
	return TimeAny, fmt.Errorf("unknown time-of-day filter %q", s)
}

// HourRange returns the half-open [lo,hi) hour-bucket window, or ok=false
// when the filter is unset.
func (t TimeOfDay) HourRange() (lo, hi int, ok bool) {
	switch t {
	case TimeEarly:
		return 0, 6, true
	case TimeMorning:
		return 6, 12, true
	case TimeAfternoon:
		return 12, 18, true
	case TimeEvening:
		return 18, 24, true
	}
	return 0, 0, false
}

// Matches reports whether an hour bucket falls inside the window.
func (t TimeOfDay) Matches(bucket int) bool {
	lo, hi, ok := t.HourRange()
	if !ok {
		return true
	}
	return bucket >= lo && bucket < hi
}

// CitationFilter combines the two categorical filters with pagination.
type CitationFilter struct {
	Day      DayFilter
	Time     TimeOfDay
	Page     int
	PageSize int
}
