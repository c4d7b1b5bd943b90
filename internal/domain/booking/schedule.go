package booking

import (
	"errors"
	"fmt"
	"time"
)

// ===============================
// Time of day
// ===============================

// TimeOfDay is a wall-clock time without a date.
type TimeOfDay struct {
	Hour   int
	Minute int
}

func ParseTimeOfDay(hm string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q: %w", hm, err)
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

func MustTimeOfDay(hm string) TimeOfDay {
	tod, err := ParseTimeOfDay(hm)
	if err != nil {
		panic(err)
	}
	return tod
}

// On combines the calendar day of date with the time of day, in date's location.
func (t TimeOfDay) On(date time.Time) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour, t.Minute, 0, 0,
		date.Location(),
	)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

func (t TimeOfDay) minutes() int {
	return t.Hour*60 + t.Minute
}

// ===============================
// Opening schedule
// ===============================

type OpeningInterval struct {
	Open  TimeOfDay
	Close TimeOfDay
}

// Schedule is the static opening configuration shared by every staff member.
type Schedule struct {
	Intervals      []OpeningInterval
	Cadence        time.Duration
	ClosedWeekdays []time.Weekday
}

func (s Schedule) Validate() error {
	if s.Cadence <= 0 {
		return errors.New("schedule: cadence must be positive")
	}
	if len(s.Intervals) == 0 {
		return errors.New("schedule: at least one opening interval is required")
	}

	prevClose := -1
	for i, iv := range s.Intervals {
		if iv.Open.minutes() >= iv.Close.minutes() {
			return fmt.Errorf("schedule: interval %d opens at %s but closes at %s", i, iv.Open, iv.Close)
		}
		if iv.Open.minutes() < prevClose {
			return fmt.Errorf("schedule: interval %d overlaps or precedes the previous one", i)
		}
		prevClose = iv.Close.minutes()
	}
	return nil
}

func (s Schedule) IsClosed(date time.Time) bool {
	wd := date.Weekday()
	for _, closed := range s.ClosedWeekdays {
		if closed == wd {
			return true
		}
	}
	return false
}

// NextOpenDay returns the first day on or after from that is not a closed weekday.
// ok is false when every weekday is closed.
func (s Schedule) NextOpenDay(from time.Time) (day time.Time, ok bool) {
	day = time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	for i := 0; i < 7; i++ {
		if !s.IsClosed(day) {
			return day, true
		}
		day = day.AddDate(0, 0, 1)
	}
	return time.Time{}, false
}

// DefaultSchedule is the shop's opening configuration: morning and afternoon
// sessions every half hour, closed on Sunday and Monday.
func DefaultSchedule() Schedule {
	return Schedule{
		Intervals: []OpeningInterval{
			{Open: MustTimeOfDay("08:30"), Close: MustTimeOfDay("12:30")},
			{Open: MustTimeOfDay("15:00"), Close: MustTimeOfDay("19:30")},
		},
		Cadence:        30 * time.Minute,
		ClosedWeekdays: []time.Weekday{time.Sunday, time.Monday},
	}
}
