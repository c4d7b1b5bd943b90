package booking

import "time"

// Interval is a half-open [Start, End) span already taken on a staff member's day.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two half-open intervals share at least one instant.
// Touching at a boundary is not an overlap.
func Overlaps(a, b Interval) bool {
	return a.Start.Before(b.End) && a.End.After(b.Start)
}

// AvailableSlots returns every start time on date at which a service of
// durationMin minutes fits inside an opening interval without overlapping
// any of existing.
//
// Candidates are tried every Cadence from each interval's opening time while
// the cursor is before closing. A candidate whose end passes closing is
// skipped, not clipped. existing must already be scoped to one staff member
// and one day; no filtering happens here, and closed weekdays are not checked.
func (s Schedule) AvailableSlots(date time.Time, durationMin int, existing []Interval) []time.Time {
	duration := time.Duration(durationMin) * time.Minute
	var slots []time.Time

	for _, iv := range s.Intervals {
		cursor := iv.Open.On(date)
		boundary := iv.Close.On(date)

		for ; cursor.Before(boundary); cursor = cursor.Add(s.Cadence) {
			candidate := Interval{Start: cursor, End: cursor.Add(duration)}

			// runs past closing
			if candidate.End.After(boundary) {
				continue
			}

			if blocked(candidate, existing) {
				continue
			}

			slots = append(slots, cursor)
		}
	}

	return slots
}

func blocked(candidate Interval, existing []Interval) bool {
	for _, b := range existing {
		if Overlaps(candidate, b) {
			return true
		}
	}
	return false
}

// Fits reports whether start is one of the slots AvailableSlots would offer.
func (s Schedule) Fits(start time.Time, durationMin int, existing []Interval) bool {
	for _, slot := range s.AvailableSlots(start, durationMin, existing) {
		if slot.Equal(start) {
			return true
		}
	}
	return false
}
