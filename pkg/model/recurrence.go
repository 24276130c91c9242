package model

import "time"

// Weekday letter codes. T and R are deliberately distinct so Tuesday and
// Thursday cannot collide on a single letter.
//
//	U=Sunday M=Monday T=Tuesday W=Wednesday R=Thursday F=Friday S=Saturday
var weekdayLetters = map[rune]time.Weekday{
	'U': time.Sunday,
	'M': time.Monday,
	'T': time.Tuesday,
	'W': time.Wednesday,
	'R': time.Thursday,
	'F': time.Friday,
	'S': time.Saturday,
}

// ParseWeekdays converts a weekday-letter string such as "MWF" into a
// weekday set. An unrecognized letter, or a string that yields an empty
// set, is a ValidationError: an empty set would make count-mode expansion
// scan forever without emitting anything.
func ParseWeekdays(s string) (map[time.Weekday]bool, error) {
	set := make(map[time.Weekday]bool)
	for _, c := range s {
		day, ok := weekdayLetters[c]
		if !ok {
			return nil, Validationf("unknown weekday letter: %q", c)
		}
		set[day] = true
	}
	if len(set) == 0 {
		return nil, Validationf("no weekdays specified")
	}
	return set, nil
}

// Rule is a weekly recurrence pattern with exactly one termination mode:
// a fixed occurrence count, or an until boundary. Rules exist only long
// enough to expand; the expanded Events are what calendars store.
type Rule struct {
	Weekdays    map[time.Weekday]bool
	Occurrences int       // count mode when Until is zero
	Until       time.Time // until mode when non-zero
}

// Generate expands the rule into concrete event instances. The template's
// Start/End supply the anchor date and the time-of-day of every instance;
// name, description, location and visibility are cloned as-is.
//
// The scan walks forward one day at a time from the template's start
// date, in ascending date order (the only ordering guarantee made here).
//
//   - Count mode emits on each matching weekday until the count is
//     reached. A count of zero produces nothing; negative counts are the
//     caller's job to reject before calling.
//   - Until mode emits on each matching weekday, stopping once the start
//     of the *next* date is after the boundary. The anchor date is
//     therefore considered before the boundary is ever checked, and an
//     instance whose time-of-day is past the boundary on the boundary
//     date is still emitted.
//
// An empty weekday set is a ValidationError; in count mode it could
// never terminate.
func (r Rule) Generate(template Event) ([]Event, error) {
	if len(r.Weekdays) == 0 {
		return nil, Validationf("no weekdays specified")
	}

	var instances []Event
	date := StartOfDay(template.Start)

	if r.Until.IsZero() {
		if r.Occurrences <= 0 {
			return nil, nil
		}
		count := 0
		for {
			if r.Weekdays[date.Weekday()] {
				instances = append(instances, r.instance(template, date))
				count++
				if count >= r.Occurrences {
					break
				}
			}
			date = date.AddDate(0, 0, 1)
		}
		return instances, nil
	}

	for {
		if r.Weekdays[date.Weekday()] {
			instances = append(instances, r.instance(template, date))
		}
		date = date.AddDate(0, 0, 1)
		if date.After(r.Until) {
			break
		}
	}
	return instances, nil
}

func (r Rule) instance(template Event, date time.Time) Event {
	return Event{
		Name:        template.Name,
		Start:       AtTimeOfDay(date, template.Start),
		End:         AtTimeOfDay(date, template.End),
		Description: template.Description,
		Location:    template.Location,
		Public:      template.Public,
	}
}
