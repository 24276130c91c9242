package command

import (
	"fmt"
	"strconv"

	"github.com/daviddao/calcli/pkg/controller"
	"github.com/daviddao/calcli/pkg/model"
)

// parseCreate handles the create family:
//
//	create calendar --name <n> --timezone <tz>
//	create event [--autodecline] <name> from <dt> to <dt> [repeats <weekdays> (for <N> times | until <dt>)]
//	create event [--autodecline] <name> on <date> [repeats <weekdays> (for <N> times | until <date>)]
func parseCreate(cur *cursor, ctrl *controller.Controller) (Operation, error) {
	kind, err := cur.take("calendar or event")
	if err != nil {
		return nil, err
	}
	switch {
	case equalFold(kind, "calendar"):
		return parseCreateCalendar(cur, ctrl)
	case equalFold(kind, "event"):
		return parseCreateEvent(cur, ctrl)
	default:
		return nil, &InvalidCommandError{Reason: "create target: " + kind}
	}
}

func parseCreateCalendar(cur *cursor, ctrl *controller.Controller) (Operation, error) {
	if err := cur.expect("--name"); err != nil {
		return nil, err
	}
	name, err := cur.take("calendar name")
	if err != nil {
		return nil, err
	}
	if err := cur.expect("--timezone"); err != nil {
		return nil, err
	}
	timezone, err := cur.take("timezone")
	if err != nil {
		return nil, err
	}
	return opFunc(func() (string, error) {
		if err := ctrl.CreateCalendar(name, timezone); err != nil {
			return "", err
		}
		return fmt.Sprintf("Calendar created: %s with timezone %s", name, timezone), nil
	}), nil
}

func parseCreateEvent(cur *cursor, ctrl *controller.Controller) (Operation, error) {
	autoDecline := cur.accept("--autodecline")
	name, err := cur.take("event name")
	if err != nil {
		return nil, err
	}
	mode, err := cur.take("from or on")
	if err != nil {
		return nil, err
	}
	switch {
	case equalFold(mode, "from"):
		return parseCreateTimed(cur, ctrl, name, autoDecline)
	case equalFold(mode, "on"):
		return parseCreateAllDay(cur, ctrl, name, autoDecline)
	default:
		return nil, &InvalidCommandError{Reason: "expected from or on, found: " + mode}
	}
}

func parseCreateTimed(cur *cursor, ctrl *controller.Controller, name string, autoDecline bool) (Operation, error) {
	start, err := cur.take("start datetime")
	if err != nil {
		return nil, err
	}
	if err := cur.expect("to"); err != nil {
		return nil, err
	}
	end, err := cur.take("end datetime")
	if err != nil {
		return nil, err
	}

	if !cur.accept("repeats") {
		return opFunc(func() (string, error) {
			if err := ctrl.CreateEvent(name, start, end, autoDecline); err != nil {
				return "", err
			}
			return "Single timed event created: " + name, nil
		}), nil
	}

	weekdays, repeat, err := parseRepeatClause(cur)
	if err != nil {
		return nil, err
	}
	if repeat.byCount {
		return opFunc(func() (string, error) {
			if err := ctrl.CreateRecurringEvent(name, start, end, weekdays, repeat.count, autoDecline); err != nil {
				return "", err
			}
			return fmt.Sprintf("Recurring timed event created with %d occurrences.", repeat.count), nil
		}), nil
	}
	return opFunc(func() (string, error) {
		if err := ctrl.CreateRecurringEventUntil(name, start, end, weekdays, repeat.until, autoDecline); err != nil {
			return "", err
		}
		return fmt.Sprintf("Recurring timed event created until %s.", repeat.until), nil
	}), nil
}

func parseCreateAllDay(cur *cursor, ctrl *controller.Controller, name string, autoDecline bool) (Operation, error) {
	date, err := cur.take("date for all day event")
	if err != nil {
		return nil, err
	}

	if !cur.accept("repeats") {
		return opFunc(func() (string, error) {
			if err := ctrl.CreateAllDayEvent(name, date, autoDecline); err != nil {
				return "", err
			}
			return "Single all day event created: " + name, nil
		}), nil
	}

	weekdays, repeat, err := parseRepeatClause(cur)
	if err != nil {
		return nil, err
	}
	if repeat.byCount {
		return opFunc(func() (string, error) {
			if err := ctrl.CreateRecurringAllDayEvent(name, date, weekdays, repeat.count, autoDecline); err != nil {
				return "", err
			}
			return fmt.Sprintf("Recurring all day event created with %d occurrences.", repeat.count), nil
		}), nil
	}
	return opFunc(func() (string, error) {
		if err := ctrl.CreateRecurringAllDayEventUntil(name, date, weekdays, repeat.until, autoDecline); err != nil {
			return "", err
		}
		return fmt.Sprintf("Recurring all day event created until %s.", repeat.until), nil
	}), nil
}

// repeatSpec is a parsed termination clause: `for <N> times` or
// `until <dt>`.
type repeatSpec struct {
	byCount bool
	count   int
	until   string
}

func parseRepeatClause(cur *cursor) (string, repeatSpec, error) {
	weekdays, err := cur.take("weekdays for recurring event")
	if err != nil {
		return "", repeatSpec{}, err
	}
	kind, err := cur.take("'for' or 'until'")
	if err != nil {
		return "", repeatSpec{}, err
	}
	switch {
	case equalFold(kind, "for"):
		countStr, err := cur.take("occurrence count")
		if err != nil {
			return "", repeatSpec{}, err
		}
		count, err := strconv.Atoi(countStr)
		if err != nil {
			return "", repeatSpec{}, model.Validationf("invalid occurrence count: %s", countStr)
		}
		if err := cur.expect("times"); err != nil {
			return "", repeatSpec{}, err
		}
		return weekdays, repeatSpec{byCount: true, count: count}, nil
	case equalFold(kind, "until"):
		until, err := cur.take("until datetime")
		if err != nil {
			return "", repeatSpec{}, err
		}
		return weekdays, repeatSpec{until: until}, nil
	default:
		return "", repeatSpec{}, &InvalidCommandError{Reason: "recurring specification: " + kind}
	}
}
