package command

import (
	"fmt"

	"github.com/daviddao/calcli/pkg/controller"
)

// parseCopy handles the copy family:
//
//	copy event <name> on <dt> --target <cal> to <dt>
//	copy events on <date> --target <cal> to <dt>
//	copy events between <date> and <date> --target <cal> to <date>
func parseCopy(cur *cursor, ctrl *controller.Controller) (Operation, error) {
	target, err := cur.take("event or events")
	if err != nil {
		return nil, err
	}
	switch {
	case equalFold(target, "event"):
		return parseCopySingle(cur, ctrl)
	case equalFold(target, "events"):
		return parseCopyBulk(cur, ctrl)
	default:
		return nil, &InvalidCommandError{Reason: "copy target: " + target}
	}
}

func parseCopySingle(cur *cursor, ctrl *controller.Controller) (Operation, error) {
	name, err := cur.take("event name")
	if err != nil {
		return nil, err
	}
	if err := cur.expect("on"); err != nil {
		return nil, err
	}
	sourceDT, err := cur.take("source datetime")
	if err != nil {
		return nil, err
	}
	targetCal, targetDT, err := parseCopyDestination(cur)
	if err != nil {
		return nil, err
	}
	return opFunc(func() (string, error) {
		if err := ctrl.CopyEvent(name, sourceDT, targetCal, targetDT); err != nil {
			return "", err
		}
		return fmt.Sprintf("Event %s copied to calendar %s.", name, targetCal), nil
	}), nil
}

func parseCopyBulk(cur *cursor, ctrl *controller.Controller) (Operation, error) {
	mode, err := cur.take("on or between")
	if err != nil {
		return nil, err
	}
	switch {
	case equalFold(mode, "on"):
		date, err := cur.take("date")
		if err != nil {
			return nil, err
		}
		targetCal, targetDT, err := parseCopyDestination(cur)
		if err != nil {
			return nil, err
		}
		return opFunc(func() (string, error) {
			if err := ctrl.CopyEventsOn(date, targetCal, targetDT); err != nil {
				return "", err
			}
			return fmt.Sprintf("Events on %s copied to calendar %s.", date, targetCal), nil
		}), nil
	case equalFold(mode, "between"):
		startDate, err := cur.take("start date")
		if err != nil {
			return nil, err
		}
		if err := cur.expect("and"); err != nil {
			return nil, err
		}
		endDate, err := cur.take("end date")
		if err != nil {
			return nil, err
		}
		targetCal, targetDate, err := parseCopyDestination(cur)
		if err != nil {
			return nil, err
		}
		return opFunc(func() (string, error) {
			if err := ctrl.CopyEventsBetween(startDate, endDate, targetCal, targetDate); err != nil {
				return "", err
			}
			return fmt.Sprintf("Events between %s and %s copied to calendar %s.", startDate, endDate, targetCal), nil
		}), nil
	default:
		return nil, &InvalidCommandError{Reason: "copy events: " + mode}
	}
}

// parseCopyDestination consumes the shared `--target <cal> to <dt>`
// tail of every copy shape.
func parseCopyDestination(cur *cursor) (targetCal, targetDT string, err error) {
	if err := cur.expect("--target"); err != nil {
		return "", "", err
	}
	targetCal, err = cur.take("target calendar")
	if err != nil {
		return "", "", err
	}
	if err := cur.expect("to"); err != nil {
		return "", "", err
	}
	targetDT, err = cur.take("target datetime")
	if err != nil {
		return "", "", err
	}
	return targetCal, targetDT, nil
}
