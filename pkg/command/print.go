package command

import "github.com/daviddao/calcli/pkg/controller"

// parsePrint handles the print family:
//
//	print events on <date>
//	print events from <dt> to <dt>
func parsePrint(cur *cursor, ctrl *controller.Controller) (Operation, error) {
	if err := cur.expect("events"); err != nil {
		return nil, err
	}
	mode, err := cur.take("on or from")
	if err != nil {
		return nil, err
	}
	switch {
	case equalFold(mode, "on"):
		date, err := cur.take("date for print events on")
		if err != nil {
			return nil, err
		}
		return opFunc(func() (string, error) {
			events, err := ctrl.EventsOn(date)
			if err != nil {
				return "", err
			}
			return formatEventsOn(date, events), nil
		}), nil
	case equalFold(mode, "from"):
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
		return opFunc(func() (string, error) {
			events, err := ctrl.EventsBetween(start, end)
			if err != nil {
				return "", err
			}
			return formatEventsBetween(start, end, events), nil
		}), nil
	default:
		return nil, &InvalidCommandError{Reason: "print events: " + mode}
	}
}
