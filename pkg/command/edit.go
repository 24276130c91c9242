package command

import (
	"fmt"

	"github.com/daviddao/calcli/pkg/controller"
)

// parseEdit handles the edit family:
//
//	edit calendar --name <n> --property <prop> <value>
//	edit event <prop> <name> from <dt> to <dt> with <value>
//	edit events <prop> <name> from <dt> with <value>
//	edit events <prop> <name> <value>
func parseEdit(cur *cursor, ctrl *controller.Controller) (Operation, error) {
	target, err := cur.take("edit target")
	if err != nil {
		return nil, err
	}
	switch {
	case equalFold(target, "calendar"):
		return parseEditCalendar(cur, ctrl)
	case equalFold(target, "event"):
		return parseEditEvent(cur, ctrl)
	case equalFold(target, "events"):
		return parseEditEvents(cur, ctrl)
	default:
		return nil, &InvalidCommandError{Reason: "edit target: " + target}
	}
}

func parseEditCalendar(cur *cursor, ctrl *controller.Controller) (Operation, error) {
	if err := cur.expect("--name"); err != nil {
		return nil, err
	}
	name, err := cur.take("calendar name")
	if err != nil {
		return nil, err
	}
	if err := cur.expect("--property"); err != nil {
		return nil, err
	}
	property, err := cur.take("property")
	if err != nil {
		return nil, err
	}
	value, err := cur.take("new value")
	if err != nil {
		return nil, err
	}
	return opFunc(func() (string, error) {
		if err := ctrl.EditCalendar(name, property, value); err != nil {
			return "", err
		}
		return fmt.Sprintf("Calendar %s updated: %s = %s", name, property, value), nil
	}), nil
}

func parseEditEvent(cur *cursor, ctrl *controller.Controller) (Operation, error) {
	property, err := cur.take("property")
	if err != nil {
		return nil, err
	}
	name, err := cur.take("event name")
	if err != nil {
		return nil, err
	}
	if err := cur.expect("from"); err != nil {
		return nil, err
	}
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
	if err := cur.expect("with"); err != nil {
		return nil, err
	}
	value, err := cur.take("new value")
	if err != nil {
		return nil, err
	}
	return opFunc(func() (string, error) {
		if err := ctrl.EditSingleEvent(property, name, start, end, value); err != nil {
			return "", err
		}
		return "Single event edited.", nil
	}), nil
}

func parseEditEvents(cur *cursor, ctrl *controller.Controller) (Operation, error) {
	property, err := cur.take("property")
	if err != nil {
		return nil, err
	}
	name, err := cur.take("event name")
	if err != nil {
		return nil, err
	}
	if cur.accept("from") {
		start, err := cur.take("start datetime")
		if err != nil {
			return nil, err
		}
		if err := cur.expect("with"); err != nil {
			return nil, err
		}
		value, err := cur.take("new value")
		if err != nil {
			return nil, err
		}
		return opFunc(func() (string, error) {
			if err := ctrl.EditEventsFrom(property, name, start, value); err != nil {
				return "", err
			}
			return fmt.Sprintf("Events starting at %s edited.", start), nil
		}), nil
	}
	value, err := cur.take("new value")
	if err != nil {
		return nil, err
	}
	return opFunc(func() (string, error) {
		if err := ctrl.EditEvents(property, name, value); err != nil {
			return "", err
		}
		return fmt.Sprintf("All events with name %s edited.", name), nil
	}), nil
}
