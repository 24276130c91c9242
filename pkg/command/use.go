package command

import "github.com/daviddao/calcli/pkg/controller"

// parseUse handles `use calendar --name <n>`.
func parseUse(cur *cursor, ctrl *controller.Controller) (Operation, error) {
	if err := cur.expect("calendar"); err != nil {
		return nil, err
	}
	if err := cur.expect("--name"); err != nil {
		return nil, err
	}
	name, err := cur.take("calendar name")
	if err != nil {
		return nil, err
	}
	return opFunc(func() (string, error) {
		if err := ctrl.UseCalendar(name); err != nil {
			return "", err
		}
		return "Using calendar: " + name, nil
	}), nil
}
