package command

import "github.com/daviddao/calcli/pkg/controller"

// parseShow handles `show status on <dt>`.
func parseShow(cur *cursor, ctrl *controller.Controller) (Operation, error) {
	if err := cur.expect("status"); err != nil {
		return nil, err
	}
	if err := cur.expect("on"); err != nil {
		return nil, err
	}
	dateTime, err := cur.take("datetime")
	if err != nil {
		return nil, err
	}
	return opFunc(func() (string, error) {
		busy, err := ctrl.IsBusy(dateTime)
		if err != nil {
			return "", err
		}
		return formatBusyStatus(dateTime, busy), nil
	}), nil
}
