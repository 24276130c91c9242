package command

import (
	"fmt"

	"github.com/daviddao/calcli/pkg/controller"
)

// parseExport handles the export family:
//
//	export cal <filename>   (CSV)
//	export ical <filename>  (iCalendar)
func parseExport(cur *cursor, ctrl *controller.Controller) (Operation, error) {
	format, err := cur.take("cal or ical")
	if err != nil {
		return nil, err
	}
	filename, err := cur.take("filename")
	if err != nil {
		return nil, err
	}
	switch {
	case equalFold(format, "cal"):
		return opFunc(func() (string, error) {
			path, err := ctrl.Export(filename)
			if err != nil {
				return "", err
			}
			return "Calendar exported to CSV at: " + path, nil
		}), nil
	case equalFold(format, "ical"):
		return opFunc(func() (string, error) {
			path, err := ctrl.ExportICal(filename)
			if err != nil {
				return "", err
			}
			return "Calendar exported to iCalendar at: " + path, nil
		}), nil
	default:
		return nil, &InvalidCommandError{Reason: "export format: " + format}
	}
}

// parseImport handles `import cal <filename>`.
func parseImport(cur *cursor, ctrl *controller.Controller) (Operation, error) {
	if err := cur.expect("cal"); err != nil {
		return nil, err
	}
	filename, err := cur.take("filename")
	if err != nil {
		return nil, err
	}
	return opFunc(func() (string, error) {
		count, err := ctrl.Import(filename)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Imported %d events.", count), nil
	}), nil
}
