// Package command is the textual command interpreter: it tokenizes one
// line of input and parses it against a fixed positional/keyword grammar
// into an Operation bound to the controller.
//
// The grammar is evaluated strictly left to right with a token cursor
// and no backtracking. Parsing is stateless across lines. The literal
// "exit" line is not a command; the mode loops check for it before ever
// calling Parse.
package command

import (
	"strings"

	"github.com/daviddao/calcli/pkg/controller"
)

// Operation is one fully-parsed, executable command. Execute performs
// the call against the controller and returns a confirmation string.
type Operation interface {
	Execute() (string, error)
}

// opFunc adapts a closure over parsed arguments into an Operation.
type opFunc func() (string, error)

func (f opFunc) Execute() (string, error) { return f() }

// Parse tokenizes a line on runs of whitespace (no quoting, no
// escaping) and dispatches on the first token to the per-family parser.
func Parse(line string, ctrl *controller.Controller) (Operation, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return nil, &MissingParameterError{Want: "command"}
	}
	cur := &cursor{tokens: tokens, pos: 1}

	switch strings.ToLower(tokens[0]) {
	case "create":
		return parseCreate(cur, ctrl)
	case "edit":
		return parseEdit(cur, ctrl)
	case "use":
		return parseUse(cur, ctrl)
	case "copy":
		return parseCopy(cur, ctrl)
	case "print":
		return parsePrint(cur, ctrl)
	case "export":
		return parseExport(cur, ctrl)
	case "import":
		return parseImport(cur, ctrl)
	case "show":
		return parseShow(cur, ctrl)
	default:
		return nil, &InvalidCommandError{Reason: tokens[0]}
	}
}
