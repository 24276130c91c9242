// Package mode runs the two command loops. Their error recovery is
// deliberately asymmetric: the interactive loop reports an error and
// reads the next line, while the headless (script) loop reports and
// abandons the rest of the script.
package mode

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/daviddao/calcli/pkg/command"
	"github.com/daviddao/calcli/pkg/controller"
)

// DefaultPrompt is the interactive prompt when none is configured.
const DefaultPrompt = "Enter command: "

const exitMessage = "Exiting Calendar App."

// Interactive reads commands from in until "exit" or EOF. Errors are
// printed to errOut and the loop continues.
func Interactive(ctrl *controller.Controller, in io.Reader, out, errOut io.Writer, prompt string) {
	if prompt == "" {
		prompt = DefaultPrompt
	}
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		if strings.EqualFold(strings.TrimSpace(line), "exit") {
			fmt.Fprintln(out, exitMessage)
			return
		}
		if result, err := run(line, ctrl); err != nil {
			fmt.Fprintf(errOut, "Error: %v\n", err)
		} else {
			fmt.Fprintln(out, result)
		}
	}
}

// Headless executes the script file line by line. Blank lines are
// skipped; "exit" stops the script. The first command error aborts the
// remainder and is returned, tagged with its line number.
func Headless(ctrl *controller.Controller, scriptPath string, out, errOut io.Writer) error {
	f, err := os.Open(scriptPath)
	if err != nil {
		return fmt.Errorf("open script %q: %w", scriptPath, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		fmt.Fprintf(out, "Processing command (%d): %s\n", lineNo, line)
		if strings.EqualFold(strings.TrimSpace(line), "exit") {
			fmt.Fprintln(out, exitMessage)
			return nil
		}
		result, err := run(line, ctrl)
		if err != nil {
			wrapped := fmt.Errorf("error at line %d: %w", lineNo, err)
			fmt.Fprintf(errOut, "%v\n", wrapped)
			return wrapped
		}
		fmt.Fprintln(out, result)
	}
	return scanner.Err()
}

// run parses one line and executes the resulting operation.
func run(line string, ctrl *controller.Controller) (string, error) {
	op, err := command.Parse(line, ctrl)
	if err != nil {
		return "", err
	}
	return op.Execute()
}
