// Command calcli is a multi-calendar event manager driven by textual
// commands, either interactively or from a script file.
package main

import (
	"fmt"
	"os"

	"github.com/daviddao/calcli/pkg/calendar"
	"github.com/daviddao/calcli/pkg/config"
	"github.com/daviddao/calcli/pkg/controller"
	"github.com/daviddao/calcli/pkg/mode"
	"github.com/daviddao/calcli/pkg/transfer"
)

const version = "1.0.0"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--help", "-h", "help":
			printUsage()
			return
		case "--version", "-v", "version":
			fmt.Println("calcli", version)
			return
		}
	}

	cfg, err := config.Load(envOr("CALCLI_CONFIG", ""))
	if err != nil {
		fatal("%v", err)
	}
	loc, err := cfg.Location()
	if err != nil {
		fatal("%v", err)
	}
	defaultCal := calendar.New(cfg.DefaultCalendar, loc)
	ctrl := controller.New(defaultCal,
		transfer.CSVExporter{}, transfer.ICalExporter{}, transfer.CSVImporter{})

	// No arguments means interactive, matching `--mode interactive`.
	if len(os.Args) == 1 {
		mode.Interactive(ctrl, os.Stdin, os.Stdout, os.Stderr, cfg.Prompt)
		return
	}
	if os.Args[1] != "--mode" || len(os.Args) < 3 {
		fmt.Fprintf(os.Stderr, "calcli: invalid command-line arguments\n")
		fmt.Fprintln(os.Stderr, "Run 'calcli --help' for usage.")
		os.Exit(1)
	}

	switch os.Args[2] {
	case "interactive":
		mode.Interactive(ctrl, os.Stdin, os.Stdout, os.Stderr, cfg.Prompt)
	case "headless":
		if len(os.Args) < 4 {
			fatal("headless mode requires a script file path")
		}
		if err := mode.Headless(ctrl, os.Args[3], os.Stdout, os.Stderr); err != nil {
			os.Exit(1)
		}
	default:
		fatal("invalid mode specified: %s", os.Args[2])
	}
}

func printUsage() {
	fmt.Print(`calcli — multi-calendar event manager

Manage calendars and events (single and recurring), copy events between
calendars, and export to CSV or iCalendar, all through a line-oriented
command language.

Usage:
  calcli [--mode interactive]           Read commands from stdin
  calcli --mode headless <script-file>  Run a command script; the first
                                        error aborts the remaining lines

Commands (one per line):
  create calendar --name <n> --timezone <tz>
  create event [--autodecline] <name> from <dt> to <dt>
               [repeats <weekdays> (for <N> times | until <dt>)]
  create event [--autodecline] <name> on <date>
               [repeats <weekdays> (for <N> times | until <date>)]
  edit calendar --name <n> --property <prop> <value>
  edit event <prop> <name> from <dt> to <dt> with <value>
  edit events <prop> <name> [from <dt> with <value> | <value>]
  use calendar --name <n>
  copy event <name> on <dt> --target <cal> to <dt>
  copy events on <date> --target <cal> to <dt>
  copy events between <date> and <date> --target <cal> to <date>
  print events on <date>
  print events from <dt> to <dt>
  show status on <dt>
  export cal <filename>
  export ical <filename>
  import cal <filename>
  exit

Formats:
  <dt>        2025-04-01T10:00
  <date>      2025-04-01
  <weekdays>  letters from U M T W R F S (Tuesday=T, Thursday=R)

Environment:
  CALCLI_CONFIG   Optional YAML config (default calendar, timezone, prompt)
`)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "calcli: "+format+"\n", args...)
	os.Exit(1)
}
