package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/stevenpelley/startprobe/internal/clock"
	"github.com/stevenpelley/startprobe/internal/probe"
)

// command to print the monotonic start time of a benchmark process.
// output is the closing fragment of a record whose opening the harness has
// already written, e.g. "0.000123 ] }".

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// returns the process exit code.  Nothing is written to stderr on success.
func run(args []string, stdout io.Writer, stderr io.Writer) int {
	flags := flag.NewFlagSet("startprobe", flag.ContinueOnError)
	flags.SetOutput(stderr)
	clockName := flags.String("clock", "", "clock to read, one of: "+
		strings.Join(clock.Names(), ", ")+" (default is the raw monotonic clock where available)")
	flags.Usage = func() {
		fmt.Fprintln(
			flags.Output(),
			`print a monotonic timestamp in seconds, followed by " ] }".
Usage: startprobe [-clock <name>]`)
		flags.PrintDefaults()
		fmt.Fprint(
			flags.Output(),
			`
return values:
0 - the timestamp was printed
1 - the clock could not be read.  Nothing is printed to stdout
2 - the timestamp could not be written to stdout
127 - argument parsing error`)
		fmt.Fprintln(flags.Output())
	}

	if err := flags.Parse(args); err != nil {
		// flag has already printed the error and usage
		if errors.Is(err, flag.ErrHelp) {
			return probe.SUCCESS
		}
		return probe.INPUT_ERROR
	}

	if flags.NArg() > 0 {
		return exit(stderr, flags, &probe.ExitError{
			Message:      "unexpected arguments",
			ExitCode:     probe.INPUT_ERROR,
			DisplayUsage: true})
	}

	id := clock.Default
	if *clockName != "" {
		var err error
		id, err = clock.Lookup(*clockName)
		if err != nil {
			return exit(stderr, flags, err)
		}
	}

	err := probe.Measure(stdout, func() (float64, error) {
		return clock.Seconds(id)
	})
	return exit(stderr, flags, err)
}

func exit(stderr io.Writer, flags *flag.FlagSet, e error) int {
	err := probe.ExitErrorFor(e)
	if err == nil {
		return probe.SUCCESS
	}
	msg := err.Error()
	if len(msg) > 0 {
		fmt.Fprintln(stderr, msg)
	}
	if err.DisplayUsage {
		flags.Usage()
	}
	return err.ExitCode
}
