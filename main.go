package main

import (
	"fmt"
	"io"
	"log"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/probekit/checkmem/internal/check"
)

const (
	appName = "check_mem"
	version = "1.0.0"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet(appName, flag.ContinueOnError)
	flags.SetOutput(stderr)
	critical := flags.IntP("critical", "c", 0, "critical if free memory percentage drops below this")
	warning := flags.IntP("warning", "w", 0, "warning if free memory percentage drops below this")
	verbose := flags.CountP("verbose", "v", "increase diagnostic detail (repeatable)")
	showVersion := flags.BoolP("version", "V", false, "print version and exit")
	help := flags.BoolP("help", "h", false, "show this help and exit")
	memInfoPath := flags.String("meminfo", "", "meminfo source path (testing override)")
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s -c <critical> -w <warning> [-v]...\n\nOptions:\n", appName)
		flags.PrintDefaults()
	}

	// -? is a second help shorthand; pflag allows one shorthand per
	// flag, so it is handled before parsing.
	for _, arg := range args {
		if arg == "-?" {
			flags.Usage()
			return 3
		}
	}

	if err := flags.Parse(args); err != nil {
		// pflag has already printed the error and usage.
		return 3
	}
	if *help {
		flags.Usage()
		return 3
	}
	if *showVersion {
		// The original plugin exits UNKNOWN here as well.
		fmt.Fprintf(stdout, "%s %s\n", appName, version)
		return 3
	}
	if !flags.Changed("critical") || !flags.Changed("warning") {
		fmt.Fprintln(stderr, "both --critical and --warning are required")
		flags.Usage()
		return 3
	}

	result := check.Run(check.Options{
		Critical:    *critical,
		Warning:     *warning,
		MemInfoPath: *memInfoPath,
		Verbosity:   *verbose,
		Log:         log.New(stderr, "", 0),
	})
	fmt.Fprintln(stdout, result.Output)
	return result.ExitCode()
}
