// Command hoardctl is an interactive shell for exercising the hashmap
// package: a string-keyed, integer-valued map driven by single-line
// commands on standard input.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/hoardlib/hoard/shell"
)

func usage() {
	fmt.Printf("%s %s\n", shell.Name, shell.Version)
	fmt.Println()
	fmt.Printf("Usage: %s [OPTIONS]\n", shell.Name)
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -l, --log <LEVEL>    Logging level (none|error|warn|info|debug|trace) [default: warn]")
	fmt.Println("  -h, --help           Print help information")
	fmt.Println("  -V, --version        Print version information")
}

func main() {
	var (
		level   string
		version bool
	)
	flag.StringVar(&level, "log", "warn", "logging level")
	flag.StringVar(&level, "l", "warn", "logging level (shorthand)")
	flag.BoolVar(&version, "version", false, "print version information")
	flag.BoolVar(&version, "V", false, "print version information (shorthand)")
	flag.Usage = usage
	flag.Parse()

	if version {
		fmt.Printf("%s %s\n", shell.Name, shell.Version)

		return
	}

	log, err := newLogger(level)
	if err != nil {
		// Malformed startup arguments are fatal; everything after the
		// loop starts is recoverable.
		fmt.Fprintf(os.Stderr, "%s: %v\n", shell.Name, err)
		fmt.Fprintf(os.Stderr, "usage: %s -l <LEVEL>\n", shell.Name)
		os.Exit(1)
	}

	if err := shell.New(os.Stdin, os.Stdout, log).Run(); err != nil {
		log.WithError(err).Fatal("shell terminated")
	}
}

// newLogger builds the diagnostic logger for the requested level name.
func newLogger(level string) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{
		ForceColors:      true,
		DisableTimestamp: true,
	})

	if level == "none" {
		log.SetOutput(io.Discard)

		return log, nil
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}
	log.SetLevel(parsed)

	return log, nil
}
