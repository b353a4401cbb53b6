package shell

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/hoardlib/hoard/hashmap"
)

const (
	// Name and Version identify the CLI binary.
	Name    = "hoardctl"
	Version = "0.1.0"

	// maxKeyLen caps prompted keys, mirroring the fixed input buffer of
	// the original tool.
	maxKeyLen = 64

	prompt = "> "
)

// Shell is the interactive command loop's explicit state: input scanner,
// result output, diagnostic logger, and the map under manipulation.
type Shell struct {
	in  *bufio.Scanner
	out io.Writer
	log *logrus.Logger

	m *hashmap.Map[string, int]
}

// New returns a shell reading commands from in, printing results to out,
// and routing diagnostics through log.
func New(in io.Reader, out io.Writer, log *logrus.Logger) *Shell {
	return &Shell{
		in:  bufio.NewScanner(in),
		out: out,
		log: log,
	}
}

// Run drives the command loop until the quit command or end of input.
// Unknown commands and failed container operations produce a diagnostic
// and the loop continues; only a read error terminates it abnormally.
func (s *Shell) Run() error {
	for {
		fmt.Fprint(s.out, prompt)
		line, ok := s.readLine()
		if !ok {
			return s.in.Err()
		}
		if line == "quit" {
			return nil
		}
		s.dispatch(line)
	}
}

// dispatch runs a single command word.
func (s *Shell) dispatch(cmd string) {
	for _, c := range commands {
		if c.name == cmd {
			if c.run != nil {
				c.run(s)
			}

			return
		}
	}
	s.log.Error("invalid command")
}

// readLine reads one newline-terminated line, reporting false at end of
// input.
func (s *Shell) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}

	return strings.TrimRight(s.in.Text(), "\r\n"), true
}

// promptKey asks for a key and truncates it at the fixed buffer size.
func (s *Shell) promptKey() (string, bool) {
	fmt.Fprint(s.out, "Enter key: ")
	key, ok := s.readLine()
	if !ok {
		return "", false
	}
	if len(key) > maxKeyLen {
		key = key[:maxKeyLen]
	}

	return key, true
}

// promptInt asks with the given label and parses a decimal integer.
func (s *Shell) promptInt(label string) (int, bool) {
	fmt.Fprint(s.out, label)
	line, ok := s.readLine()
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		s.log.Errorf("invalid integer: %q", line)

		return 0, false
	}

	return n, true
}

// requireMap fetches the live map, logging the standard diagnostic when no
// map has been created yet.
func (s *Shell) requireMap() (*hashmap.Map[string, int], bool) {
	if s.m == nil {
		s.log.Error("hash map is not created")

		return nil, false
	}

	return s.m, true
}
