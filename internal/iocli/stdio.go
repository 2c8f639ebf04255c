package iocli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Stdio реализует IO поверх стандартных потоков процесса
type Stdio struct {
	in    *bufio.Reader
	out   io.Writer
	inFd  int
	outFd int
}

// NewStdio returns IO bound to os.Stdin and os.Stdout.
func NewStdio() IO {
	return NewStdioFrom(os.Stdin, os.Stdout)
}

// NewStdioFrom returns IO over arbitrary streams. Terminal features are only
// enabled when the streams are *os.File terminals.
func NewStdioFrom(in io.Reader, out io.Writer) *Stdio {
	s := &Stdio{in: bufio.NewReader(in), out: out, inFd: -1, outFd: -1}
	if f, ok := in.(*os.File); ok {
		s.inFd = int(f.Fd())
	}
	if f, ok := out.(*os.File); ok {
		s.outFd = int(f.Fd())
	}
	return s
}

func (s *Stdio) Println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}

func (s *Stdio) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.out, format, a...)
}

func (s *Stdio) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

// ReadInput prints prompt and returns the next line without surrounding spaces.
// A last line without a trailing newline is still returned.
func (s *Stdio) ReadInput(prompt string) (string, error) {
	s.Printf("%s", prompt)
	input, err := s.in.ReadString('\n')
	if err != nil && (err != io.EOF || input == "") {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// ReadPassword reads a line without echo when stdin is a terminal,
// and a plain line otherwise (for example when input is piped).
func (s *Stdio) ReadPassword(prompt string) (string, error) {
	if s.inFd < 0 || !term.IsTerminal(s.inFd) {
		return s.ReadInput(prompt)
	}

	s.Printf("%s", prompt)
	pwBytes, err := term.ReadPassword(s.inFd)
	s.Println("")
	if err != nil {
		return "", err
	}
	return string(pwBytes), nil
}

// IsTerminal reports whether output goes to a terminal.
func (s *Stdio) IsTerminal() bool {
	return s.outFd >= 0 && term.IsTerminal(s.outFd)
}
