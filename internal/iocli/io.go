// Package iocli abstracts the terminal so commands can be tested with a mock.
package iocli

//go:generate moq -out io_mock.go . IO

// IO ввод-вывод командной строки.
// Write позволяет выполнять text/template прямо в терминал.
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	Write(p []byte) (n int, err error)

	// ReadInput prints prompt and returns one trimmed line of input.
	ReadInput(prompt string) (string, error)
	// ReadPassword reads a line without echo when stdin is a terminal.
	ReadPassword(prompt string) (string, error)
	// IsTerminal reports whether output goes to an interactive terminal.
	IsTerminal() bool
}
