package iojson

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// ErrTerminalInput is returned when input is requested from stdin but
// stdin is an interactive terminal.
var ErrTerminalInput = errors.New("no input provided (stdin is a terminal); pass a file or pipe JSON input")

// FileReader binds a --file flag and decodes its target as T. The path "-"
// reads from stdin.
type FileReader[T any] struct {
	path string
}

// Flag returns the --file flag bound to the reader.
func (fr *FileReader[T]) Flag(usage string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "file",
		Aliases:     []string{"f"},
		Usage:       usage,
		Destination: &fr.path,
	}
}

// IsSet reports whether a file was given.
func (fr *FileReader[T]) IsSet() bool {
	return fr.path != ""
}

// Read decodes the flag's target. stdin is used for "-".
func (fr *FileReader[T]) Read(stdin io.Reader) (T, error) {
	if fr.path == "-" {
		if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			var zero T
			return zero, ErrTerminalInput
		}
		return Decode[T](stdin)
	}

	f, err := os.Open(fr.path)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode[T](f)
}
