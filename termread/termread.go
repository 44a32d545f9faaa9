// Package termread reads single characters from a terminal without echo.
//
// Raw-mode handling is isolated behind the CharReader interface so that
// the rest of the toolkit never touches terminal state, and tests can
// substitute a scripted reader.
package termread

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// CharReader reads exactly one character from its source. Implementations
// must not echo the character.
type CharReader interface {
	ReadChar() (byte, error)
}

// TTY reads single characters from a terminal file. Each read puts the
// terminal into raw mode (no echo, no line buffering) and restores the
// previous state before returning, on every exit path.
type TTY struct {
	f *os.File
}

// NewTTY returns a TTY reading from f, which must be a terminal.
func NewTTY(f *os.File) *TTY {
	return &TTY{f: f}
}

// ReadChar reads one byte with echo disabled.
func (t *TTY) ReadChar() (byte, error) {
	fd := int(t.f.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return 0, fmt.Errorf("enter raw mode: %w", err)
	}
	defer term.Restore(fd, state) //nolint:errcheck // best-effort restore

	var buf [1]byte
	n, err := t.f.Read(buf[:])
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, io.EOF
	}
	return buf[0], nil
}

// ReaderChars reads single bytes from any io.Reader. It is the fallback
// for non-terminal input (pipes, scripted tests); no echo suppression is
// needed because nothing echoes.
type ReaderChars struct {
	r io.ByteReader
}

// NewReaderChars wraps r for single-character reads. Readers that are not
// already byte readers are buffered; callers sharing r should pass a
// *bufio.Reader they also read lines from, so no input is lost.
func NewReaderChars(r io.Reader) *ReaderChars {
	if br, ok := r.(io.ByteReader); ok {
		return &ReaderChars{r: br}
	}
	return &ReaderChars{r: bufio.NewReader(r)}
}

// ReadChar reads one byte.
func (r *ReaderChars) ReadChar() (byte, error) {
	return r.r.ReadByte()
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Best selects the implementation for in: raw-mode TTY reads when in is a
// terminal file, plain byte reads otherwise.
func Best(in io.Reader) CharReader {
	if f, ok := in.(*os.File); ok && IsTerminal(f) {
		return NewTTY(f)
	}
	return NewReaderChars(in)
}
