package terms

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/logs"
	"golang.org/x/term"
)

const (
	ctrlC = 3
	ctrlD = 4
)

// TerminalReader reads single key presses in raw mode. Prompt is flushed
// before each read and the key is echoed to Echo. Ctrl-C halts the program
// and Ctrl-D is end of input.
type TerminalReader struct {
	File   *os.File
	Prompt *bufio.Writer
	Echo   io.Writer

	logger logs.Logger
}

var _ io.ByteReader = new(TerminalReader)

func (t *TerminalReader) ReadByte() (byte, error) {
	// pending output is a prompt
	if err := t.Prompt.Flush(); err != nil {
		return 0, err
	}

	fd := int(t.File.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		t.logger.Debug("raw mode", "error", wrap(err))
		return 0, fmt.Errorf("raw mode: %w", err)
	}
	b, err := readKey(t.File)
	if err := term.Restore(fd, state); err != nil {
		t.logger.Warn("restore terminal", "error", wrap(err))
	}
	if err != nil {
		return 0, err
	}

	switch b {
	case ctrlC:
		return 0, bfvm.ErrHalt
	case ctrlD:
		return 0, io.EOF
	}

	if err := echo(t.Echo, b); err != nil {
		return 0, err
	}
	return b, nil
}

func readKey(r io.Reader) (byte, error) {
	var buf [1]byte
	for {
		n, err := r.Read(buf[:])
		if n == 1 {
			return buf[0], nil
		}
		if errors.Is(err, io.EOF) {
			return 0, io.EOF
		}
		if err != nil {
			return 0, err
		}
	}
}

// echo writes b back. Enter arrives as '\r' in raw mode and is shown as a
// line break.
func echo(w io.Writer, b byte) error {
	if b == '\r' {
		_, err := io.WriteString(w, "\r\n")
		return err
	}
	_, err := w.Write([]byte{b})
	return err
}
