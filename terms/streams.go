package terms

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/reusee/bf/logs"
	"golang.org/x/term"
)

// Streams are the byte streams of one run. Out is buffered and flushed
// before every interactive read and on Close.
type Streams struct {
	In  io.ByteReader
	Out *bufio.Writer

	closers []io.Closer
}

func (s *Streams) Close() error {
	err := s.Out.Flush()
	for _, c := range s.closers {
		err = errors.Join(err, c.Close())
	}
	return err
}

// Synced returns a writer that flushes Out before writing to w, so that
// lines on w follow the program output already produced.
func (s *Streams) Synced(w io.Writer) io.Writer {
	return syncedWriter{
		flush:  s.Out.Flush,
		Writer: w,
	}
}

type syncedWriter struct {
	flush func() error
	io.Writer
}

func (s syncedWriter) Write(p []byte) (int, error) {
	if err := s.flush(); err != nil {
		return 0, err
	}
	return s.Writer.Write(p)
}

type OpenStreams func() (*Streams, error)

func (Module) OpenStreams(
	std Std,
	paths Paths,
	logger logs.Logger,
) OpenStreams {
	return func() (*Streams, error) {
		return Open(std, paths, logger)
	}
}

func Open(std Std, paths Paths, logger logs.Logger) (_ *Streams, err error) {
	streams := new(Streams)
	defer func() {
		if err != nil {
			for _, c := range streams.closers {
				c.Close()
			}
		}
	}()

	// output
	out := io.Writer(std.Out)
	if paths.Output != "" {
		f, err := os.Create(paths.Output)
		if err != nil {
			return nil, fmt.Errorf("open output: %w", err)
		}
		streams.closers = append(streams.closers, f)
		out = f
	}
	streams.Out = bufio.NewWriter(out)

	// input
	switch {
	case paths.Input != "":
		f, err := os.Open(paths.Input)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		streams.closers = append(streams.closers, f)
		streams.In = bufio.NewReader(f)
	case isTerminal(std.In):
		logger.Debug("interactive input")
		streams.In = &TerminalReader{
			File:   std.In,
			Prompt: streams.Out,
			// key presses belong on the terminal, never in a redirected output
			Echo:   std.Out,
			logger: logger,
		}
	default:
		streams.In = bufio.NewReader(std.In)
	}

	return streams, nil
}

var isTerminal = IsTerminal

func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}
