package terms

import (
	"bufio"
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/bf/modes"
	"github.com/reusee/dscope"
)

func pipeStd(t *testing.T, input string) (Std, *os.File) {
	t.Helper()
	inR, inW, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	outR, outW, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		inR.Close()
		outR.Close()
		outW.Close()
	})
	go func() {
		io.WriteString(inW, input)
		inW.Close()
	}()
	return Std{In: inR, Out: outW}, outR
}

func TestOpenPipes(t *testing.T) {
	std, outR := pipeStd(t, "a\x03b")
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		func() Std {
			return std
		},
		func() Paths {
			return Paths{}
		},
	).Call(func(
		open OpenStreams,
	) {
		streams, err := open()
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := streams.In.(*TerminalReader); ok {
			t.Fatal("pipe is not a terminal")
		}
		var got []byte
		for {
			b, err := streams.In.ReadByte()
			if err == io.EOF {
				break
			}
			if err != nil {
				t.Fatal(err)
			}
			got = append(got, b)
			streams.Out.WriteByte(b)
		}
		// byte 3 is plain data on a pipe
		if string(got) != "a\x03b" {
			t.Fatalf("got %q", got)
		}
		if err := streams.Close(); err != nil {
			t.Fatal(err)
		}
	})
	std.Out.Close()
	out, err := io.ReadAll(outR)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "a\x03b" {
		t.Fatalf("got %q", out)
	}
}

func TestOpenFiles(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "in")
	outputPath := filepath.Join(dir, "out")
	if err := os.WriteFile(inputPath, []byte("xyz"), 0644); err != nil {
		t.Fatal(err)
	}
	std, _ := pipeStd(t, "")
	logger := slog.New(slog.DiscardHandler)

	streams, err := Open(std, Paths{Input: inputPath, Output: outputPath}, logger)
	if err != nil {
		t.Fatal(err)
	}
	b, err := streams.In.ReadByte()
	if err != nil {
		t.Fatal(err)
	}
	if b != 'x' {
		t.Fatalf("got %c", b)
	}
	streams.Out.WriteString("done")
	if err := streams.Close(); err != nil {
		t.Fatal(err)
	}
	content, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "done" {
		t.Fatalf("got %s", content)
	}

	_, err = Open(std, Paths{Input: filepath.Join(dir, "missing")}, logger)
	if err == nil {
		t.Fatal("should fail")
	}
}

func TestSynced(t *testing.T) {
	buf := new(bytes.Buffer)
	streams := &Streams{
		Out: bufio.NewWriter(buf),
	}
	streams.Out.WriteString("output ")
	w := streams.Synced(buf)
	io.WriteString(w, "debug")
	if buf.String() != "output debug" {
		t.Fatalf("got %q", buf.String())
	}
}

func TestEcho(t *testing.T) {
	buf := new(bytes.Buffer)
	if err := echo(buf, 'a'); err != nil {
		t.Fatal(err)
	}
	if err := echo(buf, '\r'); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "a\r\n" {
		t.Fatalf("got %q", buf.String())
	}
}

func TestReadKey(t *testing.T) {
	b, err := readKey(strings.NewReader("q"))
	if err != nil || b != 'q' {
		t.Fatalf("got %c %v", b, err)
	}
	if _, err := readKey(strings.NewReader("")); err != io.EOF {
		t.Fatalf("got %v", err)
	}
}

func TestIsTerminal(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	defer w.Close()
	if IsTerminal(r) {
		t.Fatal()
	}
	if IsTerminal(nil) {
		t.Fatal()
	}
}

func TestTerminalEchoTarget(t *testing.T) {
	defer func(fn func(*os.File) bool) {
		isTerminal = fn
	}(isTerminal)
	std, _ := pipeStd(t, "")
	isTerminal = func(f *os.File) bool {
		return f == std.In
	}

	outputPath := filepath.Join(t.TempDir(), "out")
	streams, err := Open(std, Paths{Output: outputPath}, slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatal(err)
	}
	defer streams.Close()
	reader, ok := streams.In.(*TerminalReader)
	if !ok {
		t.Fatalf("got %T", streams.In)
	}
	if reader.Echo != io.Writer(std.Out) {
		t.Fatalf("echo goes to %v", reader.Echo)
	}
	if reader.Prompt != streams.Out {
		t.Fatal("prompt should be the program output")
	}

	if err := echo(reader.Echo, 'k'); err != nil {
		t.Fatal(err)
	}
	if err := streams.Close(); err != nil {
		t.Fatal(err)
	}
	content, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatal(err)
	}
	if len(content) != 0 {
		t.Fatalf("echo leaked into output: %q", content)
	}
}
