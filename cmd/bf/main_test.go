package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/bf/bfconfigs"
	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/configs"
	"github.com/reusee/bf/modes"
	"github.com/reusee/bf/sources"
	"github.com/reusee/bf/terms"
	"github.com/reusee/dscope"
)

type testRun struct {
	request sources.Request
	flags   bfconfigs.Flags
	input   string
	newline bool
	stats   bool
}

func runTest(t *testing.T, r testRun) (status int, output string, stderr string) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "input")
	outputPath := filepath.Join(dir, "output")
	if err := os.WriteFile(inputPath, []byte(r.input), 0644); err != nil {
		t.Fatal(err)
	}
	errBuf := new(bytes.Buffer)
	scope := dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() configs.Loader {
			return configs.NewLoader(nil, "")
		},
		func() bfconfigs.Flags {
			return r.flags
		},
		func() sources.Request {
			return r.request
		},
		func() bfconfigs.Newline {
			return bfconfigs.Newline(r.newline)
		},
		func() bfconfigs.ShowStats {
			return bfconfigs.ShowStats(r.stats)
		},
		func() terms.Paths {
			return terms.Paths{
				Input:  inputPath,
				Output: outputPath,
			}
		},
	)
	status = run(context.Background(), scope, errBuf)
	content, err := os.ReadFile(outputPath)
	if err != nil && !os.IsNotExist(err) {
		t.Fatal(err)
	}
	return status, string(content), errBuf.String()
}

func TestRun(t *testing.T) {
	status, output, stderr := runTest(t, testRun{
		request: sources.Request{
			Code: "++++++++[>++++++++<-]>+.",
		},
	})
	if status != 0 {
		t.Fatalf("got %d: %s", status, stderr)
	}
	if output != "A" {
		t.Fatalf("got %q", output)
	}
}

func TestRunEcho(t *testing.T) {
	status, output, stderr := runTest(t, testRun{
		request: sources.Request{
			Code: ",[.,]",
		},
		flags: bfconfigs.Flags{
			EOF: "zero",
		},
		input: "echo",
	})
	if status != 0 {
		t.Fatalf("got %d: %s", status, stderr)
	}
	if output != "echo" {
		t.Fatalf("got %q", output)
	}
}

func TestRunDebug(t *testing.T) {
	status, output, stderr := runTest(t, testRun{
		request: sources.Request{
			Code: "+++.#",
		},
		flags: bfconfigs.Flags{
			Debug: true,
		},
	})
	if status != 0 {
		t.Fatalf("got %d: %s", status, stderr)
	}
	if output != "\x03" {
		t.Fatalf("got %q", output)
	}
	if !strings.Contains(stderr, "Debug: Pointer: 4, Tape Pointer: 0, Cell Value: 3, Tape: [3]") {
		t.Fatalf("got %s", stderr)
	}
}

func TestRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.bf")
	if err := os.WriteFile(path, []byte("+++[>++<-]>."), 0644); err != nil {
		t.Fatal(err)
	}
	status, output, stderr := runTest(t, testRun{
		request: sources.Request{
			Path: path,
		},
	})
	if status != 0 {
		t.Fatalf("got %d: %s", status, stderr)
	}
	if output != "\x06" {
		t.Fatalf("got %q", output)
	}
}

func TestRunErrors(t *testing.T) {
	cellSize := 64

	testCases := []struct {
		name     string
		run      testRun
		expected string
	}{
		{
			name: "underflow",
			run: testRun{
				request: sources.Request{Code: "-"},
				flags:   bfconfigs.Flags{CellWrapping: "off"},
			},
			expected: "Use -cell-wrapping on to enable wrapping.",
		},
		{
			name: "left edge",
			run: testRun{
				request: sources.Request{Code: "<"},
			},
			expected: "Use -tape-wrapping on to enable wrapping.",
		},
		{
			name: "fixed tape",
			run: testRun{
				request: sources.Request{Code: ">"},
				flags:   bfconfigs.Flags{DynamicTape: "off"},
			},
			expected: "-dynamic-tape on",
		},
		{
			name: "brackets",
			run: testRun{
				request: sources.Request{Code: "[[]"},
				flags:   bfconfigs.Flags{CellSize: &cellSize},
			},
			expected: "unmatched bracket",
		},
		{
			name:     "no program",
			run:      testRun{},
			expected: "no input file or code provided",
		},
		{
			name: "bad config",
			run: testRun{
				request: sources.Request{Code: "+"},
				flags:   bfconfigs.Flags{EOF: "sometimes"},
			},
			expected: "invalid configuration",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, _, stderr := runTest(t, tc.run)
			if status != 1 {
				t.Fatalf("got %d", status)
			}
			if !strings.HasPrefix(stderr, "Error: ") {
				t.Fatalf("got %s", stderr)
			}
			if !strings.Contains(stderr, tc.expected) {
				t.Fatalf("got %s", stderr)
			}
		})
	}
}

func TestRunNewlineAndStats(t *testing.T) {
	status, output, stderr := runTest(t, testRun{
		request: sources.Request{Code: "+. comment"},
	})
	if status != 0 {
		t.Fatalf("got %d: %s", status, stderr)
	}
	if output != "\x01" {
		t.Fatalf("got %q", output)
	}
	if strings.Contains(stderr, "Interpreter Statistics") {
		t.Fatal("stats not requested")
	}

	status, output, stderr = runTest(t, testRun{
		request: sources.Request{Code: "+. comment"},
		newline: true,
		stats:   true,
	})
	if status != 0 {
		t.Fatalf("got %d: %s", status, stderr)
	}
	if output != "\x01\n" {
		t.Fatalf("got %q", output)
	}
	for _, expected := range []string{
		"Program Path           : <code>",
		"Program Size           : 10 characters",
		"Executable Code Size   : 2 characters",
		"# of Commands Executed : 2",
	} {
		if !strings.Contains(stderr, expected) {
			t.Fatalf("expected %q in %s", expected, stderr)
		}
	}
}

func TestModuleScope(t *testing.T) {
	scope := dscope.New(
		new(Module),
		modes.ForTest(t),
	)
	scope.Call(func(
		interpret bfvm.Interpret,
		config bfvm.Config,
	) {
		if config != bfvm.DefaultConfig() {
			t.Fatalf("got %+v", config)
		}
		out := new(bytes.Buffer)
		if _, err := interpret(context.Background(), "++++++++[>++++++++<-]>+.", strings.NewReader(""), out); err != nil {
			t.Fatal(err)
		}
		if out.String() != "A" {
			t.Fatalf("got %q", out.String())
		}
	})
}
