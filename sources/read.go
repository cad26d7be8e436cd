package sources

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/logs"
	"github.com/reusee/bf/nets"
)

var (
	ErrNoProgram = errors.New("no input file or code provided")
	ErrConflict  = errors.New("conflicting program sources")
)

type Source struct {
	// Name is the path, URL, "-" or "<code>" the text came from.
	Name string
	Text string
}

type Read func(ctx context.Context) (Source, error)

func (Module) Read(
	request Request,
	stdin Stdin,
	client nets.HTTPClient,
	logger logs.Logger,
) Read {
	return func(ctx context.Context) (source Source, err error) {
		defer func() {
			if err != nil {
				logger.DebugContext(ctx, "read source", "path", request.Path, "error", wrap(err))
			}
		}()

		switch {
		case request.Code != "" && request.Path != "":
			return source, fmt.Errorf("%w: %q cannot be used when a code string is already specified", ErrConflict, request.Path)
		case request.Code != "":
			return Source{
				Name: "<code>",
				Text: request.Code,
			}, nil
		case request.Path == "":
			return source, ErrNoProgram
		}

		var text []byte
		switch {
		case request.Path == "-":
			text, err = io.ReadAll(stdin)
		case isURL(request.Path):
			text, err = fetch(ctx, client, request.Path)
		default:
			text, err = os.ReadFile(request.Path)
		}
		if err != nil {
			return source, fmt.Errorf("%w: unable to read from %s: %w", bfvm.ErrIOFailure, request.Path, err)
		}

		logger.DebugContext(ctx, "source", "path", request.Path, "size", len(text))
		return Source{
			Name: request.Path,
			Text: string(text),
		}, nil
	}
}

func isURL(path string) bool {
	u, err := url.Parse(path)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

var maxRemoteSize int64 = 16 << 20

func fetch(ctx context.Context, client nets.HTTPClient, location string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %s", strings.TrimSpace(resp.Status))
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxRemoteSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(body)) > maxRemoteSize {
		return nil, fmt.Errorf("program larger than %d bytes", maxRemoteSize)
	}
	return body, nil
}
