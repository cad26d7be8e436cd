package nets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/reusee/bf/configs"
	"github.com/reusee/bf/modes"
	"github.com/reusee/dscope"
)

func testScope(t *testing.T) dscope.Scope {
	return dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
	)
}

func TestIsLocalAddr(t *testing.T) {
	testScope(t).Call(func(
		isLocalAddr IsLocalAddr,
	) {
		for addr, expected := range map[string]bool{
			"127.0.0.1:10000": true,
			"[::1]:80":        true,
			"192.168.1.2":     true,
			"10.0.0.1:53":     true,
			"8.8.8.8:53":      false,
			"1.1.1.1":         false,
		} {
			yes, err := isLocalAddr(addr)
			if err != nil {
				t.Fatal(err)
			}
			if yes != expected {
				t.Fatalf("%s: got %v", addr, yes)
			}
		}
	})
}

func TestProxyAddr(t *testing.T) {
	testScope(t).Call(func(
		addr ProxyAddr,
		getURL GetProxyURL,
		getDialer GetProxyDialer,
	) {
		if addr != "" {
			t.Fatalf("got %s", addr)
		}
		u, err := getURL()
		if err != nil {
			t.Fatal(err)
		}
		if u != nil {
			t.Fatalf("got %v", u)
		}
		if _, err := getDialer(); err != nil {
			t.Fatal(err)
		}
	})

	testScope(t).Fork(
		func() ProxyAddr {
			return "socks://127.0.0.1:1080"
		},
	).Call(func(
		getURL GetProxyURL,
		getDialer GetProxyDialer,
	) {
		u, err := getURL()
		if err != nil {
			t.Fatal(err)
		}
		if u.Scheme != "socks5" {
			t.Fatalf("got %s", u.Scheme)
		}
		dialer, err := getDialer()
		if err != nil {
			t.Fatal(err)
		}
		if dialer == nil {
			t.Fatal()
		}
	})
}

func TestHTTPClient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "+++.")
	}))
	defer server.Close()

	// the test server is local, so the proxy is bypassed
	testScope(t).Fork(
		func() ProxyAddr {
			return "socks5://127.0.0.1:1"
		},
	).Call(func(
		client HTTPClient,
	) {
		req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, server.URL, nil)
		if err != nil {
			t.Fatal(err)
		}
		resp, err := client.Do(req)
		if err != nil {
			t.Fatal(err)
		}
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			t.Fatal(err)
		}
		if string(body) != "+++." {
			t.Fatalf("got %s", body)
		}
	})
}
