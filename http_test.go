package mdhtml

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestParseURL(t *testing.T) {
	t.Parallel()
	accepts := make(chan string, 2)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accepts <- r.Header.Get("Accept")
		_, _ = w.Write([]byte("# Remote\n\n~~old~~ new\n"))
	}))
	defer srv.Close()

	res, err := ParseURL(context.Background(), URLRequest{URL: srv.URL, Client: srv.Client()})
	if err != nil {
		t.Fatalf("ParseURL: %v", err)
	}
	if res.HTML != "<h1>Remote</h1><p><del>old</del> new</p>" || res.WordCount != 3 {
		t.Fatalf("unexpected result %+v", res)
	}
	if accept := <-accepts; !strings.HasPrefix(accept, "text/markdown") {
		t.Fatalf("unexpected Accept header %q", accept)
	}

	res, err = ParseURL(context.Background(), URLRequest{
		URL:    srv.URL,
		Client: srv.Client(),
		Parser: NewParser(WithDialect(Basic)),
	})
	if err != nil {
		t.Fatalf("ParseURL basic: %v", err)
	}
	if !strings.Contains(res.HTML, "~~old~~") {
		t.Fatalf("basic parser not used: %q", res.HTML)
	}
}

func TestParseURLErrors(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/missing":
			http.NotFound(w, r)
		case "/binary":
			_, _ = w.Write([]byte{'a', 0x00, 'b'})
		case "/large":
			_, _ = w.Write([]byte(strings.Repeat("a", 64)))
		case "/slow":
			select {
			case <-r.Context().Done():
			case <-time.After(5 * time.Second):
			}
		}
	}))
	defer srv.Close()

	tests := []struct {
		name string
		req  URLRequest
		want string
	}{
		{name: "empty url", req: URLRequest{}, want: "URL is required"},
		{name: "scheme", req: URLRequest{URL: "ftp://example.com/a.md"}, want: "unsupported scheme"},
		{name: "status", req: URLRequest{URL: srv.URL + "/missing"}, want: "404"},
		{name: "binary", req: URLRequest{URL: srv.URL + "/binary"}, want: "binary input"},
		{name: "too large", req: URLRequest{URL: srv.URL + "/large", MaxBytes: 16}, want: "exceeds 16 bytes"},
	}
	for _, tc := range tests {
		_, err := ParseURL(context.Background(), tc.req)
		if err == nil || !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%s: expected error containing %q, got %v", tc.name, tc.want, err)
		}
		if !strings.HasPrefix(err.Error(), "parse url:") {
			t.Fatalf("%s: missing prefix in %q", tc.name, err.Error())
		}
	}

	_, err := ParseURL(context.Background(), URLRequest{URL: srv.URL + "/binary"})
	if !errors.Is(err, ErrBinaryInput) {
		t.Fatalf("expected wrapped ErrBinaryInput, got %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if _, err := ParseURL(ctx, URLRequest{URL: srv.URL + "/slow"}); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline error, got %v", err)
	}
}
