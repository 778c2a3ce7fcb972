package mdtok

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHTTPRender(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/doc.md" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("# Hi\n\n_a_ b"))
	}))
	defer server.Close()

	var out bytes.Buffer
	err := HTTPRender(context.Background(), HTTPRenderRequest{
		URL:    server.URL + "/doc.md",
		Client: server.Client(),
		Writer: &out,
		Format: FormatHTML,
	})
	if err != nil {
		t.Fatalf("http render: %v", err)
	}
	if want := "<h1>Hi</h1>\n<p><em>a</em> b</p>\n"; out.String() != want {
		t.Fatalf("got %q, want %q", out.String(), want)
	}

	out.Reset()
	err = HTTPRender(context.Background(), HTTPRenderRequest{URL: server.URL + "/missing", Writer: &out})
	if err == nil || !strings.Contains(err.Error(), "404") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestHTTPRenderValidation(t *testing.T) {
	var out bytes.Buffer
	if err := HTTPRender(context.Background(), HTTPRenderRequest{Writer: &out}); err == nil {
		t.Fatalf("expected error for empty URL")
	}
	if err := HTTPRender(context.Background(), HTTPRenderRequest{URL: "http://example.invalid"}); err == nil {
		t.Fatalf("expected error for nil writer")
	}
	err := HTTPRender(context.Background(), HTTPRenderRequest{URL: "ftp://example.invalid/x", Writer: &out})
	if err == nil || !strings.Contains(err.Error(), "unsupported scheme") {
		t.Fatalf("expected scheme error, got %v", err)
	}
}

func TestHTTPRenderCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("x"))
	}))
	defer server.Close()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := HTTPRender(ctx, HTTPRenderRequest{URL: server.URL, Writer: &bytes.Buffer{}})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
