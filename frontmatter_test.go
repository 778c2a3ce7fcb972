package mdtok

import (
	"strings"
	"testing"
)

func TestSplitFrontMatter(t *testing.T) {
	tests := []struct {
		name string
		src  string
		meta string
		body string
		ok   bool
	}{
		{
			name: "yaml",
			src:  "---\ntitle: Post\ndate: 2026-02-09\n---\n\n# Hello\n",
			meta: "title: Post\ndate: 2026-02-09\n",
			body: "\n# Hello\n",
			ok:   true,
		},
		{
			name: "toml with crlf",
			src:  "+++\r\ntitle = \"Post\"\r\n+++\r\nBody",
			meta: "title = \"Post\"\r\n",
			body: "Body",
			ok:   true,
		},
		{
			name: "json",
			src:  ";;;\n{\"title\": \"Post\"}\n;;;\n",
			meta: "{\"title\": \"Post\"}\n",
			body: "",
			ok:   true,
		},
		{
			name: "byte order mark",
			src:  "\ufeff---\na: 1\n---\nx",
			meta: "a: 1\n",
			body: "x",
			ok:   true,
		},
		{
			name: "unclosed",
			src:  "---\ntitle: Post\n\n# Hello\n",
			body: "---\ntitle: Post\n\n# Hello\n",
		},
		{
			name: "no metadata",
			src:  "---\n# Keep\n---\n\nTail\n",
			body: "---\n# Keep\n---\n\nTail\n",
		},
		{
			name: "not at start",
			src:  "# Intro\n\n+++\ntitle = \"Keep me\"\n+++\n",
			body: "# Intro\n\n+++\ntitle = \"Keep me\"\n+++\n",
		},
		{
			name: "empty",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			meta, body, ok := SplitFrontMatter(tc.src)
			if meta != tc.meta || body != tc.body || ok != tc.ok {
				t.Fatalf("got (%q, %q, %v), want (%q, %q, %v)", meta, body, ok, tc.meta, tc.body, tc.ok)
			}
		})
	}
}

func TestRenderOmitsFrontMatter(t *testing.T) {
	src := "---\ntitle: Skip\n---\n\nBody _x_\n\n---\nkeep: yes\n---\n"
	out := renderString(t, src, FormatPlain, 0)
	if strings.Contains(out, "title: Skip") {
		t.Fatalf("unexpected front matter in output: %q", out)
	}
	for _, want := range []string{"Body x", "keep: yes"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output: %q", want, out)
		}
	}
	kept := renderString(t, src, FormatPlain, 0, WithFrontMatter(true))
	if !strings.Contains(kept, "title: Skip") {
		t.Fatalf("expected front matter to be kept: %q", kept)
	}
}
