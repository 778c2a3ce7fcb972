package mdtok

import (
	"bytes"
	"regexp"
	"strings"
	"testing"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func renderString(t *testing.T, src string, format Format, width int, opts ...RenderOption) string {
	t.Helper()
	var out bytes.Buffer
	err := Render(RenderRequest{
		Reader:  strings.NewReader(src),
		Writer:  &out,
		Format:  format,
		Width:   width,
		Options: opts,
	})
	if err != nil {
		t.Fatalf("render %s: %v", format, err)
	}
	return out.String()
}
