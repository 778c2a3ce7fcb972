package mdtok

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// ErrUnknownFormat reports an output format name that is not supported.
var ErrUnknownFormat = errors.New("unknown format")

// Format selects the output of Render.
type Format uint8

const (
	// FormatPlain writes wrapped text without styling.
	FormatPlain Format = iota
	// FormatANSI writes wrapped text styled by the theme.
	FormatANSI
	// FormatHTML writes one HTML element per block.
	FormatHTML
)

func (f Format) String() string {
	switch f {
	case FormatPlain:
		return "plain"
	case FormatANSI:
		return "ansi"
	case FormatHTML:
		return "html"
	default:
		return fmt.Sprintf("format(%d)", uint8(f))
	}
}

// ParseFormat returns the Format named by s.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "plain", "text", "txt":
		return FormatPlain, nil
	case "ansi", "term", "terminal":
		return FormatANSI, nil
	case "html":
		return FormatHTML, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownFormat)
	}
}

var sourcePool = sync.Pool{
	New: func() any {
		return new(bytes.Buffer)
	},
}

// RenderRequest configures Render.
type RenderRequest struct {
	Reader  io.Reader
	Writer  io.Writer
	Format  Format
	Width   int
	Theme   Theme
	Tags    *TagSet
	Options []RenderOption
}

// Render reads the whole source from Reader, validates it and writes the
// normalized document to Writer in the requested format.
func Render(req RenderRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("render: reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("render: writer is nil")
	}
	buf := sourcePool.Get().(*bytes.Buffer)
	buf.Reset()
	defer sourcePool.Put(buf)
	if _, err := buf.ReadFrom(req.Reader); err != nil {
		return fmt.Errorf("render: read: %w", err)
	}
	if err := ValidateInput(buf.Bytes()); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return RenderString(buf.String(), req)
}

// RenderString renders src, ignoring req.Reader.
func RenderString(src string, req RenderRequest) error {
	if req.Writer == nil {
		return fmt.Errorf("render: writer is nil")
	}
	cfg := newRenderConfig(req.Options)
	if !cfg.frontMatter {
		if meta, body, ok := SplitFrontMatter(src); ok {
			cfg.logger.Debug("skipped front matter", "bytes", len(meta))
			src = body
		}
	}
	var sink Sink
	switch req.Format {
	case FormatHTML:
		sink = NewHTMLSink(req.Writer)
	case FormatANSI:
		sink = newTerminalSink(req.Writer, req.Width, req.Theme, cfg)
	case FormatPlain:
		sink = newTerminalSink(req.Writer, req.Width, PlainTheme(), cfg)
	default:
		return fmt.Errorf("render: %s: %w", req.Format, ErrUnknownFormat)
	}
	if err := emit(src, sink, req.Tags, cfg); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}
