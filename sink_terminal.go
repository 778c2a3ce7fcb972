package mdtok

import (
	"io"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"

	"pkt.systems/mdtok/internal/palette"
)

// TerminalSink writes styled text for terminals, wrapping every block to the
// configured width. With a theme without styles it writes plain text.
type TerminalSink struct {
	w        io.Writer
	width    int
	styles   Styles
	softWrap bool
	buf      strings.Builder
	base     Style
	open     []Style
	blocks   int
}

// NewTerminalSink creates a terminal sink. A width of zero disables wrapping.
// A nil theme uses DefaultTheme.
func NewTerminalSink(w io.Writer, width int, theme Theme, opts ...RenderOption) *TerminalSink {
	cfg := newRenderConfig(opts)
	return newTerminalSink(w, width, theme, cfg)
}

func newTerminalSink(w io.Writer, width int, theme Theme, cfg renderConfig) *TerminalSink {
	if theme == nil {
		theme = DefaultTheme()
	}
	return &TerminalSink{
		w:        w,
		width:    width,
		styles:   theme.Styles(),
		softWrap: cfg.softWrap,
	}
}

// Width returns the configured wrap width.
func (s *TerminalSink) Width() int {
	return s.width
}

// SetWidth updates the wrap width for blocks that have not started yet.
func (s *TerminalSink) SetWidth(width int) {
	s.width = width
}

// BeginBlock starts buffering a block. Headings keep their '#' marker.
func (s *TerminalSink) BeginBlock(b Block) error {
	s.buf.Reset()
	s.open = s.open[:0]
	s.base = s.styles.Text
	if b.Kind == BlockHeading && b.Level >= 1 && b.Level <= len(s.styles.Heading) {
		s.base = s.styles.Heading[b.Level-1]
		marker := strings.Repeat("#", b.Level)
		if len(b.Lines) > 0 && b.Lines[0] != "" {
			marker += " "
		}
		s.writeStyled(marker)
	}
	return nil
}

// EndBlock wraps and writes the buffered block.
func (s *TerminalSink) EndBlock(Block) error {
	out := s.buf.String()
	s.buf.Reset()
	if s.width > 0 {
		out = wordwrap.String(out, s.width)
		if s.softWrap {
			out = wrap.String(out, s.width)
		}
	}
	if s.blocks > 0 {
		if _, err := io.WriteString(s.w, "\n"); err != nil {
			return err
		}
	}
	s.blocks++
	_, err := io.WriteString(s.w, out+"\n")
	return err
}

// SoftBreak joins paragraph lines with a space.
func (s *TerminalSink) SoftBreak() error {
	s.buf.WriteByte(' ')
	return nil
}

// Text writes text in the current style.
func (s *TerminalSink) Text(text string) error {
	s.writeStyled(text)
	return nil
}

// Open pushes the style of def.
func (s *TerminalSink) Open(def TagDef) error {
	s.open = append(s.open, s.styles.Tag(def.Style))
	return nil
}

// Close pops the innermost style.
func (s *TerminalSink) Close(TagDef) error {
	if len(s.open) > 0 {
		s.open = s.open[:len(s.open)-1]
	}
	return nil
}

// Flush is a no-op; blocks are written as they end.
func (s *TerminalSink) Flush() error {
	return nil
}

func (s *TerminalSink) writeStyled(text string) {
	if text == "" {
		return
	}
	prefix := s.prefix()
	if prefix == "" {
		s.buf.WriteString(text)
		return
	}
	s.buf.WriteString(prefix)
	s.buf.WriteString(text)
	s.buf.WriteString(palette.Reset)
}

func (s *TerminalSink) prefix() string {
	if len(s.open) == 0 {
		return s.base.Prefix
	}
	parts := make([]string, 0, len(s.open)+1)
	parts = append(parts, s.base.Prefix)
	for _, st := range s.open {
		parts = append(parts, st.Prefix)
	}
	return style(parts...).Prefix
}
