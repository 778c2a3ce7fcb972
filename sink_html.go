package mdtok

import (
	"bytes"
	"html"
	"io"
	"strconv"
)

type htmlSink struct {
	w   io.Writer
	buf bytes.Buffer
}

// NewHTMLSink returns a Sink writing HTML, one block per line.
func NewHTMLSink(w io.Writer) Sink {
	return &htmlSink{w: w}
}

func (s *htmlSink) BeginBlock(b Block) error {
	s.buf.Reset()
	s.buf.WriteByte('<')
	s.buf.WriteString(blockElement(b))
	s.buf.WriteByte('>')
	return nil
}

func (s *htmlSink) EndBlock(b Block) error {
	s.buf.WriteString("</")
	s.buf.WriteString(blockElement(b))
	s.buf.WriteString(">\n")
	_, err := s.w.Write(s.buf.Bytes())
	s.buf.Reset()
	return err
}

func (s *htmlSink) SoftBreak() error {
	s.buf.WriteByte('\n')
	return nil
}

func (s *htmlSink) Text(text string) error {
	s.buf.WriteString(html.EscapeString(text))
	return nil
}

func (s *htmlSink) Open(def TagDef) error {
	s.buf.WriteByte('<')
	s.buf.WriteString(def.Element)
	s.buf.WriteByte('>')
	return nil
}

func (s *htmlSink) Close(def TagDef) error {
	s.buf.WriteString("</")
	s.buf.WriteString(def.Element)
	s.buf.WriteByte('>')
	return nil
}

func (s *htmlSink) Flush() error {
	return nil
}

func blockElement(b Block) string {
	if b.Kind == BlockHeading {
		return "h" + strconv.Itoa(b.Level)
	}
	return "p"
}
