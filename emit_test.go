package mdtok

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// recordingSink records every event as a short string.
type recordingSink struct {
	events []string
	failOn string
}

var errSinkFailed = errors.New("sink failed")

func (s *recordingSink) record(ev string) error {
	s.events = append(s.events, ev)
	if s.failOn != "" && strings.HasPrefix(ev, s.failOn) {
		return errSinkFailed
	}
	return nil
}

func (s *recordingSink) BeginBlock(b Block) error { return s.record("begin " + b.Kind.String()) }
func (s *recordingSink) EndBlock(b Block) error   { return s.record("end " + b.Kind.String()) }
func (s *recordingSink) SoftBreak() error         { return s.record("break") }
func (s *recordingSink) Text(text string) error   { return s.record("text " + text) }
func (s *recordingSink) Open(def TagDef) error    { return s.record("open " + def.Name) }
func (s *recordingSink) Close(def TagDef) error   { return s.record("close " + def.Name) }
func (s *recordingSink) Flush() error             { return s.record("flush") }

func TestEmitEvents(t *testing.T) {
	sink := &recordingSink{}
	if err := Emit("# A _b_\n\nx __y__\nz", sink, nil); err != nil {
		t.Fatalf("emit: %v", err)
	}
	want := []string{
		"begin heading",
		"text A ",
		"open emphasis",
		"text b",
		"close emphasis",
		"end heading",
		"begin paragraph",
		"text x ",
		"open strong",
		"text y",
		"close strong",
		"break",
		"text z",
		"end paragraph",
		"flush",
	}
	if diff := cmp.Diff(want, sink.events); diff != "" {
		t.Fatalf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestEmitPairsDoNotSpanLines(t *testing.T) {
	sink := &recordingSink{}
	if err := Emit("_a\nb_", sink, nil); err != nil {
		t.Fatalf("emit: %v", err)
	}
	for _, ev := range sink.events {
		if strings.HasPrefix(ev, "open") {
			t.Fatalf("unexpected tag across lines: %v", sink.events)
		}
	}
}

func TestEmitSegmentsReopensCrossedPairs(t *testing.T) {
	line := "_a __b_ c__"
	segs := []Token{
		em(RoleOpening, 0, 1),
		TextToken(1, 2),
		strong(RoleOpening, 3, 2),
		TextToken(5, 1),
		em(RoleClosing, 6, 1),
		TextToken(7, 2),
		strong(RoleClosing, 9, 2),
	}
	sink := &recordingSink{}
	if err := emitSegments(sink, line, segs, DefaultTagSet()); err != nil {
		t.Fatalf("emit segments: %v", err)
	}
	want := []string{
		"open emphasis",
		"text a ",
		"open strong",
		"text b",
		"close strong",
		"close emphasis",
		"open strong",
		"text  c",
		"close strong",
	}
	if diff := cmp.Diff(want, sink.events); diff != "" {
		t.Fatalf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestEmitSegmentsIgnoresStrayCloser(t *testing.T) {
	sink := &recordingSink{}
	segs := []Token{TextToken(0, 1), em(RoleClosing, 1, 1)}
	if err := emitSegments(sink, "a_", segs, DefaultTagSet()); err != nil {
		t.Fatalf("emit segments: %v", err)
	}
	if diff := cmp.Diff([]string{"text a"}, sink.events); diff != "" {
		t.Fatalf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestEmitStopsOnSinkError(t *testing.T) {
	for _, failOn := range []string{"begin", "text", "open", "close", "break", "end", "flush"} {
		t.Run(failOn, func(t *testing.T) {
			sink := &recordingSink{failOn: failOn}
			err := Emit("a _b_\nc", sink, nil)
			if !errors.Is(err, errSinkFailed) {
				t.Fatalf("expected sink error, got %v", err)
			}
			if last := sink.events[len(sink.events)-1]; !strings.HasPrefix(last, failOn) {
				t.Fatalf("expected to stop at %q, stopped at %q", failOn, last)
			}
		})
	}
}

func TestEmitLogsStatistics(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	if err := Emit("_a_ _b\n\nc", &recordingSink{}, nil, WithLogger(logger)); err != nil {
		t.Fatalf("emit: %v", err)
	}
	out := logs.String()
	for _, want := range []string{"normalized document", "blocks=2", "delimiters=3", "paired=2", "demoted=1"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in log output %q", want, out)
		}
	}
}

func TestEmitWithoutHeadings(t *testing.T) {
	sink := &recordingSink{}
	if err := Emit("# title", sink, nil, WithHeadings(false)); err != nil {
		t.Fatalf("emit: %v", err)
	}
	if sink.events[0] != "begin paragraph" || sink.events[1] != "text # title" {
		t.Fatalf("unexpected events %v", sink.events)
	}
}
