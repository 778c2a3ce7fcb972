package mdtok

import "testing"

func TestTextBetween(t *testing.T) {
	tok, ok := TextBetween(em(RoleOpening, 0, 1), em(RoleClosing, 4, 1))
	if !ok || tok != TextToken(1, 3) {
		t.Fatalf("expected text 1+3, got %v %v", tok, ok)
	}
	if tok, ok := TextBetween(em(RoleOpening, 0, 2), em(RoleClosing, 2, 1)); ok {
		t.Fatalf("expected no text for adjacent tags, got %v", tok)
	}
	if tok, ok := TextBetween(em(RoleOpening, 3, 2), em(RoleClosing, 1, 1)); ok {
		t.Fatalf("expected no text for reversed tags, got %v", tok)
	}
}

func TestTextBeforeAndAfter(t *testing.T) {
	src := "ab_c_de"
	open, closing := em(RoleOpening, 2, 1), em(RoleClosing, 4, 1)

	before, ok := TextBefore(open)
	if !ok || before.Value(src) != "ab" {
		t.Fatalf("unexpected before %v %v", before, ok)
	}
	after, ok := TextAfter(closing, len(src)-1)
	if !ok || after.Value(src) != "de" {
		t.Fatalf("unexpected after %v %v", after, ok)
	}
	if tok, ok := TextBefore(em(RoleOpening, 0, 1)); ok {
		t.Fatalf("expected nothing before a leading tag, got %v", tok)
	}
	if tok, ok := TextAfter(em(RoleClosing, 6, 1), len(src)-1); ok {
		t.Fatalf("expected nothing after a trailing tag, got %v", tok)
	}
}

func TestAppendTextHelpers(t *testing.T) {
	src := "x_y_z"
	open, closing := em(RoleOpening, 1, 1), em(RoleClosing, 3, 1)
	var out []Token
	out = AppendTextBefore(out, open)
	out = append(out, open)
	out = AppendTextBetween(out, open, closing)
	out = append(out, closing)
	out = AppendTextAfter(out, closing, len(src)-1)
	want := []Token{TextToken(0, 1), open, TextToken(2, 1), closing, TextToken(4, 1)}
	assertTokens(t, want, out)

	var empty []Token
	empty = AppendTextBetween(empty, open, em(RoleClosing, 2, 1))
	empty = AppendTextBefore(empty, em(RoleOpening, 0, 1))
	empty = AppendTextAfter(empty, em(RoleClosing, 4, 1), len(src)-1)
	if len(empty) != 0 {
		t.Fatalf("expected no zero-length text, got %v", empty)
	}
}
