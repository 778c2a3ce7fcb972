package mdtok

import (
	"strings"
	"testing"
)

func TestSegments(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []Token
	}{
		{
			name: "pair in the middle",
			src:  "x _a_ y",
			want: []Token{TextToken(0, 2), em(RoleOpening, 2, 1), TextToken(3, 1), em(RoleClosing, 4, 1), TextToken(5, 2)},
		},
		{
			name: "escape markers are dropped",
			src:  `Escaped \_not em\_ here.`,
			want: []Token{TextToken(0, 8), TextToken(9, 7), TextToken(17, 7)},
		},
		{
			name: "escaped escape",
			src:  `\\`,
			want: []Token{TextToken(1, 1)},
		},
		{
			name: "trailing escape is literal",
			src:  `a\`,
			want: []Token{TextToken(0, 2)},
		},
		{
			name: "demoted delimiters collapse into text",
			src:  "Unclosed _start",
			want: []Token{TextToken(0, 15)},
		},
		{
			name: "nested",
			src:  "__a _b_ c__",
			want: []Token{
				strong(RoleOpening, 0, 2),
				TextToken(2, 2),
				em(RoleOpening, 4, 1),
				TextToken(5, 1),
				em(RoleClosing, 6, 1),
				TextToken(7, 2),
				strong(RoleClosing, 9, 2),
			},
		},
		{
			name: "empty",
			src:  "",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assertTokens(t, tc.want, Segments(tc.src, nil))
		})
	}
}

func TestSegmentsRebuildVisibleText(t *testing.T) {
	cases := map[string]string{
		"Plain _emphasis_ and __strong__ text.": "Plain emphasis and strong text.",
		`Escaped \_not em\_ here.`:              "Escaped _not em_ here.",
		`a \\_b_`:                               `a \b`,
		"Words like snake_case_name pair up.":   "Words like snakecasename pair up.",
	}
	for src, want := range cases {
		var b strings.Builder
		for _, seg := range Segments(src, nil) {
			if !seg.IsTag() {
				b.WriteString(seg.Value(src))
			}
		}
		if b.String() != want {
			t.Fatalf("src %q: got %q, want %q", src, b.String(), want)
		}
	}
}

func TestSegmentsStats(t *testing.T) {
	_, stats := DefaultTagSet().segments("_a_ _b and ~~c~~")
	if stats.lexed != 5 || stats.paired != 4 {
		t.Fatalf("unexpected stats %+v", stats)
	}
}
