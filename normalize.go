package mdtok

import (
	"cmp"
	"slices"
)

// Normalize runs the escape and pairing passes over tokens lexed from src and
// returns the result in document order.
func Normalize(src string, tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))
	for tok := range RemoveUnpaired(RemoveEscaping(tokens), src) {
		out = append(out, tok)
	}
	slices.SortStableFunc(out, func(a, b Token) int {
		return cmp.Compare(a.Start, b.Start)
	})
	return out
}

// Segments returns the inline source of src as resolved tags with the literal
// text between them rebuilt from the gaps. Adjacent literal tokens, including
// demoted delimiters, collapse into a single text segment; consumed escape
// markers are left out.
func Segments(src string, set *TagSet) []Token {
	if set == nil {
		set = DefaultTagSet()
	}
	segs, _ := set.segments(src)
	return segs
}

// inlineStats counts delimiters seen by the lexer and those left paired.
type inlineStats struct {
	lexed  int
	paired int
}

func (st *inlineStats) add(o inlineStats) {
	st.lexed += o.lexed
	st.paired += o.paired
}

func (s *TagSet) segments(src string) ([]Token, inlineStats) {
	var stats inlineStats
	lexed := s.Lex(src)
	for _, tok := range lexed {
		if tok.IsTag() {
			stats.lexed++
		}
	}
	// Boundaries are the resolved tags plus the escape markers consumed by
	// the escape pass. Consumed markers are the holes between consecutive
	// normalized tokens; they bound text but are not rendered.
	var bounds []Token
	prev := TagToken(0, RoleUndefined, 0, 0)
	for _, tok := range Normalize(src, lexed) {
		if hole, ok := TextBetween(prev, tok); ok {
			bounds = append(bounds, EscapeToken(hole.Start, hole.Length))
		}
		if tok.IsTag() {
			bounds = append(bounds, tok)
			stats.paired++
		}
		prev = tok
	}
	if len(bounds) == 0 {
		if src == "" {
			return nil, stats
		}
		return []Token{TextToken(0, len(src))}, stats
	}
	out := make([]Token, 0, 2*len(bounds)+1)
	out = AppendTextBefore(out, bounds[0])
	for i, b := range bounds {
		if i > 0 {
			out = AppendTextBetween(out, bounds[i-1], b)
		}
		if b.IsTag() {
			out = append(out, b)
		}
	}
	return AppendTextAfter(out, bounds[len(bounds)-1], len(src)-1), stats
}
