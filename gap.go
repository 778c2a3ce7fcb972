package mdtok

// TextBetween returns the literal token spanning the gap between the end of a
// and the start of b. ok is false when the gap is empty or negative.
func TextBetween(a, b Token) (tok Token, ok bool) {
	start := a.End()
	length := b.Start - start
	if length <= 0 {
		return Token{}, false
	}
	return TextToken(start, length), true
}

// TextBefore returns the literal token between the start of the source and tag.
func TextBefore(tag Token) (Token, bool) {
	return TextBetween(TagToken(0, RoleUndefined, 0, 0), tag)
}

// TextAfter returns the literal token between tag and the byte after end,
// where end is the index of the last source byte.
func TextAfter(tag Token, end int) (Token, bool) {
	return TextBetween(tag, TagToken(0, RoleUndefined, end+1, 0))
}

// AppendTextBetween appends the gap between a and b to dst, if any.
func AppendTextBetween(dst []Token, a, b Token) []Token {
	if tok, ok := TextBetween(a, b); ok {
		dst = append(dst, tok)
	}
	return dst
}

// AppendTextBefore appends the gap before tag to dst, if any.
func AppendTextBefore(dst []Token, tag Token) []Token {
	if tok, ok := TextBefore(tag); ok {
		dst = append(dst, tok)
	}
	return dst
}

// AppendTextAfter appends the gap after tag up to and including end, if any.
func AppendTextAfter(dst []Token, tag Token, end int) []Token {
	if tok, ok := TextAfter(tag, end); ok {
		dst = append(dst, tok)
	}
	return dst
}
