package mdtok

import (
	"unicode"
	"unicode/utf8"
)

const escapeByte = '\\'

// Lex splits src into text runs, escape markers and delimiter tokens using
// the families of the default TagSet.
func Lex(src string) []Token {
	return defaultTagSet.Lex(src)
}

// Lex splits src into text runs, escape markers and delimiter tokens.
//
// A delimiter's role follows from its neighbours: space before and content
// after opens, content before and space after closes, content on both sides
// is undefined. A delimiter surrounded by space, or touching a digit, is
// plain text unless it directly follows an escape.
func (s *TagSet) Lex(src string) []Token {
	var out []Token
	textStart := -1
	flushText := func(end int) {
		if textStart >= 0 && end > textStart {
			out = append(out, TextToken(textStart, end-textStart))
		}
		textStart = -1
	}
	for i := 0; i < len(src); {
		if src[i] == escapeByte {
			flushText(i)
			out = append(out, EscapeToken(i, 1))
			i++
			continue
		}
		if typ, n, ok := s.match(src, i); ok {
			escaped := textStart < 0 && len(out) > 0 && out[len(out)-1].Kind == KindEscape
			role, literal := delimiterRole(src, i, i+n)
			if escaped || !literal {
				flushText(i)
				out = append(out, TagToken(typ, role, i, n))
				i += n
				continue
			}
			if textStart < 0 {
				textStart = i
			}
			i += n
			continue
		}
		if textStart < 0 {
			textStart = i
		}
		_, size := utf8.DecodeRuneInString(src[i:])
		i += size
	}
	flushText(len(src))
	return out
}

// delimiterRole classifies the delimiter at src[start:end]. literal is true
// when the delimiter cannot open or close anything.
func delimiterRole(src string, start, end int) (role TagRole, literal bool) {
	prev, next := rune(-1), rune(-1)
	if start > 0 {
		prev, _ = utf8.DecodeLastRuneInString(src[:start])
	}
	if end < len(src) {
		next, _ = utf8.DecodeRuneInString(src[end:])
	}
	if isDigit(prev) || isDigit(next) {
		return RoleUndefined, true
	}
	spaceBefore := prev < 0 || unicode.IsSpace(prev)
	spaceAfter := next < 0 || unicode.IsSpace(next)
	switch {
	case spaceBefore && spaceAfter:
		return RoleUndefined, true
	case spaceBefore:
		return RoleOpening, false
	case spaceAfter:
		return RoleClosing, false
	default:
		return RoleUndefined, false
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
