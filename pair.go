package mdtok

import (
	"iter"
	"strings"
)

// tokenStack is a LIFO of token values.
type tokenStack []Token

func (s *tokenStack) push(t Token) {
	*s = append(*s, t)
}

func (s *tokenStack) pop() Token {
	old := *s
	t := old[len(old)-1]
	*s = old[:len(old)-1]
	return t
}

func (s tokenStack) top() (Token, bool) {
	if len(s) == 0 {
		return Token{}, false
	}
	return s[len(s)-1], true
}

// flush yields every entry as text, oldest pushed first, and empties the stack.
func (s *tokenStack) flush(yield func(Token) bool) bool {
	entries := *s
	*s = entries[:0]
	for _, t := range entries {
		if !yield(t.AsText()) {
			return false
		}
	}
	return true
}

// pairResolver carries the two stacks of a single RemoveUnpaired pass.
type pairResolver struct {
	src     string
	openers tokenStack
	pending tokenStack
}

// RemoveUnpaired resolves every tag token to an opening or closing role, or
// demotes it to text. Tokens are emitted in resolution order: a pair is
// emitted opener first as soon as its closer is seen, so an opener may follow
// text that precedes it in src. src is consulted only to check whether a
// candidate pair is separated by a space.
func RemoveUnpaired(tokens iter.Seq[Token], src string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		r := &pairResolver{src: src}
		for tok := range tokens {
			if !r.step(tok, yield) {
				return
			}
		}
		if !r.pending.flush(yield) {
			return
		}
		r.openers.flush(yield)
	}
}

func (r *pairResolver) step(tok Token, yield func(Token) bool) bool {
	if tok.Kind == KindText {
		if strings.Contains(tok.Value(r.src), " ") {
			if !r.pending.flush(yield) {
				return false
			}
		}
		return yield(tok)
	}
	if tok.Kind != KindTag {
		return yield(tok)
	}
	switch tok.TagRole {
	case RoleOpening:
		r.openers.push(tok)
		return true
	case RoleClosing:
		return r.close(tok, yield)
	case RoleUndefined:
		return r.resolveUndefined(tok, yield)
	default:
		return yield(tok)
	}
}

func (r *pairResolver) close(tok Token, yield func(Token) bool) bool {
	if len(r.openers) == 0 {
		if top, ok := r.pending.top(); ok && top.TagType == tok.TagType {
			r.pending.pop()
			return yield(top.WithRole(RoleOpening)) && yield(tok)
		}
		return yield(tok.AsText())
	}
	opener := r.openers.pop()
	if opener.TagType != tok.TagType {
		opener = opener.AsText()
		tok = tok.AsText()
	}
	return yield(opener) && yield(tok)
}

func (r *pairResolver) resolveUndefined(tok Token, yield func(Token) bool) bool {
	if top, ok := r.pending.top(); ok {
		if top.TagType != tok.TagType {
			r.pending.push(tok)
			return true
		}
		r.pending.pop()
		return yield(top.WithRole(RoleOpening)) && yield(tok.WithRole(RoleClosing))
	}
	opener, ok := r.openers.top()
	if !ok || opener.TagType != tok.TagType || r.spaceBetween(opener, tok) {
		r.pending.push(tok)
		return true
	}
	r.openers.pop()
	return yield(opener) && yield(tok.WithRole(RoleClosing))
}

// spaceBetween reports whether the source between the end of a and the start
// of b contains a space.
func (r *pairResolver) spaceBetween(a, b Token) bool {
	start, end := a.End(), b.Start
	if start < 0 || end > len(r.src) || start >= end {
		return false
	}
	return strings.IndexByte(r.src[start:end], ' ') >= 0
}
