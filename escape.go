package mdtok

import "iter"

// RemoveEscaping collapses escape markers into literal text. An escape token
// followed by a non-text token is dropped and the following token becomes
// text; an escape followed by text is kept as text itself. A trailing escape
// token becomes text and ends the sequence.
func RemoveEscaping(tokens []Token) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		escapeNext := false
		for i, tok := range tokens {
			if escapeNext {
				escapeNext = false
				if !yield(tok.AsText()) {
					return
				}
				continue
			}
			if tok.Kind == KindEscape {
				if i+1 >= len(tokens) {
					yield(tok.AsText())
					return
				}
				if tokens[i+1].Kind != KindText {
					escapeNext = true
					continue
				}
				tok = tok.AsText()
			}
			if !yield(tok) {
				return
			}
		}
	}
}
