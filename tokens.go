package mdtok

import "strconv"

// Token is a typed span over the source text.
type Token struct {
	Kind    Kind
	Start   int
	Length  int
	TagType TagType
	TagRole TagRole
}

// Kind classifies a token.
type Kind uint8

const (
	// KindText is literal content.
	KindText Kind = iota
	// KindEscape is a backslash that escapes the following token.
	KindEscape
	// KindTag is a delimiter belonging to a tag family.
	KindTag
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindEscape:
		return "escape"
	case KindTag:
		return "tag"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// TagType identifies the delimiter family of a tag token. It is the index of
// the family in the TagSet used to lex the source.
type TagType uint8

// TagRole is the pairing status of a tag token.
type TagRole uint8

const (
	// RoleUndefined marks a delimiter whose role is not known yet.
	RoleUndefined TagRole = iota
	// RoleOpening marks the first delimiter of a pair.
	RoleOpening
	// RoleClosing marks the second delimiter of a pair.
	RoleClosing
)

func (r TagRole) String() string {
	switch r {
	case RoleUndefined:
		return "undefined"
	case RoleOpening:
		return "opening"
	case RoleClosing:
		return "closing"
	default:
		return "role(" + strconv.Itoa(int(r)) + ")"
	}
}

// TextToken returns a literal token over [start, start+length).
func TextToken(start, length int) Token {
	return Token{Kind: KindText, Start: start, Length: length}
}

// EscapeToken returns an escape marker over [start, start+length).
func EscapeToken(start, length int) Token {
	return Token{Kind: KindEscape, Start: start, Length: length}
}

// TagToken returns a delimiter token of the given family and role.
func TagToken(typ TagType, role TagRole, start, length int) Token {
	return Token{Kind: KindTag, Start: start, Length: length, TagType: typ, TagRole: role}
}

// End returns the offset one past the last byte of the token.
func (t Token) End() int {
	return t.Start + t.Length
}

// Value returns the source text covered by the token. Out of range spans are
// clipped to src.
func (t Token) Value(src string) string {
	start, end := t.Start, t.End()
	if start > len(src) {
		start = len(src)
	}
	if end > len(src) {
		end = len(src)
	}
	if start < 0 || end < start {
		return ""
	}
	return src[start:end]
}

// AsText returns t reclassified as literal text over the same span.
func (t Token) AsText() Token {
	return TextToken(t.Start, t.Length)
}

// WithRole returns t with its tag role replaced.
func (t Token) WithRole(role TagRole) Token {
	t.TagRole = role
	return t
}

// IsTag reports whether t is a tag token.
func (t Token) IsTag() bool {
	return t.Kind == KindTag
}

func (t Token) String() string {
	span := strconv.Itoa(t.Start) + "+" + strconv.Itoa(t.Length)
	if t.Kind != KindTag {
		return t.Kind.String() + "@" + span
	}
	return t.Kind.String() + "(" + strconv.Itoa(int(t.TagType)) + "," + t.TagRole.String() + ")@" + span
}
