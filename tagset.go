package mdtok

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode"
)

var (
	// ErrEmptyDelimiter reports a tag definition without a delimiter.
	ErrEmptyDelimiter = errors.New("empty delimiter")
	// ErrDuplicateDelimiter reports two tag definitions sharing a delimiter.
	ErrDuplicateDelimiter = errors.New("duplicate delimiter")
	// ErrDelimiterHasEscape reports a delimiter containing a backslash or whitespace.
	ErrDelimiterHasEscape = errors.New("delimiter contains backslash or whitespace")
	// ErrTooManyTags reports more tag definitions than TagType can index.
	ErrTooManyTags = errors.New("too many tag definitions")
)

// Style keys understood by the ANSI renderer.
const (
	StyleEmphasis = "emphasis"
	StyleStrong   = "strong"
	StyleStrike   = "strike"
	StyleCode     = "code"
	StyleMark     = "mark"
)

// TagDef describes one delimiter family.
type TagDef struct {
	// Name identifies the family in configuration and debug output.
	Name string `yaml:"name"`
	// Delimiter is the literal marker that opens and closes the family.
	Delimiter string `yaml:"delimiter"`
	// Element is the HTML element emitted for a resolved pair.
	Element string `yaml:"element"`
	// Style is the theme style key used by the ANSI renderer.
	Style string `yaml:"style"`
}

// TagSet is an ordered collection of delimiter families. The index of a
// definition is its TagType.
type TagSet struct {
	defs []TagDef
	// longest delimiter first
	order []TagType
}

var defaultTagDefs = []TagDef{
	{Name: "strong", Delimiter: "__", Element: "strong", Style: StyleStrong},
	{Name: "emphasis", Delimiter: "_", Element: "em", Style: StyleEmphasis},
	{Name: "strike", Delimiter: "~~", Element: "del", Style: StyleStrike},
}

var defaultTagSet = mustTagSet(defaultTagDefs...)

// Built-in tag types of DefaultTagSet.
const (
	TagStrong TagType = iota
	TagEmphasis
	TagStrike
)

// DefaultTagSet returns the built-in families: strong (__), emphasis (_) and
// strike (~~).
func DefaultTagSet() *TagSet {
	return defaultTagSet
}

// DefaultTagDefs returns a copy of the built-in family definitions.
func DefaultTagDefs() []TagDef {
	out := make([]TagDef, len(defaultTagDefs))
	copy(out, defaultTagDefs)
	return out
}

// NewTagSet validates defs and builds a TagSet from them.
func NewTagSet(defs ...TagDef) (*TagSet, error) {
	if len(defs) > math.MaxUint8+1 {
		return nil, fmt.Errorf("tagset: %d definitions: %w", len(defs), ErrTooManyTags)
	}
	seen := make(map[string]string, len(defs))
	s := &TagSet{defs: make([]TagDef, len(defs)), order: make([]TagType, len(defs))}
	for i, def := range defs {
		if def.Delimiter == "" {
			return nil, fmt.Errorf("tagset: %q: %w", def.Name, ErrEmptyDelimiter)
		}
		if strings.ContainsFunc(def.Delimiter, func(r rune) bool { return r == '\\' || unicode.IsSpace(r) }) {
			return nil, fmt.Errorf("tagset: %q: %w", def.Name, ErrDelimiterHasEscape)
		}
		if prev, ok := seen[def.Delimiter]; ok {
			return nil, fmt.Errorf("tagset: %q and %q share %q: %w", prev, def.Name, def.Delimiter, ErrDuplicateDelimiter)
		}
		seen[def.Delimiter] = def.Name
		if def.Element == "" {
			def.Element = "span"
		}
		s.defs[i] = def
		s.order[i] = TagType(i)
	}
	sort.SliceStable(s.order, func(a, b int) bool {
		return len(s.defs[s.order[a]].Delimiter) > len(s.defs[s.order[b]].Delimiter)
	})
	return s, nil
}

func mustTagSet(defs ...TagDef) *TagSet {
	s, err := NewTagSet(defs...)
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of families.
func (s *TagSet) Len() int {
	return len(s.defs)
}

// Def returns the definition for typ.
func (s *TagSet) Def(typ TagType) (TagDef, bool) {
	if int(typ) >= len(s.defs) {
		return TagDef{}, false
	}
	return s.defs[typ], true
}

// Defs returns a copy of the definitions in TagType order.
func (s *TagSet) Defs() []TagDef {
	out := make([]TagDef, len(s.defs))
	copy(out, s.defs)
	return out
}

// Lookup returns the TagType of the family with the given name.
func (s *TagSet) Lookup(name string) (TagType, bool) {
	for i, def := range s.defs {
		if def.Name == name {
			return TagType(i), true
		}
	}
	return 0, false
}

// match returns the longest delimiter starting at src[i:].
func (s *TagSet) match(src string, i int) (TagType, int, bool) {
	for _, typ := range s.order {
		delim := s.defs[typ].Delimiter
		if strings.HasPrefix(src[i:], delim) {
			return typ, len(delim), true
		}
	}
	return 0, 0, false
}
