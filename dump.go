package mdtok

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
)

// DumpOptions configures DumpTokens.
type DumpOptions struct {
	// Color enables coloured kinds and roles.
	Color bool
	// MaxValue truncates token values to this many columns; zero keeps them whole.
	MaxValue int
}

type dumpColors struct {
	text, escape, open, close, other *color.Color
}

func newDumpColors(enabled bool) dumpColors {
	c := dumpColors{
		text:   color.New(color.FgWhite),
		escape: color.New(color.FgYellow),
		open:   color.New(color.FgGreen, color.Bold),
		close:  color.New(color.FgCyan, color.Bold),
		other:  color.New(color.FgRed),
	}
	for _, col := range []*color.Color{c.text, c.escape, c.open, c.close, c.other} {
		if enabled {
			col.EnableColor()
		} else {
			col.DisableColor()
		}
	}
	return c
}

// DumpTokens writes one line per token: span, kind, family, role and the
// quoted source value.
func DumpTokens(w io.Writer, src string, tokens []Token, set *TagSet, opts DumpOptions) error {
	if set == nil {
		set = DefaultTagSet()
	}
	colors := newDumpColors(opts.Color)
	for _, tok := range tokens {
		c := colors.pick(tok)
		label := tok.Kind.String()
		if tok.IsTag() {
			name := strconv.Itoa(int(tok.TagType))
			if def, ok := set.Def(tok.TagType); ok && def.Name != "" {
				name = def.Name
			}
			label += ":" + name + ":" + tok.TagRole.String()
		}
		value := tok.Value(src)
		if opts.MaxValue > 0 {
			value = truncateWithEllipsis(value, opts.MaxValue)
		}
		if _, err := fmt.Fprintf(w, "%5d %4d  %s  %q\n", tok.Start, tok.Length, c.Sprintf("%-24s", label), value); err != nil {
			return err
		}
	}
	return nil
}

func (c dumpColors) pick(tok Token) *color.Color {
	switch {
	case tok.Kind == KindText:
		return c.text
	case tok.Kind == KindEscape:
		return c.escape
	case tok.IsTag() && tok.TagRole == RoleOpening:
		return c.open
	case tok.IsTag() && tok.TagRole == RoleClosing:
		return c.close
	default:
		return c.other
	}
}
