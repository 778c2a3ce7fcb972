// Package mdtok normalizes and renders a lightweight markup.
//
// The markup has underscore emphasis (_em_), strong (__strong__),
// strikethrough (~~del~~), '#' headings and backslash escapes. Delimiter
// families are configurable through a TagSet.
//
// Processing is a fixed pipeline over a flat token stream:
//
//   - Lex splits a line into text runs, escape markers and delimiters, each
//     delimiter tagged as opening, closing or undefined from its neighbours.
//   - RemoveEscaping drops escape markers and turns the escaped token into
//     literal text.
//   - RemoveUnpaired pairs delimiters of the same family using a stack of
//     openers and a stack of pending undefined delimiters. A candidate pair
//     separated by a space is rejected. Anything left unpaired becomes text.
//   - Segments rebuilds literal text between the resolved tags, and a Sink
//     (HTML or terminal) renders it.
//
// Render drops a leading YAML, TOML or JSON front matter block unless
// WithFrontMatter is set. Malformed markup never fails; it degrades to
// literal text.
//
// Example:
//
//	err := mdtok.Render(mdtok.RenderRequest{
//		Reader: strings.NewReader("# Hello\n\nSome _emphasis_ and __strong__ text.\n"),
//		Writer: os.Stdout,
//		Format: mdtok.FormatANSI,
//		Width:  80,
//		Theme:  mdtok.DefaultTheme(),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
package mdtok
