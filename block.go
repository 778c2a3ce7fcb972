package mdtok

import "strings"

// BlockKind classifies a block of the document.
type BlockKind uint8

const (
	// BlockParagraph is a run of non-blank lines.
	BlockParagraph BlockKind = iota
	// BlockHeading is a single line starting with one to six '#' and a space.
	BlockHeading
)

func (k BlockKind) String() string {
	if k == BlockHeading {
		return "heading"
	}
	return "paragraph"
}

// Block is a unit of the document whose lines are normalized independently.
type Block struct {
	Kind  BlockKind
	Level int
	Lines []string
}

const maxHeadingLevel = 6

// SplitBlocks splits src into paragraphs and, when headings is set, heading
// lines. Blank lines separate paragraphs; lines are trimmed of surrounding
// whitespace.
func SplitBlocks(src string, headings bool) []Block {
	var blocks []Block
	var para []string
	endPara := func() {
		if len(para) > 0 {
			blocks = append(blocks, Block{Kind: BlockParagraph, Lines: para})
			para = nil
		}
	}
	for line := range strings.Lines(src) {
		line = strings.TrimSpace(line)
		if line == "" {
			endPara()
			continue
		}
		if headings {
			if level, text, ok := parseHeading(line); ok {
				endPara()
				blocks = append(blocks, Block{Kind: BlockHeading, Level: level, Lines: []string{text}})
				continue
			}
		}
		para = append(para, line)
	}
	endPara()
	return blocks
}

func parseHeading(line string) (int, string, bool) {
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level == 0 || level > maxHeadingLevel {
		return 0, "", false
	}
	if level == len(line) {
		return level, "", true
	}
	if line[level] != ' ' && line[level] != '\t' {
		return 0, "", false
	}
	return level, strings.TrimSpace(line[level:]), true
}
