package mdtok

import "strings"

// frontMatterDelimiters are the fences of YAML, TOML and JSON front matter.
var frontMatterDelimiters = []string{"---", "+++", ";;;"}

// SplitFrontMatter separates a leading front matter block from src. The block
// must start on the first line, its first entry must look like metadata, and
// it must be closed by the same fence. meta excludes the fences; ok is false
// when src has no front matter, in which case body is src.
func SplitFrontMatter(src string) (meta, body string, ok bool) {
	first, rest, found := cutLine(strings.TrimPrefix(src, "\ufeff"))
	if !found {
		return "", src, false
	}
	fence := strings.TrimSpace(first)
	if !isFrontMatterFence(fence) {
		return "", src, false
	}
	second, _, _ := cutLine(rest)
	if !metadataLikely(second) {
		return "", src, false
	}
	for pos := 0; pos < len(rest); {
		line, tail, _ := cutLine(rest[pos:])
		if strings.TrimSpace(line) == fence {
			return rest[:pos], tail, true
		}
		pos = len(rest) - len(tail)
	}
	return "", src, false
}

func isFrontMatterFence(line string) bool {
	for _, d := range frontMatterDelimiters {
		if line == d {
			return true
		}
	}
	return false
}

func metadataLikely(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	return strings.HasPrefix(line, "{") || strings.HasPrefix(line, "[") ||
		strings.Contains(line, ":") || strings.Contains(line, "=")
}

// cutLine splits off the first line of s without its line ending. found is
// false only when s is empty.
func cutLine(s string) (line, rest string, found bool) {
	if s == "" {
		return "", "", false
	}
	line, rest, _ = strings.Cut(s, "\n")
	return strings.TrimSuffix(line, "\r"), rest, true
}
