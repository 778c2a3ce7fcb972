package mdtok

// Emit splits src into blocks, normalizes every line and sends the resolved
// text and tag events to sink. A nil set uses DefaultTagSet.
func Emit(src string, sink Sink, set *TagSet, opts ...RenderOption) error {
	return emit(src, sink, set, newRenderConfig(opts))
}

func emit(src string, sink Sink, set *TagSet, cfg renderConfig) error {
	if set == nil {
		set = DefaultTagSet()
	}
	var stats inlineStats
	blocks := SplitBlocks(src, cfg.headings)
	for _, b := range blocks {
		if err := sink.BeginBlock(b); err != nil {
			return err
		}
		for i, line := range b.Lines {
			if i > 0 {
				if err := sink.SoftBreak(); err != nil {
					return err
				}
			}
			st, err := emitInline(sink, line, set)
			stats.add(st)
			if err != nil {
				return err
			}
		}
		if err := sink.EndBlock(b); err != nil {
			return err
		}
	}
	cfg.logger.Debug("normalized document",
		"blocks", len(blocks),
		"delimiters", stats.lexed,
		"paired", stats.paired,
		"demoted", stats.lexed-stats.paired,
	)
	return sink.Flush()
}

func emitInline(sink Sink, line string, set *TagSet) (inlineStats, error) {
	segs, stats := set.segments(line)
	return stats, emitSegments(sink, line, segs, set)
}

// emitSegments walks the segments of one line. Pairs may cross when a pending
// delimiter pairs after an unrelated opener; closing such a pair closes the
// elements opened after it and reopens them.
func emitSegments(sink Sink, line string, segs []Token, set *TagSet) error {
	var open []TagType
	for _, seg := range segs {
		if !seg.IsTag() {
			if err := sink.Text(seg.Value(line)); err != nil {
				return err
			}
			continue
		}
		def, _ := set.Def(seg.TagType)
		if seg.TagRole == RoleOpening {
			open = append(open, seg.TagType)
			if err := sink.Open(def); err != nil {
				return err
			}
			continue
		}
		idx := -1
		for i := len(open) - 1; i >= 0; i-- {
			if open[i] == seg.TagType {
				idx = i
				break
			}
		}
		if idx < 0 {
			continue
		}
		for i := len(open) - 1; i >= idx; i-- {
			d, _ := set.Def(open[i])
			if err := sink.Close(d); err != nil {
				return err
			}
		}
		reopen := append([]TagType(nil), open[idx+1:]...)
		open = open[:idx]
		for _, typ := range reopen {
			d, _ := set.Def(typ)
			open = append(open, typ)
			if err := sink.Open(d); err != nil {
				return err
			}
		}
	}
	return nil
}
