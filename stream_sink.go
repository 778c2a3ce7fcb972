package mdtok

// Sink receives block and inline events from Emit.
type Sink interface {
	BeginBlock(Block) error
	EndBlock(Block) error
	// SoftBreak separates two lines of the same paragraph.
	SoftBreak() error
	Text(string) error
	Open(TagDef) error
	Close(TagDef) error
	Flush() error
}
