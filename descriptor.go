package jsonkeep

// Descriptor is the read-only view of the formatting recorded for a
// tracked value. DescriptorOf returns it by value; mutating the copy
// has no effect on the recorded state.
type Descriptor struct {
	// Indent is the substring representing one level of indentation,
	// for example "  " or "\t". Empty when no consistent indentation
	// was detected; a detected unit is never empty.
	Indent string
	// CRLF reports that CRLF line endings strictly outnumbered bare LF
	// in the source text. Ties resolve to LF.
	CRLF bool
	// TrailingNewline reports that the source text ended with a line
	// ending rather than mid-line.
	TrailingNewline bool
	// Path is the absolute source location recorded by ReadFile; empty
	// for values decoded from memory.
	Path string
}
