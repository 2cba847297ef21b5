package domain

// Origin identifies where a script logically came from. It takes part in
// script key identity: the same text attributed to another name or compiled
// at other offsets must not share a template, since stack traces and
// debuggers read positions from it.
type Origin struct {
	// Name is the script name. The zero value means the script is unnamed.
	Name InternedString
	// LineOffset is the line the script starts at within its resource.
	LineOffset int
	// ColumnOffset is the column the script starts at within its resource.
	ColumnOffset int
}

// NewOrigin creates a named origin.
func NewOrigin(name string, lineOffset, columnOffset int) Origin {
	return Origin{
		Name:         NewInternedString(name),
		LineOffset:   lineOffset,
		ColumnOffset: columnOffset,
	}
}

// AnonymousOrigin creates an origin without a name.
func AnonymousOrigin(lineOffset, columnOffset int) Origin {
	return Origin{LineOffset: lineOffset, ColumnOffset: columnOffset}
}

// HasName reports whether the origin carries a script name.
func (o Origin) HasName() bool {
	return !o.Name.IsZero()
}
