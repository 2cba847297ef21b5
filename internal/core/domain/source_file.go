package domain

// SourceFile is a script read from disk.
type SourceFile struct {
	Path string
	Text string
	// Input is the index of the requested path this file was read for. A
	// directory yields several files with the same Input.
	Input int
}
