package domain

// FunctionTemplate is the reusable, not yet instantiated compiled form of a
// script or eval body. The cache holds references to templates but does not
// own them: the running program may reference the same template.
type FunctionTemplate struct {
	// Key is the key the template was compiled for.
	Key SourceKey
	// Digest is the xxhash of the source text.
	Digest uint64
	// Lines is the number of source lines compiled.
	Lines int
	// Address is the heap location of the template. It changes whenever the
	// collector moves the object.
	Address uint64
}

// Relocated returns a copy of the template placed at addr.
func (t *FunctionTemplate) Relocated(addr uint64) *FunctionTemplate {
	moved := *t
	moved.Address = addr
	return &moved
}

// CompileResult is the outcome of compiling source through the cache.
type CompileResult struct {
	// Template is the compiled template, either fresh or served from the cache.
	Template *FunctionTemplate
	// Cached is true when the template came from the cache.
	Cached bool
}
