package domain

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// SourceKey identifies a cache entry. Source text is compared by content;
// origin only takes part for script keys. Eval keys always carry the zero
// origin, so the eval kind alone discriminates them.
//
// SourceKey is comparable and can be used with == directly.
type SourceKey struct {
	source InternedString
	kind   EntryKind
	origin Origin
}

// NewScriptKey builds the key of a top-level script compiled from source with the given origin.
func NewScriptKey(source string, origin Origin) SourceKey {
	return SourceKey{
		source: NewInternedString(source),
		kind:   KindScript,
		origin: origin,
	}
}

// NewEvalKey builds the key of eval code. kind must be an eval kind.
func NewEvalKey(source string, kind EntryKind) (SourceKey, error) {
	if !kind.IsEval() {
		return SourceKey{}, zerr.With(zerr.Wrap(ErrInvalidEvalKind, "cannot build eval key"), "kind", kind.String())
	}
	return SourceKey{
		source: NewInternedString(source),
		kind:   kind,
	}, nil
}

// Source returns the source text.
func (k SourceKey) Source() string {
	return k.source.String()
}

// Kind returns the entry kind of the key.
func (k SourceKey) Kind() EntryKind {
	return k.kind
}

// Origin returns the script origin. It is the zero Origin for eval keys.
func (k SourceKey) Origin() Origin {
	return k.origin
}

// Equal reports whether both keys select the same cache entry.
func (k SourceKey) Equal(other SourceKey) bool {
	return k == other
}

// Hash returns a 64-bit hash of the comparable fields of the key.
// Equal keys always hash equal.
func (k SourceKey) Hash() uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(k.source.String())
	_, _ = d.Write([]byte{0, byte(k.kind)})

	if k.kind != KindScript {
		return d.Sum64()
	}

	// Named and unnamed origins must not collide when the name is empty.
	if k.origin.HasName() {
		_, _ = d.Write([]byte{1})
		_, _ = d.WriteString(k.origin.Name.String())
	} else {
		_, _ = d.Write([]byte{0})
	}
	_, _ = d.Write([]byte{0})

	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(int64(k.origin.LineOffset)))
	binary.LittleEndian.PutUint64(buf[8:], uint64(int64(k.origin.ColumnOffset)))
	_, _ = d.Write(buf[:])

	return d.Sum64()
}
