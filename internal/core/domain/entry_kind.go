package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// EntryKind partitions the compilation cache into independent namespaces.
// The same source text compiles to different templates as a script and as an
// eval, so each kind gets its own table.
type EntryKind uint8

const (
	// KindScript is a top-level script compiled with its own origin.
	KindScript EntryKind = iota
	// KindEvalGlobal is eval code compiled in the global scope.
	KindEvalGlobal
	// KindEvalContextual is eval code compiled inside a function context.
	KindEvalContextual
)

// String returns the configuration name of the kind.
func (k EntryKind) String() string {
	switch k {
	case KindScript:
		return "script"
	case KindEvalGlobal:
		return "eval-global"
	case KindEvalContextual:
		return "eval-contextual"
	default:
		return "unknown"
	}
}

// Valid reports whether k is one of the three known kinds.
func (k EntryKind) Valid() bool {
	return k <= KindEvalContextual
}

// IsEval reports whether k is one of the eval kinds.
func (k EntryKind) IsEval() bool {
	return k == KindEvalGlobal || k == KindEvalContextual
}

// MarshalText implements encoding.TextMarshaler.
func (k EntryKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, zerr.With(zerr.Wrap(ErrInvalidEntryKind, "cannot encode entry kind"), "kind", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// The short forms "global" and "contextual" are accepted for eval kinds.
func (k *EntryKind) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "script":
		*k = KindScript
	case "eval-global", "global":
		*k = KindEvalGlobal
	case "eval-contextual", "contextual":
		*k = KindEvalContextual
	default:
		return zerr.With(zerr.Wrap(ErrInvalidEntryKind, "cannot decode entry kind"), "kind", string(text))
	}
	return nil
}
