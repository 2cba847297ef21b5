package domain

// TableStats holds counters for one entry table.
type TableStats struct {
	Hits    uint64
	Misses  uint64
	Entries int
}

// CacheStats is a snapshot of the compilation cache counters.
type CacheStats struct {
	Script         TableStats
	EvalGlobal     TableStats
	EvalContextual TableStats
	// Associations counts successful Associate calls.
	Associations uint64
	// Clears counts Clear calls, including the one made at construction.
	Clears uint64
}

// Table returns the counters of the table for kind.
func (s CacheStats) Table(kind EntryKind) TableStats {
	switch kind {
	case KindEvalGlobal:
		return s.EvalGlobal
	case KindEvalContextual:
		return s.EvalContextual
	default:
		return s.Script
	}
}

// Entries returns the number of entries across all tables.
func (s CacheStats) Entries() int {
	return s.Script.Entries + s.EvalGlobal.Entries + s.EvalContextual.Entries
}

// RunReport summarizes a workload run.
type RunReport struct {
	Iterations int
	// Compiled counts compilations that missed the cache.
	Compiled int
	// Cached counts compilations served from the cache.
	Cached      int
	Collections []CollectionReport
	Stats       CacheStats
}
