package domain

// ConfigFileName is the file looked up when a directory is given as config path.
const ConfigFileName = "srccache.yaml"

// Config is the resolved srccache configuration.
type Config struct {
	Cache    CacheConfig
	Workload Workload
	GC       GCSchedule
}

// CacheConfig configures the compilation cache.
type CacheConfig struct {
	// Enabled turns the cache on. A disabled cache misses every lookup.
	Enabled bool
}

// Workload describes the sources compiled on every iteration of a run.
type Workload struct {
	Iterations int
	Scripts    []ScriptSource
	Evals      []EvalSource
}

// ScriptSource is a script file compiled with a fixed origin.
type ScriptSource struct {
	Path   string
	Origin Origin
}

// EvalSource is inline eval code.
type EvalSource struct {
	Source string
	Kind   EntryKind
}

// GCSchedule triggers collections after iterations. Zero disables a kind.
type GCSchedule struct {
	MinorEvery int
	MajorEvery int
}

// DefaultConfig returns the configuration used when no file overrides it.
func DefaultConfig() Config {
	return Config{
		Cache:    CacheConfig{Enabled: true},
		Workload: Workload{Iterations: 1},
	}
}
