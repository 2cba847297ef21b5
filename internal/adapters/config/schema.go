package config

import "go.trai.ch/srccache/internal/core/domain"

// supportedVersion is the only srccache.yaml schema version understood.
const supportedVersion = "1"

// Srcfile represents the structure of the srccache.yaml configuration file.
type Srcfile struct {
	Version  string      `yaml:"version"`
	Cache    CacheDTO    `yaml:"cache"`
	Workload WorkloadDTO `yaml:"workload"`
	GC       GCDTO       `yaml:"gc"`
}

// CacheDTO configures the compilation cache.
type CacheDTO struct {
	Enabled *bool `yaml:"enabled"`
}

// WorkloadDTO lists what every iteration compiles.
type WorkloadDTO struct {
	Iterations *int        `yaml:"iterations"`
	Scripts    []ScriptDTO `yaml:"scripts"`
	Evals      []EvalDTO   `yaml:"evals"`
}

// ScriptDTO is a script file. Name defaults to the path; Anonymous drops it.
type ScriptDTO struct {
	Path         string  `yaml:"path"`
	Name         *string `yaml:"name"`
	Anonymous    bool    `yaml:"anonymous"`
	LineOffset   int     `yaml:"line_offset"`
	ColumnOffset int     `yaml:"column_offset"`
}

// EvalDTO is inline eval code. An omitted kind means eval-global.
type EvalDTO struct {
	Source string            `yaml:"source"`
	Kind   *domain.EntryKind `yaml:"kind"`
}

// GCDTO schedules collections between iterations.
type GCDTO struct {
	MinorEvery int `yaml:"minor_every"`
	MajorEvery int `yaml:"major_every"`
}
