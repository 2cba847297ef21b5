package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidEvalKind is raised when an eval lookup or key is built with the script kind.
	ErrInvalidEvalKind = zerr.New("entry kind is not an eval kind")

	// ErrInvalidEntryKind is raised when an entry kind outside the closed set is used.
	ErrInvalidEntryKind = zerr.New("invalid entry kind")

	// ErrNilTemplate is raised when a nil template is associated with a key.
	ErrNilTemplate = zerr.New("nil function template")

	// ErrSyntax is returned by the compiler when source text cannot be compiled.
	ErrSyntax = zerr.New("syntax error")

	// ErrNoSources is returned when a run has neither scripts nor evals to compile.
	ErrNoSources = zerr.New("no sources to compile")

	// ErrInvalidConfig is returned when the configuration file fails validation.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrConfigNotFound is returned when no configuration file is found.
	ErrConfigNotFound = zerr.New("could not find srccache.yaml")

	// ErrConfigReadFailed is returned when the configuration file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the configuration file is not valid YAML.
	ErrConfigParseFailed = zerr.New("failed to parse config file")
)
