// Package config provides the configuration loader for srccache.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/srccache/internal/core/domain"
	"go.trai.ch/srccache/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the configuration at path. When path is a directory, or empty
// for the working directory, srccache.yaml is searched for in it and its
// parents.
func (l *Loader) Load(path string) (*domain.Config, error) {
	configPath, err := l.findConfiguration(path)
	if err != nil {
		return nil, err
	}

	var srcfile Srcfile
	if err := readAndUnmarshalYAML(configPath, &srcfile); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	cfg, err := buildConfig(&srcfile, filepath.Dir(configPath))
	if err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	if l.Logger != nil {
		l.Logger.Info(fmt.Sprintf("loaded %s: %d scripts, %d evals, %d iterations",
			configPath, len(cfg.Workload.Scripts), len(cfg.Workload.Evals), cfg.Workload.Iterations))
	}
	return cfg, nil
}

func (l *Loader) findConfiguration(path string) (string, error) {
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", zerr.Wrap(err, "failed to get working directory")
		}
		path = cwd
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrConfigNotFound, err.Error()), "path", path)
	}
	if !info.IsDir() {
		return path, nil
	}

	currentDir := path
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(zerr.Wrap(domain.ErrConfigNotFound, "no config in directory or parents"), "cwd", path)
}

func buildConfig(srcfile *Srcfile, baseDir string) (*domain.Config, error) {
	if srcfile.Version != "" && srcfile.Version != supportedVersion {
		return nil, invalid("unsupported version", "version", srcfile.Version)
	}

	cfg := domain.DefaultConfig()

	if srcfile.Cache.Enabled != nil {
		cfg.Cache.Enabled = *srcfile.Cache.Enabled
	}

	if it := srcfile.Workload.Iterations; it != nil {
		if *it < 1 {
			return nil, invalid("iterations must be at least 1", "iterations", *it)
		}
		cfg.Workload.Iterations = *it
	}

	if srcfile.GC.MinorEvery < 0 {
		return nil, invalid("minor_every must not be negative", "minor_every", srcfile.GC.MinorEvery)
	}
	if srcfile.GC.MajorEvery < 0 {
		return nil, invalid("major_every must not be negative", "major_every", srcfile.GC.MajorEvery)
	}
	cfg.GC = domain.GCSchedule{
		MinorEvery: srcfile.GC.MinorEvery,
		MajorEvery: srcfile.GC.MajorEvery,
	}

	scripts, err := buildScripts(srcfile.Workload.Scripts, baseDir)
	if err != nil {
		return nil, err
	}
	cfg.Workload.Scripts = scripts

	evals, err := buildEvals(srcfile.Workload.Evals)
	if err != nil {
		return nil, err
	}
	cfg.Workload.Evals = evals

	return &cfg, nil
}

func buildScripts(dtos []ScriptDTO, baseDir string) ([]domain.ScriptSource, error) {
	if len(dtos) == 0 {
		return nil, nil
	}

	scripts := make([]domain.ScriptSource, 0, len(dtos))
	for i, dto := range dtos {
		if dto.Path == "" {
			return nil, invalid("script path is required", "script_index", i)
		}

		var origin domain.Origin
		switch {
		case dto.Anonymous:
			origin = domain.AnonymousOrigin(dto.LineOffset, dto.ColumnOffset)
		case dto.Name != nil:
			origin = domain.NewOrigin(*dto.Name, dto.LineOffset, dto.ColumnOffset)
		default:
			origin = domain.NewOrigin(dto.Path, dto.LineOffset, dto.ColumnOffset)
		}

		scripts = append(scripts, domain.ScriptSource{
			Path:   resolvePath(baseDir, dto.Path),
			Origin: origin,
		})
	}
	return scripts, nil
}

func buildEvals(dtos []EvalDTO) ([]domain.EvalSource, error) {
	if len(dtos) == 0 {
		return nil, nil
	}

	evals := make([]domain.EvalSource, 0, len(dtos))
	for i, dto := range dtos {
		kind := domain.KindEvalGlobal
		if dto.Kind != nil {
			kind = *dto.Kind
		}
		if !kind.IsEval() {
			return nil, invalid("eval kind must be global or contextual", "eval_index", i)
		}
		evals = append(evals, domain.EvalSource{Source: dto.Source, Kind: kind})
	}
	return evals, nil
}

func resolvePath(baseDir, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Clean(filepath.Join(baseDir, path))
}

func invalid(msg, key string, value any) error {
	return zerr.With(zerr.Wrap(domain.ErrInvalidConfig, msg), key, value)
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is resolved by findConfiguration
	data, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "cause", err)
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "cause", err)
	}
	return nil
}
