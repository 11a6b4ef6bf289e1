package cmd

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"adaptation-engine/adaptation"
	"adaptation-engine/capability"
	"adaptation-engine/internal/analyze"
	"adaptation-engine/internal/manifest"
)

var errNoManifest = errors.New("no manifest given: pass one as argument or set manifest in the config")

// session is a loaded manifest with its packages analyzed.
type session struct {
	path    string
	file    *manifest.File
	table   *capability.Table
	summary *analyze.Summary
	mgr     *adaptation.Manager
}

// load reads the manifest named by args (or the configured default) and
// declares the types of its packages. The manifest itself is not applied.
func (a *app) load(args []string) (*session, error) {
	path := a.cfg.Manifest
	if len(args) > 0 {
		path = args[0]
	}

	if path == "" {
		return nil, errNoManifest
	}

	f, err := manifest.LoadFile(path)
	if err != nil {
		return nil, err
	}

	table, err := capability.NewTableSize(a.cfg.DistanceCacheSize)
	if err != nil {
		return nil, err
	}

	s := &session{path: path, file: f, table: table, summary: &analyze.Summary{}}

	patterns := append(append([]string(nil), a.cfg.Packages...), f.Packages...)
	if len(patterns) > 0 {
		s.summary, err = analyze.NewAnalyzer(table).LoadPackages(patterns...)
		if err != nil {
			return nil, err
		}

		a.logger.Debug("loaded packages",
			zap.Strings("packages", s.summary.Packages),
			zap.Int("types", len(s.summary.Types)),
			zap.Int("interfaces", len(s.summary.Interfaces)))
	}

	s.mgr = adaptation.NewManager(adaptation.Config{
		Model:   table,
		Logger:  a.logger,
		Metrics: a.metrics,
	})

	return s, nil
}

// apply loads and applies the manifest.
func (a *app) apply(args []string) (*session, error) {
	s, err := a.load(args)
	if err != nil {
		return nil, err
	}

	if _, err := manifest.Apply(s.file, s.table, s.mgr, a.catalog); err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}

	return s, nil
}
