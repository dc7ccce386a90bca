// Package migrate rewrites legacy view XML files in place: the
// deprecated attrs notation becomes inline boolean expressions, and
// numeric invisible flags inside tree views become column_invisible.
package migrate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// Migrator processes view files sequentially. The zero value rewrites
// files in place; with DryRun set it computes every transform and logs
// diagnostics but writes nothing.
type Migrator struct {
	DryRun bool
}

// Run expands each glob pattern and processes the matched files one by
// one. A file that fails to transform is logged and skipped; the rest
// of the batch still runs. The returned error reports how many files
// failed, if any.
func (m *Migrator) Run(patterns []string) error {
	var failed int
	for _, pattern := range patterns {
		paths, err := filepath.Glob(pattern)
		if err != nil {
			log.Error().Str("pattern", pattern).Err(err).Msg("bad file pattern")
			failed++
			continue
		}
		for _, path := range paths {
			if err := m.ProcessFile(path); err != nil {
				log.Error().Str("file", path).Err(err).Msg("file not migrated")
				failed++
			}
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d file(s) failed", failed)
	}
	return nil
}

// ProcessFile runs the full transform pipeline on one file. The file is
// overwritten only when every pass succeeds, so a failing file is left
// untouched.
func (m *Migrator) ProcessFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	out, err := newDocument(path, string(content)).transform()
	if err != nil {
		return err
	}

	if m.DryRun {
		log.Info().Str("file", path).Msg("dry run, file left unchanged")
		return nil
	}
	if err := os.WriteFile(path, []byte(out), info.Mode().Perm()); err != nil {
		return err
	}
	log.Info().Str("file", path).Msg("migrated")
	return nil
}
