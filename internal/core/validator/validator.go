// Package validator runs the lexicon directory check: every *.json file in
// the lexicon directory is decoded, matched against its filename and
// registered, one file at a time, stopping at the first failure.
package validator

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/RegistryAccord/registryaccord-specs/internal/config"
	"github.com/RegistryAccord/registryaccord-specs/internal/core/lexicon"
	"github.com/RegistryAccord/registryaccord-specs/internal/core/observability/log"
	"github.com/RegistryAccord/registryaccord-specs/pkg/sequence"
)

type Validator struct {
	dir       string
	checkRefs bool
	logger    log.Log
}

func New(cfg *config.Config, logger log.Log) *Validator {
	return &Validator{
		dir:       cfg.LexiconDir,
		checkRefs: cfg.CheckReferences,
		logger:    logger,
	}
}

// Dir is the lexicon directory Run reads.
func (v *Validator) Dir() string {
	return v.dir
}

// Result describes a successful run.
type Result struct {
	RunID   uuid.UUID
	Count   int
	IDs     []string
	Digest  uint64
	Elapsed time.Duration
}

func (r *Result) Summary() string {
	return fmt.Sprintf("Validated %d lexicon file(s)", r.Count)
}

// Run validates the configured lexicon directory.
func (v *Validator) Run(ctx context.Context) (*Result, error) {
	if _, err := os.Stat(v.dir); err != nil {
		return nil, fmt.Errorf("lexicon directory: %w", err)
	}
	return v.RunFS(ctx, os.DirFS(v.dir))
}

// RunFS validates the lexicon files at the root of fsys. A fresh registry
// is built for every call, so repeated runs share no state.
func (v *Validator) RunFS(ctx context.Context, fsys fs.FS) (*Result, error) {
	started := time.Now()
	runID := uuid.New()
	logger := v.logger.With(log.String("run_id", runID.String()))

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("read lexicon directory: %w", err)
	}
	files := sequence.Map(
		sequence.From(entries).Filter(isLexiconFile),
		func(e fs.DirEntry) string { return e.Name() },
	).Sort(func(a, b string) bool { return a < b })

	registry, err := lexicon.NewRegistry()
	if err != nil {
		return nil, err
	}

	logger.Debug("validating lexicons",
		log.String("dir", v.dir),
		log.Int("files", files.Count()),
		log.Bool("check_refs", v.checkRefs),
	)

	count := 0
	err = files.TryEach(func(name string) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		doc, err := loadFile(fsys, name)
		if err == nil {
			err = registry.Add(doc)
		}
		if err != nil {
			logger.Debug("lexicon rejected", log.String("file", name), log.Error(err))
			return err
		}
		count++
		logger.Debug("lexicon registered",
			log.String("file", name),
			log.String("id", doc.ID),
			log.Int("defs", len(doc.Defs)),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if v.checkRefs {
		if err := registry.CheckReferences(); err != nil {
			return nil, err
		}
		logger.Debug("lexicon references resolved")
	}

	result := &Result{
		RunID:   runID,
		Count:   count,
		IDs:     registry.IDs(),
		Digest:  registry.Digest(),
		Elapsed: time.Since(started),
	}
	logger.Info("lexicons validated",
		log.Int("count", result.Count),
		log.Strings("ids", result.IDs),
		log.Hex("digest", result.Digest),
		log.Duration("elapsed", result.Elapsed),
	)
	return result, nil
}

func isLexiconFile(e fs.DirEntry) bool {
	return !e.IsDir() && strings.HasSuffix(e.Name(), lexicon.FileExt)
}

func loadFile(fsys fs.FS, name string) (*lexicon.Document, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return lexicon.Decode(name, data)
}
