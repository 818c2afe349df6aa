package main

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/document"
	"github.com/jonathan/resume-builder/internal/storage"
	"github.com/jonathan/resume-builder/internal/types"
)

// loadSettings merges the optional config file over the built-in defaults.
func loadSettings() (config.Config, error) {
	cfg := &config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	merged := cfg.MergeWithDefaults(config.Defaults())
	if verbose {
		merged.Verbose = true
	}
	return merged, nil
}

// newStore returns a file store for paths. The S3 client is only created when
// one of the paths is an s3:// URI.
func newStore(ctx context.Context, cfg config.Config, paths ...string) (storage.FileStore, error) {
	needS3 := false
	for _, p := range paths {
		if storage.IsS3Path(p) {
			needS3 = true
			break
		}
	}
	if !needS3 {
		return storage.NewRouter(nil), nil
	}

	s3Store, err := storage.NewS3(ctx, cfg.S3Region, cfg.S3Prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to create s3 storage: %w", err)
	}
	return storage.NewRouter(s3Store), nil
}

// exportTarget resolves the output directory. A relative directory goes under
// the configured bucket when one is set.
func exportTarget(cfg config.Config, outDir string) string {
	if outDir == "" {
		outDir = cfg.OutputDir
	}
	if cfg.S3Bucket == "" || storage.IsS3Path(outDir) || filepath.IsAbs(outDir) {
		return outDir
	}
	return storage.S3Scheme + cfg.S3Bucket + "/" + strings.Trim(filepath.ToSlash(outDir), "/")
}

// openDocument loads the document at path into a new manager.
func openDocument(ctx context.Context, cfg config.Config, path string) (*document.Manager, error) {
	store, err := newStore(ctx, cfg, path)
	if err != nil {
		return nil, err
	}

	m := document.NewManager(store)
	if err := m.Load(ctx, path); err != nil {
		if storage.IsNotFound(err) {
			return nil, fmt.Errorf("resume document not found: %s", path)
		}
		return nil, fmt.Errorf("failed to load resume document: %w", err)
	}
	return m, nil
}

// editDocument loads path, applies edit and saves the result back to path.
func editDocument(ctx context.Context, path string, edit func(m *document.Manager) error) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	m, err := openDocument(ctx, cfg, path)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		unsubscribe := m.OnChange(logChange)
		defer unsubscribe()
	}

	if err := edit(m); err != nil {
		return err
	}

	if err := m.Save(ctx, path); err != nil {
		return fmt.Errorf("failed to save resume document: %w", err)
	}
	return nil
}

func logChange(doc types.Document) {
	log.Printf("[DOC] %s: %d work, %d education, %d skills",
		doc.PersonalInfo.Name, len(doc.WorkExperience), len(doc.Education), len(doc.Skills))
}

// parseCategory accepts a skill category name case-insensitively.
func parseCategory(s string) (types.SkillCategory, error) {
	c := types.SkillCategory(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("invalid skill category %q (valid: technical, soft, language, other)", s)
	}
	return c, nil
}

// parseLevel accepts an empty or known skill level case-insensitively.
func parseLevel(s string) (types.SkillLevel, error) {
	l := types.SkillLevel(strings.ToLower(strings.TrimSpace(s)))
	switch l {
	case "", types.LevelBeginner, types.LevelIntermediate, types.LevelAdvanced, types.LevelExpert:
		return l, nil
	}
	return "", fmt.Errorf("invalid skill level %q (valid: beginner, intermediate, advanced, expert)", s)
}

func markRequired(cmd interface{ MarkFlagRequired(string) error }, names ...string) {
	for _, name := range names {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", name, err))
		}
	}
}
