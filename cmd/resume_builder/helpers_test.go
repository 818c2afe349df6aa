package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/document"
	"github.com/jonathan/resume-builder/internal/storage"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withConfigPath(t *testing.T, path string) {
	t.Helper()
	previous := configPath
	configPath = path
	t.Cleanup(func() { configPath = previous })
}

func TestLoadSettings_Defaults(t *testing.T) {
	withConfigPath(t, "")
	t.Setenv(config.EnvS3Bucket, "")

	cfg, err := loadSettings()
	require.NoError(t, err)
	assert.Equal(t, config.DefaultFormat, cfg.Format)
	assert.Equal(t, config.DefaultOutputDir, cfg.OutputDir)
	assert.Equal(t, config.DefaultPDFTimeoutSeconds, cfg.PDFTimeoutSeconds)
}

func TestLoadSettings_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"format": "pdf", "styles": ["modern"]}`), 0644))
	withConfigPath(t, path)

	cfg, err := loadSettings()
	require.NoError(t, err)
	assert.Equal(t, "pdf", cfg.Format)
	assert.Equal(t, []string{"modern"}, cfg.Styles)
	assert.Equal(t, config.DefaultOutputDir, cfg.OutputDir)
}

func TestLoadSettings_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"format": "docx"}`), 0644))
	withConfigPath(t, path)

	_, err := loadSettings()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config error")
}

func TestExportTarget(t *testing.T) {
	local := config.Config{OutputDir: "out"}
	assert.Equal(t, "out", exportTarget(local, ""))
	assert.Equal(t, "exports", exportTarget(local, "exports"))

	remote := config.Config{OutputDir: "out", S3Bucket: "cvs"}
	assert.Equal(t, "s3://cvs/out", exportTarget(remote, ""))
	assert.Equal(t, "s3://cvs/2024/may", exportTarget(remote, "2024/may/"))
	assert.Equal(t, "s3://other/x", exportTarget(remote, "s3://other/x"))
	assert.Equal(t, "/tmp/out", exportTarget(remote, "/tmp/out"))
}

func TestNewStore_LocalOnly(t *testing.T) {
	store, err := newStore(context.Background(), config.Config{}, "cv.json", "")
	require.NoError(t, err)

	router, ok := store.(*storage.Router)
	require.True(t, ok)
	assert.Nil(t, router.S3)
}

func TestParseCategory(t *testing.T) {
	c, err := parseCategory(" Technical ")
	require.NoError(t, err)
	assert.Equal(t, types.SkillTechnical, c)

	_, err = parseCategory("hobby")
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	l, err := parseLevel("EXPERT")
	require.NoError(t, err)
	assert.Equal(t, types.LevelExpert, l)

	l, err = parseLevel("")
	require.NoError(t, err)
	assert.Empty(t, l)

	_, err = parseLevel("guru")
	assert.Error(t, err)
}

func TestEditDocument(t *testing.T) {
	withConfigPath(t, "")
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cv.json")

	m := document.NewManager(storage.NewLocal(""))
	m.SetPersonalInfo(types.PersonalInfo{Name: "Jane Doe", Email: "jane@x.com", Phone: "555-0100", Location: "Berlin"})
	require.NoError(t, m.Save(ctx, path))

	var id string
	err := editDocument(ctx, path, func(m *document.Manager) error {
		id = m.AddWorkExperience(types.WorkExperience{Company: "Acme", Title: "Engineer", StartDate: "2020-01", EndDate: types.Present})
		return nil
	})
	require.NoError(t, err)

	reloaded := document.NewManager(nil)
	require.NoError(t, reloaded.Load(ctx, path))
	doc := reloaded.GetData()
	require.Len(t, doc.WorkExperience, 1)
	assert.Equal(t, id, doc.WorkExperience[0].ID)
}

func TestEditDocument_MissingFile(t *testing.T) {
	withConfigPath(t, "")
	err := editDocument(context.Background(), filepath.Join(t.TempDir(), "missing.json"), func(*document.Manager) error {
		t.Fatal("edit must not run")
		return nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resume document not found")
}

func TestChangedString(t *testing.T) {
	assert.Nil(t, changedString(false, "x"))
	v := changedString(true, "")
	require.NotNil(t, v)
	assert.Equal(t, "", *v)
}
