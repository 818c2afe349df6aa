package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"styles": ["modern", "minimal"],
		"format": "pdf",
		"output_dir": "exports",
		"pdf_timeout_seconds": 30,
		"s3_bucket": "cvs",
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, []string{"modern", "minimal"}, cfg.Styles)
	assert.Equal(t, "pdf", cfg.Format)
	assert.Equal(t, "exports", cfg.OutputDir)
	assert.Equal(t, 30, cfg.PDFTimeoutSeconds)
	assert.Equal(t, "cvs", cfg.S3Bucket)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "empty is valid", cfg: Config{}},
		{name: "html", cfg: Config{Format: "html", Styles: []string{"classic"}}},
		{name: "bad format", cfg: Config{Format: "docx"}, wantErr: "'format' failed 'oneof'"},
		{name: "blank style", cfg: Config{Styles: []string{""}}, wantErr: "'styles[0]' failed 'required'"},
		{name: "negative timeout", cfg: Config{PDFTimeoutSeconds: -1}, wantErr: "'pdf_timeout_seconds'"},
		{name: "huge timeout", cfg: Config{PDFTimeoutSeconds: 601}, wantErr: "'pdf_timeout_seconds'"},
		{name: "prefix without bucket", cfg: Config{S3Prefix: "cv"}, wantErr: "requires 's3_bucket'"},
		{name: "missing chrome", cfg: Config{ChromePath: "/nonexistent/chrome"}, wantErr: "chrome executable not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := &Config{
		Format: "pdf",
	}

	defaults := Config{
		Styles:            []string{"classic"},
		Format:            "html",
		OutputDir:         "out",
		PDFTimeoutSeconds: 60,
		S3Region:          "eu-west-1",
	}

	result := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "pdf", result.Format)               // From cfg
	assert.Equal(t, []string{"classic"}, result.Styles) // From defaults
	assert.Equal(t, "out", result.OutputDir)            // From defaults
	assert.Equal(t, 60, result.PDFTimeoutSeconds)       // From defaults
	assert.Equal(t, "eu-west-1", result.S3Region)       // From defaults
	assert.Empty(t, cfg.OutputDir, "receiver is not mutated")
}

func TestDefaults_EnvFallbacks(t *testing.T) {
	t.Setenv(EnvChromePath, "/opt/chrome")
	t.Setenv(EnvS3Bucket, "cv-bucket")
	t.Setenv(EnvAWSRegion, "us-east-2")

	d := Defaults()
	assert.Equal(t, DefaultFormat, d.Format)
	assert.Equal(t, DefaultOutputDir, d.OutputDir)
	assert.Equal(t, DefaultPDFTimeoutSeconds, d.PDFTimeoutSeconds)
	assert.Equal(t, "/opt/chrome", d.ChromePath)
	assert.Equal(t, "cv-bucket", d.S3Bucket)
	assert.Equal(t, "us-east-2", d.S3Region)
}
