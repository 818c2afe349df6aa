// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Environment variables consulted when the matching field is unset.
const (
	EnvChromePath = "CHROME_PATH"
	EnvS3Bucket   = "RESUME_S3_BUCKET"
	EnvAWSRegion  = "AWS_REGION"
)

// Defaults for fields left empty.
const (
	DefaultFormat            = "html"
	DefaultOutputDir         = "out"
	DefaultPDFTimeoutSeconds = 60
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	// Export
	Styles    []string `json:"styles,omitempty" validate:"omitempty,dive,required"` // Styles to export; empty means all
	Format    string   `json:"format,omitempty" validate:"omitempty,oneof=html pdf"`
	OutputDir string   `json:"output_dir,omitempty"`

	// PDF
	ChromePath        string `json:"chrome_path,omitempty"`
	PDFTimeoutSeconds int    `json:"pdf_timeout_seconds,omitempty" validate:"gte=0,lte=600"`

	// S3 storage for s3:// paths
	S3Bucket string `json:"s3_bucket,omitempty"`
	S3Region string `json:"s3_region,omitempty"`
	S3Prefix string `json:"s3_prefix,omitempty"`

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

var validate = validator.New()

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("config error: '%s' failed '%s' check (value: %v)", jsonName(fe.StructField()), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("config error: %w", err)
	}

	if c.S3Prefix != "" && c.S3Bucket == "" {
		return fmt.Errorf("config error: 's3_prefix' requires 's3_bucket'")
	}

	if c.ChromePath != "" {
		if _, err := os.Stat(c.ChromePath); os.IsNotExist(err) {
			return fmt.Errorf("config error: chrome executable not found: %s", c.ChromePath)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if len(result.Styles) == 0 && len(defaults.Styles) > 0 {
		result.Styles = append([]string(nil), defaults.Styles...)
	}
	if result.Format == "" {
		result.Format = defaults.Format
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.ChromePath == "" {
		result.ChromePath = defaults.ChromePath
	}
	if result.S3Bucket == "" {
		result.S3Bucket = defaults.S3Bucket
	}
	if result.S3Region == "" {
		result.S3Region = defaults.S3Region
	}
	if result.S3Prefix == "" {
		result.S3Prefix = defaults.S3Prefix
	}
	if result.PDFTimeoutSeconds == 0 {
		result.PDFTimeoutSeconds = defaults.PDFTimeoutSeconds
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Defaults returns the built-in defaults with environment fallbacks applied.
func Defaults() Config {
	return Config{
		Format:            DefaultFormat,
		OutputDir:         DefaultOutputDir,
		PDFTimeoutSeconds: DefaultPDFTimeoutSeconds,
		ChromePath:        os.Getenv(EnvChromePath),
		S3Bucket:          os.Getenv(EnvS3Bucket),
		S3Region:          os.Getenv(EnvAWSRegion),
	}
}

func jsonName(structField string) string {
	if f, ok := configFieldNames[structField]; ok {
		return f
	}
	return strings.ToLower(structField)
}

var configFieldNames = map[string]string{
	"Styles":            "styles",
	"Format":            "format",
	"PDFTimeoutSeconds": "pdf_timeout_seconds",
}
