package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Validate and export a resume document to HTML or PDF files",
	Long: `Validates a resume document and, if it passes, writes one file per style named
{name}_{style}_{YYYY-MM-DD}.{format}. The output directory may be an s3://bucket/prefix URI.
Invalid documents are refused and every validation error is listed.`,
	RunE: runExport,
}

var (
	exportInput  string
	exportStyles []string
	exportFormat string
	exportOutDir string
	exportDate   string
)

func init() {
	exportCmd.Flags().StringVarP(&exportInput, "in", "i", "", "Path to resume JSON (required)")
	exportCmd.Flags().StringSliceVarP(&exportStyles, "style", "s", nil, "Styles to export (default: all, or 'styles' from config)")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Output format: html or pdf (default from config, else html)")
	exportCmd.Flags().StringVarP(&exportOutDir, "out-dir", "o", "", "Output directory or s3:// URI (default from config, else ./out)")
	exportCmd.Flags().StringVar(&exportDate, "date", "", "Date for filenames as YYYY-MM-DD (default: today)")

	markRequired(exportCmd, "in")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	styles := exportStyles
	if len(styles) == 0 {
		styles = cfg.Styles
	}
	format := exportFormat
	if format == "" {
		format = cfg.Format
	}
	target := exportTarget(cfg, exportOutDir)

	var date time.Time
	if exportDate != "" {
		date, err = time.ParseInLocation("2006-01-02", exportDate, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --date %q: expected YYYY-MM-DD", exportDate)
		}
	}

	m, err := openDocument(ctx, cfg, exportInput)
	if err != nil {
		return err
	}

	store, err := newStore(ctx, cfg, target)
	if err != nil {
		return err
	}

	var pdf export.PDFRenderer
	if format == export.FormatPDF {
		pdf = export.NewChromePDF(cfg.ChromePath, time.Duration(cfg.PDFTimeoutSeconds)*time.Second, cfg.Verbose)
	}

	exporter := export.NewExporter(rendering.NewEngine(), store, pdf)
	exporter.Verbose = cfg.Verbose

	if cfg.Verbose {
		log.Printf("[EXPORT] Exporting %s as %s to %s", exportInput, format, target)
	}

	doc := m.GetData()
	artifacts, err := exporter.Export(ctx, &doc, export.Options{
		Styles:    styles,
		Format:    format,
		OutputDir: target,
		Date:      date,
	})
	if err != nil {
		var invalid *export.InvalidDocumentError
		if errors.As(err, &invalid) {
			observability.NewPrinter(os.Stdout).PrintValidationResult(invalid.Result)
			return fmt.Errorf("export refused: %w", err)
		}
		return fmt.Errorf("export failed: %w", err)
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintExportSummary(artifacts)
		return nil
	}
	for _, a := range artifacts {
		_, _ = fmt.Fprintf(os.Stdout, "Wrote %s\n", a.Path)
	}
	return nil
}
