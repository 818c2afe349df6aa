package export

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/storage"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jonathan/resume-builder/internal/validation"
	"golang.org/x/sync/errgroup"
)

// Output formats.
const (
	FormatHTML = "html"
	FormatPDF  = "pdf"
)

// maxConcurrentConversions bounds parallel PDF conversions and writes.
const maxConcurrentConversions = 2

// Options controls a single export run.
type Options struct {
	// Styles to export; empty means every registered style.
	Styles []string
	// Format is FormatHTML or FormatPDF; empty means FormatHTML.
	Format string
	// OutputDir is a local directory or an s3://bucket/prefix URI.
	OutputDir string
	// Date used in generated filenames; zero means now.
	Date time.Time
}

// Artifact describes one written file.
type Artifact struct {
	Style string `json:"style"`
	Path  string `json:"path"`
	Bytes int    `json:"bytes"`
}

// Exporter validates, renders and writes documents.
type Exporter struct {
	engine  *rendering.Engine
	store   storage.FileStore
	pdf     PDFRenderer
	Verbose bool
}

// NewExporter wires the export collaborators. pdf may be nil when only HTML is
// exported.
func NewExporter(engine *rendering.Engine, store storage.FileStore, pdf PDFRenderer) *Exporter {
	if engine == nil {
		engine = rendering.NewEngine()
	}
	if store == nil {
		store = storage.NewLocal("")
	}
	return &Exporter{engine: engine, store: store, pdf: pdf}
}

// Export validates doc and, when valid, writes one file per requested style.
// An invalid document yields *InvalidDocumentError and nothing is written.
// Collaborator failures yield *ExportError. Artifacts are in style order.
func (e *Exporter) Export(ctx context.Context, doc *types.Document, opts Options) ([]Artifact, error) {
	result := validation.ValidateDocument(doc)
	if !result.Valid {
		return nil, &InvalidDocumentError{Result: result}
	}

	format := strings.ToLower(strings.TrimSpace(opts.Format))
	if format == "" {
		format = FormatHTML
	}
	if format != FormatHTML && format != FormatPDF {
		return nil, fmt.Errorf("unsupported export format %q", opts.Format)
	}
	if format == FormatPDF && e.pdf == nil {
		return nil, &ExportError{Stage: StagePDF, Cause: errors.New("no pdf renderer configured")}
	}

	styles := opts.Styles
	if len(styles) == 0 {
		styles = e.engine.Styles()
	}
	date := opts.Date
	if date.IsZero() {
		date = time.Now()
	}

	rendered, err := e.engine.RenderStyles(ctx, doc, styles)
	if err != nil {
		return nil, &ExportError{Stage: StageRender, Cause: err}
	}

	for _, style := range styles {
		if err := atsGuard(rendered[style]); err != nil {
			return nil, &ExportError{Stage: StageATS, Style: style, Cause: err}
		}
	}

	artifacts := make([]Artifact, len(styles))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentConversions)

	for i, style := range styles {
		name := GenerateFileNameAt(doc.PersonalInfo.Name, style, format, date)
		path := joinPath(opts.OutputDir, name)
		html := rendered[style]

		g.Go(func() error {
			data := []byte(html)
			if format == FormatPDF {
				pdf, err := e.pdf.RenderPDF(gCtx, html)
				if err != nil {
					return &ExportError{Stage: StagePDF, Style: style, Path: path, Cause: err}
				}
				data = pdf
			}

			if err := e.store.WriteFile(gCtx, path, data); err != nil {
				return &ExportError{Stage: StageWrite, Style: style, Path: path, Cause: err}
			}
			if e.Verbose {
				log.Printf("[EXPORT] Wrote %s (%d bytes)", path, len(data))
			}

			artifacts[i] = Artifact{Style: style, Path: path, Bytes: len(data)}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return artifacts, nil
}

// atsGuard rejects rendered output that breaks the ATS structure rules.
func atsGuard(html string) error {
	violations, err := validation.CheckATS(html)
	if err != nil {
		return err
	}
	if len(violations) == 0 {
		return nil
	}

	kinds := make([]string, 0, len(violations))
	for _, v := range violations {
		kinds = append(kinds, v.Type)
	}
	return fmt.Errorf("rendered html violates ATS rules: %s", strings.Join(kinds, ", "))
}

func joinPath(dir, name string) string {
	if dir == "" {
		return name
	}
	if storage.IsS3Path(dir) {
		return strings.TrimRight(dir, "/") + "/" + name
	}
	return filepath.Join(dir, name)
}
