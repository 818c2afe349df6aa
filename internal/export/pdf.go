package export

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// PDFRenderer converts standalone HTML into PDF bytes.
type PDFRenderer interface {
	RenderPDF(ctx context.Context, html string) ([]byte, error)
}

// DefaultPDFTimeout bounds a single conversion.
const DefaultPDFTimeout = 60 * time.Second

// ChromePDF prints HTML to PDF with a headless Chrome.
type ChromePDF struct {
	ExecPath string
	Timeout  time.Duration
	Verbose  bool
}

// NewChromePDF creates a renderer. An empty execPath falls back to CHROME_PATH
// and then to chromedp's browser lookup.
func NewChromePDF(execPath string, timeout time.Duration, verbose bool) *ChromePDF {
	if execPath == "" {
		execPath = os.Getenv("CHROME_PATH")
	}
	if timeout <= 0 {
		timeout = DefaultPDFTimeout
	}
	return &ChromePDF{ExecPath: execPath, Timeout: timeout, Verbose: verbose}
}

// RenderPDF loads html into a blank page and prints it as A4.
func (c *ChromePDF) RenderPDF(ctx context.Context, html string) ([]byte, error) {
	if c.Verbose {
		log.Printf("[PDF] Starting headless browser (%d bytes of HTML)", len(html))
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if c.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(c.ExecPath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, c.Timeout)
	defer cancel()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4: 8.27 x 11.69 inches
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("pdf rendering failed: %w", err)
	}

	if c.Verbose {
		log.Printf("[PDF] Rendered PDF: %d bytes", len(pdf))
	}
	return pdf, nil
}
