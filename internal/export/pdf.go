// Package export converts the rendered proposal into its outgoing forms: a
// PDF file and a clipboard text summary. PDF generation renders the proposal
// HTML in a headless browser and prints it to an A4 page.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
	"go.uber.org/zap"
)

// Options configures the PDF rendering pipeline.
type Options struct {
	// Scale is the print scale factor (Chromium accepts 0.1 to 2).
	Scale float64
	// BackgroundColor is painted behind the document. The proposal page sets
	// its own white background; this is the fallback.
	BackgroundColor string
	// ImageLoadTimeout bounds how long the exporter waits for external images
	// (the client logo) before printing without them.
	ImageLoadTimeout time.Duration
}

// DefaultOptions returns the export configuration used by the editor.
func DefaultOptions() Options {
	return Options{
		Scale:            1.0,
		BackgroundColor:  "#ffffff",
		ImageLoadTimeout: 10 * time.Second,
	}
}

// PDFExporter renders proposal HTML to PDF bytes through a headless browser.
type PDFExporter struct {
	opts   Options
	logger *zap.Logger
}

// NewPDFExporter returns an exporter with the given options.
func NewPDFExporter(opts Options, logger *zap.Logger) *PDFExporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Scale <= 0 {
		opts.Scale = 1.0
	}
	if opts.ImageLoadTimeout <= 0 {
		opts.ImageLoadTimeout = 10 * time.Second
	}
	return &PDFExporter{opts: opts, logger: logger}
}

// Filename returns the download name for a client's proposal.
func Filename(clientName string) string {
	return fmt.Sprintf("Proposal for %s.pdf", clientName)
}

// Render produces the PDF bytes for the given proposal HTML. Unlike the
// best-effort persistence and logo paths, a failure here is returned to the
// caller: export is a user-initiated action whose failure must be visible.
func (e *PDFExporter) Render(html string) ([]byte, error) {
	browser := rod.New()
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("failed to launch browser for PDF export: %w", err)
	}
	defer func() {
		if err := browser.Close(); err != nil {
			e.logger.Warn("failed to close export browser",
				zap.String("op", "export.Render"),
				zap.Error(err),
			)
		}
	}()

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("failed to open export page: %w", err)
	}

	if err := page.SetDocumentContent(html); err != nil {
		return nil, fmt.Errorf("failed to load proposal document: %w", err)
	}

	// Wait for external images up to the timeout, then print with whatever
	// loaded. A missing logo degrades to a hidden image, not an error.
	if err := page.Timeout(e.opts.ImageLoadTimeout).WaitIdle(e.opts.ImageLoadTimeout); err != nil {
		e.logger.Warn("proceeding with PDF export before all images loaded",
			zap.String("op", "export.Render"),
			zap.Duration("timeout", e.opts.ImageLoadTimeout),
			zap.Error(err),
		)
	}

	// A4 portrait, inches
	scale := e.opts.Scale
	paperWidth := 8.27
	paperHeight := 11.69

	stream, err := page.PDF(&proto.PagePrintToPDF{
		PrintBackground: true,
		Scale:           &scale,
		PaperWidth:      &paperWidth,
		PaperHeight:     &paperHeight,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to print proposal to PDF: %w", err)
	}

	data, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF stream: %w", err)
	}
	return data, nil
}
