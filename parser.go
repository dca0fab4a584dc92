package lablens

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"os"
	"strings"

	"github.com/uzii9/lablens/format"
	"github.com/uzii9/lablens/imaging"
	"github.com/uzii9/lablens/labreport"
	"github.com/uzii9/lablens/model"
	"github.com/uzii9/lablens/ocr"
	"github.com/uzii9/lablens/render"
)

// Warning describes a non-fatal issue encountered during processing.
type Warning struct {
	Code    string
	Message string
	Page    int // 0 when not page-specific
}

// FormatWarnings renders warnings as a single human-readable string.
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		if w.Page > 0 {
			parts[i] = fmt.Sprintf("[%s] page %d: %s", w.Code, w.Page, w.Message)
		} else {
			parts[i] = fmt.Sprintf("[%s] %s", w.Code, w.Message)
		}
	}
	return strings.Join(parts, "; ")
}

// recognizer is the OCR collaborator contract consumed by the pipeline.
// The production implementation is ocr.Client; tests inject fakes.
type recognizer interface {
	Recognize(img image.Image) (ocr.Result, error)
	Close() error
}

// Parser provides a fluent interface for parsing a scanned lab report PDF.
// Each configuration method returns a new Parser instance, making chains
// safe to share and reuse.
type Parser struct {
	filename string
	options  ParseOptions

	// Injectable collaborators; nil means the production defaults.
	renderer      render.Renderer
	newRecognizer func(ocr.Config) (recognizer, error)

	// Accumulated error (fail-fast)
	err error

	warnings []Warning
}

// clone creates a copy of the Parser with a copy of its options.
func (p *Parser) clone() *Parser {
	return &Parser{
		filename:      p.filename,
		options:       p.options.clone(),
		renderer:      p.renderer,
		newRecognizer: p.newRecognizer,
		err:           p.err,
		warnings:      append([]Warning(nil), p.warnings...),
	}
}

// MaxPages limits how many pages are rendered and recognized. The rendering
// backend's own cap still applies.
func (p *Parser) MaxPages(n int) *Parser {
	np := p.clone()
	np.options.maxPages = n
	return np
}

// Language sets the OCR language code (e.g. "eng", "eng+fra").
func (p *Parser) Language(lang string) *Parser {
	np := p.clone()
	np.options.ocrConfig.Language = lang
	return np
}

// Renderer selects the rendering backend by name ("mupdf" or "poppler").
func (p *Parser) Renderer(name string) *Parser {
	np := p.clone()
	np.options.renderer = name
	return np
}

// OCRConfig replaces the OCR engine settings wholesale.
func (p *Parser) OCRConfig(cfg ocr.Config) *Parser {
	np := p.clone()
	np.options.ocrConfig = cfg
	return np
}

// WithFileConfig overlays settings loaded from a YAML configuration file.
func (p *Parser) WithFileConfig(cfg FileConfig) *Parser {
	np := p.clone()
	np.options = cfg.apply(np.options)
	return np
}

// Logger directs pipeline diagnostics to the given logger. Stdout carries
// the JSON result, so loggers should write to stderr.
func (p *Parser) Logger(logger *slog.Logger) *Parser {
	np := p.clone()
	np.options.logger = logger
	return np
}

// Result runs the full pipeline: render, enhance, recognize, validate,
// extract. It is the terminal operation; warnings report non-fatal issues
// such as a document that does not look like an AHS lab report.
func (p *Parser) Result() (*Result, []Warning, error) {
	return p.ResultContext(context.Background())
}

// ResultContext is Result with caller-controlled cancellation.
func (p *Parser) ResultContext(ctx context.Context) (*Result, []Warning, error) {
	if p.err != nil {
		return nil, p.warnings, p.err
	}

	doc, warnings, err := p.recognize(ctx)
	if err != nil {
		return nil, warnings, err
	}

	parsed := labreport.Parse(doc.CombinedText())
	return newResult(doc, parsed), warnings, nil
}

// recognize runs the recognition stage: one page at a time, per-page
// buffers released before the next page is rendered.
func (p *Parser) recognize(ctx context.Context) (*model.Document, []Warning, error) {
	warnings := append([]Warning(nil), p.warnings...)
	logger := p.options.log()

	if err := p.checkInput(); err != nil {
		return nil, warnings, err
	}

	renderer := p.renderer
	if renderer == nil {
		var err error
		renderer, err = render.ByName(p.options.renderer)
		if err != nil {
			return nil, warnings, err
		}
	}

	pdf, err := renderer.Open(ctx, p.filename, p.options.maxPages)
	if err != nil {
		return nil, warnings, err
	}
	defer pdf.Close()

	if pdf.PageCount() == 0 {
		return nil, warnings, render.ErrNoPages
	}
	logger.Info("rendering PDF", "backend", renderer.Name(), "pages", pdf.PageCount())

	newRecognizer := p.newRecognizer
	if newRecognizer == nil {
		newRecognizer = func(cfg ocr.Config) (recognizer, error) {
			return ocr.New(cfg)
		}
	}
	client, err := newRecognizer(p.options.ocrConfig)
	if err != nil {
		return nil, warnings, err
	}
	defer client.Close()

	doc := model.NewDocument()
	for i := 0; i < pdf.PageCount(); i++ {
		img, err := pdf.Image(ctx, i)
		if err != nil {
			return nil, warnings, fmt.Errorf("render page %d: %w", i+1, err)
		}

		processed := imaging.EnhanceOrOriginal(img, logger)
		recognized, err := client.Recognize(processed)
		if err != nil {
			return nil, warnings, fmt.Errorf("recognize page %d: %w", i+1, err)
		}

		page := model.NewRecognizedPage(recognized.Text, recognized.MeanConfidence())
		doc.AddPage(page)
		logger.Info("page processed", "page", page.Number, "confidence", page.Confidence, "words", page.WordCount)
	}

	if combined := doc.CombinedText(); !labreport.IsAHSDocument(combined) {
		msg := "document may not be a valid AHS lab report"
		logger.Warn(msg, "indicators", labreport.CountIndicators(combined))
		warnings = append(warnings, Warning{Code: "not-ahs", Message: msg})
	}

	return doc, warnings, nil
}

// checkInput verifies the file exists and is a PDF before rendering.
func (p *Parser) checkInput() error {
	if p.filename == "" {
		return fmt.Errorf("no filename specified")
	}
	f, err := os.Open(p.filename)
	if err != nil {
		return fmt.Errorf("PDF file not found: %s", p.filename)
	}
	defer f.Close()

	magic := make([]byte, 8)
	n, _ := f.Read(magic)
	if format.DetectFromMagic(magic[:n]) != format.PDF {
		return fmt.Errorf("unsupported file format: %s is not a PDF", p.filename)
	}
	return nil
}
