package render

import (
	"context"
	"fmt"
	"image"
	"os"

	"github.com/gen2brain/go-fitz"
)

const (
	// fitzMaxPages bounds pages rendered per document with MuPDF. The
	// in-process renderer holds more per page, so its cap is the strictest.
	fitzMaxPages = 5

	// fitzDPI is 1.5x the PDF's native 72 DPI; enough for OCR without the
	// memory cost of full 300 DPI rasters.
	fitzDPI = 108
)

// Fitz renders PDF pages with MuPDF via go-fitz.
type Fitz struct{}

// NewFitz creates the MuPDF-backed renderer.
func NewFitz() *Fitz {
	return &Fitz{}
}

// Name implements Renderer.
func (f *Fitz) Name() string { return "mupdf" }

// MaxPages implements Renderer.
func (f *Fitz) MaxPages() int { return fitzMaxPages }

// Open implements Renderer.
func (f *Fitz) Open(ctx context.Context, path string, maxPages int) (Document, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("PDF file not found: %s", path)
	}
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("MuPDF failed to open %s: %w", path, err)
	}

	pages := doc.NumPage()
	limit := clampPages(maxPages, fitzMaxPages)
	if pages > limit {
		pages = limit
	}
	return &fitzDocument{doc: doc, pages: pages}, nil
}

type fitzDocument struct {
	doc   *fitz.Document
	pages int
}

func (d *fitzDocument) PageCount() int { return d.pages }

func (d *fitzDocument) Image(ctx context.Context, index int) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if index < 0 || index >= d.pages {
		return nil, fmt.Errorf("page index %d out of range [0,%d)", index, d.pages)
	}
	img, err := d.doc.ImageDPI(index, fitzDPI)
	if err != nil {
		return nil, fmt.Errorf("MuPDF render of page %d failed: %w", index+1, err)
	}
	return img, nil
}

func (d *fitzDocument) Close() error {
	return d.doc.Close()
}
