package render

import (
	"context"
	"errors"
	"fmt"
	"image"
	"strings"
)

// ErrNoPages is returned when a PDF renders to an empty page set.
var ErrNoPages = errors.New("no pages found in PDF")

// Renderer opens PDF files for page-by-page rasterization.
type Renderer interface {
	// Name identifies the rendering backend ("mupdf", "poppler").
	Name() string

	// MaxPages is the backend's hard cap on pages rendered per document.
	MaxPages() int

	// Open prepares a document for rendering at most maxPages pages; zero or
	// less means the backend's own cap. The returned Document must be closed
	// by the caller.
	Open(ctx context.Context, path string, maxPages int) (Document, error)
}

// Document is an open PDF ready for rasterization. Page images are produced
// one at a time; the caller should drop each image before requesting the
// next to keep peak memory bounded.
type Document interface {
	// PageCount is the number of renderable pages, already clamped to the
	// backend's cap.
	PageCount() int

	// Image rasterizes the page at the given 0-based index.
	Image(ctx context.Context, index int) (image.Image, error)

	Close() error
}

// Default returns the preferred rendering backend: MuPDF, which ships with
// the binary and needs no system installation. The poppler backend remains
// selectable for hosts where MuPDF misbehaves on a document.
func Default() Renderer {
	return NewFitz()
}

// ByName returns the renderer for a backend name, or an error listing the
// known backends.
func ByName(name string) (Renderer, error) {
	switch strings.ToLower(name) {
	case "", "auto":
		return Default(), nil
	case "mupdf", "fitz":
		return NewFitz(), nil
	case "poppler", "pdftoppm":
		return NewPoppler(), nil
	default:
		return nil, fmt.Errorf("unknown rendering backend %q (want mupdf or poppler)", name)
	}
}

// RemediationError reports a missing system dependency together with the
// steps to install it, so the caller can emit actionable output instead of
// a bare failure message.
type RemediationError struct {
	Dependency   string
	Issue        string
	Solution     string
	Instructions []string
}

func (e *RemediationError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Dependency, e.Issue)
}

// clampPages applies the backend cap to a requested page budget. A request
// of zero or less means "as many as the backend allows".
func clampPages(requested, backendCap int) int {
	if requested <= 0 || requested > backendCap {
		return backendCap
	}
	return requested
}
