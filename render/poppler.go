package render

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

const (
	// popplerMaxPages bounds pages rendered per document with pdftoppm.
	popplerMaxPages = 10

	// popplerDPI gives pdftoppm output enough resolution for OCR.
	popplerDPI = 300
)

// Poppler renders PDF pages by shelling out to poppler's pdftoppm.
type Poppler struct {
	// Binary is the pdftoppm executable; defaults to "pdftoppm" on PATH.
	Binary string

	// DPI overrides the render resolution; defaults to 300.
	DPI int
}

// NewPoppler creates the pdftoppm-backed renderer with defaults.
func NewPoppler() *Poppler {
	return &Poppler{Binary: "pdftoppm", DPI: popplerDPI}
}

// Name implements Renderer.
func (p *Poppler) Name() string { return "poppler" }

// MaxPages implements Renderer.
func (p *Poppler) MaxPages() int { return popplerMaxPages }

// Open implements Renderer. It rasterizes up to maxPages pages into a
// temporary directory in one pdftoppm invocation; page images are decoded
// lazily, one per Image call.
func (p *Poppler) Open(ctx context.Context, path string, maxPages int) (Document, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("PDF file not found: %s", path)
	}

	binary := p.Binary
	if binary == "" {
		binary = "pdftoppm"
	}
	if _, err := exec.LookPath(binary); err != nil {
		return nil, &RemediationError{
			Dependency: "poppler",
			Issue:      "Poppler PDF utilities not found. Please install Poppler to process PDF files.",
			Solution:   "Install the poppler-utils package for your platform.",
			Instructions: []string{
				"Debian/Ubuntu: apt-get install poppler-utils",
				"macOS: brew install poppler",
				"Windows: download a release from https://github.com/oschwartz10612/poppler-windows/releases/ and add its bin directory to PATH",
			},
		}
	}

	dpi := p.DPI
	if dpi <= 0 {
		dpi = popplerDPI
	}
	limit := clampPages(maxPages, popplerMaxPages)

	tmpDir, err := os.MkdirTemp("", "lablens-render-*")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}

	prefix := filepath.Join(tmpDir, "page")
	cmd := exec.CommandContext(ctx, binary,
		"-r", strconv.Itoa(dpi),
		"-png",
		"-f", "1",
		"-l", strconv.Itoa(limit),
		path, prefix)
	if out, err := cmd.CombinedOutput(); err != nil {
		os.RemoveAll(tmpDir)
		return nil, fmt.Errorf("pdftoppm failed: %w: %s", err, strings.TrimSpace(string(out)))
	}

	files, err := pageFiles(prefix)
	if err != nil {
		os.RemoveAll(tmpDir)
		return nil, err
	}
	return &popplerDocument{dir: tmpDir, files: files}, nil
}

// pageFiles collects pdftoppm output files (prefix-1.png, prefix-2.png, ...)
// sorted by page number; pdftoppm zero-pads the numbers depending on the
// document's total page count.
func pageFiles(prefix string) ([]string, error) {
	matches, err := filepath.Glob(prefix + "-*.png")
	if err != nil {
		return nil, err
	}
	sort.Slice(matches, func(i, j int) bool {
		return pageNumber(matches[i]) < pageNumber(matches[j])
	})
	return matches, nil
}

func pageNumber(file string) int {
	base := strings.TrimSuffix(filepath.Base(file), ".png")
	idx := strings.LastIndex(base, "-")
	if idx < 0 {
		return 0
	}
	n, err := strconv.Atoi(base[idx+1:])
	if err != nil {
		return 0
	}
	return n
}

type popplerDocument struct {
	dir   string
	files []string
}

func (d *popplerDocument) PageCount() int { return len(d.files) }

func (d *popplerDocument) Image(ctx context.Context, index int) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if index < 0 || index >= len(d.files) {
		return nil, fmt.Errorf("page index %d out of range [0,%d)", index, len(d.files))
	}
	f, err := os.Open(d.files[index])
	if err != nil {
		return nil, fmt.Errorf("open rendered page: %w", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode rendered page %d: %w", index+1, err)
	}
	return img, nil
}

func (d *popplerDocument) Close() error {
	return os.RemoveAll(d.dir)
}
