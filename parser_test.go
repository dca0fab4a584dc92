package lablens

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/uzii9/lablens/ocr"
	"github.com/uzii9/lablens/render"
)

// fakeRenderer serves a fixed number of blank page images.
type fakeRenderer struct {
	pages   int
	openErr error
}

func (f *fakeRenderer) Name() string  { return "fake" }
func (f *fakeRenderer) MaxPages() int { return 10 }

func (f *fakeRenderer) Open(ctx context.Context, path string, maxPages int) (render.Document, error) {
	if f.openErr != nil {
		return nil, f.openErr
	}
	pages := f.pages
	if maxPages > 0 && pages > maxPages {
		pages = maxPages
	}
	return &fakeDocument{pages: pages}, nil
}

type fakeDocument struct {
	pages  int
	closed bool
}

func (d *fakeDocument) PageCount() int { return d.pages }

func (d *fakeDocument) Image(ctx context.Context, index int) (image.Image, error) {
	return image.NewGray(image.Rect(0, 0, 850, 1100)), nil
}

func (d *fakeDocument) Close() error {
	d.closed = true
	return nil
}

// fakeRecognizer returns canned text per page, in order.
type fakeRecognizer struct {
	texts       []string
	confidences []float64
	calls       int
	closed      bool
}

func (f *fakeRecognizer) Recognize(img image.Image) (ocr.Result, error) {
	i := f.calls
	f.calls++
	if i >= len(f.texts) {
		return ocr.Result{}, fmt.Errorf("unexpected page %d", i+1)
	}
	return ocr.Result{
		Text:            f.texts[i],
		WordConfidences: []float64{f.confidences[i]},
	}, nil
}

func (f *fakeRecognizer) Close() error {
	f.closed = true
	return nil
}

// writeTestPDF creates a file with a PDF magic header; the fake renderer
// never reads past it.
func writeTestPDF(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "report.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4\n%fake"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func newTestParser(t *testing.T, renderer *fakeRenderer, rec *fakeRecognizer) *Parser {
	t.Helper()
	p := Open(writeTestPDF(t))
	p.renderer = renderer
	p.newRecognizer = func(ocr.Config) (recognizer, error) { return rec, nil }
	return p
}

func TestResultEndToEnd(t *testing.T) {
	rec := &fakeRecognizer{
		texts: []string{
			"Alberta Health Services MyHealth\nLaboratory Report",
			"Glucose: 5.4 mmol/L\nSodium: 140 mmol/L",
		},
		confidences: []float64{90, 80},
	}
	p := newTestParser(t, &fakeRenderer{pages: 2}, rec)

	result, warnings, err := p.Result()
	if err != nil {
		t.Fatalf("Result failed: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}

	if !result.Success {
		t.Error("expected success")
	}
	if !strings.Contains(result.Text, "\n\n") {
		t.Error("pages should be joined by a blank line")
	}
	if result.ExtractedText != result.Text {
		t.Error("extractedText must alias text")
	}
	if result.Confidence != 85 {
		t.Errorf("expected average confidence 85, got %v", result.Confidence)
	}

	panel, ok := result.Panels["general_tests"]
	if !ok {
		t.Fatal("expected general_tests panel")
	}
	if len(panel.Tests) != 2 {
		t.Fatalf("expected 2 tests, got %d", len(panel.Tests))
	}

	md := result.Metadata
	if md == nil {
		t.Fatal("expected metadata")
	}
	if md.TotalPages != 2 {
		t.Errorf("expected 2 pages, got %d", md.TotalPages)
	}
	if md.TestsFound != 2 || md.PanelsIdentified != 1 {
		t.Errorf("unexpected extraction counts: %+v", md)
	}
	if md.TotalCharacters != len(result.Text) {
		t.Errorf("character count mismatch: %d vs %d", md.TotalCharacters, len(result.Text))
	}
	if md.DocumentID == "" || md.ProcessingCompletedAt == "" {
		t.Error("expected run identifiers in metadata")
	}

	if !rec.closed {
		t.Error("recognizer should be closed after the run")
	}
}

func TestResultWarnsOnNonAHSDocument(t *testing.T) {
	rec := &fakeRecognizer{
		texts:       []string{"grocery list: apples 3 bananas 5"},
		confidences: []float64{70},
	}
	p := newTestParser(t, &fakeRenderer{pages: 1}, rec)

	result, warnings, err := p.Result()
	if err != nil {
		t.Fatalf("Result failed: %v", err)
	}
	if result == nil || !result.Success {
		t.Fatal("non-AHS input is a warning, not a failure")
	}
	found := false
	for _, w := range warnings {
		if w.Code == "not-ahs" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected not-ahs warning, got %v", warnings)
	}
}

func TestResultMissingFile(t *testing.T) {
	p := Open(filepath.Join(t.TempDir(), "missing.pdf"))
	p.renderer = &fakeRenderer{pages: 1}

	if _, _, err := p.Result(); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestResultRejectsNonPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.pdf")
	if err := os.WriteFile(path, []byte("just text"), 0o644); err != nil {
		t.Fatal(err)
	}
	p := Open(path)
	p.renderer = &fakeRenderer{pages: 1}

	_, _, err := p.Result()
	if err == nil || !strings.Contains(err.Error(), "not a PDF") {
		t.Errorf("expected format rejection, got %v", err)
	}
}

func TestResultEmptyPageSet(t *testing.T) {
	p := newTestParser(t, &fakeRenderer{pages: 0}, &fakeRecognizer{})

	_, _, err := p.Result()
	if err != render.ErrNoPages {
		t.Errorf("expected ErrNoPages, got %v", err)
	}
}

func TestMaxPagesFlowsToRenderer(t *testing.T) {
	rec := &fakeRecognizer{
		texts:       []string{"page one text"},
		confidences: []float64{90},
	}
	p := newTestParser(t, &fakeRenderer{pages: 4}, rec).MaxPages(1)

	result, _, err := p.Result()
	if err != nil {
		t.Fatalf("Result failed: %v", err)
	}
	if result.Metadata.TotalPages != 1 {
		t.Errorf("expected 1 page, got %d", result.Metadata.TotalPages)
	}
}

func TestChainingReturnsNewInstances(t *testing.T) {
	base := Open("report.pdf")
	limited := base.MaxPages(2)
	if base == limited {
		t.Error("chain methods must return new instances")
	}
	if base.options.maxPages != 0 {
		t.Error("base options were mutated")
	}
	if limited.options.maxPages != 2 {
		t.Error("chained option not applied")
	}
}

func TestFormatWarnings(t *testing.T) {
	got := FormatWarnings([]Warning{
		{Code: "not-ahs", Message: "looks off"},
		{Code: "low-confidence", Message: "blurry scan", Page: 2},
	})
	want := "[not-ahs] looks off; [low-confidence] page 2: blurry scan"
	if got != want {
		t.Errorf("FormatWarnings = %q, want %q", got, want)
	}
}
