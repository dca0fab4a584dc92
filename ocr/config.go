package ocr

import "errors"

// ErrOCRNotEnabled is returned when OCR functions are called but OCR support
// was not compiled in. Rebuild with -tags ocr to enable OCR support.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// PageSegMode selects how Tesseract segments the page before recognition.
type PageSegMode int

// Page segmentation modes, matching Tesseract's --psm values.
const (
	PSMOSDOnly     PageSegMode = 0  // Orientation and script detection only
	PSMAutoOSD     PageSegMode = 1  // Automatic with OSD
	PSMAutoOnly    PageSegMode = 2  // Automatic, no OSD or OCR
	PSMAuto        PageSegMode = 3  // Fully automatic (Tesseract default)
	PSMSingleCol   PageSegMode = 4  // Single column of variable sizes
	PSMSingleBlock PageSegMode = 6  // Single uniform block of text
	PSMSingleLine  PageSegMode = 7  // Single text line
	PSMSparseText  PageSegMode = 11 // Find as much text as possible
)

// Config holds the recognition settings passed to the OCR engine.
type Config struct {
	// Language is the Tesseract language code; multiple languages can be
	// joined with "+" (e.g. "eng+fra").
	Language string

	// PageSegMode controls page layout analysis. Lab reports render as a
	// single dense block, so the default is PSMSingleBlock.
	PageSegMode PageSegMode

	// Whitelist restricts recognition to the given characters. Empty means
	// unrestricted.
	Whitelist string

	// PreserveInterwordSpaces keeps Tesseract from collapsing the wide gaps
	// between a test name and its value column.
	PreserveInterwordSpaces bool
}

// DefaultConfig returns the recognition settings tuned for scanned lab
// reports.
func DefaultConfig() Config {
	return Config{
		Language:                "eng",
		PageSegMode:             PSMSingleBlock,
		PreserveInterwordSpaces: true,
	}
}

// Result holds the recognition output for a single page image.
type Result struct {
	// Text is the recognized text, trimmed of surrounding whitespace.
	Text string

	// WordConfidences are per-word confidence scores in [0,100]. Words the
	// engine reports with a non-positive sentinel are already excluded.
	WordConfidences []float64
}

// MeanConfidence averages the word confidences; 0 when no word was measured.
func (r Result) MeanConfidence() float64 {
	if len(r.WordConfidences) == 0 {
		return 0
	}
	var sum float64
	for _, c := range r.WordConfidences {
		sum += c
	}
	return sum / float64(len(r.WordConfidences))
}

// WordCount returns the number of measured words.
func (r Result) WordCount() int {
	return len(r.WordConfidences)
}
