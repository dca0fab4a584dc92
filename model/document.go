package model

import "strings"

// Document represents a recognized document: the ordered pages produced by
// the recognition stage.
type Document struct {
	Pages []*RecognizedPage
}

// NewDocument creates a new empty document.
func NewDocument() *Document {
	return &Document{
		Pages: make([]*RecognizedPage, 0),
	}
}

// AddPage adds a page to the document and assigns its 1-indexed number.
func (d *Document) AddPage(page *RecognizedPage) {
	page.Number = len(d.Pages) + 1
	d.Pages = append(d.Pages, page)
}

// GetPage returns a page by number (1-indexed), or nil if out of range.
func (d *Document) GetPage(number int) *RecognizedPage {
	if number < 1 || number > len(d.Pages) {
		return nil
	}
	return d.Pages[number-1]
}

// PageCount returns the total number of pages.
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// CombinedText returns all page text joined by a blank line, in page order.
func (d *Document) CombinedText() string {
	texts := make([]string, len(d.Pages))
	for i, page := range d.Pages {
		texts[i] = page.Text
	}
	return strings.Join(texts, "\n\n")
}

// AverageConfidence returns the mean per-page confidence, or 0 for an empty
// document.
func (d *Document) AverageConfidence() float64 {
	if len(d.Pages) == 0 {
		return 0
	}
	var total float64
	for _, page := range d.Pages {
		total += page.Confidence
	}
	return total / float64(len(d.Pages))
}

// WordCount returns the total number of whitespace-separated words in the
// combined text.
func (d *Document) WordCount() int {
	return len(strings.Fields(d.CombinedText()))
}
