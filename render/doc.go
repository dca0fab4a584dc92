// Package render turns PDF pages into raster images for OCR.
//
// Two backends are provided: MuPDF via go-fitz (the default, no system
// dependency) and poppler's pdftoppm (requires the poppler utilities on
// PATH). Each backend caps how many pages it renders from a document to
// bound peak memory on constrained hosts. Pages are rendered one at a time
// through the [Document] interface so callers can release each image before
// requesting the next.
package render
