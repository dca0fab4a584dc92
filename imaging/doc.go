// Package imaging prepares rendered page images for OCR.
//
// Scanned lab reports arrive at uneven quality; a grayscale conversion, a
// mild contrast boost, and a minimum pixel footprint measurably improve
// Tesseract's recognition. Enhancement is best-effort: a failure falls back
// to the unprocessed image rather than aborting the page.
package imaging
