// Package lablens extracts structured lab test results from scanned AHS
// lab report PDFs.
//
// Processing runs in two stages: a recognition stage renders PDF pages to
// raster images, enhances them, and runs OCR; an extraction stage applies
// pattern matching to the recognized text and organizes the results into
// panels. The combined output is a single JSON-serializable Result.
//
// Basic usage:
//
//	result, warnings, err := lablens.Open("report.pdf").Result()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", lablens.FormatWarnings(warnings))
//	}
//
// With options:
//
//	result, _, err := lablens.Open("report.pdf").
//	    MaxPages(3).
//	    Language("eng").
//	    Renderer("poppler").
//	    Result()
//
// OCR requires building with the "ocr" tag and a system Tesseract install;
// see the ocr package documentation.
package lablens

// Open prepares a Parser for the given PDF file. Configuration methods can
// be chained; Result runs the pipeline.
//
// Example:
//
//	result, warnings, err := lablens.Open("report.pdf").Result()
func Open(filename string) *Parser {
	return &Parser{
		filename: filename,
		options:  defaultParseOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustResult wraps a call to Result and panics on error, discarding
// warnings. It is intended for scripts and tests.
//
// Example:
//
//	result := lablens.MustResult(lablens.Open("report.pdf").Result())
func MustResult(val *Result, _ []Warning, err error) *Result {
	if err != nil {
		panic(err)
	}
	return val
}
