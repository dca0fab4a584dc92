// Package model provides the intermediate representation for recognized
// document content.
//
// The recognition stage produces one [RecognizedPage] per rendered PDF page
// and folds them into a [Document]. The extraction stage consumes only the
// combined text; the per-page structure is kept for confidence reporting.
//
//	doc := model.NewDocument()
//	doc.AddPage(model.NewRecognizedPage(text, confidence))
//	combined := doc.CombinedText()
package model
