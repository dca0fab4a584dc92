package lablens

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/uzii9/lablens/labreport"
	"github.com/uzii9/lablens/model"
	"github.com/uzii9/lablens/render"
)

// Result is the JSON document produced for every run, success or failure.
type Result struct {
	Success bool `json:"success"`

	// Text is the combined OCR text across pages, pages joined by a blank
	// line. ExtractedText is a compatibility alias carrying the same value.
	Text          string `json:"text"`
	ExtractedText string `json:"extractedText"`

	// Confidence is the average of per-page confidences, 0-100.
	Confidence float64 `json:"confidence"`

	Panels map[string]labreport.Panel `json:"panels"`

	Metadata *Metadata `json:"metadata,omitempty"`

	// Error is present only when Success is false.
	Error string `json:"error,omitempty"`

	// Details carries remediation steps for missing system dependencies.
	Details *RemediationDetails `json:"details,omitempty"`
}

// Metadata describes the run for downstream consumers.
type Metadata struct {
	TotalPages            int     `json:"total_pages"`
	TotalCharacters       int     `json:"total_characters"`
	TotalWords            int     `json:"total_words"`
	AverageConfidence     float64 `json:"average_confidence"`
	ProcessingMethod      string  `json:"processing_method"`
	TestsFound            int     `json:"tests_found"`
	PanelsIdentified      int     `json:"panels_identified"`
	ParsingMethod         string  `json:"parsing_method"`
	DocumentID            string  `json:"document_id"`
	ProcessingCompletedAt string  `json:"processing_completed_at"`
}

// RemediationDetails mirrors render.RemediationError for JSON output.
type RemediationDetails struct {
	Issue        string   `json:"issue"`
	Solution     string   `json:"solution"`
	Instructions []string `json:"instructions"`
}

// newResult merges the recognition document and the extraction result into
// the output envelope.
func newResult(doc *model.Document, parsed labreport.ParseResult) *Result {
	text := doc.CombinedText()
	confidence := doc.AverageConfidence()

	return &Result{
		Success:       true,
		Text:          text,
		ExtractedText: text,
		Confidence:    confidence,
		Panels:        parsed.Panels,
		Metadata: &Metadata{
			TotalPages:            doc.PageCount(),
			TotalCharacters:       len(text),
			TotalWords:            doc.WordCount(),
			AverageConfidence:     confidence,
			ProcessingMethod:      "OCR with Tesseract",
			TestsFound:            parsed.TestsFound,
			PanelsIdentified:      parsed.PanelsIdentified,
			ParsingMethod:         "Pattern-based extraction",
			DocumentID:            uuid.NewString(),
			ProcessingCompletedAt: time.Now().UTC().Format(time.RFC3339),
		},
	}
}

// FailureResult converts an error into the failure envelope. A missing
// system dependency carries its remediation payload into the details field.
func FailureResult(err error) *Result {
	result := &Result{
		Success: false,
		Error:   err.Error(),
		Panels:  map[string]labreport.Panel{},
	}

	var remediation *render.RemediationError
	if errors.As(err, &remediation) {
		result.Error = remediation.Issue
		result.Details = &RemediationDetails{
			Issue:        "Missing " + remediation.Dependency + " dependency",
			Solution:     remediation.Solution,
			Instructions: remediation.Instructions,
		}
	}
	return result
}
