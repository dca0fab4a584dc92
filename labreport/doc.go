// Package labreport extracts structured lab test results from OCR text.
//
// The extraction is pattern-based and best-effort: text is normalized to
// repair common OCR misreads, a single regular expression yields candidate
// test entries, obvious false positives are filtered with a denylist, and
// the survivors are organized into named panels.
//
//	result := labreport.Parse(ocrText)
//	for key, panel := range result.Panels {
//	    fmt.Println(key, len(panel.Tests))
//	}
//
// The matching strategy is isolated behind the [Matcher] interface so it can
// later be replaced without touching panel organization or serialization.
package labreport
