package labreport

// RawMatch is a candidate test entry discovered by pattern matching.
// The original matched substring is kept for diagnostics.
type RawMatch struct {
	Name  string
	Value float64
	Unit  string
	Raw   string
}

// TestEntry is the published form of a RawMatch. The reference range, flag,
// category and explanation are fixed placeholders, not derived from any
// reference table.
type TestEntry struct {
	Name           string  `json:"name"`
	Value          float64 `json:"value"`
	Unit           string  `json:"unit"`
	ReferenceRange string  `json:"referenceRange"`
	Flag           string  `json:"flag"`
	Explanation    string  `json:"explanation"`
	Category       string  `json:"category"`
}

// Panel is a named, described grouping of test entries keyed by synthetic
// identifiers ("test_1", "test_2", ...).
type Panel struct {
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Tests       map[string]TestEntry `json:"tests"`
}

// ParseResult is the terminal artifact of the extraction stage.
type ParseResult struct {
	Success          bool
	Panels           map[string]Panel
	TestsFound       int
	PanelsIdentified int
}
