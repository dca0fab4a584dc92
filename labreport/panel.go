package labreport

import "fmt"

// maxTests caps how many matched entries are published. Entries past the cap
// are dropped, not an error.
const maxTests = 10

// GeneralPanelKey identifies the default panel that all entries route to.
const GeneralPanelKey = "general_tests"

// Classifier routes a matched entry to a panel key. The default routes
// everything to the general panel; routing by test identity is the seam a
// smarter classifier would fill.
type Classifier func(RawMatch) string

// DefaultClassifier routes every entry to the general panel.
func DefaultClassifier(RawMatch) string {
	return GeneralPanelKey
}

// panelInfo holds the static name and description for a panel key.
type panelInfo struct {
	name        string
	description string
}

var panelRegistry = map[string]panelInfo{
	GeneralPanelKey: {
		name:        "General Lab Tests",
		description: "Extracted lab test results",
	},
}

// Organize buckets the first ten matched entries into panels using the
// default classifier. Entries keep their match order and receive synthetic
// identifiers test_1..test_10.
func Organize(matches []RawMatch) map[string]Panel {
	return OrganizeWith(matches, DefaultClassifier)
}

// OrganizeWith buckets matched entries into panels using the given
// classifier. At most the first ten entries are retained; identifiers are
// 1-based positions within the retained subset. Panels the classifier never
// routes to are absent from the result, except the general panel, which is
// always present.
func OrganizeWith(matches []RawMatch, classify Classifier) map[string]Panel {
	panels := map[string]Panel{
		GeneralPanelKey: newPanel(GeneralPanelKey),
	}

	retained := matches
	if len(retained) > maxTests {
		retained = retained[:maxTests]
	}

	for i, match := range retained {
		key := classify(match)
		panel, ok := panels[key]
		if !ok {
			panel = newPanel(key)
			panels[key] = panel
		}
		id := fmt.Sprintf("test_%d", i+1)
		panel.Tests[id] = TestEntry{
			Name:           match.Name,
			Value:          match.Value,
			Unit:           match.Unit,
			ReferenceRange: "Not available",
			Flag:           "normal",
			Explanation:    fmt.Sprintf("Analysis of %s levels in blood.", match.Name),
			Category:       "general",
		}
	}

	return panels
}

func newPanel(key string) Panel {
	info, ok := panelRegistry[key]
	if !ok {
		info = panelInfo{name: key, description: "Extracted lab test results"}
	}
	return Panel{
		Name:        info.name,
		Description: info.description,
		Tests:       make(map[string]TestEntry),
	}
}
