package labreport

import (
	"strings"
	"testing"
)

func TestParseEndToEnd(t *testing.T) {
	text := "Alberta Health Services Laboratory Report Glucose: 5.4 mmol/L Sodium: 140 mmol/L"

	if !IsAHSDocument(text) {
		t.Error("expected document to validate as an AHS report")
	}

	result := Parse(text)
	if !result.Success {
		t.Fatal("expected success")
	}
	if result.TestsFound != 2 {
		t.Fatalf("expected 2 tests found, got %d", result.TestsFound)
	}
	if result.PanelsIdentified != 1 {
		t.Errorf("expected 1 panel, got %d", result.PanelsIdentified)
	}

	panel, ok := result.Panels[GeneralPanelKey]
	if !ok {
		t.Fatal("expected general_tests panel")
	}
	if len(panel.Tests) != 2 {
		t.Fatalf("expected 2 test entries, got %d", len(panel.Tests))
	}

	first := panel.Tests["test_1"]
	if !strings.HasSuffix(first.Name, "Glucose") {
		t.Errorf("expected first entry to be the Glucose candidate, got %q", first.Name)
	}
	if first.Value != 5.4 || first.Unit != "mmol/L" {
		t.Errorf("unexpected first entry: %+v", first)
	}

	second := panel.Tests["test_2"]
	if second.Name != "Sodium" || second.Value != 140 || second.Unit != "mmol/L" {
		t.Errorf("unexpected second entry: %+v", second)
	}
}

func TestParseNormalizesBeforeMatching(t *testing.T) {
	// Whitespace runs and OCR artifacts are repaired before matching.
	result := Parse("Glucose:\n\n  5.4   mmol/L")
	if result.TestsFound != 1 {
		t.Fatalf("expected 1 test found, got %d", result.TestsFound)
	}
}

func TestParseEmptyText(t *testing.T) {
	result := Parse("")
	if !result.Success {
		t.Error("parse is total; empty input is not an error")
	}
	if result.TestsFound != 0 {
		t.Errorf("expected 0 tests, got %d", result.TestsFound)
	}
	if result.PanelsIdentified != 1 {
		t.Errorf("general panel is always present, got %d panels", result.PanelsIdentified)
	}
}

func TestParseWithCustomMatcher(t *testing.T) {
	fixed := matcherFunc(func(string) []RawMatch {
		return []RawMatch{{Name: "Glucose", Value: 5.4, Unit: "mmol/L"}}
	})

	result := ParseWith("ignored", fixed, DefaultClassifier)
	if result.TestsFound != 1 {
		t.Fatalf("expected 1 test, got %d", result.TestsFound)
	}
	if result.Panels[GeneralPanelKey].Tests["test_1"].Name != "Glucose" {
		t.Error("custom matcher output not organized")
	}
}

type matcherFunc func(string) []RawMatch

func (f matcherFunc) Match(text string) []RawMatch { return f(text) }
