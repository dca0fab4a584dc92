package labreport

import (
	"strings"
	"testing"
)

func TestNormalizeCollapsesWhitespace(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"spaces", "Glucose   5.4", "Glucose 5.4"},
		{"newlines", "Glucose\n5.4\n\nmmol/L", "Glucose 5.4 mmol/L"},
		{"tabs", "Glucose\t\t5.4", "Glucose 5.4"},
		{"mixed", " Glucose \r\n 5.4 \t", "Glucose 5.4"},
		{"empty", "", ""},
		{"only whitespace", " \n\t ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeSubstitutions(t *testing.T) {
	if got := Normalize("G|ucose"); got != "GIucose" {
		t.Errorf("vertical bar not substituted: %q", got)
	}
	if got := Normalize("Gluc°se"); got != "Glucose" {
		t.Errorf("degree sign not substituted: %q", got)
	}
}

func TestNormalizeNoConsecutiveWhitespace(t *testing.T) {
	inputs := []string{
		"a  b   c",
		"line one\nline two\r\nline three",
		"\t\tindented\t\t",
	}
	for _, input := range inputs {
		got := Normalize(input)
		if strings.Contains(got, "  ") || strings.ContainsAny(got, "\t\n\r") {
			t.Errorf("Normalize(%q) = %q still contains whitespace runs", input, got)
		}
		if got != strings.TrimSpace(got) {
			t.Errorf("Normalize(%q) = %q is not trimmed", input, got)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"Glucose: 5.4 mmol/L",
		"  G|uc°se \n 5.4  ",
		"already normalized text",
	}
	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}
