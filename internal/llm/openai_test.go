package llm

import (
	"errors"
	"strings"
	"testing"

	"github.com/claimpilot/fnolagent/internal/model"
)

func TestNewExtractor(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		e, err := NewExtractor(model.LLMConfig{Provider: ""})
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if e != nil {
			t.Error("Expected nil extractor when disabled")
		}
	})

	t.Run("unknown provider", func(t *testing.T) {
		if _, err := NewExtractor(model.LLMConfig{Provider: "ollama"}); err == nil {
			t.Error("Expected error for unknown provider")
		}
	})

	t.Run("openai without api key", func(t *testing.T) {
		if _, err := NewExtractor(model.LLMConfig{Provider: "openai"}); err == nil {
			t.Error("Expected error when API key is missing")
		}
	})

	t.Run("openai", func(t *testing.T) {
		e, err := NewExtractor(model.LLMConfig{Provider: "openai", APIKey: "sk-test"})
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if e.Name() != "openai" {
			t.Errorf("Expected strategy name openai, got %s", e.Name())
		}
	})
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare json", `{"a": 1}`, `{"a": 1}`},
		{"json fence", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"plain fence", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"surrounding whitespace", "  \n```json\n{}\n```\n  ", "{}"},
		{"no closing fence", "```json\n{}", "{}"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := StripCodeFence(tc.in); got != tc.want {
				t.Errorf("StripCodeFence(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func newTestExtractor(t *testing.T) *OpenAIExtractor {
	t.Helper()
	schema, err := compileFieldSchema()
	if err != nil {
		t.Fatalf("compile schema: %v", err)
	}
	return &OpenAIExtractor{schema: schema}
}

func TestOpenAIExtractor_CoerceValidResponse(t *testing.T) {
	e := newTestExtractor(t)

	content := "```json\n" + `{
		"policyInformation": {
			"policyNumber": "NIC-MH-2024-08742",
			"policyholderName": "  Rajesh Kumar Sharma  ",
			"effectiveDates": null
		},
		"assetDetails": {
			"estimatedDamage": "8500"
		}
	}` + "\n```"

	fs, err := e.coerce(content)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got := model.Deref(fs.PolicyInformation.PolicyNumber); got != "NIC-MH-2024-08742" {
		t.Errorf("Expected policy number, got %q", got)
	}
	// Values are trimmed and nulls stay absent
	if got := model.Deref(fs.PolicyInformation.PolicyholderName); got != "Rajesh Kumar Sharma" {
		t.Errorf("Expected trimmed name, got %q", got)
	}
	if fs.PolicyInformation.EffectiveDates != nil {
		t.Error("Expected null field to stay absent")
	}
	if got := model.Deref(fs.AssetDetails.EstimatedDamage); got != "8500" {
		t.Errorf("Expected estimated damage, got %q", got)
	}
	// Sections the response omitted default to empty
	if fs.InvolvedParties.Claimant != nil {
		t.Error("Expected omitted section fields to stay absent")
	}
}

func TestOpenAIExtractor_CoerceRejectsNonJSON(t *testing.T) {
	e := newTestExtractor(t)

	_, err := e.coerce("I could not find any fields in this document.")
	if err == nil {
		t.Fatal("Expected error for non-JSON response")
	}
	if !errors.Is(err, ErrService) {
		t.Errorf("Expected ErrService, got %v", err)
	}
}

func TestOpenAIExtractor_CoerceRejectsTypeMismatch(t *testing.T) {
	e := newTestExtractor(t)

	// estimatedDamage must be string or null, not a number
	_, err := e.coerce(`{"assetDetails": {"estimatedDamage": 8500}}`)
	if err == nil {
		t.Fatal("Expected error for schema type mismatch")
	}
	if !errors.Is(err, ErrService) {
		t.Errorf("Expected ErrService, got %v", err)
	}
	if !strings.Contains(err.Error(), "schema") {
		t.Errorf("Expected schema validation message, got %v", err)
	}
}

func TestFieldSchema_CoversAllSections(t *testing.T) {
	schema := FieldSchema()
	props, ok := schema["properties"].(map[string]any)
	if !ok {
		t.Fatal("Expected properties map")
	}
	for _, section := range []string{
		"policyInformation", "incidentInformation", "involvedParties",
		"assetDetails", "otherFields",
	} {
		if _, ok := props[section]; !ok {
			t.Errorf("Expected schema section %s", section)
		}
	}
}
