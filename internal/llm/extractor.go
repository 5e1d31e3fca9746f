// Package llm implements the LLM-backed field extraction strategy. It
// shares the extraction contract with the rule engine; the pipeline falls
// back to the rule engine whenever this strategy fails.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/claimpilot/fnolagent/internal/model"
)

// ErrService covers every adapter failure: network errors, non-JSON
// responses, and schema-invalid output. Callers catch it and re-invoke the
// rule engine.
var ErrService = errors.New("llm service failure")

// Extractor is the strategy contract shared with the rule engine: raw
// document text in, the exact 16-slot field schema out.
type Extractor interface {
	// Name returns the strategy name
	Name() string

	// ExtractFields produces the fixed field schema from raw text
	ExtractFields(ctx context.Context, rawText string) (*model.FieldSet, error)
}

// NewExtractor creates the configured LLM extractor, or nil when no
// provider is configured (LLM extraction disabled).
func NewExtractor(cfg model.LLMConfig) (Extractor, error) {
	switch strings.ToLower(cfg.Provider) {
	case "openai":
		return NewOpenAIExtractor(cfg)
	case "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: openai)", cfg.Provider)
	}
}

// systemPrompt instructs the model to return the exact field schema.
const systemPrompt = `You are an expert insurance claims data extractor.
Given raw text from an FNOL (First Notice of Loss) document, extract the following fields into a JSON structure.
If a field is not found or not mentioned, set its value to null.
For monetary values, extract just the number (no currency symbols). All amounts are in Indian Rupees (INR).

Return ONLY valid JSON in this exact structure:
{
    "policyInformation": {
        "policyNumber": "string or null",
        "policyholderName": "string or null",
        "effectiveDates": "string or null"
    },
    "incidentInformation": {
        "date": "string or null",
        "time": "string or null",
        "location": "string or null",
        "description": "string or null"
    },
    "involvedParties": {
        "claimant": "string or null",
        "thirdParties": "string or null",
        "contactDetails": "string or null"
    },
    "assetDetails": {
        "assetType": "string or null",
        "assetId": "string or null",
        "estimatedDamage": "string or null"
    },
    "otherFields": {
        "claimType": "string or null",
        "attachments": "string or null",
        "initialEstimate": "string or null"
    }
}`

// FieldSchema returns the JSON Schema the adapter validates responses
// against before decoding. Sections and fields are optional (missing keys
// default to absent) but present values must be string or null, so a
// type-mismatched response fails fast instead of decoding garbage.
func FieldSchema() map[string]any {
	section := func(fields ...string) map[string]any {
		props := map[string]any{}
		for _, f := range fields {
			props[f] = map[string]any{"type": []string{"string", "null"}}
		}
		return map[string]any{"type": "object", "properties": props}
	}
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"policyInformation":   section("policyNumber", "policyholderName", "effectiveDates"),
			"incidentInformation": section("date", "time", "location", "description"),
			"involvedParties":     section("claimant", "thirdParties", "contactDetails"),
			"assetDetails":        section("assetType", "assetId", "estimatedDamage"),
			"otherFields":         section("claimType", "attachments", "initialEstimate"),
		},
	}
}
