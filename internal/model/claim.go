package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Route is one of the five operational queues a claim can land in.
type Route string

const (
	RouteInvestigation Route = "Investigation Flag"
	RouteSpecialist    Route = "Specialist Queue"
	RouteManualReview  Route = "Manual Review"
	RouteFastTrack     Route = "Fast-track"
	RouteStandard      Route = "Standard Processing"
)

// ValidationResult reports completeness and consistency problems found in a
// field set. Both lists keep insertion order so output is reproducible.
type ValidationResult struct {
	MissingFields   []string `json:"missingFields"`   // qualified as section.field
	Inconsistencies []string `json:"inconsistencies"` // human-readable messages
}

// RoutingDecision is the selected queue plus the justification sentences
// that produced it, joined with ". ".
type RoutingDecision struct {
	Route     Route  `json:"recommendedRoute"`
	Reasoning string `json:"reasoning"`
}

// rawPreviewLimit bounds the raw-text excerpt stored on a claim record.
const rawPreviewLimit = 500

// ClaimRecord is the final, immutable output of one pipeline run.
type ClaimRecord struct {
	ClaimID         string    `json:"claimId"`
	Filename        string    `json:"filename"`
	ProcessedAt     time.Time `json:"processedAt"`
	ExtractedFields *FieldSet `json:"extractedFields"`
	MissingFields   []string  `json:"missingFields"`
	Inconsistencies []string  `json:"inconsistencies"`
	Route           Route     `json:"recommendedRoute"`
	Reasoning       string    `json:"reasoning"`
	RawTextPreview  string    `json:"rawTextPreview"`
}

// NewClaimID generates an identifier like CLM-4F2A91BC.
func NewClaimID() string {
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "CLM-" + strings.ToUpper(hex[:8])
}

// Preview truncates raw text for storage, appending a marker when cut.
func Preview(rawText string) string {
	if len(rawText) <= rawPreviewLimit {
		return rawText
	}
	return rawText[:rawPreviewLimit] + "..."
}
