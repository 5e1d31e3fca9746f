package route

import (
	"strings"
	"testing"

	"github.com/claimpilot/fnolagent/internal/model"
)

func newTestRouter() *Router {
	cfg := model.DefaultConfig()
	return NewRouter(cfg.Routing, cfg.Currency)
}

func baseFields() *model.FieldSet {
	fs := &model.FieldSet{}
	fs.IncidentInformation.Description = model.String("Minor rear-end collision at a traffic signal")
	fs.OtherFields.ClaimType = model.String("Auto - Property Damage")
	fs.AssetDetails.EstimatedDamage = model.String("8500")
	return fs
}

func TestRouter_InvestigationFlag(t *testing.T) {
	r := newTestRouter()
	fs := baseFields()
	fs.IncidentInformation.Description = model.String(
		"The circumstances appear staged and witness reports are inconsistent with the timeline")

	d := r.Route(fs, nil)
	if d.Route != model.RouteInvestigation {
		t.Fatalf("Expected %s, got %s", model.RouteInvestigation, d.Route)
	}
	if !strings.Contains(d.Reasoning, "fraud-related keywords") ||
		!strings.Contains(d.Reasoning, "staged") || !strings.Contains(d.Reasoning, "inconsistent") {
		t.Errorf("Expected reasoning to list matched keywords, got %q", d.Reasoning)
	}
}

func TestRouter_InvestigationBeatsInjury(t *testing.T) {
	// Fraud indicators outrank everything, including injury content
	r := newTestRouter()
	fs := baseFields()
	fs.IncidentInformation.Description = model.String(
		"Suspicious fire with a bodily injury claim attached")
	fs.OtherFields.ClaimType = model.String("Injury - Bodily Injury")

	d := r.Route(fs, nil)
	if d.Route != model.RouteInvestigation {
		t.Errorf("Expected %s, got %s", model.RouteInvestigation, d.Route)
	}
}

func TestRouter_SpecialistQueue(t *testing.T) {
	tests := []struct {
		name        string
		claimType   string
		description string
		wantSource  string
	}{
		{
			name:        "injury in claim type",
			claimType:   "Injury - Bodily Injury + Property",
			description: "Head-on collision with a truck",
			wantSource:  "claim type",
		},
		{
			name:        "injury in description only",
			claimType:   "Auto - Property Damage",
			description: "Driver required hospitalization after the collision",
			wantSource:  "description",
		},
		{
			name:        "claim type preferred over description",
			claimType:   "Injury - Bodily Injury",
			description: "Passenger suffered a head injury requiring surgery",
			wantSource:  "claim type",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter()
			fs := baseFields()
			fs.OtherFields.ClaimType = model.String(tc.claimType)
			fs.IncidentInformation.Description = model.String(tc.description)

			d := r.Route(fs, nil)
			if d.Route != model.RouteSpecialist {
				t.Fatalf("Expected %s, got %s", model.RouteSpecialist, d.Route)
			}
			want := "Injury-related claim detected in " + tc.wantSource
			if !strings.Contains(d.Reasoning, want) {
				t.Errorf("Expected reasoning %q, got %q", want, d.Reasoning)
			}
		})
	}
}

func TestRouter_ManualReview(t *testing.T) {
	r := newTestRouter()
	fs := baseFields()
	missing := []string{"policyInformation.effectiveDates", "assetDetails.assetId"}

	d := r.Route(fs, missing)
	if d.Route != model.RouteManualReview {
		t.Fatalf("Expected %s, got %s", model.RouteManualReview, d.Route)
	}
	if !strings.Contains(d.Reasoning, "Missing mandatory fields: effectiveDates, assetId (2 field(s))") {
		t.Errorf("Expected bare field names in reasoning, got %q", d.Reasoning)
	}
}

func TestRouter_FastTrack(t *testing.T) {
	r := newTestRouter()
	fs := baseFields() // damage 8500, threshold 25000

	d := r.Route(fs, []string{})
	if d.Route != model.RouteFastTrack {
		t.Fatalf("Expected %s, got %s", model.RouteFastTrack, d.Route)
	}
	if !strings.Contains(d.Reasoning, "₹8,500 is below fast-track threshold of ₹25,000") {
		t.Errorf("Expected threshold comparison in reasoning, got %q", d.Reasoning)
	}
	if !strings.Contains(d.Reasoning, "All mandatory fields are present") {
		t.Errorf("Expected completeness note in reasoning, got %q", d.Reasoning)
	}
}

func TestRouter_StandardAboveThreshold(t *testing.T) {
	r := newTestRouter()
	fs := baseFields()
	fs.AssetDetails.EstimatedDamage = model.String("28500")

	d := r.Route(fs, []string{})
	if d.Route != model.RouteStandard {
		t.Fatalf("Expected %s, got %s", model.RouteStandard, d.Route)
	}
	if !strings.Contains(d.Reasoning, "₹28,500 exceeds fast-track threshold of ₹25,000") {
		t.Errorf("Expected threshold comparison in reasoning, got %q", d.Reasoning)
	}
}

func TestRouter_ThresholdBoundaryGoesStandard(t *testing.T) {
	r := newTestRouter()
	fs := baseFields()
	fs.AssetDetails.EstimatedDamage = model.String("25000")

	d := r.Route(fs, []string{})
	if d.Route != model.RouteStandard {
		t.Errorf("Expected damage equal to threshold to route standard, got %s", d.Route)
	}
}

func TestRouter_UnparseableDamage(t *testing.T) {
	r := newTestRouter()
	fs := baseFields()
	fs.AssetDetails.EstimatedDamage = model.String("around ten grand")

	d := r.Route(fs, []string{})
	if d.Route != model.RouteStandard {
		t.Fatalf("Expected %s, got %s", model.RouteStandard, d.Route)
	}
	if !strings.Contains(d.Reasoning, "Could not parse estimated damage amount") {
		t.Errorf("Expected parse failure note, got %q", d.Reasoning)
	}
}

func TestRouter_NoDamageDefaultsToStandard(t *testing.T) {
	r := newTestRouter()
	fs := baseFields()
	fs.AssetDetails.EstimatedDamage = nil

	d := r.Route(fs, []string{})
	if d.Route != model.RouteStandard {
		t.Fatalf("Expected %s, got %s", model.RouteStandard, d.Route)
	}
	if d.Reasoning != "All mandatory fields present. No special conditions detected" {
		t.Errorf("Unexpected default reasoning: %q", d.Reasoning)
	}
}

func TestRouter_EmptyFieldSet(t *testing.T) {
	// No fields at all and nothing missing reported: default standard
	r := newTestRouter()
	d := r.Route(&model.FieldSet{}, []string{})
	if d.Route != model.RouteStandard {
		t.Errorf("Expected %s, got %s", model.RouteStandard, d.Route)
	}
	if d.Reasoning == "" {
		t.Error("Expected non-empty reasoning")
	}
}
