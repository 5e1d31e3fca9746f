// Package validate checks extracted field sets for completeness and
// internal consistency. Validation never fails and never mutates its input;
// malformed values downgrade to inconsistency messages or silent skips.
package validate

import (
	"fmt"
	"strings"
	"time"

	"github.com/claimpilot/fnolagent/internal/model"
	"github.com/claimpilot/fnolagent/internal/normalize"
)

// mandatoryFields is the static schema of fields required for a claim to be
// considered complete. thirdParties and attachments are the two optional
// slots. Keys are qualified section.field names.
var mandatoryFields = map[string]bool{
	"policyInformation.policyNumber":     true,
	"policyInformation.policyholderName": true,
	"policyInformation.effectiveDates":   true,
	"incidentInformation.date":           true,
	"incidentInformation.time":           true,
	"incidentInformation.location":       true,
	"incidentInformation.description":    true,
	"involvedParties.claimant":           true,
	"involvedParties.contactDetails":     true,
	"assetDetails.assetType":             true,
	"assetDetails.assetId":               true,
	"assetDetails.estimatedDamage":       true,
	"otherFields.claimType":              true,
	"otherFields.initialEstimate":        true,
}

// FieldValidator validates extracted fields for completeness and consistency
type FieldValidator struct {
	discrepancyRatio float64
	currencySymbol   string
	now              func() time.Time
}

// NewFieldValidator creates a validator with the given policy parameters
func NewFieldValidator(cfg model.ValidationConfig, currency model.CurrencyConfig) *FieldValidator {
	return &FieldValidator{
		discrepancyRatio: cfg.DiscrepancyRatio,
		currencySymbol:   currency.Symbol,
		now:              time.Now,
	}
}

// Validate reports missing mandatory fields and logical inconsistencies.
// Missing fields follow the fixed schema order; inconsistencies follow
// check order. Both lists are empty (non-nil) when nothing is wrong.
func (v *FieldValidator) Validate(fs *model.FieldSet) model.ValidationResult {
	return model.ValidationResult{
		MissingFields:   v.findMissing(fs),
		Inconsistencies: v.findInconsistencies(fs),
	}
}

func (v *FieldValidator) findMissing(fs *model.FieldSet) []string {
	missing := []string{}
	for _, f := range fs.Fields() {
		if !mandatoryFields[f.Qualified()] {
			continue
		}
		if f.Value == nil || strings.TrimSpace(*f.Value) == "" {
			missing = append(missing, f.Qualified())
		}
	}
	return missing
}

func (v *FieldValidator) findInconsistencies(fs *model.FieldSet) []string {
	issues := []string{}

	// 1. Incident date in the future. Unparseable dates are ignored.
	if date := model.Deref(fs.IncidentInformation.Date); date != "" {
		if parsed, ok := normalize.Date(date); ok && parsed.After(v.now()) {
			issues = append(issues, "Incident date is in the future")
		}
	}

	// 2. Non-positive or non-numeric estimated damage
	damage := model.Deref(fs.AssetDetails.EstimatedDamage)
	if damage != "" {
		if val, err := normalize.Amount(damage); err != nil {
			issues = append(issues, "Estimated damage is not a valid number")
		} else {
			if val < 0 {
				issues = append(issues, "Estimated damage amount is negative")
			}
			if val == 0 {
				issues = append(issues, "Estimated damage amount is zero")
			}
		}
	}

	// 3. Damage vs. initial estimate discrepancy, only when both parse to
	// positive numbers
	estimate := model.Deref(fs.OtherFields.InitialEstimate)
	if damage != "" && estimate != "" {
		dmg, dErr := normalize.Amount(damage)
		est, eErr := normalize.Amount(estimate)
		if dErr == nil && eErr == nil && dmg > 0 && est > 0 {
			diff := dmg - est
			if diff < 0 {
				diff = -diff
			}
			max := dmg
			if est > max {
				max = est
			}
			if diff/max > v.discrepancyRatio {
				issues = append(issues, fmt.Sprintf(
					"Large discrepancy between estimated damage (%s%s) and initial estimate (%s%s)",
					v.currencySymbol, normalize.FormatAmount(dmg), v.currencySymbol, normalize.FormatAmount(est)))
			}
		}
	}

	// 4. Policy number plausibility
	if num := model.Deref(fs.PolicyInformation.PolicyNumber); num != "" {
		if len(strings.TrimSpace(num)) < 3 {
			issues = append(issues, "Policy number appears too short")
		}
	}

	return issues
}
