// Package extract implements the pattern-based field extraction engine for
// FNOL documents. Extraction never fails: rules that do not match leave
// their field absent, so garbled or unrelated input degrades to a partial
// or empty field set rather than an error.
package extract

import (
	"context"
	"regexp"
	"strings"

	"github.com/claimpilot/fnolagent/internal/model"
)

// RuleEngine maps raw document text to the fixed five-section schema using
// ordered label-anchored rules with fallback chains.
type RuleEngine struct{}

// NewRuleEngine creates a new rule engine
func NewRuleEngine() *RuleEngine {
	return &RuleEngine{}
}

// Name returns the strategy name
func (e *RuleEngine) Name() string {
	return "rules"
}

// ExtractFields implements the extraction strategy contract shared with the
// LLM adapter. The returned error is always nil.
func (e *RuleEngine) ExtractFields(_ context.Context, rawText string) (*model.FieldSet, error) {
	return e.Extract(rawText), nil
}

// Extract runs every field rule against the raw text and returns the
// populated schema. Extracting the same text twice yields identical results.
func (e *RuleEngine) Extract(text string) *model.FieldSet {
	fs := &model.FieldSet{}
	e.extractPolicy(text, fs)
	e.extractIncident(text, fs)
	e.extractParties(text, fs)
	e.extractAsset(text, fs)
	e.extractOther(text, fs)
	return fs
}

func (e *RuleEngine) extractPolicy(text string, fs *model.FieldSet) {
	p := &fs.PolicyInformation

	if v, ok := firstMatch(text, rePolicyNumber, rePolicyNumberAlt); ok {
		assign(&p.PolicyNumber, v)
	}

	// Policyholder name and effective dates commonly share one line. The
	// date-range token is located first and excised before the remainder is
	// assigned as the name.
	if m := rePolicyholderLine.FindStringSubmatch(text); m != nil {
		line := strings.TrimSpace(m[1])
		name := line
		if loc := reDateRange.FindStringIndex(line); loc != nil {
			assign(&p.EffectiveDates, line[loc[0]:loc[1]])
			name = strings.TrimSpace(line[:loc[0]])
		}
		if len(name) > 2 {
			assign(&p.PolicyholderName, name)
		}
	} else if v, ok := firstMatch(text, rePolicyholderAlt1, rePolicyholderAlt2); ok {
		assign(&p.PolicyholderName, v)
	}

	if p.EffectiveDates == nil {
		if v := reDateRange.FindString(text); v != "" {
			assign(&p.EffectiveDates, v)
		}
	}
}

func (e *RuleEngine) extractIncident(text string, fs *model.FieldSet) {
	inc := &fs.IncidentInformation

	// Date and time share one line in date-then-time order; when the combined
	// pattern fails each is attempted independently, with a bare time-of-day
	// token as last resort.
	if m := reLossDateTime.FindStringSubmatch(text); m != nil {
		assign(&inc.Date, m[1])
		assign(&inc.Time, m[2])
	} else {
		if v, ok := firstMatch(text, reLossDate, reLossDateAlt); ok {
			assign(&inc.Date, v)
		}
		if m := reBareTime.FindStringSubmatch(text); m != nil {
			assign(&inc.Time, m[1])
		}
	}

	if v, ok := firstMatch(text, reLocation, reLocationAlt); ok {
		assign(&inc.Location, v)
	}

	// The description block runs from its label to the next section header
	// and is collapsed to single-spaced text.
	if m := reDescription.FindStringSubmatch(text); m != nil {
		assign(&inc.Description, collapseWhitespace(m[1]))
	} else if m := reDescriptionAlt.FindStringSubmatch(text); m != nil {
		assign(&inc.Description, collapseWhitespace(m[1]))
	}
}

func (e *RuleEngine) extractParties(text string, fs *model.FieldSet) {
	parties := &fs.InvolvedParties

	if m := reReportedBy.FindStringSubmatch(text); m != nil {
		name := reAnyDate.ReplaceAllString(m[1], "")
		name = reParenthetical.ReplaceAllString(name, "")
		name = strings.TrimSpace(name)
		if len(name) > 2 {
			assign(&parties.Claimant, name)
		}
	}
	// Claimant defaults to the policyholder when no reported-by line exists
	if parties.Claimant == nil && fs.PolicyInformation.PolicyholderName != nil {
		assign(&parties.Claimant, *fs.PolicyInformation.PolicyholderName)
	}

	if m := reThirdPartyLine.FindStringSubmatch(text); m != nil {
		line := strings.TrimSpace(m[1])
		lower := strings.ToLower(line)
		if !thirdPartyNegatives[lower] {
			assign(&parties.ThirdParties, line)
		} else if strings.Contains(lower, "none") || strings.Contains(lower, "n/a") {
			// A deliberate "none" is information; keep it as a present value
			assign(&parties.ThirdParties, line)
		}
	}

	var contacts []string
	if m := reContactPhoneLine.FindStringSubmatch(text); m != nil {
		contacts = append(contacts, strings.TrimSpace(m[1]))
	}
	if m := reEmailLine.FindStringSubmatch(text); m != nil {
		contacts = append(contacts, strings.TrimSpace(m[1]))
	}
	if len(contacts) == 0 {
		// No labeled lines: scan the whole document for the first
		// phone-shaped and email-shaped tokens
		if v := rePhoneToken.FindString(text); v != "" {
			contacts = append(contacts, strings.TrimSpace(v))
		}
		if v := reEmailToken.FindString(text); v != "" {
			contacts = append(contacts, v)
		}
	}
	if len(contacts) > 0 {
		assign(&parties.ContactDetails, strings.Join(contacts, ", "))
	}
}

func (e *RuleEngine) extractAsset(text string, fs *model.FieldSet) {
	asset := &fs.AssetDetails

	if m := reAssetTypeLine.FindStringSubmatch(text); m != nil {
		parts := reMultiSpace.Split(strings.TrimSpace(m[1]), -1)
		if len(parts) > 0 {
			assign(&asset.AssetType, parts[0])
		}
	}

	if m := reAssetIDLine.FindStringSubmatch(text); m != nil {
		if vin := reVINToken.FindString(strings.TrimSpace(m[1])); vin != "" {
			assign(&asset.AssetID, vin)
		}
	}
	if asset.AssetID == nil {
		if m := reModelVIN.FindStringSubmatch(text); m != nil {
			assign(&asset.AssetID, m[1])
		}
	}

	// Estimated damage and the initial estimate share one line; both figures
	// get their thousands separators stripped.
	if m := reDamagePair.FindStringSubmatch(text); m != nil {
		assign(&asset.EstimatedDamage, stripCommas(m[1]))
		if m[2] != "" {
			assign(&fs.OtherFields.InitialEstimate, stripCommas(m[2]))
		}
	} else if m := reDamageAlt.FindStringSubmatch(text); m != nil {
		assign(&asset.EstimatedDamage, stripCommas(m[1]))
	}
}

func (e *RuleEngine) extractOther(text string, fs *model.FieldSet) {
	other := &fs.OtherFields

	if m := reClaimTypeAttach.FindStringSubmatch(text); m != nil {
		line := strings.TrimSpace(m[1])
		if loc := reAttachmentToken.FindStringIndex(line); loc != nil {
			// Split at the first attachment-keyword token
			ct := strings.TrimSpace(strings.TrimRight(strings.TrimSpace(line[:loc[0]]), "-"))
			att := strings.TrimSpace(line[loc[0]:])
			if ct != "" {
				assign(&other.ClaimType, ct)
			}
			if att != "" {
				assign(&other.Attachments, att)
			}
		} else {
			parts := reMultiSpace.Split(line, -1)
			if len(parts) > 0 {
				assign(&other.ClaimType, parts[0])
			}
			if len(parts) > 1 {
				assign(&other.Attachments, parts[1])
			}
		}
	} else {
		if m := reClaimTypeOnly.FindStringSubmatch(text); m != nil {
			assign(&other.ClaimType, m[1])
		}
		if m := reAttachmentsOnly.FindStringSubmatch(text); m != nil {
			assign(&other.Attachments, m[1])
		}
	}

	// Independent fallback when the paired damage rule did not fill it
	if other.InitialEstimate == nil {
		if m := reInitialEstimate.FindStringSubmatch(text); m != nil {
			assign(&other.InitialEstimate, stripCommas(m[1]))
		}
	}
}

// thirdPartyNegatives are line values that normally mean "no third party".
// Variants naming "none" or "n/a" explicitly are still stored.
var thirdPartyNegatives = map[string]bool{
	"none":                           true,
	"n/a":                            true,
	"na":                             true,
	"":                               true,
	"none - single vehicle accident": true,
}

// firstMatch tries each pattern in order and returns the first capture.
func firstMatch(text string, chain ...*regexp.Regexp) (string, bool) {
	for _, re := range chain {
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1]), true
		}
	}
	return "", false
}

// assign stores a trimmed, non-empty value into a field slot.
func assign(slot **string, v string) {
	v = strings.TrimSpace(v)
	if v == "" {
		return
	}
	*slot = &v
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func stripCommas(s string) string {
	return strings.ReplaceAll(s, ",", "")
}
