package model

import "strings"

// FieldSet is the fixed five-section schema every extraction strategy must
// populate. All 16 slots always exist; a nil pointer marks an absent field.
// Both the rule engine and the LLM adapter return exactly this shape.
type FieldSet struct {
	PolicyInformation   PolicyInformation   `json:"policyInformation"`
	IncidentInformation IncidentInformation `json:"incidentInformation"`
	InvolvedParties     InvolvedParties     `json:"involvedParties"`
	AssetDetails        AssetDetails        `json:"assetDetails"`
	OtherFields         OtherFields         `json:"otherFields"`
}

// PolicyInformation holds policy-level fields
type PolicyInformation struct {
	PolicyNumber     *string `json:"policyNumber"`
	PolicyholderName *string `json:"policyholderName"`
	EffectiveDates   *string `json:"effectiveDates"`
}

// IncidentInformation holds loss/incident fields
type IncidentInformation struct {
	Date        *string `json:"date"`
	Time        *string `json:"time"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
}

// InvolvedParties holds claimant and third-party fields
type InvolvedParties struct {
	Claimant       *string `json:"claimant"`
	ThirdParties   *string `json:"thirdParties"`
	ContactDetails *string `json:"contactDetails"`
}

// AssetDetails holds insured asset fields
type AssetDetails struct {
	AssetType       *string `json:"assetType"`
	AssetID         *string `json:"assetId"`
	EstimatedDamage *string `json:"estimatedDamage"`
}

// OtherFields holds claim classification and estimate fields
type OtherFields struct {
	ClaimType       *string `json:"claimType"`
	Attachments     *string `json:"attachments"`
	InitialEstimate *string `json:"initialEstimate"`
}

// Section names as they appear in qualified field identifiers
const (
	SectionPolicy   = "policyInformation"
	SectionIncident = "incidentInformation"
	SectionParties  = "involvedParties"
	SectionAsset    = "assetDetails"
	SectionOther    = "otherFields"
)

// Field is a single slot of the schema with its section-qualified identity.
type Field struct {
	Section string
	Name    string
	Value   *string
}

// Qualified returns the "section.field" identifier used in validation output.
func (f Field) Qualified() string {
	return f.Section + "." + f.Name
}

// Fields returns all 16 slots in the fixed schema order:
// policy, incident, parties, asset, other. Validation walks this list so
// missing-field output is reproducible.
func (fs *FieldSet) Fields() []Field {
	return []Field{
		{SectionPolicy, "policyNumber", fs.PolicyInformation.PolicyNumber},
		{SectionPolicy, "policyholderName", fs.PolicyInformation.PolicyholderName},
		{SectionPolicy, "effectiveDates", fs.PolicyInformation.EffectiveDates},
		{SectionIncident, "date", fs.IncidentInformation.Date},
		{SectionIncident, "time", fs.IncidentInformation.Time},
		{SectionIncident, "location", fs.IncidentInformation.Location},
		{SectionIncident, "description", fs.IncidentInformation.Description},
		{SectionParties, "claimant", fs.InvolvedParties.Claimant},
		{SectionParties, "thirdParties", fs.InvolvedParties.ThirdParties},
		{SectionParties, "contactDetails", fs.InvolvedParties.ContactDetails},
		{SectionAsset, "assetType", fs.AssetDetails.AssetType},
		{SectionAsset, "assetId", fs.AssetDetails.AssetID},
		{SectionAsset, "estimatedDamage", fs.AssetDetails.EstimatedDamage},
		{SectionOther, "claimType", fs.OtherFields.ClaimType},
		{SectionOther, "attachments", fs.OtherFields.Attachments},
		{SectionOther, "initialEstimate", fs.OtherFields.InitialEstimate},
	}
}

// PopulatedCount returns how many of the 16 slots carry a value.
func (fs *FieldSet) PopulatedCount() int {
	n := 0
	for _, f := range fs.Fields() {
		if f.Value != nil && *f.Value != "" {
			n++
		}
	}
	return n
}

// Normalize trims whitespace from every populated slot and clears slots
// that trim to empty, restoring the absent-or-trimmed invariant for field
// sets produced outside the rule engine.
func (fs *FieldSet) Normalize() {
	for _, slot := range fs.slots() {
		if *slot == nil {
			continue
		}
		trimmed := strings.TrimSpace(**slot)
		if trimmed == "" {
			*slot = nil
		} else {
			**slot = trimmed
		}
	}
}

func (fs *FieldSet) slots() []**string {
	return []**string{
		&fs.PolicyInformation.PolicyNumber,
		&fs.PolicyInformation.PolicyholderName,
		&fs.PolicyInformation.EffectiveDates,
		&fs.IncidentInformation.Date,
		&fs.IncidentInformation.Time,
		&fs.IncidentInformation.Location,
		&fs.IncidentInformation.Description,
		&fs.InvolvedParties.Claimant,
		&fs.InvolvedParties.ThirdParties,
		&fs.InvolvedParties.ContactDetails,
		&fs.AssetDetails.AssetType,
		&fs.AssetDetails.AssetID,
		&fs.AssetDetails.EstimatedDamage,
		&fs.OtherFields.ClaimType,
		&fs.OtherFields.Attachments,
		&fs.OtherFields.InitialEstimate,
	}
}

// String returns a pointer to s. Extraction rules use it to fill slots.
func String(s string) *string {
	return &s
}

// Deref returns the value of p or "" when absent.
func Deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
