package extract

import "regexp"

// Patterns are tuned for the ACORD Automobile Loss Notice layout, where a
// label line is followed by a value line and two fields often share both
// lines. Each field carries an ordered chain of candidates; the engine stops
// at the first one that matches.

// Policy information
var (
	rePolicyNumber    = regexp.MustCompile(`(?i)POLICY\s*NUMBER.*\n([A-Z0-9][A-Z0-9\-/]+)`)
	rePolicyNumberAlt = regexp.MustCompile(`(?i)Policy\s*(?:Number|No\.?|#)[:\s]*([A-Z0-9\-/]+)`)

	rePolicyholderLine = regexp.MustCompile(`(?i)POLICYHOLDER\s*NAME.*\n(.+)`)
	reDateRange        = regexp.MustCompile(`\d{2}/\d{2}/\d{4}\s*to\s*\d{2}/\d{2}/\d{4}`)

	rePolicyholderAlt1 = regexp.MustCompile(`(?i)(?:Policyholder|Insured)\s*(?:Name)?[:\s]+([A-Za-z][\w\s.]+?)(?:\n|$)`)
	rePolicyholderAlt2 = regexp.MustCompile(`(?i)Name\s*of\s*Insured[:\s]+([A-Za-z][\w\s.]+?)(?:\n|$)`)
)

// Incident information
var (
	reLossDateTime = regexp.MustCompile(`(?i)DATE\s*OF\s*LOSS.*\n(\d{2}/\d{2}/\d{4})\s+([\d:]+\s*[AP]M)`)
	reLossDate     = regexp.MustCompile(`(?i)DATE\s*OF\s*LOSS.*\n(\d{2}/\d{2}/\d{4})`)
	reLossDateAlt  = regexp.MustCompile(`(?i)Date\s*of\s*(?:Loss|Incident)[:\s]*([\d/\-]+)`)
	reBareTime     = regexp.MustCompile(`(?i)(\d{1,2}:\d{2}\s*[AP]M)`)

	reLocation    = regexp.MustCompile(`(?i)LOCATION\s*OF\s*LOSS\n(.+)`)
	reLocationAlt = regexp.MustCompile(`(?i)Location[:\s]+(.+)`)

	reDescription    = regexp.MustCompile(`(?i)DESCRIPTION\s*OF\s*ACCIDENT\n([\s\S]+?)\n(?:INSURED\s+VEHICLE|ASSET|[A-Z]{4,}\s+VEHICLE)`)
	reDescriptionAlt = regexp.MustCompile(`(?is)Description[:\s]+(.+?)(?:\n[A-Z]|\z)`)
)

// Involved parties
var (
	reReportedBy    = regexp.MustCompile(`(?i)REPORTED\s*BY\s+DATE\s*REPORTED\n(.+)`)
	reAnyDate       = regexp.MustCompile(`\d{2}/\d{2}/\d{4}`)
	reParenthetical = regexp.MustCompile(`\(.*?\)`)

	reThirdPartyLine = regexp.MustCompile(`(?i)THIRD\s*PARTY\s*NAME.*\n(.+)`)

	reContactPhoneLine = regexp.MustCompile(`(?i)CONTACT\s*PHONE\n(.+)`)
	reEmailLine        = regexp.MustCompile(`(?i)EMAIL\s*ADDRESS\n([\w.\-]+@[\w.\-]+\.\w+)`)
	rePhoneToken       = regexp.MustCompile(`\+91[\-\s]?\d[\d\-\s]{8,}`)
	reEmailToken       = regexp.MustCompile(`[\w.\-]+@[\w.\-]+\.\w+`)
)

// Asset details
var (
	reAssetTypeLine = regexp.MustCompile(`(?i)ASSET\s*TYPE.*\n(.+)`)
	reMultiSpace    = regexp.MustCompile(`\s{2,}`)

	reAssetIDLine = regexp.MustCompile(`(?i)(?:V\.?I\.?N\.?\s*/?\s*ASSET\s*ID|ASSET\s*ID).*\n(.+)`)
	// VIN tokens are uppercase by convention; this one is deliberately case-sensitive
	reVINToken = regexp.MustCompile(`[A-Z0-9]{10,}`)
	reModelVIN = regexp.MustCompile(`(?i)MODEL.*\n.*?([A-Z0-9]{10,})`)

	reDamagePair = regexp.MustCompile(`(?i)ESTIMATED\s*DAMAGE\s*\(INR\).*\n([\d,]+)(?:\s+([\d,]+))?`)
	reDamageAlt  = regexp.MustCompile(`(?i)(?:Estimated\s*Damage|Damage\s*Amount)[:\s]*(?:₹|Rs\.?|INR)?\s*([\d,]+)`)
)

// Other fields
var (
	reClaimTypeAttach = regexp.MustCompile(`(?i)CLAIM\s*TYPE\s+ATTACHMENTS\n(.+)`)
	reAttachmentToken = regexp.MustCompile(`(?i)(?:Photos?|Documents?|FIR|Report|Receipt|Hospital|Records?)`)
	reClaimTypeOnly   = regexp.MustCompile(`(?i)CLAIM\s*TYPE.*\n(.+)`)
	reAttachmentsOnly = regexp.MustCompile(`(?i)ATTACHMENTS.*\n(.+)`)

	reInitialEstimate = regexp.MustCompile(`(?i)INITIAL\s*ESTIMATE.*\n.*?([\d,]+)`)
)
