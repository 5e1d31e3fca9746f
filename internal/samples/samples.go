// Package samples ships five FNOL documents in the ACORD automobile loss
// notice layout, one per routing scenario. The serve command generates them
// on startup so a fresh install has something to process.
package samples

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Sample is one FNOL scenario rendered as an ACORD-style text form
type Sample struct {
	Filename string

	FormDate          string
	PolicyNumber      string
	Carrier           string
	PolicyholderName  string
	EffectiveDates    string
	DateOfBirth       string
	Phone             string
	Email             string
	LossDate          string
	LossTime          string
	LossLocation      string
	Description       string
	AssetType         string
	VehicleMake       string
	VehicleModel      string
	AssetID           string
	PlateNumber       string
	State             string
	DamageDescription string
	ThirdParty        string
	ThirdPartyVehicle string
	ThirdPartyContact string
	InjuredName       string
	InjuryExtent      string
	EstimatedDamage   string
	InitialEstimate   string
	ClaimType         string
	Attachments       string
	ReportedBy        string
}

// All returns the five scenario documents: fast-track, manual review,
// investigation, specialist queue, and standard processing.
func All() []Sample {
	return []Sample{
		{
			Filename:          "claim_001_fast_track.txt",
			FormDate:          "03/02/2026",
			PolicyNumber:      "NIC-MH-2024-08742",
			Carrier:           "National Insurance Co. Ltd.",
			PolicyholderName:  "Rajesh Kumar Sharma",
			EffectiveDates:    "01/04/2025 to 31/03/2026",
			DateOfBirth:       "15/08/1985",
			Phone:             "+91-9876543210",
			Email:             "rajesh.sharma@email.com",
			LossDate:          "01/02/2026",
			LossTime:          "10:30 AM",
			LossLocation:      "MG Road, Near Forum Mall, Bangalore, Karnataka 560025",
			Description:       "Minor rear-end collision at traffic signal. The insured vehicle was stationary at a red light when another vehicle hit from behind at low speed. Minor dent on rear bumper and cracked tail light. No injuries to any party. Weather was clear and road was dry.",
			AssetType:         "Motor Vehicle - Private Car",
			VehicleMake:       "2022 Maruti Suzuki",
			VehicleModel:      "Swift VXi - Hatchback",
			AssetID:           "MA3EYD81S00T52847",
			PlateNumber:       "KA-01-MJ-4521",
			State:             "Karnataka",
			DamageDescription: "Rear bumper dent, cracked left tail light assembly",
			ThirdParty:        "Vikram Patel",
			ThirdPartyVehicle: "2021 Hyundai i20 - KA-03-AB-7823",
			ThirdPartyContact: "+91-9845012345, ICICI Lombard Policy #IL-2024-55123",
			EstimatedDamage:   "8,500",
			InitialEstimate:   "8,500",
			ClaimType:         "Auto - Property Damage",
			Attachments:       "Photos (3), Police spot report",
			ReportedBy:        "Rajesh Kumar Sharma (Self)",
		},
		{
			Filename:          "claim_002_manual_review.txt",
			FormDate:          "02/02/2026",
			PolicyNumber:      "UIIC-DL-2023-33210",
			Carrier:           "United India Insurance",
			PolicyholderName:  "Priya Menon",
			EffectiveDates:    "", // missing on purpose
			DateOfBirth:       "22/03/1990",
			Phone:             "+91-8801234567",
			Email:             "priya.menon@gmail.com",
			LossDate:          "30/01/2026",
			LossTime:          "3:45 PM",
			LossLocation:      "NH-44, near Moinabad toll plaza, Hyderabad, Telangana",
			Description:       "Vehicle skidded on wet road and hit the highway divider. Front portion of the car is significantly damaged. Airbags deployed. Driver had minor bruises but no serious injuries. Towing was required from the accident site.",
			AssetType:         "Motor Vehicle - Private Car",
			VehicleMake:       "2023 Honda",
			VehicleModel:      "City ZX CVT - Sedan",
			AssetID:           "", // missing on purpose
			PlateNumber:       "TS-09-FA-1234",
			State:             "Telangana",
			DamageDescription: "Front bumper destroyed, hood bent, radiator damaged, both airbags deployed",
			ThirdParty:        "None - Single vehicle accident",
			ThirdPartyVehicle: "N/A",
			ThirdPartyContact: "N/A",
			EstimatedDamage:   "1,85,000",
			InitialEstimate:   "",
			ClaimType:         "Auto - Property Damage",
			Attachments:       "Photos (5), FIR copy",
			ReportedBy:        "Priya Menon (Self)",
		},
		{
			Filename:          "claim_003_investigation.txt",
			FormDate:          "01/02/2026",
			PolicyNumber:      "OIC-MH-2024-77654",
			Carrier:           "Oriental Insurance Co.",
			PolicyholderName:  "Suresh Babu Reddy",
			EffectiveDates:    "15/06/2025 to 14/06/2026",
			DateOfBirth:       "10/11/1978",
			Phone:             "+91-9912345678",
			Email:             "suresh.reddy@yahoo.com",
			LossDate:          "28/01/2026",
			LossTime:          "11:50 PM",
			LossLocation:      "Isolated road near Lonavala, off Mumbai-Pune Expressway, Maharashtra",
			Description:       "Vehicle was found completely burned on an isolated road near Lonavala. The circumstances appear staged and inconsistent with the driver account. The insured claims the car caught fire spontaneously while parked, but the burn pattern suggests fraud. Witness reports are inconsistent with the timeline provided. Investigation is strongly recommended.",
			AssetType:         "Motor Vehicle - Private Car",
			VehicleMake:       "2024 BMW",
			VehicleModel:      "3 Series 320d - Sedan",
			AssetID:           "WBA5R1C50KAE12345",
			PlateNumber:       "MH-01-CZ-9999",
			State:             "Maharashtra",
			DamageDescription: "Total loss - vehicle completely gutted by fire",
			ThirdParty:        "None",
			ThirdPartyVehicle: "N/A",
			ThirdPartyContact: "N/A",
			EstimatedDamage:   "42,00,000",
			InitialEstimate:   "42,00,000",
			ClaimType:         "Auto - Total Loss / Fire",
			Attachments:       "Fire brigade report, Photos (12), Police FIR",
			ReportedBy:        "Suresh Babu Reddy (Self)",
		},
		{
			Filename:          "claim_004_specialist_injury.txt",
			FormDate:          "31/01/2026",
			PolicyNumber:      "NIAC-TN-2025-12890",
			Carrier:           "New India Assurance Co.",
			PolicyholderName:  "Anitha Krishnamurthy",
			EffectiveDates:    "01/01/2025 to 31/12/2025",
			DateOfBirth:       "05/05/1982",
			Phone:             "+91-9443012345",
			Email:             "anitha.k@outlook.com",
			LossDate:          "29/01/2026",
			LossTime:          "8:15 AM",
			LossLocation:      "Anna Salai, near Saidapet junction, Chennai, Tamil Nadu 600015",
			Description:       "Head-on collision with a truck that jumped the median. The insured driver suffered serious bodily injury including fractured ribs and a dislocated shoulder. The passenger sustained a head injury requiring hospitalization and emergency surgery. Both are currently admitted to Apollo Hospital, Chennai.",
			AssetType:         "Motor Vehicle - Private Car",
			VehicleMake:       "2021 Toyota",
			VehicleModel:      "Innova Crysta GX - MPV",
			AssetID:           "MHFZ29G0SM0012345",
			PlateNumber:       "TN-01-BC-5678",
			State:             "Tamil Nadu",
			DamageDescription: "Complete front-end damage, engine bay crushed, windshield shattered, both front doors jammed",
			ThirdParty:        "Ramu Transport - Driver: Selvam",
			ThirdPartyVehicle: "2019 Tata LPT 1613 Truck - TN-22-G-4567",
			ThirdPartyContact: "Ramu Transport: +91-4428001234, Bajaj Allianz Policy #BA-COM-2024-99876",
			InjuredName:       "Anitha Krishnamurthy, Deepa Lakshmi (passenger)",
			InjuryExtent:      "Fractured ribs, dislocated shoulder (driver). Head injury requiring surgery (passenger). Both hospitalized.",
			EstimatedDamage:   "3,50,000",
			InitialEstimate:   "3,50,000",
			ClaimType:         "Injury - Bodily Injury + Property",
			Attachments:       "Hospital admission records, Photos (8), FIR copy, Ambulance receipt",
			ReportedBy:        "Venkat Krishnamurthy (Spouse)",
		},
		{
			Filename:          "claim_005_standard.txt",
			FormDate:          "30/01/2026",
			PolicyNumber:      "SBI-GI-KA-2024-45678",
			Carrier:           "SBI General Insurance",
			PolicyholderName:  "Mohammed Irfan Sheikh",
			EffectiveDates:    "01/09/2024 to 31/08/2025",
			DateOfBirth:       "20/07/1988",
			Phone:             "+91-7760012345",
			Email:             "irfan.sheikh@email.com",
			LossDate:          "27/01/2026",
			LossTime:          "6:30 PM",
			LossLocation:      "Outer Ring Road, Marathahalli junction, Bangalore, Karnataka 560037",
			Description:       "Three-vehicle pile-up during evening rush hour traffic. The insured vehicle rear-ended a stopped car which then hit the vehicle in front. Significant damage to front and rear of the insured vehicle. All parties exchanged information. Traffic police filed a report. No injuries reported.",
			AssetType:         "Motor Vehicle - SUV",
			VehicleMake:       "2023 Mahindra",
			VehicleModel:      "XUV700 AX7 - SUV",
			AssetID:           "MAL1C2BL5P1234567",
			PlateNumber:       "KA-05-MR-2345",
			State:             "Karnataka",
			DamageDescription: "Front bumper cracked, grille broken, bonnet dented, rear bumper damaged, boot lid misaligned",
			ThirdParty:        "Amit Joshi (front vehicle), Kavya Rao (rear vehicle)",
			ThirdPartyVehicle: "Hyundai Creta KA-01-NM-8901 (front), Kia Seltos KA-03-HB-5678 (rear)",
			ThirdPartyContact: "Amit: +91-9900012345, Kavya: +91-9845098765",
			EstimatedDamage:   "28,500",
			InitialEstimate:   "28,500",
			ClaimType:         "Auto - Property Damage",
			Attachments:       "Photos (10), Traffic police report, Witness statement",
			ReportedBy:        "Mohammed Irfan Sheikh (Self)",
		},
	}
}

// column is where the second field of a paired row starts. Wide enough
// that value columns stay separated by a run of two-or-more spaces, which
// the extraction rules rely on.
const column = 40

// Render produces the ACORD-style text form for a sample
func (s Sample) Render() string {
	var b strings.Builder

	b.WriteString("AUTOMOBILE LOSS NOTICE\n")
	b.WriteString("ACORD FORM (First Notice of Loss)\n")
	pair(&b, "DATE (DD/MM/YYYY)", s.FormDate, "", "")
	b.WriteString("\n")

	b.WriteString("AGENCY / POLICY INFORMATION\n")
	pair(&b, "POLICY NUMBER", s.PolicyNumber, "CARRIER", s.Carrier)
	pair(&b, "POLICYHOLDER NAME (First, Middle, Last)", s.PolicyholderName, "EFFECTIVE DATES", s.EffectiveDates)
	pair(&b, "DATE OF BIRTH", s.DateOfBirth, "CONTACT PHONE", s.Phone)
	pair(&b, "EMAIL ADDRESS", s.Email, "", "")
	b.WriteString("\n")

	b.WriteString("LOSS / INCIDENT INFORMATION\n")
	pair(&b, "DATE OF LOSS (DD/MM/YYYY)", s.LossDate, "TIME OF LOSS", s.LossTime)
	pair(&b, "LOCATION OF LOSS", s.LossLocation, "", "")
	b.WriteString("DESCRIPTION OF ACCIDENT\n")
	for _, line := range wrap(s.Description, 90) {
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")

	b.WriteString("INSURED VEHICLE / ASSET DETAILS\n")
	pair(&b, "ASSET TYPE", s.AssetType, "YEAR / MAKE", s.VehicleMake)
	pair(&b, "MODEL / BODY TYPE", s.VehicleModel, "V.I.N. / ASSET ID", s.AssetID)
	pair(&b, "PLATE NUMBER / REGISTRATION", s.PlateNumber, "STATE", s.State)
	pair(&b, "DESCRIBE DAMAGE", s.DamageDescription, "", "")
	b.WriteString("\n")

	b.WriteString("OTHER VEHICLE / THIRD PARTY\n")
	pair(&b, "THIRD PARTY NAME", s.ThirdParty, "THIRD PARTY VEHICLE", s.ThirdPartyVehicle)
	pair(&b, "THIRD PARTY CONTACT / INSURANCE", s.ThirdPartyContact, "", "")
	b.WriteString("\n")

	b.WriteString("INJURED PERSONS\n")
	pair(&b, "NAME", s.InjuredName, "EXTENT OF INJURY", s.InjuryExtent)
	b.WriteString("\n")

	b.WriteString("ESTIMATE & CLAIM DETAILS\n")
	pair(&b, "ESTIMATED DAMAGE (INR)", s.EstimatedDamage, "INITIAL ESTIMATE (INR)", s.InitialEstimate)
	pair(&b, "CLAIM TYPE", s.ClaimType, "ATTACHMENTS", s.Attachments)
	b.WriteString("\n")

	b.WriteString("REPORTED BY\n")
	pair(&b, "REPORTED BY", s.ReportedBy, "DATE REPORTED", s.FormDate)

	return b.String()
}

// pair writes a two-field row: a label line, then a value line. Empty
// labels or values collapse to single-field rows; a fully empty value line
// is skipped, the way an unfilled form field leaves blank paper.
func pair(b *strings.Builder, label1, value1, label2, value2 string) {
	b.WriteString(padded(label1, label2))
	if value1 != "" || value2 != "" {
		b.WriteString(padded(value1, value2))
	}
}

func padded(left, right string) string {
	if right == "" {
		return left + "\n"
	}
	if len(left) >= column-2 {
		return left + "  " + right + "\n"
	}
	return left + strings.Repeat(" ", column-len(left)) + right + "\n"
}

func wrap(text string, width int) []string {
	words := strings.Fields(text)
	var lines []string
	var current string
	for _, word := range words {
		if current == "" {
			current = word
			continue
		}
		if len(current)+1+len(word) > width {
			lines = append(lines, current)
			current = word
		} else {
			current += " " + word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// Generate writes all sample documents into dir
func Generate(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create sample dir: %w", err)
	}
	for _, s := range All() {
		path := filepath.Join(dir, s.Filename)
		if err := os.WriteFile(path, []byte(s.Render()), 0644); err != nil {
			return fmt.Errorf("write %s: %w", s.Filename, err)
		}
	}
	return nil
}

// List returns the sample document filenames present in dir, sorted.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext == ".txt" || ext == ".pdf" {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
