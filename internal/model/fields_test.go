package model

import "testing"

func TestFieldSet_FieldsOrderAndCount(t *testing.T) {
	fs := &FieldSet{}
	fields := fs.Fields()

	if len(fields) != 16 {
		t.Fatalf("Expected 16 slots, got %d", len(fields))
	}
	if got := fields[0].Qualified(); got != "policyInformation.policyNumber" {
		t.Errorf("Expected first slot policyInformation.policyNumber, got %s", got)
	}
	if got := fields[15].Qualified(); got != "otherFields.initialEstimate" {
		t.Errorf("Expected last slot otherFields.initialEstimate, got %s", got)
	}

	seen := map[string]bool{}
	for _, f := range fields {
		q := f.Qualified()
		if seen[q] {
			t.Errorf("Duplicate slot %s", q)
		}
		seen[q] = true
	}
}

func TestFieldSet_PopulatedCount(t *testing.T) {
	fs := &FieldSet{}
	if n := fs.PopulatedCount(); n != 0 {
		t.Errorf("Expected 0 populated, got %d", n)
	}

	fs.PolicyInformation.PolicyNumber = String("NIC-MH-2024-08742")
	fs.AssetDetails.EstimatedDamage = String("8500")
	if n := fs.PopulatedCount(); n != 2 {
		t.Errorf("Expected 2 populated, got %d", n)
	}
}

func TestFieldSet_Normalize(t *testing.T) {
	fs := &FieldSet{}
	fs.PolicyInformation.PolicyNumber = String("  NIC-MH-2024-08742  ")
	fs.IncidentInformation.Location = String("   ")
	fs.OtherFields.ClaimType = String("Auto - Property Damage")

	fs.Normalize()

	if got := Deref(fs.PolicyInformation.PolicyNumber); got != "NIC-MH-2024-08742" {
		t.Errorf("Expected trimmed policy number, got %q", got)
	}
	if fs.IncidentInformation.Location != nil {
		t.Errorf("Expected whitespace-only slot to clear, got %q", *fs.IncidentInformation.Location)
	}
	if got := Deref(fs.OtherFields.ClaimType); got != "Auto - Property Damage" {
		t.Errorf("Expected untouched claim type, got %q", got)
	}
}

func TestDeref(t *testing.T) {
	if got := Deref(nil); got != "" {
		t.Errorf("Expected empty string for nil, got %q", got)
	}
	if got := Deref(String("x")); got != "x" {
		t.Errorf("Expected x, got %q", got)
	}
}
