package cache

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/claimpilot/fnolagent/internal/model"
)

func sampleFields() *model.FieldSet {
	fs := &model.FieldSet{}
	fs.PolicyInformation.PolicyNumber = model.String("NIC-MH-2024-08742")
	fs.AssetDetails.EstimatedDamage = model.String("8500")
	return fs
}

func TestKey_VariesByStrategyAndText(t *testing.T) {
	a := Key("rules", "document one")
	b := Key("openai", "document one")
	c := Key("rules", "document two")

	if a == b {
		t.Error("Expected different strategies to produce different keys")
	}
	if a == c {
		t.Error("Expected different texts to produce different keys")
	}
	if a != Key("rules", "document one") {
		t.Error("Expected the key derivation to be deterministic")
	}
}

func TestFieldCache_MemoryRoundTrip(t *testing.T) {
	c := New("", time.Minute)
	key := Key("rules", "some document text")

	if _, found := c.Get(key); found {
		t.Fatal("Expected miss on empty cache")
	}

	if err := c.Set(key, sampleFields()); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, found := c.Get(key)
	if !found {
		t.Fatal("Expected hit after Set")
	}
	if diff := cmp.Diff(sampleFields(), got); diff != "" {
		t.Errorf("Cached fields mismatch (-want +got):\n%s", diff)
	}
}

func TestFieldCache_DiskSurvivesRestart(t *testing.T) {
	dir := t.TempDir()
	key := Key("rules", "persistent document")

	first := New(dir, time.Minute)
	if err := first.Set(key, sampleFields()); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	// A fresh instance has a cold memory layer and must hit disk
	second := New(dir, time.Minute)
	got, found := second.Get(key)
	if !found {
		t.Fatal("Expected disk hit from a fresh cache instance")
	}
	if diff := cmp.Diff(sampleFields(), got); diff != "" {
		t.Errorf("Cached fields mismatch (-want +got):\n%s", diff)
	}
}

func TestFieldCache_ExpiredDiskEntryIsDropped(t *testing.T) {
	dir := t.TempDir()
	key := Key("rules", "stale document")

	expired := diskEntry{
		Fields:    *sampleFields(),
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	data, err := json.Marshal(expired)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	c := New(dir, time.Minute)
	if err := os.WriteFile(c.path(key), data, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, found := c.Get(key); found {
		t.Error("Expected expired disk entry to be a miss")
	}
	if _, err := os.Stat(c.path(key)); !os.IsNotExist(err) {
		t.Error("Expected expired disk entry to be removed")
	}
}

func TestFieldCache_Clear(t *testing.T) {
	dir := t.TempDir()
	c := New(dir, time.Minute)
	key := Key("rules", "document")

	if err := c.Set(key, sampleFields()); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := c.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, found := c.Get(key); found {
		t.Error("Expected miss after Clear")
	}
}
