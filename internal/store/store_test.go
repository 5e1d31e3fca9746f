package store

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/claimpilot/fnolagent/internal/model"
)

func record(id string, at time.Time) *model.ClaimRecord {
	return &model.ClaimRecord{
		ClaimID:     id,
		ProcessedAt: at,
		Route:       model.RouteStandard,
	}
}

func TestStore_PutAndGet(t *testing.T) {
	s := New()
	r := record("CLM-AAAA0001", time.Now())
	s.Put(r)

	got, ok := s.Get("CLM-AAAA0001")
	if !ok {
		t.Fatal("Expected record to be found")
	}
	if got.ClaimID != r.ClaimID {
		t.Errorf("Expected claim id %s, got %s", r.ClaimID, got.ClaimID)
	}

	if _, ok := s.Get("CLM-MISSING1"); ok {
		t.Error("Expected missing id to report not found")
	}
}

func TestStore_ListMostRecentFirst(t *testing.T) {
	s := New()
	base := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

	s.Put(record("CLM-OLD00001", base))
	s.Put(record("CLM-NEW00001", base.Add(2*time.Hour)))
	s.Put(record("CLM-MID00001", base.Add(time.Hour)))

	list := s.List()
	if len(list) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(list))
	}
	wantOrder := []string{"CLM-NEW00001", "CLM-MID00001", "CLM-OLD00001"}
	for i, want := range wantOrder {
		if list[i].ClaimID != want {
			t.Errorf("Position %d: expected %s, got %s", i, want, list[i].ClaimID)
		}
	}
}

func TestStore_ListBreaksTiesByClaimID(t *testing.T) {
	s := New()
	at := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	s.Put(record("CLM-BBBB0001", at))
	s.Put(record("CLM-AAAA0001", at))

	list := s.List()
	if list[0].ClaimID != "CLM-AAAA0001" || list[1].ClaimID != "CLM-BBBB0001" {
		t.Errorf("Expected tie-break on claim id, got %s then %s", list[0].ClaimID, list[1].ClaimID)
	}
}

func TestStore_ConcurrentPuts(t *testing.T) {
	s := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			s.Put(record(fmt.Sprintf("CLM-%08d", n), time.Now()))
		}(i)
	}
	wg.Wait()

	if s.Len() != 50 {
		t.Errorf("Expected 50 records, got %d", s.Len())
	}
}
