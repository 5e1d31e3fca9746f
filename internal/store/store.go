// Package store holds processed claim records in memory for later listing.
// Records are written once per submission and never updated or deleted.
package store

import (
	"sort"
	"sync"

	"github.com/claimpilot/fnolagent/internal/model"
)

// Store is a process-wide claim store keyed by claim id. Safe for
// concurrent submissions.
type Store struct {
	mu     sync.RWMutex
	claims map[string]*model.ClaimRecord
}

// New creates an empty claim store
func New() *Store {
	return &Store{
		claims: make(map[string]*model.ClaimRecord),
	}
}

// Put inserts a processed claim record
func (s *Store) Put(record *model.ClaimRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.claims[record.ClaimID] = record
}

// Get returns the record for the given claim id
func (s *Store) Get(claimID string) (*model.ClaimRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.claims[claimID]
	return record, ok
}

// List returns a consistent snapshot of all records, most recent first.
// Ties on processing time break on claim id so the order is stable.
func (s *Store) List() []*model.ClaimRecord {
	s.mu.RLock()
	records := make([]*model.ClaimRecord, 0, len(s.claims))
	for _, r := range s.claims {
		records = append(records, r)
	}
	s.mu.RUnlock()

	sort.Slice(records, func(i, j int) bool {
		if !records[i].ProcessedAt.Equal(records[j].ProcessedAt) {
			return records[i].ProcessedAt.After(records[j].ProcessedAt)
		}
		return records[i].ClaimID < records[j].ClaimID
	})
	return records
}

// Len returns the number of stored records
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.claims)
}
