package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/Tanmoy095/LogiSynapse/services/catalog-service/internal/models"
)

// MemoryStore is an in-memory PartitionStore for tests and local development.
type MemoryStore struct {
	mu         sync.RWMutex
	partitions []string
	resources  map[string][]models.Resource // key is partitionID + "/" + kind
}

// NewMemoryStore creates a store holding the given partitions. The order
// passed here is the order ListPartitions returns forever after.
func NewMemoryStore(partitionIDs ...string) *MemoryStore {
	return &MemoryStore{
		partitions: partitionIDs,
		resources:  make(map[string][]models.Resource),
	}
}

func listKey(partitionID string, kind models.ResourceKind) string {
	return partitionID + "/" + string(kind)
}

func (s *MemoryStore) ListPartitions(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.partitions))
	copy(out, s.partitions)
	return out, nil
}

func (s *MemoryStore) ListResources(ctx context.Context, partitionID string, kind models.ResourceKind) ([]models.Resource, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.hasPartition(partitionID) {
		return nil, fmt.Errorf("unknown partition %q", partitionID)
	}
	list := s.resources[listKey(partitionID, kind)]
	// Hand out a copy so callers can never mutate the stored list in place.
	out := make([]models.Resource, len(list))
	copy(out, list)
	return out, nil
}

func (s *MemoryStore) SaveResources(ctx context.Context, partitionID string, kind models.ResourceKind, resources []models.Resource) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasPartition(partitionID) {
		return fmt.Errorf("unknown partition %q", partitionID)
	}
	stored := make([]models.Resource, len(resources))
	copy(stored, resources)
	s.resources[listKey(partitionID, kind)] = stored
	return nil
}

func (s *MemoryStore) hasPartition(partitionID string) bool {
	for _, p := range s.partitions {
		if p == partitionID {
			return true
		}
	}
	return false
}
