// store/store.go
package store

import (
	"context"

	"github.com/Tanmoy095/LogiSynapse/services/catalog-service/internal/models"
)

// PartitionStore is the storage layer for per-warehouse resource lists.
// Every warehouse (partition) keeps an independent list per resource kind,
// the engine reads snapshots and writes whole lists back.
type PartitionStore interface {
	// ListPartitions returns every partition id in a stable order. The
	// aggregate view depends on this order never changing between calls.
	ListPartitions(ctx context.Context) ([]string, error)

	// ListResources returns the partition's resource list for one kind.
	ListResources(ctx context.Context, partitionID string, kind models.ResourceKind) ([]models.Resource, error)

	// SaveResources replaces the partition's resource list for one kind.
	SaveResources(ctx context.Context, partitionID string, kind models.ResourceKind, resources []models.Resource) error
}
