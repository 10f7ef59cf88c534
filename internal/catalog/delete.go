package catalog

import (
	"github.com/Tanmoy095/LogiSynapse/services/catalog-service/internal/models"
)

// DeletionCoordinator computes the writes that remove a resource. Scope
// follows the same shapes as toggling: a grouped duplicate disappears from
// every partition holding a sibling, a warehouse-scoped custom disappears
// from its one warehouse, any other custom disappears wherever its identity
// matches.
//
// Carrier catalog entries are not deletable at all. The next sync would just
// re-insert them, so the dashboard only lets merchants deactivate those.
type DeletionCoordinator struct{}

func NewDeletionCoordinator() *DeletionCoordinator {
	return &DeletionCoordinator{}
}

// Delete computes the write batch removing the resource. Partitions holding
// no match get no write.
func (d *DeletionCoordinator) Delete(resource models.Resource, partitionIDs []string, resourcesByPartition map[string][]models.Resource) ([]models.PartitionWrite, error) {
	if resource.Origin == models.OriginProvider {
		return nil, ErrNotDeletable
	}

	key := KeyOf(resource)
	var writes []models.PartitionWrite
	for _, pid := range partitionIDs {
		snapshot := resourcesByPartition[pid]
		kept := make([]models.Resource, 0, len(snapshot))
		removed := false
		for _, r := range snapshot {
			if KeyOf(r) == key {
				removed = true
				continue
			}
			kept = append(kept, r)
		}
		if removed {
			writes = append(writes, models.PartitionWrite{
				PartitionID: pid,
				Kind:        resource.Kind,
				Resources:   kept,
			})
		}
	}
	return writes, nil
}
