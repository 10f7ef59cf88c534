package catalog

import (
	"github.com/Tanmoy095/LogiSynapse/services/catalog-service/internal/models"
)

// ToggleCoordinator decides what a single "toggle" click means and computes
// the per-partition writes that carry it out. The decision depends on the
// shape of the resource:
//
//   - a custom scoped to one warehouse flips in that warehouse only
//   - a grouped duplicate toggles by consensus over its group members
//   - everything else (carrier catalog entries) toggles by consensus over
//     every partition holding a matching identity
//
// Consensus rule: if ANY matching copy is active, the target state is
// "disable everywhere", otherwise "enable everywhere". Clicking twice in a
// row therefore oscillates between enable-all and disable-all.
type ToggleCoordinator struct{}

func NewToggleCoordinator() *ToggleCoordinator {
	return &ToggleCoordinator{}
}

// Toggle computes the write batch for one toggle action. It never mutates
// the snapshots, the caller persists the returned writes (all of them, a
// half-applied batch leaves partitions disagreeing).
func (t *ToggleCoordinator) Toggle(resource models.Resource, partitionIDs []string, resourcesByPartition map[string][]models.Resource) ([]models.PartitionWrite, error) {
	key := KeyOf(resource)

	// Find every copy first, the target state depends on all of them.
	anyActive := false
	matchedPartitions := 0
	for _, pid := range partitionIDs {
		for _, r := range resourcesByPartition[pid] {
			if KeyOf(r) == key {
				matchedPartitions++
				if r.IsActive {
					anyActive = true
				}
			}
		}
	}
	if matchedPartitions == 0 {
		return nil, nil // nothing to do, resource vanished between read and click
	}

	target := !anyActive
	if target && resource.NeedsCompletion {
		// Cannot enable a resource the merchant has not finished setting up.
		return nil, ErrIncompleteResource
	}

	// Write the target state to EVERY partition holding a match, including
	// partitions already at the target. Applying the full batch is what
	// guarantees the partitions agree afterwards.
	var writes []models.PartitionWrite
	for _, pid := range partitionIDs {
		snapshot := resourcesByPartition[pid]
		found := false
		updated := make([]models.Resource, len(snapshot))
		for i, r := range snapshot {
			if KeyOf(r) == key {
				r.IsActive = target
				found = true
			}
			updated[i] = r
		}
		if found {
			writes = append(writes, models.PartitionWrite{
				PartitionID: pid,
				Kind:        resource.Kind,
				Resources:   updated,
			})
		}
	}
	return writes, nil
}
