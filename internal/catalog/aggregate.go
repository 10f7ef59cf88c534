package catalog

import (
	"github.com/Tanmoy095/LogiSynapse/services/catalog-service/internal/models"
)

// BuildAggregate folds every partition's resource list into the single
// deduplicated list the "all warehouses" screen shows.
//
// partitionIDs fixes the iteration order. Callers must pass the same order
// every time (the store returns partitions in a stable order), map iteration
// order is never relied on, so unchanged inputs produce identical output.
//
// The first partition in which an identity key appears contributes the
// representative row. Every occurrence, the first included, is recorded in
// statesByResourceID under the representative's id as that partition's
// active state. Inputs are treated as immutable snapshots.
func BuildAggregate(partitionIDs []string, resourcesByPartition map[string][]models.Resource) (merged []models.Resource, statesByResourceID map[string][]models.PartitionState) {
	statesByResourceID = make(map[string][]models.PartitionState)
	representatives := make(map[IdentityKey]string) // identity key -> representative resource id

	for _, pid := range partitionIDs {
		for _, r := range resourcesByPartition[pid] {
			key := KeyOf(r)
			repID, seen := representatives[key]
			if !seen {
				representatives[key] = r.ID
				repID = r.ID
				merged = append(merged, r)
			}
			statesByResourceID[repID] = append(statesByResourceID[repID], models.PartitionState{
				PartitionID: pid,
				IsActive:    r.IsActive,
			})
		}
	}
	return merged, statesByResourceID
}

// Summarize derives the cross-partition state shown next to a representative
// row. A custom scoped to one warehouse is simply that warehouse's state, it
// has no siblings by construction. Everything else aggregates over the
// partitions where the resource actually exists.
func Summarize(representative models.Resource, states []models.PartitionState) models.AggregateState {
	if representative.Origin == models.OriginCustom && representative.Scope == models.ScopeSpecific {
		if representative.IsActive {
			return models.AggregateState{Status: models.AllEnabled, EnabledCount: 1, Total: 1}
		}
		return models.AggregateState{Status: models.AllDisabled, EnabledCount: 0, Total: 1}
	}

	enabled := 0
	for _, s := range states {
		if s.IsActive {
			enabled++
		}
	}
	total := len(states)
	switch {
	case total > 0 && enabled == total:
		return models.AggregateState{Status: models.AllEnabled, EnabledCount: enabled, Total: total}
	case enabled == 0:
		return models.AggregateState{Status: models.AllDisabled, EnabledCount: 0, Total: total}
	default:
		return models.AggregateState{Status: models.PartialEnabled, EnabledCount: enabled, Total: total}
	}
}
