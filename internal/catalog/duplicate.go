package catalog

import (
	"github.com/Tanmoy095/LogiSynapse/services/catalog-service/internal/models"
	"github.com/google/uuid"
)

// DuplicateManager creates user-owned copies of a resource. A copy is always
// CUSTOM origin, so later carrier syncs leave it alone, but it keeps the
// source's carrier identity for display and filtering in the dashboard.
type DuplicateManager struct {
	NewID      func() string
	NewGroupID func() string
}

func NewDuplicateManager() *DuplicateManager {
	return &DuplicateManager{
		NewID:      uuid.NewString,
		NewGroupID: uuid.NewString,
	}
}

// DuplicateAcrossAllPartitions creates one linked copy per partition,
// all sharing a single fresh duplicate group id. The group membership is
// fixed right here: partitions created later never join it, and the group id
// is never reassigned. Returns the copies keyed by partition plus the group id.
func (d *DuplicateManager) DuplicateAcrossAllPartitions(source models.Resource, partitionIDs []string) (map[string]models.Resource, string) {
	groupID := d.NewGroupID()
	copies := make(map[string]models.Resource, len(partitionIDs))
	for _, pid := range partitionIDs {
		dup := d.copyOf(source)
		dup.Scope = models.ScopeAll
		dup.DuplicateGroupID = groupID
		copies[pid] = dup
	}
	return copies, groupID
}

// DuplicateWithinPartition creates a single independent copy living in one
// partition only. No group id, so it never links to any other partition.
func (d *DuplicateManager) DuplicateWithinPartition(source models.Resource, partitionID string) models.Resource {
	dup := d.copyOf(source)
	dup.Scope = models.ScopeSpecific
	dup.ScopePartitionID = partitionID
	return dup
}

// copyOf derives the shared field values of any duplicate: fresh id, CUSTOM
// origin, disabled until the merchant turns it on, and flagged incomplete
// when the source never had its dimensions filled in.
func (d *DuplicateManager) copyOf(source models.Resource) models.Resource {
	// Only boxes carry dimensions, a duplicated service is ready to use.
	incomplete := source.Kind == models.KindBox && !source.Dimensions.Complete()
	return models.Resource{
		ID:              d.NewID(),
		Kind:            source.Kind,
		Origin:          models.OriginCustom,
		Carrier:         source.Carrier,
		Name:            source.Name + " (Copy)",
		MaxWeight:       source.MaxWeight,
		Dimensions:      source.Dimensions,
		TareWeight:      source.TareWeight,
		IsActive:        false,
		NeedsCompletion: incomplete,
	}
}
