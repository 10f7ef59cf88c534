package catalog

import (
	"testing"

	"github.com/Tanmoy095/LogiSynapse/services/catalog-service/internal/models"
)

// activeIn extracts the written state for one partition, failing the test if
// the batch holds no write for it.
func activeIn(t *testing.T, writes []models.PartitionWrite, pid, resourceID string) bool {
	t.Helper()
	for _, w := range writes {
		if w.PartitionID != pid {
			continue
		}
		for _, r := range w.Resources {
			if r.ID == resourceID {
				return r.IsActive
			}
		}
	}
	t.Fatalf("no write for resource %s in partition %s", resourceID, pid)
	return false
}

func TestToggleConsensusDisablesWhenAnyActive(t *testing.T) {
	// Active states [true, false, false]: at least one copy is on, so the
	// click means "disable all".
	partitions, byPartition := threeWarehouses()
	byPartition["wh-b"][0].IsActive = false // states now [true, false, false]

	writes, err := NewToggleCoordinator().Toggle(byPartition["wh-a"][0], partitions, byPartition)
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if len(writes) != 3 {
		t.Fatalf("expected writes for all 3 partitions, got %d", len(writes))
	}
	for pid, id := range map[string]string{"wh-a": "a1", "wh-b": "b1", "wh-c": "c1"} {
		if activeIn(t, writes, pid, id) {
			t.Errorf("%s: want disabled", pid)
		}
	}
}

func TestToggleConsensusEnablesWhenNoneActive(t *testing.T) {
	partitions, byPartition := threeWarehouses()
	byPartition["wh-a"][0].IsActive = false
	byPartition["wh-b"][0].IsActive = false // states now [false, false, false]

	writes, err := NewToggleCoordinator().Toggle(byPartition["wh-a"][0], partitions, byPartition)
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	for pid, id := range map[string]string{"wh-a": "a1", "wh-b": "b1", "wh-c": "c1"} {
		if !activeIn(t, writes, pid, id) {
			t.Errorf("%s: want enabled", pid)
		}
	}
}

func TestToggleWritesOnlyWhereResourceExists(t *testing.T) {
	partitions, byPartition := threeWarehouses()
	byPartition["wh-c"] = nil // absent from C

	writes, err := NewToggleCoordinator().Toggle(byPartition["wh-a"][0], partitions, byPartition)
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if len(writes) != 2 {
		t.Fatalf("expected writes for A and B only, got %d", len(writes))
	}
	for _, w := range writes {
		if w.PartitionID == "wh-c" {
			t.Error("must not write to a partition holding no match")
		}
	}
}

func TestToggleSpecificCustomFlipsOnePartition(t *testing.T) {
	partitions, byPartition := threeWarehouses()
	mine := models.Resource{
		ID: "c9", Kind: models.KindBox, Origin: models.OriginCustom,
		Name: "My Box", Scope: models.ScopeSpecific, ScopePartitionID: "wh-b",
		Dimensions: models.Dimensions{Length: 2, Width: 2, Height: 2},
	}
	byPartition["wh-b"] = append(byPartition["wh-b"], mine)

	writes, err := NewToggleCoordinator().Toggle(mine, partitions, byPartition)
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if len(writes) != 1 || writes[0].PartitionID != "wh-b" {
		t.Fatalf("expected a single write to wh-b, got %+v", writes)
	}
	if !activeIn(t, writes, "wh-b", "c9") {
		t.Error("specific custom should flip from inactive to active")
	}
	// The provider box in the same partition must ride along untouched.
	if !activeIn(t, writes, "wh-b", "b1") {
		t.Error("unrelated resource state changed by toggle")
	}
}

func TestToggleGroupedDuplicatesByConsensus(t *testing.T) {
	member := func(id string, active bool) models.Resource {
		return models.Resource{
			ID: id, Kind: models.KindBox, Origin: models.OriginCustom,
			Carrier: uspsPriority(), Scope: models.ScopeAll,
			DuplicateGroupID: "g1", IsActive: active,
			Dimensions: models.Dimensions{Length: 4, Width: 4, Height: 4},
		}
	}
	partitions := []string{"wh-a", "wh-b", "wh-c"}
	byPartition := map[string][]models.Resource{
		"wh-a": {member("d1", true)},
		"wh-b": {member("d2", false)},
		"wh-c": {member("d3", false)},
	}

	writes, err := NewToggleCoordinator().Toggle(byPartition["wh-a"][0], partitions, byPartition)
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if len(writes) != 3 {
		t.Fatalf("expected writes for every group member, got %d", len(writes))
	}
	for pid, id := range map[string]string{"wh-a": "d1", "wh-b": "d2", "wh-c": "d3"} {
		if activeIn(t, writes, pid, id) {
			t.Errorf("%s: any member active means disable all", pid)
		}
	}
}

func TestToggleOscillates(t *testing.T) {
	// Apply toggle, persist, toggle again: enable-all then disable-all.
	partitions, byPartition := threeWarehouses()
	byPartition["wh-a"][0].IsActive = false
	byPartition["wh-b"][0].IsActive = false

	tc := NewToggleCoordinator()
	writes, err := tc.Toggle(byPartition["wh-a"][0], partitions, byPartition)
	if err != nil {
		t.Fatalf("first toggle failed: %v", err)
	}
	for _, w := range writes {
		byPartition[w.PartitionID] = w.Resources
	}
	if !byPartition["wh-c"][0].IsActive {
		t.Fatal("first toggle should have enabled everything")
	}

	writes, err = tc.Toggle(byPartition["wh-a"][0], partitions, byPartition)
	if err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}
	for _, w := range writes {
		byPartition[w.PartitionID] = w.Resources
	}
	for pid := range byPartition {
		if byPartition[pid][0].IsActive {
			t.Errorf("%s: second toggle should have disabled everything", pid)
		}
	}
}

func TestToggleBlocksIncompleteResources(t *testing.T) {
	incomplete := models.Resource{
		ID: "r1", Kind: models.KindBox, Origin: models.OriginProvider,
		Carrier: uspsPriority(), Editable: true, NeedsCompletion: true,
	}
	partitions := []string{"wh-a"}
	byPartition := map[string][]models.Resource{"wh-a": {incomplete}}

	writes, err := NewToggleCoordinator().Toggle(incomplete, partitions, byPartition)
	if err != ErrIncompleteResource {
		t.Fatalf("expected ErrIncompleteResource, got %v", err)
	}
	if writes != nil {
		t.Error("a blocked toggle must produce no writes")
	}
}

func TestToggleDisablingIncompleteResourceIsAllowed(t *testing.T) {
	// Incomplete resources can still be turned OFF.
	incomplete := models.Resource{
		ID: "r1", Kind: models.KindBox, Origin: models.OriginProvider,
		Carrier: uspsPriority(), Editable: true, NeedsCompletion: true, IsActive: true,
	}
	partitions := []string{"wh-a"}
	byPartition := map[string][]models.Resource{"wh-a": {incomplete}}

	writes, err := NewToggleCoordinator().Toggle(incomplete, partitions, byPartition)
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if activeIn(t, writes, "wh-a", "r1") {
		t.Error("want disabled")
	}
}

func TestToggleVanishedResourceIsNoop(t *testing.T) {
	gone := models.Resource{ID: "zz", Kind: models.KindBox, Origin: models.OriginCustom, Scope: models.ScopeSpecific, ScopePartitionID: "wh-a"}
	writes, err := NewToggleCoordinator().Toggle(gone, []string{"wh-a"}, map[string][]models.Resource{"wh-a": nil})
	if err != nil || writes != nil {
		t.Fatalf("expected silent no-op, got writes=%v err=%v", writes, err)
	}
}
