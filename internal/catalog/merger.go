package catalog

import (
	"sort"

	"github.com/Tanmoy095/LogiSynapse/services/catalog-service/internal/models"
	"github.com/google/uuid"
)

// Merger reconciles a freshly fetched carrier catalog into one partition's
// existing resource list. It is a pure transformation, the caller reads the
// existing list from the store and persists the returned list.
//
// The merge must preserve the merchant's work: customs survive untouched,
// user-set dimensions on editable templates are never overwritten, and an
// edited template the carrier stopped listing is kept rather than dropped.
type Merger struct {
	// NewID mints ids for resources the sync inserts. Overridable in tests
	// so merge output is fully deterministic.
	NewID func() string
}

func NewMerger() *Merger {
	return &Merger{NewID: uuid.NewString}
}

// Sync merges providerCatalog into existing and returns the new full list
// for the partition. It never mutates its inputs.
//
// Rules, in order:
//  1. A provider item matching an existing PROVIDER row by carrier identity
//     refreshes that row's provider-owned fields (name, max weight). If the
//     item is editable, user-set dimensions win as long as all three are
//     filled in, otherwise the provider's dimensions are adopted and
//     NeedsCompletion stays true until valid dimensions exist. Non-editable
//     items overwrite dimensions wholesale. IsActive is never touched.
//  2. A provider item with no match inserts a new PROVIDER resource.
//  3. Unmatched CUSTOM rows are kept verbatim, the carrier has no say.
//  4. Unmatched editable PROVIDER rows the merchant already customized are
//     kept too (the carrier dropped the template, the user's work stays).
//  5. Remaining unmatched PROVIDER rows are stale catalog entries and drop.
//
// The output is sorted by display name (id as tie break) so two syncs with
// the same inputs produce byte-identical lists.
func (m *Merger) Sync(partitionID string, existing []models.Resource, providerCatalog []models.ProviderItem) ([]models.Resource, error) {
	if len(providerCatalog) == 0 {
		// A credential or network failure upstream must not reach this point
		// disguised as "the carrier has nothing".
		return nil, ErrEmptyCatalog
	}

	// Index the existing PROVIDER rows by carrier identity. Customs are
	// deliberately left out, the sync never updates them (a custom duplicate
	// may share the identity of a provider row, the provider row wins the
	// match and the duplicate rides along untouched).
	providerRows := make(map[IdentityKey]models.Resource)
	for _, r := range existing {
		if r.Origin == models.OriginProvider && !r.Carrier.IsZero() {
			providerRows[carrierKey(r.Kind, r.Carrier)] = r
		}
	}

	matched := make(map[IdentityKey]bool)
	out := make([]models.Resource, 0, len(providerCatalog)+len(existing))

	for _, item := range providerCatalog {
		key := carrierKey(item.Kind, item.Carrier)
		current, ok := providerRows[key]
		if !ok {
			out = append(out, m.newProviderResource(item))
			continue
		}
		matched[key] = true

		// Provider-owned fields always refresh.
		current.Name = item.Name
		current.MaxWeight = item.MaxWeight
		current.Editable = item.Editable

		if item.Editable {
			// Keep the merchant's dimensions when they finished entering
			// them, otherwise fall back to whatever the carrier supplies.
			if !current.Dimensions.Complete() {
				current.Dimensions = item.Dimensions
			}
			// Services have no dimensions to complete.
			current.NeedsCompletion = item.Kind == models.KindBox && !current.Dimensions.Complete()
		} else {
			current.Dimensions = item.Dimensions
			current.NeedsCompletion = false
		}
		out = append(out, current)
	}

	// Second pass over existing: decide what survives the sync.
	for _, r := range existing {
		if r.Origin == models.OriginCustom {
			out = append(out, r)
			continue
		}
		if matched[carrierKey(r.Kind, r.Carrier)] {
			continue // already emitted above with refreshed fields
		}
		// Orphaned editable template the merchant invested in: keep it.
		if r.Editable && r.Dimensions.Complete() {
			out = append(out, r)
		}
		// Anything else is a stale provider entry, dropped.
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// newProviderResource builds the resource inserted for a catalog item seen
// for the first time. New items always arrive disabled, the merchant opts in.
func (m *Merger) newProviderResource(item models.ProviderItem) models.Resource {
	return models.Resource{
		ID:              m.NewID(),
		Kind:            item.Kind,
		Origin:          models.OriginProvider,
		Carrier:         item.Carrier,
		Name:            item.Name,
		MaxWeight:       item.MaxWeight,
		Dimensions:      item.Dimensions,
		Editable:        item.Editable,
		IsActive:        false,
		Scope:           models.ScopeAll,
		NeedsCompletion: item.Editable && item.Kind == models.KindBox && !item.Dimensions.Complete(),
	}
}
