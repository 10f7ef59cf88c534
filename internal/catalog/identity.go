package catalog

import (
	"github.com/Tanmoy095/LogiSynapse/services/catalog-service/internal/models"
)

// IdentityKey is the matching key used by every operation in this package.
// Two resources with the same key are "the same resource" across partitions.
type IdentityKey string

// KeyOf computes the identity key of a resource. This is the ONLY matching
// rule in the engine, nothing else is allowed to invent its own comparison.
//
// Precedence:
//  1. Grouped duplicates match by their group, one sibling per partition.
//  2. Carrier-derived resources that live in every partition match by what
//     the carrier calls them (kind + carrier code + sub class).
//  3. Everything else (a custom created for one warehouse, or an ungrouped
//     duplicate) is only ever equal to itself, so the id is the key.
func KeyOf(r models.Resource) IdentityKey {
	switch {
	case r.DuplicateGroupID != "":
		return IdentityKey("group|" + r.DuplicateGroupID)
	case !r.Carrier.IsZero() && !(r.Origin == models.OriginCustom && r.Scope == models.ScopeSpecific):
		return carrierKey(r.Kind, r.Carrier)
	default:
		return IdentityKey("id|" + r.ID)
	}
}

// carrierKey builds the identity key for a carrier catalog entry.
// The merge uses it directly to match provider items against existing rows.
func carrierKey(kind models.ResourceKind, c models.CarrierIdentity) IdentityKey {
	return IdentityKey(string(kind) + "|" + c.CarrierCode + "|" + c.SubClass)
}
