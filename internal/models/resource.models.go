package models

/*
Core value types for the catalog service.
A Resource is one packaging box or one carrier service living inside ONE warehouse
(we call warehouses "partitions" here, every warehouse keeps its own copy of the
catalog). The same types travel through the merge engine, the stores and the
Kafka events, so keep them plain data with no behavior beyond small helpers.
*/

// ResourceKind tells which of the two catalogs a resource belongs to.
type ResourceKind string

const (
	KindBox     ResourceKind = "BOX"
	KindService ResourceKind = "SERVICE"
)

// Origin tells who owns the resource data.
// PROVIDER resources come from a carrier catalog sync and the carrier keeps
// refreshing their canonical fields. CUSTOM resources are user-created (or
// duplicated), the carrier never touches them again.
type Origin string

const (
	OriginProvider Origin = "PROVIDER"
	OriginCustom   Origin = "CUSTOM"
)

// PartitionScope marks whether a custom resource was created against one
// warehouse only or propagated to every warehouse.
type PartitionScope string

const (
	ScopeAll      PartitionScope = "ALL"
	ScopeSpecific PartitionScope = "SPECIFIC"
)

// CarrierIdentity is how a carrier names a catalog entry.
// For boxes SubClass is the mail class (e.g. "PRIORITY"), for services it is
// the service code (e.g. "usps_priority_express").
type CarrierIdentity struct {
	CarrierCode string
	SubClass    string
}

// IsZero reports whether the resource has no carrier identity at all
// (a fully user-created custom box has none).
func (c CarrierIdentity) IsZero() bool {
	return c.CarrierCode == "" && c.SubClass == ""
}

// Dimensions are outer length/width/height. Unit handling lives in the UI
// layer, the engine only cares whether they are filled in.
type Dimensions struct {
	Length float64
	Width  float64
	Height float64
}

// Complete reports whether all three dimensions were actually set.
// Carriers ship some "variable" box templates with zero dimensions and expect
// the merchant to fill them in before the box can be used.
func (d Dimensions) Complete() bool {
	return d.Length > 0 && d.Width > 0 && d.Height > 0
}

// Resource is one box or one service inside one partition.
type Resource struct {
	ID     string // partition-local unique id (uuid)
	Kind   ResourceKind
	Origin Origin

	// Carrier identity, set for PROVIDER resources and for customs that were
	// duplicated off a carrier entry (kept for display/filtering).
	Carrier CarrierIdentity

	// Provider-owned fields. The sync refreshes these on every run for
	// PROVIDER resources and never touches them on CUSTOM ones.
	Name      string
	MaxWeight float64

	// User-editable fields. The sync must never overwrite these once set.
	Dimensions Dimensions
	TareWeight float64
	IsActive   bool

	// Editable means the carrier declared the dimensions user-settable
	// (variable box templates). Only meaningful on PROVIDER resources.
	Editable bool

	// Scope of a CUSTOM resource. ScopePartitionID is filled when
	// Scope == ScopeSpecific. PROVIDER resources are conceptually ScopeAll.
	Scope            PartitionScope
	ScopePartitionID string

	// DuplicateGroupID links one sibling copy per partition. Set only when a
	// duplication was done from the "all warehouses" view, and never changed
	// afterwards.
	DuplicateGroupID string

	// NeedsCompletion blocks activation: the carrier says the entry is
	// editable but the merchant has not supplied the required dimensions yet.
	NeedsCompletion bool
}

// ProviderItem is one entry of a freshly fetched carrier catalog, before it
// is merged into a partition's resource list.
type ProviderItem struct {
	Kind       ResourceKind
	Carrier    CarrierIdentity
	Name       string
	Dimensions Dimensions
	MaxWeight  float64
	Editable   bool
}

// PartitionState is one partition's view of a resource, used by the
// aggregate ("all warehouses") screen.
type PartitionState struct {
	PartitionID string
	IsActive    bool
}

// PartitionWrite is one pending write the engine computed. The caller
// persists it through the PartitionStore. Resources is the FULL new list for
// that partition and kind, the store replaces the old list wholesale.
type PartitionWrite struct {
	PartitionID string
	Kind        ResourceKind
	Resources   []Resource
}

// AggregateStatus summarizes a resource's active state across partitions.
type AggregateStatus string

const (
	AllEnabled     AggregateStatus = "ALL_ENABLED"
	AllDisabled    AggregateStatus = "ALL_DISABLED"
	PartialEnabled AggregateStatus = "PARTIAL_ENABLED"
)

// AggregateState carries the status plus the counts behind it, so the UI can
// render "enabled in 2 of 3 warehouses".
type AggregateState struct {
	Status       AggregateStatus
	EnabledCount int
	Total        int
}
