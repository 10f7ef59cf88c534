// service/catalog.service.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/Tanmoy095/LogiSynapse/services/catalog-service/internal/carrier"
	"github.com/Tanmoy095/LogiSynapse/services/catalog-service/internal/catalog"
	"github.com/Tanmoy095/LogiSynapse/services/catalog-service/internal/models"
	"github.com/Tanmoy095/LogiSynapse/services/catalog-service/store"
	"github.com/google/uuid"
)

// AlertQueueName is the RabbitMQ queue the communications service watches
// for catalog alert jobs.
const AlertQueueName = "catalog_alerts"

// Publisher sends catalog events to Kafka (or a test fake).
type Publisher interface {
	Publish(ctx context.Context, key string, value interface{}) error
}

// AlertQueue sends merchant-facing alert jobs to RabbitMQ (or a test fake).
type AlertQueue interface {
	Publish(ctx context.Context, queueName string, body []byte) error
}

// CatalogService glues the pure reconciliation engine to the outside world:
// it reads partition snapshots from the store, runs the engine, persists the
// computed write batches and emits events. The engine itself does no I/O.
type CatalogService struct {
	store    store.PartitionStore
	provider carrier.CatalogProvider
	producer Publisher  // may be nil in tests / local runs
	alerts   AlertQueue // may be nil too

	merger     *catalog.Merger
	duplicator *catalog.DuplicateManager
	toggler    *catalog.ToggleCoordinator
	deleter    *catalog.DeletionCoordinator

	// newID mints ids for user-created customs, overridable in tests.
	newID func() string
}

func NewCatalogService(st store.PartitionStore, provider carrier.CatalogProvider, producer Publisher, alerts AlertQueue) *CatalogService {
	return &CatalogService{
		store:      st,
		provider:   provider,
		producer:   producer,
		alerts:     alerts,
		merger:     catalog.NewMerger(),
		duplicator: catalog.NewDuplicateManager(),
		toggler:    catalog.NewToggleCoordinator(),
		deleter:    catalog.NewDeletionCoordinator(),
		newID:      uuid.NewString,
	}
}

// SyncCarrier fetches one carrier's catalog and merges it into EVERY
// partition. A credential failure is returned as-is before anything is
// written, it must never be treated as an empty catalog.
func (s *CatalogService) SyncCarrier(ctx context.Context, carrierName string, kind models.ResourceKind, credentials map[string]string) error {
	items, err := s.provider.FetchCatalog(ctx, carrierName, kind, credentials)
	if err != nil {
		return err
	}

	partitions, err := s.store.ListPartitions(ctx)
	if err != nil {
		return err
	}

	incomplete := 0
	var applied []string
	for _, pid := range partitions {
		existing, err := s.store.ListResources(ctx, pid, kind)
		if err != nil {
			return &PartitionWriteError{PartitionID: pid, Applied: applied, Err: err}
		}
		merged, err := s.merger.Sync(pid, existing, items)
		if err != nil {
			return err
		}
		if err := s.store.SaveResources(ctx, pid, kind, merged); err != nil {
			return &PartitionWriteError{PartitionID: pid, Applied: applied, Err: err}
		}
		applied = append(applied, pid)

		for _, r := range merged {
			if r.NeedsCompletion {
				incomplete++
			}
		}
	}

	s.publish(ctx, carrierName, map[string]interface{}{
		"event": "resource.merged",
		"payload": map[string]interface{}{
			"carrier":    carrierName,
			"kind":       kind,
			"partitions": partitions,
		},
	})

	// Nag the merchant about templates still missing dimensions. The
	// communications service turns this job into an email.
	if incomplete > 0 && s.alerts != nil {
		job := map[string]interface{}{
			"type": "catalog_completion_reminder",
			"payload": map[string]interface{}{
				"carrier": carrierName,
				"kind":    kind,
				"count":   incomplete,
			},
		}
		body, err := json.Marshal(job)
		if err == nil {
			if err := s.alerts.Publish(ctx, AlertQueueName, body); err != nil {
				log.Println("⚠️ Failed to queue completion reminder:", err)
			}
		}
	}
	return nil
}

// SyncAllCarriers runs SyncCarrier for each carrier in the batch. One
// carrier's credential failure never blocks the others, the per-carrier
// errors come back keyed by carrier name.
func (s *CatalogService) SyncAllCarriers(ctx context.Context, carrierNames []string, kind models.ResourceKind, credentials map[string]string) map[string]error {
	failures := make(map[string]error)
	for _, name := range carrierNames {
		if err := s.SyncCarrier(ctx, name, kind, credentials); err != nil {
			log.Printf("⚠️ Sync failed for carrier %s: %v", name, err)
			failures[name] = err
		}
	}
	return failures
}

// AggregatedResource is one row of the "all warehouses" view.
type AggregatedResource struct {
	Resource models.Resource
	States   []models.PartitionState
	Summary  models.AggregateState
}

// GetAggregate builds the deduplicated cross-warehouse resource list.
func (s *CatalogService) GetAggregate(ctx context.Context, kind models.ResourceKind) ([]AggregatedResource, error) {
	partitions, byPartition, err := s.loadSnapshots(ctx, kind)
	if err != nil {
		return nil, err
	}
	merged, states := catalog.BuildAggregate(partitions, byPartition)

	out := make([]AggregatedResource, len(merged))
	for i, r := range merged {
		out[i] = AggregatedResource{
			Resource: r,
			States:   states[r.ID],
			Summary:  catalog.Summarize(r, states[r.ID]),
		}
	}
	return out, nil
}

// ToggleResource applies one toggle click from the aggregate view.
func (s *CatalogService) ToggleResource(ctx context.Context, resourceID string, kind models.ResourceKind) error {
	partitions, byPartition, err := s.loadSnapshots(ctx, kind)
	if err != nil {
		return err
	}
	resource, ok := findResource(partitions, byPartition, resourceID)
	if !ok {
		return ErrResourceNotFound
	}

	writes, err := s.toggler.Toggle(resource, partitions, byPartition)
	if err != nil {
		return err
	}
	if err := s.applyWrites(ctx, writes); err != nil {
		return err
	}

	s.publish(ctx, resourceID, map[string]interface{}{
		"event": "resource.toggled",
		"payload": map[string]interface{}{
			"resourceId": resourceID,
			"kind":       kind,
			"partitions": writePartitions(writes),
		},
	})
	return nil
}

// DuplicateResource copies a resource, either as one linked group across all
// warehouses or as an independent copy inside a single warehouse.
func (s *CatalogService) DuplicateResource(ctx context.Context, resourceID string, kind models.ResourceKind, allPartitions bool, partitionID string) error {
	partitions, byPartition, err := s.loadSnapshots(ctx, kind)
	if err != nil {
		return err
	}
	source, ok := findResource(partitions, byPartition, resourceID)
	if !ok {
		return ErrResourceNotFound
	}

	var writes []models.PartitionWrite
	if allPartitions {
		copies, _ := s.duplicator.DuplicateAcrossAllPartitions(source, partitions)
		for _, pid := range partitions {
			writes = append(writes, models.PartitionWrite{
				PartitionID: pid,
				Kind:        kind,
				Resources:   append(byPartition[pid], copies[pid]),
			})
		}
	} else {
		dup := s.duplicator.DuplicateWithinPartition(source, partitionID)
		writes = append(writes, models.PartitionWrite{
			PartitionID: partitionID,
			Kind:        kind,
			Resources:   append(byPartition[partitionID], dup),
		})
	}

	if err := s.applyWrites(ctx, writes); err != nil {
		return err
	}
	s.publish(ctx, resourceID, map[string]interface{}{
		"event": "resource.duplicated",
		"payload": map[string]interface{}{
			"resourceId": resourceID,
			"kind":       kind,
			"partitions": writePartitions(writes),
		},
	})
	return nil
}

// DeleteResource removes a custom resource, group-wide when it is a linked
// duplicate. Provider catalog entries are rejected by the engine.
func (s *CatalogService) DeleteResource(ctx context.Context, resourceID string, kind models.ResourceKind) error {
	partitions, byPartition, err := s.loadSnapshots(ctx, kind)
	if err != nil {
		return err
	}
	resource, ok := findResource(partitions, byPartition, resourceID)
	if !ok {
		return ErrResourceNotFound
	}

	writes, err := s.deleter.Delete(resource, partitions, byPartition)
	if err != nil {
		return err
	}
	if err := s.applyWrites(ctx, writes); err != nil {
		return err
	}
	s.publish(ctx, resourceID, map[string]interface{}{
		"event": "resource.deleted",
		"payload": map[string]interface{}{
			"resourceId": resourceID,
			"kind":       kind,
			"partitions": writePartitions(writes),
		},
	})
	return nil
}

// CreateCustomResource adds a fully user-created resource to one warehouse.
func (s *CatalogService) CreateCustomResource(ctx context.Context, partitionID string, kind models.ResourceKind, name string, dims models.Dimensions, tareWeight float64) (models.Resource, error) {
	if name == "" {
		return models.Resource{}, errors.New("missing resource name")
	}

	resource := models.Resource{
		ID:               s.newID(),
		Kind:             kind,
		Origin:           models.OriginCustom,
		Name:             name,
		Dimensions:       dims,
		TareWeight:       tareWeight,
		IsActive:         false,
		Scope:            models.ScopeSpecific,
		ScopePartitionID: partitionID,
		NeedsCompletion:  kind == models.KindBox && !dims.Complete(),
	}

	existing, err := s.store.ListResources(ctx, partitionID, kind)
	if err != nil {
		return models.Resource{}, err
	}
	if err := s.store.SaveResources(ctx, partitionID, kind, append(existing, resource)); err != nil {
		return models.Resource{}, &PartitionWriteError{PartitionID: partitionID, Err: err}
	}

	s.publish(ctx, resource.ID, map[string]interface{}{
		"event": "resource.created",
		"payload": map[string]interface{}{
			"resourceId": resource.ID,
			"kind":       kind,
			"partitions": []string{partitionID},
		},
	})
	return resource, nil
}

// loadSnapshots reads every partition's list for one kind. The returned
// partition order is the store's stable order, the aggregate depends on it.
func (s *CatalogService) loadSnapshots(ctx context.Context, kind models.ResourceKind) ([]string, map[string][]models.Resource, error) {
	partitions, err := s.store.ListPartitions(ctx)
	if err != nil {
		return nil, nil, err
	}
	byPartition := make(map[string][]models.Resource, len(partitions))
	for _, pid := range partitions {
		list, err := s.store.ListResources(ctx, pid, kind)
		if err != nil {
			return nil, nil, err
		}
		byPartition[pid] = list
	}
	return partitions, byPartition, nil
}

// applyWrites persists a batch sequentially, best effort. The first failure
// stops the batch and reports which partitions were already written.
func (s *CatalogService) applyWrites(ctx context.Context, writes []models.PartitionWrite) error {
	var applied []string
	for _, w := range writes {
		if err := s.store.SaveResources(ctx, w.PartitionID, w.Kind, w.Resources); err != nil {
			return &PartitionWriteError{PartitionID: w.PartitionID, Applied: applied, Err: err}
		}
		applied = append(applied, w.PartitionID)
	}
	return nil
}

// publish sends an event, logging instead of failing the operation: the
// write already happened, a notification hiccup should not undo it.
func (s *CatalogService) publish(ctx context.Context, key string, event map[string]interface{}) {
	if s.producer == nil {
		return
	}
	if err := s.producer.Publish(ctx, key, event); err != nil {
		log.Println("⚠️ Failed to publish event:", err)
	}
}

func findResource(partitions []string, byPartition map[string][]models.Resource, resourceID string) (models.Resource, bool) {
	for _, pid := range partitions {
		for _, r := range byPartition[pid] {
			if r.ID == resourceID {
				return r, true
			}
		}
	}
	return models.Resource{}, false
}

func writePartitions(writes []models.PartitionWrite) []string {
	out := make([]string, len(writes))
	for i, w := range writes {
		out[i] = w.PartitionID
	}
	return out
}
