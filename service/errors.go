package service

import (
	"errors"
	"fmt"
)

var (
	// ErrResourceNotFound means the id the UI sent no longer exists in any
	// partition (someone else deleted it, or a sync dropped it).
	ErrResourceNotFound = errors.New("resource not found in any partition")
)

// PartitionWriteError reports a write batch that stopped partway. There is
// no cross-partition transaction, so writes already applied stay applied and
// the caller must tell the merchant which warehouses succeeded.
type PartitionWriteError struct {
	PartitionID string   // the partition whose write failed
	Applied     []string // partitions written successfully before the failure
	Err         error
}

func (e *PartitionWriteError) Error() string {
	return fmt.Sprintf("failed to write partition %s (already applied: %v): %v", e.PartitionID, e.Applied, e.Err)
}

func (e *PartitionWriteError) Unwrap() error {
	return e.Err
}
