// Package storage defines stores for records issued by the dashboard.
package storage

import (
	"context"

	"cip-engine/internal/workorder"
)

// WorkOrderStore provides access to issued work orders.
type WorkOrderStore interface {
	// Insert adds a new work order. Returns ErrDuplicateKey if number or ref exists.
	Insert(ctx context.Context, wo *workorder.WorkOrder) error

	// GetByRef retrieves a work order by its base58 reference. Returns ErrNotFound if not exists.
	GetByRef(ctx context.Context, ref string) (*workorder.WorkOrder, error)

	// GetByTerminal retrieves all work orders for a terminal code, ordered by issued_at ASC.
	GetByTerminal(ctx context.Context, terminal string) ([]*workorder.WorkOrder, error)

	// List retrieves all work orders ordered by issued_at ASC, then number ASC.
	List(ctx context.Context) ([]*workorder.WorkOrder, error)
}
