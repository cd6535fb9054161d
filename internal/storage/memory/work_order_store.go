// Package memory provides in-memory store implementations.
package memory

import (
	"context"
	"sort"
	"sync"

	"cip-engine/internal/storage"
	"cip-engine/internal/workorder"
)

// WorkOrderStore is an in-memory implementation of storage.WorkOrderStore.
type WorkOrderStore struct {
	mu      sync.RWMutex
	data    map[string]*workorder.WorkOrder // keyed by ref
	numbers map[string]bool
}

// NewWorkOrderStore creates a new in-memory work order store.
func NewWorkOrderStore() *WorkOrderStore {
	return &WorkOrderStore{
		data:    make(map[string]*workorder.WorkOrder),
		numbers: make(map[string]bool),
	}
}

// Insert adds a new work order. Returns ErrDuplicateKey if number or ref exists.
func (s *WorkOrderStore) Insert(_ context.Context, wo *workorder.WorkOrder) error {
	if wo == nil || wo.Ref == "" || wo.Number == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[wo.Ref]; exists || s.numbers[wo.Number] {
		return storage.ErrDuplicateKey
	}

	// Store a copy to prevent external mutation
	woCopy := *wo
	s.data[wo.Ref] = &woCopy
	s.numbers[wo.Number] = true
	return nil
}

// GetByRef retrieves a work order by its reference. Returns ErrNotFound if not exists.
func (s *WorkOrderStore) GetByRef(_ context.Context, ref string) (*workorder.WorkOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wo, exists := s.data[ref]
	if !exists {
		return nil, storage.ErrNotFound
	}

	// Return a copy
	woCopy := *wo
	return &woCopy, nil
}

// GetByTerminal retrieves all work orders for a terminal code.
func (s *WorkOrderStore) GetByTerminal(_ context.Context, terminal string) ([]*workorder.WorkOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*workorder.WorkOrder
	for _, wo := range s.data {
		if wo.TerminalCode == terminal {
			woCopy := *wo
			result = append(result, &woCopy)
		}
	}

	sortWorkOrders(result)
	return result, nil
}

// List retrieves all work orders.
func (s *WorkOrderStore) List(_ context.Context) ([]*workorder.WorkOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*workorder.WorkOrder, 0, len(s.data))
	for _, wo := range s.data {
		woCopy := *wo
		result = append(result, &woCopy)
	}

	sortWorkOrders(result)
	return result, nil
}

// sortWorkOrders sorts by issued_at ASC, then number ASC.
func sortWorkOrders(orders []*workorder.WorkOrder) {
	sort.Slice(orders, func(i, j int) bool {
		if !orders[i].IssuedAt.Equal(orders[j].IssuedAt) {
			return orders[i].IssuedAt.Before(orders[j].IssuedAt)
		}
		return orders[i].Number < orders[j].Number
	})
}

// Verify interface compliance at compile time.
var _ storage.WorkOrderStore = (*WorkOrderStore)(nil)
