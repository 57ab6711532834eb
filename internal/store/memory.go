package store

import (
	"context"
	"sync"

	"github.com/edunsouza/meeting-workbook/internal/workbook"
)

// Memory is a map-backed Store used by tests and storage-free runs.
type Memory struct {
	mu        sync.RWMutex
	workbooks map[string]*workbook.Workbook
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{workbooks: make(map[string]*workbook.Workbook)}
}

func (m *Memory) Find(_ context.Context, weekKey string) (*workbook.Workbook, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	wb, ok := m.workbooks[weekKey]
	if !ok {
		return nil, ErrNotFound
	}
	return wb, nil
}

func (m *Memory) Create(_ context.Context, wb *workbook.Workbook) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.workbooks[wb.WeekKey]; exists {
		return ErrDuplicateKey
	}
	m.workbooks[wb.WeekKey] = wb
	return nil
}

func (m *Memory) Delete(_ context.Context, weekKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.workbooks, weekKey)
	return nil
}

func (m *Memory) PurgeOthers(_ context.Context, weekKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for key := range m.workbooks {
		if key != weekKey {
			delete(m.workbooks, key)
		}
	}
	return nil
}

// Len reports how many workbooks are currently stored.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.workbooks)
}
