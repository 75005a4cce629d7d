package memory

import (
	"context"
	"encoding/json"
	"sync"

	assembly "arx-bim/internal/assembly/domain"
)

// ResultRepository is an in-memory repository for assembly results.
// Results are stored serialized so callers never share mutable state with
// the store.
type ResultRepository struct {
	mu    sync.RWMutex
	data  map[string][]byte
	order []string
}

// NewResultRepository constructs a repository.
func NewResultRepository() *ResultRepository {
	return &ResultRepository{data: make(map[string][]byte)}
}

// Save persists a result (overwrites existing).
func (r *ResultRepository) Save(ctx context.Context, result *assembly.Result) error {
	_ = ctx
	if result == nil {
		return assembly.ErrNilResult
	}
	if result.AssemblyID == "" {
		return assembly.ErrEmptyAssemblyID
	}
	encoded, err := json.Marshal(result)
	if err != nil {
		return err
	}

	r.mu.Lock()
	if _, exists := r.data[result.AssemblyID]; !exists {
		r.order = append(r.order, result.AssemblyID)
	}
	r.data[result.AssemblyID] = encoded
	r.mu.Unlock()
	return nil
}

// FindByID loads one result.
func (r *ResultRepository) FindByID(ctx context.Context, assemblyID string) (*assembly.Result, error) {
	_ = ctx
	if assemblyID == "" {
		return nil, assembly.ErrEmptyAssemblyID
	}

	r.mu.RLock()
	encoded, ok := r.data[assemblyID]
	r.mu.RUnlock()
	if !ok {
		return nil, assembly.ErrNotFound
	}

	var result assembly.Result
	if err := json.Unmarshal(encoded, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// List returns up to limit results, most recently saved first. A
// non-positive limit returns everything.
func (r *ResultRepository) List(ctx context.Context, limit int) ([]*assembly.Result, error) {
	_ = ctx

	r.mu.RLock()
	ids := append([]string(nil), r.order...)
	encoded := make(map[string][]byte, len(ids))
	for _, id := range ids {
		encoded[id] = r.data[id]
	}
	r.mu.RUnlock()

	for i, j := 0, len(ids)-1; i < j; i, j = i+1, j-1 {
		ids[i], ids[j] = ids[j], ids[i]
	}
	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}

	results := make([]*assembly.Result, 0, len(ids))
	for _, id := range ids {
		var result assembly.Result
		if err := json.Unmarshal(encoded[id], &result); err != nil {
			return nil, err
		}
		results = append(results, &result)
	}
	return results, nil
}
