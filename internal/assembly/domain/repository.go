package assembly

import "context"

// ResultRepository stores completed assembly results. The pipeline never
// touches it; persistence is driven by the caller after a run finishes.
type ResultRepository interface {
	Save(ctx context.Context, result *Result) error
	FindByID(ctx context.Context, assemblyID string) (*Result, error)
	List(ctx context.Context, limit int) ([]*Result, error)
}
