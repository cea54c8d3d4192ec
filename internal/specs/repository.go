package specs

import (
	"context"

	"github.com/specdriven/polaris/internal/domain"
)

// Repository supplies the spec pool to the routing engine.
type Repository interface {
	// Specs returns every spec from the underlying source. Implementations
	// re-read the source on each call; the engine decides when to refresh.
	Specs(ctx context.Context) ([]domain.Spec, error)
}

// Static is an in-memory Repository with a fixed spec list.
type Static struct {
	specs []domain.Spec
}

// NewStatic creates a Repository serving the given specs.
func NewStatic(specs ...domain.Spec) *Static {
	return &Static{specs: specs}
}

// Specs implements Repository.
func (s *Static) Specs(_ context.Context) ([]domain.Spec, error) {
	out := make([]domain.Spec, len(s.specs))
	copy(out, s.specs)
	return out, nil
}
