package job

import (
	"context"

	"github.com/Abraxas-365/jobtrack/pkg/kernel"
)

// Repository handles job persistence. Every operation that touches an
// existing job is scoped to its owner.
type Repository interface {
	Create(ctx context.Context, j *Job) error
	GetByID(ctx context.Context, owner kernel.UserID, id kernel.JobID) (*Job, error)
	ListByOwner(ctx context.Context, owner kernel.UserID, opts kernel.PaginationOptions) (*kernel.Paginated[*Job], error)
	Update(ctx context.Context, j *Job) error
	Delete(ctx context.Context, owner kernel.UserID, id kernel.JobID) error

	// SearchSimilar returns the owner's jobs ordered by embedding distance
	// to the query vector. Jobs without an embedding are excluded.
	SearchSimilar(ctx context.Context, owner kernel.UserID, query kernel.JobEmbedding, limit int) ([]*Job, error)
}
