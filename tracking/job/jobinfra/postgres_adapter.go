package jobinfra

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pgvector/pgvector-go"

	"github.com/Abraxas-365/jobtrack/pkg/kernel"
	"github.com/Abraxas-365/jobtrack/tracking/job"
)

// PostgresJobRepository implements job.Repository using PostgreSQL with
// pgvector for description similarity search.
type PostgresJobRepository struct {
	db *sqlx.DB
}

// NewPostgresJobRepository creates a new PostgreSQL job repository.
func NewPostgresJobRepository(db *sqlx.DB) *PostgresJobRepository {
	return &PostgresJobRepository{
		db: db,
	}
}

type jobModel struct {
	ID                string           `db:"id"`
	Title             string           `db:"title"`
	Description       string           `db:"description"`
	Company           string           `db:"company"`
	Location          string           `db:"location"`
	CreatedBy         string           `db:"created_by"`
	Status            string           `db:"status"`
	ApplicationStatus string           `db:"application_status"`
	Embedding         *pgvector.Vector `db:"embedding"`
	CreatedAt         time.Time        `db:"created_at"`
	UpdatedAt         time.Time        `db:"updated_at"`
}

func (m *jobModel) toEntity() *job.Job {
	var embedding kernel.JobEmbedding
	if m.Embedding != nil {
		embedding = m.Embedding.Slice()
	}

	return &job.Job{
		ID:                kernel.JobID(m.ID),
		Title:             kernel.JobTitle(m.Title),
		Description:       kernel.JobDescription(m.Description),
		Company:           kernel.CompanyName(m.Company),
		Location:          kernel.JobLocation(m.Location),
		CreatedBy:         kernel.UserID(m.CreatedBy),
		Status:            job.Status(m.Status),
		ApplicationStatus: job.ApplicationStatus(m.ApplicationStatus),
		Embedding:         embedding,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func fromEntity(j *job.Job) *jobModel {
	var embedding *pgvector.Vector
	if len(j.Embedding) > 0 {
		v := pgvector.NewVector(j.Embedding)
		embedding = &v
	}

	return &jobModel{
		ID:                string(j.ID),
		Title:             string(j.Title),
		Description:       string(j.Description),
		Company:           string(j.Company),
		Location:          string(j.Location),
		CreatedBy:         string(j.CreatedBy),
		Status:            string(j.Status),
		ApplicationStatus: string(j.ApplicationStatus),
		Embedding:         embedding,
		CreatedAt:         j.CreatedAt,
		UpdatedAt:         j.UpdatedAt,
	}
}

// Create inserts a new job.
func (r *PostgresJobRepository) Create(ctx context.Context, j *job.Job) error {
	query := `
		INSERT INTO jobs (
			id, title, description, company, location,
			created_by, status, application_status, embedding,
			created_at, updated_at
		) VALUES (
			:id, :title, :description, :company, :location,
			:created_by, :status, :application_status, :embedding,
			:created_at, :updated_at
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, fromEntity(j))
	if err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}

	return nil
}

// GetByID retrieves one of the owner's jobs.
func (r *PostgresJobRepository) GetByID(ctx context.Context, owner kernel.UserID, id kernel.JobID) (*job.Job, error) {
	query := `
		SELECT id, title, description, company, location,
			created_by, status, application_status, embedding,
			created_at, updated_at
		FROM jobs
		WHERE id = $1 AND created_by = $2
	`

	var model jobModel
	err := r.db.GetContext(ctx, &model, query, string(id), string(owner))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, job.ErrNotFound()
		}
		return nil, fmt.Errorf("failed to get job by id: %w", err)
	}

	return model.toEntity(), nil
}

// ListByOwner returns a page of the owner's jobs, newest first.
func (r *PostgresJobRepository) ListByOwner(ctx context.Context, owner kernel.UserID, opts kernel.PaginationOptions) (*kernel.Paginated[*job.Job], error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM jobs WHERE created_by = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, string(owner)); err != nil {
		return nil, fmt.Errorf("failed to count jobs: %w", err)
	}

	query := `
		SELECT id, title, description, company, location,
			created_by, status, application_status, embedding,
			created_at, updated_at
		FROM jobs
		WHERE created_by = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	var models []jobModel
	offset := (opts.Page - 1) * opts.PageSize
	if err := r.db.SelectContext(ctx, &models, query, string(owner), opts.PageSize, offset); err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	jobs := make([]*job.Job, 0, len(models))
	for i := range models {
		jobs = append(jobs, models[i].toEntity())
	}

	return &kernel.Paginated[*job.Job]{
		Items: jobs,
		Page: kernel.Page{
			Number: opts.Page,
			Size:   opts.PageSize,
			Total:  total,
			Pages:  (total + opts.PageSize - 1) / opts.PageSize,
		},
		Empty: len(jobs) == 0,
	}, nil
}

// Update persists changes to an existing job, scoped to its owner.
func (r *PostgresJobRepository) Update(ctx context.Context, j *job.Job) error {
	j.UpdatedAt = time.Now()

	query := `
		UPDATE jobs SET
			title = :title,
			description = :description,
			company = :company,
			location = :location,
			status = :status,
			application_status = :application_status,
			embedding = :embedding,
			updated_at = :updated_at
		WHERE id = :id AND created_by = :created_by
	`

	result, err := r.db.NamedExecContext(ctx, query, fromEntity(j))
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return job.ErrNotFound()
	}

	return nil
}

// Delete removes one of the owner's jobs.
func (r *PostgresJobRepository) Delete(ctx context.Context, owner kernel.UserID, id kernel.JobID) error {
	query := `DELETE FROM jobs WHERE id = $1 AND created_by = $2`

	result, err := r.db.ExecContext(ctx, query, string(id), string(owner))
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return job.ErrNotFound()
	}

	return nil
}

// SearchSimilar orders the owner's embedded jobs by cosine distance to the
// query vector.
func (r *PostgresJobRepository) SearchSimilar(ctx context.Context, owner kernel.UserID, queryVec kernel.JobEmbedding, limit int) ([]*job.Job, error) {
	query := `
		SELECT id, title, description, company, location,
			created_by, status, application_status, embedding,
			created_at, updated_at
		FROM jobs
		WHERE created_by = $2 AND embedding IS NOT NULL
		ORDER BY embedding <=> $1
		LIMIT $3
	`

	var models []jobModel
	err := r.db.SelectContext(ctx, &models, query, pgvector.NewVector(queryVec), string(owner), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search jobs: %w", err)
	}

	jobs := make([]*job.Job, 0, len(models))
	for i := range models {
		jobs = append(jobs, models[i].toEntity())
	}

	return jobs, nil
}
