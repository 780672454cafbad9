// Package jobsrv implements owner-scoped job tracking with semantic search
// over job descriptions.
package jobsrv

import (
	"context"
	"strings"

	"github.com/Abraxas-365/jobtrack/internal/ai/embeddings"
	"github.com/Abraxas-365/jobtrack/pkg/kernel"
	"github.com/Abraxas-365/jobtrack/pkg/logx"
	"github.com/Abraxas-365/jobtrack/tracking/job"
)

// Service handles job operations for authenticated users.
type Service struct {
	repo      job.Repository
	generator embeddings.Generator
}

// NewService creates the job service. generator may be nil, which disables
// semantic search but leaves CRUD untouched.
func NewService(repo job.Repository, generator embeddings.Generator) *Service {
	return &Service{
		repo:      repo,
		generator: generator,
	}
}

// Create tracks a new job for the owner.
func (s *Service) Create(ctx context.Context, owner kernel.UserID, req job.CreateJobRequest) (*job.Job, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" ||
		strings.TrimSpace(req.Company) == "" || strings.TrimSpace(req.Location) == "" {
		return nil, job.ErrMissingFields("title", "description", "company", "location")
	}

	j := job.NewJob(
		kernel.JobTitle(req.Title),
		kernel.JobDescription(req.Description),
		kernel.CompanyName(req.Company),
		kernel.JobLocation(req.Location),
		owner,
	)
	j.Embedding = s.embed(ctx, req.Description)

	if err := s.repo.Create(ctx, j); err != nil {
		return nil, err
	}

	return j, nil
}

// Get returns one of the owner's jobs.
func (s *Service) Get(ctx context.Context, owner kernel.UserID, id kernel.JobID) (*job.Job, error) {
	return s.repo.GetByID(ctx, owner, id)
}

// List returns a page of the owner's jobs.
func (s *Service) List(ctx context.Context, owner kernel.UserID, opts kernel.PaginationOptions) (*kernel.Paginated[*job.Job], error) {
	return s.repo.ListByOwner(ctx, owner, opts.Normalize())
}

// Update applies a partial update to one of the owner's jobs.
func (s *Service) Update(ctx context.Context, owner kernel.UserID, id kernel.JobID, req job.UpdateJobRequest) (*job.Job, error) {
	j, err := s.repo.GetByID(ctx, owner, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		j.Title = kernel.JobTitle(*req.Title)
	}
	if req.Description != nil {
		j.Description = kernel.JobDescription(*req.Description)
		// Keep the search vector in sync with the text it indexes.
		j.Embedding = s.embed(ctx, *req.Description)
	}
	if req.Company != nil {
		j.Company = kernel.CompanyName(*req.Company)
	}
	if req.Location != nil {
		j.Location = kernel.JobLocation(*req.Location)
	}
	if req.Status != nil {
		status := job.Status(*req.Status)
		if !status.Valid() {
			return nil, job.ErrInvalidStatus(*req.Status)
		}
		j.Status = status
	}
	if req.ApplicationStatus != nil {
		status := job.ApplicationStatus(*req.ApplicationStatus)
		if !status.Valid() {
			return nil, job.ErrInvalidStatus(*req.ApplicationStatus)
		}
		j.ApplicationStatus = status
	}

	if err := s.repo.Update(ctx, j); err != nil {
		return nil, err
	}

	return j, nil
}

// Delete removes one of the owner's jobs.
func (s *Service) Delete(ctx context.Context, owner kernel.UserID, id kernel.JobID) error {
	return s.repo.Delete(ctx, owner, id)
}

// SearchSimilar finds the owner's jobs whose descriptions are semantically
// closest to the query.
func (s *Service) SearchSimilar(ctx context.Context, owner kernel.UserID, query string, limit int) ([]*job.Job, error) {
	if strings.TrimSpace(query) == "" {
		return nil, job.ErrEmptySearch()
	}
	if s.generator == nil {
		return nil, job.ErrNoEmbeddings()
	}
	if limit <= 0 || limit > 50 {
		limit = 10
	}

	vector, err := s.generator.Generate(ctx, query)
	if err != nil {
		return nil, job.ErrSearchFailed(err)
	}

	return s.repo.SearchSimilar(ctx, owner, vector, limit)
}

// embed generates a description embedding, degrading to nil when the
// generator is absent or failing. Writes never fail because of embeddings.
func (s *Service) embed(ctx context.Context, description string) kernel.JobEmbedding {
	if s.generator == nil {
		return nil
	}

	vector, err := s.generator.Generate(ctx, description)
	if err != nil {
		logx.Warnf("embedding generation failed, job will be excluded from semantic search: %v", err)
		return nil
	}
	return vector
}
