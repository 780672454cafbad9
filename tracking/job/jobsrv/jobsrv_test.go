package jobsrv

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/Abraxas-365/jobtrack/pkg/errx"
	"github.com/Abraxas-365/jobtrack/pkg/kernel"
	"github.com/Abraxas-365/jobtrack/tracking/job"
)

// memoryRepo is an in-memory job.Repository for tests.
type memoryRepo struct {
	jobs map[kernel.JobID]*job.Job
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{jobs: make(map[kernel.JobID]*job.Job)}
}

func (r *memoryRepo) Create(ctx context.Context, j *job.Job) error {
	cp := *j
	r.jobs[j.ID] = &cp
	return nil
}

func (r *memoryRepo) GetByID(ctx context.Context, owner kernel.UserID, id kernel.JobID) (*job.Job, error) {
	j, ok := r.jobs[id]
	if !ok || j.CreatedBy != owner {
		return nil, job.ErrNotFound()
	}
	cp := *j
	return &cp, nil
}

func (r *memoryRepo) ListByOwner(ctx context.Context, owner kernel.UserID, opts kernel.PaginationOptions) (*kernel.Paginated[*job.Job], error) {
	var owned []*job.Job
	for _, j := range r.jobs {
		if j.CreatedBy == owner {
			cp := *j
			owned = append(owned, &cp)
		}
	}
	sort.Slice(owned, func(i, k int) bool { return owned[i].CreatedAt.After(owned[k].CreatedAt) })

	return &kernel.Paginated[*job.Job]{
		Items: owned,
		Page: kernel.Page{
			Number: opts.Page,
			Size:   opts.PageSize,
			Total:  len(owned),
			Pages:  1,
		},
		Empty: len(owned) == 0,
	}, nil
}

func (r *memoryRepo) Update(ctx context.Context, j *job.Job) error {
	existing, ok := r.jobs[j.ID]
	if !ok || existing.CreatedBy != j.CreatedBy {
		return job.ErrNotFound()
	}
	cp := *j
	r.jobs[j.ID] = &cp
	return nil
}

func (r *memoryRepo) Delete(ctx context.Context, owner kernel.UserID, id kernel.JobID) error {
	j, ok := r.jobs[id]
	if !ok || j.CreatedBy != owner {
		return job.ErrNotFound()
	}
	delete(r.jobs, id)
	return nil
}

func (r *memoryRepo) SearchSimilar(ctx context.Context, owner kernel.UserID, query kernel.JobEmbedding, limit int) ([]*job.Job, error) {
	var owned []*job.Job
	for _, j := range r.jobs {
		if j.CreatedBy == owner && len(j.Embedding) > 0 {
			cp := *j
			owned = append(owned, &cp)
		}
	}
	if len(owned) > limit {
		owned = owned[:limit]
	}
	return owned, nil
}

// fakeGenerator returns a fixed vector or an error.
type fakeGenerator struct {
	vector []float32
	err    error
}

func (f *fakeGenerator) Generate(ctx context.Context, text string) ([]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.vector, nil
}

func assertCode(t *testing.T, err error, code errx.Code) {
	t.Helper()
	e, ok := err.(*errx.Error)
	if !ok {
		t.Fatalf("expected *errx.Error with code %s, got %v", code, err)
	}
	if e.Code != code {
		t.Fatalf("error code = %s, want %s", e.Code, code)
	}
}

var validCreate = job.CreateJobRequest{
	Title:       "Backend Engineer",
	Description: "Go services and PostgreSQL",
	Company:     "Acme",
	Location:    "Remote",
}

func TestCreateSetsDefaults(t *testing.T) {
	svc := NewService(newMemoryRepo(), &fakeGenerator{vector: []float32{0.1, 0.2}})
	owner := kernel.NewUserID("owner-1")

	j, err := svc.Create(context.Background(), owner, validCreate)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if j.Status != job.StatusOpen {
		t.Errorf("status = %s, want Open", j.Status)
	}
	if j.ApplicationStatus != job.ApplicationNotApplied {
		t.Errorf("application status = %s, want Not Applied", j.ApplicationStatus)
	}
	if j.CreatedBy != owner {
		t.Errorf("created by = %s, want %s", j.CreatedBy, owner)
	}
	if len(j.Embedding) != 2 {
		t.Errorf("expected embedding to be generated, got %v", j.Embedding)
	}
}

func TestCreateValidatesFields(t *testing.T) {
	svc := NewService(newMemoryRepo(), nil)

	_, err := svc.Create(context.Background(), kernel.NewUserID("owner-1"), job.CreateJobRequest{Title: "only title"})
	assertCode(t, err, job.ErrMissingFieldsCode)
}

func TestCreateSurvivesEmbeddingFailure(t *testing.T) {
	svc := NewService(newMemoryRepo(), &fakeGenerator{err: errors.New("embeddings down")})

	j, err := svc.Create(context.Background(), kernel.NewUserID("owner-1"), validCreate)
	if err != nil {
		t.Fatalf("create should not fail when embeddings are down: %v", err)
	}
	if j.Embedding != nil {
		t.Errorf("expected nil embedding, got %v", j.Embedding)
	}
}

func TestUpdateIsOwnerScoped(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo, nil)
	owner := kernel.NewUserID("owner-1")

	j, err := svc.Create(context.Background(), owner, validCreate)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	title := "Stolen"
	_, err = svc.Update(context.Background(), kernel.NewUserID("intruder"), j.ID, job.UpdateJobRequest{Title: &title})
	assertCode(t, err, job.ErrNotFoundCode)
}

func TestUpdateRejectsUnknownStatus(t *testing.T) {
	svc := NewService(newMemoryRepo(), nil)
	owner := kernel.NewUserID("owner-1")

	j, err := svc.Create(context.Background(), owner, validCreate)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	bogus := "Ghosted"
	_, err = svc.Update(context.Background(), owner, j.ID, job.UpdateJobRequest{Status: &bogus})
	assertCode(t, err, job.ErrInvalidStatusCode)
}

func TestUpdateAppliesPartialChanges(t *testing.T) {
	svc := NewService(newMemoryRepo(), nil)
	owner := kernel.NewUserID("owner-1")

	j, err := svc.Create(context.Background(), owner, validCreate)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	status := string(job.StatusApplied)
	appStatus := string(job.ApplicationApplied)
	updated, err := svc.Update(context.Background(), owner, j.ID, job.UpdateJobRequest{
		Status:            &status,
		ApplicationStatus: &appStatus,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Status != job.StatusApplied || updated.ApplicationStatus != job.ApplicationApplied {
		t.Errorf("statuses not applied: %+v", updated)
	}
	if updated.Title != j.Title {
		t.Errorf("untouched field changed: %q", updated.Title)
	}
}

func TestUpdateDescriptionRefreshesEmbedding(t *testing.T) {
	gen := &fakeGenerator{vector: []float32{0.9}}
	svc := NewService(newMemoryRepo(), gen)
	owner := kernel.NewUserID("owner-1")

	j, err := svc.Create(context.Background(), owner, validCreate)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	gen.vector = []float32{0.1, 0.2, 0.3}
	desc := "Completely different role"
	updated, err := svc.Update(context.Background(), owner, j.ID, job.UpdateJobRequest{Description: &desc})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if len(updated.Embedding) != 3 {
		t.Errorf("embedding not refreshed: %v", updated.Embedding)
	}
}

func TestDeleteIsOwnerScoped(t *testing.T) {
	svc := NewService(newMemoryRepo(), nil)
	owner := kernel.NewUserID("owner-1")

	j, err := svc.Create(context.Background(), owner, validCreate)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	err = svc.Delete(context.Background(), kernel.NewUserID("intruder"), j.ID)
	assertCode(t, err, job.ErrNotFoundCode)

	if err := svc.Delete(context.Background(), owner, j.ID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
}

func TestSearchRequiresQuery(t *testing.T) {
	svc := NewService(newMemoryRepo(), &fakeGenerator{vector: []float32{0.1}})

	_, err := svc.SearchSimilar(context.Background(), kernel.NewUserID("owner-1"), "   ", 10)
	assertCode(t, err, job.ErrEmptySearchCode)
}

func TestSearchWithoutGenerator(t *testing.T) {
	svc := NewService(newMemoryRepo(), nil)

	_, err := svc.SearchSimilar(context.Background(), kernel.NewUserID("owner-1"), "golang", 10)
	assertCode(t, err, job.ErrNoEmbeddingsCode)
}

func TestSearchReturnsOwnerJobsOnly(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo, &fakeGenerator{vector: []float32{0.5}})
	owner := kernel.NewUserID("owner-1")
	other := kernel.NewUserID("owner-2")

	if _, err := svc.Create(context.Background(), owner, validCreate); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(context.Background(), other, validCreate); err != nil {
		t.Fatalf("create: %v", err)
	}

	results, err := svc.SearchSimilar(context.Background(), owner, "golang", 10)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	for _, j := range results {
		if j.CreatedBy != owner {
			t.Errorf("search leaked job owned by %s", j.CreatedBy)
		}
	}
}
