package job

import (
	"net/http"

	"github.com/Abraxas-365/jobtrack/pkg/errx"
)

var jobErrors = errx.NewRegistry("JOB")

var (
	ErrNotFoundCode       = jobErrors.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Job not found")
	ErrMissingFieldsCode  = jobErrors.Register("MISSING_FIELDS", errx.TypeValidation, http.StatusBadRequest, "Required fields are missing")
	ErrInvalidStatusCode  = jobErrors.Register("INVALID_STATUS", errx.TypeValidation, http.StatusBadRequest, "Unknown job status")
	ErrEmptySearchCode    = jobErrors.Register("EMPTY_SEARCH", errx.TypeValidation, http.StatusBadRequest, "Search query is required")
	ErrSearchFailedCode   = jobErrors.Register("SEARCH_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Job search failed")
	ErrNoEmbeddingsCode   = jobErrors.Register("NO_EMBEDDINGS", errx.TypeBusiness, http.StatusBadRequest, "Semantic search is unavailable")
)

func ErrNotFound() *errx.Error {
	return jobErrors.New(ErrNotFoundCode)
}

func ErrMissingFields(fields ...string) *errx.Error {
	return jobErrors.New(ErrMissingFieldsCode).WithDetail("fields", fields)
}

func ErrInvalidStatus(status string) *errx.Error {
	return jobErrors.New(ErrInvalidStatusCode).WithDetail("status", status)
}

func ErrEmptySearch() *errx.Error {
	return jobErrors.New(ErrEmptySearchCode)
}

func ErrSearchFailed(cause error) *errx.Error {
	return jobErrors.NewWithCause(ErrSearchFailedCode, cause)
}

func ErrNoEmbeddings() *errx.Error {
	return jobErrors.New(ErrNoEmbeddingsCode)
}
