package job

import (
	"time"

	"github.com/google/uuid"

	"github.com/Abraxas-365/jobtrack/pkg/kernel"
)

// Status is the lifecycle state of a tracked job posting.
type Status string

const (
	StatusOpen      Status = "Open"
	StatusApplied   Status = "Applied"
	StatusInterview Status = "Interview"
	StatusRejected  Status = "Rejected"
	StatusHired     Status = "Hired"
)

// ApplicationStatus tracks the user's own application progress, independent
// of the posting's state.
type ApplicationStatus string

const (
	ApplicationNotApplied         ApplicationStatus = "Not Applied"
	ApplicationApplied            ApplicationStatus = "Applied"
	ApplicationInterviewScheduled ApplicationStatus = "Interview Scheduled"
	ApplicationOfferReceived      ApplicationStatus = "Offer Received"
	ApplicationRejected           ApplicationStatus = "Rejected"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusOpen, StatusApplied, StatusInterview, StatusRejected, StatusHired:
		return true
	}
	return false
}

// Valid reports whether s is a known application status.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationNotApplied, ApplicationApplied, ApplicationInterviewScheduled,
		ApplicationOfferReceived, ApplicationRejected:
		return true
	}
	return false
}

// Job is a tracked job posting. Every job belongs to exactly one user; all
// reads and writes are scoped to the owner.
type Job struct {
	ID                kernel.JobID
	Title             kernel.JobTitle
	Description       kernel.JobDescription
	Company           kernel.CompanyName
	Location          kernel.JobLocation
	CreatedBy         kernel.UserID
	Status            Status
	ApplicationStatus ApplicationStatus

	// Embedding is the description vector for similarity search. Nil when
	// embedding generation was unavailable at write time.
	Embedding kernel.JobEmbedding

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewJob creates a job with defaults matching a freshly tracked posting.
func NewJob(title kernel.JobTitle, description kernel.JobDescription, company kernel.CompanyName, location kernel.JobLocation, createdBy kernel.UserID) *Job {
	now := time.Now()
	return &Job{
		ID:                kernel.NewJobID(uuid.New().String()),
		Title:             title,
		Description:       description,
		Company:           company,
		Location:          location,
		CreatedBy:         createdBy,
		Status:            StatusOpen,
		ApplicationStatus: ApplicationNotApplied,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}
