package job

import "time"

// CreateJobRequest is the payload for tracking a new job.
type CreateJobRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Company     string `json:"company"`
	Location    string `json:"location"`
}

// UpdateJobRequest is a partial update; nil fields are left unchanged.
type UpdateJobRequest struct {
	Title             *string `json:"title"`
	Description       *string `json:"description"`
	Company           *string `json:"company"`
	Location          *string `json:"location"`
	Status            *string `json:"status"`
	ApplicationStatus *string `json:"applicationStatus"`
}

// JobResponse is the wire shape of a job.
type JobResponse struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	Company           string    `json:"company"`
	Location          string    `json:"location"`
	Status            string    `json:"status"`
	ApplicationStatus string    `json:"applicationStatus"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// ToResponse converts a job to its wire shape.
func ToResponse(j *Job) JobResponse {
	return JobResponse{
		ID:                j.ID.String(),
		Title:             string(j.Title),
		Description:       string(j.Description),
		Company:           string(j.Company),
		Location:          string(j.Location),
		Status:            string(j.Status),
		ApplicationStatus: string(j.ApplicationStatus),
		CreatedAt:         j.CreatedAt,
		UpdatedAt:         j.UpdatedAt,
	}
}

// ToResponseList converts a slice of jobs to wire shapes.
func ToResponseList(jobs []*Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, ToResponse(j))
	}
	return out
}
