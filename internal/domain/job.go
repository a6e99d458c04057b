package domain

import (
	"context"
	"time"
)

// Job status values
const (
	JobStatusOpen   = "OPEN"
	JobStatusClosed = "CLOSED"
)

type Job struct {
	ID        string `json:"id"`
	CompanyID string `json:"companyId"`
	// CompanyName is a snapshot taken when the job is created; it is not
	// refreshed when the company later renames itself.
	CompanyName                    string     `json:"companyName"`
	Title                          string     `json:"title"`
	JobDescription                 *string    `json:"jobDescription"`
	RequiredProfessionalExperience *string    `json:"requiredProfessionalExperience"`
	RequiredEducationalExperience  *string    `json:"requiredEducationalExperience"`
	Status                         string     `json:"status"`
	ApplicantCount                 int        `json:"applicantCount"`
	IsDeleted                      bool       `json:"isDeleted"`
	DeletedAt                      *time.Time `json:"deletedAt"`
	CreatedAt                      time.Time  `json:"createdAt"`
	UpdatedAt                      time.Time  `json:"updatedAt"`
}

type JobRepository interface {
	FindByID(ctx context.Context, id string) (*Job, error)
	// List filters non-deleted jobs; companyID and status are optional.
	List(ctx context.Context, page, size int, companyID, status string) ([]Job, int64, error)
	ListAll(ctx context.Context, page, size int) ([]Job, int64, error)
	// Upsert inserts the job, or on an existing id updates its mutable fields
	// while keeping applicant_count and company_id untouched.
	Upsert(ctx context.Context, job *Job) error
	SoftDelete(ctx context.Context, id string) (*Job, error)
	// CloseByCompanyID bulk-transitions the company's OPEN jobs to CLOSED.
	// Idempotent: already-closed jobs are left alone.
	CloseByCompanyID(ctx context.Context, companyID string) error
	// IncrementApplicantCount is a single-statement atomic increment.
	IncrementApplicantCount(ctx context.Context, jobID string) error
}

type JobUsecase interface {
	GetJob(ctx context.Context, id string) (*Job, error)
	ListJobs(ctx context.Context, page, size int, companyID, status string) (Page[Job], error)
	ListAllJobs(ctx context.Context, page, size int) (Page[Job], error)
	CreateJob(ctx context.Context, job *Job) (*Job, error)
	DeleteJob(ctx context.Context, id string) (*Job, error)
	CloseJobsByCompany(ctx context.Context, companyID string) error
}
