package domain

import (
	"context"
	"time"
)

// JobApplication status values. Any of the four may be set from any other;
// no stricter transition graph is enforced.
const (
	ApplicationStatusApplied     = "APPLIED"
	ApplicationStatusShortlisted = "SHORTLISTED"
	ApplicationStatusRejected    = "REJECTED"
	ApplicationStatusHired       = "HIRED"
)

type JobApplication struct {
	ID          string `json:"id"`
	JobID       string `json:"jobId"`
	CandidateID string `json:"candidateId"`
	// CandidateName and JobTitle are snapshots captured at apply time.
	CandidateName string     `json:"candidateName"`
	JobTitle      string     `json:"jobTitle"`
	Status        string     `json:"status"`
	AppliedAt     time.Time  `json:"appliedAt"`
	IsDeleted     bool       `json:"isDeleted"`
	DeletedAt     *time.Time `json:"deletedAt"`
}

type JobApplicationRepository interface {
	FindByID(ctx context.Context, id string) (*JobApplication, error)
	ListByJobID(ctx context.Context, jobID string, page, size int) ([]JobApplication, int64, error)
	ListByCandidateID(ctx context.Context, candidateID string, page, size int) ([]JobApplication, int64, error)
	// ExistsActive reports whether a non-deleted application exists for the
	// pair. Soft-deleted applications are ignored on purpose, so a candidate
	// may re-apply after deletion even though applicant_count keeps the old
	// increment.
	ExistsActive(ctx context.Context, jobID, candidateID string) (bool, error)
	Insert(ctx context.Context, app *JobApplication) error
	UpdateStatus(ctx context.Context, id, status string) error
	SoftDelete(ctx context.Context, id string) (*JobApplication, error)
}

type JobApplicationUsecase interface {
	GetApplication(ctx context.Context, id string) (*JobApplication, error)
	ListByJob(ctx context.Context, jobID string, page, size int) (Page[JobApplication], error)
	ListByCandidate(ctx context.Context, candidateID string, page, size int) (Page[JobApplication], error)
	Apply(ctx context.Context, app *JobApplication) (*JobApplication, error)
	UpdateStatus(ctx context.Context, id, status string) (*JobApplication, error)
	DeleteApplication(ctx context.Context, id string) (*JobApplication, error)
}
