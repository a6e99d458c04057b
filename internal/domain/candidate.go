package domain

import (
	"context"
	"time"
)

type Candidate struct {
	ID             string     `json:"id"`
	UserID         *string    `json:"userId"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	Phone          *string    `json:"phone"`
	PhotoURL       *string    `json:"photoUrl"`
	PortfolioURL   *string    `json:"portfolioUrl"`
	GithubURL      *string    `json:"githubUrl"`
	LinkedinURL    *string    `json:"linkedinUrl"`
	CurrentCompany *string    `json:"currentCompany"`
	CurrentTitle   *string    `json:"currentTitle"`
	WorkingSince   *string    `json:"workingSince"`
	License        *string    `json:"license"`
	Patents        *string    `json:"patents"`
	Certifications *string    `json:"certifications"`
	Status         string     `json:"status"`
	IsDeleted      bool       `json:"isDeleted"`
	DeletedAt      *time.Time `json:"deletedAt"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

type CandidateRepository interface {
	FindByID(ctx context.Context, id string) (*Candidate, error)
	FindByUserID(ctx context.Context, userID string) (*Candidate, error)
	ListActive(ctx context.Context, page, size int) ([]Candidate, int64, error)
	ListAll(ctx context.Context, page, size int) ([]Candidate, int64, error)
	Upsert(ctx context.Context, c *Candidate) error
	SoftDelete(ctx context.Context, id string) (*Candidate, error)
	SetStatus(ctx context.Context, id, status string) (*Candidate, error)
}

type CandidateUsecase interface {
	GetCandidate(ctx context.Context, id string) (*Candidate, error)
	GetCandidateByUserID(ctx context.Context, userID string) (*Candidate, error)
	ListCandidates(ctx context.Context, page, size int, includeDeleted bool) (Page[Candidate], error)
	UpsertCandidate(ctx context.Context, c *Candidate) error
	DeleteCandidate(ctx context.Context, id string) (*Candidate, error)
	DisableCandidate(ctx context.Context, id string) (*Candidate, error)
	EnableCandidate(ctx context.Context, id string) (*Candidate, error)
}
