package domain

import (
	"context"
	"time"
)

type Company struct {
	ID                string     `json:"id"`
	UserID            *string    `json:"userId"`
	Name              string     `json:"name"`
	LogoURL           *string    `json:"logoUrl"`
	Details           *string    `json:"details"`
	CorporateWebsite  *string    `json:"corporateWebsite"`
	HRContactName     *string    `json:"hrContactName"`
	HRContactEmail    *string    `json:"hrContactEmail"`
	LegalContactName  *string    `json:"legalContactName"`
	LegalContactEmail *string    `json:"legalContactEmail"`
	Status            string     `json:"status"`
	IsDeleted         bool       `json:"isDeleted"`
	DeletedAt         *time.Time `json:"deletedAt"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

type CompanyRepository interface {
	FindByID(ctx context.Context, id string) (*Company, error)
	FindByUserID(ctx context.Context, userID string) (*Company, error)
	ListActive(ctx context.Context, page, size int) ([]Company, int64, error)
	ListAll(ctx context.Context, page, size int) ([]Company, int64, error)
	Upsert(ctx context.Context, c *Company) error
	SoftDelete(ctx context.Context, id string) (*Company, error)
	SetStatus(ctx context.Context, id, status string) (*Company, error)
}

type CompanyUsecase interface {
	GetCompany(ctx context.Context, id string) (*Company, error)
	GetCompanyByUserID(ctx context.Context, userID string) (*Company, error)
	ListCompanies(ctx context.Context, page, size int, includeDeleted bool) (Page[Company], error)
	UpsertCompany(ctx context.Context, c *Company) error
	DeleteCompany(ctx context.Context, id string) (*Company, error)
	// DisableCompany closes every OPEN job of the company in the same
	// transaction that flips the status.
	DisableCompany(ctx context.Context, id string) (*Company, error)
	// EnableCompany re-activates the company only; closed jobs stay closed.
	EnableCompany(ctx context.Context, id string) (*Company, error)
}
