package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/logger"
)

type companyUsecase struct {
	companyRepo domain.CompanyRepository
	jobRepo     domain.JobRepository
	tx          domain.Transactor
}

func NewCompanyUsecase(
	companyRepo domain.CompanyRepository,
	jobRepo domain.JobRepository,
	tx domain.Transactor,
) domain.CompanyUsecase {
	return &companyUsecase{
		companyRepo: companyRepo,
		jobRepo:     jobRepo,
		tx:          tx,
	}
}

func (u *companyUsecase) GetCompany(ctx context.Context, id string) (*domain.Company, error) {
	company, err := u.companyRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Company not found")
		}
		return nil, err
	}
	return company, nil
}

func (u *companyUsecase) GetCompanyByUserID(ctx context.Context, userID string) (*domain.Company, error) {
	company, err := u.companyRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Company not found")
		}
		return nil, err
	}
	return company, nil
}

func (u *companyUsecase) ListCompanies(ctx context.Context, page, size int, includeDeleted bool) (domain.Page[domain.Company], error) {
	page, size = normalizePaging(page, size)

	var (
		companies []domain.Company
		total     int64
		err       error
	)
	if includeDeleted {
		companies, total, err = u.companyRepo.ListAll(ctx, page, size)
	} else {
		companies, total, err = u.companyRepo.ListActive(ctx, page, size)
	}
	if err != nil {
		return domain.Page[domain.Company]{}, err
	}
	return domain.NewPage(companies, page, size, total), nil
}

func (u *companyUsecase) UpsertCompany(ctx context.Context, c *domain.Company) error {
	return u.companyRepo.Upsert(ctx, c)
}

func (u *companyUsecase) DeleteCompany(ctx context.Context, id string) (*domain.Company, error) {
	deleted, err := u.companyRepo.SoftDelete(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Company not found")
		}
		return nil, err
	}
	return deleted, nil
}

// DisableCompany flips the company to DISABLED and closes its OPEN jobs in
// one transaction, so a crash never leaves a disabled company with jobs
// still accepting applications.
func (u *companyUsecase) DisableCompany(ctx context.Context, id string) (*domain.Company, error) {
	var company *domain.Company
	err := u.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		company, err = u.companyRepo.SetStatus(ctx, id, domain.StatusDisabled)
		if err != nil {
			return err
		}
		return u.jobRepo.CloseByCompanyID(ctx, id)
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Company not found")
		}
		return nil, err
	}
	logger.Log.Info("company disabled, open jobs closed", "companyId", id)
	company.Status = domain.StatusDisabled
	return company, nil
}

// EnableCompany re-activates the company. Jobs closed by a previous disable
// stay CLOSED; reopening them is an explicit per-job decision.
func (u *companyUsecase) EnableCompany(ctx context.Context, id string) (*domain.Company, error) {
	company, err := u.companyRepo.SetStatus(ctx, id, domain.StatusActive)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Company not found")
		}
		return nil, err
	}
	company.Status = domain.StatusActive
	return company, nil
}
