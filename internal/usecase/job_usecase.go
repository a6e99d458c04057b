package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type jobUsecase struct {
	jobRepo     domain.JobRepository
	companyRepo domain.CompanyRepository
}

func NewJobUsecase(jobRepo domain.JobRepository, companyRepo domain.CompanyRepository) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:     jobRepo,
		companyRepo: companyRepo,
	}
}

func (u *jobUsecase) GetJob(ctx context.Context, id string) (*domain.Job, error) {
	job, err := u.jobRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, err
	}
	return job, nil
}

func (u *jobUsecase) ListJobs(ctx context.Context, page, size int, companyID, status string) (domain.Page[domain.Job], error) {
	page, size = normalizePaging(page, size)
	jobs, total, err := u.jobRepo.List(ctx, page, size, companyID, status)
	if err != nil {
		return domain.Page[domain.Job]{}, err
	}
	return domain.NewPage(jobs, page, size, total), nil
}

func (u *jobUsecase) ListAllJobs(ctx context.Context, page, size int) (domain.Page[domain.Job], error) {
	page, size = normalizePaging(page, size)
	jobs, total, err := u.jobRepo.ListAll(ctx, page, size)
	if err != nil {
		return domain.Page[domain.Job]{}, err
	}
	return domain.NewPage(jobs, page, size, total), nil
}

// CreateJob validates the posting company before writing: the company must
// exist, not be soft-deleted, and be ACTIVE. The company name is snapshotted
// onto the job at this point.
func (u *jobUsecase) CreateJob(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	company, err := u.companyRepo.FindByID(ctx, job.CompanyID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.RefIntegrity("Company does not exist")
		}
		return nil, err
	}
	if company.Status != domain.StatusActive {
		return nil, apperror.StateConflict("Cannot create job for a disabled company")
	}

	job.CompanyName = company.Name
	if job.Status == "" {
		job.Status = domain.JobStatusOpen
	}
	if job.Status != domain.JobStatusOpen && job.Status != domain.JobStatusClosed {
		return nil, apperror.Validation("status must be OPEN or CLOSED")
	}

	if err := u.jobRepo.Upsert(ctx, job); err != nil {
		return nil, err
	}
	return u.GetJob(ctx, job.ID)
}

func (u *jobUsecase) DeleteJob(ctx context.Context, id string) (*domain.Job, error) {
	deleted, err := u.jobRepo.SoftDelete(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, err
	}
	return deleted, nil
}

func (u *jobUsecase) CloseJobsByCompany(ctx context.Context, companyID string) error {
	return u.jobRepo.CloseByCompanyID(ctx, companyID)
}
