package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/logger"
)

type applicationUsecase struct {
	applicationRepo domain.JobApplicationRepository
	jobRepo         domain.JobRepository
	candidateRepo   domain.CandidateRepository
	tx              domain.Transactor
}

func NewJobApplicationUsecase(
	applicationRepo domain.JobApplicationRepository,
	jobRepo domain.JobRepository,
	candidateRepo domain.CandidateRepository,
	tx domain.Transactor,
) domain.JobApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		candidateRepo:   candidateRepo,
		tx:              tx,
	}
}

func (u *applicationUsecase) GetApplication(ctx context.Context, id string) (*domain.JobApplication, error) {
	app, err := u.applicationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job application not found")
		}
		return nil, err
	}
	return app, nil
}

func (u *applicationUsecase) ListByJob(ctx context.Context, jobID string, page, size int) (domain.Page[domain.JobApplication], error) {
	page, size = normalizePaging(page, size)
	apps, total, err := u.applicationRepo.ListByJobID(ctx, jobID, page, size)
	if err != nil {
		return domain.Page[domain.JobApplication]{}, err
	}
	return domain.NewPage(apps, page, size, total), nil
}

func (u *applicationUsecase) ListByCandidate(ctx context.Context, candidateID string, page, size int) (domain.Page[domain.JobApplication], error) {
	page, size = normalizePaging(page, size)
	apps, total, err := u.applicationRepo.ListByCandidateID(ctx, candidateID, page, size)
	if err != nil {
		return domain.Page[domain.JobApplication]{}, err
	}
	return domain.NewPage(apps, page, size, total), nil
}

// Apply runs the whole application rule chain inside one transaction:
// the candidate must exist and be ACTIVE, the job must exist and be OPEN,
// and the (job, candidate) pair must not already hold a live application.
// The insert and the applicant_count increment commit together, so the
// counter can never drift from the stored applications. A concurrent
// duplicate slips past the existence check at most once and is then caught
// by the unique index inside Insert.
func (u *applicationUsecase) Apply(ctx context.Context, app *domain.JobApplication) (*domain.JobApplication, error) {
	err := u.tx.WithinTx(ctx, func(ctx context.Context) error {
		candidate, err := u.candidateRepo.FindByID(ctx, app.CandidateID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return apperror.RefIntegrity("Candidate does not exist")
			}
			return err
		}
		if candidate.Status != domain.StatusActive {
			return apperror.StateConflict("Candidate is disabled")
		}

		job, err := u.jobRepo.FindByID(ctx, app.JobID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return apperror.RefIntegrity("Job does not exist")
			}
			return err
		}
		if job.Status != domain.JobStatusOpen {
			return apperror.StateConflict("Job is not open for applications")
		}

		exists, err := u.applicationRepo.ExistsActive(ctx, app.JobID, app.CandidateID)
		if err != nil {
			return err
		}
		if exists {
			return apperror.Duplicate("Candidate has already applied to this job")
		}

		app.CandidateName = candidate.Name
		app.JobTitle = job.Title
		app.Status = domain.ApplicationStatusApplied

		if err := u.applicationRepo.Insert(ctx, app); err != nil {
			return err
		}
		return u.jobRepo.IncrementApplicantCount(ctx, app.JobID)
	})
	if err != nil {
		return nil, err
	}

	logger.Log.Info("job application submitted", "jobId", app.JobID, "candidateId", app.CandidateID)
	return u.GetApplication(ctx, app.ID)
}

func (u *applicationUsecase) UpdateStatus(ctx context.Context, id, status string) (*domain.JobApplication, error) {
	switch status {
	case domain.ApplicationStatusApplied, domain.ApplicationStatusShortlisted,
		domain.ApplicationStatusRejected, domain.ApplicationStatusHired:
	default:
		return nil, apperror.Validation("status must be one of APPLIED, SHORTLISTED, REJECTED, HIRED")
	}

	if err := u.applicationRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job application not found")
		}
		return nil, err
	}
	return u.GetApplication(ctx, id)
}

// DeleteApplication soft-deletes the application. The job's applicant_count
// keeps its increment: the counter records how many applications were ever
// made, and a deleted pair may apply again.
func (u *applicationUsecase) DeleteApplication(ctx context.Context, id string) (*domain.JobApplication, error) {
	deleted, err := u.applicationRepo.SoftDelete(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job application not found")
		}
		return nil, err
	}
	return deleted, nil
}
