package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type candidateUsecase struct {
	candidateRepo domain.CandidateRepository
}

func NewCandidateUsecase(candidateRepo domain.CandidateRepository) domain.CandidateUsecase {
	return &candidateUsecase{candidateRepo: candidateRepo}
}

func (u *candidateUsecase) GetCandidate(ctx context.Context, id string) (*domain.Candidate, error) {
	candidate, err := u.candidateRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Candidate not found")
		}
		return nil, err
	}
	return candidate, nil
}

func (u *candidateUsecase) GetCandidateByUserID(ctx context.Context, userID string) (*domain.Candidate, error) {
	candidate, err := u.candidateRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Candidate not found")
		}
		return nil, err
	}
	return candidate, nil
}

func (u *candidateUsecase) ListCandidates(ctx context.Context, page, size int, includeDeleted bool) (domain.Page[domain.Candidate], error) {
	page, size = normalizePaging(page, size)

	var (
		candidates []domain.Candidate
		total      int64
		err        error
	)
	if includeDeleted {
		candidates, total, err = u.candidateRepo.ListAll(ctx, page, size)
	} else {
		candidates, total, err = u.candidateRepo.ListActive(ctx, page, size)
	}
	if err != nil {
		return domain.Page[domain.Candidate]{}, err
	}
	return domain.NewPage(candidates, page, size, total), nil
}

func (u *candidateUsecase) UpsertCandidate(ctx context.Context, c *domain.Candidate) error {
	return u.candidateRepo.Upsert(ctx, c)
}

func (u *candidateUsecase) DeleteCandidate(ctx context.Context, id string) (*domain.Candidate, error) {
	deleted, err := u.candidateRepo.SoftDelete(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Candidate not found")
		}
		return nil, err
	}
	return deleted, nil
}

func (u *candidateUsecase) DisableCandidate(ctx context.Context, id string) (*domain.Candidate, error) {
	return u.setStatus(ctx, id, domain.StatusDisabled)
}

func (u *candidateUsecase) EnableCandidate(ctx context.Context, id string) (*domain.Candidate, error) {
	return u.setStatus(ctx, id, domain.StatusActive)
}

func (u *candidateUsecase) setStatus(ctx context.Context, id, status string) (*domain.Candidate, error) {
	candidate, err := u.candidateRepo.SetStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Candidate not found")
		}
		return nil, err
	}
	candidate.Status = status
	return candidate, nil
}
