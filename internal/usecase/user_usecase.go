package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type userUsecase struct {
	userRepo domain.UserRepository
}

func NewUserUsecase(userRepo domain.UserRepository) domain.UserUsecase {
	return &userUsecase{userRepo: userRepo}
}

func (u *userUsecase) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}
	return user, nil
}

func (u *userUsecase) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := u.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}
	return user, nil
}

func (u *userUsecase) ListUsers(ctx context.Context, page, size int, includeDeleted bool) (domain.Page[domain.User], error) {
	page, size = normalizePaging(page, size)

	var (
		users []domain.User
		total int64
		err   error
	)
	if includeDeleted {
		users, total, err = u.userRepo.ListAll(ctx, page, size)
	} else {
		users, total, err = u.userRepo.ListActive(ctx, page, size)
	}
	if err != nil {
		return domain.Page[domain.User]{}, err
	}
	return domain.NewPage(users, page, size, total), nil
}

func (u *userUsecase) UpsertUser(ctx context.Context, user *domain.User) error {
	switch user.Role {
	case domain.RoleAdmin, domain.RoleCandidate, domain.RoleCompany:
	default:
		return apperror.Validation("role must be one of ADMIN, CANDIDATE, COMPANY")
	}
	return u.userRepo.Upsert(ctx, user)
}

func (u *userUsecase) DeleteUser(ctx context.Context, id string) (*domain.User, error) {
	deleted, err := u.userRepo.SoftDelete(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}
	return deleted, nil
}

// normalizePaging applies the defaults shared by every listing endpoint:
// zero-based page numbers and a page size of 20.
func normalizePaging(page, size int) (int, int) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = 20
	}
	return page, size
}
