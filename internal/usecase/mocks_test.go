package usecase_test

import (
	"context"

	"go-jobboard-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Mock Repositories

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) ListActive(ctx context.Context, page, size int) ([]domain.User, int64, error) {
	args := m.Called(ctx, page, size)
	return args.Get(0).([]domain.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepo) ListAll(ctx context.Context, page, size int) ([]domain.User, int64, error) {
	args := m.Called(ctx, page, size)
	return args.Get(0).([]domain.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepo) Upsert(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) SoftDelete(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockCandidateRepo struct {
	mock.Mock
}

func (m *MockCandidateRepo) FindByID(ctx context.Context, id string) (*domain.Candidate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func (m *MockCandidateRepo) FindByUserID(ctx context.Context, userID string) (*domain.Candidate, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func (m *MockCandidateRepo) ListActive(ctx context.Context, page, size int) ([]domain.Candidate, int64, error) {
	args := m.Called(ctx, page, size)
	return args.Get(0).([]domain.Candidate), args.Get(1).(int64), args.Error(2)
}

func (m *MockCandidateRepo) ListAll(ctx context.Context, page, size int) ([]domain.Candidate, int64, error) {
	args := m.Called(ctx, page, size)
	return args.Get(0).([]domain.Candidate), args.Get(1).(int64), args.Error(2)
}

func (m *MockCandidateRepo) Upsert(ctx context.Context, c *domain.Candidate) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCandidateRepo) SoftDelete(ctx context.Context, id string) (*domain.Candidate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func (m *MockCandidateRepo) SetStatus(ctx context.Context, id, status string) (*domain.Candidate, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

type MockCompanyRepo struct {
	mock.Mock
}

func (m *MockCompanyRepo) FindByID(ctx context.Context, id string) (*domain.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepo) FindByUserID(ctx context.Context, userID string) (*domain.Company, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepo) ListActive(ctx context.Context, page, size int) ([]domain.Company, int64, error) {
	args := m.Called(ctx, page, size)
	return args.Get(0).([]domain.Company), args.Get(1).(int64), args.Error(2)
}

func (m *MockCompanyRepo) ListAll(ctx context.Context, page, size int) ([]domain.Company, int64, error) {
	args := m.Called(ctx, page, size)
	return args.Get(0).([]domain.Company), args.Get(1).(int64), args.Error(2)
}

func (m *MockCompanyRepo) Upsert(ctx context.Context, c *domain.Company) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCompanyRepo) SoftDelete(ctx context.Context, id string) (*domain.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepo) SetStatus(ctx context.Context, id, status string) (*domain.Company, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) FindByID(ctx context.Context, id string) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobRepo) List(ctx context.Context, page, size int, companyID, status string) ([]domain.Job, int64, error) {
	args := m.Called(ctx, page, size, companyID, status)
	return args.Get(0).([]domain.Job), args.Get(1).(int64), args.Error(2)
}

func (m *MockJobRepo) ListAll(ctx context.Context, page, size int) ([]domain.Job, int64, error) {
	args := m.Called(ctx, page, size)
	return args.Get(0).([]domain.Job), args.Get(1).(int64), args.Error(2)
}

func (m *MockJobRepo) Upsert(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobRepo) SoftDelete(ctx context.Context, id string) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobRepo) CloseByCompanyID(ctx context.Context, companyID string) error {
	return m.Called(ctx, companyID).Error(0)
}

func (m *MockJobRepo) IncrementApplicantCount(ctx context.Context, jobID string) error {
	return m.Called(ctx, jobID).Error(0)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) FindByID(ctx context.Context, id string) (*domain.JobApplication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobApplication), args.Error(1)
}

func (m *MockApplicationRepo) ListByJobID(ctx context.Context, jobID string, page, size int) ([]domain.JobApplication, int64, error) {
	args := m.Called(ctx, jobID, page, size)
	return args.Get(0).([]domain.JobApplication), args.Get(1).(int64), args.Error(2)
}

func (m *MockApplicationRepo) ListByCandidateID(ctx context.Context, candidateID string, page, size int) ([]domain.JobApplication, int64, error) {
	args := m.Called(ctx, candidateID, page, size)
	return args.Get(0).([]domain.JobApplication), args.Get(1).(int64), args.Error(2)
}

func (m *MockApplicationRepo) ExistsActive(ctx context.Context, jobID, candidateID string) (bool, error) {
	args := m.Called(ctx, jobID, candidateID)
	return args.Bool(0), args.Error(1)
}

func (m *MockApplicationRepo) Insert(ctx context.Context, app *domain.JobApplication) error {
	return m.Called(ctx, app).Error(0)
}

func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, id, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockApplicationRepo) SoftDelete(ctx context.Context, id string) (*domain.JobApplication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobApplication), args.Error(1)
}

// passthroughTx runs the function directly, without a real transaction.
type passthroughTx struct{}

func (passthroughTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
