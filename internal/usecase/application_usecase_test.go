package usecase_test

import (
	"context"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const (
	testJobID       = "5f7b9a34-1c2d-4e5f-8a9b-0c1d2e3f4a5b"
	testCandidateID = "9e8d7c6b-5a4f-4e3d-9c2b-1a0f9e8d7c6b"
	testCompanyID   = "1a2b3c4d-5e6f-4a8b-9c0d-1e2f3a4b5c6d"
	testAppID       = "7c6b5a4f-3e2d-4c1b-8a9f-0e1d2c3b4a5f"
)

func activeCandidate() *domain.Candidate {
	return &domain.Candidate{ID: testCandidateID, Name: "Taro Yamada", Email: "taro@example.com", Status: domain.StatusActive}
}

func openJob() *domain.Job {
	return &domain.Job{ID: testJobID, CompanyID: testCompanyID, Title: "Backend Engineer", Status: domain.JobStatusOpen}
}

func TestApply(t *testing.T) {
	newUC := func() (*MockApplicationRepo, *MockJobRepo, *MockCandidateRepo, domain.JobApplicationUsecase) {
		appRepo := new(MockApplicationRepo)
		jobRepo := new(MockJobRepo)
		candRepo := new(MockCandidateRepo)
		uc := usecase.NewJobApplicationUsecase(appRepo, jobRepo, candRepo, passthroughTx{})
		return appRepo, jobRepo, candRepo, uc
	}

	t.Run("inserts application and increments applicant count", func(t *testing.T) {
		appRepo, jobRepo, candRepo, uc := newUC()
		candRepo.On("FindByID", mock.Anything, testCandidateID).Return(activeCandidate(), nil)
		jobRepo.On("FindByID", mock.Anything, testJobID).Return(openJob(), nil)
		appRepo.On("ExistsActive", mock.Anything, testJobID, testCandidateID).Return(false, nil)
		appRepo.On("Insert", mock.Anything, mock.AnythingOfType("*domain.JobApplication")).Return(nil)
		jobRepo.On("IncrementApplicantCount", mock.Anything, testJobID).Return(nil)
		appRepo.On("FindByID", mock.Anything, testAppID).Return(&domain.JobApplication{
			ID: testAppID, JobID: testJobID, CandidateID: testCandidateID,
			CandidateName: "Taro Yamada", JobTitle: "Backend Engineer",
			Status: domain.ApplicationStatusApplied,
		}, nil)

		app := &domain.JobApplication{ID: testAppID, JobID: testJobID, CandidateID: testCandidateID}
		got, err := uc.Apply(context.Background(), app)

		assert.NoError(t, err)
		assert.Equal(t, "Taro Yamada", got.CandidateName)
		assert.Equal(t, "Backend Engineer", got.JobTitle)
		assert.Equal(t, domain.ApplicationStatusApplied, got.Status)
		jobRepo.AssertCalled(t, "IncrementApplicantCount", mock.Anything, testJobID)
	})

	t.Run("rejects duplicate application without touching the counter", func(t *testing.T) {
		appRepo, jobRepo, candRepo, uc := newUC()
		candRepo.On("FindByID", mock.Anything, testCandidateID).Return(activeCandidate(), nil)
		jobRepo.On("FindByID", mock.Anything, testJobID).Return(openJob(), nil)
		appRepo.On("ExistsActive", mock.Anything, testJobID, testCandidateID).Return(true, nil)

		_, err := uc.Apply(context.Background(), &domain.JobApplication{ID: testAppID, JobID: testJobID, CandidateID: testCandidateID})

		assertKind(t, err, apperror.KindDuplicate)
		jobRepo.AssertNotCalled(t, "IncrementApplicantCount", mock.Anything, mock.Anything)
		appRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("rejects missing job as referential integrity", func(t *testing.T) {
		_, jobRepo, candRepo, uc := newUC()
		candRepo.On("FindByID", mock.Anything, testCandidateID).Return(activeCandidate(), nil)
		jobRepo.On("FindByID", mock.Anything, testJobID).Return(nil, domain.ErrNotFound)

		_, err := uc.Apply(context.Background(), &domain.JobApplication{ID: testAppID, JobID: testJobID, CandidateID: testCandidateID})

		assertKind(t, err, apperror.KindRefIntegrity)
	})

	t.Run("rejects closed job as state conflict", func(t *testing.T) {
		_, jobRepo, candRepo, uc := newUC()
		closed := openJob()
		closed.Status = domain.JobStatusClosed
		candRepo.On("FindByID", mock.Anything, testCandidateID).Return(activeCandidate(), nil)
		jobRepo.On("FindByID", mock.Anything, testJobID).Return(closed, nil)

		_, err := uc.Apply(context.Background(), &domain.JobApplication{ID: testAppID, JobID: testJobID, CandidateID: testCandidateID})

		assertKind(t, err, apperror.KindStateConflict)
	})

	t.Run("rejects disabled candidate as state conflict", func(t *testing.T) {
		_, _, candRepo, uc := newUC()
		disabled := activeCandidate()
		disabled.Status = domain.StatusDisabled
		candRepo.On("FindByID", mock.Anything, testCandidateID).Return(disabled, nil)

		_, err := uc.Apply(context.Background(), &domain.JobApplication{ID: testAppID, JobID: testJobID, CandidateID: testCandidateID})

		assertKind(t, err, apperror.KindStateConflict)
	})

	t.Run("rejects missing candidate as referential integrity", func(t *testing.T) {
		_, _, candRepo, uc := newUC()
		candRepo.On("FindByID", mock.Anything, testCandidateID).Return(nil, domain.ErrNotFound)

		_, err := uc.Apply(context.Background(), &domain.JobApplication{ID: testAppID, JobID: testJobID, CandidateID: testCandidateID})

		assertKind(t, err, apperror.KindRefIntegrity)
	})
}

func TestUpdateApplicationStatus(t *testing.T) {
	t.Run("rejects unknown status", func(t *testing.T) {
		uc := usecase.NewJobApplicationUsecase(new(MockApplicationRepo), new(MockJobRepo), new(MockCandidateRepo), passthroughTx{})
		_, err := uc.UpdateStatus(context.Background(), testAppID, "PENDING")
		assertKind(t, err, apperror.KindValidation)
	})

	t.Run("accepts any of the four statuses", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewJobApplicationUsecase(appRepo, new(MockJobRepo), new(MockCandidateRepo), passthroughTx{})
		appRepo.On("UpdateStatus", mock.Anything, testAppID, domain.ApplicationStatusHired).Return(nil)
		appRepo.On("FindByID", mock.Anything, testAppID).Return(&domain.JobApplication{
			ID: testAppID, Status: domain.ApplicationStatusHired,
		}, nil)

		got, err := uc.UpdateStatus(context.Background(), testAppID, domain.ApplicationStatusHired)
		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusHired, got.Status)
	})

	t.Run("maps missing application to not found", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewJobApplicationUsecase(appRepo, new(MockJobRepo), new(MockCandidateRepo), passthroughTx{})
		appRepo.On("UpdateStatus", mock.Anything, testAppID, domain.ApplicationStatusRejected).Return(domain.ErrNotFound)

		_, err := uc.UpdateStatus(context.Background(), testAppID, domain.ApplicationStatusRejected)
		assertKind(t, err, apperror.KindNotFound)
	})
}

func TestDeleteApplication(t *testing.T) {
	t.Run("returns the snapshot taken before deletion", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		uc := usecase.NewJobApplicationUsecase(appRepo, new(MockJobRepo), new(MockCandidateRepo), passthroughTx{})
		appRepo.On("SoftDelete", mock.Anything, testAppID).Return(&domain.JobApplication{
			ID: testAppID, Status: domain.ApplicationStatusApplied, IsDeleted: false,
		}, nil)

		got, err := uc.DeleteApplication(context.Background(), testAppID)
		assert.NoError(t, err)
		assert.False(t, got.IsDeleted)
	})
}

func assertKind(t *testing.T, err error, kind apperror.Kind) {
	t.Helper()
	assert.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	if assert.True(t, ok, "expected *apperror.AppError, got %T", err) {
		assert.Equal(t, kind, appErr.Kind)
	}
}
