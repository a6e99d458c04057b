package v1_test

import (
	"context"

	"go-jobboard-backend/internal/domain"
)

// Stub usecases: each method delegates to an optional function field, so a
// test only wires the calls it expects.

type stubUserUC struct {
	get       func(ctx context.Context, id string) (*domain.User, error)
	getByName func(ctx context.Context, username string) (*domain.User, error)
	list      func(ctx context.Context, page, size int, includeDeleted bool) (domain.Page[domain.User], error)
	upsert    func(ctx context.Context, user *domain.User) error
	del       func(ctx context.Context, id string) (*domain.User, error)
}

func (s *stubUserUC) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.get(ctx, id)
}
func (s *stubUserUC) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.getByName(ctx, username)
}
func (s *stubUserUC) ListUsers(ctx context.Context, page, size int, includeDeleted bool) (domain.Page[domain.User], error) {
	return s.list(ctx, page, size, includeDeleted)
}
func (s *stubUserUC) UpsertUser(ctx context.Context, user *domain.User) error {
	return s.upsert(ctx, user)
}
func (s *stubUserUC) DeleteUser(ctx context.Context, id string) (*domain.User, error) {
	return s.del(ctx, id)
}

type stubCandidateUC struct {
	get       func(ctx context.Context, id string) (*domain.Candidate, error)
	getByUser func(ctx context.Context, userID string) (*domain.Candidate, error)
	list      func(ctx context.Context, page, size int, includeDeleted bool) (domain.Page[domain.Candidate], error)
	upsert    func(ctx context.Context, c *domain.Candidate) error
	del       func(ctx context.Context, id string) (*domain.Candidate, error)
	disable   func(ctx context.Context, id string) (*domain.Candidate, error)
	enable    func(ctx context.Context, id string) (*domain.Candidate, error)
}

func (s *stubCandidateUC) GetCandidate(ctx context.Context, id string) (*domain.Candidate, error) {
	return s.get(ctx, id)
}
func (s *stubCandidateUC) GetCandidateByUserID(ctx context.Context, userID string) (*domain.Candidate, error) {
	return s.getByUser(ctx, userID)
}
func (s *stubCandidateUC) ListCandidates(ctx context.Context, page, size int, includeDeleted bool) (domain.Page[domain.Candidate], error) {
	return s.list(ctx, page, size, includeDeleted)
}
func (s *stubCandidateUC) UpsertCandidate(ctx context.Context, c *domain.Candidate) error {
	return s.upsert(ctx, c)
}
func (s *stubCandidateUC) DeleteCandidate(ctx context.Context, id string) (*domain.Candidate, error) {
	return s.del(ctx, id)
}
func (s *stubCandidateUC) DisableCandidate(ctx context.Context, id string) (*domain.Candidate, error) {
	return s.disable(ctx, id)
}
func (s *stubCandidateUC) EnableCandidate(ctx context.Context, id string) (*domain.Candidate, error) {
	return s.enable(ctx, id)
}

type stubCompanyUC struct {
	get       func(ctx context.Context, id string) (*domain.Company, error)
	getByUser func(ctx context.Context, userID string) (*domain.Company, error)
	list      func(ctx context.Context, page, size int, includeDeleted bool) (domain.Page[domain.Company], error)
	upsert    func(ctx context.Context, c *domain.Company) error
	del       func(ctx context.Context, id string) (*domain.Company, error)
	disable   func(ctx context.Context, id string) (*domain.Company, error)
	enable    func(ctx context.Context, id string) (*domain.Company, error)
}

func (s *stubCompanyUC) GetCompany(ctx context.Context, id string) (*domain.Company, error) {
	return s.get(ctx, id)
}
func (s *stubCompanyUC) GetCompanyByUserID(ctx context.Context, userID string) (*domain.Company, error) {
	return s.getByUser(ctx, userID)
}
func (s *stubCompanyUC) ListCompanies(ctx context.Context, page, size int, includeDeleted bool) (domain.Page[domain.Company], error) {
	return s.list(ctx, page, size, includeDeleted)
}
func (s *stubCompanyUC) UpsertCompany(ctx context.Context, c *domain.Company) error {
	return s.upsert(ctx, c)
}
func (s *stubCompanyUC) DeleteCompany(ctx context.Context, id string) (*domain.Company, error) {
	return s.del(ctx, id)
}
func (s *stubCompanyUC) DisableCompany(ctx context.Context, id string) (*domain.Company, error) {
	return s.disable(ctx, id)
}
func (s *stubCompanyUC) EnableCompany(ctx context.Context, id string) (*domain.Company, error) {
	return s.enable(ctx, id)
}

type stubJobUC struct {
	get     func(ctx context.Context, id string) (*domain.Job, error)
	list    func(ctx context.Context, page, size int, companyID, status string) (domain.Page[domain.Job], error)
	listAll func(ctx context.Context, page, size int) (domain.Page[domain.Job], error)
	create  func(ctx context.Context, job *domain.Job) (*domain.Job, error)
	del     func(ctx context.Context, id string) (*domain.Job, error)
	closeBy func(ctx context.Context, companyID string) error
}

func (s *stubJobUC) GetJob(ctx context.Context, id string) (*domain.Job, error) {
	return s.get(ctx, id)
}
func (s *stubJobUC) ListJobs(ctx context.Context, page, size int, companyID, status string) (domain.Page[domain.Job], error) {
	return s.list(ctx, page, size, companyID, status)
}
func (s *stubJobUC) ListAllJobs(ctx context.Context, page, size int) (domain.Page[domain.Job], error) {
	return s.listAll(ctx, page, size)
}
func (s *stubJobUC) CreateJob(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	return s.create(ctx, job)
}
func (s *stubJobUC) DeleteJob(ctx context.Context, id string) (*domain.Job, error) {
	return s.del(ctx, id)
}
func (s *stubJobUC) CloseJobsByCompany(ctx context.Context, companyID string) error {
	return s.closeBy(ctx, companyID)
}

type stubApplicationUC struct {
	get             func(ctx context.Context, id string) (*domain.JobApplication, error)
	listByJob       func(ctx context.Context, jobID string, page, size int) (domain.Page[domain.JobApplication], error)
	listByCandidate func(ctx context.Context, candidateID string, page, size int) (domain.Page[domain.JobApplication], error)
	apply           func(ctx context.Context, app *domain.JobApplication) (*domain.JobApplication, error)
	updateStatus    func(ctx context.Context, id, status string) (*domain.JobApplication, error)
	del             func(ctx context.Context, id string) (*domain.JobApplication, error)
}

func (s *stubApplicationUC) GetApplication(ctx context.Context, id string) (*domain.JobApplication, error) {
	return s.get(ctx, id)
}
func (s *stubApplicationUC) ListByJob(ctx context.Context, jobID string, page, size int) (domain.Page[domain.JobApplication], error) {
	return s.listByJob(ctx, jobID, page, size)
}
func (s *stubApplicationUC) ListByCandidate(ctx context.Context, candidateID string, page, size int) (domain.Page[domain.JobApplication], error) {
	return s.listByCandidate(ctx, candidateID, page, size)
}
func (s *stubApplicationUC) Apply(ctx context.Context, app *domain.JobApplication) (*domain.JobApplication, error) {
	return s.apply(ctx, app)
}
func (s *stubApplicationUC) UpdateStatus(ctx context.Context, id, status string) (*domain.JobApplication, error) {
	return s.updateStatus(ctx, id, status)
}
func (s *stubApplicationUC) DeleteApplication(ctx context.Context, id string) (*domain.JobApplication, error) {
	return s.del(ctx, id)
}
