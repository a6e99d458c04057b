package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type ApplicationHandler struct {
	applicationUC domain.JobApplicationUsecase
	jobUC         domain.JobUsecase
	candidateUC   domain.CandidateUsecase
	companyUC     domain.CompanyUsecase
}

func NewApplicationHandler(
	applicationUC domain.JobApplicationUsecase,
	jobUC domain.JobUsecase,
	candidateUC domain.CandidateUsecase,
	companyUC domain.CompanyUsecase,
) *ApplicationHandler {
	return &ApplicationHandler{
		applicationUC: applicationUC,
		jobUC:         jobUC,
		candidateUC:   candidateUC,
		companyUC:     companyUC,
	}
}

type applyRequest struct {
	ID          string `json:"id" validate:"required,uuid"`
	JobID       string `json:"jobId" validate:"required,uuid"`
	CandidateID string `json:"candidateId" validate:"required,uuid"`
}

// Apply handles PUT /api/jobapplication. The caller must be the candidate
// named in the request.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req applyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation("Invalid request body"))
		return
	}
	if err := validate.Struct(req); err != nil {
		c.Error(apperror.Validation("id, jobId and candidateId must be valid UUIDs"))
		return
	}

	userID, role := caller(c)
	if role == domain.RoleCandidate {
		candidate, err := h.candidateUC.GetCandidateByUserID(c.Request.Context(), userID)
		if err != nil {
			c.Error(err)
			return
		}
		if req.CandidateID != candidate.ID {
			c.Error(apperror.Forbidden("Candidates may only apply as themselves"))
			return
		}
	}

	app := &domain.JobApplication{ID: req.ID, JobID: req.JobID, CandidateID: req.CandidateID}
	created, err := h.applicationUC.Apply(c.Request.Context(), app)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application submitted", created)
}

// Get handles GET /api/jobapplication?id=<uuid>. Candidates see only their
// own applications, companies only applications to their own jobs.
func (h *ApplicationHandler) Get(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.Error(apperror.Validation("id query parameter is required"))
		return
	}

	app, err := h.applicationUC.GetApplication(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	if err := h.authorizeApplicationAccess(c, app); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application found", app)
}

// List handles GET /api/jobapplicationlist?jobId=|candidateId=
func (h *ApplicationHandler) List(c *gin.Context) {
	page, size := parsePaging(c)
	jobID := c.Query("jobId")
	candidateID := c.Query("candidateId")

	switch {
	case jobID != "":
		if err := h.authorizeJobAccess(c, jobID); err != nil {
			c.Error(err)
			return
		}
		apps, err := h.applicationUC.ListByJob(c.Request.Context(), jobID, page, size)
		if err != nil {
			c.Error(err)
			return
		}
		response.Success(c, http.StatusOK, "Applications listed", apps)

	case candidateID != "":
		if err := h.authorizeCandidateAccess(c, candidateID); err != nil {
			c.Error(err)
			return
		}
		apps, err := h.applicationUC.ListByCandidate(c.Request.Context(), candidateID, page, size)
		if err != nil {
			c.Error(err)
			return
		}
		response.Success(c, http.StatusOK, "Applications listed", apps)

	default:
		c.Error(apperror.Validation("jobId or candidateId query parameter is required"))
	}
}

type statusRequest struct {
	ID     string `json:"id" validate:"required,uuid"`
	Status string `json:"status" validate:"required"`
}

// UpdateStatus handles PUT /api/jobapplication/status. Only the company
// owning the job (or an admin) may move an application through the pipeline.
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation("Invalid request body"))
		return
	}
	if err := validate.Struct(req); err != nil {
		c.Error(apperror.Validation("id must be a valid UUID and status is required"))
		return
	}

	app, err := h.applicationUC.GetApplication(c.Request.Context(), req.ID)
	if err != nil {
		c.Error(err)
		return
	}
	if err := h.authorizeJobAccess(c, app.JobID); err != nil {
		c.Error(err)
		return
	}

	updated, err := h.applicationUC.UpdateStatus(c.Request.Context(), req.ID, req.Status)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application status updated", updated)
}

// Delete handles DELETE /api/jobapplication?id=<uuid>
func (h *ApplicationHandler) Delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.Error(apperror.Validation("id query parameter is required"))
		return
	}

	app, err := h.applicationUC.DeleteApplication(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application deleted", app)
}

func (h *ApplicationHandler) authorizeApplicationAccess(c *gin.Context, app *domain.JobApplication) error {
	_, role := caller(c)
	switch role {
	case domain.RoleAdmin:
		return nil
	case domain.RoleCandidate:
		return h.authorizeCandidateAccess(c, app.CandidateID)
	case domain.RoleCompany:
		return h.authorizeJobAccess(c, app.JobID)
	}
	return apperror.Forbidden("Insufficient role for this operation")
}

// authorizeCandidateAccess allows admins, and candidates acting on their own
// profile.
func (h *ApplicationHandler) authorizeCandidateAccess(c *gin.Context, candidateID string) error {
	userID, role := caller(c)
	if role == domain.RoleAdmin {
		return nil
	}
	if role != domain.RoleCandidate {
		return apperror.Forbidden("Insufficient role for this operation")
	}
	candidate, err := h.candidateUC.GetCandidateByUserID(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	if candidate.ID != candidateID {
		return apperror.Forbidden("Candidates may only access their own applications")
	}
	return nil
}

// authorizeJobAccess allows admins, and companies acting on their own jobs.
func (h *ApplicationHandler) authorizeJobAccess(c *gin.Context, jobID string) error {
	userID, role := caller(c)
	if role == domain.RoleAdmin {
		return nil
	}
	if role != domain.RoleCompany {
		return apperror.Forbidden("Insufficient role for this operation")
	}
	job, err := h.jobUC.GetJob(c.Request.Context(), jobID)
	if err != nil {
		return err
	}
	company, err := h.companyUC.GetCompanyByUserID(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	if job.CompanyID != company.ID {
		return apperror.Forbidden("Companies may only access applications to their own jobs")
	}
	return nil
}
