package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC     domain.JobUsecase
	companyUC domain.CompanyUsecase
}

func NewJobHandler(jobUC domain.JobUsecase, companyUC domain.CompanyUsecase) *JobHandler {
	return &JobHandler{jobUC: jobUC, companyUC: companyUC}
}

// Upsert handles PUT /api/job. A COMPANY caller may only post jobs for its
// own company; ADMIN may post for any.
func (h *JobHandler) Upsert(c *gin.Context) {
	var job domain.Job
	if err := c.ShouldBindJSON(&job); err != nil {
		c.Error(apperror.Validation("Invalid request body"))
		return
	}

	userID, role := caller(c)
	if role == domain.RoleCompany {
		company, err := h.companyUC.GetCompanyByUserID(c.Request.Context(), userID)
		if err != nil {
			c.Error(err)
			return
		}
		if job.CompanyID != company.ID {
			c.Error(apperror.Forbidden("Companies may only post jobs for their own company"))
			return
		}
	}

	created, err := h.jobUC.CreateJob(c.Request.Context(), &job)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job saved", created)
}

// Get handles GET /api/job?id=<uuid>
func (h *JobHandler) Get(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.Error(apperror.Validation("id query parameter is required"))
		return
	}

	job, err := h.jobUC.GetJob(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job found", job)
}

// List handles GET /api/joblist?companyId=&status=. A COMPANY caller is
// pinned to its own companyId regardless of the query parameter.
func (h *JobHandler) List(c *gin.Context) {
	page, size := parsePaging(c)
	companyID := c.Query("companyId")
	status := c.Query("status")

	userID, role := caller(c)
	if role == domain.RoleCompany {
		company, err := h.companyUC.GetCompanyByUserID(c.Request.Context(), userID)
		if err != nil {
			c.Error(err)
			return
		}
		companyID = company.ID
	}

	// Admins may pull deleted jobs into the listing.
	if role == domain.RoleAdmin && c.Query("includeDeleted") == "true" {
		jobs, err := h.jobUC.ListAllJobs(c.Request.Context(), page, size)
		if err != nil {
			c.Error(err)
			return
		}
		response.Success(c, http.StatusOK, "Jobs listed", jobs)
		return
	}

	jobs, err := h.jobUC.ListJobs(c.Request.Context(), page, size, companyID, status)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Jobs listed", jobs)
}

// Delete handles DELETE /api/job?id=<uuid>
func (h *JobHandler) Delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.Error(apperror.Validation("id query parameter is required"))
		return
	}

	job, err := h.jobUC.DeleteJob(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job deleted", job)
}
