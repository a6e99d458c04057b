package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/storage"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	companyUC domain.CompanyUsecase
	presigner *storage.PresignClient
}

func NewCompanyHandler(companyUC domain.CompanyUsecase, presigner *storage.PresignClient) *CompanyHandler {
	return &CompanyHandler{companyUC: companyUC, presigner: presigner}
}

// Upsert handles PUT /api/company. A COMPANY caller may only write the
// profile linked to their own user id; ADMIN may write any.
func (h *CompanyHandler) Upsert(c *gin.Context) {
	var company domain.Company
	if err := c.ShouldBindJSON(&company); err != nil {
		c.Error(apperror.Validation("Invalid request body"))
		return
	}

	userID, role := caller(c)
	if role == domain.RoleCompany {
		if company.UserID == nil || *company.UserID != userID {
			c.Error(apperror.Forbidden("Companies may only modify their own profile"))
			return
		}
	}

	if err := h.companyUC.UpsertCompany(c.Request.Context(), &company); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company saved", company)
}

// Get handles GET /api/company?id=<uuid> or GET /api/company?userId=<uuid>.
// Lookup by id is open; lookup by userId resolves the caller's own profile
// from their token subject, so non-admins may only pass their own user id.
func (h *CompanyHandler) Get(c *gin.Context) {
	var (
		company *domain.Company
		err     error
	)
	switch {
	case c.Query("id") != "":
		company, err = h.companyUC.GetCompany(c.Request.Context(), c.Query("id"))
	case c.Query("userId") != "":
		targetUserID := c.Query("userId")
		userID, role := caller(c)
		if role != domain.RoleAdmin && targetUserID != userID {
			c.Error(apperror.Forbidden("userId lookup is limited to your own profile"))
			return
		}
		company, err = h.companyUC.GetCompanyByUserID(c.Request.Context(), targetUserID)
	default:
		c.Error(apperror.Validation("id or userId query parameter is required"))
		return
	}
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company found", company)
}

// List handles GET /api/companylist
func (h *CompanyHandler) List(c *gin.Context) {
	page, size := parsePaging(c)
	includeDeleted := c.Query("includeDeleted") == "true"

	companies, err := h.companyUC.ListCompanies(c.Request.Context(), page, size, includeDeleted)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Companies listed", companies)
}

// Delete handles DELETE /api/company?id=<uuid>
func (h *CompanyHandler) Delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.Error(apperror.Validation("id query parameter is required"))
		return
	}

	company, err := h.companyUC.DeleteCompany(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company deleted", company)
}

// Disable handles PUT /api/company/disable?id=<uuid>. Disabling also closes
// the company's open jobs.
func (h *CompanyHandler) Disable(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.Error(apperror.Validation("id query parameter is required"))
		return
	}

	company, err := h.companyUC.DisableCompany(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company disabled", company)
}

// Enable handles PUT /api/company/enable?id=<uuid>
func (h *CompanyHandler) Enable(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.Error(apperror.Validation("id query parameter is required"))
		return
	}

	company, err := h.companyUC.EnableCompany(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company enabled", company)
}

// LogoUploadURL handles GET /api/company/logo/upload-url
func (h *CompanyHandler) LogoUploadURL(c *gin.Context) {
	userID, _ := caller(c)
	contentType := c.DefaultQuery("contentType", "image/png")

	url, err := h.presigner.UploadURL(c.Request.Context(), storage.LogoKey(userID), contentType)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Upload URL generated", gin.H{"url": url, "expiresIn": int(storage.URLExpiry.Seconds())})
}

// LogoDownloadURL handles GET /api/company/logo/download-url. Admins may
// fetch any company's logo via ?userId=; companies get their own.
func (h *CompanyHandler) LogoDownloadURL(c *gin.Context) {
	userID, role := caller(c)
	if role == domain.RoleAdmin {
		if target := c.Query("userId"); target != "" {
			userID = target
		}
	}
	key := storage.LogoKey(userID)

	exists, err := h.presigner.Exists(c.Request.Context(), key)
	if err != nil {
		c.Error(err)
		return
	}
	if !exists {
		c.Error(apperror.NotFound("No logo uploaded"))
		return
	}

	url, err := h.presigner.DownloadURL(c.Request.Context(), key)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Download URL generated", gin.H{"url": url, "expiresIn": int(storage.URLExpiry.Seconds())})
}
