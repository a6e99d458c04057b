package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/storage"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
	presigner   *storage.PresignClient
}

func NewCandidateHandler(candidateUC domain.CandidateUsecase, presigner *storage.PresignClient) *CandidateHandler {
	return &CandidateHandler{candidateUC: candidateUC, presigner: presigner}
}

// Upsert handles PUT /api/candidate. A CANDIDATE may only write the profile
// linked to their own user id; ADMIN may write any.
func (h *CandidateHandler) Upsert(c *gin.Context) {
	var candidate domain.Candidate
	if err := c.ShouldBindJSON(&candidate); err != nil {
		c.Error(apperror.Validation("Invalid request body"))
		return
	}

	userID, role := caller(c)
	if role == domain.RoleCandidate {
		if candidate.UserID == nil || *candidate.UserID != userID {
			c.Error(apperror.Forbidden("Candidates may only modify their own profile"))
			return
		}
	}

	if err := h.candidateUC.UpsertCandidate(c.Request.Context(), &candidate); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate saved", candidate)
}

// Get handles GET /api/candidate?id=<uuid> or GET /api/candidate?userId=<uuid>.
// A CANDIDATE caller is restricted to their own row; the userId variant
// resolves the caller's own profile from their token subject, so non-admins
// may only pass their own user id.
func (h *CandidateHandler) Get(c *gin.Context) {
	userID, role := caller(c)

	var (
		candidate *domain.Candidate
		err       error
	)
	switch {
	case c.Query("id") != "":
		candidate, err = h.candidateUC.GetCandidate(c.Request.Context(), c.Query("id"))
	case c.Query("userId") != "":
		targetUserID := c.Query("userId")
		if role != domain.RoleAdmin && targetUserID != userID {
			c.Error(apperror.Forbidden("userId lookup is limited to your own profile"))
			return
		}
		candidate, err = h.candidateUC.GetCandidateByUserID(c.Request.Context(), targetUserID)
	default:
		c.Error(apperror.Validation("id or userId query parameter is required"))
		return
	}
	if err != nil {
		c.Error(err)
		return
	}

	if role == domain.RoleCandidate {
		if candidate.UserID == nil || *candidate.UserID != userID {
			c.Error(apperror.Forbidden("Candidates may only view their own profile"))
			return
		}
	}
	response.Success(c, http.StatusOK, "Candidate found", candidate)
}

// List handles GET /api/candidatelist
func (h *CandidateHandler) List(c *gin.Context) {
	page, size := parsePaging(c)
	includeDeleted := c.Query("includeDeleted") == "true"

	candidates, err := h.candidateUC.ListCandidates(c.Request.Context(), page, size, includeDeleted)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidates listed", candidates)
}

// Delete handles DELETE /api/candidate?id=<uuid>
func (h *CandidateHandler) Delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.Error(apperror.Validation("id query parameter is required"))
		return
	}

	candidate, err := h.candidateUC.DeleteCandidate(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate deleted", candidate)
}

// Disable handles PUT /api/candidate/disable?id=<uuid>
func (h *CandidateHandler) Disable(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.Error(apperror.Validation("id query parameter is required"))
		return
	}

	candidate, err := h.candidateUC.DisableCandidate(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate disabled", candidate)
}

// Enable handles PUT /api/candidate/enable?id=<uuid>
func (h *CandidateHandler) Enable(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.Error(apperror.Validation("id query parameter is required"))
		return
	}

	candidate, err := h.candidateUC.EnableCandidate(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate enabled", candidate)
}

// PhotoUploadURL handles GET /api/candidate/photo/upload-url. The key is
// derived from the caller's identity, so one candidate can never sign a URL
// for another's photo.
func (h *CandidateHandler) PhotoUploadURL(c *gin.Context) {
	userID, _ := caller(c)
	contentType := c.DefaultQuery("contentType", "image/jpeg")

	url, err := h.presigner.UploadURL(c.Request.Context(), storage.PhotoKey(userID), contentType)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Upload URL generated", gin.H{"url": url, "expiresIn": int(storage.URLExpiry.Seconds())})
}

// PhotoDownloadURL handles GET /api/candidate/photo/download-url. Admins may
// fetch any candidate's photo via ?userId=; candidates get their own.
func (h *CandidateHandler) PhotoDownloadURL(c *gin.Context) {
	userID, role := caller(c)
	if role == domain.RoleAdmin {
		if target := c.Query("userId"); target != "" {
			userID = target
		}
	}
	key := storage.PhotoKey(userID)

	exists, err := h.presigner.Exists(c.Request.Context(), key)
	if err != nil {
		c.Error(err)
		return
	}
	if !exists {
		c.Error(apperror.NotFound("No photo uploaded"))
		return
	}

	url, err := h.presigner.DownloadURL(c.Request.Context(), key)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Download URL generated", gin.H{"url": url, "expiresIn": int(storage.URLExpiry.Seconds())})
}
