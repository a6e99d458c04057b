package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUC domain.UserUsecase
}

func NewUserHandler(userUC domain.UserUsecase) *UserHandler {
	return &UserHandler{userUC: userUC}
}

// Upsert handles PUT /api/user
func (h *UserHandler) Upsert(c *gin.Context) {
	var user domain.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.Error(apperror.Validation("Invalid request body"))
		return
	}

	if err := h.userUC.UpsertUser(c.Request.Context(), &user); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User saved", user)
}

// Get handles GET /api/user?id=<uuid> or GET /api/user?username=<name>
func (h *UserHandler) Get(c *gin.Context) {
	var (
		user *domain.User
		err  error
	)
	switch {
	case c.Query("id") != "":
		user, err = h.userUC.GetUser(c.Request.Context(), c.Query("id"))
	case c.Query("username") != "":
		user, err = h.userUC.GetUserByUsername(c.Request.Context(), c.Query("username"))
	default:
		c.Error(apperror.Validation("id or username query parameter is required"))
		return
	}
	if err != nil {
		c.Error(err)
		return
	}
	user.PasswordHash = nil
	response.Success(c, http.StatusOK, "User found", user)
}

// List handles GET /api/userlist
func (h *UserHandler) List(c *gin.Context) {
	page, size := parsePaging(c)
	includeDeleted := c.Query("includeDeleted") == "true"

	users, err := h.userUC.ListUsers(c.Request.Context(), page, size, includeDeleted)
	if err != nil {
		c.Error(err)
		return
	}
	for i := range users.Items {
		users.Items[i].PasswordHash = nil
	}
	response.Success(c, http.StatusOK, "Users listed", users)
}

// Delete handles DELETE /api/user?id=<uuid>
func (h *UserHandler) Delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.Error(apperror.Validation("id query parameter is required"))
		return
	}

	user, err := h.userUC.DeleteUser(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	user.PasswordHash = nil
	response.Success(c, http.StatusOK, "User deleted", user)
}
