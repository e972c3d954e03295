package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"alabraar/services/user"
	"alabraar/utils"
)

// AdminHandler exposes the admin moderation surface.
type AdminHandler struct {
	Users user.UserService
}

func NewAdminHandler(users user.UserService) *AdminHandler {
	return &AdminHandler{Users: users}
}

// ListUsersHandler handles GET /api/admin/users?role=.
func (h *AdminHandler) ListUsersHandler(c *gin.Context) {
	role := c.DefaultQuery("role", "student")
	users, err := h.Users.ListByRole(role)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list users", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// ApproveUstaadhHandler handles PUT /api/admin/ustaadhs/:id/approve.
func (h *AdminHandler) ApproveUstaadhHandler(c *gin.Context) {
	usr, err := h.Users.ApproveUstaadh(c.Param("id"))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			utils.JSONError(c, http.StatusNotFound, "user not found", "")
			return
		}
		utils.JSONError(c, http.StatusBadRequest, "approval failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, usr)
}

// SetSuspensionHandler handles PUT /api/admin/users/:id/suspension.
func (h *AdminHandler) SetSuspensionHandler(c *gin.Context) {
	var input struct {
		Suspended bool `json:"suspended"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	usr, err := h.Users.SetSuspended(c.Param("id"), input.Suspended)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			utils.JSONError(c, http.StatusNotFound, "user not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "suspension update failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, usr)
}
