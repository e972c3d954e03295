package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"alabraar/middleware"
	"alabraar/services/user"
	"alabraar/utils"
)

var userService user.UserService

// SetUserService injects the user service used by the package-level user
// handlers.
func SetUserService(svc user.UserService) {
	userService = svc
}

// RegisterUserHandler handles POST /api/users/register.
func RegisterUserHandler(c *gin.Context) {
	var input user.RegistrationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	result, err := userService.Register(input)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "registration failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, result)
}

// AuthenticateUserHandler handles POST /api/users/login.
func AuthenticateUserHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	result, err := userService.Authenticate(input.Email, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrSuspended):
			utils.JSONError(c, http.StatusForbidden, "account suspended", "")
		case errors.Is(err, user.ErrInvalidCredentials):
			utils.JSONError(c, http.StatusUnauthorized, "invalid credentials", "")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "authentication failed", err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetUserByIDHandler handles GET /api/users/:id.
func GetUserByIDHandler(c *gin.Context) {
	id := c.Param("id")
	p, _ := middleware.GetPrincipal(c)
	if !p.Owns(id) {
		utils.JSONError(c, http.StatusForbidden, "forbidden", "not the resource owner")
		return
	}

	usr, err := userService.GetUserByID(id)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			utils.JSONError(c, http.StatusNotFound, "user not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch user", err.Error())
		return
	}
	c.JSON(http.StatusOK, usr)
}

// UpdateUserHandler handles PUT /api/users/:id.
func UpdateUserHandler(c *gin.Context) {
	id := c.Param("id")
	p, _ := middleware.GetPrincipal(c)
	if !p.Owns(id) {
		utils.JSONError(c, http.StatusForbidden, "forbidden", "not the resource owner")
		return
	}

	var input struct {
		Name    string `json:"name"`
		Phone   string `json:"phone"`
		Country string `json:"country"`
		Bio     string `json:"bio"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	usr, err := userService.UpdateProfile(id, input.Name, input.Phone, input.Country, input.Bio)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			utils.JSONError(c, http.StatusNotFound, "user not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "update failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, usr)
}

// UpdateFCMTokenHandler handles PUT /api/users/fcm-token.
func UpdateFCMTokenHandler(c *gin.Context) {
	p, _ := middleware.GetPrincipal(c)

	var input struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if err := userService.UpdateFCMToken(p.ID, input.Token); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "update failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// RevokeUserTokenHandler handles DELETE /api/users/revoke.
func RevokeUserTokenHandler(c *gin.Context) {
	p, _ := middleware.GetPrincipal(c)
	if err := userService.RevokeToken(p.ID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "revoke failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListUstaadhsHandler handles GET /api/ustaadhs — the public directory of
// approved, unsuspended teachers.
func ListUstaadhsHandler(c *gin.Context) {
	profiles, err := userService.ListApprovedUstaadhs()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list ustaadhs", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"ustaadhs": profiles})
}
