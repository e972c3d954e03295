package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"alabraar/middleware"
	"alabraar/services/achievement"
	"alabraar/utils"
)

// AchievementHandler exposes badge endpoints.
type AchievementHandler struct {
	Service achievement.AchievementService
}

func NewAchievementHandler(svc achievement.AchievementService) *AchievementHandler {
	return &AchievementHandler{Service: svc}
}

// MyAchievementsHandler handles GET /api/achievements/my-achievements,
// newest first.
func (h *AchievementHandler) MyAchievementsHandler(c *gin.Context) {
	p, _ := middleware.GetPrincipal(c)

	achievements, err := h.Service.ListForUser(c.Request.Context(), p.ID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list achievements", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"achievements": achievements})
}

// AwardAchievementHandler handles POST /api/admin/achievements. Awarding is
// idempotent, so re-sending the same badge is a no-op.
func (h *AchievementHandler) AwardAchievementHandler(c *gin.Context) {
	var input struct {
		UserID   string                 `json:"userId" binding:"required"`
		Type     string                 `json:"type" binding:"required"`
		Title    string                 `json:"title" binding:"required"`
		Metadata map[string]interface{} `json:"metadata"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	awarded, err := h.Service.Award(c.Request.Context(), input.UserID, input.Type, input.Title, input.Metadata)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to award achievement", err.Error())
		return
	}
	c.JSON(http.StatusCreated, awarded)
}
