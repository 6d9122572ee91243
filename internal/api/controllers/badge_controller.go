package controllers

import (
	"github.com/gin-gonic/gin"

	"pricepulse/internal/services"
	"pricepulse/pkg/utils"
)

type BadgeController struct {
	reputationService services.ReputationServiceInterface
}

func NewBadgeController(reputationService services.ReputationServiceInterface) *BadgeController {
	return &BadgeController{
		reputationService: reputationService,
	}
}

// List godoc
// @Summary List badges
// @Description All badge definitions together with the authenticated user's earned set
// @Tags Badges
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /badges [get]
func (b *BadgeController) List(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}

	badges, err := b.reputationService.ListBadges(c.Request.Context(), p.UserID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, badges)
}
