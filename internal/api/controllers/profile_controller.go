package controllers

import (
	"github.com/gin-gonic/gin"

	"pricepulse/internal/services"
	"pricepulse/pkg/utils"
)

type ProfileController struct {
	accountService services.AccountServiceInterface
}

func NewProfileController(accountService services.AccountServiceInterface) *ProfileController {
	return &ProfileController{
		accountService: accountService,
	}
}

// Me godoc
// @Summary Get my profile
// @Description Aggregate stats for the authenticated user: reputation, report counts, earned badges, recent reputation events
// @Tags Profile
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /profile/me [get]
func (p *ProfileController) Me(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	profile, err := p.accountService.GetProfile(c.Request.Context(), principal.UserID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile)
}

func (p *ProfileController) CompleteOnboarding(c *gin.Context) {
	principal, ok := mustPrincipal(c)
	if !ok {
		return
	}

	if err := p.accountService.CompleteOnboarding(c.Request.Context(), principal.UserID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"onboarding_completed": true})
}
