package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pricepulse/internal/config"
	"pricepulse/internal/services"
	"pricepulse/pkg/utils"
)

type PulseController struct {
	pulseService services.PulseServiceInterface
	cfg          *config.Config
}

func NewPulseController(pulseService services.PulseServiceInterface, cfg *config.Config) *PulseController {
	return &PulseController{
		pulseService: pulseService,
		cfg:          cfg,
	}
}

// MarketPulse godoc
// @Summary Community pulse for a market
// @Description Report volume, verification share, distinct items and contributors over a trailing window
// @Tags Pulse
// @Produce json
// @Param id path string true "Market id"
// @Param days query int false "Window in days" default(7)
// @Success 200 {object} utils.APIResponse
// @Router /pulse/markets/{id} [get]
func (p *PulseController) MarketPulse(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	days, err := strconv.Atoi(c.DefaultQuery("days", strconv.Itoa(p.cfg.PulseWindowDays)))
	if err != nil || days < 1 || days > 90 {
		utils.RespondError(c, http.StatusBadRequest, utils.CodeBadRequest, "Invalid window (must be 1-90 days)")
		return
	}

	pulse, err := p.pulseService.MarketPulse(c.Request.Context(), id, days)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, pulse)
}

// PriceIndex godoc
// @Summary Price index time series for an item
// @Description Daily avg/min/max of verified prices, optionally narrowed to a region
// @Tags Pulse
// @Produce json
// @Param id path string true "Item id"
// @Param days query int false "Series length in days" default(30)
// @Param region_id query string false "Region filter"
// @Success 200 {object} utils.APIResponse
// @Router /items/{id}/price-index [get]
func (p *PulseController) PriceIndex(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	days, err := strconv.Atoi(c.DefaultQuery("days", strconv.Itoa(p.cfg.PriceIndexDays)))
	if err != nil || days < 1 || days > 365 {
		utils.RespondError(c, http.StatusBadRequest, utils.CodeBadRequest, "Invalid series length (must be 1-365 days)")
		return
	}

	var regionID *uuid.UUID
	if raw := c.Query("region_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, utils.CodeBadRequest, "Invalid region id")
			return
		}
		regionID = &parsed
	}

	index, err := p.pulseService.PriceIndex(c.Request.Context(), id, regionID, days)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, index)
}
