package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pricepulse/internal/models/request_models"
	"pricepulse/internal/services"
	"pricepulse/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
}

func NewReportController(reportService services.ReportServiceInterface) *ReportController {
	return &ReportController{
		reportService: reportService,
	}
}

func mustPrincipal(c *gin.Context) (utils.Principal, bool) {
	p, ok := utils.PrincipalFrom(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, utils.CodeUnauthenticated, "Authentication required")
	}
	return p, ok
}

func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, utils.CodeBadRequest, "Invalid id parameter")
		return uuid.Nil, false
	}
	return id, true
}

// Submit godoc
// @Summary Submit a price report
// @Description Report an observed price for an item at a market. Duplicate submissions for the same item and market within the same clock hour are rejected.
// @Tags Reports
// @Accept json
// @Produce json
// @Param request body request_models.SubmitReportRequest true "Report payload"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /price-reports [post]
func (r *ReportController) Submit(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}

	var req request_models.SubmitReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, utils.CodeBadRequest, "Invalid request format")
		return
	}

	report, err := r.reportService.Submit(c.Request.Context(), p.UserID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, report)
}

func (r *ReportController) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	report, err := r.reportService.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, report)
}

func (r *ReportController) List(c *gin.Context) {
	var query request_models.ListReportsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, utils.CodeBadRequest, "Invalid query parameters")
		return
	}

	reports, err := r.reportService.List(c.Request.Context(), query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reports)
}

// Verify godoc
// @Summary Verify a pending report
// @Description Transition a report from pending to verified. A report can be verified exactly once; verifying your own report is forbidden.
// @Tags Reports
// @Produce json
// @Param id path string true "Report id"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /price-reports/{id}/verify [post]
func (r *ReportController) Verify(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	report, err := r.reportService.Verify(c.Request.Context(), id, p.UserID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, report)
}

// Reject godoc
// @Summary Reject a pending report
// @Description Moderator action: transition a report from pending to rejected with a reason.
// @Tags Reports
// @Accept json
// @Produce json
// @Param id path string true "Report id"
// @Param request body request_models.RejectReportRequest true "Rejection payload"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /price-reports/{id}/reject [post]
func (r *ReportController) Reject(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req request_models.RejectReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, utils.CodeBadRequest, "Rejection reason is required")
		return
	}

	report, err := r.reportService.Reject(c.Request.Context(), id, p.UserID, req.Reason)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, report)
}

// Vote godoc
// @Summary Mark a report as helpful
// @Description Cast or confirm a helpful vote. Voting twice is a no-op; the response carries the recomputed helpful count.
// @Tags Reports
// @Produce json
// @Param id path string true "Report id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /price-reports/{id}/vote [post]
func (r *ReportController) Vote(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := r.reportService.Vote(c.Request.Context(), id, p.UserID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result)
}

// Unvote godoc
// @Summary Retract a helpful vote
// @Description Retract a previously cast helpful vote. Retracting a never-cast vote is a no-op.
// @Tags Reports
// @Produce json
// @Param id path string true "Report id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /price-reports/{id}/vote [delete]
func (r *ReportController) Unvote(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := r.reportService.Unvote(c.Request.Context(), id, p.UserID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result)
}
