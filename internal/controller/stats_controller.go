package controller

import (
	"fmt"
	"net/http"

	"training_portal_backend/internal/service"
	"training_portal_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StatsController struct {
	StatsService  *service.StatsService
	ExportService *service.ExportService
}

func NewStatsController(statsService *service.StatsService, exportService *service.ExportService) *StatsController {
	return &StatsController{
		StatsService:  statsService,
		ExportService: exportService,
	}
}

// @Summary Admin dashboard statistics
// @Description Summary figures, top courses, recent activity and category rollups.
// @Tags stats
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/stats/dashboard [get]
func (c *StatsController) GetDashboardStats(ctx *gin.Context) {
	stats, err := c.StatsService.DashboardStats(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, stats)
}

// @Summary Export users or courses as CSV
// @Tags stats
// @Produce text/csv
// @Security ApiKeyAuth
// @Param type query string true "export type" Enums(users, courses)
// @Success 200 {string} string
// @Router /api/stats/export [get]
func (c *StatsController) ExportData(ctx *gin.Context) {
	kind := ctx.Query("type")

	result, err := c.ExportService.Export(ctx.Request.Context(), kind)
	if err == util.ErrInvalidExportType {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.Header("Content-Type", "text/csv")
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", result.Filename))
	ctx.String(http.StatusOK, result.Data)
}
