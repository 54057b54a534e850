package controller

import (
	"training_portal_backend/internal/model"
	"training_portal_backend/internal/service"
	"training_portal_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

type updateProgressRequest struct {
	Progress *int   `json:"progress" binding:"required"`
	Status   string `json:"status"`
}

// @Summary Report course progress
// @Description Upserts the caller's progress on a course; completing it awards a badge.
// @Tags progress
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path int true "course id"
// @Param body body updateProgressRequest true "progress data"
// @Success 200 {object} util.Response
// @Router /api/progress/{courseId} [put]
func (c *ProgressController) UpdateProgress(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	courseID := util.MustParseUint(ctx.Param("courseId"))
	if courseID == 0 {
		util.BadRequest(ctx, "invalid courseId")
		return
	}

	var req updateProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	record, err := c.ProgressService.RecordProgress(user.UserID, courseID, *req.Progress, model.ProgressStatus(req.Status))
	switch err {
	case nil:
	case util.ErrInvalidPercentage:
		util.BadRequest(ctx, err.Error())
		return
	case util.ErrCourseNotFound, util.ErrUserNotFound:
		util.NotFound(ctx, err.Error())
		return
	default:
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, record)
}

// @Summary Caller's progress across all courses
// @Tags progress
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/progress [get]
func (c *ProgressController) GetUserProgress(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	records, err := c.ProgressService.GetUserProgress(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, records)
}
