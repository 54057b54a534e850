package controller

import (
	"training_portal_backend/internal/model"
	"training_portal_backend/internal/service"
	"training_portal_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CourseService   *service.CourseService
	ProgressService *service.ProgressService
}

func NewCourseController(courseService *service.CourseService, progressService *service.ProgressService) *CourseController {
	return &CourseController{
		CourseService:   courseService,
		ProgressService: progressService,
	}
}

// @Summary List courses
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/courses [get]
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	courses, err := c.CourseService.GetAllCourses()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"courses": courses,
		"count":   len(courses),
	})
}

// @Summary Course detail with enrollment stats
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "course id"
// @Success 200 {object} util.Response
// @Router /api/courses/{id} [get]
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	if id == 0 {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	course, err := c.CourseService.GetCourseByID(id)
	if err == util.ErrCourseNotFound {
		util.NotFound(ctx, err.Error())
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, course)
}

// @Summary A user's progress on one course
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "course id"
// @Param userId path int true "user id"
// @Success 200 {object} util.Response
// @Router /api/courses/{id}/progress/{userId} [get]
func (c *CourseController) GetUserCourseProgress(ctx *gin.Context) {
	courseID := util.MustParseUint(ctx.Param("id"))
	userID := util.MustParseUint(ctx.Param("userId"))
	if userID == 0 || courseID == 0 {
		util.BadRequest(ctx, "invalid user or course id")
		return
	}

	record, err := c.ProgressService.GetCourseProgress(userID, courseID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	if record == nil {
		// Never enrolled: report the zero state rather than an error body.
		util.Success(ctx, model.CourseProgress{
			UserID:   userID,
			CourseID: courseID,
			Status:   model.NotStarted,
		})
		return
	}

	util.Success(ctx, record)
}
