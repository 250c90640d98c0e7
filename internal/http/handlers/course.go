package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	types "github.com/yungbote/coursehub-backend/internal/domain"
	"github.com/yungbote/coursehub-backend/internal/http/response"
	apperrors "github.com/yungbote/coursehub-backend/internal/pkg/errors"
	"github.com/yungbote/coursehub-backend/internal/platform/ctxutil"
	"github.com/yungbote/coursehub-backend/internal/platform/dbctx"
	"github.com/yungbote/coursehub-backend/internal/platform/logger"
	"github.com/yungbote/coursehub-backend/internal/services"
)

type CourseHandler struct {
	log           *logger.Logger
	courseService services.CourseService
}

func NewCourseHandler(log *logger.Logger, courseService services.CourseService) *CourseHandler {
	return &CourseHandler{
		log:           log.With("handler", "CourseHandler"),
		courseService: courseService,
	}
}

// POST /course/
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	var req types.Course
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug("CreateCourse bad body", append([]interface{}{"error", err}, ctxutil.LogFields(c.Request.Context())...)...)
		response.RespondError(c, http.StatusBadRequest, "invalid_request_body", err)
		return
	}
	created, err := h.courseService.CreateCourse(dbctx.With(c.Request.Context()), &req)
	if err != nil {
		response.RespondErr(c, "create_course_failed", err)
		return
	}
	response.RespondOK(c, created)
}

// POST /course/:courseId/lesson
func (h *CourseHandler) CreateLesson(c *gin.Context) {
	courseID, ok := pathID(c, "courseId", "invalid_course_id")
	if !ok {
		return
	}
	var req types.Lesson
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request_body", err)
		return
	}
	created, err := h.courseService.CreateLesson(dbctx.With(c.Request.Context()), courseID, &req)
	if err != nil {
		response.RespondErr(c, "create_lesson_failed", err)
		return
	}
	response.RespondOK(c, created)
}

// GET /course/
func (h *CourseHandler) ListCourses(c *gin.Context) {
	courses, err := h.courseService.ListCourses(dbctx.With(c.Request.Context()))
	if err != nil {
		response.RespondErr(c, "load_courses_failed", err)
		return
	}
	response.RespondOK(c, courses)
}

// GET /course/lesson/:lessonId
func (h *CourseHandler) GetLessonWithCourse(c *gin.Context) {
	lessonID, ok := pathID(c, "lessonId", "invalid_lesson_id")
	if !ok {
		return
	}
	view, err := h.courseService.GetLessonWithCourseDetails(dbctx.With(c.Request.Context()), lessonID)
	if err != nil {
		response.RespondErr(c, "load_lesson_failed", err)
		return
	}
	response.RespondOK(c, view)
}

// pathID parses a positive integer path parameter, writing a 400 on failure.
func pathID(c *gin.Context, name, code string) (int, bool) {
	raw := c.Param(name)
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		response.RespondError(c, http.StatusBadRequest, code,
			fmt.Errorf("%w: %s must be a positive integer, got %q", apperrors.ErrInvalidArgument, name, raw))
		return 0, false
	}
	return id, true
}
