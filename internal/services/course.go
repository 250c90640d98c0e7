package services

import (
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/yungbote/coursehub-backend/internal/data/repos"
	types "github.com/yungbote/coursehub-backend/internal/domain"
	apperrors "github.com/yungbote/coursehub-backend/internal/pkg/errors"
	"github.com/yungbote/coursehub-backend/internal/platform/apierr"
	"github.com/yungbote/coursehub-backend/internal/platform/ctxutil"
	"github.com/yungbote/coursehub-backend/internal/platform/dbctx"
	"github.com/yungbote/coursehub-backend/internal/platform/logger"
)

var (
	ErrCourseNotFound = fmt.Errorf("course %w", apperrors.ErrNotFound)
	ErrLessonNotFound = fmt.Errorf("lesson %w", apperrors.ErrNotFound)
	ErrCourseExists   = fmt.Errorf("course %w", apperrors.ErrAlreadyExists)
	ErrLessonExists   = fmt.Errorf("lesson %w", apperrors.ErrAlreadyExists)
)

var tracer = otel.Tracer("github.com/yungbote/coursehub-backend/internal/services")

type CourseService interface {
	CreateCourse(dbc dbctx.Context, course *types.Course) (*types.Course, error)
	CreateLesson(dbc dbctx.Context, courseID int, lesson *types.Lesson) (bool, error)
	ListCourses(dbc dbctx.Context) ([]*types.Course, error)
	GetLessonWithCourseDetails(dbc dbctx.Context, lessonID int) (*types.LessonWithCourse, error)
}

type courseService struct {
	log        *logger.Logger
	courseRepo repos.CourseRepo
	lessonRepo repos.LessonRepo
}

func NewCourseService(baseLog *logger.Logger, courseRepo repos.CourseRepo, lessonRepo repos.LessonRepo) CourseService {
	return &courseService{
		log:        baseLog.With("service", "CourseService"),
		courseRepo: courseRepo,
		lessonRepo: lessonRepo,
	}
}

func (cs *courseService) CreateCourse(dbc dbctx.Context, course *types.Course) (*types.Course, error) {
	if course == nil {
		return nil, apierr.BadRequest("invalid_course", fmt.Errorf("%w: missing course", apperrors.ErrInvalidArgument))
	}
	dbc, span := cs.startSpan(dbc, "CourseService.CreateCourse", attribute.Int("course.id", course.CourseID))
	defer span.End()

	if err := validateStruct(course); err != nil {
		return nil, fail(span, apierr.BadRequest("invalid_course", fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err)))
	}

	created, err := cs.courseRepo.Create(dbc, course)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fail(span, apierr.Conflict("course_exists", fmt.Errorf("%w (course_id=%d)", ErrCourseExists, course.CourseID)))
		}
		cs.logError(dbc, "CreateCourse failed", err, "course_id", course.CourseID)
		return nil, fail(span, apierr.Internal("create_course_failed", fmt.Errorf("create course: %w", err)))
	}
	cs.log.Debug("Course created", "course_id", created.CourseID)
	return created, nil
}

func (cs *courseService) CreateLesson(dbc dbctx.Context, courseID int, lesson *types.Lesson) (bool, error) {
	dbc, span := cs.startSpan(dbc, "CourseService.CreateLesson", attribute.Int("course.id", courseID))
	defer span.End()

	if courseID <= 0 {
		return false, fail(span, apierr.BadRequest("invalid_course_id", fmt.Errorf("%w: course id must be greater than 0", apperrors.ErrInvalidArgument)))
	}
	if lesson == nil {
		return false, fail(span, apierr.BadRequest("invalid_lesson", fmt.Errorf("%w: missing lesson", apperrors.ErrInvalidArgument)))
	}
	span.SetAttributes(attribute.Int("lesson.id", lesson.LessonID))
	if err := validateStruct(lesson); err != nil {
		return false, fail(span, apierr.BadRequest("invalid_lesson", fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err)))
	}

	course, err := cs.courseRepo.GetByID(dbc, courseID)
	if err != nil {
		cs.logError(dbc, "CreateLesson failed (load course)", err, "course_id", courseID)
		return false, fail(span, apierr.Internal("load_course_failed", fmt.Errorf("load course: %w", err)))
	}
	if course == nil {
		return false, fail(span, apierr.NotFound("course_not_found", fmt.Errorf("%w (course_id=%d)", ErrCourseNotFound, courseID)))
	}

	lesson.CourseID = course.CourseID
	lesson.Course = nil
	if _, err := cs.lessonRepo.Create(dbc, lesson); err != nil {
		switch {
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return false, fail(span, apierr.Conflict("lesson_exists", fmt.Errorf("%w (lesson_id=%d)", ErrLessonExists, lesson.LessonID)))
		case errors.Is(err, gorm.ErrForeignKeyViolated):
			// Course removed between lookup and insert.
			return false, fail(span, apierr.NotFound("course_not_found", fmt.Errorf("%w (course_id=%d)", ErrCourseNotFound, courseID)))
		}
		cs.logError(dbc, "CreateLesson failed (insert)", err, "course_id", courseID, "lesson_id", lesson.LessonID)
		return false, fail(span, apierr.Internal("create_lesson_failed", fmt.Errorf("create lesson: %w", err)))
	}
	cs.log.Debug("Lesson created", "course_id", courseID, "lesson_id", lesson.LessonID)
	return true, nil
}

func (cs *courseService) ListCourses(dbc dbctx.Context) ([]*types.Course, error) {
	dbc, span := cs.startSpan(dbc, "CourseService.ListCourses")
	defer span.End()

	courses, err := cs.courseRepo.List(dbc)
	if err != nil {
		cs.logError(dbc, "ListCourses failed", err)
		return nil, fail(span, apierr.Internal("load_courses_failed", fmt.Errorf("list courses: %w", err)))
	}
	if courses == nil {
		courses = []*types.Course{}
	}
	span.SetAttributes(attribute.Int("course.count", len(courses)))
	return courses, nil
}

// GetLessonWithCourseDetails performs one lesson lookup and, only when
// the lesson exists, one lookup of its owning course.
func (cs *courseService) GetLessonWithCourseDetails(dbc dbctx.Context, lessonID int) (*types.LessonWithCourse, error) {
	dbc, span := cs.startSpan(dbc, "CourseService.GetLessonWithCourseDetails", attribute.Int("lesson.id", lessonID))
	defer span.End()

	if lessonID <= 0 {
		return nil, fail(span, apierr.BadRequest("invalid_lesson_id", fmt.Errorf("%w: lesson id must be greater than 0", apperrors.ErrInvalidArgument)))
	}

	lesson, err := cs.lessonRepo.GetByID(dbc, lessonID)
	if err != nil {
		cs.logError(dbc, "GetLessonWithCourseDetails failed (load lesson)", err, "lesson_id", lessonID)
		return nil, fail(span, apierr.Internal("load_lesson_failed", fmt.Errorf("load lesson: %w", err)))
	}
	if lesson == nil {
		return nil, fail(span, apierr.NotFound("lesson_not_found", fmt.Errorf("%w (lesson_id=%d)", ErrLessonNotFound, lessonID)))
	}

	span.SetAttributes(attribute.Int("course.id", lesson.CourseID))
	course, err := cs.courseRepo.GetByID(dbc, lesson.CourseID)
	if err != nil {
		cs.logError(dbc, "GetLessonWithCourseDetails failed (load course)", err, "lesson_id", lessonID, "course_id", lesson.CourseID)
		return nil, fail(span, apierr.Internal("load_course_failed", fmt.Errorf("load course: %w", err)))
	}
	if course == nil {
		cs.log.Warn("Lesson references missing course", "lesson_id", lessonID, "course_id", lesson.CourseID)
		return nil, fail(span, apierr.NotFound("course_not_found", fmt.Errorf("%w (course_id=%d)", ErrCourseNotFound, lesson.CourseID)))
	}

	return types.NewLessonWithCourse(lesson, course), nil
}

func (cs *courseService) startSpan(dbc dbctx.Context, name string, attrs ...attribute.KeyValue) (dbctx.Context, trace.Span) {
	ctx, span := tracer.Start(dbc.Context(), name, trace.WithAttributes(attrs...))
	dbc.Ctx = ctx
	return dbc, span
}

func (cs *courseService) logError(dbc dbctx.Context, msg string, err error, kv ...interface{}) {
	fields := append([]interface{}{"error", err}, kv...)
	fields = append(fields, ctxutil.LogFields(dbc.Context())...)
	cs.log.Error(msg, fields...)
}

func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
