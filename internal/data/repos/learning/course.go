package learning

import (
	"errors"

	"gorm.io/gorm"

	types "github.com/yungbote/coursehub-backend/internal/domain"
	"github.com/yungbote/coursehub-backend/internal/platform/dbctx"
	"github.com/yungbote/coursehub-backend/internal/platform/logger"
)

type CourseRepo interface {
	Create(dbc dbctx.Context, course *types.Course) (*types.Course, error)
	GetByID(dbc dbctx.Context, courseID int) (*types.Course, error)
	List(dbc dbctx.Context) ([]*types.Course, error)
}

type courseRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCourseRepo(db *gorm.DB, baseLog *logger.Logger) CourseRepo {
	repoLog := baseLog.With("repo", "CourseRepo")
	return &courseRepo{db: db, log: repoLog}
}

func (r *courseRepo) Create(dbc dbctx.Context, course *types.Course) (*types.Course, error) {
	if course == nil {
		return nil, errors.New("nil course")
	}
	if err := dbc.DB(r.db).Create(course).Error; err != nil {
		return nil, err
	}
	return course, nil
}

// GetByID returns (nil, nil) when no course has the id.
func (r *courseRepo) GetByID(dbc dbctx.Context, courseID int) (*types.Course, error) {
	var rows []*types.Course
	if err := dbc.DB(r.db).
		Where("course_id = ?", courseID).
		Limit(1).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// List orders by creation time. Rows created within the store's timestamp
// resolution fall back to course_id order.
func (r *courseRepo) List(dbc dbctx.Context) ([]*types.Course, error) {
	results := []*types.Course{}
	if err := dbc.DB(r.db).
		Order("created_at ASC").
		Order("course_id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
