package learning

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/coursehub-backend/internal/domain"
	"github.com/yungbote/coursehub-backend/internal/platform/dbctx"
	"github.com/yungbote/coursehub-backend/internal/platform/logger"
)

type LessonRepo interface {
	Create(dbc dbctx.Context, lesson *types.Lesson) (*types.Lesson, error)
	GetByID(dbc dbctx.Context, lessonID int) (*types.Lesson, error)
}

type lessonRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLessonRepo(db *gorm.DB, baseLog *logger.Logger) LessonRepo {
	repoLog := baseLog.With("repo", "LessonRepo")
	return &lessonRepo{db: db, log: repoLog}
}

// Create inserts the lesson row only; the Course association is never
// upserted from here.
func (r *lessonRepo) Create(dbc dbctx.Context, lesson *types.Lesson) (*types.Lesson, error) {
	if lesson == nil {
		return nil, errors.New("nil lesson")
	}
	if err := dbc.DB(r.db).Omit(clause.Associations).Create(lesson).Error; err != nil {
		return nil, err
	}
	return lesson, nil
}

// GetByID returns (nil, nil) when no lesson has the id.
func (r *lessonRepo) GetByID(dbc dbctx.Context, lessonID int) (*types.Lesson, error) {
	var rows []*types.Lesson
	if err := dbc.DB(r.db).
		Where("lesson_id = ?", lessonID).
		Limit(1).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}
