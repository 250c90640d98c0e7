package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	types "github.com/yungbote/coursehub-backend/internal/domain"
	"github.com/yungbote/coursehub-backend/internal/platform/dbctx"
	"github.com/yungbote/coursehub-backend/internal/platform/logger"
)

type Catalog struct {
	Courses []CourseEntry `yaml:"courses"`
}

type CourseEntry struct {
	CourseID       int           `yaml:"courseId"`
	Title          string        `yaml:"title"`
	Description    string        `yaml:"description"`
	InstructorName string        `yaml:"instructorName"`
	Lessons        []LessonEntry `yaml:"lessons"`
}

type LessonEntry struct {
	LessonID int    `yaml:"lessonId"`
	Title    string `yaml:"title"`
	Content  string `yaml:"content"`
}

// Creator is the subset of the course service used to apply a catalog.
type Creator interface {
	CreateCourse(dbc dbctx.Context, course *types.Course) (*types.Course, error)
	CreateLesson(dbc dbctx.Context, courseID int, lesson *types.Lesson) (bool, error)
}

// Load decodes a YAML catalog. Unknown keys are rejected.
func Load(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var cat Catalog
	if err := dec.Decode(&cat); err != nil {
		if errors.Is(err, io.EOF) {
			return &cat, nil
		}
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return &cat, nil
}

func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Apply creates every course and lesson of cat in one transaction. Any
// failure rolls the whole catalog back.
func Apply(ctx context.Context, db *gorm.DB, svc Creator, cat *Catalog, log *logger.Logger) error {
	if cat == nil {
		return nil
	}
	if log == nil {
		log = logger.Nop()
	}
	log = log.With("component", "Seed")

	lessons := 0
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		for _, ce := range cat.Courses {
			course := &types.Course{
				CourseID:       ce.CourseID,
				Title:          ce.Title,
				Description:    ce.Description,
				InstructorName: ce.InstructorName,
			}
			if _, err := svc.CreateCourse(dbc, course); err != nil {
				return fmt.Errorf("course %d: %w", ce.CourseID, err)
			}
			for _, le := range ce.Lessons {
				lesson := &types.Lesson{LessonID: le.LessonID, Title: le.Title, Content: le.Content}
				if _, err := svc.CreateLesson(dbc, ce.CourseID, lesson); err != nil {
					return fmt.Errorf("course %d lesson %d: %w", ce.CourseID, le.LessonID, err)
				}
				lessons++
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	log.Info("Catalog applied", "courses", len(cat.Courses), "lessons", lessons)
	return nil
}
