package testutil

import (
	"context"
	"fmt"
	"testing"

	"gorm.io/gorm"

	types "github.com/yungbote/coursehub-backend/internal/domain"
)

func SeedCourse(tb testing.TB, ctx context.Context, tx *gorm.DB, courseID int) *types.Course {
	tb.Helper()
	c := &types.Course{
		CourseID:       courseID,
		Title:          fmt.Sprintf("Course %d", courseID),
		Description:    fmt.Sprintf("Description %d", courseID),
		InstructorName: fmt.Sprintf("Instructor %d", courseID),
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed course: %v", err)
	}
	return c
}

func SeedLesson(tb testing.TB, ctx context.Context, tx *gorm.DB, courseID, lessonID int) *types.Lesson {
	tb.Helper()
	l := &types.Lesson{
		LessonID: lessonID,
		CourseID: courseID,
		Title:    fmt.Sprintf("Lesson %d", lessonID),
		Content:  "content",
	}
	if err := tx.WithContext(ctx).Create(l).Error; err != nil {
		tb.Fatalf("seed lesson: %v", err)
	}
	return l
}
