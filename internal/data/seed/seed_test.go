package seed

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yungbote/coursehub-backend/internal/data/repos"
	"github.com/yungbote/coursehub-backend/internal/data/repos/testutil"
	"github.com/yungbote/coursehub-backend/internal/platform/apierr"
	"github.com/yungbote/coursehub-backend/internal/platform/dbctx"
	"github.com/yungbote/coursehub-backend/internal/services"
)

const catalogYAML = `
courses:
  - courseId: 1
    title: Test Course
    description: Test Description
    instructorName: Test Instructor
    lessons:
      - lessonId: 1
        title: Test Lesson
        content: Test Content
      - lessonId: 2
        title: Second Lesson
  - courseId: 2
    title: Empty Course
`

func TestLoad(t *testing.T) {
	cat, err := Load(strings.NewReader(catalogYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cat.Courses) != 2 || len(cat.Courses[0].Lessons) != 2 {
		t.Fatalf("unexpected catalog: %+v", cat)
	}
	if cat.Courses[0].InstructorName != "Test Instructor" || cat.Courses[0].Lessons[1].Title != "Second Lesson" {
		t.Fatalf("unexpected fields: %+v", cat.Courses[0])
	}

	if _, err := Load(strings.NewReader("courses:\n  - courseId: 1\n    mentor: x\n")); err == nil {
		t.Fatal("expected unknown-field error")
	}

	empty, err := Load(strings.NewReader(""))
	if err != nil || len(empty.Courses) != 0 {
		t.Fatalf("empty input: cat=%+v err=%v", empty, err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(catalogYAML), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	cat, err := LoadFile(path)
	if err != nil || len(cat.Courses) != 2 {
		t.Fatalf("LoadFile: cat=%+v err=%v", cat, err)
	}
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestApplyCreatesCatalog(t *testing.T) {
	db := testutil.DB(t)
	log := testutil.Logger(t)
	svc := services.NewCourseService(log, repos.NewCourseRepo(db, log), repos.NewLessonRepo(db, log))
	cat, err := Load(strings.NewReader(catalogYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if err := Apply(context.Background(), db, svc, cat, log); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	dbc := dbctx.With(context.Background())
	courses, err := svc.ListCourses(dbc)
	if err != nil || len(courses) != 2 {
		t.Fatalf("ListCourses: len=%d err=%v", len(courses), err)
	}
	view, err := svc.GetLessonWithCourseDetails(dbc, 2)
	if err != nil {
		t.Fatalf("GetLessonWithCourseDetails: %v", err)
	}
	if view.Title != "Second Lesson" || view.Course.CourseID != 1 {
		t.Fatalf("unexpected view: %+v", view)
	}
}

func TestApplyRollsBackOnFailure(t *testing.T) {
	db := testutil.DB(t)
	log := testutil.Logger(t)
	svc := services.NewCourseService(log, repos.NewCourseRepo(db, log), repos.NewLessonRepo(db, log))

	// Lesson 1 appears twice, so the second course fails after the first succeeded.
	cat := &Catalog{Courses: []CourseEntry{
		{CourseID: 1, Title: "A", Lessons: []LessonEntry{{LessonID: 1, Title: "a1"}}},
		{CourseID: 2, Title: "B", Lessons: []LessonEntry{{LessonID: 1, Title: "b1"}}},
	}}
	err := Apply(context.Background(), db, svc, cat, log)
	var ae *apierr.Error
	if !errors.As(err, &ae) || ae.Status != http.StatusConflict || ae.Code != "lesson_exists" {
		t.Fatalf("expected lesson_exists conflict, got %v", err)
	}

	courses, err := svc.ListCourses(dbctx.With(context.Background()))
	if err != nil {
		t.Fatalf("ListCourses: %v", err)
	}
	if len(courses) != 0 {
		t.Fatalf("expected rollback, found %d courses", len(courses))
	}
}
