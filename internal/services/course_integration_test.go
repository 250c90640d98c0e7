package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/yungbote/coursehub-backend/internal/data/repos"
	"github.com/yungbote/coursehub-backend/internal/data/repos/testutil"
	"github.com/yungbote/coursehub-backend/internal/platform/dbctx"
)

func TestCourseServiceAgainstSQLite(t *testing.T) {
	db := testutil.DB(t)
	log := testutil.Logger(t)
	svc := NewCourseService(log, repos.NewCourseRepo(db, log), repos.NewLessonRepo(db, log))
	dbc := dbctx.With(context.Background())

	if _, err := svc.CreateCourse(dbc, testCourse()); err != nil {
		t.Fatalf("CreateCourse: %v", err)
	}
	_, err := svc.CreateCourse(dbc, testCourse())
	requireAPIErr(t, err, http.StatusConflict, "course_exists")

	ok, err := svc.CreateLesson(dbc, 1, testLesson())
	if err != nil || !ok {
		t.Fatalf("CreateLesson: ok=%v err=%v", ok, err)
	}
	_, err = svc.CreateLesson(dbc, 2, testLesson())
	requireAPIErr(t, err, http.StatusNotFound, "course_not_found")

	view, err := svc.GetLessonWithCourseDetails(dbc, 1)
	if err != nil {
		t.Fatalf("GetLessonWithCourseDetails: %v", err)
	}
	if view.Title != "Test Lesson" || view.Course.Title != "Test Course" {
		t.Fatalf("unexpected view: %+v", view)
	}

	courses, err := svc.ListCourses(dbc)
	if err != nil || len(courses) != 1 {
		t.Fatalf("ListCourses: err=%v len=%d", err, len(courses))
	}
}
