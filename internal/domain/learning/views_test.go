package learning

import (
	"encoding/json"
	"testing"
)

func TestNewLessonWithCourseInlinesCourse(t *testing.T) {
	l := &Lesson{LessonID: 1, CourseID: 1, Title: "Test Lesson", Content: "Test Content"}
	c := &Course{CourseID: 1, Title: "Test Course", Description: "Test Description", InstructorName: "Test Instructor"}

	view := NewLessonWithCourse(l, c)
	if view == nil {
		t.Fatal("expected view")
	}
	raw, err := json.Marshal(view)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"lessonId":1,"title":"Test Lesson","content":"Test Content","course":{"courseId":1,"title":"Test Course","description":"Test Description","instructorName":"Test Instructor"}}`
	if string(raw) != want {
		t.Fatalf("unexpected json:\n got=%s\nwant=%s", raw, want)
	}
}

func TestNewLessonWithCourseNilInputs(t *testing.T) {
	if NewLessonWithCourse(nil, &Course{}) != nil {
		t.Fatal("expected nil for nil lesson")
	}
	if NewLessonWithCourse(&Lesson{}, nil) != nil {
		t.Fatal("expected nil for nil course")
	}
}

func TestCourseJSONHidesTimestamps(t *testing.T) {
	raw, err := json.Marshal(Course{CourseID: 2, Title: "Course 2", Description: "Description 2", InstructorName: "Instructor 2"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"courseId":2,"title":"Course 2","description":"Description 2","instructorName":"Instructor 2"}`
	if string(raw) != want {
		t.Fatalf("unexpected json: %s", raw)
	}
}
