package domain

import "github.com/yungbote/coursehub-backend/internal/domain/learning"

type Course = learning.Course
type Lesson = learning.Lesson

type CourseDetails = learning.CourseDetails
type LessonWithCourse = learning.LessonWithCourse

var NewLessonWithCourse = learning.NewLessonWithCourse

// Models lists every table managed by AutoMigrate, parents first.
func Models() []interface{} {
	return []interface{}{
		&Course{},
		&Lesson{},
	}
}
