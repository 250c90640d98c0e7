package learning

// CourseDetails is the slice of a Course inlined into lesson views.
type CourseDetails struct {
	CourseID       int    `json:"courseId"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	InstructorName string `json:"instructorName"`
}

// LessonWithCourse is a lesson with its owning course resolved inline.
type LessonWithCourse struct {
	LessonID int           `json:"lessonId"`
	Title    string        `json:"title"`
	Content  string        `json:"content"`
	Course   CourseDetails `json:"course"`
}

func NewLessonWithCourse(l *Lesson, c *Course) *LessonWithCourse {
	if l == nil || c == nil {
		return nil
	}
	return &LessonWithCourse{
		LessonID: l.LessonID,
		Title:    l.Title,
		Content:  l.Content,
		Course: CourseDetails{
			CourseID:       c.CourseID,
			Title:          c.Title,
			Description:    c.Description,
			InstructorName: c.InstructorName,
		},
	}
}
