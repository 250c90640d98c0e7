package learning

import "time"

// Lesson belongs to exactly one Course. CourseID is taken from the
// request path, never from the body.
type Lesson struct {
	LessonID int     `gorm:"column:lesson_id;primaryKey;autoIncrement:false" json:"lessonId" validate:"gt=0"`
	CourseID int     `gorm:"column:course_id;not null;index" json:"-"`
	Course   *Course `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	Title   string `gorm:"column:title;not null" json:"title" validate:"required"`
	Content string `gorm:"column:content;type:text" json:"content"`

	CreatedAt time.Time `gorm:"not null" json:"-"`
	UpdatedAt time.Time `gorm:"not null" json:"-"`
}

func (Lesson) TableName() string { return "lesson" }
