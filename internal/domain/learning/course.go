package learning

import "time"

// Course is the top-level catalog entry. CourseID is supplied by the
// caller and is never generated by the store.
type Course struct {
	CourseID       int    `gorm:"column:course_id;primaryKey;autoIncrement:false" json:"courseId" validate:"gt=0"`
	Title          string `gorm:"column:title;not null" json:"title" validate:"required"`
	Description    string `gorm:"column:description;type:text" json:"description"`
	InstructorName string `gorm:"column:instructor_name" json:"instructorName"`

	CreatedAt time.Time `gorm:"not null;index" json:"-"`
	UpdatedAt time.Time `gorm:"not null" json:"-"`
}

func (Course) TableName() string { return "course" }
