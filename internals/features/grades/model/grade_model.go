package model

import (
	"time"

	studentModel "kampusku_backend/internals/features/students/model"
)

// GradeModel menyimpan satu nilai per pasangan (student_id, course_id).
// Index unik menjaga invariannya di level DB, bukan hanya di aplikasi.
type GradeModel struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	StudentID uint      `gorm:"column:student_id;not null;uniqueIndex:idx_grades_student_course" json:"studentId"`
	CourseID  uint      `gorm:"column:course_id;not null;uniqueIndex:idx_grades_student_course" json:"courseId"`
	Grade     string    `gorm:"column:grade;type:varchar(16);not null" json:"grade"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`

	Student *studentModel.StudentModel `gorm:"foreignKey:StudentID" json:"-"`
}

// TableName sets the table name for GradeModel
func (GradeModel) TableName() string {
	return "grades"
}
