package model

import (
	"time"

	studentModel "kampusku_backend/internals/features/students/model"
)

// StatusEnrolled adalah status default saat mahasiswa didaftarkan ke course.
const StatusEnrolled = "Enrolled"

// EnrollmentModel menghubungkan satu mahasiswa dengan satu course.
// Tidak ada constraint unik: daftar ulang membuat baris baru (sesuai kontrak).
type EnrollmentModel struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	StudentID uint      `gorm:"column:student_id;index;not null" json:"studentId"`
	CourseID  uint      `gorm:"column:course_id;index;not null" json:"courseId"`
	Status    string    `gorm:"column:status;type:varchar(32);not null;default:'Enrolled'" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`

	// Diisi lewat Preload saat listing; bentuk JSON-nya diatur di dto.
	Student *studentModel.StudentModel `gorm:"foreignKey:StudentID" json:"-"`
}

// TableName sets the table name for EnrollmentModel
func (EnrollmentModel) TableName() string {
	return "enrollments"
}
