package model

import "time"

// StudentModel merepresentasikan mahasiswa yang bisa didaftarkan ke course.
// Nama field JSON mengikuti kontrak frontend (nama, tanggalLahir, jurusan).
type StudentModel struct {
	ID             uint       `gorm:"column:id;primaryKey" json:"id"`
	Nama           string     `gorm:"column:nama;type:varchar(255);not null" json:"nama"`
	Email          string     `gorm:"column:email;type:varchar(255);not null;uniqueIndex:idx_students_email" json:"email"`
	Password       string     `gorm:"column:password;type:varchar(255);not null" json:"password"`
	TanggalLahir   *time.Time `gorm:"column:tanggal_lahir" json:"tanggalLahir"`
	Jurusan        *string    `gorm:"column:jurusan;type:varchar(255)" json:"jurusan"`
	EnrollmentYear *int       `gorm:"column:enrollment_year" json:"enrollmentYear"`
	CreatedAt      time.Time  `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

// TableName sets the table name for StudentModel
func (StudentModel) TableName() string {
	return "students"
}
