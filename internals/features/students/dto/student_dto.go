package dto

import "time"

// ============================
// Create & Update Request DTO
// ============================

type CreateStudentRequest struct {
	Nama           string     `json:"nama" validate:"required"`
	Email          string     `json:"email" validate:"required,email"`
	Password       string     `json:"password" validate:"required"`
	TanggalLahir   *time.Time `json:"tanggalLahir"`
	Jurusan        *string    `json:"jurusan"`
	EnrollmentYear *int       `json:"enrollmentYear"`
}

// Field pointer: key yang tidak dikirim tidak mengubah kolom.
type UpdateStudentRequest struct {
	Nama           *string    `json:"nama" validate:"omitempty,min=1"`
	Email          *string    `json:"email" validate:"omitempty,email"`
	Password       *string    `json:"password" validate:"omitempty,min=1"`
	TanggalLahir   *time.Time `json:"tanggalLahir"`
	Jurusan        *string    `json:"jurusan"`
	EnrollmentYear *int       `json:"enrollmentYear"`
}

// ToUpdates menghasilkan map kolom→nilai untuk partial update.
func (r UpdateStudentRequest) ToUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Nama != nil {
		updates["nama"] = *r.Nama
	}
	if r.Email != nil {
		updates["email"] = *r.Email
	}
	if r.Password != nil {
		updates["password"] = *r.Password
	}
	if r.TanggalLahir != nil {
		updates["tanggal_lahir"] = *r.TanggalLahir
	}
	if r.Jurusan != nil {
		updates["jurusan"] = *r.Jurusan
	}
	if r.EnrollmentYear != nil {
		updates["enrollment_year"] = *r.EnrollmentYear
	}
	return updates
}
