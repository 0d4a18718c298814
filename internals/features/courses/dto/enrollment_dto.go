package dto

import (
	"time"

	"kampusku_backend/internals/features/courses/model"
)

type EnrollStudentRequest struct {
	StudentID uint `json:"studentId" validate:"required"`
}

// StudentPreview hanya membawa field yang dibaca frontend pada listing.
type StudentPreview struct {
	Nama string `json:"nama"`
}

// EnrolledStudentDTO = baris enrollment + nama mahasiswa terkait.
type EnrolledStudentDTO struct {
	ID        uint            `json:"id"`
	StudentID uint            `json:"studentId"`
	CourseID  uint            `json:"courseId"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
	Student   *StudentPreview `json:"Student,omitempty"`
}

func ToEnrolledStudentDTO(e model.EnrollmentModel) EnrolledStudentDTO {
	var student *StudentPreview
	if e.Student != nil {
		student = &StudentPreview{Nama: e.Student.Nama}
	}
	return EnrolledStudentDTO{
		ID:        e.ID,
		StudentID: e.StudentID,
		CourseID:  e.CourseID,
		Status:    e.Status,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
		Student:   student,
	}
}

func ToEnrolledStudentDTOs(enrollments []model.EnrollmentModel) []EnrolledStudentDTO {
	result := make([]EnrolledStudentDTO, 0, len(enrollments))
	for _, e := range enrollments {
		result = append(result, ToEnrolledStudentDTO(e))
	}
	return result
}
