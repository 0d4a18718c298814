package dto

import (
	"time"

	"kampusku_backend/internals/features/grades/model"
)

type GradeStudentRequest struct {
	Grade string `json:"grade" validate:"required"`
}

type StudentPreview struct {
	Nama  string `json:"nama"`
	Email string `json:"email"`
}

// CourseGradeDTO = baris nilai + nama & email mahasiswa terkait.
type CourseGradeDTO struct {
	ID        uint            `json:"id"`
	StudentID uint            `json:"studentId"`
	CourseID  uint            `json:"courseId"`
	Grade     string          `json:"grade"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
	Student   *StudentPreview `json:"Student,omitempty"`
}

func ToCourseGradeDTO(g model.GradeModel) CourseGradeDTO {
	var student *StudentPreview
	if g.Student != nil {
		student = &StudentPreview{Nama: g.Student.Nama, Email: g.Student.Email}
	}
	return CourseGradeDTO{
		ID:        g.ID,
		StudentID: g.StudentID,
		CourseID:  g.CourseID,
		Grade:     g.Grade,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
		Student:   student,
	}
}

func ToCourseGradeDTOs(grades []model.GradeModel) []CourseGradeDTO {
	result := make([]CourseGradeDTO, 0, len(grades))
	for _, g := range grades {
		result = append(result, ToCourseGradeDTO(g))
	}
	return result
}
