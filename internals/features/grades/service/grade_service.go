package service

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	courseModel "kampusku_backend/internals/features/courses/model"
	"kampusku_backend/internals/features/grades/model"
	studentModel "kampusku_backend/internals/features/students/model"
)

// Interface supaya gampang di-mock
type GradeService interface {
	Upsert(courseID, studentID uint, gradeValue string) (*model.GradeModel, error)
	ByCourse(courseID uint) ([]model.GradeModel, error)
}

type gradeSvc struct {
	db *gorm.DB
}

func NewGradeService(db *gorm.DB) GradeService {
	return &gradeSvc{db: db}
}

// Upsert menulis nilai untuk pasangan (studentID, courseID) dalam satu
// statement ON CONFLICT, sehingga pasangan yang sama selalu berakhir pada
// satu baris dengan nilai terakhir — tanpa celah lookup-then-write.
func (s *gradeSvc) Upsert(courseID, studentID uint, gradeValue string) (*model.GradeModel, error) {
	if err := s.ensureCourseExists(courseID); err != nil {
		return nil, err
	}
	if err := s.ensureStudentExists(studentID); err != nil {
		return nil, err
	}

	grade := model.GradeModel{
		CourseID:  courseID,
		StudentID: studentID,
		Grade:     gradeValue,
	}
	if err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "student_id"}, {Name: "course_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"grade":      gradeValue,
			"updated_at": time.Now(),
		}),
	}).Create(&grade).Error; err != nil {
		log.Printf("[GradeService] ERROR Upsert courseID=%d studentID=%d err=%v", courseID, studentID, err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	// Baca ulang agar id baris yang dipertahankan ikut terbawa saat update.
	var result model.GradeModel
	if err := s.db.Where("student_id = ? AND course_id = ?", studentID, courseID).
		First(&result).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return &result, nil
}

// ByCourse sengaja tidak memeriksa keberadaan course: course yang tidak
// dikenal menghasilkan list kosong, bukan error (sesuai kontrak frontend).
func (s *gradeSvc) ByCourse(courseID uint) ([]model.GradeModel, error) {
	var grades []model.GradeModel
	if err := s.db.Preload("Student").
		Where("course_id = ?", courseID).
		Find(&grades).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return grades, nil
}

func (s *gradeSvc) ensureStudentExists(studentID uint) error {
	var count int64
	if err := s.db.Model(&studentModel.StudentModel{}).
		Where("id = ?", studentID).
		Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if count == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Masukkan id mahasiswa yang valid")
	}
	return nil
}

func (s *gradeSvc) ensureCourseExists(courseID uint) error {
	var count int64
	if err := s.db.Model(&courseModel.CourseModel{}).
		Where("id = ?", courseID).
		Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if count == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Masukkan id course yang valid")
	}
	return nil
}
