package service

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/courses/dto"
	"kampusku_backend/internals/features/courses/model"
	studentModel "kampusku_backend/internals/features/students/model"
)

// Interface supaya gampang di-mock
type CourseService interface {
	Create(req dto.CreateCourseRequest) (*model.CourseModel, error)
	FindAll() ([]model.CourseModel, error)
	FindByID(id uint) (*model.CourseModel, error)
	Update(id uint, req dto.UpdateCourseRequest) (*model.CourseModel, error)
	Delete(id uint) error
	Enroll(courseID, studentID uint) (*model.EnrollmentModel, error)
	EnrolledStudents(courseID uint) ([]model.EnrollmentModel, error)
}

type courseSvc struct {
	db *gorm.DB
}

func NewCourseService(db *gorm.DB) CourseService {
	return &courseSvc{db: db}
}

func (s *courseSvc) Create(req dto.CreateCourseRequest) (*model.CourseModel, error) {
	course := model.CourseModel{
		Title:       req.Title,
		Description: req.Description,
		Instructor:  req.Instructor,
	}
	if err := s.db.Create(&course).Error; err != nil {
		log.Printf("[CourseService] ERROR Create err=%v", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return &course, nil
}

func (s *courseSvc) FindAll() ([]model.CourseModel, error) {
	courses := make([]model.CourseModel, 0)
	if err := s.db.Find(&courses).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return courses, nil
}

// FindByID mengembalikan nil (bukan error) saat id tidak ditemukan.
func (s *courseSvc) FindByID(id uint) (*model.CourseModel, error) {
	var course model.CourseModel
	if err := s.db.First(&course, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return &course, nil
}

func (s *courseSvc) Update(id uint, req dto.UpdateCourseRequest) (*model.CourseModel, error) {
	updates := req.ToUpdates()
	if len(updates) == 0 {
		return nil, fiber.NewError(fiber.StatusNotFound,
			fmt.Sprintf("Tidak dapat memperbarui course dengan id=%d.", id))
	}

	res := s.db.Model(&model.CourseModel{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		log.Printf("[CourseService] ERROR Update id=%d err=%v", id, res.Error)
		return nil, fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected != 1 {
		return nil, fiber.NewError(fiber.StatusNotFound,
			fmt.Sprintf("Tidak dapat memperbarui course dengan id=%d.", id))
	}

	var course model.CourseModel
	if err := s.db.First(&course, id).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return &course, nil
}

func (s *courseSvc) Delete(id uint) error {
	res := s.db.Delete(&model.CourseModel{}, id)
	if res.Error != nil {
		log.Printf("[CourseService] ERROR Delete id=%d err=%v", id, res.Error)
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected != 1 {
		return fiber.NewError(fiber.StatusNotFound,
			fmt.Sprintf("Tidak dapat menghapus course dengan id=%d.", id))
	}
	return nil
}

// Enroll mendaftarkan mahasiswa ke course. Tidak idempoten: pemanggilan
// berulang membuat baris enrollment tambahan.
func (s *courseSvc) Enroll(courseID, studentID uint) (*model.EnrollmentModel, error) {
	if err := s.ensureStudentExists(studentID); err != nil {
		return nil, err
	}
	if err := s.ensureCourseExists(courseID); err != nil {
		return nil, err
	}

	enrollment := model.EnrollmentModel{
		CourseID:  courseID,
		StudentID: studentID,
		Status:    model.StatusEnrolled,
	}
	if err := s.db.Create(&enrollment).Error; err != nil {
		log.Printf("[CourseService] ERROR Enroll courseID=%d studentID=%d err=%v", courseID, studentID, err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return &enrollment, nil
}

func (s *courseSvc) EnrolledStudents(courseID uint) ([]model.EnrollmentModel, error) {
	if err := s.ensureCourseExists(courseID); err != nil {
		return nil, err
	}

	var enrollments []model.EnrollmentModel
	if err := s.db.Preload("Student").
		Where("course_id = ?", courseID).
		Find(&enrollments).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return enrollments, nil
}

func (s *courseSvc) ensureStudentExists(studentID uint) error {
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

func (s *courseSvc) ensureCourseExists(courseID uint) error {
	var count int64
	if err := s.db.Model(&model.CourseModel{}).
		Where("id = ?", courseID).
		Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if count == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Masukkan id course yang valid")
	}
	return nil
}
