package service

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/students/dto"
	"kampusku_backend/internals/features/students/model"
)

// Interface supaya gampang di-mock
type StudentService interface {
	Create(req dto.CreateStudentRequest) (*model.StudentModel, error)
	FindAll() ([]model.StudentModel, error)
	FindByID(id uint) (*model.StudentModel, error)
	Update(id uint, req dto.UpdateStudentRequest) (*model.StudentModel, error)
	Delete(id uint) error
}

type studentSvc struct {
	db *gorm.DB
}

func NewStudentService(db *gorm.DB) StudentService {
	return &studentSvc{db: db}
}

func (s *studentSvc) Create(req dto.CreateStudentRequest) (*model.StudentModel, error) {
	var count int64
	if err := s.db.Model(&model.StudentModel{}).
		Where("email = ?", req.Email).
		Count(&count).Error; err != nil {
		log.Printf("[StudentService] ERROR Create cek email err=%v", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if count > 0 {
		return nil, fiber.NewError(fiber.StatusConflict, "Mahasiswa dengan email tersebut sudah terdaftar")
	}

	student := model.StudentModel{
		Nama:           req.Nama,
		Email:          req.Email,
		Password:       req.Password,
		TanggalLahir:   req.TanggalLahir,
		Jurusan:        req.Jurusan,
		EnrollmentYear: req.EnrollmentYear,
	}
	if err := s.db.Create(&student).Error; err != nil {
		// Index unik menutup celah race pada cek di atas.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fiber.NewError(fiber.StatusConflict, "Mahasiswa dengan email tersebut sudah terdaftar")
		}
		log.Printf("[StudentService] ERROR Create err=%v", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return &student, nil
}

func (s *studentSvc) FindAll() ([]model.StudentModel, error) {
	students := make([]model.StudentModel, 0)
	if err := s.db.Find(&students).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return students, nil
}

// FindByID mengembalikan nil (bukan error) saat id tidak ditemukan.
func (s *studentSvc) FindByID(id uint) (*model.StudentModel, error) {
	var student model.StudentModel
	if err := s.db.First(&student, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return &student, nil
}

func (s *studentSvc) Update(id uint, req dto.UpdateStudentRequest) (*model.StudentModel, error) {
	updates := req.ToUpdates()
	if len(updates) == 0 {
		// Body kosong tidak mengubah baris apa pun, sama seperti id tak dikenal.
		return nil, fiber.NewError(fiber.StatusNotFound,
			fmt.Sprintf("Tidak dapat memperbarui mahasiswa dengan id=%d.", id))
	}

	res := s.db.Model(&model.StudentModel{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return nil, fiber.NewError(fiber.StatusConflict, "Mahasiswa dengan email tersebut sudah terdaftar")
		}
		log.Printf("[StudentService] ERROR Update id=%d err=%v", id, res.Error)
		return nil, fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected != 1 {
		return nil, fiber.NewError(fiber.StatusNotFound,
			fmt.Sprintf("Tidak dapat memperbarui mahasiswa dengan id=%d.", id))
	}

	var student model.StudentModel
	if err := s.db.First(&student, id).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return &student, nil
}

func (s *studentSvc) Delete(id uint) error {
	res := s.db.Delete(&model.StudentModel{}, id)
	if res.Error != nil {
		log.Printf("[StudentService] ERROR Delete id=%d err=%v", id, res.Error)
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected != 1 {
		return fiber.NewError(fiber.StatusNotFound,
			fmt.Sprintf("Tidak dapat menghapus mahasiswa dengan id=%d.", id))
	}
	return nil
}
