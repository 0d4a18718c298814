package controller

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/students/dto"
	"kampusku_backend/internals/features/students/service"
	helper "kampusku_backend/internals/helpers"
)

var validateStudent = validator.New()

type StudentController struct {
	Service service.StudentService
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{Service: service.NewStudentService(db)}
}

// =============================
// ➕ Create Student
// =============================
func (ctrl *StudentController) CreateStudent(c *fiber.Ctx) error {
	var body dto.CreateStudentRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateStudent.Struct(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Nama, email, dan password harus diisi")
	}

	student, err := ctrl.Service.Create(body)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(student)
}

// =============================
// 🔄 Update Student
// =============================
func (ctrl *StudentController) UpdateStudent(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}

	var body dto.UpdateStudentRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateStudent.Struct(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Data mahasiswa tidak valid")
	}

	student, err := ctrl.Service.Update(id, body)
	if err != nil {
		return err
	}
	return c.JSON(student)
}

// =============================
// 📄 Get All Students
// =============================
func (ctrl *StudentController) GetAllStudents(c *fiber.Ctx) error {
	students, err := ctrl.Service.FindAll()
	if err != nil {
		return err
	}
	return c.JSON(students)
}

// =============================
// 🔍 Get Student By ID
// =============================
func (ctrl *StudentController) GetStudentByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}

	student, err := ctrl.Service.FindByID(id)
	if err != nil {
		return err
	}
	if student == nil {
		return helper.JsonError(c, fiber.StatusNotFound,
			fmt.Sprintf("Mahasiswa dengan id=%d tidak ditemukan", id))
	}
	return c.JSON(student)
}

// =============================
// 🗑️ Delete Student
// =============================
func (ctrl *StudentController) DeleteStudent(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := ctrl.Service.Delete(id); err != nil {
		return err
	}
	return helper.JsonMessage(c, fiber.StatusOK, "Successful")
}
