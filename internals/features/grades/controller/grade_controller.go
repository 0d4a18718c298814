package controller

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/grades/dto"
	"kampusku_backend/internals/features/grades/service"
	helper "kampusku_backend/internals/helpers"
)

var validateGrade = validator.New()

type GradeController struct {
	Service service.GradeService
}

func NewGradeController(db *gorm.DB) *GradeController {
	return &GradeController{Service: service.NewGradeService(db)}
}

// =============================
// ✏️ Grade Student
// =============================
// courseId dari path, studentId dari query string, grade dari body.
func (ctrl *GradeController) GradeStudent(c *fiber.Ctx) error {
	courseID, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}

	var body dto.GradeStudentRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Harap isi studentId (query) dan grade (body)")
	}

	studentID, convErr := strconv.ParseUint(c.Query("studentId"), 10, 32)
	if convErr != nil || validateGrade.Struct(&body) != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Harap isi studentId (query) dan grade (body)")
	}

	grade, err := ctrl.Service.Upsert(courseID, uint(studentID), body.Grade)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(grade)
}

// =============================
// 📄 Get Grades By Course
// =============================
func (ctrl *GradeController) GetGradesByCourse(c *fiber.Ctx) error {
	courseID, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}

	grades, err := ctrl.Service.ByCourse(courseID)
	if err != nil {
		return err
	}
	return c.JSON(dto.ToCourseGradeDTOs(grades))
}
