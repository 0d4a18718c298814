package controller

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/courses/dto"
	"kampusku_backend/internals/features/courses/service"
	helper "kampusku_backend/internals/helpers"
)

var validateCourse = validator.New()

type CourseController struct {
	Service service.CourseService
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{Service: service.NewCourseService(db)}
}

// =============================
// ➕ Create Course
// =============================
func (ctrl *CourseController) CreateCourse(c *fiber.Ctx) error {
	var body dto.CreateCourseRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCourse.Struct(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Title dan instructor harus diisi")
	}

	course, err := ctrl.Service.Create(body)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(course)
}

// =============================
// 🔄 Update Course
// =============================
func (ctrl *CourseController) UpdateCourse(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}

	var body dto.UpdateCourseRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCourse.Struct(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Data course tidak valid")
	}

	course, err := ctrl.Service.Update(id, body)
	if err != nil {
		return err
	}
	return c.JSON(course)
}

// =============================
// 📄 Get All Courses
// =============================
func (ctrl *CourseController) GetAllCourses(c *fiber.Ctx) error {
	courses, err := ctrl.Service.FindAll()
	if err != nil {
		return err
	}
	return c.JSON(courses)
}

// =============================
// 🔍 Get Course By ID
// =============================
func (ctrl *CourseController) GetCourseByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}

	course, err := ctrl.Service.FindByID(id)
	if err != nil {
		return err
	}
	if course == nil {
		return helper.JsonError(c, fiber.StatusNotFound,
			fmt.Sprintf("Course dengan id=%d tidak ditemukan", id))
	}
	return c.JSON(course)
}

// =============================
// 🗑️ Delete Course
// =============================
func (ctrl *CourseController) DeleteCourse(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := ctrl.Service.Delete(id); err != nil {
		return err
	}
	return helper.JsonMessage(c, fiber.StatusOK, "Successful")
}

// =============================
// 🧑‍🎓 Enroll Student
// =============================
func (ctrl *CourseController) EnrollStudent(c *fiber.Ctx) error {
	courseID, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}

	var body dto.EnrollStudentRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCourse.Struct(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Masukkan id mahasiswa yang valid")
	}

	enrollment, err := ctrl.Service.Enroll(courseID, body.StudentID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(enrollment)
}

// =============================
// 📄 Get Enrolled Students
// =============================
func (ctrl *CourseController) GetEnrolledStudents(c *fiber.Ctx) error {
	courseID, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return err
	}

	enrollments, err := ctrl.Service.EnrolledStudents(courseID)
	if err != nil {
		return err
	}
	return c.JSON(dto.ToEnrolledStudentDTOs(enrollments))
}
