package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/grades/controller"
)

func GradeRoutes(api fiber.Router, db *gorm.DB) {
	gradeCtrl := controller.NewGradeController(db)

	grade := api.Group("/grade")
	grade.Post("/:id", gradeCtrl.GradeStudent)     // ✏️ Nilai mahasiswa (courseId di path)
	grade.Get("/:id", gradeCtrl.GetGradesByCourse) // 📄 Nilai per course
}
