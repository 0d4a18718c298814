package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseRoute "kampusku_backend/internals/features/courses/route"
	gradeRoute "kampusku_backend/internals/features/grades/route"
	studentRoute "kampusku_backend/internals/features/students/route"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api/v1")

	log.Println("[INFO] Mounting Student routes...")
	studentRoute.StudentRoutes(api, db)

	log.Println("[INFO] Mounting Course routes...")
	courseRoute.CourseRoutes(api, db)

	log.Println("[INFO] Mounting Grade routes...")
	gradeRoute.GradeRoutes(api, db)
}
