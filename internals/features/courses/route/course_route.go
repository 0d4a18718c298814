package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/courses/controller"
)

func CourseRoutes(api fiber.Router, db *gorm.DB) {
	courseCtrl := controller.NewCourseController(db)

	course := api.Group("/course")
	course.Post("/add-course", courseCtrl.CreateCourse)        // ➕ Tambah course
	course.Put("/update-course/:id", courseCtrl.UpdateCourse)  // 🔄 Perbarui course
	course.Get("/", courseCtrl.GetAllCourses)                  // 📄 Semua course
	course.Get("/:id", courseCtrl.GetCourseByID)               // 🔍 Detail course
	course.Delete("/:id", courseCtrl.DeleteCourse)             // 🗑️ Hapus course

	// enrollment
	course.Post("/:id/enroll-student", courseCtrl.EnrollStudent)   // 🧑‍🎓 Daftarkan mahasiswa
	course.Get("/:id/students", courseCtrl.GetEnrolledStudents)    // 📄 Mahasiswa terdaftar
}
