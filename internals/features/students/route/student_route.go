package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/students/controller"
)

func StudentRoutes(api fiber.Router, db *gorm.DB) {
	studentCtrl := controller.NewStudentController(db)

	student := api.Group("/student")
	student.Post("/add-student", studentCtrl.CreateStudent)       // ➕ Tambah mahasiswa
	student.Put("/update-student/:id", studentCtrl.UpdateStudent) // 🔄 Perbarui mahasiswa
	student.Get("/", studentCtrl.GetAllStudents)                  // 📄 Semua mahasiswa
	student.Get("/:id", studentCtrl.GetStudentByID)               // 🔍 Detail mahasiswa
	student.Delete("/:id", studentCtrl.DeleteStudent)             // 🗑️ Hapus mahasiswa
}
