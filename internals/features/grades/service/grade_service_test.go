package service

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	courseModel "kampusku_backend/internals/features/courses/model"
	"kampusku_backend/internals/features/grades/model"
	studentModel "kampusku_backend/internals/features/students/model"
)

func setupGradeTest(t *testing.T) (GradeService, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&studentModel.StudentModel{},
		&courseModel.CourseModel{},
		&model.GradeModel{},
	))

	return NewGradeService(db), db
}

func seedStudentAndCourse(t *testing.T, db *gorm.DB) (studentModel.StudentModel, courseModel.CourseModel) {
	t.Helper()
	student := studentModel.StudentModel{Nama: "Ana", Email: "ana@x.com", Password: "p"}
	require.NoError(t, db.Create(&student).Error)
	course := courseModel.CourseModel{Title: "CS101", Instructor: "Dr. X"}
	require.NoError(t, db.Create(&course).Error)
	return student, course
}

func TestGradeService_UpsertCreates(t *testing.T) {
	svc, db := setupGradeTest(t)
	student, course := seedStudentAndCourse(t, db)

	grade, err := svc.Upsert(course.ID, student.ID, "A")
	require.NoError(t, err)
	assert.Equal(t, "A", grade.Grade)
	assert.Equal(t, student.ID, grade.StudentID)
	assert.Equal(t, course.ID, grade.CourseID)
	assert.NotZero(t, grade.ID)
}

// Menilai pasangan yang sama dua kali menimpa nilai lama pada baris yang
// sama, bukan membuat baris kedua.
func TestGradeService_UpsertOverwrites(t *testing.T) {
	svc, db := setupGradeTest(t)
	student, course := seedStudentAndCourse(t, db)

	first, err := svc.Upsert(course.ID, student.ID, "A")
	require.NoError(t, err)

	second, err := svc.Upsert(course.ID, student.ID, "B")
	require.NoError(t, err)
	assert.Equal(t, "B", second.Grade)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&model.GradeModel{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestGradeService_UpsertUnknownIDs(t *testing.T) {
	svc, db := setupGradeTest(t)
	student, course := seedStudentAndCourse(t, db)

	var fe *fiber.Error

	_, err := svc.Upsert(999, student.ID, "A")
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	assert.Equal(t, "Masukkan id course yang valid", fe.Message)

	_, err = svc.Upsert(course.ID, 999, "A")
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	assert.Equal(t, "Masukkan id mahasiswa yang valid", fe.Message)
}

func TestGradeService_ByCourseJoinsStudent(t *testing.T) {
	svc, db := setupGradeTest(t)
	student, course := seedStudentAndCourse(t, db)

	_, err := svc.Upsert(course.ID, student.ID, "B")
	require.NoError(t, err)

	grades, err := svc.ByCourse(course.ID)
	require.NoError(t, err)
	require.Len(t, grades, 1)
	assert.Equal(t, "B", grades[0].Grade)
	require.NotNil(t, grades[0].Student)
	assert.Equal(t, "Ana", grades[0].Student.Nama)
	assert.Equal(t, "ana@x.com", grades[0].Student.Email)
}

// Course tak dikenal menghasilkan list kosong, bukan error.
func TestGradeService_ByCourseUnknownCourse(t *testing.T) {
	svc, _ := setupGradeTest(t)

	grades, err := svc.ByCourse(404)
	require.NoError(t, err)
	assert.Empty(t, grades)
}
