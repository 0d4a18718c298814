package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	courseModel "kampusku_backend/internals/features/courses/model"
	gradeModel "kampusku_backend/internals/features/grades/model"
	studentModel "kampusku_backend/internals/features/students/model"
	helper "kampusku_backend/internals/helpers"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&studentModel.StudentModel{},
		&courseModel.CourseModel{},
		&courseModel.EnrollmentModel{},
		&gradeModel.GradeModel{},
	))

	// Codec sama dengan main.go supaya serialisasi sonic ikut teruji.
	app := fiber.New(fiber.Config{
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		ErrorHandler: helper.FiberErrorHandler,
	})
	SetupRoutes(app, db)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target string, payload any) (*http.Response, map[string]any) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, target, body)
	require.NoError(t, err)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func doJSONList(t *testing.T, app *fiber.App, target string) (*http.Response, []map[string]any) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, target, nil)
	require.NoError(t, err)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	return resp, decoded
}

func TestStudentEndpoints(t *testing.T) {
	app := setupApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/v1/student/add-student", fiber.Map{
		"nama":     "Ana",
		"email":    "ana@x.com",
		"password": "p",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Ana", body["nama"])
	assert.Equal(t, "ana@x.com", body["email"])
	id := body["id"].(float64)

	// field wajib hilang → 400 dengan pesan asli
	resp, body = doJSON(t, app, http.MethodPost, "/api/v1/student/add-student", fiber.Map{
		"nama": "Tanpa Email",
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Nama, email, dan password harus diisi", body["message"])

	// email kembar → 409
	resp, _ = doJSON(t, app, http.MethodPost, "/api/v1/student/add-student", fiber.Map{
		"nama":     "Ana Kedua",
		"email":    "ana@x.com",
		"password": "q",
	})
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)

	resp, body = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/v1/student/%.0f", id), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Ana", body["nama"])

	resp, _ = doJSON(t, app, http.MethodGet, "/api/v1/student/999", nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, body = doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/v1/student/update-student/%.0f", id), fiber.Map{
		"jurusan": "Informatika",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Informatika", body["jurusan"])
	assert.Equal(t, "Ana", body["nama"])

	resp, _ = doJSON(t, app, http.MethodPut, "/api/v1/student/update-student/999", fiber.Map{
		"jurusan": "Informatika",
	})
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// body kosong tidak mengubah apa pun → 404 juga untuk id yang ada
	resp, _ = doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/v1/student/update-student/%.0f", id), fiber.Map{})
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// field update yang tidak lolos validasi → 400 dengan pesan tetap
	resp, body = doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/v1/student/update-student/%.0f", id), fiber.Map{
		"email": "bukan-email",
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Data mahasiswa tidak valid", body["message"])

	resp, body = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/v1/student/%.0f", id), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Successful", body["message"])

	resp, _ = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/v1/student/%.0f", id), nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCourseAndEnrollmentEndpoints(t *testing.T) {
	app := setupApp(t)

	_, student := doJSON(t, app, http.MethodPost, "/api/v1/student/add-student", fiber.Map{
		"nama":     "Ana",
		"email":    "ana@x.com",
		"password": "p",
	})
	studentID := student["id"].(float64)

	resp, course := doJSON(t, app, http.MethodPost, "/api/v1/course/add-course", fiber.Map{
		"title":      "CS101",
		"instructor": "Dr. X",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	courseID := course["id"].(float64)

	resp, body := doJSON(t, app, http.MethodPost, "/api/v1/course/add-course", fiber.Map{
		"title": "Tanpa Instructor",
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Title dan instructor harus diisi", body["message"])

	resp, body = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/v1/course/%.0f/enroll-student", courseID), fiber.Map{
		"studentId": studentID,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Enrolled", body["status"])

	// studentId tak dikenal → 400
	resp, body = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/v1/course/%.0f/enroll-student", courseID), fiber.Map{
		"studentId": 999,
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Masukkan id mahasiswa yang valid", body["message"])

	// daftar ulang diperbolehkan → dua baris
	resp, _ = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/v1/course/%.0f/enroll-student", courseID), fiber.Map{
		"studentId": studentID,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, enrolled := doJSONList(t, app, fmt.Sprintf("/api/v1/course/%.0f/students", courseID))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Len(t, enrolled, 2)
	nested := enrolled[0]["Student"].(map[string]any)
	assert.Equal(t, "Ana", nested["nama"])
	_, hasEmail := nested["email"]
	assert.False(t, hasEmail) // listing hanya membawa nama
}

func TestGradeEndpoints(t *testing.T) {
	app := setupApp(t)

	_, student := doJSON(t, app, http.MethodPost, "/api/v1/student/add-student", fiber.Map{
		"nama":     "Ana",
		"email":    "ana@x.com",
		"password": "p",
	})
	studentID := student["id"].(float64)

	_, course := doJSON(t, app, http.MethodPost, "/api/v1/course/add-course", fiber.Map{
		"title":      "CS101",
		"instructor": "Dr. X",
	})
	courseID := course["id"].(float64)

	gradeURL := fmt.Sprintf("/api/v1/grade/%.0f?studentId=%.0f", courseID, studentID)

	resp, body := doJSON(t, app, http.MethodPost, gradeURL, fiber.Map{"grade": "A"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "A", body["grade"])

	// nilai kedua menimpa baris yang sama
	resp, body = doJSON(t, app, http.MethodPost, gradeURL, fiber.Map{"grade": "B"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "B", body["grade"])

	resp, grades := doJSONList(t, app, fmt.Sprintf("/api/v1/grade/%.0f", courseID))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Len(t, grades, 1)
	assert.Equal(t, "B", grades[0]["grade"])
	nested := grades[0]["Student"].(map[string]any)
	assert.Equal(t, "Ana", nested["nama"])
	assert.Equal(t, "ana@x.com", nested["email"])

	// studentId hilang → 400 dengan pesan asli
	resp, body = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/v1/grade/%.0f", courseID), fiber.Map{"grade": "A"})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Harap isi studentId (query) dan grade (body)", body["message"])

	// course tak dikenal pada listing → list kosong, bukan error
	resp, grades = doJSONList(t, app, "/api/v1/grade/999")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, grades)
}
