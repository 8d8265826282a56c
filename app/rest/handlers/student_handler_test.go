package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"student-registry/app/domain"
)

// mockStudentUsecase implements port.StudentUsecase for handler tests.
type mockStudentUsecase struct {
	students []domain.Student
	student  *domain.Student
	err      error

	createCalls int
	updatedID   int64
	deletedID   int64
}

func (m *mockStudentUsecase) List(_ context.Context) ([]domain.Student, error) {
	return m.students, m.err
}

func (m *mockStudentUsecase) Create(_ context.Context, input domain.StudentInput) (*domain.Student, error) {
	m.createCalls++
	return m.student, m.err
}

func (m *mockStudentUsecase) Update(_ context.Context, id int64, input domain.StudentInput) (*domain.Student, error) {
	m.updatedID = id
	return m.student, m.err
}

func (m *mockStudentUsecase) Delete(_ context.Context, id int64) error {
	m.deletedID = id
	return m.err
}

func newStudentTestServer(uc *mockStudentUsecase) *echo.Echo {
	e := echo.New()
	h := NewStudentHandler(uc, testLogger())
	e.GET("/students", h.List)
	e.POST("/students", h.Create)
	e.PUT("/students/:id", h.Update)
	e.DELETE("/students/:id", h.Delete)
	return e
}

const validStudentBody = `{"name":"Ana","age":21,"gender":"female","country":"Portugal","university":"Lisbon"}`

func TestStudentList(t *testing.T) {
	uc := &mockStudentUsecase{students: []domain.Student{
		{ID: 1, Name: "Ana", Age: 21, Gender: "female", Country: "Portugal", University: "Lisbon"},
	}}
	e := newStudentTestServer(uc)

	rec := doJSON(e, http.MethodGet, "/students", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Ana"`)
}

func TestStudentCreate(t *testing.T) {
	uc := &mockStudentUsecase{student: &domain.Student{
		ID: 1, Name: "Ana", Age: 21, Gender: "female", Country: "Portugal", University: "Lisbon",
	}}
	e := newStudentTestServer(uc)

	rec := doJSON(e, http.MethodPost, "/students", validStudentBody)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":1`)
}

func TestStudentCreate_MissingFieldRejected(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing name", body: `{"age":21,"gender":"female","country":"Portugal","university":"Lisbon"}`},
		{name: "missing age", body: `{"name":"Ana","gender":"female","country":"Portugal","university":"Lisbon"}`},
		{name: "missing university", body: `{"name":"Ana","age":21,"gender":"female","country":"Portugal"}`},
		{name: "zero age", body: `{"name":"Ana","age":0,"gender":"female","country":"Portugal","university":"Lisbon"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockStudentUsecase{}
			e := newStudentTestServer(uc)

			rec := doJSON(e, http.MethodPost, "/students", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Zero(t, uc.createCalls, "all fields are required before the store is touched")
		})
	}
}

func TestStudentUpdate(t *testing.T) {
	uc := &mockStudentUsecase{student: &domain.Student{
		ID: 7, Name: "Ana", Age: 22, Gender: "female", Country: "Portugal", University: "Porto",
	}}
	e := newStudentTestServer(uc)

	rec := doJSON(e, http.MethodPut, "/students/7", validStudentBody)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), uc.updatedID)
}

func TestStudentUpdate_RequiresAllFields(t *testing.T) {
	uc := &mockStudentUsecase{}
	e := newStudentTestServer(uc)

	// Partial updates are rejected; PUT replaces the whole record.
	rec := doJSON(e, http.MethodPut, "/students/7", `{"name":"Ana"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStudentUpdate_NotFound(t *testing.T) {
	uc := &mockStudentUsecase{err: domain.ErrStudentNotFound}
	e := newStudentTestServer(uc)

	rec := doJSON(e, http.MethodPut, "/students/999", validStudentBody)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStudentUpdate_InvalidID(t *testing.T) {
	e := newStudentTestServer(&mockStudentUsecase{})

	rec := doJSON(e, http.MethodPut, "/students/abc", validStudentBody)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStudentDelete(t *testing.T) {
	uc := &mockStudentUsecase{}
	e := newStudentTestServer(uc)

	rec := doJSON(e, http.MethodDelete, "/students/7", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), uc.deletedID)
	assert.JSONEq(t, `{"message":"student deleted"}`, rec.Body.String())
}

func TestStudentDelete_NotFound(t *testing.T) {
	uc := &mockStudentUsecase{err: domain.ErrStudentNotFound}
	e := newStudentTestServer(uc)

	rec := doJSON(e, http.MethodDelete, "/students/999", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStudentList_StoreError(t *testing.T) {
	uc := &mockStudentUsecase{err: domain.ErrStore}
	e := newStudentTestServer(uc)

	rec := doJSON(e, http.MethodGet, "/students", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
