package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"student-registry/app/domain"
	"student-registry/app/port"
	"student-registry/app/utils/validator"
)

// StudentHandler handles student record HTTP requests.
type StudentHandler struct {
	studentUsecase port.StudentUsecase
	validator      *validator.Validator
	logger         *slog.Logger
}

// NewStudentHandler creates a new student handler
func NewStudentHandler(studentUsecase port.StudentUsecase, logger *slog.Logger) *StudentHandler {
	return &StudentHandler{
		studentUsecase: studentUsecase,
		validator:      validator.New(),
		logger:         logger.With("component", "student_handler"),
	}
}

// studentRequest requires every field; create and update share the
// all-or-nothing contract.
type studentRequest struct {
	Name       string `json:"name" validate:"required"`
	Age        int    `json:"age" validate:"required,gt=0"`
	Gender     string `json:"gender" validate:"required"`
	Country    string `json:"country" validate:"required"`
	University string `json:"university" validate:"required"`
}

func (r *studentRequest) toInput() domain.StudentInput {
	return domain.StudentInput{
		Name:       r.Name,
		Age:        r.Age,
		Gender:     r.Gender,
		Country:    r.Country,
		University: r.University,
	}
}

// List handles GET /students.
func (h *StudentHandler) List(c echo.Context) error {
	students, err := h.studentUsecase.List(c.Request().Context())
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, students)
}

// Create handles POST /students.
func (h *StudentHandler) Create(c echo.Context) error {
	var req studentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := h.validator.Validate(&req); err != nil {
		return mapDomainError(err)
	}

	student, err := h.studentUsecase.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return mapDomainError(err)
	}

	return c.JSON(http.StatusCreated, student)
}

// Update handles PUT /students/:id.
func (h *StudentHandler) Update(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid student id")
	}

	var req studentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := h.validator.Validate(&req); err != nil {
		return mapDomainError(err)
	}

	student, err := h.studentUsecase.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return mapDomainError(err)
	}

	return c.JSON(http.StatusOK, student)
}

// Delete handles DELETE /students/:id.
func (h *StudentHandler) Delete(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid student id")
	}

	if err := h.studentUsecase.Delete(c.Request().Context(), id); err != nil {
		return mapDomainError(err)
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "student deleted"})
}

func parseID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}
