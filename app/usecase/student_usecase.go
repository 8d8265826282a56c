package usecase

import (
	"context"
	"log/slog"

	"student-registry/app/domain"
	"student-registry/app/port"
)

// StudentUsecase implements student record business logic.
// The operations are direct store pass-throughs; field presence is
// enforced at the handler boundary before this layer is reached.
type StudentUsecase struct {
	students port.StudentRepository
	logger   *slog.Logger
}

// NewStudentUsecase creates a new StudentUsecase instance
func NewStudentUsecase(students port.StudentRepository, logger *slog.Logger) *StudentUsecase {
	return &StudentUsecase{
		students: students,
		logger:   logger.With("component", "student_usecase"),
	}
}

// List returns all student records.
func (uc *StudentUsecase) List(ctx context.Context) ([]domain.Student, error) {
	return uc.students.List(ctx)
}

// Create stores a new student record.
func (uc *StudentUsecase) Create(ctx context.Context, input domain.StudentInput) (*domain.Student, error) {
	student, err := uc.students.Create(ctx, input)
	if err != nil {
		return nil, err
	}
	uc.logger.Info("student created", "student_id", student.ID)
	return student, nil
}

// Update replaces all fields of an existing student record.
func (uc *StudentUsecase) Update(ctx context.Context, id int64, input domain.StudentInput) (*domain.Student, error) {
	return uc.students.Update(ctx, id, input)
}

// Delete removes a student record.
func (uc *StudentUsecase) Delete(ctx context.Context, id int64) error {
	if err := uc.students.Delete(ctx, id); err != nil {
		return err
	}
	uc.logger.Info("student deleted", "student_id", id)
	return nil
}
