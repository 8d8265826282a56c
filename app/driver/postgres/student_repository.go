package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"student-registry/app/domain"
	"student-registry/app/port"
)

// StudentRepository implements port.StudentRepository for PostgreSQL
type StudentRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewStudentRepository creates a new PostgreSQL student repository
func NewStudentRepository(db DatabaseIface, logger *slog.Logger) port.StudentRepository {
	return &StudentRepository{
		db:     db,
		logger: logger.With("component", "student_repository"),
	}
}

// List returns all student records.
func (r *StudentRepository) List(ctx context.Context) ([]domain.Student, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := `
		SELECT id, name, age, gender, country, university
		FROM students
		ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.Error("failed to list students", "error", err)
		return nil, fmt.Errorf("%w: failed to list students: %w", domain.ErrStore, err)
	}
	defer rows.Close()

	students := make([]domain.Student, 0)
	for rows.Next() {
		var s domain.Student
		if err := rows.Scan(&s.ID, &s.Name, &s.Age, &s.Gender, &s.Country, &s.University); err != nil {
			return nil, fmt.Errorf("%w: failed to scan student: %w", domain.ErrStore, err)
		}
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to read students: %w", domain.ErrStore, err)
	}

	return students, nil
}

// Create inserts a new student record and returns the stored row.
func (r *StudentRepository) Create(ctx context.Context, input domain.StudentInput) (*domain.Student, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := `
		INSERT INTO students (name, age, gender, country, university)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, age, gender, country, university`

	student := &domain.Student{}
	err := r.db.QueryRow(ctx, query,
		input.Name, input.Age, input.Gender, input.Country, input.University,
	).Scan(&student.ID, &student.Name, &student.Age, &student.Gender, &student.Country, &student.University)
	if err != nil {
		r.logger.Error("failed to insert student", "error", err)
		return nil, fmt.Errorf("%w: failed to insert student: %w", domain.ErrStore, err)
	}

	return student, nil
}

// Update replaces every field of the student record. Partial updates
// are not supported; handlers enforce the all-or-nothing contract.
func (r *StudentRepository) Update(ctx context.Context, id int64, input domain.StudentInput) (*domain.Student, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := `
		UPDATE students
		SET name = $1, age = $2, gender = $3, country = $4, university = $5
		WHERE id = $6
		RETURNING id, name, age, gender, country, university`

	student := &domain.Student{}
	err := r.db.QueryRow(ctx, query,
		input.Name, input.Age, input.Gender, input.Country, input.University, id,
	).Scan(&student.ID, &student.Name, &student.Age, &student.Gender, &student.Country, &student.University)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrStudentNotFound
		}
		r.logger.Error("failed to update student", "student_id", id, "error", err)
		return nil, fmt.Errorf("%w: failed to update student: %w", domain.ErrStore, err)
	}

	return student, nil
}

// Delete removes the student record with the given id.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := `DELETE FROM students WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.logger.Error("failed to delete student", "student_id", id, "error", err)
		return fmt.Errorf("%w: failed to delete student: %w", domain.ErrStore, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrStudentNotFound
	}

	return nil
}
