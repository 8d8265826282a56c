package port

import (
	"context"

	"student-registry/app/domain"
)

// StudentUsecase defines student record business logic interface
type StudentUsecase interface {
	List(ctx context.Context) ([]domain.Student, error)
	Create(ctx context.Context, input domain.StudentInput) (*domain.Student, error)
	Update(ctx context.Context, id int64, input domain.StudentInput) (*domain.Student, error)
	Delete(ctx context.Context, id int64) error
}

// StudentRepository defines student store data access interface
type StudentRepository interface {
	List(ctx context.Context) ([]domain.Student, error)
	Create(ctx context.Context, input domain.StudentInput) (*domain.Student, error)
	Update(ctx context.Context, id int64, input domain.StudentInput) (*domain.Student, error)
	Delete(ctx context.Context, id int64) error
}
