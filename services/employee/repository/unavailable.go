package repository

import (
	"context"
	"errors"

	"employee/domain"
)

// unavailableEmployeeRepository stands in for the store when the database
// could not be reached at startup. Every call fails with the startup error.
type unavailableEmployeeRepository struct {
	cause error
}

func NewUnavailableEmployeeRepository(cause error) domain.EmployeeRepo {
	if cause == nil {
		cause = errors.New(domain.MsgStoreNotAvailable)
	}
	return &unavailableEmployeeRepository{
		cause: cause,
	}
}

func (ur *unavailableEmployeeRepository) CreateEmployee(ctx context.Context, payload *domain.EmployeePayload) (int, error) {
	return 0, domain.NewStoreError(ur.cause)
}

func (ur *unavailableEmployeeRepository) GetAllEmployee(ctx context.Context) (*[]domain.Employee, error) {
	return nil, domain.NewStoreError(ur.cause)
}

func (ur *unavailableEmployeeRepository) GetEmployeeByID(ctx context.Context, id int) (*domain.Employee, error) {
	return nil, domain.NewStoreError(ur.cause)
}

func (ur *unavailableEmployeeRepository) UpdateEmployee(ctx context.Context, id int, payload *domain.EmployeePayload) error {
	return domain.NewStoreError(ur.cause)
}

func (ur *unavailableEmployeeRepository) DeleteEmployee(ctx context.Context, id int) error {
	return domain.NewStoreError(ur.cause)
}
