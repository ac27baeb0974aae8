package usecase

import (
	"context"
	"errors"
	"time"

	"employee/domain"

	"github.com/asaskevich/govalidator"
)

type employeeUC struct {
	employeeRepo domain.EmployeeRepo
	TimeOut      time.Duration
}

// NewEmployeeUseCase wires the employee operations to repo. A zero timeOut
// lets store calls run to completion.
func NewEmployeeUseCase(repo domain.EmployeeRepo, timeOut time.Duration) domain.EmployeeUseCase {
	return &employeeUC{
		employeeRepo: repo,
		TimeOut:      timeOut,
	}
}

func (eUC *employeeUC) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if eUC.TimeOut <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, eUC.TimeOut)
}

func (eUC *employeeUC) CreateEmployeeUC(ctx context.Context, payload *domain.EmployeePayload) (int, error) {
	if err := validateRequiredFields(payload); err != nil {
		return 0, domain.NewInvalidInputError(domain.MsgMissingFields, err)
	}

	ctx, cancel := eUC.withTimeout(ctx)
	defer cancel()

	id, err := eUC.employeeRepo.CreateEmployee(ctx, payload)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (eUC *employeeUC) GetAllEmployeeUC(ctx context.Context) (*[]domain.Employee, error) {
	ctx, cancel := eUC.withTimeout(ctx)
	defer cancel()

	employees, err := eUC.employeeRepo.GetAllEmployee(ctx)
	if err != nil {
		return nil, err
	}
	return employees, nil
}

func (eUC *employeeUC) GetEmployeeByIDUC(ctx context.Context, id int) (*domain.Employee, error) {
	ctx, cancel := eUC.withTimeout(ctx)
	defer cancel()

	employee, err := eUC.employeeRepo.GetEmployeeByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return employee, nil
}

func (eUC *employeeUC) UpdateEmployeeUC(ctx context.Context, id int, payload *domain.EmployeePayload) error {
	if payload == nil {
		payload = &domain.EmployeePayload{}
	}

	ctx, cancel := eUC.withTimeout(ctx)
	defer cancel()

	return eUC.employeeRepo.UpdateEmployee(ctx, id, payload)
}

func (eUC *employeeUC) DeleteEmployeeUC(ctx context.Context, id int) error {
	ctx, cancel := eUC.withTimeout(ctx)
	defer cancel()

	return eUC.employeeRepo.DeleteEmployee(ctx, id)
}

// validateRequiredFields checks presence only. A zero salary counts as missing.
func validateRequiredFields(payload *domain.EmployeePayload) error {
	if payload == nil {
		return errors.New("payload is required")
	}

	if _, err := govalidator.ValidateStruct(payload); err != nil {
		return err
	}

	if !payload.Salary.Valid || payload.Salary.Decimal.IsZero() {
		return errors.New("salary: Salary is required")
	}

	return nil
}
