package repository

import (
	"context"
	"errors"
	"time"

	"employee/domain"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	pgUniqueViolation   = "23505"
	mysqlDuplicateEntry = 1062
)

type employeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(database *gorm.DB) domain.EmployeeRepo {
	return &employeeRepository{
		db: database,
	}
}

func (er *employeeRepository) CreateEmployee(ctx context.Context, payload *domain.EmployeePayload) (int, error) {
	employee := domain.Employee{
		Name:       deref(payload.Name),
		DOB:        deref(payload.DOB),
		Gender:     deref(payload.Gender),
		Address:    payload.Address,
		City:       payload.City,
		State:      payload.State,
		Email:      deref(payload.Email),
		Phone:      deref(payload.Phone),
		Department: payload.Department,
		Position:   payload.Position,
		Salary:     payload.Salary.NullDecimal,
	}

	if err := er.db.WithContext(ctx).Create(&employee).Error; err != nil {
		return 0, storeError(err)
	}

	return employee.EmployeeID, nil
}

func (er *employeeRepository) GetAllEmployee(ctx context.Context) (*[]domain.Employee, error) {
	employees := []domain.Employee{}
	if err := er.db.WithContext(ctx).Find(&employees).Error; err != nil {
		return nil, storeError(err)
	}

	return &employees, nil
}

func (er *employeeRepository) GetEmployeeByID(ctx context.Context, id int) (*domain.Employee, error) {
	var employee domain.Employee
	err := er.db.WithContext(ctx).Where("employee_id = ?", id).First(&employee).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError(domain.MsgEmployeeNotFound)
		}
		return nil, storeError(err)
	}

	return &employee, nil
}

// UpdateEmployee rewrites every mutable column. Fields missing from the
// payload are written as NULL.
func (er *employeeRepository) UpdateEmployee(ctx context.Context, id int, payload *domain.EmployeePayload) error {
	updates := map[string]interface{}{
		"name":       nullable(payload.Name),
		"dob":        nullable(payload.DOB),
		"gender":     nullable(payload.Gender),
		"address":    nullable(payload.Address),
		"city":       nullable(payload.City),
		"state":      nullable(payload.State),
		"email":      nullable(payload.Email),
		"phone":      nullable(payload.Phone),
		"department": nullable(payload.Department),
		"position":   nullable(payload.Position),
		"salary":     payload.Salary.NullDecimal,
		"updated_at": time.Now(),
	}

	result := er.db.WithContext(ctx).
		Model(&domain.Employee{}).
		Where("employee_id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return storeError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError(domain.MsgEmployeeNotFound)
	}

	return nil
}

func (er *employeeRepository) DeleteEmployee(ctx context.Context, id int) error {
	result := er.db.WithContext(ctx).Where("employee_id = ?", id).Delete(&domain.Employee{})
	if result.Error != nil {
		return storeError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError(domain.MsgEmployeeNotFound)
	}

	return nil
}

func storeError(err error) error {
	storeErr := domain.NewStoreError(err)
	storeErr.UniqueViolation = isUniqueViolation(err)
	return storeErr
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlDuplicateEntry
	}

	return false
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func nullable[T any](p *T) interface{} {
	if p == nil {
		return nil
	}
	return *p
}
