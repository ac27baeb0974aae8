package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// salary goes over the wire as a JSON number
	decimal.MarshalJSONWithoutQuotes = true
}

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

type Employee struct {
	EmployeeID int                 `gorm:"primaryKey;autoIncrement" json:"employee_id"`
	Name       string              `gorm:"type:varchar(100);not null" json:"name"`
	DOB        Date                `gorm:"column:dob;type:date;not null" json:"dob"`
	Gender     Gender              `gorm:"type:varchar(10);not null;check:gender IN ('Male','Female','Other')" json:"gender"`
	Address    *string             `gorm:"type:varchar(255)" json:"address"`
	City       *string             `gorm:"type:varchar(100)" json:"city"`
	State      *string             `gorm:"type:varchar(100)" json:"state"`
	Email      string              `gorm:"type:varchar(100);not null;uniqueIndex" json:"email"`
	Phone      string              `gorm:"type:varchar(15);not null;uniqueIndex" json:"phone"`
	Department *string             `gorm:"type:varchar(100)" json:"department"`
	Position   *string             `gorm:"type:varchar(100)" json:"position"`
	Salary     decimal.NullDecimal `gorm:"type:decimal(10,2)" json:"salary"`
	HireDate   time.Time           `gorm:"autoCreateTime" json:"hire_date"`
	CreatedAt  time.Time           `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time           `gorm:"autoUpdateTime" json:"updated_at"`
}

// EmployeePayload is the body of create and update requests. Every field is
// nullable so an update can overwrite a column with NULL when the caller
// leaves it out.
type EmployeePayload struct {
	Name       *string             `json:"name" valid:"required~Name is required"`
	DOB        *Date               `json:"dob" valid:"required~Date of birth is required"`
	Gender     *Gender             `json:"gender" valid:"required~Gender is required"`
	Address    *string             `json:"address"`
	City       *string             `json:"city"`
	State      *string             `json:"state"`
	Email      *string             `json:"email" valid:"required~Email is required"`
	Phone      *string             `json:"phone" valid:"required~Phone is required"`
	Department *string             `json:"department"`
	Position   *string             `json:"position" valid:"required~Position is required"`
	Salary     Salary              `json:"salary" valid:"-"`
}

// Salary is the salary field of a request body. An empty string decodes as
// absent, the same as null.
type Salary struct {
	decimal.NullDecimal
}

func NewSalary(d decimal.Decimal) Salary {
	return Salary{NullDecimal: decimal.NewNullDecimal(d)}
}

func (s *Salary) UnmarshalJSON(data []byte) error {
	if string(data) == `""` {
		s.NullDecimal = decimal.NullDecimal{}
		return nil
	}
	return s.NullDecimal.UnmarshalJSON(data)
}

type EmployeeRepo interface {
	CreateEmployee(ctx context.Context, payload *EmployeePayload) (int, error)
	GetAllEmployee(ctx context.Context) (*[]Employee, error)
	GetEmployeeByID(ctx context.Context, id int) (*Employee, error)
	UpdateEmployee(ctx context.Context, id int, payload *EmployeePayload) error
	DeleteEmployee(ctx context.Context, id int) error
}

type EmployeeUseCase interface {
	CreateEmployeeUC(ctx context.Context, payload *EmployeePayload) (int, error)
	GetAllEmployeeUC(ctx context.Context) (*[]Employee, error)
	GetEmployeeByIDUC(ctx context.Context, id int) (*Employee, error)
	UpdateEmployeeUC(ctx context.Context, id int, payload *EmployeePayload) error
	DeleteEmployeeUC(ctx context.Context, id int) error
}
