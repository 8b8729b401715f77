package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Employee struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FullName string    `gorm:"type:varchar(120);not null"`
	RoleName string    `gorm:"type:varchar(120)"`

	TemplateID *uuid.UUID `gorm:"type:uuid;index"`

	// Salary master fields in minor currency units.
	BaseSalary       int64 `gorm:"type:bigint;not null;default:0"`
	EvaluationSalary int64 `gorm:"type:bigint;not null;default:0"`
	InsuranceSalary  int64 `gorm:"type:bigint;not null;default:0"`
	FixedAllowance   int64 `gorm:"type:bigint;not null;default:0"`
	Dependents       int   `gorm:"not null;default:0"`

	Active bool `gorm:"not null;default:true;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
