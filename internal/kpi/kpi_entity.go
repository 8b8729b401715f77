package kpi

import (
	"time"

	"github.com/google/uuid"
)

// CommissionRecord is the finalized commission amount for one employee in
// one period, produced by the sales/KPI review cycle.
type CommissionRecord struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_commission_emp_period,unique"`
	Period     string    `gorm:"type:varchar(7);not null;index:idx_commission_emp_period,unique"`
	Amount     int64     `gorm:"type:bigint;not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ManualAdjustment is an operator-entered one-off bonus or deduction for a
// single employee and period.
type ManualAdjustment struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_adjustment_emp_period"`
	Period     string    `gorm:"type:varchar(7);not null;index:idx_adjustment_emp_period"`
	Bonus      int64     `gorm:"type:bigint;not null;default:0"`
	Deduction  int64     `gorm:"type:bigint;not null;default:0"`
	Note       string    `gorm:"type:text"`
	CreatedBy  uuid.UUID `gorm:"type:uuid;not null"`

	CreatedAt time.Time
}
