package payroll

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusDraft  = "DRAFT"
	StatusLocked = "LOCKED"
	StatusPaid   = "PAID"
)

// PayrollRun is one payroll period. The period string is the only identity
// callers need; the unique index enforces at most one run per month even
// under concurrent first-compute requests.
type PayrollRun struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Period string    `gorm:"type:varchar(7);not null;uniqueIndex"`
	Status string    `gorm:"type:varchar(20);not null;default:'DRAFT';index"`

	// Financials in minor currency units to avoid floating error.
	TotalAmount   int64 `gorm:"type:bigint;not null;default:0"`
	EmployeeCount int   `gorm:"not null;default:0"`

	CreatedBy uuid.UUID  `gorm:"type:uuid;not null"`
	LockedBy  *uuid.UUID `gorm:"type:uuid"`
	PaidBy    *uuid.UUID `gorm:"type:uuid"`

	// Set exactly once, when the run transitions to PAID.
	DisbursementID *uuid.UUID `gorm:"type:uuid"`

	CreatedAt time.Time
	UpdatedAt time.Time
	LockedAt  *time.Time `gorm:"index"`
	PaidAt    *time.Time `gorm:"index"`

	Slips []Payslip `gorm:"foreignKey:RunID"`
}

// Payslip is the computed result for one employee in one period. Employee
// and role names are denormalized at computation time; the template snapshot
// makes the slip immune to later catalog edits.
type Payslip struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RunID uuid.UUID `gorm:"type:uuid;not null;index"`

	EmployeeID   uuid.UUID `gorm:"type:uuid;not null;index"`
	EmployeeName string    `gorm:"type:varchar(120);not null"`
	RoleName     string    `gorm:"type:varchar(120)"`

	ActualWorkDays float64 `gorm:"not null;default:0"`
	OtHours        float64 `gorm:"not null;default:0"`
	KpiMoney       int64   `gorm:"type:bigint;not null;default:0"`

	GrossIncome    int64 `gorm:"type:bigint;not null;default:0"`
	TotalDeduction int64 `gorm:"type:bigint;not null;default:0"`
	NetSalary      int64 `gorm:"type:bigint;not null;default:0"`

	TemplateSnapshot []byte `gorm:"type:jsonb"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Details []PayslipDetail `gorm:"foreignKey:PayslipID"`
}

// PayslipDetail is one resolved component value. Position preserves template
// order for display and export.
type PayslipDetail struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PayslipID uuid.UUID `gorm:"type:uuid;not null;index"`

	Code     string `gorm:"type:varchar(60);not null"`
	Name     string `gorm:"type:varchar(120);not null"`
	Nature   string `gorm:"type:varchar(20);not null"`
	Amount   int64  `gorm:"type:bigint;not null;default:0"`
	Position int    `gorm:"not null;default:0"`

	CreatedAt time.Time
}

// Disbursement is the ledger record a paid run produces, exactly one per run.
type Disbursement struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;index"`
	Period    string    `gorm:"type:varchar(7);not null"`
	Amount    int64     `gorm:"type:bigint;not null"`
	CreatedBy uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt time.Time
}
