package payroll

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

// Employee carries the master-data fields payroll needs. The directory is
// the source of truth; payroll only reads it.
type Employee struct {
	ID               uuid.UUID
	FullName         string
	RoleName         string
	TemplateID       *uuid.UUID
	BaseSalary       int64
	EvaluationSalary int64
	InsuranceSalary  int64
	FixedAllowance   int64
	Dependents       int
}

// TimesheetTotals is the per-employee attendance summary for one period.
type TimesheetTotals struct {
	ActualWorkDays float64
	OtHours        float64
}

// Adjustments are operator-entered bonus/deduction overrides for one
// employee in one period.
type Adjustments struct {
	Bonus     int64
	Deduction int64
	Note      string
}

//go:generate mockgen -source=inputs.go -destination=mock/inputs_mock.go -package=mock

type EmployeeDirectory interface {
	ListActive(ctx context.Context) ([]Employee, error)
}

// TemplateCatalog returns (nil, nil) when no template exists for the id;
// missing templates are a warning, not an error.
type TemplateCatalog interface {
	GetTemplate(ctx context.Context, templateID uuid.UUID) (*TemplateSpec, error)
}

type TimesheetSource interface {
	Totals(ctx context.Context, employeeID uuid.UUID, period string) (TimesheetTotals, error)
	HolidayDays(ctx context.Context, period string) (float64, error)
}

type CommissionSource interface {
	KpiCommission(ctx context.Context, employeeID uuid.UUID, period string) (int64, error)
	ManualAdjustments(ctx context.Context, employeeID uuid.UUID, period string) (Adjustments, error)
}

// DisbursementLedger records cash movements. Payment runs inside the same
// transaction as the status change, hence WithTx.
type DisbursementLedger interface {
	WithTx(tx *sql.Tx) DisbursementLedger
	CreateDisbursement(ctx context.Context, d Disbursement) error
}
