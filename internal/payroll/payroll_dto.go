package payroll

type PayRunRequest struct {
	TargetAccount string `json:"target_account" binding:"required,uuid"`
}

type SlipDetailResponse struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Nature string `json:"nature"`
	Amount int64  `json:"amount"`
}

type SlipResponse struct {
	EmployeeID     string               `json:"employee_id"`
	EmployeeName   string               `json:"employee_name"`
	RoleName       string               `json:"role_name,omitempty"`
	ActualWorkDays float64              `json:"actual_work_days"`
	OtHours        float64              `json:"ot_hours"`
	KpiMoney       int64                `json:"kpi_money"`
	GrossIncome    int64                `json:"gross_income"`
	TotalDeduction int64                `json:"total_deduction"`
	NetSalary      int64                `json:"net_salary"`
	Details        []SlipDetailResponse `json:"details"`
}

type RunResponse struct {
	ID             string         `json:"id"`
	Period         string         `json:"period"`
	Status         string         `json:"status"`
	TotalAmount    int64          `json:"total_amount"`
	EmployeeCount  int            `json:"employee_count"`
	CreatedBy      string         `json:"created_by"`
	LockedBy       *string        `json:"locked_by,omitempty"`
	LockedAt       *string        `json:"locked_at,omitempty"`
	PaidBy         *string        `json:"paid_by,omitempty"`
	PaidAt         *string        `json:"paid_at,omitempty"`
	DisbursementID *string        `json:"disbursement_id,omitempty"`
	Slips          []SlipResponse `json:"slips"`
	Warnings       []string       `json:"warnings,omitempty"`
}

// ExportRow is one line of the tabular run export. File rendering is the
// caller's concern.
type ExportRow struct {
	EmployeeID     string  `json:"employee_id"`
	EmployeeName   string  `json:"employee_name"`
	RoleName       string  `json:"role_name"`
	ActualWorkDays float64 `json:"actual_work_days"`
	GrossIncome    int64   `json:"gross_income"`
	TotalDeduction int64   `json:"total_deduction"`
	NetSalary      int64   `json:"net_salary"`
}
