package events

import "time"

const (
	PayrollRunLockedTopic   = "fin.payroll.run.locked.v1"
	PayrollRunPaidTopic     = "fin.payroll.run.paid.v1"
	PayrollRunUnlockedTopic = "fin.payroll.run.unlocked.v1"
)

type PayrollRunLockedEvent struct {
	EventType     string    `json:"event_type"`
	RunID         string    `json:"run_id"`
	Period        string    `json:"period"`
	TotalAmount   int64     `json:"total_amount"`
	EmployeeCount int       `json:"employee_count"`
	LockedBy      string    `json:"locked_by"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type PayrollRunPaidEvent struct {
	EventType      string    `json:"event_type"`
	RunID          string    `json:"run_id"`
	Period         string    `json:"period"`
	TotalAmount    int64     `json:"total_amount"`
	DisbursementID string    `json:"disbursement_id"`
	PaidBy         string    `json:"paid_by"`
	OccurredAt     time.Time `json:"occurred_at"`
}

type PayrollRunUnlockedEvent struct {
	EventType  string    `json:"event_type"`
	RunID      string    `json:"run_id"`
	Period     string    `json:"period"`
	UnlockedBy string    `json:"unlocked_by"`
	OccurredAt time.Time `json:"occurred_at"`
}
