package attendance

import (
	"time"

	"github.com/google/uuid"
)

// TimesheetEntry is one approved day record. WorkDays is fractional to
// allow half-day leave; OtHours accumulates approved overtime.
type TimesheetEntry struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_timesheet_emp_period"`
	Period     string    `gorm:"type:varchar(7);not null;index:idx_timesheet_emp_period"`
	WorkDate   time.Time `gorm:"type:date;not null"`
	WorkDays   float64   `gorm:"type:numeric(4,2);not null;default:0"`
	OtHours    float64   `gorm:"type:numeric(5,2);not null;default:0"`

	CreatedAt time.Time
}

// Holiday is a company-wide paid day off inside a period.
type Holiday struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Period string    `gorm:"type:varchar(7);not null;index"`
	Date   time.Time `gorm:"type:date;not null"`
	Name   string    `gorm:"type:varchar(120);not null"`
}
