package ledger

import (
	"time"

	"github.com/google/uuid"
)

// CashAccount is a company payout account payroll disburses from.
type CashAccount struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name     string    `gorm:"type:varchar(120);not null"`
	BankName string    `gorm:"type:varchar(120)"`
	Number   string    `gorm:"type:varchar(40)"`
	Active   bool      `gorm:"not null;default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
