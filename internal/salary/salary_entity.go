package salary

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SalaryComponent is one reusable pay-element definition. Code doubles as
// the variable name formulas reference, so it is unique catalog-wide.
type SalaryComponent struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Code string    `gorm:"type:varchar(60);not null;uniqueIndex"`
	Name string    `gorm:"type:varchar(120);not null"`

	Nature     string `gorm:"type:varchar(20);not null;default:'OTHER'"`
	Formula    string `gorm:"type:text"`
	FixedValue int64  `gorm:"type:bigint;not null;default:0"`

	IsTaxable       bool `gorm:"not null;default:false"`
	IsSystemDefined bool `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// SalaryTemplate is an ordered component list assigned to a job role.
type SalaryTemplate struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name string    `gorm:"type:varchar(120);not null"`

	Members []TemplateMember `gorm:"foreignKey:TemplateID"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TemplateMember links a component into a template at a position. Position
// order is the evaluation order.
type TemplateMember struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TemplateID  uuid.UUID `gorm:"type:uuid;not null;index:idx_template_position,unique"`
	ComponentID uuid.UUID `gorm:"type:uuid;not null"`
	Position    int       `gorm:"not null;index:idx_template_position,unique"`

	Component *SalaryComponent `gorm:"foreignKey:ComponentID;references:ID"`

	CreatedAt time.Time
}
