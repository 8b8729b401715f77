package employee

import (
	"context"

	"gorm.io/gorm"

	"github.com/OutLand606/FinancePro-sub001/internal/payroll"
)

// Repository also serves as the payroll.EmployeeDirectory implementation.
type Repository interface {
	payroll.EmployeeDirectory
	FindByID(ctx context.Context, id string) (*Employee, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListActive(ctx context.Context) ([]payroll.Employee, error) {
	var rows []Employee
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]payroll.Employee, len(rows))
	for i, row := range rows {
		out[i] = payroll.Employee{
			ID:               row.ID,
			FullName:         row.FullName,
			RoleName:         row.RoleName,
			TemplateID:       row.TemplateID,
			BaseSalary:       row.BaseSalary,
			EvaluationSalary: row.EvaluationSalary,
			InsuranceSalary:  row.InsuranceSalary,
			FixedAllowance:   row.FixedAllowance,
			Dependents:       row.Dependents,
		}
	}
	return out, nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var row Employee
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}
