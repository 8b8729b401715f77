package kpi

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/OutLand606/FinancePro-sub001/internal/payroll"
)

// Repository also serves as the payroll.CommissionSource implementation.
type Repository interface {
	payroll.CommissionSource
	UpsertCommission(ctx context.Context, record *CommissionRecord) error
	CreateAdjustment(ctx context.Context, adjustment *ManualAdjustment) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) KpiCommission(
	ctx context.Context,
	employeeID uuid.UUID,
	period string,
) (int64, error) {
	var record CommissionRecord
	err := r.db.WithContext(ctx).
		First(&record, "employee_id = ? AND period = ?", employeeID, period).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return record.Amount, nil
}

func (r *repository) ManualAdjustments(
	ctx context.Context,
	employeeID uuid.UUID,
	period string,
) (payroll.Adjustments, error) {
	var rows []ManualAdjustment
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND period = ?", employeeID, period).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return payroll.Adjustments{}, err
	}

	var out payroll.Adjustments
	for _, row := range rows {
		out.Bonus += row.Bonus
		out.Deduction += row.Deduction
		if row.Note != "" {
			if out.Note != "" {
				out.Note += "; "
			}
			out.Note += row.Note
		}
	}
	return out, nil
}

func (r *repository) UpsertCommission(ctx context.Context, record *CommissionRecord) error {
	var existing CommissionRecord
	err := r.db.WithContext(ctx).
		First(&existing, "employee_id = ? AND period = ?", record.EmployeeID, record.Period).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.WithContext(ctx).Create(record).Error
	}
	if err != nil {
		return err
	}

	existing.Amount = record.Amount
	return r.db.WithContext(ctx).Save(&existing).Error
}

func (r *repository) CreateAdjustment(ctx context.Context, adjustment *ManualAdjustment) error {
	return r.db.WithContext(ctx).Create(adjustment).Error
}
