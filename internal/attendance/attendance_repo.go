package attendance

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/OutLand606/FinancePro-sub001/internal/payroll"
)

// Repository also serves as the payroll.TimesheetSource implementation.
type Repository interface {
	payroll.TimesheetSource
	CreateEntry(ctx context.Context, entry *TimesheetEntry) error
	CreateHoliday(ctx context.Context, holiday *Holiday) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Totals(
	ctx context.Context,
	employeeID uuid.UUID,
	period string,
) (payroll.TimesheetTotals, error) {
	var agg struct {
		WorkDays float64
		OtHours  float64
	}
	err := r.db.WithContext(ctx).
		Model(&TimesheetEntry{}).
		Select("COALESCE(SUM(work_days), 0) AS work_days, COALESCE(SUM(ot_hours), 0) AS ot_hours").
		Where("employee_id = ? AND period = ?", employeeID, period).
		Scan(&agg).Error
	if err != nil {
		return payroll.TimesheetTotals{}, err
	}
	return payroll.TimesheetTotals{
		ActualWorkDays: agg.WorkDays,
		OtHours:        agg.OtHours,
	}, nil
}

func (r *repository) HolidayDays(ctx context.Context, period string) (float64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Holiday{}).
		Where("period = ?", period).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return float64(count), nil
}

func (r *repository) CreateEntry(ctx context.Context, entry *TimesheetEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *repository) CreateHoliday(ctx context.Context, holiday *Holiday) error {
	return r.db.WithContext(ctx).Create(holiday).Error
}
