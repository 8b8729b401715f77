package kpi_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/OutLand606/FinancePro-sub001/internal/kpi"
	"github.com/OutLand606/FinancePro-sub001/internal/payroll"
)

type fakeKpiRepository struct {
	kpiCommissionFn     func(ctx context.Context, employeeID uuid.UUID, period string) (int64, error)
	manualAdjustmentsFn func(ctx context.Context, employeeID uuid.UUID, period string) (payroll.Adjustments, error)
	upsertCommissionFn  func(ctx context.Context, record *kpi.CommissionRecord) error
	createAdjustmentFn  func(ctx context.Context, adjustment *kpi.ManualAdjustment) error
}

func (f *fakeKpiRepository) KpiCommission(ctx context.Context, employeeID uuid.UUID, period string) (int64, error) {
	if f.kpiCommissionFn != nil {
		return f.kpiCommissionFn(ctx, employeeID, period)
	}
	return 0, nil
}

func (f *fakeKpiRepository) ManualAdjustments(ctx context.Context, employeeID uuid.UUID, period string) (payroll.Adjustments, error) {
	if f.manualAdjustmentsFn != nil {
		return f.manualAdjustmentsFn(ctx, employeeID, period)
	}
	return payroll.Adjustments{}, nil
}

func (f *fakeKpiRepository) UpsertCommission(ctx context.Context, record *kpi.CommissionRecord) error {
	if f.upsertCommissionFn != nil {
		return f.upsertCommissionFn(ctx, record)
	}
	return nil
}

func (f *fakeKpiRepository) CreateAdjustment(ctx context.Context, adjustment *kpi.ManualAdjustment) error {
	if f.createAdjustmentFn != nil {
		return f.createAdjustmentFn(ctx, adjustment)
	}
	return nil
}

func TestKpiService_SubmitCommission(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()

	var upserted *kpi.CommissionRecord
	repo := &fakeKpiRepository{
		upsertCommissionFn: func(ctx context.Context, record *kpi.CommissionRecord) error {
			upserted = record
			return nil
		},
	}
	service := kpi.NewService(repo)

	resp, err := service.SubmitCommission(ctx, kpi.UpsertCommissionRequest{
		EmployeeID: employeeID.String(),
		Period:     "2026-07",
		Amount:     2000000,
	})

	assert.NoError(t, err)
	assert.NotNil(t, upserted)
	assert.Equal(t, employeeID, upserted.EmployeeID)
	assert.Equal(t, int64(2000000), upserted.Amount)
	assert.Equal(t, int64(2000000), resp.Amount)

	_, err = service.SubmitCommission(ctx, kpi.UpsertCommissionRequest{
		EmployeeID: employeeID.String(), Period: "2026/07", Amount: 1,
	})
	assert.ErrorIs(t, err, kpi.ErrInvalidPeriod)
}

func TestKpiService_RecordAdjustment(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()
	actorID := uuid.New()

	var created *kpi.ManualAdjustment
	repo := &fakeKpiRepository{
		createAdjustmentFn: func(ctx context.Context, adjustment *kpi.ManualAdjustment) error {
			created = adjustment
			return nil
		},
	}
	service := kpi.NewService(repo)

	resp, err := service.RecordAdjustment(ctx, kpi.CreateAdjustmentRequest{
		EmployeeID: employeeID.String(),
		Period:     "2026-07",
		Bonus:      400000,
		Deduction:  150000,
		Note:       "referral bonus, canteen debt",
	}, actorID.String())

	assert.NoError(t, err)
	assert.NotNil(t, created)
	assert.Equal(t, actorID, created.CreatedBy)
	assert.Equal(t, int64(400000), created.Bonus)
	assert.Equal(t, int64(150000), created.Deduction)
	assert.Equal(t, actorID.String(), resp.CreatedBy)
}

func TestKpiService_RecordAdjustment_Rejected(t *testing.T) {
	ctx := context.Background()
	service := kpi.NewService(&fakeKpiRepository{})

	_, err := service.RecordAdjustment(ctx, kpi.CreateAdjustmentRequest{
		EmployeeID: uuid.New().String(), Period: "2026-07",
	}, uuid.New().String())
	assert.ErrorIs(t, err, kpi.ErrEmptyAdjustment)

	_, err = service.RecordAdjustment(ctx, kpi.CreateAdjustmentRequest{
		EmployeeID: uuid.New().String(), Period: "2026-07", Bonus: 1,
	}, "not-a-uuid")
	assert.ErrorIs(t, err, kpi.ErrInvalidActorID)
}
