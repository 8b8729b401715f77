package kpi

import (
	"context"
	"net/http"
	"regexp"

	"github.com/google/uuid"

	"github.com/OutLand606/FinancePro-sub001/internal/shared/apperror"
)

var periodPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

var (
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"period must be formatted YYYY-MM",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid actor id",
		http.StatusBadRequest,
	)
	ErrEmptyAdjustment = apperror.New(
		apperror.CodeInvalidInput,
		"adjustment must carry a bonus or a deduction",
		http.StatusBadRequest,
	)
)

type Service interface {
	SubmitCommission(ctx context.Context, req UpsertCommissionRequest) (CommissionResponse, error)
	RecordAdjustment(ctx context.Context, req CreateAdjustmentRequest, actorID string) (AdjustmentResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// SubmitCommission replaces the commission figure for the employee and
// period, so the review cycle can re-submit corrected numbers.
func (s *service) SubmitCommission(ctx context.Context, req UpsertCommissionRequest) (CommissionResponse, error) {
	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return CommissionResponse{}, ErrInvalidEmployeeID
	}
	if !periodPattern.MatchString(req.Period) {
		return CommissionResponse{}, ErrInvalidPeriod
	}

	record := &CommissionRecord{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		Period:     req.Period,
		Amount:     req.Amount,
	}
	if err := s.repo.UpsertCommission(ctx, record); err != nil {
		return CommissionResponse{}, err
	}

	return CommissionResponse{
		EmployeeID: employeeID.String(),
		Period:     req.Period,
		Amount:     req.Amount,
	}, nil
}

func (s *service) RecordAdjustment(ctx context.Context, req CreateAdjustmentRequest, actorID string) (AdjustmentResponse, error) {
	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return AdjustmentResponse{}, ErrInvalidEmployeeID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return AdjustmentResponse{}, ErrInvalidActorID
	}
	if !periodPattern.MatchString(req.Period) {
		return AdjustmentResponse{}, ErrInvalidPeriod
	}
	if req.Bonus == 0 && req.Deduction == 0 {
		return AdjustmentResponse{}, ErrEmptyAdjustment
	}

	adjustment := &ManualAdjustment{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		Period:     req.Period,
		Bonus:      req.Bonus,
		Deduction:  req.Deduction,
		Note:       req.Note,
		CreatedBy:  actorUUID,
	}
	if err := s.repo.CreateAdjustment(ctx, adjustment); err != nil {
		return AdjustmentResponse{}, err
	}

	return AdjustmentResponse{
		ID:         adjustment.ID.String(),
		EmployeeID: adjustment.EmployeeID.String(),
		Period:     adjustment.Period,
		Bonus:      adjustment.Bonus,
		Deduction:  adjustment.Deduction,
		Note:       adjustment.Note,
		CreatedBy:  adjustment.CreatedBy.String(),
	}, nil
}
