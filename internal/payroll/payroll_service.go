package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/OutLand606/FinancePro-sub001/internal/bootstrap"
	"github.com/OutLand606/FinancePro-sub001/internal/events"
	"github.com/OutLand606/FinancePro-sub001/internal/messaging/kafka"
	payrollerrors "github.com/OutLand606/FinancePro-sub001/internal/payroll/errors"
	"github.com/OutLand606/FinancePro-sub001/internal/shared/contextutil"
)

// DefaultStdDays is the standard working-day divisor used when none is
// configured for the company.
const DefaultStdDays = 26

var periodPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	GetRun(ctx context.Context, period string) (RunResponse, error)
	ComputeDraft(ctx context.Context, period, actorID string) (RunResponse, error)
	LockRun(ctx context.Context, period, actorID string) (RunResponse, error)
	UnlockRun(ctx context.Context, period, actorID string) (RunResponse, error)
	PayRun(ctx context.Context, period, targetAccount, actorID string) (RunResponse, error)
	ExportRun(ctx context.Context, period string) ([]ExportRow, error)
}

// Sources bundles the read-side collaborators the orchestrator pulls period
// inputs from.
type Sources struct {
	Directory   EmployeeDirectory
	Templates   TemplateCatalog
	Timesheets  TimesheetSource
	Commissions CommissionSource
}

type service struct {
	db      *sql.DB
	repo    Repository
	sources Sources
	ledger  DisbursementLedger
	outbox  kafka.OutboxRepository
	audit   bootstrap.AuditLogger
	stdDays float64

	// periodMu serializes compute/lock/unlock/pay per period. Cross-period
	// operations never contend.
	mu       sync.Mutex
	periodMu map[string]*sync.Mutex
}

func NewService(db *sql.DB, repo Repository, sources Sources, ledger DisbursementLedger) Service {
	return &service{
		db:       db,
		repo:     repo,
		sources:  sources,
		ledger:   ledger,
		audit:    bootstrap.NewStdoutAuditLogger(),
		stdDays:  DefaultStdDays,
		periodMu: make(map[string]*sync.Mutex),
	}
}

// NewServiceWithOutbox additionally queues run lifecycle events on the
// transactional outbox.
func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	sources Sources,
	ledger DisbursementLedger,
	outbox kafka.OutboxRepository,
	audit bootstrap.AuditLogger,
) Service {
	return &service{
		db:       db,
		repo:     repo,
		sources:  sources,
		ledger:   ledger,
		outbox:   outbox,
		audit:    audit,
		stdDays:  DefaultStdDays,
		periodMu: make(map[string]*sync.Mutex),
	}
}

func (s *service) lockPeriod(period string) func() {
	s.mu.Lock()
	m, ok := s.periodMu[period]
	if !ok {
		m = &sync.Mutex{}
		s.periodMu[period] = m
	}
	s.mu.Unlock()

	m.Lock()
	return m.Unlock
}

func validatePeriod(period string) error {
	if !periodPattern.MatchString(period) {
		return payrollerrors.ErrInvalidPeriodFormat
	}
	return nil
}

func (s *service) GetRun(ctx context.Context, period string) (RunResponse, error) {
	if err := validatePeriod(period); err != nil {
		return RunResponse{}, err
	}

	run, err := s.repo.FindByPeriod(ctx, period)
	if err != nil {
		return RunResponse{}, err
	}

	return mapRunToResponse(*run, nil), nil
}

func (s *service) ComputeDraft(ctx context.Context, period, actorID string) (RunResponse, error) {
	if err := validatePeriod(period); err != nil {
		return RunResponse{}, err
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return RunResponse{}, payrollerrors.ErrInvalidActorID
	}

	unlock := s.lockPeriod(period)
	defer unlock()

	// All inputs are pulled and every slip is built before anything is
	// written, so a failing lookup leaves the stored run untouched.
	slips, totalAmount, warnings, err := s.buildAllSlips(ctx, period)
	if err != nil {
		return RunResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RunResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	run, err := qtx.FindByPeriod(ctx, period)
	switch {
	case errors.Is(err, payrollerrors.ErrRunNotFound):
		run = &PayrollRun{
			ID:        uuid.New(),
			Period:    period,
			Status:    StatusDraft,
			CreatedBy: actorUUID,
		}
		if err := qtx.Create(ctx, run); err != nil {
			return RunResponse{}, err
		}
	case err != nil:
		return RunResponse{}, err
	default:
		if run.Status != StatusDraft {
			return RunResponse{}, payrollerrors.ErrAlreadyLocked
		}
	}

	for i := range slips {
		slips[i].ID = uuid.New()
		slips[i].RunID = run.ID
	}

	if err := qtx.ReplaceSlips(ctx, run.ID.String(), slips); err != nil {
		return RunResponse{}, err
	}

	// Aggregates move together with the slip set, never independently.
	run.TotalAmount = totalAmount
	run.EmployeeCount = len(slips)
	if err := qtx.Update(ctx, run); err != nil {
		return RunResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return RunResponse{}, err
	}

	run.Slips = slips
	contextutil.GetLogger(ctx, zap.L()).Info("payroll draft computed",
		zap.String("period", period),
		zap.Int("employees", len(slips)),
		zap.Int64("total_amount", totalAmount),
		zap.Int("warnings", len(warnings)),
	)

	return mapRunToResponse(*run, warnings), nil
}

// buildAllSlips fans the per-employee computation out across goroutines and
// joins before aggregation. Slips are ordered by employee ID for
// reproducible output.
func (s *service) buildAllSlips(ctx context.Context, period string) ([]Payslip, int64, []string, error) {
	employees, err := s.sources.Directory.ListActive(ctx)
	if err != nil {
		return nil, 0, nil, err
	}
	if len(employees) == 0 {
		return nil, 0, nil, payrollerrors.ErrNoActiveEmployees
	}

	holidayDays, err := s.sources.Timesheets.HolidayDays(ctx, period)
	if err != nil {
		return nil, 0, nil, err
	}

	templates, err := s.snapshotTemplates(ctx, employees)
	if err != nil {
		return nil, 0, nil, err
	}

	type result struct {
		slip     Payslip
		warnings []string
		err      error
	}

	results := make([]result, len(employees))
	var wg sync.WaitGroup
	for i, emp := range employees {
		wg.Add(1)
		go func(i int, emp Employee) {
			defer wg.Done()
			slip, warns, err := s.buildOne(ctx, emp, templates, period, holidayDays)
			results[i] = result{slip: slip, warnings: warns, err: err}
		}(i, emp)
	}
	wg.Wait()

	slips := make([]Payslip, 0, len(employees))
	var warnings []string
	for _, r := range results {
		if r.err != nil {
			return nil, 0, nil, r.err
		}
		slips = append(slips, r.slip)
		warnings = append(warnings, r.warnings...)
	}

	sort.Slice(slips, func(i, j int) bool {
		return slips[i].EmployeeID.String() < slips[j].EmployeeID.String()
	})

	var total int64
	for _, slip := range slips {
		total += slip.NetSalary
	}
	return slips, total, warnings, nil
}

// snapshotTemplates fetches each distinct template once, up front, so the
// whole run computes against a single frozen view of the catalog.
func (s *service) snapshotTemplates(ctx context.Context, employees []Employee) (map[uuid.UUID]*TemplateSpec, error) {
	templates := make(map[uuid.UUID]*TemplateSpec)
	for _, emp := range employees {
		if emp.TemplateID == nil {
			continue
		}
		if _, seen := templates[*emp.TemplateID]; seen {
			continue
		}
		tpl, err := s.sources.Templates.GetTemplate(ctx, *emp.TemplateID)
		if err != nil {
			return nil, err
		}
		templates[*emp.TemplateID] = tpl
	}
	return templates, nil
}

func (s *service) buildOne(
	ctx context.Context,
	emp Employee,
	templates map[uuid.UUID]*TemplateSpec,
	period string,
	holidayDays float64,
) (Payslip, []string, error) {
	totals, err := s.sources.Timesheets.Totals(ctx, emp.ID, period)
	if err != nil {
		return Payslip{}, nil, fmt.Errorf("timesheet totals for %s: %w", emp.ID, err)
	}
	kpiMoney, err := s.sources.Commissions.KpiCommission(ctx, emp.ID, period)
	if err != nil {
		return Payslip{}, nil, fmt.Errorf("kpi commission for %s: %w", emp.ID, err)
	}
	adjustments, err := s.sources.Commissions.ManualAdjustments(ctx, emp.ID, period)
	if err != nil {
		return Payslip{}, nil, fmt.Errorf("manual adjustments for %s: %w", emp.ID, err)
	}

	var tpl *TemplateSpec
	if emp.TemplateID != nil {
		tpl = templates[*emp.TemplateID]
	}

	slip, warnings := BuildPayslip(emp, tpl, PeriodInputs{
		StdDays:     s.stdDays,
		HolidayDays: holidayDays,
		Timesheet:   totals,
		KpiMoney:    kpiMoney,
		Adjustments: adjustments,
	})
	return slip, warnings, nil
}

func (s *service) LockRun(ctx context.Context, period, actorID string) (RunResponse, error) {
	if err := validatePeriod(period); err != nil {
		return RunResponse{}, err
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return RunResponse{}, payrollerrors.ErrInvalidActorID
	}

	unlock := s.lockPeriod(period)
	defer unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RunResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	run, err := qtx.FindByPeriod(ctx, period)
	if err != nil {
		return RunResponse{}, err
	}
	switch run.Status {
	case StatusPaid:
		return RunResponse{}, payrollerrors.ErrAlreadyPaid
	case StatusLocked:
		return RunResponse{}, payrollerrors.ErrAlreadyLocked
	case StatusDraft:
		// ok
	default:
		return RunResponse{}, payrollerrors.ErrNotDraft
	}

	now := time.Now().UTC()
	run.Status = StatusLocked
	run.LockedAt = &now
	run.LockedBy = &actorUUID

	if err := qtx.Update(ctx, run); err != nil {
		return RunResponse{}, err
	}

	if err := s.queueRunEvent(ctx, tx, run, events.PayrollRunLockedTopic, events.PayrollRunLockedEvent{
		EventType:     "payroll.run.locked",
		RunID:         run.ID.String(),
		Period:        run.Period,
		TotalAmount:   run.TotalAmount,
		EmployeeCount: run.EmployeeCount,
		LockedBy:      actorID,
		OccurredAt:    now,
	}); err != nil {
		return RunResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return RunResponse{}, err
	}

	return mapRunToResponse(*run, nil), nil
}

// UnlockRun is an administrative override, not part of the normal forward
// flow. It is only possible before payment and is always audited with the
// actor's identity.
func (s *service) UnlockRun(ctx context.Context, period, actorID string) (RunResponse, error) {
	if err := validatePeriod(period); err != nil {
		return RunResponse{}, err
	}
	if _, err := uuid.Parse(actorID); err != nil {
		return RunResponse{}, payrollerrors.ErrInvalidActorID
	}

	unlock := s.lockPeriod(period)
	defer unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RunResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	run, err := qtx.FindByPeriod(ctx, period)
	if err != nil {
		return RunResponse{}, err
	}
	if run.Status != StatusLocked {
		return RunResponse{}, payrollerrors.ErrUnlockOnlyLocked
	}

	now := time.Now().UTC()
	run.Status = StatusDraft
	run.LockedAt = nil
	run.LockedBy = nil

	if err := qtx.Update(ctx, run); err != nil {
		return RunResponse{}, err
	}

	if err := s.queueRunEvent(ctx, tx, run, events.PayrollRunUnlockedTopic, events.PayrollRunUnlockedEvent{
		EventType:  "payroll.run.unlocked",
		RunID:      run.ID.String(),
		Period:     run.Period,
		UnlockedBy: actorID,
		OccurredAt: now,
	}); err != nil {
		return RunResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return RunResponse{}, err
	}

	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:  "PAYROLL_RUN_UNLOCKED",
		Message: "Locked payroll run reopened for correction",
		Meta: map[string]any{
			"period": period,
			"run_id": run.ID.String(),
			"actor":  actorID,
		},
	})

	return mapRunToResponse(*run, nil), nil
}

func (s *service) PayRun(ctx context.Context, period, targetAccount, actorID string) (RunResponse, error) {
	if err := validatePeriod(period); err != nil {
		return RunResponse{}, err
	}
	accountUUID, err := uuid.Parse(targetAccount)
	if err != nil {
		return RunResponse{}, payrollerrors.ErrInvalidAccountID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return RunResponse{}, payrollerrors.ErrInvalidActorID
	}

	unlock := s.lockPeriod(period)
	defer unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RunResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	run, err := qtx.FindByPeriod(ctx, period)
	if err != nil {
		return RunResponse{}, err
	}
	switch run.Status {
	case StatusPaid:
		return RunResponse{}, payrollerrors.ErrAlreadyPaid
	case StatusDraft:
		return RunResponse{}, payrollerrors.ErrNotLocked
	}

	// Exactly one disbursement per run, created in the same transaction as
	// the status change.
	disbursement := Disbursement{
		ID:        uuid.New(),
		AccountID: accountUUID,
		Period:    period,
		Amount:    run.TotalAmount,
		CreatedBy: actorUUID,
	}
	if err := s.ledger.WithTx(tx).CreateDisbursement(ctx, disbursement); err != nil {
		return RunResponse{}, err
	}

	now := time.Now().UTC()
	run.Status = StatusPaid
	run.PaidAt = &now
	run.PaidBy = &actorUUID
	run.DisbursementID = &disbursement.ID

	if err := qtx.Update(ctx, run); err != nil {
		return RunResponse{}, err
	}

	if err := s.queueRunEvent(ctx, tx, run, events.PayrollRunPaidTopic, events.PayrollRunPaidEvent{
		EventType:      "payroll.run.paid",
		RunID:          run.ID.String(),
		Period:         run.Period,
		TotalAmount:    run.TotalAmount,
		DisbursementID: disbursement.ID.String(),
		PaidBy:         actorID,
		OccurredAt:     now,
	}); err != nil {
		return RunResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return RunResponse{}, err
	}

	contextutil.GetLogger(ctx, zap.L()).Info("payroll run paid",
		zap.String("period", period),
		zap.Int64("total_amount", run.TotalAmount),
		zap.String("disbursement_id", disbursement.ID.String()),
	)

	return mapRunToResponse(*run, nil), nil
}

func (s *service) ExportRun(ctx context.Context, period string) ([]ExportRow, error) {
	if err := validatePeriod(period); err != nil {
		return nil, err
	}

	run, err := s.repo.FindByPeriod(ctx, period)
	if err != nil {
		return nil, err
	}

	rows := make([]ExportRow, 0, len(run.Slips))
	for _, slip := range run.Slips {
		rows = append(rows, ExportRow{
			EmployeeID:     slip.EmployeeID.String(),
			EmployeeName:   slip.EmployeeName,
			RoleName:       slip.RoleName,
			ActualWorkDays: slip.ActualWorkDays,
			GrossIncome:    slip.GrossIncome,
			TotalDeduction: slip.TotalDeduction,
			NetSalary:      slip.NetSalary,
		})
	}
	return rows, nil
}

func (s *service) queueRunEvent(ctx context.Context, tx *sql.Tx, run *PayrollRun, topic string, payload any) error {
	if s.outbox == nil {
		return nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		AggregateType: "payroll_run",
		AggregateID:   run.ID.String(),
		EventType:     topic,
		Topic:         topic,
		Payload:       body,
		Status:        kafka.OutboxStatusPending,
	})
}

func mapRunToResponse(run PayrollRun, warnings []string) RunResponse {
	resp := RunResponse{
		ID:            run.ID.String(),
		Period:        run.Period,
		Status:        run.Status,
		TotalAmount:   run.TotalAmount,
		EmployeeCount: run.EmployeeCount,
		CreatedBy:     run.CreatedBy.String(),
		Slips:         mapSlipsToResponse(run.Slips),
		Warnings:      warnings,
	}

	if run.LockedBy != nil {
		v := run.LockedBy.String()
		resp.LockedBy = &v
	}
	if run.LockedAt != nil {
		v := run.LockedAt.Format(time.RFC3339)
		resp.LockedAt = &v
	}
	if run.PaidBy != nil {
		v := run.PaidBy.String()
		resp.PaidBy = &v
	}
	if run.PaidAt != nil {
		v := run.PaidAt.Format(time.RFC3339)
		resp.PaidAt = &v
	}
	if run.DisbursementID != nil {
		v := run.DisbursementID.String()
		resp.DisbursementID = &v
	}

	return resp
}

func mapSlipsToResponse(slips []Payslip) []SlipResponse {
	resp := make([]SlipResponse, len(slips))
	for i, slip := range slips {
		details := make([]SlipDetailResponse, len(slip.Details))
		for j, d := range slip.Details {
			details[j] = SlipDetailResponse{
				Code:   d.Code,
				Name:   d.Name,
				Nature: d.Nature,
				Amount: d.Amount,
			}
		}
		resp[i] = SlipResponse{
			EmployeeID:     slip.EmployeeID.String(),
			EmployeeName:   slip.EmployeeName,
			RoleName:       slip.RoleName,
			ActualWorkDays: slip.ActualWorkDays,
			OtHours:        slip.OtHours,
			KpiMoney:       slip.KpiMoney,
			GrossIncome:    slip.GrossIncome,
			NetSalary:      slip.NetSalary,
			TotalDeduction: slip.TotalDeduction,
			Details:        details,
		}
	}
	return resp
}
