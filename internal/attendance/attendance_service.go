package attendance

import (
	"context"
	"net/http"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/OutLand606/FinancePro-sub001/internal/shared/apperror"
)

const dateLayout = "2006-01-02"

var periodPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

var (
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"period must be formatted YYYY-MM",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"date must be formatted YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrDateOutsidePeriod = apperror.New(
		apperror.CodeInvalidInput,
		"date does not fall inside the period",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
)

type Service interface {
	RecordEntry(ctx context.Context, req CreateEntryRequest) (EntryResponse, error)
	RecordHoliday(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) RecordEntry(ctx context.Context, req CreateEntryRequest) (EntryResponse, error) {
	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return EntryResponse{}, ErrInvalidEmployeeID
	}
	date, err := parsePeriodDate(req.Period, req.WorkDate)
	if err != nil {
		return EntryResponse{}, err
	}

	entry := &TimesheetEntry{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		Period:     req.Period,
		WorkDate:   date,
		WorkDays:   req.WorkDays,
		OtHours:    req.OtHours,
	}
	if err := s.repo.CreateEntry(ctx, entry); err != nil {
		return EntryResponse{}, err
	}

	return EntryResponse{
		ID:         entry.ID.String(),
		EmployeeID: entry.EmployeeID.String(),
		Period:     entry.Period,
		WorkDate:   entry.WorkDate.Format(dateLayout),
		WorkDays:   entry.WorkDays,
		OtHours:    entry.OtHours,
	}, nil
}

func (s *service) RecordHoliday(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error) {
	date, err := parsePeriodDate(req.Period, req.Date)
	if err != nil {
		return HolidayResponse{}, err
	}

	holiday := &Holiday{
		ID:     uuid.New(),
		Period: req.Period,
		Date:   date,
		Name:   req.Name,
	}
	if err := s.repo.CreateHoliday(ctx, holiday); err != nil {
		return HolidayResponse{}, err
	}

	return HolidayResponse{
		ID:     holiday.ID.String(),
		Period: holiday.Period,
		Date:   holiday.Date.Format(dateLayout),
		Name:   holiday.Name,
	}, nil
}

// parsePeriodDate validates both fields together: the date must parse and
// must belong to the month the period names.
func parsePeriodDate(period, raw string) (time.Time, error) {
	if !periodPattern.MatchString(period) {
		return time.Time{}, ErrInvalidPeriod
	}
	date, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	if date.Format("2006-01") != period {
		return time.Time{}, ErrDateOutsidePeriod
	}
	return date, nil
}
