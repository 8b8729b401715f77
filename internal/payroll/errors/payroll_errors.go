package payrollerrors

import (
	"net/http"

	"github.com/OutLand606/FinancePro-sub001/internal/shared/apperror"
)

var (
	ErrInvalidPeriodFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid period format, expected YYYY-MM",
		http.StatusBadRequest,
	)
	ErrInvalidAccountID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid target account id",
		http.StatusBadRequest,
	)
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid actor id",
		http.StatusBadRequest,
	)
	ErrRunNotFound = apperror.New(
		apperror.CodeNotFound,
		"payroll run not found",
		http.StatusNotFound,
	)
	ErrAlreadyLocked = apperror.New(
		apperror.CodeInvalidState,
		"payroll run is locked and can no longer be recomputed",
		http.StatusConflict,
	)
	ErrAlreadyPaid = apperror.New(
		apperror.CodeInvalidState,
		"payroll run is already paid",
		http.StatusConflict,
	)
	ErrNotLocked = apperror.New(
		apperror.CodeInvalidState,
		"payroll run must be locked before payment",
		http.StatusConflict,
	)
	ErrNotDraft = apperror.New(
		apperror.CodeInvalidState,
		"payroll run can only be locked while status is DRAFT",
		http.StatusConflict,
	)
	ErrUnlockOnlyLocked = apperror.New(
		apperror.CodeInvalidState,
		"only a locked, unpaid payroll run can be unlocked",
		http.StatusConflict,
	)
	ErrNoActiveEmployees = apperror.New(
		apperror.CodeInvalidInput,
		"no active employees to compute",
		http.StatusUnprocessableEntity,
	)
	ErrRunConflict = apperror.New(
		apperror.CodeConflict,
		"payroll run for this period was modified concurrently",
		http.StatusConflict,
	)
)
