package salaryerrors

import (
	"net/http"

	"github.com/OutLand606/FinancePro-sub001/internal/shared/apperror"
)

var (
	ErrInvalidComponentID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid component id",
		http.StatusBadRequest,
	)
	ErrInvalidTemplateID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid template id",
		http.StatusBadRequest,
	)
	ErrInvalidNature = apperror.New(
		apperror.CodeInvalidInput,
		"component nature must be INCOME, DEDUCTION or OTHER",
		http.StatusBadRequest,
	)
	ErrComponentNotFound = apperror.New(
		apperror.CodeNotFound,
		"salary component not found",
		http.StatusNotFound,
	)
	ErrTemplateNotFound = apperror.New(
		apperror.CodeNotFound,
		"salary template not found",
		http.StatusNotFound,
	)
	ErrDuplicateCode = apperror.New(
		apperror.CodeConflict,
		"component code already exists",
		http.StatusConflict,
	)
	ErrDuplicateCodeInTemplate = apperror.New(
		apperror.CodeInvalidInput,
		"component codes within one template must be unique",
		http.StatusBadRequest,
	)
	ErrSystemComponentReadOnly = apperror.New(
		apperror.CodeInvalidState,
		"system-defined components cannot be modified",
		http.StatusBadRequest,
	)
)
