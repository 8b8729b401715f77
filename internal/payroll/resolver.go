package payroll

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	NatureIncome    = "INCOME"
	NatureDeduction = "DEDUCTION"
	NatureOther     = "OTHER"
)

// Sentinel component codes. Commission components are commonly left without
// a formula and default to the KPI money input; a net-pay component, when
// present, overrides the gross-minus-deduction fallback.
const (
	CodeNetSalary = "THUC_LINH"

	commissionCodeKPI = "KPI"
	commissionCodeHH  = "HOA_HONG"
)

// Base variable names seeded into every employee's context.
const (
	VarStdDays          = "std_days"
	VarActualWorkDays   = "actual_work_days"
	VarOtHours          = "ot_hours"
	VarHolidayDays      = "holiday_days"
	VarDependents       = "dependents"
	VarBaseSalary       = "base_salary"
	VarEvaluationSalary = "evaluation_salary"
	VarInsuranceSalary  = "insurance_salary"
	VarFixedAllowance   = "fixed_allowance"
	VarKpiMoney         = "kpi_money"
	VarManualBonus      = "manual_bonus"
	VarManualDeduction  = "manual_deduction"
	VarGrossIncome      = "gross_income"
	VarTotalDeduction   = "total_deduction"
)

// ComponentSpec is the frozen definition of one pay element as used during a
// computation. Template snapshots store exactly this shape so later catalog
// edits cannot alter a historical run.
type ComponentSpec struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	Nature     string `json:"nature"`
	Formula    string `json:"formula"`
	FixedValue int64  `json:"fixed_value"`
	IsTaxable  bool   `json:"is_taxable"`
	System     bool   `json:"is_system_defined"`
}

// TemplateSpec is an ordered component list assigned to a role. Order is
// significant: later components may reference earlier ones by code.
type TemplateSpec struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Components []ComponentSpec `json:"components"`
}

// Resolution is the outcome of resolving one template against one context.
type Resolution struct {
	Details        map[string]int64
	Order          []string
	GrossIncome    int64
	TotalDeduction int64
	NetSalary      int64
	Warnings       []string
}

// ResolveComponents evaluates components strictly in declared order against a
// cumulative context: each component's rounded value is fed back under its
// code, together with the running gross_income/total_deduction, before the
// next component is evaluated.
func ResolveComponents(components []ComponentSpec, base Variables) Resolution {
	vars := make(Variables, len(base)+len(components)+2)
	for k, v := range base {
		vars[k] = v
	}

	res := Resolution{
		Details: make(map[string]int64, len(components)),
		Order:   make([]string, 0, len(components)),
	}

	var netOverride *int64

	for _, comp := range components {
		value := resolveOne(comp, vars, &res.Warnings)

		res.Details[comp.Code] = value
		res.Order = append(res.Order, comp.Code)

		switch comp.Nature {
		case NatureIncome:
			res.GrossIncome += value
		case NatureDeduction:
			res.TotalDeduction += value
		}

		vars[comp.Code] = float64(value)
		vars[VarGrossIncome] = float64(res.GrossIncome)
		vars[VarTotalDeduction] = float64(res.TotalDeduction)

		if comp.Code == CodeNetSalary {
			v := value
			netOverride = &v
		}
	}

	if netOverride != nil {
		res.NetSalary = *netOverride
	} else {
		res.NetSalary = res.GrossIncome - res.TotalDeduction
	}
	return res
}

func resolveOne(comp ComponentSpec, vars Variables, warnings *[]string) int64 {
	formula := strings.TrimSpace(comp.Formula)

	if formula == "" {
		if isCommissionCode(comp.Code) {
			// Unconfigured commission components pay out the KPI input
			// instead of silently resolving to zero.
			return roundMoney(vars[VarKpiMoney])
		}
		return comp.FixedValue
	}

	value, err := Evaluate(formula, vars)
	if err != nil {
		*warnings = append(*warnings, fmt.Sprintf("component %s: %v", comp.Code, err))
		return 0
	}
	return roundMoney(value)
}

func isCommissionCode(code string) bool {
	upper := strings.ToUpper(code)
	return strings.Contains(upper, commissionCodeHH) || strings.Contains(upper, commissionCodeKPI)
}

// roundMoney rounds to whole currency units, half away from zero. The same
// rule applies to every monetary value in a run.
func roundMoney(v float64) int64 {
	return decimal.NewFromFloat(v).Round(0).IntPart()
}
