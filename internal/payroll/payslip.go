package payroll

import (
	"encoding/json"
	"fmt"
)

// PeriodInputs aggregates everything one employee's computation needs beyond
// the employee master record.
type PeriodInputs struct {
	StdDays     float64
	HolidayDays float64
	Timesheet   TimesheetTotals
	KpiMoney    int64
	Adjustments Adjustments
}

// BuildPayslip seeds the base variable context, resolves the employee's
// template and packages the result. Given identical inputs it always
// produces an identical slip, which is what makes draft recomputation safe.
// A nil template yields an all-zero slip plus a warning naming the employee.
func BuildPayslip(emp Employee, tpl *TemplateSpec, in PeriodInputs) (Payslip, []string) {
	// The slip ID is assigned at persistence time so repeated computation of
	// identical inputs yields identical output.
	slip := Payslip{
		EmployeeID:     emp.ID,
		EmployeeName:   emp.FullName,
		RoleName:       emp.RoleName,
		ActualWorkDays: in.Timesheet.ActualWorkDays,
		OtHours:        in.Timesheet.OtHours,
		KpiMoney:       in.KpiMoney,
	}

	if tpl == nil {
		return slip, []string{fmt.Sprintf("employee %s (%s) has no salary template", emp.FullName, emp.ID)}
	}

	vars := Variables{
		VarStdDays:          in.StdDays,
		VarActualWorkDays:   in.Timesheet.ActualWorkDays,
		VarOtHours:          in.Timesheet.OtHours,
		VarHolidayDays:      in.HolidayDays,
		VarDependents:       float64(emp.Dependents),
		VarBaseSalary:       float64(emp.BaseSalary),
		VarEvaluationSalary: float64(emp.EvaluationSalary),
		VarInsuranceSalary:  float64(emp.InsuranceSalary),
		VarFixedAllowance:   float64(emp.FixedAllowance),
		VarKpiMoney:         float64(in.KpiMoney),
		VarManualBonus:      float64(in.Adjustments.Bonus),
		VarManualDeduction:  float64(in.Adjustments.Deduction),
		VarGrossIncome:      0,
		VarTotalDeduction:   0,
	}

	res := ResolveComponents(tpl.Components, vars)

	slip.GrossIncome = res.GrossIncome
	slip.TotalDeduction = res.TotalDeduction
	slip.NetSalary = res.NetSalary
	slip.Details = detailRows(tpl, res)

	// Marshal of plain structs and strings cannot fail here.
	snapshot, _ := json.Marshal(tpl)
	slip.TemplateSnapshot = snapshot

	return slip, res.Warnings
}

func detailRows(tpl *TemplateSpec, res Resolution) []PayslipDetail {
	rows := make([]PayslipDetail, 0, len(res.Order))
	for i, code := range res.Order {
		comp := tpl.Components[i]
		rows = append(rows, PayslipDetail{
			Code:     code,
			Name:     comp.Name,
			Nature:   comp.Nature,
			Amount:   res.Details[code],
			Position: i,
		})
	}
	return rows
}
