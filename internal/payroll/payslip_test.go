package payroll_test

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/OutLand606/FinancePro-sub001/internal/payroll"
)

func proratedTemplate() *payroll.TemplateSpec {
	return &payroll.TemplateSpec{
		ID:   uuid.New().String(),
		Name: "Back Office",
		Components: []payroll.ComponentSpec{
			{Code: "LUONG_CB", Name: "Base salary", Nature: payroll.NatureIncome,
				Formula: "base_salary / std_days * actual_work_days"},
			{Code: "PHU_CAP", Name: "Allowance", Nature: payroll.NatureIncome,
				Formula: "fixed_allowance"},
			{Code: "BHXH", Name: "Social insurance", Nature: payroll.NatureDeduction,
				Formula: "insurance_salary * 0.105"},
		},
	}
}

func TestBuildPayslip_ProratedScenario(t *testing.T) {
	emp := payroll.Employee{
		ID:              uuid.New(),
		FullName:        "Nguyen Van A",
		RoleName:        "Accountant",
		BaseSalary:      10000000,
		InsuranceSalary: 5000000,
		FixedAllowance:  800000,
	}
	inputs := payroll.PeriodInputs{
		StdDays:   26,
		Timesheet: payroll.TimesheetTotals{ActualWorkDays: 22, OtHours: 4},
	}

	slip, warnings := payroll.BuildPayslip(emp, proratedTemplate(), inputs)

	assert.Empty(t, warnings)
	// 10,000,000 / 26 * 22 = 8,461,538.46 rounds to 8,461,538.
	assert.Equal(t, int64(8461538+800000), slip.GrossIncome)
	assert.Equal(t, int64(525000), slip.TotalDeduction)
	assert.Equal(t, slip.GrossIncome-slip.TotalDeduction, slip.NetSalary)
	assert.Equal(t, emp.FullName, slip.EmployeeName)
	assert.InDelta(t, 22, slip.ActualWorkDays, 1e-9)

	assert.Len(t, slip.Details, 3)
	assert.Equal(t, "LUONG_CB", slip.Details[0].Code)
	assert.Equal(t, int64(8461538), slip.Details[0].Amount)
	assert.Equal(t, 0, slip.Details[0].Position)
	assert.Equal(t, 2, slip.Details[2].Position)
}

func TestBuildPayslip_Deterministic(t *testing.T) {
	emp := payroll.Employee{
		ID:              uuid.MustParse("7b9709a4-8f3f-4a2e-9e8e-6f3b7d1a2c3d"),
		FullName:        "Tran Thi B",
		BaseSalary:      12000000,
		InsuranceSalary: 6000000,
	}
	inputs := payroll.PeriodInputs{
		StdDays:   26,
		Timesheet: payroll.TimesheetTotals{ActualWorkDays: 26},
	}
	tpl := proratedTemplate()

	first, _ := payroll.BuildPayslip(emp, tpl, inputs)
	second, _ := payroll.BuildPayslip(emp, tpl, inputs)

	assert.Equal(t, first, second)
}

func TestBuildPayslip_MissingTemplate(t *testing.T) {
	emp := payroll.Employee{
		ID:         uuid.New(),
		FullName:   "Le Van C",
		BaseSalary: 9000000,
	}

	slip, warnings := payroll.BuildPayslip(emp, nil, payroll.PeriodInputs{StdDays: 26})

	assert.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "Le Van C")
	assert.Zero(t, slip.GrossIncome)
	assert.Zero(t, slip.NetSalary)
	assert.Empty(t, slip.Details)
	assert.Equal(t, emp.ID, slip.EmployeeID)
}

func TestBuildPayslip_SnapshotsTemplate(t *testing.T) {
	emp := payroll.Employee{ID: uuid.New(), FullName: "Pham Thi D", BaseSalary: 100}
	tpl := proratedTemplate()

	slip, _ := payroll.BuildPayslip(emp, tpl, payroll.PeriodInputs{StdDays: 26})

	var snap payroll.TemplateSpec
	assert.NoError(t, json.Unmarshal(slip.TemplateSnapshot, &snap))
	assert.Equal(t, tpl.ID, snap.ID)
	assert.Len(t, snap.Components, 3)
	assert.Equal(t, "base_salary / std_days * actual_work_days", snap.Components[0].Formula)
}

func TestBuildPayslip_ManualAdjustments(t *testing.T) {
	emp := payroll.Employee{ID: uuid.New(), FullName: "Hoang Van E"}
	tpl := &payroll.TemplateSpec{
		ID:   uuid.New().String(),
		Name: "Adjustable",
		Components: []payroll.ComponentSpec{
			{Code: "THUONG", Nature: payroll.NatureIncome, Formula: "manual_bonus"},
			{Code: "PHAT", Nature: payroll.NatureDeduction, Formula: "manual_deduction"},
		},
	}

	slip, warnings := payroll.BuildPayslip(emp, tpl, payroll.PeriodInputs{
		StdDays:     26,
		Adjustments: payroll.Adjustments{Bonus: 400000, Deduction: 150000},
	})

	assert.Empty(t, warnings)
	assert.Equal(t, int64(400000), slip.GrossIncome)
	assert.Equal(t, int64(150000), slip.TotalDeduction)
	assert.Equal(t, int64(250000), slip.NetSalary)
}
