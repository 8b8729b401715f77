package kpi

type UpsertCommissionRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Period     string `json:"period" binding:"required"`
	Amount     int64  `json:"amount" binding:"min=0"`
}

type CreateAdjustmentRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Period     string `json:"period" binding:"required"`
	Bonus      int64  `json:"bonus" binding:"min=0"`
	Deduction  int64  `json:"deduction" binding:"min=0"`
	Note       string `json:"note" binding:"max=500"`
}

type CommissionResponse struct {
	EmployeeID string `json:"employee_id"`
	Period     string `json:"period"`
	Amount     int64  `json:"amount"`
}

type AdjustmentResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Period     string `json:"period"`
	Bonus      int64  `json:"bonus"`
	Deduction  int64  `json:"deduction"`
	Note       string `json:"note"`
	CreatedBy  string `json:"created_by"`
}
