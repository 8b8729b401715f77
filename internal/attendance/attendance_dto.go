package attendance

type CreateEntryRequest struct {
	EmployeeID string  `json:"employee_id" binding:"required,uuid"`
	Period     string  `json:"period" binding:"required"`
	WorkDate   string  `json:"work_date" binding:"required"`
	WorkDays   float64 `json:"work_days" binding:"min=0,max=1"`
	OtHours    float64 `json:"ot_hours" binding:"min=0,max=24"`
}

type CreateHolidayRequest struct {
	Period string `json:"period" binding:"required"`
	Date   string `json:"date" binding:"required"`
	Name   string `json:"name" binding:"required,max=120"`
}

type EntryResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Period     string  `json:"period"`
	WorkDate   string  `json:"work_date"`
	WorkDays   float64 `json:"work_days"`
	OtHours    float64 `json:"ot_hours"`
}

type HolidayResponse struct {
	ID     string `json:"id"`
	Period string `json:"period"`
	Date   string `json:"date"`
	Name   string `json:"name"`
}
