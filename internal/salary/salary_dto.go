package salary

type CreateComponentRequest struct {
	Code       string `json:"code" binding:"required,max=60"`
	Name       string `json:"name" binding:"required,max=120"`
	Nature     string `json:"nature" binding:"required,oneof=INCOME DEDUCTION OTHER"`
	Formula    string `json:"formula"`
	FixedValue int64  `json:"fixed_value"`
	IsTaxable  bool   `json:"is_taxable"`
}

type UpdateComponentRequest struct {
	Name       string `json:"name" binding:"required,max=120"`
	Nature     string `json:"nature" binding:"required,oneof=INCOME DEDUCTION OTHER"`
	Formula    string `json:"formula"`
	FixedValue int64  `json:"fixed_value"`
	IsTaxable  bool   `json:"is_taxable"`
}

type ComponentResponse struct {
	ID              string `json:"id"`
	Code            string `json:"code"`
	Name            string `json:"name"`
	Nature          string `json:"nature"`
	Formula         string `json:"formula"`
	FixedValue      int64  `json:"fixed_value"`
	IsTaxable       bool   `json:"is_taxable"`
	IsSystemDefined bool   `json:"is_system_defined"`
}

type CreateTemplateRequest struct {
	Name string `json:"name" binding:"required,max=120"`
	// Component ids in evaluation order.
	ComponentIDs []string `json:"component_ids" binding:"required,min=1,dive,uuid"`
}

type TemplateResponse struct {
	ID         string              `json:"id"`
	Name       string              `json:"name"`
	Components []ComponentResponse `json:"components"`
}
