package ledger

type CreateAccountRequest struct {
	Name     string `json:"name" binding:"required,max=120"`
	BankName string `json:"bank_name" binding:"max=120"`
	Number   string `json:"number" binding:"max=40"`
}

type AccountResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	BankName string `json:"bank_name"`
	Number   string `json:"number"`
	Active   bool   `json:"active"`
}
