package dto

// AdjustCreditRequest represents the admin API request for a balance adjustment
type AdjustCreditRequest struct {
	Amount int64  `json:"amount" binding:"required"`
	Note   string `json:"note"`
}

// AdjustCreditResponse represents the admin API response for an adjustment
type AdjustCreditResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	Balance     int64               `json:"balance"`
}
