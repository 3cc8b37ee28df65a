package dto

import (
	"time"

	"github.com/ertantaskin/onay-sistemi-sub002/internal/domain/entity"
)

// TopupRequest represents the API request for a credit purchase
type TopupRequest struct {
	Amount      int64  `json:"amount" binding:"required"`
	ReferenceID string `json:"referenceId"`
}

// BalanceResponse represents the API response for a balance query
type BalanceResponse struct {
	UserID  uint64 `json:"userId"`
	Balance int64  `json:"balance"`
}

// TransactionResponse represents a single ledger entry in API responses
type TransactionResponse struct {
	TransactionID string    `json:"transactionId"`
	Amount        int64     `json:"amount"`
	Type          string    `json:"type"`
	Note          string    `json:"note,omitempty"`
	ResultBalance int64     `json:"resultBalance"`
	CreatedAt     time.Time `json:"createdAt"`
}

// TransactionListResponse wraps a page of ledger entries
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int64                 `json:"total"`
	Page         int                   `json:"page"`
	PageSize     int                   `json:"pageSize"`
}

// TopupResponse represents the API response for a completed purchase
type TopupResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	Balance     int64               `json:"balance"`
}

// NewTransactionResponse converts a ledger entity to its API shape
func NewTransactionResponse(txn *entity.CreditTransaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.PublicID,
		Amount:        txn.Amount,
		Type:          string(txn.Type),
		Note:          txn.Note,
		ResultBalance: txn.ResultBalance,
		CreatedAt:     txn.CreatedAt,
	}
}

// NewTransactionListResponse converts a page of ledger entities to API shape
func NewTransactionListResponse(txns []*entity.CreditTransaction, total int64, page, pageSize int) TransactionListResponse {
	items := make([]TransactionResponse, 0, len(txns))
	for _, txn := range txns {
		items = append(items, NewTransactionResponse(txn))
	}
	return TransactionListResponse{
		Transactions: items,
		Total:        total,
		Page:         page,
		PageSize:     pageSize,
	}
}
