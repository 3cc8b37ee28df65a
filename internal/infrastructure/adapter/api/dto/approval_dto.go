package dto

import (
	"time"

	"github.com/ertantaskin/onay-sistemi-sub002/internal/domain/entity"
)

// ApprovalRequest represents the API request for issuing an approval
type ApprovalRequest struct {
	IIDNumber          string `json:"iidNumber" binding:"required"`
	ConfirmationNumber string `json:"confirmationNumber" binding:"required"`
}

// ApprovalResponse represents the API response for an approval
type ApprovalResponse struct {
	ApprovalID         string    `json:"approvalId"`
	IIDNumber          string    `json:"iidNumber"`
	ConfirmationNumber string    `json:"confirmationNumber"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"createdAt"`
}

// ApprovalListResponse wraps a page of approvals
type ApprovalListResponse struct {
	Approvals []ApprovalResponse `json:"approvals"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PageSize  int                `json:"pageSize"`
}

// NewApprovalResponse converts an approval entity to its API shape
func NewApprovalResponse(approval *entity.Approval) ApprovalResponse {
	return ApprovalResponse{
		ApprovalID:         approval.PublicID,
		IIDNumber:          approval.IIDNumber,
		ConfirmationNumber: approval.ConfirmationNumber,
		Status:             string(approval.Status),
		CreatedAt:          approval.CreatedAt,
	}
}

// NewApprovalListResponse converts a page of approval entities to API shape
func NewApprovalListResponse(approvals []*entity.Approval, total int64, page, pageSize int) ApprovalListResponse {
	items := make([]ApprovalResponse, 0, len(approvals))
	for _, approval := range approvals {
		items = append(items, NewApprovalResponse(approval))
	}
	return ApprovalListResponse{
		Approvals: items,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}
}
