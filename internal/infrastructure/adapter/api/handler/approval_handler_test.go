package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ertantaskin/onay-sistemi-sub002/internal/domain/entity"
	errs "github.com/ertantaskin/onay-sistemi-sub002/internal/domain/error"
	"github.com/ertantaskin/onay-sistemi-sub002/internal/infrastructure/adapter/api/middleware"
	"github.com/ertantaskin/onay-sistemi-sub002/internal/infrastructure/adapter/logger"
	"github.com/ertantaskin/onay-sistemi-sub002/internal/infrastructure/adapter/metrics"
	"github.com/ertantaskin/onay-sistemi-sub002/mocks/port/usecase"
)

func newApprovalRouter(issuer *usecase.MockApprovalIssuer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	m := metrics.New(prometheus.NewRegistry())
	h := NewApprovalHandler(issuer, m, logger.NewNoopLogger())

	router := gin.New()
	router.POST("/api/approvals", middleware.Identity(), h.Issue)
	return router
}

func postApproval(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/approvals", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestApprovalHandler_Issue(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	approval := &entity.Approval{
		PublicID:           "pub-1",
		UserID:             123,
		IIDNumber:          "IID-001",
		ConfirmationNumber: "CONF-9",
		Status:             entity.ApprovalSuccess,
		CreatedAt:          fixedTime,
	}

	t.Run("should return 201 for a newly created approval", func(t *testing.T) {
		mockIssuer := new(usecase.MockApprovalIssuer)
		mockIssuer.On("Issue", mock.Anything, uint64(123), "IID-001", "CONF-9").
			Return(approval, true, nil)

		rec := postApproval(newApprovalRouter(mockIssuer), `{"iidNumber":"IID-001","confirmationNumber":"CONF-9"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"approvalId":"pub-1"`)
		mockIssuer.AssertExpectations(t)
	})

	t.Run("should return 200 for a repeated approval", func(t *testing.T) {
		mockIssuer := new(usecase.MockApprovalIssuer)
		mockIssuer.On("Issue", mock.Anything, uint64(123), "IID-001", "CONF-9").
			Return(approval, false, nil)

		rec := postApproval(newApprovalRouter(mockIssuer), `{"iidNumber":"IID-001","confirmationNumber":"CONF-9"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"approvalId":"pub-1"`)
	})

	t.Run("should return 402 when credit is insufficient", func(t *testing.T) {
		mockIssuer := new(usecase.MockApprovalIssuer)
		mockIssuer.On("Issue", mock.Anything, uint64(123), "IID-001", "CONF-9").
			Return(nil, false, errs.NewInsufficientCreditError(123, 1, 0))

		rec := postApproval(newApprovalRouter(mockIssuer), `{"iidNumber":"IID-001","confirmationNumber":"CONF-9"}`)

		assert.Equal(t, http.StatusPaymentRequired, rec.Code)
		assert.Contains(t, rec.Body.String(), `"code":4002`)
	})

	t.Run("should return 400 for missing fields", func(t *testing.T) {
		mockIssuer := new(usecase.MockApprovalIssuer)

		rec := postApproval(newApprovalRouter(mockIssuer), `{"iidNumber":"IID-001"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockIssuer.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
