package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/bigborda/caixa_backend/internal/apperrors"
	"github.com/bigborda/caixa_backend/internal/core/domain"
	portssvc "github.com/bigborda/caixa_backend/internal/core/ports/services"
	"github.com/bigborda/caixa_backend/internal/dto"
	"github.com/bigborda/caixa_backend/internal/handlers"
	"github.com/bigborda/caixa_backend/internal/platform/config"
)

// --- Mock RecordService ---

type MockRecordService struct {
	mock.Mock
}

func (m *MockRecordService) GetRecord(ctx context.Context, date string) (*domain.DailyRecord, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyRecord), args.Error(1)
}

func (m *MockRecordService) ListRecords(ctx context.Context) ([]domain.DailyRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyRecord), args.Error(1)
}

func (m *MockRecordService) GetAuditLog(ctx context.Context, date string) ([]domain.AuditEntry, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditEntry), args.Error(1)
}

func (m *MockRecordService) SaveClosing(ctx context.Context, req dto.SaveClosingRequest) (*domain.DailyRecord, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyRecord), args.Error(1)
}

func (m *MockRecordService) DeleteRecord(ctx context.Context, date string) error {
	args := m.Called(ctx, date)
	return args.Error(0)
}

var _ portssvc.RecordSvcFacade = (*MockRecordService)(nil)

// --- Mock SummaryService ---

type MockSummaryService struct {
	mock.Mock
}

func (m *MockSummaryService) SummaryForDate(ctx context.Context, date string) (string, error) {
	args := m.Called(ctx, date)
	return args.String(0), args.Error(1)
}

var _ portssvc.SummarySvcFacade = (*MockSummaryService)(nil)

// --- Test Suite ---

type RecordHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockRecordSvc  *MockRecordService
	mockSummarySvc *MockSummaryService
}

func (suite *RecordHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	dto.RegisterValidations()
	suite.mockRecordSvc = new(MockRecordService)
	suite.mockSummarySvc = new(MockSummaryService)

	services := &portssvc.ServiceContainer{
		Record:  suite.mockRecordSvc,
		Summary: suite.mockSummarySvc,
	}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, &config.Config{}, services)
}

func (suite *RecordHandlerTestSuite) TestGetRecord_Success() {
	record := &domain.DailyRecord{
		Date:  "2024-01-10",
		Sales: domain.DailySales{IFood: decimal.NewFromInt(100)},
	}
	suite.mockRecordSvc.On("GetRecord", mock.Anything, "2024-01-10").Return(record, nil).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/records/2024-01-10", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.RecordResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("2024-01-10", resp.Date)
	suite.Equal("10/01/2024", resp.DisplayDate)
}

func (suite *RecordHandlerTestSuite) TestGetRecord_NotFound() {
	suite.mockRecordSvc.On("GetRecord", mock.Anything, "2024-01-10").Return(nil, apperrors.ErrNotFound).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/records/2024-01-10", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *RecordHandlerTestSuite) TestSaveClosing_Success() {
	record := &domain.DailyRecord{Date: "2024-01-10", Version: 1}
	suite.mockRecordSvc.On("SaveClosing", mock.Anything, mock.MatchedBy(func(r dto.SaveClosingRequest) bool {
		return r.Date == "2024-01-10" && r.ClosedByStaffID == "s2"
	})).Return(record, nil).Once()

	body, _ := json.Marshal(gin.H{"date": "2024-01-10", "closedByStaffId": "s2"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPut, "/api/v1/records/2024-01-10/close", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *RecordHandlerTestSuite) TestSaveClosing_DateMismatch() {
	body, _ := json.Marshal(gin.H{"date": "2024-01-11", "closedByStaffId": "s2"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPut, "/api/v1/records/2024-01-10/close", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockRecordSvc.AssertNotCalled(suite.T(), "SaveClosing", mock.Anything, mock.Anything)
}

func (suite *RecordHandlerTestSuite) TestSaveClosing_ReconciliationPending() {
	suite.mockRecordSvc.On("SaveClosing", mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrReconciliationPending).Once()

	body, _ := json.Marshal(gin.H{"date": "2024-01-10", "closedByStaffId": "s2"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPut, "/api/v1/records/2024-01-10/close", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(w.Body.String(), "reconciliation")
}

func (suite *RecordHandlerTestSuite) TestGetSummary() {
	suite.mockSummarySvc.On("SummaryForDate", mock.Anything, "2024-01-10").Return("resumo", nil).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/records/2024-01-10/summary", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "resumo")
}

func (suite *RecordHandlerTestSuite) TestDeleteRecord_NoContent() {
	suite.mockRecordSvc.On("DeleteRecord", mock.Anything, "2024-01-10").Return(nil).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/records/2024-01-10", nil)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)
}

func TestRecordHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RecordHandlerTestSuite))
}
