package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/bigborda/caixa_backend/internal/apperrors"
	"github.com/bigborda/caixa_backend/internal/core/domain"
	portssvc "github.com/bigborda/caixa_backend/internal/core/ports/services"
	"github.com/bigborda/caixa_backend/internal/core/services"
)

type ReconciliationServiceTestSuite struct {
	suite.Suite
	mockRecordRepo *MockRecordRepository
	mockStaffRepo  *MockStaffRepository
	service        portssvc.ReconciliationSvcFacade
}

func (suite *ReconciliationServiceTestSuite) SetupTest() {
	suite.mockRecordRepo = new(MockRecordRepository)
	suite.mockStaffRepo = new(MockStaffRepository)
	suite.service = services.NewReconciliationService(suite.mockRecordRepo, suite.mockStaffRepo)
}

func priorRecords() []domain.DailyRecord {
	return []domain.DailyRecord{
		{
			Date:     "2024-01-08",
			IsClosed: true,
			Payments: []domain.StaffPayment{
				{StaffID: "s1", Amount: dec("40"), DeliveryCount: 3},
				{StaffID: "s2", Amount: dec("60")},
			},
		},
		{Date: "2024-01-05", IsClosed: true},
	}
}

func (suite *ReconciliationServiceTestSuite) TestNeedsReconciliation_PriorExists() {
	ctx := context.Background()
	suite.mockRecordRepo.On("FindRecordByDate", ctx, "2024-01-09").Return(nil, nil).Once()
	suite.mockRecordRepo.On("ListRecords", ctx).Return(priorRecords(), nil).Once()

	needed, err := suite.service.NeedsReconciliation(ctx, "2024-01-09")

	suite.Require().NoError(err)
	suite.True(needed)
}

func (suite *ReconciliationServiceTestSuite) TestNeedsReconciliation_RecordAlreadyClosed() {
	ctx := context.Background()
	existing := &domain.DailyRecord{Date: "2024-01-09", IsClosed: true}
	suite.mockRecordRepo.On("FindRecordByDate", ctx, "2024-01-09").Return(existing, nil).Once()

	needed, err := suite.service.NeedsReconciliation(ctx, "2024-01-09")

	suite.Require().NoError(err)
	suite.False(needed)
}

func (suite *ReconciliationServiceTestSuite) TestNeedsReconciliation_DraftDoesNotCount() {
	ctx := context.Background()
	draft := &domain.DailyRecord{Date: "2024-01-09"}
	suite.mockRecordRepo.On("FindRecordByDate", ctx, "2024-01-09").Return(draft, nil).Once()
	suite.mockRecordRepo.On("ListRecords", ctx).Return(priorRecords(), nil).Once()

	needed, err := suite.service.NeedsReconciliation(ctx, "2024-01-09")

	suite.Require().NoError(err)
	suite.True(needed)
}

func (suite *ReconciliationServiceTestSuite) TestNeedsReconciliation_DraftIsNoPriorCandidate() {
	ctx := context.Background()
	suite.mockRecordRepo.On("FindRecordByDate", ctx, "2024-01-09").Return(nil, nil).Once()
	suite.mockRecordRepo.On("ListRecords", ctx).Return([]domain.DailyRecord{{Date: "2024-01-08"}}, nil).Once()

	needed, err := suite.service.NeedsReconciliation(ctx, "2024-01-09")

	suite.Require().NoError(err)
	suite.False(needed)
}

func (suite *ReconciliationServiceTestSuite) TestNeedsReconciliation_NoPrior() {
	ctx := context.Background()
	suite.mockRecordRepo.On("FindRecordByDate", ctx, "2024-01-05").Return(nil, nil).Once()
	suite.mockRecordRepo.On("ListRecords", ctx).Return([]domain.DailyRecord{{Date: "2024-01-08"}}, nil).Once()

	needed, err := suite.service.NeedsReconciliation(ctx, "2024-01-05")

	suite.Require().NoError(err)
	suite.False(needed)
}

func (suite *ReconciliationServiceTestSuite) TestStartSession_BuildsObligationsFromNearestPrior() {
	ctx := context.Background()
	suite.mockRecordRepo.On("ListRecords", ctx).Return(priorRecords(), nil).Once()
	suite.mockStaffRepo.On("ListStaff", ctx).Return(testStaff(), nil).Once()

	session, err := suite.service.StartSession(ctx, "2024-01-09")

	suite.Require().NoError(err)
	suite.Equal("2024-01-09", session.TargetDate)
	suite.Equal("2024-01-08", session.PriorDate)
	suite.Equal(domain.ReconciliationPrompting, session.State)
	suite.Require().Len(session.Obligations, 2)
	suite.Equal("João", session.Obligations[0].StaffName)
	suite.Equal("Maria", session.Obligations[1].StaffName)
}

func (suite *ReconciliationServiceTestSuite) TestStartSession_ReusesOpenSession() {
	ctx := context.Background()
	suite.mockRecordRepo.On("ListRecords", ctx).Return(priorRecords(), nil).Once()
	suite.mockStaffRepo.On("ListStaff", ctx).Return(testStaff(), nil).Once()

	first, err := suite.service.StartSession(ctx, "2024-01-09")
	suite.Require().NoError(err)

	// No further repository calls for the second start.
	second, err := suite.service.StartSession(ctx, "2024-01-09")
	suite.Require().NoError(err)
	suite.Same(first, second)
	suite.mockRecordRepo.AssertNumberOfCalls(suite.T(), "ListRecords", 1)
}

func (suite *ReconciliationServiceTestSuite) TestStartSession_NoPriorRecord() {
	ctx := context.Background()
	suite.mockRecordRepo.On("ListRecords", ctx).Return([]domain.DailyRecord{}, nil).Once()

	_, err := suite.service.StartSession(ctx, "2024-01-09")

	suite.ErrorIs(err, apperrors.ErrNoPriorRecord)
}

func (suite *ReconciliationServiceTestSuite) TestConfirm_CarriesUnacknowledged() {
	ctx := context.Background()
	suite.mockRecordRepo.On("ListRecords", ctx).Return(priorRecords(), nil).Once()
	suite.mockStaffRepo.On("ListStaff", ctx).Return(testStaff(), nil).Once()

	outcome, err := suite.service.Confirm(ctx, "2024-01-09", []string{"s1"}, nil)

	suite.Require().NoError(err)
	suite.Equal("2024-01-08", outcome.PriorDate)
	suite.Require().Len(outcome.Applied, 1)
	suite.Equal("Maria (Ref. 08/01/2024)", outcome.Applied[0].Name)
	suite.Equal("2024-01-08", outcome.Applied[0].ReferenceDate)
	suite.NotEmpty(outcome.Applied[0].ID)
	suite.Equal(outcome.Pendencies, outcome.Applied)
}

func (suite *ReconciliationServiceTestSuite) TestConfirm_DeduplicatesAgainstCurrentBuffer() {
	ctx := context.Background()
	suite.mockRecordRepo.On("ListRecords", ctx).Return(priorRecords(), nil).Once()
	suite.mockStaffRepo.On("ListStaff", ctx).Return(testStaff(), nil).Once()

	current := []domain.PendingItem{
		{ID: "p1", Name: "Maria (Ref. 08/01/2024)", Amount: dec("60"), ReferenceDate: "2024-01-08"},
	}

	outcome, err := suite.service.Confirm(ctx, "2024-01-09", []string{"s1"}, current)

	suite.Require().NoError(err)
	suite.Empty(outcome.Applied)
	suite.Len(outcome.Pendencies, 1)
}

func (suite *ReconciliationServiceTestSuite) TestConfirm_LeavesDateUnresolvedUntilMarked() {
	ctx := context.Background()
	suite.mockRecordRepo.On("FindRecordByDate", ctx, "2024-01-09").Return(nil, nil).Once()
	suite.mockRecordRepo.On("ListRecords", ctx).Return(priorRecords(), nil).Twice()
	suite.mockStaffRepo.On("ListStaff", ctx).Return(testStaff(), nil).Once()

	_, err := suite.service.Confirm(ctx, "2024-01-09", nil, nil)
	suite.Require().NoError(err)

	// Confirming computes the outcome but does not settle the date; only a
	// durable save does, via MarkResolved.
	needed, err := suite.service.NeedsReconciliation(ctx, "2024-01-09")
	suite.Require().NoError(err)
	suite.True(needed)

	suite.service.MarkResolved("2024-01-09")

	needed, err = suite.service.NeedsReconciliation(ctx, "2024-01-09")
	suite.Require().NoError(err)
	suite.False(needed)
}

func (suite *ReconciliationServiceTestSuite) TestConfirm_CanBeRetried() {
	ctx := context.Background()
	suite.mockRecordRepo.On("ListRecords", ctx).Return(priorRecords(), nil).Once()
	suite.mockStaffRepo.On("ListStaff", ctx).Return(testStaff(), nil).Once()

	first, err := suite.service.Confirm(ctx, "2024-01-09", []string{"s1"}, nil)
	suite.Require().NoError(err)
	suite.Require().Len(first.Applied, 1)

	// The session is reused, so a retry after a failed save still carries
	// the same obligation.
	second, err := suite.service.Confirm(ctx, "2024-01-09", []string{"s1"}, nil)
	suite.Require().NoError(err)
	suite.Require().Len(second.Applied, 1)
	suite.Equal(first.Applied[0].Name, second.Applied[0].Name)
	suite.mockRecordRepo.AssertNumberOfCalls(suite.T(), "ListRecords", 1)
}

func (suite *ReconciliationServiceTestSuite) TestForget_ReopensResolvedDate() {
	ctx := context.Background()
	suite.service.MarkResolved("2024-01-09")

	needed, err := suite.service.NeedsReconciliation(ctx, "2024-01-09")
	suite.Require().NoError(err)
	suite.False(needed)

	suite.service.Forget("2024-01-09")

	suite.mockRecordRepo.On("FindRecordByDate", ctx, "2024-01-09").Return(nil, nil).Once()
	suite.mockRecordRepo.On("ListRecords", ctx).Return(priorRecords(), nil).Once()

	needed, err = suite.service.NeedsReconciliation(ctx, "2024-01-09")
	suite.Require().NoError(err)
	suite.True(needed)
}

func (suite *ReconciliationServiceTestSuite) TestCancel_DiscardsSessionButNotResolution() {
	ctx := context.Background()
	suite.mockRecordRepo.On("ListRecords", ctx).Return(priorRecords(), nil).Twice()
	suite.mockStaffRepo.On("ListStaff", ctx).Return(testStaff(), nil).Twice()

	first, err := suite.service.StartSession(ctx, "2024-01-09")
	suite.Require().NoError(err)

	suite.service.Cancel("2024-01-09")

	second, err := suite.service.StartSession(ctx, "2024-01-09")
	suite.Require().NoError(err)
	suite.NotSame(first, second)
}

func TestReconciliationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReconciliationServiceTestSuite))
}
