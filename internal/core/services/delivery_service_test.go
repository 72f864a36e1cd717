package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/bigborda/caixa_backend/internal/apperrors"
	"github.com/bigborda/caixa_backend/internal/core/domain"
	portssvc "github.com/bigborda/caixa_backend/internal/core/ports/services"
	"github.com/bigborda/caixa_backend/internal/core/services"
)

type DeliveryServiceTestSuite struct {
	suite.Suite
	mockRecordRepo   *MockRecordRepository
	mockStaffRepo    *MockStaffRepository
	mockScheduleRepo *MockScheduleRepository
	service          portssvc.DeliverySvcFacade
}

func (suite *DeliveryServiceTestSuite) SetupTest() {
	suite.mockRecordRepo = new(MockRecordRepository)
	suite.mockStaffRepo = new(MockStaffRepository)
	suite.mockScheduleRepo = new(MockScheduleRepository)
	suite.service = services.NewDeliveryService(suite.mockRecordRepo, suite.mockStaffRepo, suite.mockScheduleRepo)
}

func motoboy() *domain.StaffMember {
	return &domain.StaffMember{StaffID: "s1", Name: "João", Role: domain.RoleMotoboy, Shift: domain.ShiftNight}
}

func command(code string) domain.DeliveryCommand {
	return domain.DeliveryCommand{Code: code, Type: "Ifood", Amount: dec("35")}
}

func (suite *DeliveryServiceTestSuite) TestAddCommand_OpensDraftRecord() {
	ctx := context.Background()
	suite.mockStaffRepo.On("FindStaffByID", ctx, "s1").Return(motoboy(), nil).Once()
	suite.mockRecordRepo.On("FindRecordByDate", ctx, "2024-01-10").Return(nil, nil).Once()
	suite.mockRecordRepo.On("SaveRecord", ctx, mock.MatchedBy(func(r domain.DailyRecord) bool {
		return !r.IsClosed && r.Version == 1 && len(r.MotoboyCommands["s1"]) == 1
	})).Return(nil).Once()

	record, err := suite.service.AddCommand(ctx, "2024-01-10", "s1", command("1234"))

	suite.Require().NoError(err)
	suite.False(record.IsClosed)
	suite.Require().Len(record.MotoboyCommands["s1"], 1)
	suite.NotEmpty(record.MotoboyCommands["s1"][0].ID)
	suite.False(record.MotoboyCommands["s1"][0].Timestamp.IsZero())

	// The rider enters the payments list with the synced delivery count;
	// the payout amount itself is filled in at closing time.
	payment := record.PaymentFor("s1")
	suite.Require().NotNil(payment)
	suite.Equal(1, payment.DeliveryCount)
	suite.True(payment.Amount.IsZero())
}

func (suite *DeliveryServiceTestSuite) TestAddCommand_SyncsExistingPayment() {
	ctx := context.Background()
	existing := &domain.DailyRecord{
		Date:     "2024-01-10",
		IsClosed: true,
		Payments: []domain.StaffPayment{{StaffID: "s1", Amount: dec("40"), DeliveryCount: 2}},
		MotoboyCommands: map[string][]domain.DeliveryCommand{
			"s1": {{ID: "c1", Code: "1", Amount: dec("20")}, {ID: "c2", Code: "2", Amount: dec("25")}},
		},
		Version: 3,
	}
	suite.mockStaffRepo.On("FindStaffByID", ctx, "s1").Return(motoboy(), nil).Once()
	suite.mockRecordRepo.On("FindRecordByDate", ctx, "2024-01-10").Return(existing, nil).Once()
	suite.mockRecordRepo.On("SaveRecord", ctx, mock.Anything).Return(nil).Once()

	record, err := suite.service.AddCommand(ctx, "2024-01-10", "s1", command("3"))

	suite.Require().NoError(err)
	suite.Equal(int64(4), record.Version)
	suite.Equal(3, record.PaymentFor("s1").DeliveryCount)
	suite.True(dec("40").Equal(record.PaymentFor("s1").Amount))
}

func (suite *DeliveryServiceTestSuite) TestAddCommand_RejectsNonMotoboy() {
	ctx := context.Background()
	attendant := &domain.StaffMember{StaffID: "s2", Name: "Maria", Role: domain.RoleAttendant}
	suite.mockStaffRepo.On("FindStaffByID", ctx, "s2").Return(attendant, nil).Once()

	_, err := suite.service.AddCommand(ctx, "2024-01-10", "s2", command("1234"))

	suite.ErrorIs(err, services.ErrNotAMotoboy)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRecordRepo.AssertNotCalled(suite.T(), "SaveRecord", mock.Anything, mock.Anything)
}

func (suite *DeliveryServiceTestSuite) TestAddCommand_Validation() {
	ctx := context.Background()

	tests := []struct {
		name    string
		date    string
		cmd     domain.DeliveryCommand
		wantErr error
	}{
		{"invalid date", "10/01/2024", command("1"), services.ErrInvalidDate},
		{"missing code", "2024-01-10", command(""), services.ErrCommandCodeMissing},
		{"zero amount", "2024-01-10", domain.DeliveryCommand{Code: "1", Amount: dec("0")}, services.ErrCommandAmountNotPositive},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.service.AddCommand(ctx, tt.date, "s1", tt.cmd)
			suite.ErrorIs(err, tt.wantErr)
		})
	}
}

func (suite *DeliveryServiceTestSuite) TestRemoveCommand_ResyncsCount() {
	ctx := context.Background()
	existing := &domain.DailyRecord{
		Date:     "2024-01-10",
		Payments: []domain.StaffPayment{{StaffID: "s1", DeliveryCount: 2}},
		MotoboyCommands: map[string][]domain.DeliveryCommand{
			"s1": {{ID: "c1", Code: "1", Amount: dec("20")}, {ID: "c2", Code: "2", Amount: dec("25")}},
		},
		Version: 2,
	}
	suite.mockRecordRepo.On("FindRecordByDate", ctx, "2024-01-10").Return(existing, nil).Once()
	suite.mockRecordRepo.On("SaveRecord", ctx, mock.Anything).Return(nil).Once()

	record, err := suite.service.RemoveCommand(ctx, "2024-01-10", "s1", "c1")

	suite.Require().NoError(err)
	suite.Require().Len(record.MotoboyCommands["s1"], 1)
	suite.Equal("c2", record.MotoboyCommands["s1"][0].ID)
	suite.Equal(1, record.PaymentFor("s1").DeliveryCount)
}

func (suite *DeliveryServiceTestSuite) TestRemoveCommand_NotFound() {
	ctx := context.Background()
	existing := &domain.DailyRecord{Date: "2024-01-10"}
	suite.mockRecordRepo.On("FindRecordByDate", ctx, "2024-01-10").Return(existing, nil).Once()

	_, err := suite.service.RemoveCommand(ctx, "2024-01-10", "s1", "ghost")

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRecordRepo.AssertNotCalled(suite.T(), "SaveRecord", mock.Anything, mock.Anything)
}

func (suite *DeliveryServiceTestSuite) TestBoard_CombinesScheduleAndRecord() {
	ctx := context.Background()
	// 2024-01-10 is a Wednesday.
	schedule := domain.WeeklySchedule{domain.Wednesday: {"s1"}}
	record := &domain.DailyRecord{
		Date:     "2024-01-10",
		Payments: []domain.StaffPayment{{StaffID: "s3", Amount: dec("30"), DeliveryCount: 1}},
		MotoboyCommands: map[string][]domain.DeliveryCommand{
			"s3": {{ID: "c1", Code: "1", Amount: dec("30")}},
		},
	}
	staff := []domain.StaffMember{
		*motoboy(),
		{StaffID: "s2", Name: "Maria", Role: domain.RoleAttendant},
		{StaffID: "s3", Name: "Pedro", Role: domain.RoleMotoboy, Shift: domain.ShiftDay},
		{StaffID: "s4", Name: "Carlos", Role: domain.RoleMotoboy},
	}

	suite.mockRecordRepo.On("FindRecordByDate", ctx, "2024-01-10").Return(record, nil).Once()
	suite.mockScheduleRepo.On("GetWeeklySchedule", ctx).Return(schedule, nil).Once()
	suite.mockStaffRepo.On("ListStaff", ctx).Return(staff, nil).Once()

	boards, err := suite.service.Board(ctx, "2024-01-10")

	suite.Require().NoError(err)
	// João is scheduled, Pedro has a payment and commands; Maria is not a
	// motoboy and Carlos is not active today.
	suite.Require().Len(boards, 2)
	suite.Equal("João", boards[0].Staff.Name)
	suite.Empty(boards[0].Commands)
	suite.Equal("Pedro", boards[1].Staff.Name)
	suite.Require().Len(boards[1].Commands, 1)
	suite.True(dec("30").Equal(boards[1].TotalValue()))
}

func TestDeliveryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DeliveryServiceTestSuite))
}
