package dto

import (
	"github.com/shopspring/decimal"

	"github.com/bigborda/caixa_backend/internal/core/domain"
)

// AddCommandRequest is one comanda being launched for a rider.
type AddCommandRequest struct {
	Code          string          `json:"code" binding:"required"`
	Type          string          `json:"type"`
	PaymentMethod string          `json:"paymentMethod"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	DeliveryFee   decimal.Decimal `json:"deliveryFee"`
}

// Domain converts the request into a command; id and timestamp are assigned
// by the service.
func (r AddCommandRequest) Domain() domain.DeliveryCommand {
	return domain.DeliveryCommand{
		Code:          r.Code,
		Type:          r.Type,
		PaymentMethod: r.PaymentMethod,
		Amount:        r.Amount,
		DeliveryFee:   r.DeliveryFee,
	}
}

// MotoboyBoardResponse is one rider's command sheet for the day.
type MotoboyBoardResponse struct {
	StaffID      string                   `json:"staffId"`
	Name         string                   `json:"name"`
	Shift        domain.StaffShift        `json:"shift"`
	Commands     []domain.DeliveryCommand `json:"commands"`
	CommandCount int                      `json:"commandCount"`
	TotalValue   decimal.Decimal          `json:"totalValue"`
}

// DeliveryBoardResponse lists the active riders and their command sheets.
type DeliveryBoardResponse struct {
	Date     string                 `json:"date"`
	Motoboys []MotoboyBoardResponse `json:"motoboys"`
}

// ToDeliveryBoardResponse converts the domain boards to the API shape.
func ToDeliveryBoardResponse(date string, boards []domain.MotoboyBoard) DeliveryBoardResponse {
	out := make([]MotoboyBoardResponse, 0, len(boards))
	for _, b := range boards {
		out = append(out, MotoboyBoardResponse{
			StaffID:      b.Staff.StaffID,
			Name:         b.Staff.Name,
			Shift:        b.Staff.Shift,
			Commands:     b.Commands,
			CommandCount: len(b.Commands),
			TotalValue:   b.TotalValue(),
		})
	}
	return DeliveryBoardResponse{Date: date, Motoboys: out}
}
