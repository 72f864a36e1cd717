package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DeliveryCommand is one comanda launched for a rider during the day: the
// order code, the sales channel it went through and its value. Commands are
// recorded as they happen, before the day is closed.
type DeliveryCommand struct {
	ID            string          `json:"id"`
	Code          string          `json:"code"`
	Type          string          `json:"type"`
	PaymentMethod string          `json:"paymentMethod,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	DeliveryFee   decimal.Decimal `json:"deliveryFee"`
	Timestamp     time.Time       `json:"timestamp"`
}

// MotoboyBoard pairs a rider active on a date with the commands launched
// for them so far.
type MotoboyBoard struct {
	Staff    StaffMember       `json:"staff"`
	Commands []DeliveryCommand `json:"commands"`
}

// TotalValue sums the command amounts on the board.
func (b MotoboyBoard) TotalValue() decimal.Decimal {
	total := decimal.Zero
	for _, c := range b.Commands {
		total = total.Add(c.Amount)
	}
	return total
}

// CommandsFor returns the commands launched for staffID, nil when none.
func (r *DailyRecord) CommandsFor(staffID string) []DeliveryCommand {
	return r.MotoboyCommands[staffID]
}

// AppendCommand adds cmd under staffID and re-syncs that rider's delivery
// count in the payments list, creating a zero-amount payment line when the
// rider has none yet. The amount is filled in at closing time.
func (r *DailyRecord) AppendCommand(staffID string, cmd DeliveryCommand) {
	if r.MotoboyCommands == nil {
		r.MotoboyCommands = make(map[string][]DeliveryCommand)
	}
	r.MotoboyCommands[staffID] = append(r.MotoboyCommands[staffID], cmd)
	r.syncDeliveryCount(staffID)
}

// RemoveCommand deletes the command with commandID from staffID's list and
// re-syncs the delivery count. Reports whether the command existed.
func (r *DailyRecord) RemoveCommand(staffID, commandID string) bool {
	cmds := r.MotoboyCommands[staffID]
	for i := range cmds {
		if cmds[i].ID == commandID {
			r.MotoboyCommands[staffID] = append(cmds[:i:i], cmds[i+1:]...)
			r.syncDeliveryCount(staffID)
			return true
		}
	}
	return false
}

func (r *DailyRecord) syncDeliveryCount(staffID string) {
	count := len(r.MotoboyCommands[staffID])
	if p := r.PaymentFor(staffID); p != nil {
		p.DeliveryCount = count
		return
	}
	r.Payments = append(r.Payments, StaffPayment{
		StaffID:       staffID,
		Amount:        decimal.Zero,
		DeliveryCount: count,
	})
}
