package report

import (
	"time"

	"github.com/google/uuid"
)

type SummaryQuery struct {
	Date  string `form:"date"`
	Month string `form:"month"`
}

type PageRequest struct {
	Cursor    string `form:"cursor"`
	Direction string `form:"direction" binding:"omitempty,oneof=next prev"`
}

type OrderLine struct {
	ID              uuid.UUID `json:"id"`
	OrderNumber     int64     `json:"orderNumber"`
	TableNumber     int       `json:"tableNumber"`
	TotalAmount     int64     `json:"totalAmount"`
	Status          string    `json:"status"`
	PaymentMethod   string    `json:"paymentMethod"`
	PaymentVerified bool      `json:"paymentVerified"`
	CreatedAt       time.Time `json:"createdAt"`
}

type SummaryResponse struct {
	Period            string      `json:"period"`
	Kind              string      `json:"kind"`
	Start             time.Time   `json:"start"`
	End               time.Time   `json:"end"`
	TotalRevenue      int64       `json:"totalRevenue"`
	TotalTransactions int         `json:"totalTransactions"`
	Orders            []OrderLine `json:"orders"`
}

type Page struct {
	Orders     []OrderLine
	NextCursor string
	PrevCursor string
}

func mapToLine(r OrderRow) OrderLine {
	return OrderLine{
		ID:              r.ID,
		OrderNumber:     r.OrderNumber,
		TableNumber:     r.TableNumber,
		TotalAmount:     r.TotalAmount,
		Status:          r.Status,
		PaymentMethod:   r.PaymentMethod,
		PaymentVerified: r.PaymentVerified,
		CreatedAt:       r.CreatedAt,
	}
}

func mapToLines(rows []OrderRow) []OrderLine {
	out := make([]OrderLine, 0, len(rows))
	for _, r := range rows {
		out = append(out, mapToLine(r))
	}
	return out
}
