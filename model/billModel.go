// model/bill.go
package model

import "time"

type BillStatus string

const (
	BillPending BillStatus = "PENDING"
	BillPaid    BillStatus = "PAID"
)

type BillType string

const (
	BillElectricity BillType = "ELECTRICITY"
	BillWater       BillType = "WATER"
	BillInternet    BillType = "INTERNET"
	BillPhone       BillType = "PHONE"
	BillTV          BillType = "TV"
)

// Bill is one period of a recurring obligation. Paying a bill marks this
// instance PAID and generates the next period's pending instance, so the
// logical subscription never runs out.
type Bill struct {
	ID         string     `json:"id"`
	Type       BillType   `json:"type"`
	Name       string     `json:"name"`
	CustomerID string     `json:"customer_id"`
	Amount     int64      `json:"amount"`
	Period     string     `json:"period"` // e.g. "2026-08"
	DueDate    time.Time  `json:"due_date"`
	Status     BillStatus `json:"status"`
	PaidAt     *time.Time `json:"paid_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}
