// model/installment.go
package model

import "time"

type InstallmentStatus string

const (
	InstallmentActive    InstallmentStatus = "ACTIVE"
	InstallmentCompleted InstallmentStatus = "COMPLETED"
)

type InstallmentPayment struct {
	Period int       `json:"period"` // 1-based tenure index
	Amount int64     `json:"amount"`
	PaidAt time.Time `json:"paid_at"`
}

// Installment is a fixed-tenure financing obligation. PaidTenure increases by
// exactly one per successful payment; status flips to COMPLETED exactly when
// PaidTenure reaches Tenure and the due date freezes from then on.
type Installment struct {
	ID             string               `json:"id"`
	Name           string               `json:"name"`
	Tenure         int                  `json:"tenure"`
	PaidTenure     int                  `json:"paid_tenure"`
	MonthlyPayment int64                `json:"monthly_payment"`
	TotalAmount    int64                `json:"total_amount"`
	PaidAmount     int64                `json:"paid_amount"`
	NextDueDate    time.Time            `json:"next_due_date"`
	Status         InstallmentStatus    `json:"status"`
	History        []InstallmentPayment `json:"history,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
}
