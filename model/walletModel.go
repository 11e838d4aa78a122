// model/wallet.go
package model

import "time"

// Wallet holds the four balance buckets of one session. All amounts are in
// rupiah, points in whole points.
type Wallet struct {
	BalanceMain    int64 `json:"balance_main"`
	BalanceMarket  int64 `json:"balance_market"`
	BalanceSavings int64 `json:"balance_savings"`
	BalancePoints  int64 `json:"balance_points"`
}

type TxType string

const (
	TxTopup       TxType = "TOPUP"
	TxBillPayment TxType = "BILL_PAYMENT"
	TxInstallment TxType = "INSTALLMENT"
	TxBonus       TxType = "BONUS"
	TxReward      TxType = "REWARD"
	TxAdjustment  TxType = "ADJUSTMENT"
)

type TxStatus string

const (
	TxSuccess TxStatus = "SUCCESS"
	TxPending TxStatus = "PENDING"
	TxFailed  TxStatus = "FAILED"
)

// Transaction is an append-only ledger record. Amount is signed: debits are
// negative. Fee is informational and never deducted from any balance.
type Transaction struct {
	ID          string    `json:"id"`
	Type        TxType    `json:"type"`
	Amount      int64     `json:"amount"`
	Fee         int64     `json:"fee"`
	Status      TxStatus  `json:"status"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// WalletPatchReq is a shallow wallet merge; nil fields are left untouched.
// swagger:model WalletPatchReq
type WalletPatchReq struct {
	BalanceMain    *int64 `json:"balance_main,omitempty"`
	BalanceMarket  *int64 `json:"balance_market,omitempty"`
	BalanceSavings *int64 `json:"balance_savings,omitempty"`
	BalancePoints  *int64 `json:"balance_points,omitempty"`
}

// AddPointsReq credits points to the wallet and the user.
// swagger:model AddPointsReq
type AddPointsReq struct {
	Points int64 `json:"points" validate:"required,gt=0"`
}
