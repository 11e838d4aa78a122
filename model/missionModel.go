// model/mission.go
package model

import "time"

type RewardType string

const (
	RewardPoints   RewardType = "POINTS"
	RewardCashback RewardType = "CASHBACK"
	RewardVoucher  RewardType = "VOUCHER"
)

// Mission is a gamified task. IsCompleted latches true once Progress reaches
// Target; the reward is claimable at most once.
type Mission struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Progress     int64      `json:"progress"`
	Target       int64      `json:"target"`
	RewardType   RewardType `json:"reward_type"`
	RewardAmount int64      `json:"reward_amount"`
	IsCompleted  bool       `json:"is_completed"`
	IsClaimed    bool       `json:"is_claimed"`
	ClaimedAt    *time.Time `json:"claimed_at,omitempty"`
}

// MissionProgressReq reports absolute progress for a mission.
// swagger:model MissionProgressReq
type MissionProgressReq struct {
	Progress int64 `json:"progress" validate:"gte=0"`
}
