// model/notification.go
package model

import "time"

type NotificationType string

const (
	NotifyWelcome     NotificationType = "WELCOME"
	NotifyPayment     NotificationType = "PAYMENT"
	NotifyInstallment NotificationType = "INSTALLMENT"
	NotifyLevelUp     NotificationType = "LEVEL_UP"
	NotifyReward      NotificationType = "REWARD"
)

type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	IsRead    bool             `json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`
}
