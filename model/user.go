package model

import "time"

type User struct {
	ID         string    `json:"id"`
	Identifier string    `json:"identifier"`
	FullName   string    `json:"full_name"`
	Phone      string    `json:"phone"`
	Username   string    `json:"username"`
	Points     int64     `json:"points"`
	Level      Level     `json:"level"`
	CreatedAt  time.Time `json:"created_at"`
}

// RegisterReq represents registration payload
// swagger:model RegisterReq
type RegisterReq struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required,min=6"`
}

// LoginReq represents login payload
// swagger:model LoginReq
type LoginReq struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// CompleteProfileReq represents the one-time profile completion payload
// swagger:model CompleteProfileReq
type CompleteProfileReq struct {
	FullName string `json:"full_name" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Username string `json:"username"`
}
