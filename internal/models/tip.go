package models

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

type TipStatus string

const (
	TipPending   TipStatus = "PENDING"
	TipCompleted TipStatus = "COMPLETED"
	TipFailed    TipStatus = "FAILED"
)

func ValidTipStatus(s TipStatus) bool {
	switch s {
	case TipPending, TipCompleted, TipFailed:
		return true
	}
	return false
}

type Tip struct {
	gorm.Model
	ToUserID    uint  `gorm:"not null;index"`
	ToUser      User  `gorm:"foreignKey:ToUserID"`
	FromUserID  *uint `gorm:"index"`
	FromUser    *User `gorm:"foreignKey:FromUserID"`
	AmountCents int64 `gorm:"not null"`
	FeeCents    int64 `gorm:"not null"`
	NetCents    int64 `gorm:"not null"`
	Message     *string
	FromEmail   *string
	Status      TipStatus `gorm:"not null;default:PENDING;index"`
}

func (t Tip) MarshalJSON() ([]byte, error) {
	var toUser *UserSummary
	if t.ToUser.ID != 0 {
		s := t.ToUser.Summary()
		toUser = &s
	}
	var fromUser *UserSummary
	if t.FromUser != nil && t.FromUser.ID != 0 {
		s := t.FromUser.Summary()
		fromUser = &s
	}

	return json.Marshal(&struct {
		ID          uint         `json:"id"`
		ToUserID    uint         `json:"toUserId"`
		FromUserID  *uint        `json:"fromUserId"`
		AmountCents int64        `json:"amountCents"`
		FeeCents    int64        `json:"feeCents"`
		NetCents    int64        `json:"netCents"`
		Message     *string      `json:"message"`
		FromEmail   *string      `json:"fromEmail"`
		Status      TipStatus    `json:"status"`
		CreatedAt   time.Time    `json:"createdAt"`
		ToUser      *UserSummary `json:"toUser,omitempty"`
		FromUser    *UserSummary `json:"fromUser,omitempty"`
	}{
		ID:          t.ID,
		ToUserID:    t.ToUserID,
		FromUserID:  t.FromUserID,
		AmountCents: t.AmountCents,
		FeeCents:    t.FeeCents,
		NetCents:    t.NetCents,
		Message:     t.Message,
		FromEmail:   t.FromEmail,
		Status:      t.Status,
		CreatedAt:   t.CreatedAt,
		ToUser:      toUser,
		FromUser:    fromUser,
	})
}
